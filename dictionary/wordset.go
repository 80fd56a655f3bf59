// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package dictionary

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// WordSet is a set of word indices. The zero value is empty.
type WordSet struct {
	bits bitset.BitSet
}

// NewWordSet returns an empty set sized for n words.
func NewWordSet(n int) *WordSet {
	return &WordSet{bits: *bitset.New(uint(max(n, 0)))}
}

// Add inserts i, growing the set as needed.
func (s *WordSet) Add(i int) {
	s.bits.Set(uint(i))
}

// Contains reports whether i is in the set. A nil set is empty.
func (s *WordSet) Contains(i int) bool {
	if s == nil || i < 0 {
		return false
	}
	return s.bits.Test(uint(i))
}

// Len returns the number of members.
func (s *WordSet) Len() int {
	if s == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Union adds every member of o to s.
func (s *WordSet) Union(o *WordSet) {
	if o == nil {
		return
	}
	s.bits.InPlaceUnion(&o.bits)
}

// Intersect removes from s every index not in o.
func (s *WordSet) Intersect(o *WordSet) {
	if o == nil {
		s.bits.ClearAll()
		return
	}
	s.bits.InPlaceIntersection(&o.bits)
}

// All yields members in increasing order.
func (s *WordSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if s == nil {
			return
		}
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}
