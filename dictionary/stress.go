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

import "github.com/poiesic/rhymer/phonetics"

// CandidatesMatchingStress returns the words whose primary stress agrees
// with any stress of w. A stressed wildcard matches every vowel at its
// position. The result is a fresh set owned by the caller; it is empty when
// w carries no stress.
func (idx *Index) CandidatesMatchingStress(w *phonetics.Word) *WordSet {
	out := NewWordSet(len(idx.words))
	for _, k := range w.Stresses() {
		if k.Letter == phonetics.AnyStressedVowel {
			out.Union(idx.byPosition[k.Position])
			continue
		}
		out.Union(idx.stress[k])
	}
	return out
}

// StressKeys returns the number of distinct stress signatures.
func (idx *Index) StressKeys() int {
	return len(idx.stress)
}
