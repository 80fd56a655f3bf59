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


package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Lexicon entries are identified by a content hash of their lemma.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Entry is one dictionary lemma as stored in the lexicon: the lemma, its
// inflection template and an optional semantic vector.
type Entry struct {
	Id       ID
	Ordinal  uint64 // Load position, assigned by the store on first insert
	Lemma    string
	Template string
	Vector   []float32 // Empty when the lexicon has no semantic vectors
}

// NewEntry creates an entry with its content ID set.
func NewEntry(lemma, template string, vector []float32) *Entry {
	return &Entry{
		Id:       IDFromContent(lemma),
		Lemma:    lemma,
		Template: template,
		Vector:   vector,
	}
}
