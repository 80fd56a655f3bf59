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


package badger

import (
	"encoding/binary"

	"github.com/poiesic/rhymer/core"
)

// Key prefixes for different data types
const (
	entryPrefix      = "lexent:"
	entryLemmaPrefix = "lexlem:"
	entryOrdinalSeq  = "lexseq"
)

// makeEntryKey generates the primary key for an entry.
// Format: prefix + BigEndian ordinal, so iteration follows load order.
func makeEntryKey(ordinal uint64) []byte {
	buf := make([]byte, len(entryPrefix)+8)
	offset := copy(buf, entryPrefix)
	binary.BigEndian.PutUint64(buf[offset:], ordinal)
	return buf
}

// makeLemmaKey generates the lemma index key.
// Format: prefix + BigEndian content ID of the lemma.
func makeLemmaKey(id core.ID) []byte {
	buf := make([]byte, len(entryLemmaPrefix)+8)
	offset := copy(buf, entryLemmaPrefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// ordinalFromKey extracts the ordinal from a primary entry key.
func ordinalFromKey(key []byte) (uint64, bool) {
	if len(key) != len(entryPrefix)+8 || string(key[:len(entryPrefix)]) != entryPrefix {
		return 0, false
	}
	return binary.BigEndian.Uint64(key[len(entryPrefix):]), true
}
