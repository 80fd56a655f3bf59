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


// Package storage provides the storage abstraction layer for the lexicon.
//
// The lexicon is the raw dictionary the rhyme index is built from: one
// entry per lemma holding its inflection template and an optional semantic
// vector, kept in load order. Load order matters because a lemma's position
// is its popularity rank.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return the repository interface:
//
//	repo, err := badger.NewLexiconRepository(backend)  // storage.LexiconRepository
//
// This keeps callers independent of BadgerDB and lets tests substitute the
// in-memory backend without modification.
//
// # Usage
//
// Open a persistent lexicon:
//
//	repo, backend, err := badger.OpenLexicon("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// Use in tests with in-memory storage:
//
//	repo, backend, err := badger.NewMemoryLexicon()
//
// # Encoding
//
// Entry values are encoded with mus-go: varint integers, length-prefixed
// strings and raw little-endian float32 vector components.
//
// # Context Support
//
// All repository methods accept context.Context. Long scans check it between
// entries.
package storage
