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


// Package ingestion loads lexicon files into the lexicon store and reads the
// store back as a dictionary source.
//
// A lexicon file is UTF-8 text with one lemma per line:
//
//	lemma<TAB>template[<TAB>v1 v2 ... vD]
//
// Blank lines and lines starting with # are ignored. Either every entry
// carries a vector of the same dimension or none does.
//
// The Importer writes entries in batches, retrying transient store
// conflicts with exponential backoff, and can report progress to a writer.
package ingestion
