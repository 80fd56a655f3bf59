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


// Package dictionary builds the read-only index of inflected words that
// rhyme search runs over.
//
// A Source lists lemmas in frequency order, each with an inflection
// template and a semantic vector. Build expands every template into its
// surface forms, turns each into a phonetics.Word and groups the forms of a
// lemma into a contiguous Group. The index also keeps an exact lookup by
// stress-stripped surface form and a stress signature lookup used to prune
// candidates before distances are computed.
//
// An Index never changes after Build and may be shared by any number of
// goroutines.
package dictionary
