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


// Package distance measures how well two words rhyme.
//
// MeasureCore compares two phoneme sequences aligned at the word end and
// yields four terms: misc (word-end shape and syllable count), vowel
// (stress-aware vowel distance), consonant (alliteration) and structure
// (consonant cluster lengths). Each positional contribution decays with its
// distance from the end of the word, so the coinciding suffix dominates.
//
// A Result adds the candidate-level terms on top of the core: semantic
// meaning, popularity, asymmetry of length and part of speech. Finish sums
// the terms and rejects a NaN total.
package distance
