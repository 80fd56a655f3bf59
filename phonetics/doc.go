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


// Package phonetics models Russian words as phoneme sequences.
//
// The package covers three concerns:
//   - the phoneme model: vowels carrying stress and consonants carrying
//     voicing and palatalization, each with its own distance function
//   - transcription of orthographic text into a phoneme-letter string,
//     applying iotation, softening, devoicing and vowel reduction
//   - the Word type, built from a transcription plus stress marks, which
//     exposes end-anchored views used for rhyme alignment
//
// Abstract words are stress templates written with '+' (any vowel) and
// '!' (any stressed vowel). They carry no consonants and match words only
// on syllable count and stress shape.
package phonetics
