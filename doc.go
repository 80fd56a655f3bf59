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


// Package rhymer finds Russian rhymes.
//
// A Finder ranks the words of an inflected dictionary by phonetic distance
// to a query word, optionally biased toward a semantic theme:
//
//	finder, err := rhymer.OpenFinder(ctx, "/path/to/lexicon")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer finder.Close()
//
//	results, err := finder.Find(ctx, rhymer.Request{Text: "сло'во", TopN: 20})
//
// Query text is case-insensitive Russian with stress marked by ' after
// the vowel (` for secondary stresses). An unstressed word is looked up in
// the dictionary. Text made only of + (any vowel) and ! (any stressed vowel)
// is a rhythm pattern that matches by stress structure alone.
package rhymer
