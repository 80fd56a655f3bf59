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
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// maxSuggestDistance bounds the edit distance of a suggestion relative to
// the length of the text.
func maxSuggestDistance(text string) int {
	return max(1, utf8.RuneCountInString(text)/3)
}

// Suggest returns up to n surface forms closest to text by Levenshtein
// distance, nearest first and more frequent first among equals.
func (idx *Index) Suggest(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	text = key(text)
	limit := maxSuggestDistance(text)

	type candidate struct {
		surface string
		dist    int
		order   int
	}
	var found []candidate
	for i, s := range idx.surfaces {
		if s == text {
			continue
		}
		if abs(utf8.RuneCountInString(s)-utf8.RuneCountInString(text)) > limit {
			continue
		}
		if d := edlib.LevenshteinDistance(text, s); d <= limit {
			found = append(found, candidate{surface: s, dist: d, order: i})
		}
	}
	slices.SortFunc(found, func(a, b candidate) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})

	out := make([]string, 0, min(n, len(found)))
	for _, c := range found[:min(n, len(found))] {
		out = append(out, c.surface)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
