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


package phonetics

import (
	"strings"
	"unicode/utf8"
)

const (
	markPrimary     = '\''
	markSecondary   = '`'
	markVoiced      = '*'
	markPalatalized = '^'
)

var hardVowel = map[rune]rune{'е': 'э', 'ё': 'о', 'ю': 'у', 'я': 'а'}

var voicedPair = map[rune]rune{'б': 'п', 'в': 'ф', 'г': 'к', 'д': 'т', 'ж': 'ш', 'з': 'с'}

func isStressMark(r rune) bool {
	return r == markPrimary || r == markSecondary
}

func isModifier(r rune) bool {
	return isStressMark(r) || r == markVoiced || r == markPalatalized
}

// IsVowelLetter reports whether r is a Russian vowel letter.
func IsVowelLetter(r rune) bool {
	return strings.ContainsRune("аеёиоуыэюя", r)
}

func isSoftable(r rune) bool {
	return strings.ContainsRune("схфктпрлнм", r)
}

// isUnvoicedObstruent reports whether a token is a voiceless obstruent that
// devoices the consonant before it.
func isUnvoicedObstruent(t token) bool {
	return strings.ContainsRune("пфктшс", t.base) && !strings.ContainsRune(t.mods, markVoiced)
}

// opensIotation reports whether a soft vowel after r is pronounced with a
// leading glide.
func opensIotation(r rune) bool {
	return IsVowelLetter(r) || r == 'ь' || r == 'ъ' || isStressMark(r) || r == ' ' || r == '-'
}

// Transcribe converts an orthographic word into a phoneme-letter string. The
// output uses the letters а о э и ы у for vowels, р л н м п т к с х ш ч ф й for
// consonants, and the marks * (voiced), ^ (palatalized), ' and ` (stress)
// after the phoneme they modify. Adjective-like words read a final -ого/-его
// with в.
//
// Input is expected to be validated; unknown runes pass through unchanged.
func Transcribe(text string, adjective bool) string {
	rs := []rune(strings.ToLower(text))
	if adjective {
		rs = rewriteGenitive(rs)
	}
	rs = iotate(rs)
	rs = soften(rs)
	rs = substitute(rs)
	ts := tokenize(rs)
	ts = devoice(ts)
	ts = reduce(ts)
	return join(ts)
}

// rewriteGenitive turns a final ого/его into ово/ево, allowing stress marks
// after either vowel.
func rewriteGenitive(rs []rune) []rune {
	i := len(rs) - 1
	if i >= 0 && isStressMark(rs[i]) {
		i--
	}
	if i < 2 || rs[i] != 'о' {
		return rs
	}
	g := i - 1
	if rs[g] != 'г' {
		return rs
	}
	j := g - 1
	if j >= 0 && isStressMark(rs[j]) {
		j--
	}
	if j < 0 || (rs[j] != 'о' && rs[j] != 'е') {
		return rs
	}
	out := append([]rune(nil), rs...)
	out[g] = 'в'
	return out
}

func iotate(rs []rune) []rune {
	out := make([]rune, 0, len(rs)+4)
	for i, r := range rs {
		hard, soft := hardVowel[r]
		switch {
		case soft:
			if i == 0 || opensIotation(rs[i-1]) {
				out = append(out, 'й', hard)
			} else {
				out = append(out, markPalatalized, hard)
			}
			if r == 'ё' && (i+1 >= len(rs) || !isStressMark(rs[i+1])) {
				out = append(out, markPrimary)
			}
		case r == 'о' && i > 0 && rs[i-1] == 'ь':
			out = append(out, 'й', 'о')
		default:
			out = append(out, r)
		}
	}
	return out
}

func soften(rs []rune) []rune {
	out := make([]rune, 0, len(rs)+2)
	for _, r := range rs {
		if r == 'и' && len(out) > 0 && isSoftable(out[len(out)-1]) {
			out = append(out, markPalatalized)
		}
		out = append(out, r)
	}
	return out
}

func substitute(rs []rune) []rune {
	out := make([]rune, 0, len(rs)+len(rs)/2)
	for _, r := range rs {
		if unvoiced, ok := voicedPair[r]; ok {
			out = append(out, unvoiced, markVoiced)
			continue
		}
		switch r {
		case 'ц':
			out = append(out, 'т', 'с')
		case 'щ':
			out = append(out, 'ш', markPalatalized)
		case 'ь':
			if len(out) == 0 || out[len(out)-1] != markPalatalized {
				out = append(out, markPalatalized)
			}
		case 'ъ':
		default:
			out = append(out, r)
		}
	}
	return out
}

// token is a base rune followed by its modifier marks.
type token struct {
	base rune
	mods string
}

func (t token) consonant() bool {
	_, ok := consonantClassOf(t.base)
	return ok
}

func tokenize(rs []rune) []token {
	ts := make([]token, 0, len(rs))
	for _, r := range rs {
		if isModifier(r) && len(ts) > 0 {
			ts[len(ts)-1].mods += string(r)
			continue
		}
		if isModifier(r) {
			ts = append(ts, token{mods: string(r)})
			continue
		}
		ts = append(ts, token{base: r})
	}
	return ts
}

// devoice removes voicing right to left: from the word-final consonant and
// from every consonant standing before a voiceless obstruent.
func devoice(ts []token) []token {
	out := make([]token, len(ts))
	copy(out, ts)
	for i := len(out) - 1; i >= 0; i-- {
		t := out[i]
		if !t.consonant() || !strings.ContainsRune(t.mods, markVoiced) {
			continue
		}
		final := i == len(out)-1 || out[i+1].base == ' ' || out[i+1].base == '-'
		if final || isUnvoicedObstruent(out[i+1]) {
			out[i].mods = strings.ReplaceAll(t.mods, string(markVoiced), "")
		}
	}
	return out
}

// reduce turns every unstressed о into а.
func reduce(ts []token) []token {
	out := make([]token, len(ts))
	for i, t := range ts {
		if t.base == 'о' && strings.IndexFunc(t.mods, isStressMark) < 0 {
			t.base = 'а'
		}
		out[i] = t
	}
	return out
}

func join(ts []token) string {
	var b strings.Builder
	b.Grow(len(ts) * 2 * utf8.UTFMax)
	for _, t := range ts {
		if t.base != 0 {
			b.WriteRune(t.base)
		}
		b.WriteString(t.mods)
	}
	return b.String()
}
