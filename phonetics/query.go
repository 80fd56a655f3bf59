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

// QueryKind tells how query text is to be turned into a Word.
type QueryKind uint8

const (
	// QueryText is an ordinary word, possibly carrying stress marks.
	QueryText QueryKind = iota
	// QueryPattern is a stress template made of '+' and '!'.
	QueryPattern
)

// QueryInfo is the outcome of validating query text.
type QueryInfo struct {
	Text     string // lowercased input
	Kind     QueryKind
	Stressed bool // a primary stress is marked or implied by ё
}

func isRussianLetter(r rune) bool {
	return (r >= 'а' && r <= 'я') || r == 'ё'
}

func isPatternRune(r rune) bool {
	return r == '+' || r == '!'
}

// ValidateQuery checks raw query text before it becomes a Word. Every rune
// must be a Russian letter, a hyphen inside a word, a stress mark directly
// after a vowel letter, or a pattern character; pattern characters cannot be
// mixed with anything else. At most one primary stress may be given, and ё
// counts as one.
func ValidateQuery(text string) (QueryInfo, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	info := QueryInfo{Text: text}
	if text == "" {
		return info, &InputError{Text: text, Position: -1, Reason: "empty query"}
	}
	rs := []rune(text)
	pattern, letters := false, false
	primaries := 0
	for i, r := range rs {
		switch {
		case isPatternRune(r):
			if letters {
				return info, &InputError{Text: text, Position: i, Reason: "pattern characters mixed with letters"}
			}
			pattern = true
		case isRussianLetter(r):
			if pattern {
				return info, &InputError{Text: text, Position: i, Reason: "letters mixed with pattern characters"}
			}
			letters = true
			if r == 'ё' && (i+1 >= len(rs) || rs[i+1] != markPrimary) {
				primaries++
			}
		case isStressMark(r):
			if i == 0 || !IsVowelLetter(rs[i-1]) {
				return info, &InputError{Text: text, Position: i, Reason: "stress mark must follow a vowel"}
			}
			if r == markSecondary && rs[i-1] == 'ё' {
				return info, &InputError{Text: text, Position: i, Reason: "ё always carries the primary stress"}
			}
			if r == markPrimary {
				primaries++
			}
		case r == '-':
			if i == 0 || i == len(rs)-1 || pattern {
				return info, &InputError{Text: text, Position: i, Reason: "misplaced hyphen"}
			}
		default:
			return info, &InputError{Text: text, Position: i, Reason: "unknown character " + string(r)}
		}
	}
	if primaries > 1 {
		return info, &InputError{Text: text, Position: -1, Reason: "more than one primary stress"}
	}
	if pattern {
		info.Kind = QueryPattern
		info.Stressed = strings.ContainsRune(text, '!')
		return info, nil
	}
	if VowelLetterCount(text) == 0 {
		return info, &InputError{Text: text, Position: -1, Reason: "word has no vowels"}
	}
	info.Stressed = primaries == 1
	return info, nil
}

// StripStress removes stress marks from s.
func StripStress(s string) string {
	if !strings.ContainsAny(s, "'`") {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isStressMark(r) {
			return -1
		}
		return r
	}, s)
}

// HasPrimaryStress reports whether s marks or implies a primary stress.
func HasPrimaryStress(s string) bool {
	return strings.ContainsRune(s, markPrimary) || strings.ContainsRune(s, 'ё')
}

// VowelLetterCount returns the number of vowel letters in s.
func VowelLetterCount(s string) int {
	n := 0
	for _, r := range s {
		if IsVowelLetter(r) {
			n++
		}
	}
	return n
}

// AutoStress marks the only vowel of a monosyllable carrying no primary
// stress. Other strings are returned unchanged with ok false.
func AutoStress(s string) (stressed string, ok bool) {
	if HasPrimaryStress(s) || VowelLetterCount(s) != 1 {
		return s, false
	}
	i := strings.IndexFunc(s, IsVowelLetter)
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i+size] + string(markPrimary) + s[i+size:], true
}
