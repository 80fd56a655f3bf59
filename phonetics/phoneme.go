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

import "math"

// Stress is the stress level carried by a vowel.
type Stress uint8

const (
	StressNone Stress = iota
	StressPrimary
	StressSecondary
)

// String returns the stress mark used in transcriptions.
func (s Stress) String() string {
	switch s {
	case StressPrimary:
		return "'"
	case StressSecondary:
		return "`"
	default:
		return ""
	}
}

// VowelClass identifies a vowel phoneme letter.
type VowelClass uint8

const (
	VowelA VowelClass = iota
	VowelO
	VowelE
	VowelI
	VowelY
	VowelU
	// AnyStressedVowel matches any vowel and is always stressed. Pattern words only.
	AnyStressedVowel
	// AnyVowel matches any vowel. Pattern words only.
	AnyVowel
)

var vowelLetters = [...]rune{'а', 'о', 'э', 'и', 'ы', 'у', '!', '+'}

// Rune returns the transcription letter of the class.
func (c VowelClass) Rune() rune {
	if int(c) < len(vowelLetters) {
		return vowelLetters[c]
	}
	return '?'
}

func (c VowelClass) String() string {
	return string(c.Rune())
}

// Wildcard reports whether the class is one of the pattern classes.
func (c VowelClass) Wildcard() bool {
	return c == AnyStressedVowel || c == AnyVowel
}

// ConsonantClass identifies a consonant phoneme letter.
type ConsonantClass uint8

const (
	ConsonantR ConsonantClass = iota
	ConsonantL
	ConsonantN
	ConsonantM
	ConsonantP
	ConsonantT
	ConsonantK
	ConsonantS
	ConsonantH
	ConsonantSh
	ConsonantCh
	ConsonantF
	ConsonantJ
)

var consonantLetters = [...]rune{'р', 'л', 'н', 'м', 'п', 'т', 'к', 'с', 'х', 'ш', 'ч', 'ф', 'й'}

// Rune returns the transcription letter of the class.
func (c ConsonantClass) Rune() rune {
	if int(c) < len(consonantLetters) {
		return consonantLetters[c]
	}
	return '?'
}

func (c ConsonantClass) String() string {
	return string(c.Rune())
}

func vowelClassOf(r rune) (VowelClass, bool) {
	for i, l := range vowelLetters {
		if l == r {
			return VowelClass(i), true
		}
	}
	return 0, false
}

func consonantClassOf(r rune) (ConsonantClass, bool) {
	for i, l := range consonantLetters {
		if l == r {
			return ConsonantClass(i), true
		}
	}
	return 0, false
}

// Vowel is a vowel phoneme.
type Vowel struct {
	Letter VowelClass
	Stress Stress
}

func (v Vowel) String() string {
	return v.Letter.String() + v.Stress.String()
}

// Stressed reports whether the vowel carries primary or secondary stress.
func (v Vowel) Stressed() bool {
	return v.Stress != StressNone
}

// Consonant is a consonant phoneme.
type Consonant struct {
	Letter      ConsonantClass
	Voiced      bool
	Palatalized bool
}

func (c Consonant) String() string {
	s := c.Letter.String()
	if c.Voiced {
		s += "*"
	}
	if c.Palatalized {
		s += "^"
	}
	return s
}

// Articulation is a 2-D articulatory placement table with the parameters of
// the distance computed over it. Map is indexed by letter class.
type Articulation struct {
	Map         [][2]float64 `yaml:"map"`
	Pow         float64      `yaml:"pow"`
	Denominator float64      `yaml:"denominator"`
}

// DefaultVowelMap returns the placement of а о э и ы у.
func DefaultVowelMap() [][2]float64 {
	return [][2]float64{
		{5, 5}, // а
		{4, 6}, // о
		{7, 5}, // э
		{9, 4}, // и
		{7, 3}, // ы
		{3, 3}, // у
	}
}

// DefaultConsonantMap returns the placement of р л н м п т к с х ш ч ф.
// й has no placement and is only close to itself.
func DefaultConsonantMap() [][2]float64 {
	return [][2]float64{
		{0, 1},   // р
		{0.5, 1}, // л
		{1, 1},   // н
		{1.5, 1}, // м
		{3, 1},   // п
		{4, 0},   // т
		{4, 2},   // к
		{5, 0},   // с
		{5, 2},   // х
		{6, 1},   // ш
		{8, 0},   // ч
		{3, 0},   // ф
	}
}

// between returns the capped placement distance of two table entries, plus
// extra, or 1 when either entry is missing.
func (a *Articulation) between(i, j int, extra float64) float64 {
	if i >= len(a.Map) || j >= len(a.Map) || a.Denominator <= 0 {
		return 1
	}
	p, q := a.Map[i], a.Map[j]
	d := math.Pow(math.Abs(p[0]-q[0]), a.Pow) + math.Pow(math.Abs(p[1]-q[1]), a.Pow) + extra
	return math.Min(1, d/a.Denominator)
}

// Distance returns the phonetic distance between two vowels in [0, 1].
// Wildcard classes are at zero distance from every vowel. Stress is not
// considered here.
func (v Vowel) Distance(o Vowel, a *Articulation) float64 {
	if v.Letter.Wildcard() || o.Letter.Wildcard() || v.Letter == o.Letter {
		return 0
	}
	return a.between(int(v.Letter), int(o.Letter), 0)
}

const attributePenalty = 0.5

// Distance returns the phonetic distance between two consonants in [0, 1].
// A difference in voicing or palatalization adds a fixed penalty before the
// result is capped.
func (c Consonant) Distance(o Consonant, a *Articulation) float64 {
	if c == o {
		return 0
	}
	if c.Letter != o.Letter && (c.Letter == ConsonantJ || o.Letter == ConsonantJ) {
		return 1
	}
	var extra float64
	if c.Voiced != o.Voiced {
		extra += attributePenalty
	}
	if c.Palatalized != o.Palatalized {
		extra += attributePenalty
	}
	if c.Letter == o.Letter {
		if a.Denominator <= 0 {
			return 1
		}
		return math.Min(1, extra/a.Denominator)
	}
	return a.between(int(c.Letter), int(o.Letter), extra)
}

// PhonemeKind tags a Phoneme as a vowel or a consonant.
type PhonemeKind uint8

const (
	KindVowel PhonemeKind = iota
	KindConsonant
)

// Phoneme is either a Vowel or a Consonant, as selected by Kind.
type Phoneme struct {
	Kind      PhonemeKind
	Vowel     Vowel
	Consonant Consonant
}

func (p Phoneme) String() string {
	if p.Kind == KindVowel {
		return p.Vowel.String()
	}
	return p.Consonant.String()
}
