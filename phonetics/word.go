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
	"fmt"
	"iter"
	"strings"
)

// StressKey locates a stressed vowel by class and by its vowel distance from
// the end of the word (0 = last vowel).
type StressKey struct {
	Letter   VowelClass
	Position int
}

func (k StressKey) String() string {
	return fmt.Sprintf("%s@%d", k.Letter, k.Position)
}

// Cluster is a run of consonants between two vowels, given as an offset
// into the word's consonant sequence and a length. A cluster may be empty.
type Cluster struct {
	Start int
	Len   int
}

// Word is an immutable phoneme sequence built from a transcription.
// Construct it with NewWord or NewAbstractWord.
type Word struct {
	text          string
	surface       string
	transcription string

	phonemes   []Phoneme
	vowels     []Vowel
	consonants []Consonant

	// clusters are stored left to right; there is one more than vowels.
	clusters []Cluster
	abstract bool
}

// NewWord transcribes text and builds a word from it. The word must carry
// exactly one primary stress, either marked with ' or implied by ё.
func NewWord(text string, adjective bool) (*Word, error) {
	text = strings.ToLower(text)
	tr := Transcribe(text, adjective)
	w := parse(tr)
	w.text = text
	w.surface = StripStress(text)
	w.transcription = tr

	primaries := 0
	for _, v := range w.vowels {
		if v.Stress == StressPrimary {
			primaries++
		}
	}
	if primaries != 1 {
		return nil, fmt.Errorf("%w: %q has %d", ErrPrimaryStress, text, primaries)
	}
	return w, nil
}

// NewAbstractWord builds a stress template from a pattern of '+' (any
// vowel) and '!' (any stressed vowel) characters. Abstract words have no
// consonants and are compared on stress structure only.
func NewAbstractWord(pattern string) (*Word, error) {
	if pattern == "" {
		return nil, &InputError{Text: pattern, Position: -1, Reason: "empty pattern"}
	}
	w := &Word{text: pattern, surface: pattern, transcription: pattern, abstract: true}
	for i, r := range []rune(pattern) {
		var v Vowel
		switch r {
		case '+':
			v = Vowel{Letter: AnyVowel}
		case '!':
			v = Vowel{Letter: AnyStressedVowel, Stress: StressPrimary}
		default:
			return nil, &InputError{Text: pattern, Position: i, Reason: "pattern may only contain '+' and '!'"}
		}
		w.phonemes = append(w.phonemes, Phoneme{Kind: KindVowel, Vowel: v})
		w.vowels = append(w.vowels, v)
		w.clusters = append(w.clusters, Cluster{})
	}
	w.clusters = append(w.clusters, Cluster{})
	return w, nil
}

// parse splits a transcription into phonemes. Modifier marks apply to the
// phoneme just produced; runes that are neither letters nor marks are skipped.
func parse(tr string) *Word {
	w := &Word{}
	current := Cluster{}
	for _, r := range tr {
		if vc, ok := vowelClassOf(r); ok && !vc.Wildcard() {
			v := Vowel{Letter: vc}
			w.phonemes = append(w.phonemes, Phoneme{Kind: KindVowel, Vowel: v})
			w.vowels = append(w.vowels, v)
			w.clusters = append(w.clusters, current)
			current = Cluster{Start: len(w.consonants)}
			continue
		}
		if cc, ok := consonantClassOf(r); ok {
			c := Consonant{Letter: cc}
			w.phonemes = append(w.phonemes, Phoneme{Kind: KindConsonant, Consonant: c})
			w.consonants = append(w.consonants, c)
			current.Len++
			continue
		}
		if len(w.phonemes) == 0 {
			continue
		}
		last := &w.phonemes[len(w.phonemes)-1]
		switch {
		case last.Kind == KindVowel && isStressMark(r):
			if r == markPrimary {
				last.Vowel.Stress = StressPrimary
			} else {
				last.Vowel.Stress = StressSecondary
			}
			w.vowels[len(w.vowels)-1] = last.Vowel
		case last.Kind == KindConsonant && r == markVoiced:
			last.Consonant.Voiced = true
			w.consonants[len(w.consonants)-1] = last.Consonant
		case last.Kind == KindConsonant && r == markPalatalized:
			last.Consonant.Palatalized = true
			w.consonants[len(w.consonants)-1] = last.Consonant
		}
	}
	w.clusters = append(w.clusters, current)
	return w
}

// Text returns the word as given, lowercased, with stress marks.
func (w *Word) Text() string { return w.text }

// Surface returns the word without stress marks.
func (w *Word) Surface() string { return w.surface }

// Transcription returns the phoneme-letter string the word was built from.
func (w *Word) Transcription() string { return w.transcription }

// OnlyStressStructure reports whether the word is an abstract pattern.
func (w *Word) OnlyStressStructure() bool { return w.abstract }

func (w *Word) VowelCount() int { return len(w.vowels) }

func (w *Word) PhonemeCount() int { return len(w.phonemes) }

// Phonemes returns the phonemes left to right.
func (w *Word) Phonemes() iter.Seq[Phoneme] {
	return func(yield func(Phoneme) bool) {
		for _, p := range w.phonemes {
			if !yield(p) {
				return
			}
		}
	}
}

// VowelFromEnd returns the i-th vowel counting from the end. It panics if i
// is out of range.
func (w *Word) VowelFromEnd(i int) Vowel {
	return w.vowels[len(w.vowels)-1-i]
}

// VowelsFromEnd yields vowels from the end of the word toward its start,
// with their position from the end.
func (w *Word) VowelsFromEnd() iter.Seq2[int, Vowel] {
	return func(yield func(int, Vowel) bool) {
		for i := range w.vowels {
			if !yield(i, w.VowelFromEnd(i)) {
				return
			}
		}
	}
}

// ClusterFromEnd returns the i-th consonant cluster counting from the end.
// Cluster 0 follows the last vowel and cluster VowelCount precedes the
// first one.
func (w *Word) ClusterFromEnd(i int) Cluster {
	return w.clusters[len(w.clusters)-1-i]
}

// ConsonantClustersFromEnd yields all VowelCount+1 clusters from the end of
// the word, the last one marking the word start.
func (w *Word) ConsonantClustersFromEnd() iter.Seq2[int, Cluster] {
	return func(yield func(int, Cluster) bool) {
		for i := range w.clusters {
			if !yield(i, w.ClusterFromEnd(i)) {
				return
			}
		}
	}
}

// ClusterConsonants returns the consonants of c left to right. The result
// must not be modified.
func (w *Word) ClusterConsonants(c Cluster) []Consonant {
	return w.consonants[c.Start : c.Start+c.Len]
}

// HasConsonantTail reports whether the word ends in a consonant.
func (w *Word) HasConsonantTail() bool {
	return w.ClusterFromEnd(0).Len > 0
}

// PrimaryStress returns the primary stress nearest to the word end. ok is
// false when the word has none.
func (w *Word) PrimaryStress() (key StressKey, ok bool) {
	for i, v := range w.VowelsFromEnd() {
		if v.Stress == StressPrimary {
			return StressKey{Letter: v.Letter, Position: i}, true
		}
	}
	return StressKey{}, false
}

// Stresses returns every primary and secondary stress, nearest to the word
// end first.
func (w *Word) Stresses() []StressKey {
	var keys []StressKey
	for i, v := range w.VowelsFromEnd() {
		if v.Stressed() {
			keys = append(keys, StressKey{Letter: v.Letter, Position: i})
		}
	}
	return keys
}

func (w *Word) String() string {
	return w.text
}
