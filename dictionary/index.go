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
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/poiesic/rhymer/phonetics"
)

// Source is the decoded dictionary: lemmas in load order, an inflection
// template per lemma and semantic vectors aligned with the lemmas. Vectors
// may be empty, in which case groups carry no vector.
type Source struct {
	Lemmas    []string
	Templates map[string]string
	Vectors   [][]float32
}

// Group is the set of forms of one lemma.
type Group struct {
	Lemma    string
	Category string
	Vector   []float32

	// Rank is the lemma's position in load order; lower is more frequent.
	Rank  int
	Start int
	Len   int
}

// End returns the index one past the group's last word.
func (g Group) End() int {
	return g.Start + g.Len
}

// Index is the read-only word collection.
type Index struct {
	words     []*phonetics.Word
	groups    []Group
	wordGroup []int

	surface  map[string]int
	surfaces []string // unique surface forms in load order

	stress     map[phonetics.StressKey]*WordSet
	byPosition map[int]*WordSet
}

// BuildOption configures Build.
type BuildOption func(*builder) error

type builder struct {
	logger *slog.Logger
}

// WithLogger sets the logger used while building.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(b *builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// Build creates an index from src. Every surface form must yield a valid
// word; a form without vowels is skipped and a monosyllable without stress
// marks is stressed on its only vowel.
func Build(src Source, opts ...BuildOption) (*Index, error) {
	b := &builder{logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	if len(src.Vectors) != 0 && len(src.Vectors) != len(src.Lemmas) {
		return nil, fmt.Errorf("%w: %d vectors for %d lemmas", ErrSourceMismatch, len(src.Vectors), len(src.Lemmas))
	}

	idx := &Index{
		surface:    make(map[string]int),
		stress:     make(map[phonetics.StressKey]*WordSet),
		byPosition: make(map[int]*WordSet),
	}
	for rank, lemma := range src.Lemmas {
		raw, ok := src.Templates[lemma]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingTemplate, lemma)
		}
		tmpl, err := ParseTemplate(raw)
		if err != nil {
			return nil, fmt.Errorf("lemma %q: %w", lemma, err)
		}
		g := Group{Lemma: lemma, Category: tmpl.Category, Rank: rank, Start: len(idx.words)}
		if len(src.Vectors) != 0 {
			g.Vector = src.Vectors[rank]
		}
		if err := idx.checkContiguous(g); err != nil {
			return nil, err
		}

		for _, form := range tmpl.Forms() {
			form = strings.ToLower(strings.TrimSpace(form))
			if phonetics.VowelLetterCount(form) == 0 {
				b.logger.Debug("skipping form without vowels", "lemma", lemma, "form", form)
				continue
			}
			form, _ = phonetics.AutoStress(form)
			w, err := phonetics.NewWord(form, tmpl.AdjectiveLike())
			if err != nil {
				return nil, fmt.Errorf("%w: lemma %q: %w", ErrInvalidForm, lemma, err)
			}
			idx.add(w, len(idx.groups))
			g.Len++
		}
		idx.groups = append(idx.groups, g)
	}

	b.logger.Info("dictionary built",
		"lemmas", len(idx.groups),
		"words", len(idx.words),
		"surfaces", len(idx.surfaces),
		"stress_keys", len(idx.stress))
	return idx, nil
}

func (idx *Index) checkContiguous(g Group) error {
	if n := len(idx.groups); n > 0 && idx.groups[n-1].End() != g.Start {
		return fmt.Errorf("%w: group %d starts at %d, previous ends at %d",
			ErrGroupRange, n, g.Start, idx.groups[n-1].End())
	}
	return nil
}

func (idx *Index) add(w *phonetics.Word, group int) {
	i := len(idx.words)
	idx.words = append(idx.words, w)
	idx.wordGroup = append(idx.wordGroup, group)

	if _, seen := idx.surface[w.Surface()]; !seen {
		idx.surface[w.Surface()] = i
		idx.surfaces = append(idx.surfaces, w.Surface())
	}

	if key, ok := w.PrimaryStress(); ok {
		set(idx.stress, key, i)
		set(idx.byPosition, key.Position, i)
	}
}

func set[K comparable](m map[K]*WordSet, key K, i int) {
	s, ok := m[key]
	if !ok {
		s = &WordSet{}
		m[key] = s
	}
	s.Add(i)
}

func key(surface string) string {
	return phonetics.StripStress(strings.ToLower(strings.TrimSpace(surface)))
}

// WordCount returns the number of words.
func (idx *Index) WordCount() int { return len(idx.words) }

// GroupCount returns the number of form groups.
func (idx *Index) GroupCount() int { return len(idx.groups) }

// Word returns the word at index i.
func (idx *Index) Word(i int) *phonetics.Word { return idx.words[i] }

// Group returns the form group at index g.
func (idx *Index) Group(g int) Group { return idx.groups[g] }

// GroupOf returns the form group holding word i.
func (idx *Index) GroupOf(i int) int { return idx.wordGroup[i] }

// Groups yields every form group in load order.
func (idx *Index) Groups() iter.Seq2[int, Group] {
	return func(yield func(int, Group) bool) {
		for i, g := range idx.groups {
			if !yield(i, g) {
				return
			}
		}
	}
}

// Members yields the words of form group g with their indices.
func (idx *Index) Members(g int) iter.Seq2[int, *phonetics.Word] {
	return func(yield func(int, *phonetics.Word) bool) {
		grp := idx.groups[g]
		for i := grp.Start; i < grp.End(); i++ {
			if !yield(i, idx.words[i]) {
				return
			}
		}
	}
}

// LookupIndex returns the index of the first word with the given surface
// form. Stress marks in surface are ignored.
func (idx *Index) LookupIndex(surface string) (int, bool) {
	i, ok := idx.surface[key(surface)]
	return i, ok
}

// LookupExact returns the first word with the given surface form.
func (idx *Index) LookupExact(surface string) (*phonetics.Word, bool) {
	i, ok := idx.LookupIndex(surface)
	if !ok {
		return nil, false
	}
	return idx.words[i], true
}

// LookupFormGroup returns the form group of the word with the given surface.
func (idx *Index) LookupFormGroup(surface string) (int, bool) {
	i, ok := idx.LookupIndex(surface)
	if !ok {
		return 0, false
	}
	return idx.wordGroup[i], true
}

// LookupVector returns the semantic vector of the word's form group.
func (idx *Index) LookupVector(surface string) ([]float32, bool) {
	g, ok := idx.LookupFormGroup(surface)
	if !ok || idx.groups[g].Vector == nil {
		return nil, false
	}
	return idx.groups[g].Vector, true
}

// LookupCategory returns the grammatical category of the word's form group.
func (idx *Index) LookupCategory(surface string) (string, bool) {
	g, ok := idx.LookupFormGroup(surface)
	if !ok {
		return "", false
	}
	return idx.groups[g].Category, true
}
