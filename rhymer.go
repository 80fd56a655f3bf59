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


package rhymer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/rhymer/config"
	"github.com/poiesic/rhymer/dictionary"
	"github.com/poiesic/rhymer/distance"
	"github.com/poiesic/rhymer/ingestion"
	"github.com/poiesic/rhymer/meaning"
	"github.com/poiesic/rhymer/phonetics"
	"github.com/poiesic/rhymer/search"
	"github.com/poiesic/rhymer/storage/badger"
)

const defaultSuggestions = 5

// Finder answers rhyme queries against one dictionary index.
type Finder struct {
	index    *dictionary.Index
	weights  *config.Weights
	themes   config.Themes
	searcher *search.Searcher
	options  *finderOptions
}

// Option configures a Finder.
type Option func(*finderOptions) error

type finderOptions struct {
	weights     *config.Weights
	themes      config.Themes
	logger      *slog.Logger
	poolSize    int
	suggestions int
}

// WithWeights sets the distance weights. Default is config.DefaultWeights().
func WithWeights(w *config.Weights) Option {
	return func(o *finderOptions) error {
		if w == nil {
			return nil
		}
		if err := w.Validate(); err != nil {
			return err
		}
		o.weights = w
		return nil
	}
}

// WithThemes sets the named themes available to requests.
func WithThemes(themes config.Themes) Option {
	return func(o *finderOptions) error {
		o.themes = themes
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *finderOptions) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// WithPoolSize sets the number of scan workers. Default is 1, a sequential scan.
func WithPoolSize(size int) Option {
	return func(o *finderOptions) error {
		o.poolSize = size
		return nil
	}
}

// WithSuggestions sets how many "did you mean" forms an UnknownWordError
// carries. Default is 5.
func WithSuggestions(n int) Option {
	return func(o *finderOptions) error {
		o.suggestions = max(0, n)
		return nil
	}
}

func applyOptions(opts []Option) (*finderOptions, error) {
	o := &finderOptions{
		weights:     config.DefaultWeights(),
		themes:      config.Themes{},
		logger:      slog.Default(),
		poolSize:    1,
		suggestions: defaultSuggestions,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// NewFinder creates a Finder over a built index.
func NewFinder(index *dictionary.Index, opts ...Option) (*Finder, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return newFinder(index, o)
}

func newFinder(index *dictionary.Index, o *finderOptions) (*Finder, error) {
	searcher, err := search.NewSearcher(index, o.weights,
		search.WithLogger(o.logger),
		search.WithPoolSize(o.poolSize))
	if err != nil {
		return nil, err
	}
	return &Finder{
		index:    index,
		weights:  o.weights,
		themes:   o.themes,
		searcher: searcher,
		options:  o,
	}, nil
}

// OpenFinder builds the index from the lexicon stored at dbPath. The store
// is closed once the index is built.
func OpenFinder(ctx context.Context, dbPath string, opts ...Option) (*Finder, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	repo, backend, err := badger.OpenLexicon(dbPath, badger.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			o.logger.Error("error closing lexicon repository", "err", err)
		}
		if err := backend.Close(); err != nil {
			o.logger.Error("error closing backend storage", "err", err)
		}
	}()

	src, err := ingestion.LoadSource(ctx, repo)
	if err != nil {
		return nil, err
	}
	index, err := dictionary.Build(src, dictionary.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	return newFinder(index, o)
}

// Close releases the scan workers.
func (f *Finder) Close() error {
	return f.searcher.Close()
}

// Index returns the dictionary index.
func (f *Finder) Index() *dictionary.Index {
	return f.index
}

// Weights returns the distance weights in use.
func (f *Finder) Weights() *config.Weights {
	return f.weights
}

// ParseWord turns query text into a word. Pattern text becomes an abstract
// word. Stressed text is transcribed as given. Unstressed text is looked up
// in the dictionary; a monosyllable not found there is stressed on its only
// vowel, anything else is an *UnknownWordError.
func (f *Finder) ParseWord(text string) (*phonetics.Word, error) {
	info, err := phonetics.ValidateQuery(text)
	if err != nil {
		return nil, err
	}

	switch {
	case info.Kind == phonetics.QueryPattern:
		return phonetics.NewAbstractWord(info.Text)
	case info.Stressed:
		return phonetics.NewWord(info.Text, false)
	}

	if w, ok := f.index.LookupExact(info.Text); ok {
		return w, nil
	}
	if stressed, ok := phonetics.AutoStress(info.Text); ok {
		return phonetics.NewWord(stressed, false)
	}
	return nil, &UnknownWordError{
		Word:        info.Text,
		Suggestions: f.index.Suggest(info.Text, f.options.suggestions),
	}
}

// Theme builds the semantic field of a named theme. Every reference word
// must be in the dictionary with a vector; otherwise the error is a
// *meaning.UnknownWordsError listing all missing words.
func (f *Finder) Theme(name string) (*meaning.Field, error) {
	words, ok := f.themes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownTheme, name, strings.Join(f.themes.Names(), ", "))
	}
	return meaning.FromWords(words, f.index.LookupVector)
}

// Request is one rhyme query.
type Request struct {
	// Text is the query word or pattern.
	Text string

	// Theme names the semantic theme, empty for none.
	Theme string

	// Exclude lists grammatical categories never returned.
	Exclude []string

	// Constraint is a regular expression over returned surface forms.
	Constraint string

	TopN int

	// Monitor observes the search stages when set.
	Monitor search.SearchMonitor
}

// SplitCategories parses a "+"-separated category list such as "г+н".
func SplitCategories(s string) []string {
	var out []string
	for c := range strings.SplitSeq(s, "+") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Find returns up to req.TopN words closest to req.Text.
func (f *Finder) Find(ctx context.Context, req Request) ([]distance.Result, error) {
	q, err := f.query(req.Text, req.Theme)
	if err != nil {
		return nil, err
	}
	q.Exclude = req.Exclude
	q.Constraint = req.Constraint
	q.TopN = req.TopN
	return f.searcher.FindBestWithMonitor(ctx, q, req.Monitor)
}

// Measure returns the distance from text to other with every term. The
// form group terms are included when other is a dictionary form.
func (f *Finder) Measure(ctx context.Context, text, other, theme string) (distance.Result, error) {
	q, err := f.query(text, theme)
	if err != nil {
		return distance.Result{}, err
	}
	measured, err := f.ParseWord(other)
	if err != nil {
		return distance.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return distance.Result{}, err
	}

	res := distance.NewResult(measured, -1, distance.MeasureCore(q.Word, measured, f.weights))
	if g, ok := f.index.LookupFormGroup(measured.Surface()); ok {
		res.Group = g
		search.AddGroupTerms(&res, f.index.Group(g), q, f.weights)
	}
	if err := res.Finish(); err != nil {
		return distance.Result{}, err
	}
	return res, nil
}

// query resolves the query word, its category and the theme field.
func (f *Finder) query(text, theme string) (search.Query, error) {
	w, err := f.ParseWord(text)
	if err != nil {
		return search.Query{}, err
	}
	q := search.Query{Word: w}
	if !w.OnlyStressStructure() {
		q.Category, _ = f.index.LookupCategory(w.Surface())
	}
	if theme != "" {
		if q.Field, err = f.Theme(theme); err != nil {
			return search.Query{}, err
		}
	}
	return q, nil
}
