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


package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/rhymer/config"
	"github.com/poiesic/rhymer/dictionary"
	"github.com/poiesic/rhymer/distance"
	"github.com/poiesic/rhymer/meaning"
	"github.com/poiesic/rhymer/phonetics"
)

// Query describes one rhyme search.
type Query struct {
	Word *phonetics.Word

	// Category is the grammatical category of the query word, empty when
	// unknown. It drives the same part of speech term.
	Category string

	// Exclude lists grammatical categories never returned.
	Exclude []string

	// Field biases results toward a theme when set.
	Field *meaning.Field

	// Constraint is a regular expression every returned surface form must
	// match. Empty means no constraint.
	Constraint string

	TopN int
}

// Searcher ranks the form groups of a dictionary index.
type Searcher struct {
	index    *dictionary.Index
	weights  *config.Weights
	logger   *slog.Logger
	poolSize int
	pool     *ants.Pool
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize shards the scan over size workers. Size 1, the default,
// scans sequentially without a pool.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			return ErrInvalidPoolSize
		}
		s.poolSize = size
		return nil
	}
}

// NewSearcher creates a new searcher. Close it to release the worker pool.
func NewSearcher(index *dictionary.Index, weights *config.Weights, opts ...Option) (*Searcher, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}
	if weights == nil {
		return nil, ErrWeightsRequired
	}

	s := &Searcher{
		index:    index,
		weights:  weights,
		logger:   slog.Default(),
		poolSize: 1,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.poolSize > 1 {
		pool, err := ants.NewPool(s.poolSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create worker pool: %w", err)
		}
		s.pool = pool
	}
	return s, nil
}

// poolReleaseTimeout bounds how long Close waits for workers to exit.
const poolReleaseTimeout = 5 * time.Second

// Close releases the worker pool, if any, and waits for its workers.
func (s *Searcher) Close() error {
	if s.pool == nil {
		return nil
	}
	err := s.pool.ReleaseTimeout(poolReleaseTimeout)
	s.pool = nil
	if err != nil {
		return fmt.Errorf("failed to release worker pool: %w", err)
	}
	return nil
}

// FindBest returns up to q.TopN results in ascending order of distance.
func (s *Searcher) FindBest(ctx context.Context, q Query) ([]distance.Result, error) {
	return s.FindBestWithMonitor(ctx, q, nil)
}

// FindBestWithMonitor is FindBest reporting its stages to monitor.
// Every error is returned before any result is produced.
func (s *Searcher) FindBestWithMonitor(ctx context.Context, q Query, monitor SearchMonitor) ([]distance.Result, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if q.Word == nil {
		return nil, ErrWordRequired
	}

	var constraint *regexp.Regexp
	if q.Constraint != "" {
		re, err := regexp.Compile(q.Constraint)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedConstraint, err)
		}
		constraint = re
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	monitor.Start(q.Word)
	if q.TopN <= 0 {
		monitor.Finish(nil)
		return []distance.Result{}, nil
	}

	allowed, filtered := s.allowedWords(q.Word, constraint)
	monitor.AfterCandidateFilter(allowed.Len(), filtered)
	if !filtered {
		allowed = nil
	}

	sc := &scan{
		searcher: s,
		query:    q,
		allowed:  allowed,
		exclude:  make(map[string]bool, len(q.Exclude)),
	}
	for _, c := range q.Exclude {
		sc.exclude[c] = true
	}

	var (
		best *topN
		err  error
	)
	if s.pool == nil {
		best, err = sc.run(ctx, 0, s.index.GroupCount())
	} else {
		best, err = s.runSharded(ctx, sc)
	}
	if err != nil {
		s.logger.Error("search aborted", "query", q.Word.Text(), "err", err)
		return nil, err
	}
	monitor.AfterScan(int(sc.scored.Load()), int(sc.skipped.Load()))

	results := best.Sorted()
	monitor.Finish(results)
	return results, nil
}

// allowedWords computes the candidate words: the stress-compatible forms,
// narrowed by the constraint. filtered is false when every word may be
// scanned, which is the case unless index mode is on or a constraint is set.
func (s *Searcher) allowedWords(w *phonetics.Word, constraint *regexp.Regexp) (*dictionary.WordSet, bool) {
	if !s.weights.Stresses.Indexation && constraint == nil {
		return nil, false
	}

	var candidates *dictionary.WordSet
	if len(w.Stresses()) > 0 {
		candidates = s.index.CandidatesMatchingStress(w)
	}
	if constraint == nil {
		return candidates, candidates != nil
	}

	matching := dictionary.NewWordSet(s.index.WordCount())
	if candidates != nil {
		for i := range candidates.All() {
			if constraint.MatchString(s.index.Word(i).Surface()) {
				matching.Add(i)
			}
		}
	} else {
		for i := range s.index.WordCount() {
			if constraint.MatchString(s.index.Word(i).Surface()) {
				matching.Add(i)
			}
		}
	}
	return matching, true
}

func (s *Searcher) runSharded(ctx context.Context, sc *scan) (*topN, error) {
	groups := s.index.GroupCount()
	shards := min(s.poolSize, max(groups, 1))
	size := (groups + shards - 1) / shards

	heaps := make([]*topN, shards)
	errs := make([]error, shards)
	var wg sync.WaitGroup
	for i := range shards {
		from, to := i*size, min((i+1)*size, groups)
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			heaps[i], errs[i] = sc.run(ctx, from, to)
		})
		if err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("failed to submit shard: %w", err)
		}
	}
	wg.Wait()

	best := newTopN(sc.query.TopN)
	for i := range shards {
		if errs[i] != nil {
			return nil, errs[i]
		}
		best.Merge(heaps[i])
	}
	return best, nil
}

// scan is the state of one FindBest call shared by its shards.
type scan struct {
	searcher *Searcher
	query    Query
	allowed  *dictionary.WordSet
	exclude  map[string]bool

	scored  atomic.Int64
	skipped atomic.Int64
}

// ctxCheckInterval is how many groups are scored between context checks.
const ctxCheckInterval = 1024

// run scores groups [from, to) into a fresh heap.
func (sc *scan) run(ctx context.Context, from, to int) (*topN, error) {
	best := newTopN(sc.query.TopN)
	for g := from; g < to; g++ {
		if (g-from)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		res, ok, err := sc.scoreGroup(g)
		if err != nil {
			return nil, err
		}
		if !ok {
			sc.skipped.Add(1)
			continue
		}
		sc.scored.Add(1)
		best.Push(res)
	}
	return best, nil
}

// scoreGroup returns the result of group g, or ok false when the group is
// excluded or none of its members qualifies.
func (sc *scan) scoreGroup(g int) (distance.Result, bool, error) {
	idx := sc.searcher.index
	w := sc.searcher.weights
	group := idx.Group(g)
	if sc.exclude[group.Category] {
		return distance.Result{}, false, nil
	}

	var (
		bestWord *phonetics.Word
		bestCore distance.Core
		bestSum  = math.Inf(1)
	)
	for i, word := range idx.Members(g) {
		if sc.allowed != nil && !sc.allowed.Contains(i) {
			continue
		}
		c := distance.MeasureCore(sc.query.Word, word, w)
		sum := c.Sum()
		if math.IsNaN(sum) {
			return distance.Result{}, false, fmt.Errorf("%w: core distance to %q", distance.ErrNotANumber, word.Text())
		}
		if bestWord == nil || sum < bestSum {
			bestWord, bestCore, bestSum = word, c, sum
		}
	}
	if bestWord == nil {
		return distance.Result{}, false, nil
	}

	res := distance.NewResult(bestWord, g, bestCore)
	AddGroupTerms(&res, group, sc.query, w)
	if err := res.Finish(); err != nil {
		return distance.Result{}, false, err
	}
	return res, true, nil
}

// AddGroupTerms adds the terms that depend on the candidate's form group:
// meaning (when the query has a field and the group a vector), popularity,
// asymmetry of res.Word and same part of speech. res.Total is not updated.
func AddGroupTerms(res *distance.Result, group dictionary.Group, q Query, w *config.Weights) {
	if q.Field != nil && group.Vector != nil {
		res.AddMeaning(q.Field, group.Vector, w)
	}
	res.AddPopularity(group.Rank, w)
	res.AddAsymmetry(res.Word.PhonemeCount(), w)
	res.AddSameSpeechPart(q.Category, group.Category, w)
}
