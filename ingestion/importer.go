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


package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"time"

	"github.com/poiesic/rhymer/core"
	"github.com/poiesic/rhymer/storage"
)

const (
	defaultBatchSize   = 500
	defaultMaxAttempts = 3
	defaultRetryDelay  = 50 * time.Millisecond
)

// Importer writes lexicon entries to a repository in batches.
type Importer struct {
	repo        storage.LexiconRepository
	batchSize   int
	maxAttempts int
	retryDelay  time.Duration
	progress    *ProgressTracker
	logger      *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer) error

// WithBatchSize sets how many entries are written per transaction.
// Default is 500.
func WithBatchSize(size int) Option {
	return func(im *Importer) error {
		if size < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidBatchSize, size)
		}
		im.batchSize = size
		return nil
	}
}

// WithRetry sets the attempts and base backoff delay for batches that fail
// to commit. Default is 3 attempts starting at 50ms.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(im *Importer) error {
		if maxAttempts < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidMaxAttempts, maxAttempts)
		}
		im.maxAttempts = maxAttempts
		im.retryDelay = baseDelay
		return nil
	}
}

// WithProgress reports progress to w every interval entries. total may be
// 0 when the number of entries is not known in advance.
func WithProgress(w io.Writer, total, interval int) Option {
	return func(im *Importer) error {
		im.progress = NewProgressTracker(w, total, interval)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		im.logger = logger
		return nil
	}
}

// NewImporter creates an importer writing to repo.
func NewImporter(repo storage.LexiconRepository, opts ...Option) (*Importer, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	im := &Importer{
		repo:        repo,
		batchSize:   defaultBatchSize,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(im); err != nil {
			return nil, err
		}
	}
	return im, nil
}

// Stats summarizes an import.
type Stats struct {
	Entries   int
	Batches   int
	Dimension int
	Elapsed   time.Duration
}

// Import reads a lexicon file and stores its entries. Batches written
// before a failure stay stored.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Stats, error) {
	return im.ImportEntries(ctx, ReadEntries(r))
}

// ImportEntries stores a sequence of entries. Every entry must carry a
// vector of the same dimension as the first one.
func (im *Importer) ImportEntries(ctx context.Context, entries iter.Seq2[*core.Entry, error]) (Stats, error) {
	start := time.Now()
	stats := Stats{Dimension: -1}
	if im.progress != nil {
		im.progress.Start()
	}

	batch := make([]*core.Entry, 0, im.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := RetryWithBackoff(ctx, im.logger, func() error {
			_, err := im.repo.AddEntries(ctx, batch...)
			return err
		}, isTransient, im.maxAttempts, im.retryDelay)
		if err != nil {
			return fmt.Errorf("failed to store batch %d: %w", stats.Batches+1, err)
		}
		stats.Entries += len(batch)
		stats.Batches++
		if im.progress != nil {
			im.progress.Increment(len(batch))
		}
		batch = batch[:0]
		return nil
	}

	for entry, err := range entries {
		if err != nil {
			return im.finish(stats, start), err
		}
		if stats.Dimension < 0 {
			stats.Dimension = len(entry.Vector)
		} else if len(entry.Vector) != stats.Dimension {
			return im.finish(stats, start), fmt.Errorf("%w: lemma %q has %d components, want %d",
				ErrDimensionMismatch, entry.Lemma, len(entry.Vector), stats.Dimension)
		}
		batch = append(batch, entry)
		if len(batch) == im.batchSize {
			if err := flush(); err != nil {
				return im.finish(stats, start), err
			}
		}
	}
	if err := flush(); err != nil {
		return im.finish(stats, start), err
	}

	stats = im.finish(stats, start)
	im.logger.Info("lexicon imported",
		"entries", stats.Entries,
		"batches", stats.Batches,
		"dimension", stats.Dimension,
		"elapsed", stats.Elapsed)
	return stats, nil
}

func (im *Importer) finish(stats Stats, start time.Time) Stats {
	if im.progress != nil {
		im.progress.Finish()
	}
	stats.Dimension = max(0, stats.Dimension)
	stats.Elapsed = time.Since(start)
	return stats
}

// isTransient reports whether a store error is worth retrying.
func isTransient(err error) bool {
	return errors.Is(err, storage.ErrTransactionFailed)
}
