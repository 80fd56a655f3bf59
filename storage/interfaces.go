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


package storage

import (
	"context"
	"iter"

	"github.com/poiesic/rhymer/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// LexiconRepository stores dictionary entries in load order.
type LexiconRepository interface {
	Repository

	// AddEntries adds or replaces entries. A new lemma is appended to the
	// load order; an existing lemma keeps its ordinal and has its template
	// and vector replaced. Returns the entries with IDs and ordinals set.
	AddEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error)

	// GetEntry retrieves the entry for a lemma.
	// Returns ErrNotFound if the lemma doesn't exist.
	GetEntry(ctx context.Context, lemma string) (*core.Entry, error)

	// DeleteEntries removes entries by lemma.
	// Returns ErrNotFound if any lemma doesn't exist.
	DeleteEntries(ctx context.Context, lemmas ...string) error

	// Entries yields every entry ordered by ordinal. Iteration stops at
	// the first error, which is yielded with a nil entry.
	Entries(ctx context.Context) iter.Seq2[*core.Entry, error]

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)
}
