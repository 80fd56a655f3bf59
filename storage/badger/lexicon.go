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


package badger

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"iter"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/rhymer/core"
	"github.com/poiesic/rhymer/storage"
)

// LexiconRepository implements storage.LexiconRepository for BadgerDB.
type LexiconRepository struct {
	backend    *Backend
	ordinalSeq *badger.Sequence
}

var _ storage.LexiconRepository = (*LexiconRepository)(nil)

// NewLexiconRepository creates a new LexiconRepository.
func NewLexiconRepository(backend *Backend) (storage.LexiconRepository, error) {
	return newLexiconRepository(backend)
}

func newLexiconRepository(backend *Backend) (*LexiconRepository, error) {
	seq, err := backend.GetSequence(entryOrdinalSeq)
	if err != nil {
		return nil, err
	}
	return &LexiconRepository{
		backend:    backend,
		ordinalSeq: seq,
	}, nil
}

// Close releases the ordinal sequence.
func (r *LexiconRepository) Close() error {
	return r.ordinalSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *LexiconRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEntries adds or replaces entries in one transaction.
func (r *LexiconRepository) AddEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error) {
	for _, entry := range entries {
		if err := core.ValidateEntry(entry); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry.Id = core.IDFromContent(entry.Lemma)

			ordinal, found, err := readOrdinal(tx, entry.Id)
			if err != nil {
				return err
			}
			if found {
				old, err := readEntry(tx, makeEntryKey(ordinal))
				if err != nil {
					return err
				}
				if old != nil && old.Lemma != entry.Lemma {
					return fmt.Errorf("%w: lemmas %q and %q share id %d", storage.ErrDuplicateKey, old.Lemma, entry.Lemma, entry.Id)
				}
			} else {
				if ordinal, err = r.nextOrdinal(); err != nil {
					return err
				}
				if err := tx.Set(makeLemmaKey(entry.Id), encodeOrdinal(ordinal)); err != nil {
					return err
				}
			}
			entry.Ordinal = ordinal

			if err := tx.Set(makeEntryKey(ordinal), storage.MarshalEntry(entry)); err != nil {
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
		}
		return nil
	}, true)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// nextOrdinal draws from the sequence. BadgerDB sequences can return 0 on
// first call, so 0 is skipped and never used as an ordinal.
func (r *LexiconRepository) nextOrdinal() (uint64, error) {
	next, err := r.ordinalSeq.Next()
	if err != nil {
		return 0, err
	}
	if next == 0 {
		return r.ordinalSeq.Next()
	}
	return next, nil
}

// GetEntry retrieves the entry for a lemma.
func (r *LexiconRepository) GetEntry(ctx context.Context, lemma string) (*core.Entry, error) {
	var result *core.Entry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ordinal, found, err := readOrdinal(tx, core.IDFromContent(lemma))
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrNotFound
		}
		result, err = readEntry(tx, makeEntryKey(ordinal))
		if err != nil {
			return err
		}
		if result == nil || result.Lemma != lemma {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteEntries removes entries by lemma. Ordinals of deleted entries are
// not reused.
func (r *LexiconRepository) DeleteEntries(ctx context.Context, lemmas ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, lemma := range lemmas {
			id := core.IDFromContent(lemma)
			ordinal, found, err := readOrdinal(tx, id)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: lemma %q", storage.ErrNotFound, lemma)
			}
			if err := tx.Delete(makeEntryKey(ordinal)); err != nil {
				return err
			}
			if err := tx.Delete(makeLemmaKey(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Entries yields every entry in load order.
func (r *LexiconRepository) Entries(ctx context.Context) iter.Seq2[*core.Entry, error] {
	return func(yield func(*core.Entry, error) bool) {
		stopped := false
		err := r.backend.WithTx(func(tx *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(entryPrefix)
			it := tx.NewIterator(opts)
			defer it.Close()

			for it.Rewind(); it.Valid(); it.Next() {
				if err := ctx.Err(); err != nil {
					return err
				}
				var entry *core.Entry
				err := it.Item().Value(func(val []byte) error {
					var err error
					entry, err = storage.UnmarshalEntry(val)
					return err
				})
				if err != nil {
					return err
				}
				if !yield(entry, nil) {
					stopped = true
					return nil
				}
			}
			return nil
		}, false)
		if err != nil && !stopped {
			yield(nil, err)
		}
	}
}

// Count returns the number of stored entries.
func (r *LexiconRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix)
		opts.PrefetchValues = false
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if _, ok := ordinalFromKey(it.Item().Key()); ok {
				count++
			}
		}
		return ctx.Err()
	}, false)
	return count, err
}

// Helper methods

func encodeOrdinal(ordinal uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, ordinal)
}

// readOrdinal looks up the ordinal of a lemma by content ID.
func readOrdinal(tx *badger.Txn, id core.ID) (uint64, bool, error) {
	item, err := tx.Get(makeLemmaKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	var ordinal uint64
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("%w: ordinal of %d bytes", storage.ErrTruncatedData, len(val))
		}
		ordinal = binary.BigEndian.Uint64(val)
		return nil
	})
	return ordinal, err == nil, err
}

// readEntry reads an entry from the transaction. A missing key yields nil.
func readEntry(tx *badger.Txn, key []byte) (*core.Entry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.Entry
	err = item.Value(func(val []byte) error {
		var err error
		entry, err = storage.UnmarshalEntry(val)
		return err
	})
	return entry, err
}
