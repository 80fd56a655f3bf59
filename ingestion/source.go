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
	"fmt"

	"github.com/poiesic/rhymer/dictionary"
	"github.com/poiesic/rhymer/storage"
)

// LoadSource reads every stored entry in load order into a dictionary
// source. Vectors are kept only when every entry has one of the same
// dimension; a lexicon with no vectors yields a source without them.
func LoadSource(ctx context.Context, repo storage.LexiconRepository) (dictionary.Source, error) {
	if repo == nil {
		return dictionary.Source{}, ErrRepositoryRequired
	}

	src := dictionary.Source{Templates: map[string]string{}}
	dim := -1
	for entry, err := range repo.Entries(ctx) {
		if err != nil {
			return dictionary.Source{}, fmt.Errorf("failed to read lexicon: %w", err)
		}
		if dim < 0 {
			dim = len(entry.Vector)
		} else if len(entry.Vector) != dim {
			return dictionary.Source{}, fmt.Errorf("%w: lemma %q has %d components, want %d",
				ErrDimensionMismatch, entry.Lemma, len(entry.Vector), dim)
		}
		src.Lemmas = append(src.Lemmas, entry.Lemma)
		src.Templates[entry.Lemma] = entry.Template
		if dim > 0 {
			src.Vectors = append(src.Vectors, entry.Vector)
		}
	}
	return src, nil
}
