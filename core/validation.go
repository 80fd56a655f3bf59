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


package core

import (
	"fmt"
	"math"
	"strings"
)

// ValidateEntry validates an Entry according to domain rules.
//
// Validation rules:
//   - Lemma must not be empty or blank
//   - Template must not be empty and must contain a '+' separator
//   - Vector components must be finite
//   - Id, when set, must equal IDFromContent(Lemma)
//
// NOT validated:
//   - Template stem references (checked when the index is built)
//   - Vector dimension (checked across the lexicon by the importer)
//   - Ordinal (assigned by the store)
func ValidateEntry(entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if strings.TrimSpace(entry.Lemma) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyLemma)
	}

	if entry.Template == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyTemplate)
	}

	if !strings.Contains(entry.Template, "+") {
		return fmt.Errorf("%w: %w: %q", ErrInvalidEntry, ErrMalformedTemplate, entry.Template)
	}

	if err := ValidateVector(entry.Vector); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	if entry.Id != 0 && entry.Id != IDFromContent(entry.Lemma) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidEntry, ErrIDMismatch, entry.Lemma)
	}

	return nil
}

// ValidateVector checks that every component is a finite number.
func ValidateVector(vector []float32) error {
	for i, v := range vector {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: component %d is %v", ErrInvalidVector, i, v)
		}
	}
	return nil
}
