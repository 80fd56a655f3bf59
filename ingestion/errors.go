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
	"errors"
	"fmt"
)

var (
	// ErrRepositoryRequired is returned when a lexicon repository is not provided.
	ErrRepositoryRequired = errors.New("lexicon repository required")

	// ErrMalformedLine is returned for a lexicon line that cannot be parsed.
	ErrMalformedLine = errors.New("malformed lexicon line")

	// ErrDimensionMismatch is returned when entries carry vectors of different sizes.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrInvalidBatchSize is returned for a batch size below 1.
	ErrInvalidBatchSize = errors.New("batch size must be at least 1")

	// ErrInvalidMaxAttempts is returned when retry is configured with no attempts.
	ErrInvalidMaxAttempts = errors.New("max attempts must be at least 1")
)

// LineError reports the line of a lexicon file that failed to parse.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
