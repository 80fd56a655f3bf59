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


package meaning

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoVectors indicates a field requested from no reference vectors.
	ErrNoVectors = errors.New("semantic field needs at least one vector")

	// ErrDimensionMismatch indicates reference vectors of different sizes.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrUnknownWords indicates reference words missing from the dictionary.
	ErrUnknownWords = errors.New("unknown words")
)

// UnknownWordsError lists every reference word that could not be found.
type UnknownWordsError struct {
	Words []string
}

func (e *UnknownWordsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownWords, strings.Join(e.Words, ", "))
}

// Unwrap allows errors.Is(err, ErrUnknownWords).
func (e *UnknownWordsError) Unwrap() error {
	return ErrUnknownWords
}
