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


package phonetics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates that query text failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPrimaryStress indicates a word without exactly one primary stress.
	// Dictionary data or a caller that skipped validation produced it.
	ErrPrimaryStress = errors.New("word must have exactly one primary stress")
)

// InputError describes why query text was rejected.
type InputError struct {
	Text     string
	Position int // rune offset of the offending character, -1 for the whole text
	Reason   string
}

func (e *InputError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("%s %q: %s", ErrInvalidInput, e.Text, e.Reason)
	}
	return fmt.Sprintf("%s %q at position %d: %s", ErrInvalidInput, e.Text, e.Position, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
