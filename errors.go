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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIndexRequired is returned when a Finder is created without an index.
	ErrIndexRequired = errors.New("dictionary index required")

	// ErrUnknownWord is returned for an unstressed query word missing from the dictionary.
	ErrUnknownWord = errors.New("word not found")

	// ErrUnknownTheme is returned for a theme name absent from the themes.
	ErrUnknownTheme = errors.New("unknown theme")
)

// UnknownWordError reports an unstressed word that is not in the dictionary,
// with the closest known forms.
type UnknownWordError struct {
	Word        string
	Suggestions []string
}

func (e *UnknownWordError) Error() string {
	msg := fmt.Sprintf("%v: %q; mark the stress with ' (and ` for secondary stresses)", ErrUnknownWord, e.Word)
	if len(e.Suggestions) > 0 {
		msg += "; did you mean " + strings.Join(e.Suggestions, ", ") + "?"
	}
	return msg
}

func (e *UnknownWordError) Unwrap() error {
	return ErrUnknownWord
}
