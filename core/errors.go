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

import "errors"

// Domain validation errors
var (
	// ErrInvalidEntry indicates an Entry failed validation.
	ErrInvalidEntry = errors.New("invalid lexicon entry")

	// ErrEmptyLemma indicates the Lemma field is empty.
	ErrEmptyLemma = errors.New("lemma cannot be empty")

	// ErrEmptyTemplate indicates the Template field is empty.
	ErrEmptyTemplate = errors.New("template cannot be empty")

	// ErrMalformedTemplate indicates the template has no category separator.
	ErrMalformedTemplate = errors.New("template must contain a category and endings")

	// ErrInvalidVector indicates a vector component is NaN or infinite.
	ErrInvalidVector = errors.New("vector components must be finite")

	// ErrIDMismatch indicates the entry ID is not the content ID of its lemma.
	ErrIDMismatch = errors.New("entry id does not match lemma")
)
