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


package dictionary

import "errors"

var (
	// ErrSourceMismatch indicates vectors not aligned with the lemma list.
	ErrSourceMismatch = errors.New("vectors do not match lemmas")

	// ErrMissingTemplate indicates a lemma without an inflection template.
	ErrMissingTemplate = errors.New("lemma has no template")

	// ErrMalformedTemplate indicates a template that cannot be expanded.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrInvalidForm indicates a surface form that cannot become a word.
	ErrInvalidForm = errors.New("invalid word form")

	// ErrGroupRange indicates a form group whose word range is not
	// contiguous with the previous one.
	ErrGroupRange = errors.New("form group range is not contiguous")
)
