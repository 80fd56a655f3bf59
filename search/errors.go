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


package search

import "errors"

var (
	// ErrIndexRequired is returned when a dictionary index is not provided.
	ErrIndexRequired = errors.New("dictionary index required")

	// ErrWeightsRequired is returned when weights are not provided.
	ErrWeightsRequired = errors.New("weights required")

	// ErrWordRequired is returned when a query has no word.
	ErrWordRequired = errors.New("query word required")

	// ErrInvalidPoolSize is returned for a worker pool size below 1.
	ErrInvalidPoolSize = errors.New("pool size must be at least 1")

	// ErrMalformedConstraint is returned when a surface constraint does not
	// compile as a regular expression.
	ErrMalformedConstraint = errors.New("malformed surface constraint")
)
