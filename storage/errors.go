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


package storage

import "errors"

var (
	// ErrNotFound is returned when no entry is stored for a lemma.
	ErrNotFound = errors.New("lexicon entry not found")

	// ErrDuplicateKey is returned when two lemmas map to the same key.
	ErrDuplicateKey = errors.New("duplicate lemma key")

	// ErrTransactionFailed wraps commit failures. Callers may retry them.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrStorageClosed is returned by operations on a closed backend.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrSerializationFailed wraps entry and ID decoding failures.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrTruncatedData reports an encoded entry shorter than its header claims.
	ErrTruncatedData = errors.New("truncated entry data")
)
