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


package badger

import "github.com/poiesic/rhymer/storage"

// OpenLexicon opens the lexicon repository stored at path.
// Caller must close both the repo and the backend when done.
func OpenLexicon(path string, opts ...BackendOption) (storage.LexiconRepository, *Backend, error) {
	return openLexicon(path, false, opts...)
}

func openLexicon(path string, inMemory bool, opts ...BackendOption) (storage.LexiconRepository, *Backend, error) {
	backend, err := OpenBackend(path, inMemory, opts...)
	if err != nil {
		return nil, nil, err
	}

	repo, err := newLexiconRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return repo, backend, nil
}
