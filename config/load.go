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


package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads weights from a YAML file. Fields absent from the file keep
// their defaults, and a missing file yields DefaultWeights.
func Load(path string) (*Weights, error) {
	w := DefaultWeights()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return w, nil
		}
		return nil, fmt.Errorf("failed to read weights: %w", err)
	}
	if err := yaml.Unmarshal(data, w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeights, err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Save writes weights as YAML.
func Save(path string, w *Weights) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to encode weights: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write weights: %w", err)
	}
	return nil
}
