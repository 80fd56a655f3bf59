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
	"sort"

	"gopkg.in/yaml.v3"
)

// Themes maps a theme name to its reference words.
type Themes map[string][]string

// Names returns the theme names in sorted order.
func (t Themes) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadThemes reads a YAML mapping of theme names to word lists. A missing
// file yields no themes.
func LoadThemes(path string) (Themes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Themes{}, nil
		}
		return nil, fmt.Errorf("failed to read themes: %w", err)
	}
	return ParseThemes(data)
}

// ParseThemes decodes a YAML themes document. Every theme needs at least
// one word.
func ParseThemes(data []byte) (Themes, error) {
	themes := Themes{}
	if err := yaml.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThemes, err)
	}
	for name, words := range themes {
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: theme %q has no words", ErrInvalidThemes, name)
		}
	}
	return themes, nil
}
