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

import (
	"fmt"
	"strings"
)

// Ending is one inflection suffix with the stem it attaches to.
type Ending struct {
	Stem   int
	Suffix string
}

// Template is a parsed inflection template of the form
// <category>+<stem>;<stem>+<ending>;<ending>. An ending starting with a
// digit attaches to the stem with that index, otherwise to stem 0.
type Template struct {
	Category string
	Stems    []string
	Endings  []Ending
}

// adjectiveLike lists the categories whose -ого/-его endings read with в.
var adjectiveLike = map[string]bool{
	"п":      true,
	"мс":     true,
	"мс-п":   true,
	"г":      true,
	"числ-п": true,
}

// ParseTemplate parses an inflection template. A template with no stem
// part has a single empty stem, so its endings are whole forms.
func ParseTemplate(s string) (Template, error) {
	parts := strings.Split(s, "+")
	if len(parts) < 2 {
		return Template{}, fmt.Errorf("%w: %q needs a category and endings", ErrMalformedTemplate, s)
	}
	t := Template{Category: strings.TrimSpace(parts[0])}
	for _, p := range parts[1 : len(parts)-1] {
		t.Stems = append(t.Stems, strings.Split(p, ";")...)
	}
	if len(t.Stems) == 0 {
		t.Stems = []string{""}
	}

	for _, e := range strings.Split(parts[len(parts)-1], ";") {
		ending := Ending{Suffix: e}
		if r := []rune(e); len(r) > 0 && r[0] >= '0' && r[0] <= '9' {
			ending.Stem = int(r[0] - '0')
			ending.Suffix = string(r[1:])
		}
		if ending.Stem >= len(t.Stems) {
			return Template{}, fmt.Errorf("%w: %q selects stem %d of %d", ErrMalformedTemplate, s, ending.Stem, len(t.Stems))
		}
		t.Endings = append(t.Endings, ending)
	}
	return t, nil
}

// AdjectiveLike reports whether forms of the category are transcribed with
// the adjective genitive rule.
func (t Template) AdjectiveLike() bool {
	return adjectiveLike[t.Category]
}

// Forms returns the surface forms in ending order.
func (t Template) Forms() []string {
	forms := make([]string, len(t.Endings))
	for i, e := range t.Endings {
		forms[i] = t.Stems[e.Stem] + e.Suffix
	}
	return forms
}
