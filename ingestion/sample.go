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


package ingestion

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/poiesic/rhymer/config"
)

//go:embed sample.tsv
var sampleLexicon []byte

//go:embed sample_themes.yaml
var sampleThemes []byte

// Sample returns the built-in sample lexicon in lexicon file format.
func Sample() io.Reader {
	return bytes.NewReader(sampleLexicon)
}

// SampleThemes returns themes whose words all appear in the sample lexicon.
func SampleThemes() (config.Themes, error) {
	return config.ParseThemes(sampleThemes)
}

// SampleThemesYAML returns the raw sample themes document.
func SampleThemesYAML() []byte {
	return bytes.Clone(sampleThemes)
}
