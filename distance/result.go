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


package distance

import (
	"fmt"
	"math"

	"github.com/poiesic/rhymer/config"
	"github.com/poiesic/rhymer/meaning"
	"github.com/poiesic/rhymer/phonetics"
)

// SpeechPart is a part of speech that earns the same-part term.
type SpeechPart uint8

const (
	SpeechPartUnknown SpeechPart = iota
	SpeechPartVerb
	SpeechPartNoun
	SpeechPartAdj
	SpeechPartAdv
)

// SpeechPartOf maps a grammatical category tag to a part of speech.
func SpeechPartOf(category string) SpeechPart {
	switch category {
	case "г":
		return SpeechPartVerb
	case "с":
		return SpeechPartNoun
	case "п":
		return SpeechPartAdj
	case "н":
		return SpeechPartAdv
	default:
		return SpeechPartUnknown
	}
}

// Result is the distance of one candidate word with its breakdown.
type Result struct {
	Word  *phonetics.Word `yaml:"-"`
	Group int             `yaml:"-"`
	Total float64         `yaml:"total"`

	Core           `yaml:",inline"`
	Meaning        float64 `yaml:"meaning"`
	Popularity     float64 `yaml:"popularity"`
	Asymmetry      float64 `yaml:"unsymmetrical"`
	SameSpeechPart float64 `yaml:"same_speech_part"`
}

// NewResult starts a result from the core terms of word.
func NewResult(word *phonetics.Word, group int, core Core) Result {
	return Result{Word: word, Group: group, Core: core}
}

// AddMeaning adds the semantic distance of vec from field.
func (r *Result) AddMeaning(field *meaning.Field, vec []float32, w *config.Weights) {
	r.Meaning = field.Distance(vec, &w.Meaning)
}

// AddPopularity adds the frequency term for a form group rank.
func (r *Result) AddPopularity(rank int, w *config.Weights) {
	r.Popularity = w.Popularity.Weight * math.Pow(float64(rank), w.Popularity.Pow)
}

// AddAsymmetry fines a candidate whose phoneme count deviates from the
// optimal length.
func (r *Result) AddAsymmetry(phonemes int, w *config.Weights) {
	u := &w.Unsymmetrical
	dev := float64(phonemes) - u.OptimalLength
	switch {
	case dev > 0:
		r.Asymmetry = u.MoreW * math.Pow(dev, u.MorePow)
	case dev < 0:
		r.Asymmetry = u.LessW * math.Pow(-dev, u.LessPow)
	default:
		r.Asymmetry = 0
	}
}

// AddSameSpeechPart adds the table value when both categories name the same
// known part of speech.
func (r *Result) AddSameSpeechPart(queryCategory, category string, w *config.Weights) {
	r.SameSpeechPart = 0
	part := SpeechPartOf(queryCategory)
	if part == SpeechPartUnknown || part != SpeechPartOf(category) {
		return
	}
	switch part {
	case SpeechPartVerb:
		r.SameSpeechPart = w.SameSpeechPart.Verb
	case SpeechPartNoun:
		r.SameSpeechPart = w.SameSpeechPart.Noun
	case SpeechPartAdj:
		r.SameSpeechPart = w.SameSpeechPart.Adj
	case SpeechPartAdv:
		r.SameSpeechPart = w.SameSpeechPart.Adv
	}
}

// Finish sums every term into Total. A NaN total is an error.
func (r *Result) Finish() error {
	r.Total = r.Core.Sum() + r.Meaning + r.Popularity + r.Asymmetry + r.SameSpeechPart
	if math.IsNaN(r.Total) {
		return fmt.Errorf("%w: candidate %q", ErrNotANumber, r.Word)
	}
	return nil
}

// Less orders results by total distance.
func (r Result) Less(o Result) bool {
	return r.Total < o.Total
}
