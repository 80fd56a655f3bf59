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


// Package config holds the weights of the rhyme distance and the loaders for
// the YAML files that carry them.
package config

import "github.com/poiesic/rhymer/phonetics"

// Misc weights the word-end and syllable-count terms.
type Misc struct {
	SameConsEnd    float64 `yaml:"same_cons_end"`
	LengthDiffFine float64 `yaml:"length_diff_fine"`
}

// Stresses weights the vowel term.
type Stresses struct {
	KNotStrictStress float64 `yaml:"k_not_strict_stress"`
	KStrictStress    float64 `yaml:"k_strict_stress"`
	BadRhythm        float64 `yaml:"bad_rythm"`
	Asympt           float64 `yaml:"asympt"`
	Weight           float64 `yaml:"weight"`
	ShiftSyllEnding  float64 `yaml:"shift_syll_ending"`
	PowSyllEnding    float64 `yaml:"pow_syll_ending"`
	AsymptShift      float64 `yaml:"asympt_shift"`

	// Indexation is the strict stress index mode. When set, stressed vowel
	// pairs contribute nothing because candidates are already filtered by
	// stress signature.
	Indexation bool                   `yaml:"indexation"`
	Distance   phonetics.Articulation `yaml:"distance"`
}

// Alliteration weights the consonant term.
type Alliteration struct {
	ShiftCoord      float64                `yaml:"shift_coord"`
	ShiftSyllEnding float64                `yaml:"shift_syll_ending"`
	PowCoordDelta   float64                `yaml:"pow_coord_delta"`
	PowSyllEnding   float64                `yaml:"pow_syll_ending"`
	Weight          float64                `yaml:"weight"`
	Asympt          float64                `yaml:"asympt"`
	AsymptShift     float64                `yaml:"asympt_shift"`
	Permutations    float64                `yaml:"permutations"`
	Distance        phonetics.Articulation `yaml:"distance"`
}

// ConsonantStructure weights the cluster length term.
type ConsonantStructure struct {
	Pow             float64 `yaml:"pow"`
	Weight          float64 `yaml:"weight"`
	Asympt          float64 `yaml:"asympt"`
	ShiftSyllEnding float64 `yaml:"shift_syll_ending"`
	PowSyllEnding   float64 `yaml:"pow_syll_ending"`
	AsymptShift     float64 `yaml:"asympt_shift"`
}

// Meaning weights the semantic term.
type Meaning struct {
	Pow          float64 `yaml:"pow"`
	SinglePow    float64 `yaml:"single_pow"`
	SingleWeight float64 `yaml:"single_weight"`
	Weight       float64 `yaml:"weight"`
}

// Popularity weights the frequency rank term.
type Popularity struct {
	Weight float64 `yaml:"weight"`
	Pow    float64 `yaml:"pow"`
}

// Unsymmetrical weights the deviation of a candidate's phoneme count from
// the optimal length.
type Unsymmetrical struct {
	OptimalLength float64 `yaml:"optimal_length"`
	LessW         float64 `yaml:"less_w"`
	LessPow       float64 `yaml:"less_pow"`
	MoreW         float64 `yaml:"more_w"`
	MorePow       float64 `yaml:"more_pow"`
}

// SameSpeechPart is the bonus (negative) or fine added when query and
// candidate share a part of speech.
type SameSpeechPart struct {
	Verb float64 `yaml:"verb"`
	Noun float64 `yaml:"noun"`
	Adj  float64 `yaml:"adj"`
	Adv  float64 `yaml:"adv"`
}

// Weights is every constant read by the distance engine and the ranker.
type Weights struct {
	Misc               Misc               `yaml:"misc"`
	Stresses           Stresses           `yaml:"stresses"`
	Alliteration       Alliteration       `yaml:"alliteration"`
	ConsonantStructure ConsonantStructure `yaml:"consonant_structure"`
	Meaning            Meaning            `yaml:"meaning"`
	Popularity         Popularity         `yaml:"popularity"`
	Unsymmetrical      Unsymmetrical      `yaml:"unsymmetrical"`
	SameSpeechPart     SameSpeechPart     `yaml:"same_speech_part"`
}

// DefaultWeights returns the tuned defaults.
func DefaultWeights() *Weights {
	return &Weights{
		Misc: Misc{SameConsEnd: 0.5, LengthDiffFine: 0.2},
		Stresses: Stresses{
			KNotStrictStress: 0.6,
			KStrictStress:    1.2,
			BadRhythm:        3,
			Asympt:           0.5,
			Weight:           2,
			ShiftSyllEnding:  1,
			PowSyllEnding:    1.5,
			AsymptShift:      1,
			Indexation:       true,
			Distance:         phonetics.Articulation{Map: phonetics.DefaultVowelMap(), Pow: 0.5, Denominator: 3},
		},
		Alliteration: Alliteration{
			ShiftCoord:      1,
			ShiftSyllEnding: 1,
			PowCoordDelta:   1.5,
			PowSyllEnding:   1.5,
			Weight:          1.5,
			Asympt:          0.5,
			AsymptShift:     1,
			Permutations:    0.3,
			Distance:        phonetics.Articulation{Map: phonetics.DefaultConsonantMap(), Pow: 0.5, Denominator: 3},
		},
		ConsonantStructure: ConsonantStructure{
			Pow:             1,
			Weight:          0.5,
			Asympt:          0.5,
			ShiftSyllEnding: 1,
			PowSyllEnding:   1.5,
			AsymptShift:     1,
		},
		Meaning:        Meaning{Pow: 2, SinglePow: 2, SingleWeight: 1, Weight: 0.01},
		Popularity:     Popularity{Weight: 0.3, Pow: 0.1},
		Unsymmetrical:  Unsymmetrical{OptimalLength: 7, LessW: 0.05, LessPow: 1, MoreW: 0.02, MorePow: 1},
		SameSpeechPart: SameSpeechPart{Verb: -0.3, Noun: -0.2, Adj: -0.2, Adv: -0.1},
	}
}
