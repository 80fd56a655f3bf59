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
	"fmt"
	"math"

	"github.com/poiesic/rhymer/phonetics"
)

const (
	vowelMapSize     = 6
	consonantMapSize = 12
)

// Validate checks that every decay base is positive and that the
// articulation tables cover all letter classes. Load calls it.
func (w *Weights) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"stresses.shift_syll_ending", w.Stresses.ShiftSyllEnding},
		{"stresses.asympt_shift", w.Stresses.AsymptShift},
		{"alliteration.shift_coord", w.Alliteration.ShiftCoord},
		{"alliteration.shift_syll_ending", w.Alliteration.ShiftSyllEnding},
		{"alliteration.asympt_shift", w.Alliteration.AsymptShift},
		{"consonant_structure.shift_syll_ending", w.ConsonantStructure.ShiftSyllEnding},
		{"consonant_structure.asympt_shift", w.ConsonantStructure.AsymptShift},
	}
	for _, c := range checks {
		if !(c.value > 0) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s must be > 0 (got %v)", ErrInvalidWeights, c.name, c.value)
		}
	}
	if w.Unsymmetrical.OptimalLength < 0 {
		return fmt.Errorf("%w: unsymmetrical.optimal_length must be >= 0 (got %v)", ErrInvalidWeights, w.Unsymmetrical.OptimalLength)
	}
	if err := validateArticulation("stresses.distance", &w.Stresses.Distance, vowelMapSize); err != nil {
		return err
	}
	if err := validateArticulation("alliteration.distance", &w.Alliteration.Distance, consonantMapSize); err != nil {
		return err
	}
	return nil
}

func validateArticulation(name string, a *phonetics.Articulation, size int) error {
	if len(a.Map) < size {
		return fmt.Errorf("%w: %s.map needs %d entries (got %d)", ErrInvalidWeights, name, size, len(a.Map))
	}
	if !(a.Denominator > 0) {
		return fmt.Errorf("%w: %s.denominator must be > 0 (got %v)", ErrInvalidWeights, name, a.Denominator)
	}
	if !(a.Pow > 0) {
		return fmt.Errorf("%w: %s.pow must be > 0 (got %v)", ErrInvalidWeights, name, a.Pow)
	}
	return nil
}
