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
	"math"

	"github.com/poiesic/rhymer/config"
	"github.com/poiesic/rhymer/phonetics"
)

// AbstractMismatch is the misc value of a pattern comparison whose
// syllable counts differ.
const AbstractMismatch = 1e9

// Core holds the four phonetic terms of a comparison.
type Core struct {
	Misc      float64 `yaml:"misc"`
	Vowel     float64 `yaml:"vowel"`
	Consonant float64 `yaml:"consonant"`
	Structure float64 `yaml:"structure"`
}

// Sum returns the sum of the terms.
func (c Core) Sum() float64 {
	return c.Misc + c.Vowel + c.Consonant + c.Structure
}

// MeasureCore compares two words. The word with fewer vowels becomes the
// reference and only its length of suffix is aligned, so the result does not
// depend on which argument is shorter. When either word is abstract only
// the vowel term and the syllable count check apply.
func MeasureCore(a, b *phonetics.Word, w *config.Weights) Core {
	if b.VowelCount() < a.VowelCount() {
		a, b = b, a
	}
	n := a.VowelCount()

	var c Core
	c.Vowel = vowelTerm(a, b, n, &w.Stresses)
	if a.OnlyStressStructure() || b.OnlyStressStructure() {
		if a.VowelCount() != b.VowelCount() {
			c.Misc = AbstractMismatch
		}
		return c
	}

	if a.HasConsonantTail() != b.HasConsonantTail() {
		c.Misc += w.Misc.SameConsEnd
	}
	c.Misc += w.Misc.LengthDiffFine * float64(b.VowelCount()-a.VowelCount())
	c.Consonant = consonantTerm(a, b, n, &w.Alliteration)
	c.Structure = structureTerm(a, b, n, &w.ConsonantStructure)
	return c
}

func normalize(sum float64, n int, shift, asympt, weight float64) float64 {
	return sum / math.Pow(float64(n)+shift, asympt) * weight
}

func vowelTerm(a, b *phonetics.Word, n int, s *config.Stresses) float64 {
	var sum float64
	for i := range n {
		x, y := a.VowelFromEnd(i), b.VowelFromEnd(i)
		decay := math.Pow(float64(i)+s.ShiftSyllEnding, s.PowSyllEnding)
		d := x.Distance(y, &s.Distance)

		switch {
		case x.Stress == phonetics.StressNone && y.Stress == phonetics.StressNone:
			sum += d / decay
		case x.Stress == phonetics.StressPrimary && y.Stress == phonetics.StressNone,
			x.Stress == phonetics.StressNone && y.Stress == phonetics.StressPrimary:
			sum += s.BadRhythm
		case x.Stress != phonetics.StressPrimary && y.Stress != phonetics.StressPrimary:
			sum += s.KNotStrictStress * d / decay
		case !s.Indexation:
			sum += s.KStrictStress * d / decay
		}
	}
	return normalize(sum, n, s.AsymptShift, s.Asympt, s.Weight)
}

// placed is a consonant with its cluster index from the end and its offset
// from the right edge of that cluster.
type placed struct {
	c    phonetics.Consonant
	k, r int
}

func placeConsonants(w *phonetics.Word, n int) []placed {
	var out []placed
	for k := 0; k <= n; k++ {
		cs := w.ClusterConsonants(w.ClusterFromEnd(k))
		for j, c := range cs {
			out = append(out, placed{c: c, k: k, r: len(cs) - 1 - j})
		}
	}
	return out
}

func consonantTerm(a, b *phonetics.Word, n int, al *config.Alliteration) float64 {
	pa, pb := placeConsonants(a, n), placeConsonants(b, n)

	cross := func(xs, ys []placed) float64 {
		var sum float64
		for _, x := range xs {
			for _, y := range ys {
				weight := math.Pow(math.Abs(float64(x.k-y.k))+al.ShiftCoord, al.PowCoordDelta) *
					math.Pow(float64(x.k+y.k+x.r+y.r)+al.ShiftSyllEnding, al.PowSyllEnding)
				sum += x.c.Distance(y.c, &al.Distance) / weight
			}
		}
		return sum
	}
	energy := cross(pa, pb) - 0.5*cross(pa, pa) - 0.5*cross(pb, pb)
	if energy < 0 {
		energy = 0
	}

	best := func(xs, ys []placed) float64 {
		var sum float64
		for _, x := range xs {
			m := 1.0
			for _, y := range ys {
				m = math.Min(m, x.c.Distance(y.c, &al.Distance))
			}
			sum += m
		}
		return sum
	}
	permutation := al.Permutations * (best(pa, pb) + best(pb, pa))

	return normalize(energy+permutation, n, al.AsymptShift, al.Asympt, al.Weight)
}

func structureTerm(a, b *phonetics.Word, n int, cs *config.ConsonantStructure) float64 {
	var sum float64
	for k := 0; k <= n; k++ {
		diff := math.Abs(float64(a.ClusterFromEnd(k).Len - b.ClusterFromEnd(k).Len))
		if diff == 0 {
			continue
		}
		sum += math.Pow(diff, cs.Pow) / math.Pow(float64(k)+cs.ShiftSyllEnding, cs.PowSyllEnding)
	}
	return normalize(sum, n, cs.AsymptShift, cs.Asympt, cs.Weight)
}
