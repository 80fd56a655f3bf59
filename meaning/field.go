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


// Package meaning builds semantic fields from reference vectors and
// measures how far a candidate's vector lies from them.
package meaning

import (
	"fmt"
	"math"

	"github.com/poiesic/rhymer/config"
)

// minSigma keeps a dimension on which all references agree from dividing
// by zero.
const minSigma = 1e-6

// Field is the centroid of a set of reference vectors and, for two or more
// references, the relative dispersion of each dimension.
type Field struct {
	centroid   []float64
	dispersion []float64
}

// VectorLookup returns the semantic vector of a word.
type VectorLookup func(word string) ([]float32, bool)

// NewField builds a field. A single vector becomes the centroid as is and
// the field has no dispersion. Several vectors give an L2-normalized mean
// and per-dimension sample standard deviations divided by the smallest one.
func NewField(vectors [][]float32) (*Field, error) {
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: vector %d has %d dimensions, want %d", ErrDimensionMismatch, i, len(v), dim)
		}
	}

	if len(vectors) == 1 {
		f := &Field{centroid: make([]float64, dim)}
		for d, x := range vectors[0] {
			f.centroid[d] = float64(x)
		}
		return f, nil
	}

	n := float64(len(vectors))
	mean := make([]float64, dim)
	for _, v := range vectors {
		for d, x := range v {
			mean[d] += float64(x)
		}
	}
	for d := range mean {
		mean[d] /= n
	}

	sigma := make([]float64, dim)
	for _, v := range vectors {
		for d, x := range v {
			diff := float64(x) - mean[d]
			sigma[d] += diff * diff
		}
	}
	smallest := math.Inf(1)
	for d := range sigma {
		sigma[d] = math.Max(math.Sqrt(sigma[d]/(n-1)), minSigma)
		smallest = math.Min(smallest, sigma[d])
	}
	for d := range sigma {
		sigma[d] /= smallest
	}

	var norm float64
	for _, x := range mean {
		norm += x * x
	}
	if norm = math.Sqrt(norm); norm > 0 {
		for d := range mean {
			mean[d] /= norm
		}
	}
	return &Field{centroid: mean, dispersion: sigma}, nil
}

// FromWords builds a field from the vectors of reference words. Every word
// missing from lookup is reported in a single *UnknownWordsError.
func FromWords(words []string, lookup VectorLookup) (*Field, error) {
	var (
		vectors [][]float32
		missing []string
	)
	for _, word := range words {
		v, ok := lookup(word)
		if !ok {
			missing = append(missing, word)
			continue
		}
		vectors = append(vectors, v)
	}
	if len(missing) > 0 {
		return nil, &UnknownWordsError{Words: missing}
	}
	return NewField(vectors)
}

// Dimension returns the vector size the field was built from.
func (f *Field) Dimension() int {
	return len(f.centroid)
}

// HasDispersion reports whether the field was built from several vectors.
func (f *Field) HasDispersion() bool {
	return f.dispersion != nil
}

// Distance returns the weighted semantic distance of vec from the field.
// With dispersion it is the sum of |v-c|^pow / dispersion; without, the
// sum of |v-c|^single_pow scaled by single_weight. Both are
// multiplied by the meaning weight. A vector of the wrong size is at NaN
// distance.
func (f *Field) Distance(vec []float32, w *config.Meaning) float64 {
	if len(vec) != len(f.centroid) {
		return math.NaN()
	}
	var sum float64
	if f.dispersion != nil {
		for d, x := range vec {
			sum += math.Pow(math.Abs(float64(x)-f.centroid[d]), w.Pow) / f.dispersion[d]
		}
		return sum * w.Weight
	}
	for d, x := range vec {
		sum += math.Pow(math.Abs(float64(x)-f.centroid[d]), w.SinglePow)
	}
	return sum * w.SingleWeight * w.Weight
}
