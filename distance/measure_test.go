package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/rhymer/config"
	"github.com/poiesic/rhymer/phonetics"
)

func word(t *testing.T, text string) *phonetics.Word {
	t.Helper()
	w, err := phonetics.NewWord(text, false)
	require.NoError(t, err)
	return w
}

func pattern(t *testing.T, text string) *phonetics.Word {
	t.Helper()
	w, err := phonetics.NewAbstractWord(text)
	require.NoError(t, err)
	return w
}

func TestMeasureCore_Self(t *testing.T) {
	w := config.DefaultWeights()
	for _, text := range []string{"сло'во", "ко'шка", "подъе'зд", "самолё`тостро'ение"} {
		t.Run(text, func(t *testing.T) {
			a, b := word(t, text), word(t, text)
			assert.Equal(t, Core{}, MeasureCore(a, b, w))
		})
	}
}

func TestMeasureCore_OrderIndependent(t *testing.T) {
	w := config.DefaultWeights()
	short, long := word(t, "до'м"), word(t, "сло'во")
	assert.Equal(t, MeasureCore(short, long, w), MeasureCore(long, short, w))
}

func TestMeasureCore_Misc(t *testing.T) {
	w := config.DefaultWeights()
	c := MeasureCore(word(t, "до'м"), word(t, "сло'во"), w)
	assert.InDelta(t, 0.5+0.2, c.Misc, 1e-9)
}

func TestMeasureCore_BadRhythm(t *testing.T) {
	w := config.DefaultWeights()
	c := MeasureCore(word(t, "сло'во"), word(t, "моло'"), w)
	assert.InDelta(t, 2*6/math.Sqrt(3), c.Vowel, 1e-9)
}

func TestMeasureCore_UnstressedVowels(t *testing.T) {
	w := config.DefaultWeights()
	c := MeasureCore(word(t, "ма'ма"), word(t, "ма'мы"), w)
	d := 2 * math.Sqrt2 / 3
	assert.InDelta(t, 2*d/math.Sqrt(3), c.Vowel, 1e-9)
	assert.Zero(t, c.Consonant)
	assert.Zero(t, c.Structure)
	assert.Zero(t, c.Misc)
}

func TestMeasureCore_StrictStressMode(t *testing.T) {
	a, b := word(t, "ко'т"), word(t, "ка'т")

	w := config.DefaultWeights()
	assert.Equal(t, Core{}, MeasureCore(a, b, w))

	w.Stresses.Indexation = false
	c := MeasureCore(a, b, w)
	assert.InDelta(t, 1.2*(2.0/3)*2/math.Sqrt2, c.Vowel, 1e-9)
}

func TestMeasureCore_Structure(t *testing.T) {
	w := config.DefaultWeights()
	c := MeasureCore(word(t, "ко'т"), word(t, "кро'т"), w)
	assert.InDelta(t, 0.125, c.Structure, 1e-9)
	assert.Greater(t, c.Consonant, 0.0)
	assert.Zero(t, c.Vowel)
}

func TestMeasureCore_Alliteration(t *testing.T) {
	w := config.DefaultWeights()
	query := word(t, "ко'шка")
	near := MeasureCore(query, word(t, "мо'шка"), w)
	far := MeasureCore(query, word(t, "ко'рма"), w)
	assert.Less(t, near.Consonant, far.Consonant)

	t.Run("permutation term adds to the distance", func(t *testing.T) {
		w := config.DefaultWeights()
		w.Alliteration.Permutations = 0
		without := MeasureCore(query, word(t, "ко'рма"), w)
		assert.Less(t, without.Consonant, far.Consonant)
	})
}

func TestMeasureCore_Abstract(t *testing.T) {
	w := config.DefaultWeights()
	p := pattern(t, "!+")

	t.Run("same syllable count", func(t *testing.T) {
		c := MeasureCore(p, word(t, "сло'во"), w)
		assert.Equal(t, Core{}, c)
	})

	t.Run("different syllable count", func(t *testing.T) {
		for _, text := range []string{"до'м", "доро'га"} {
			c := MeasureCore(p, word(t, text), w)
			assert.Equal(t, AbstractMismatch, c.Misc)
			assert.Zero(t, c.Consonant)
			assert.Zero(t, c.Structure)
		}
	})

	t.Run("stress in the wrong place", func(t *testing.T) {
		c := MeasureCore(p, word(t, "моло'"), w)
		assert.Zero(t, c.Misc)
		assert.InDelta(t, 2*6/math.Sqrt(3), c.Vowel, 1e-9)
	})
}
