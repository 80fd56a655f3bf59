package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/rhymer/phonetics"
)

func testSource() Source {
	lemmas := []string{"слово", "дом", "кот", "крот", "идти", "красивый", "быстро", "мама"}
	templates := map[string]string{
		"слово":    "с+сло'в;слов+о;а;у;ом;е;1а';1;1а'м;1а'ми;1а'х",
		"дом":      "с+до'м;дом+;а;у;ом;е;1а';1о'в",
		"кот":      "с+ко'т;кот+;а;у;ом;е;1ы';1о'в",
		"крот":     "с+кро'т;крот+;а;1ы'",
		"идти":     "г+ид;ш+ти';у';е'т;1ёл",
		"красивый": "п+краси'в+ый;ого;ому;ая",
		"быстро":   "н+бы'стро+",
		"мама":     "с+ма'м+а;ы;е;у",
	}
	vectors := make([][]float32, len(lemmas))
	for i := range vectors {
		vectors[i] = []float32{float32(i), 1}
	}
	return Source{Lemmas: lemmas, Templates: templates, Vectors: vectors}
}

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Build(testSource())
	require.NoError(t, err)
	return idx
}

func TestBuild(t *testing.T) {
	idx := buildTestIndex(t)

	assert.Equal(t, 8, idx.GroupCount())
	assert.Equal(t, 40, idx.WordCount())

	prevEnd := 0
	for i, g := range idx.Groups() {
		assert.Equal(t, prevEnd, g.Start, "group %d", i)
		assert.Equal(t, i, g.Rank)
		for w := range idx.Members(i) {
			assert.Equal(t, i, idx.GroupOf(w))
		}
		prevEnd = g.End()
	}
	assert.Equal(t, idx.WordCount(), prevEnd)

	g := idx.Group(0)
	assert.Equal(t, "слово", g.Lemma)
	assert.Equal(t, "с", g.Category)
	assert.Equal(t, 10, g.Len)
	assert.Equal(t, []float32{0, 1}, g.Vector)
}

func TestBuild_AdjectiveGenitive(t *testing.T) {
	idx := buildTestIndex(t)
	w, ok := idx.LookupExact("красивого")
	require.True(t, ok)
	assert.Equal(t, "крас^и'ф*аф*а", w.Transcription())
}

func TestBuild_AutoStress(t *testing.T) {
	idx := buildTestIndex(t)
	w, ok := idx.LookupExact("слов")
	require.True(t, ok)
	assert.Equal(t, "сло'в", w.Text())
}

func TestBuild_Errors(t *testing.T) {
	t.Run("vector count", func(t *testing.T) {
		src := testSource()
		src.Vectors = src.Vectors[:3]
		_, err := Build(src)
		assert.ErrorIs(t, err, ErrSourceMismatch)
	})

	t.Run("missing template", func(t *testing.T) {
		src := Source{Lemmas: []string{"кит"}, Templates: map[string]string{}}
		_, err := Build(src)
		assert.ErrorIs(t, err, ErrMissingTemplate)
	})

	t.Run("stem out of range", func(t *testing.T) {
		src := Source{Lemmas: []string{"кит"}, Templates: map[string]string{"кит": "с+ки'т+;2ы"}}
		_, err := Build(src)
		assert.ErrorIs(t, err, ErrMalformedTemplate)
	})

	t.Run("unstressed polysyllable", func(t *testing.T) {
		src := Source{Lemmas: []string{"корова"}, Templates: map[string]string{"корова": "с+коров+а"}}
		_, err := Build(src)
		assert.ErrorIs(t, err, ErrInvalidForm)
		assert.ErrorIs(t, err, phonetics.ErrPrimaryStress)
	})
}

func TestBuild_SkipsVowellessForms(t *testing.T) {
	src := Source{
		Lemmas:    []string{"ж", "кит"},
		Templates: map[string]string{"ж": "ч+ж+", "кит": "с+кит+"},
	}
	idx, err := Build(src)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.GroupCount())
	assert.Zero(t, idx.Group(0).Len)
	assert.Equal(t, 1, idx.Group(1).Len)
	assert.Equal(t, 0, idx.Group(1).Start)

	_, ok := idx.LookupVector("кит")
	assert.False(t, ok)
}

func TestLookups(t *testing.T) {
	idx := buildTestIndex(t)

	t.Run("first form wins", func(t *testing.T) {
		w, ok := idx.LookupExact("слова")
		require.True(t, ok)
		assert.Equal(t, "сло'ва", w.Text())
	})

	t.Run("stress marks and case are ignored", func(t *testing.T) {
		w, ok := idx.LookupExact("СЛО'ВО")
		require.True(t, ok)
		assert.Equal(t, "сло'во", w.Text())
	})

	t.Run("round trip", func(t *testing.T) {
		for i := range idx.WordCount() {
			w := idx.Word(i)
			found, ok := idx.LookupExact(w.Surface())
			require.True(t, ok, w.Surface())
			assert.Equal(t, w.Surface(), found.Surface())
		}
	})

	t.Run("group derived", func(t *testing.T) {
		g, ok := idx.LookupFormGroup("дома")
		require.True(t, ok)
		assert.Equal(t, 1, g)

		cat, ok := idx.LookupCategory("шёл")
		require.True(t, ok)
		assert.Equal(t, "г", cat)

		vec, ok := idx.LookupVector("котов")
		require.True(t, ok)
		assert.Equal(t, []float32{2, 1}, vec)
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := idx.LookupExact("кит")
		assert.False(t, ok)
		_, ok = idx.LookupFormGroup("кит")
		assert.False(t, ok)
		_, ok = idx.LookupCategory("кит")
		assert.False(t, ok)
	})
}

func TestCandidatesMatchingStress(t *testing.T) {
	idx := buildTestIndex(t)
	index := func(s string) int {
		i, ok := idx.LookupIndex(s)
		require.True(t, ok, s)
		return i
	}

	t.Run("exact key", func(t *testing.T) {
		q, err := phonetics.NewWord("до'м", false)
		require.NoError(t, err)
		set := idx.CandidatesMatchingStress(q)
		assert.True(t, set.Contains(index("кот")))
		assert.True(t, set.Contains(index("шёл")))
		assert.True(t, set.Contains(index("домов")))
		assert.False(t, set.Contains(index("слово")))
		assert.False(t, set.Contains(index("иду")))
	})

	t.Run("wildcard position", func(t *testing.T) {
		q, err := phonetics.NewAbstractWord("!+")
		require.NoError(t, err)
		set := idx.CandidatesMatchingStress(q)
		assert.True(t, set.Contains(index("мама")))
		assert.True(t, set.Contains(index("быстро")))
		assert.True(t, set.Contains(index("слово")))
		assert.False(t, set.Contains(index("дом")))
		assert.False(t, set.Contains(index("коты")))
	})

	t.Run("no stress", func(t *testing.T) {
		q, err := phonetics.NewAbstractWord("++")
		require.NoError(t, err)
		assert.Zero(t, idx.CandidatesMatchingStress(q).Len())
	})
}

func TestSuggest(t *testing.T) {
	idx := buildTestIndex(t)

	assert.Equal(t, []string{"дом"}, idx.Suggest("дам", 3))
	assert.Contains(t, idx.Suggest("слава", 5), "слова")
	assert.Nil(t, idx.Suggest("дам", 0))
	assert.Empty(t, idx.Suggest("зззззззз", 3))
}
