package search

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/poiesic/rhymer/config"
	"github.com/poiesic/rhymer/dictionary"
	"github.com/poiesic/rhymer/distance"
	"github.com/poiesic/rhymer/meaning"
	"github.com/poiesic/rhymer/phonetics"
)

func testIndex(t *testing.T) *dictionary.Index {
	t.Helper()
	lemmas := []string{"слово", "дом", "кот", "крот", "идти", "красивый", "быстро", "мама", "корова", "остров"}
	templates := map[string]string{
		"слово":    "с+сло'в;слов+о;а;у;ом;е;1а';1;1а'м",
		"дом":      "с+до'м;дом+;а;у;ом;е;1а';1о'в",
		"кот":      "с+ко'т;кот+;а;у;ом;е;1ы';1о'в",
		"крот":     "с+кро'т;крот+;а;1ы'",
		"идти":     "г+ид;ш+ти';у';е'т;1ёл",
		"красивый": "п+краси'в+ый;ого;ая",
		"быстро":   "н+бы'стро+",
		"мама":     "с+ма'м+а;ы;е;у",
		"корова":   "с+коро'в+а;ы;е;у",
		"остров":   "с+о'стров+;а;у",
	}
	vectors := make([][]float32, len(lemmas))
	for i := range vectors {
		vectors[i] = []float32{float32(i % 3), float32(i % 2), 1}
	}
	idx, err := dictionary.Build(dictionary.Source{Lemmas: lemmas, Templates: templates, Vectors: vectors})
	require.NoError(t, err)
	return idx
}

func neutralWeights() *config.Weights {
	w := config.DefaultWeights()
	w.Popularity.Weight = 0
	w.Unsymmetrical.LessW = 0
	w.Unsymmetrical.MoreW = 0
	w.SameSpeechPart = config.SameSpeechPart{}
	return w
}

func mustWord(t *testing.T, text string) *phonetics.Word {
	t.Helper()
	w, err := phonetics.NewWord(text, false)
	require.NoError(t, err)
	return w
}

func newTestSearcher(t *testing.T, w *config.Weights, opts ...Option) (*Searcher, *dictionary.Index) {
	t.Helper()
	idx := testIndex(t)
	s, err := NewSearcher(idx, w, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s, idx
}

func assertAscending(t *testing.T, results []distance.Result) {
	t.Helper()
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Total, results[i].Total)
	}
}

func TestNewSearcher(t *testing.T) {
	idx := testIndex(t)
	w := config.DefaultWeights()

	t.Run("valid configuration", func(t *testing.T) {
		s, err := NewSearcher(idx, w)
		require.NoError(t, err)
		assert.NotNil(t, s)
		assert.NoError(t, s.Close())
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		s, err := NewSearcher(idx, w, WithLogger(nil))
		require.NoError(t, err)
		assert.Equal(t, slog.Default(), s.logger)
	})

	t.Run("nil index", func(t *testing.T) {
		_, err := NewSearcher(nil, w)
		assert.Equal(t, ErrIndexRequired, err)
	})

	t.Run("nil weights", func(t *testing.T) {
		_, err := NewSearcher(idx, nil)
		assert.Equal(t, ErrWeightsRequired, err)
	})

	t.Run("invalid pool size", func(t *testing.T) {
		_, err := NewSearcher(idx, w, WithPoolSize(0))
		assert.Equal(t, ErrInvalidPoolSize, err)
	})
}

func TestFindBest_Self(t *testing.T) {
	s, _ := newTestSearcher(t, neutralWeights())

	results, err := s.FindBest(context.Background(), Query{Word: mustWord(t, "сло'во"), TopN: 5})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "слово", results[0].Word.Surface())
	assert.Equal(t, 0.0, results[0].Total)
	assertAscending(t, results)
}

func TestFindBest_TopN(t *testing.T) {
	w := neutralWeights()
	w.Stresses.Indexation = false
	s, idx := newTestSearcher(t, w)
	q := Query{Word: mustWord(t, "до'м")}

	t.Run("zero", func(t *testing.T) {
		results, err := s.FindBest(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("larger than candidates", func(t *testing.T) {
		q := q
		q.TopN = 100
		results, err := s.FindBest(context.Background(), q)
		require.NoError(t, err)
		assert.Len(t, results, idx.GroupCount())
		assertAscending(t, results)
	})

	t.Run("bounded", func(t *testing.T) {
		q := q
		q.TopN = 3
		results, err := s.FindBest(context.Background(), q)
		require.NoError(t, err)
		assert.Len(t, results, 3)

		q.TopN = 100
		all, err := s.FindBest(context.Background(), q)
		require.NoError(t, err)
		for i := range results {
			assert.Equal(t, all[i].Total, results[i].Total)
		}
	})
}

func TestFindBest_StressFilter(t *testing.T) {
	s, idx := newTestSearcher(t, neutralWeights())

	results, err := s.FindBest(context.Background(), Query{Word: mustWord(t, "до'м"), TopN: 100})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	key, _ := mustWord(t, "до'м").PrimaryStress()
	for _, r := range results {
		got, ok := r.Word.PrimaryStress()
		require.True(t, ok)
		assert.Equal(t, key, got, r.Word.Text())
	}
	assert.Less(t, len(results), idx.GroupCount())
}

func TestFindBest_Exclude(t *testing.T) {
	s, idx := newTestSearcher(t, config.DefaultWeights())

	results, err := s.FindBest(context.Background(), Query{
		Word:    mustWord(t, "ко'т"),
		Exclude: []string{"с"},
		TopN:    100,
	})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.NotEqual(t, "с", idx.Group(r.Group).Category, r.Word.Text())
	}
}

func TestFindBest_Pattern(t *testing.T) {
	w := neutralWeights()
	w.Stresses.Indexation = false
	s, _ := newTestSearcher(t, w)

	p, err := phonetics.NewAbstractWord("!+")
	require.NoError(t, err)
	results, err := s.FindBest(context.Background(), Query{Word: p, TopN: 100})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Zero(t, r.Consonant)
		assert.Zero(t, r.Structure)
		if r.Word.VowelCount() != 2 {
			assert.Equal(t, distance.AbstractMismatch, r.Misc)
		} else {
			assert.Zero(t, r.Misc)
		}
	}
}

func TestFindBest_Constraint(t *testing.T) {
	s, _ := newTestSearcher(t, config.DefaultWeights())

	t.Run("matching surfaces only", func(t *testing.T) {
		results, err := s.FindBest(context.Background(), Query{Word: mustWord(t, "ко'т"), Constraint: "^к", TopN: 100})
		require.NoError(t, err)
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.True(t, strings.HasPrefix(r.Word.Surface(), "к"), r.Word.Surface())
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := s.FindBest(context.Background(), Query{Word: mustWord(t, "ко'т"), Constraint: "(", TopN: 10})
		assert.ErrorIs(t, err, ErrMalformedConstraint)
	})
}

func TestFindBest_ConstraintKeepsStressFilter(t *testing.T) {
	w := neutralWeights()
	w.Stresses.Indexation = false
	s, idx := newTestSearcher(t, w)

	query := mustWord(t, "сло'во")
	compatible := make(map[*phonetics.Word]bool)
	for i := range idx.CandidatesMatchingStress(query).All() {
		compatible[idx.Word(i)] = true
	}
	results, err := s.FindBest(context.Background(), Query{Word: query, Constraint: ".", TopN: 100})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.True(t, compatible[r.Word], r.Word.Text())
	}

	unconstrained, err := s.FindBest(context.Background(), Query{Word: query, TopN: 100})
	require.NoError(t, err)
	assert.Greater(t, len(unconstrained), len(results))
}

func TestFindBest_Idempotent(t *testing.T) {
	s, _ := newTestSearcher(t, config.DefaultWeights())
	q := Query{Word: mustWord(t, "сло'во"), TopN: 100}

	first, err := s.FindBest(context.Background(), q)
	require.NoError(t, err)
	second, err := s.FindBest(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindBest_Field(t *testing.T) {
	s, idx := newTestSearcher(t, config.DefaultWeights())
	field, err := meaning.NewField([][]float32{idx.Group(0).Vector, idx.Group(3).Vector})
	require.NoError(t, err)

	results, err := s.FindBest(context.Background(), Query{Word: mustWord(t, "ко'т"), Field: field, TopN: 100})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	positive := false
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Meaning, 0.0)
		assert.False(t, math.IsNaN(r.Total))
		positive = positive || r.Meaning > 0
	}
	assert.True(t, positive)
}

func TestFindBest_Errors(t *testing.T) {
	s, _ := newTestSearcher(t, config.DefaultWeights())

	t.Run("no word", func(t *testing.T) {
		_, err := s.FindBest(context.Background(), Query{TopN: 10})
		assert.ErrorIs(t, err, ErrWordRequired)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.FindBest(ctx, Query{Word: mustWord(t, "ко'т"), TopN: 10})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("NaN aborts", func(t *testing.T) {
		field, err := meaning.NewField([][]float32{{1, 2}})
		require.NoError(t, err)
		_, err = s.FindBest(context.Background(), Query{Word: mustWord(t, "ко'т"), Field: field, TopN: 10})
		assert.ErrorIs(t, err, distance.ErrNotANumber)
	})
}

func TestFindBest_Sharded(t *testing.T) {
	// ants starts its default pool's purge and clock goroutines at init.
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	idx := testIndex(t)
	w := config.DefaultWeights()
	w.Stresses.Indexation = false
	q := Query{Word: mustWord(t, "до'м"), TopN: 6}

	sequential, err := NewSearcher(idx, w)
	require.NoError(t, err)
	want, err := sequential.FindBest(context.Background(), q)
	require.NoError(t, err)
	require.NoError(t, sequential.Close())

	for _, size := range []int{2, 3, 16} {
		sharded, err := NewSearcher(idx, w, WithPoolSize(size))
		require.NoError(t, err)
		got, err := sharded.FindBest(context.Background(), q)
		require.NoError(t, err)
		require.NoError(t, sharded.Close())

		require.Len(t, got, len(want))
		for i := range want {
			assert.InDelta(t, want[i].Total, got[i].Total, 1e-12, "pool size %d", size)
		}
	}
}

type recordingMonitor struct {
	stages []string
}

func (m *recordingMonitor) Start(_ *phonetics.Word)            { m.stages = append(m.stages, "start") }
func (m *recordingMonitor) AfterCandidateFilter(_ int, _ bool) { m.stages = append(m.stages, "filter") }
func (m *recordingMonitor) AfterScan(_, _ int)                 { m.stages = append(m.stages, "scan") }
func (m *recordingMonitor) Finish(_ []distance.Result)         { m.stages = append(m.stages, "finish") }

func TestFindBestWithMonitor(t *testing.T) {
	s, _ := newTestSearcher(t, config.DefaultWeights())
	m := &recordingMonitor{}
	_, err := s.FindBestWithMonitor(context.Background(), Query{Word: mustWord(t, "ко'т"), TopN: 3}, m)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "filter", "scan", "finish"}, m.stages)

	logged := &LogMonitor{}
	_, err = s.FindBestWithMonitor(context.Background(), Query{Word: mustWord(t, "ко'т"), TopN: 3}, logged)
	require.NoError(t, err)
}
