package badger

import (
	"context"
	"testing"

	"github.com/poiesic/rhymer/core"
	"github.com/poiesic/rhymer/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLexicon(t *testing.T) storage.LexiconRepository {
	t.Helper()
	repo, backend, err := NewMemoryLexicon()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func collect(t *testing.T, repo storage.LexiconRepository) []*core.Entry {
	t.Helper()
	var out []*core.Entry
	for entry, err := range repo.Entries(context.Background()) {
		require.NoError(t, err)
		out = append(out, entry)
	}
	return out
}

func TestLexiconBasics(t *testing.T) {
	repo := newTestLexicon(t)
	ctx := context.Background()

	added, err := repo.AddEntries(ctx,
		core.NewEntry("слово", "с+сло'в+о;а", []float32{1, 0}),
		core.NewEntry("кот", "с+ко'т+;а", []float32{0, 1}),
	)
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.NotZero(t, added[0].Ordinal)
	assert.Greater(t, added[1].Ordinal, added[0].Ordinal)

	got, err := repo.GetEntry(ctx, "кот")
	require.NoError(t, err)
	assert.Equal(t, "с+ко'т+;а", got.Template)
	assert.Equal(t, []float32{0, 1}, got.Vector)
	assert.Equal(t, core.IDFromContent("кот"), got.Id)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLexiconGetEntry_NotFound(t *testing.T) {
	repo := newTestLexicon(t)

	_, err := repo.GetEntry(context.Background(), "нет")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLexiconEntries_LoadOrder(t *testing.T) {
	repo := newTestLexicon(t)
	ctx := context.Background()

	lemmas := []string{"я", "слово", "кот", "дуб", "мама"}
	for _, lemma := range lemmas {
		_, err := repo.AddEntries(ctx, core.NewEntry(lemma, "с+"+lemma+"+", nil))
		require.NoError(t, err)
	}

	var got []string
	for _, entry := range collect(t, repo) {
		got = append(got, entry.Lemma)
	}
	assert.Equal(t, lemmas, got)
}

func TestLexiconAddEntries_ReplaceKeepsOrdinal(t *testing.T) {
	repo := newTestLexicon(t)
	ctx := context.Background()

	first, err := repo.AddEntries(ctx,
		core.NewEntry("слово", "с+сло'в+о", nil),
		core.NewEntry("кот", "с+ко'т+", nil),
	)
	require.NoError(t, err)
	ordinal := first[0].Ordinal

	_, err = repo.AddEntries(ctx, core.NewEntry("слово", "с+сло'в+о;а", []float32{0.5}))
	require.NoError(t, err)

	got, err := repo.GetEntry(ctx, "слово")
	require.NoError(t, err)
	assert.Equal(t, ordinal, got.Ordinal)
	assert.Equal(t, "с+сло'в+о;а", got.Template)

	entries := collect(t, repo)
	require.Len(t, entries, 2)
	assert.Equal(t, "слово", entries[0].Lemma)
}

func TestLexiconAddEntries_DuplicateInBatch(t *testing.T) {
	repo := newTestLexicon(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx,
		core.NewEntry("кот", "с+ко'т+", nil),
		core.NewEntry("кот", "с+ко'т+;а", nil),
	)
	require.NoError(t, err)

	entries := collect(t, repo)
	require.Len(t, entries, 1)
	assert.Equal(t, "с+ко'т+;а", entries[0].Template)
}

func TestLexiconAddEntries_Invalid(t *testing.T) {
	repo := newTestLexicon(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx,
		core.NewEntry("кот", "с+ко'т+", nil),
		core.NewEntry("", "с+ко'т+", nil),
	)
	assert.ErrorIs(t, err, core.ErrInvalidEntry)

	// Nothing from a rejected batch is stored.
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLexiconDeleteEntries(t *testing.T) {
	repo := newTestLexicon(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx,
		core.NewEntry("слово", "с+сло'в+о", nil),
		core.NewEntry("кот", "с+ко'т+", nil),
		core.NewEntry("дуб", "с+ду'б+", nil),
	)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteEntries(ctx, "кот"))

	_, err = repo.GetEntry(ctx, "кот")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	var got []string
	for _, entry := range collect(t, repo) {
		got = append(got, entry.Lemma)
	}
	assert.Equal(t, []string{"слово", "дуб"}, got)

	err = repo.DeleteEntries(ctx, "кот")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLexiconEntries_EarlyStop(t *testing.T) {
	repo := newTestLexicon(t)
	ctx := context.Background()

	_, err := repo.AddEntries(ctx,
		core.NewEntry("слово", "с+сло'в+о", nil),
		core.NewEntry("кот", "с+ко'т+", nil),
	)
	require.NoError(t, err)

	n := 0
	for entry, err := range repo.Entries(ctx) {
		require.NoError(t, err)
		require.NotNil(t, entry)
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestLexiconEntries_Cancelled(t *testing.T) {
	repo := newTestLexicon(t)
	_, err := repo.AddEntries(context.Background(), core.NewEntry("кот", "с+ко'т+", nil))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var gotErr error
	for _, err := range repo.Entries(ctx) {
		gotErr = err
	}
	assert.ErrorIs(t, gotErr, context.Canceled)
}

func TestLexiconPersistence(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, backend, err := OpenLexicon(dir)
	require.NoError(t, err)
	_, err = repo.AddEntries(ctx, core.NewEntry("слово", "с+сло'в+о", []float32{1, 2}))
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	require.NoError(t, backend.Close())

	repo, backend, err = OpenLexicon(dir)
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	_, err = repo.AddEntries(ctx, core.NewEntry("кот", "с+ко'т+", nil))
	require.NoError(t, err)

	entries := collect(t, repo)
	require.Len(t, entries, 2)
	assert.Equal(t, "слово", entries[0].Lemma)
	assert.Equal(t, []float32{1, 2}, entries[0].Vector)
	assert.Equal(t, "кот", entries[1].Lemma)
}
