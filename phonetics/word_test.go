package phonetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWord(t *testing.T) {
	w, err := NewWord("сло'во", false)
	require.NoError(t, err)

	assert.Equal(t, "сло'во", w.Text())
	assert.Equal(t, "слово", w.Surface())
	assert.Equal(t, 2, w.VowelCount())
	assert.Equal(t, 5, w.PhonemeCount())
	assert.False(t, w.OnlyStressStructure())
	assert.False(t, w.HasConsonantTail())

	key, ok := w.PrimaryStress()
	require.True(t, ok)
	assert.Equal(t, StressKey{Letter: VowelO, Position: 1}, key)
	assert.Equal(t, []StressKey{{Letter: VowelO, Position: 1}}, w.Stresses())

	var vowels []Vowel
	for _, v := range w.VowelsFromEnd() {
		vowels = append(vowels, v)
	}
	assert.Equal(t, []Vowel{{Letter: VowelA}, {Letter: VowelO, Stress: StressPrimary}}, vowels)

	var lens []int
	for _, c := range w.ConsonantClustersFromEnd() {
		lens = append(lens, c.Len)
	}
	assert.Equal(t, []int{0, 1, 2}, lens)

	assert.Equal(t, []Consonant{{Letter: ConsonantF, Voiced: true}}, w.ClusterConsonants(w.ClusterFromEnd(1)))
	assert.Equal(t, []Consonant{{Letter: ConsonantS}, {Letter: ConsonantL}}, w.ClusterConsonants(w.ClusterFromEnd(2)))
}

func TestNewWord_ConsonantTail(t *testing.T) {
	w, err := NewWord("до'м", false)
	require.NoError(t, err)
	assert.True(t, w.HasConsonantTail())
	assert.Equal(t, []Consonant{{Letter: ConsonantM}}, w.ClusterConsonants(w.ClusterFromEnd(0)))
}

func TestNewWord_Palatalized(t *testing.T) {
	w, err := NewWord("тё'тя", false)
	require.NoError(t, err)
	assert.Equal(t, []Consonant{{Letter: ConsonantT, Palatalized: true}}, w.ClusterConsonants(w.ClusterFromEnd(1)))
}

func TestNewWord_PrimaryStress(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no stress", text: "слово"},
		{name: "two stresses", text: "сло'во'"},
		{name: "secondary only", text: "сло`во"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWord(tt.text, false)
			assert.ErrorIs(t, err, ErrPrimaryStress)
		})
	}
}

func TestNewWord_SecondaryStress(t *testing.T) {
	w, err := NewWord("самолё`тостро'ение", false)
	require.NoError(t, err)
	stresses := w.Stresses()
	require.Len(t, stresses, 2)
	assert.Equal(t, VowelO, stresses[0].Letter)
}

func TestNewAbstractWord(t *testing.T) {
	w, err := NewAbstractWord("+!+")
	require.NoError(t, err)

	assert.True(t, w.OnlyStressStructure())
	assert.Equal(t, 3, w.VowelCount())
	assert.False(t, w.HasConsonantTail())
	assert.Equal(t, []StressKey{{Letter: AnyStressedVowel, Position: 1}}, w.Stresses())

	clusters := 0
	for _, c := range w.ConsonantClustersFromEnd() {
		assert.Zero(t, c.Len)
		clusters++
	}
	assert.Equal(t, 4, clusters)

	t.Run("rejects letters", func(t *testing.T) {
		_, err := NewAbstractWord("+а")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := NewAbstractWord("")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
