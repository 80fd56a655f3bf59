package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *Entry
		wantErr error
	}{
		{
			name:  "valid entry",
			entry: NewEntry("слово", "с+сло'в+о;а", []float32{0.1, 0.2}),
		},
		{
			name:  "valid entry without id or vector",
			entry: &Entry{Lemma: "кот", Template: "с+ко'т+"},
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "empty lemma",
			entry:   &Entry{Lemma: "  ", Template: "с+ко'т+"},
			wantErr: ErrEmptyLemma,
		},
		{
			name:    "empty template",
			entry:   &Entry{Lemma: "кот"},
			wantErr: ErrEmptyTemplate,
		},
		{
			name:    "template without separator",
			entry:   &Entry{Lemma: "кот", Template: "с"},
			wantErr: ErrMalformedTemplate,
		},
		{
			name:    "NaN component",
			entry:   NewEntry("кот", "с+ко'т+", []float32{float32(math.NaN())}),
			wantErr: ErrInvalidVector,
		},
		{
			name:    "infinite component",
			entry:   NewEntry("кот", "с+ко'т+", []float32{float32(math.Inf(1))}),
			wantErr: ErrInvalidVector,
		},
		{
			name:    "id of another lemma",
			entry:   &Entry{Id: IDFromContent("кит"), Lemma: "кот", Template: "с+ко'т+"},
			wantErr: ErrIDMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.entry)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidEntry)
		})
	}
}
