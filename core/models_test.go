package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "cyrillic lemma", content: "слово"},
		{name: "empty string", content: ""},
		{name: "hyphenated lemma", content: "кое-как"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	if IDFromContent("кот") == IDFromContent("кит") {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry("кот", "с+ко'т+;а", []float32{1})

	if entry.Id != IDFromContent("кот") {
		t.Errorf("NewEntry() id = %d, want content id", entry.Id)
	}
	if entry.Ordinal != 0 {
		t.Errorf("NewEntry() ordinal = %d, want 0", entry.Ordinal)
	}
}
