package syllable

import (
	"testing"

	"github.com/eshatrova/textgrade/internal/lang"
)

func TestEnglish(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"hello", 2},
		{"world", 1},
		{"beautiful", 3},
		{"cat", 1},
		{"table", 2},   // silent e drops one, "ble" adds one back
		{"simple", 2},  // same correction path
		{"see", 1},     // diphthong collapses, then silent e
		{"queue", 1},   // vowel run counts once
		{"rhythm", 1},  // y as the only vowel
		{"make", 1},    // silent e
		{"a", 1},
		{"strength", 1},
		{"mat", 1},
		{"", 0},
		{"   ", 0},
		{"HELLO", 2}, // case-insensitive
	}
	for _, tt := range tests {
		if got := English(tt.word); got != tt.want {
			t.Errorf("English(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestEnglish_MinimumOne(t *testing.T) {
	// All-consonant words still count one syllable.
	for _, word := range []string{"hmm", "pfft", "nth"} {
		if got := English(word); got < 1 {
			t.Errorf("English(%q) = %d, want >= 1", word, got)
		}
	}
}

func TestRussian(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"привет", 2},
		{"образование", 6},
		{"мир", 1},
		{"ёлка", 2},
		{"вскрик", 1},
		{"а", 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := Russian(tt.word); got != tt.want {
			t.Errorf("Russian(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestCounterFor(t *testing.T) {
	if got := CounterFor(lang.Russian)("привет"); got != 2 {
		t.Errorf("russian counter: got %d, want 2", got)
	}
	if got := CounterFor(lang.English)("hello"); got != 2 {
		t.Errorf("english counter: got %d, want 2", got)
	}
}
