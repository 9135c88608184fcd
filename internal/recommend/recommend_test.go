package recommend

import (
	"strings"
	"testing"
)

func balanced() Stats {
	return Stats{
		AvgSentenceLength: 12,
		AvgWordLength:     4.5,
		Flesch:            75,
		WordCount:         300,
	}
}

func TestBuild_WellBalanced(t *testing.T) {
	recs := Build(balanced())
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations %v, want 1", len(recs), recs)
	}
	if !strings.Contains(recs[0], "well balanced") {
		t.Errorf("got %q, want the positive message", recs[0])
	}
}

func TestBuild_LongSentences(t *testing.T) {
	s := balanced()
	s.AvgSentenceLength = 27.3
	recs := Build(s)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations %v, want 1", len(recs), recs)
	}
	if !strings.Contains(recs[0], "27.3") {
		t.Errorf("strong wording must include the measured length, got %q", recs[0])
	}
}

func TestBuild_SlightlyLongSentences(t *testing.T) {
	s := balanced()
	s.AvgSentenceLength = 22
	recs := Build(s)
	if len(recs) != 1 || !strings.Contains(recs[0], "little long") {
		t.Errorf("got %v, want the soft sentence wording only", recs)
	}
}

func TestBuild_OnlyOneSentenceRuleFires(t *testing.T) {
	s := balanced()
	s.AvgSentenceLength = 40
	recs := Build(s)
	for _, r := range recs {
		if strings.Contains(r, "little long") {
			t.Errorf("soft wording must not fire alongside strong: %v", recs)
		}
	}
}

func TestBuild_ComplexVocabulary(t *testing.T) {
	s := balanced()
	s.AvgWordLength = 8.2
	recs := Build(s)
	if len(recs) != 1 || !strings.Contains(recs[0], "8.2") {
		t.Errorf("got %v, want strong vocabulary wording with the value", recs)
	}

	s.AvgWordLength = 6.5
	recs = Build(s)
	if len(recs) != 1 || !strings.Contains(recs[0], "shorter, simpler") {
		t.Errorf("got %v, want soft vocabulary wording", recs)
	}
}

func TestBuild_FleschWarnings(t *testing.T) {
	s := balanced()
	s.Flesch = 20
	recs := Build(s)
	if len(recs) != 1 || !strings.Contains(recs[0], "very hard") {
		t.Errorf("got %v, want the very-hard warning", recs)
	}

	s.Flesch = 40
	recs = Build(s)
	if len(recs) != 1 || !strings.Contains(recs[0], "prepared audience") {
		t.Errorf("got %v, want the prepared-audience note", recs)
	}
}

func TestBuild_ShortText(t *testing.T) {
	s := balanced()
	s.WordCount = 50
	recs := Build(s)
	if len(recs) != 1 || !strings.Contains(recs[0], "less reliable") {
		t.Errorf("got %v, want the short-text caveat", recs)
	}
}

func TestBuild_RulesAreIndependentAndOrdered(t *testing.T) {
	s := Stats{
		AvgSentenceLength: 30,
		AvgWordLength:     9,
		Flesch:            10,
		WordCount:         40,
	}
	recs := Build(s)
	if len(recs) != 4 {
		t.Fatalf("got %d recommendations %v, want 4", len(recs), recs)
	}
	// Fixed evaluation order: sentences, vocabulary, score, length.
	if !strings.Contains(recs[0], "sentences") ||
		!strings.Contains(recs[1], "vocabulary") ||
		!strings.Contains(recs[2], "very hard") ||
		!strings.Contains(recs[3], "short") {
		t.Errorf("unexpected order: %v", recs)
	}
}
