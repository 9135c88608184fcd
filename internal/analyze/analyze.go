// Package analyze orchestrates the readability pipeline: validation,
// tokenization, language resolution, syllable estimation, metric
// calculation, classification and recommendations.
package analyze

import (
	"github.com/eshatrova/textgrade/internal/classify"
	"github.com/eshatrova/textgrade/internal/lang"
	"github.com/eshatrova/textgrade/internal/metrics"
	"github.com/eshatrova/textgrade/internal/recommend"
	"github.com/eshatrova/textgrade/internal/syllable"
	"github.com/eshatrova/textgrade/internal/tokenize"
)

// Minimum input accepted for a meaningful score.
const (
	MinWords     = 10
	MinSentences = 1
)

// Result is the complete outcome of one analysis. It is built once
// per Analyze call and never mutated afterwards.
type Result struct {
	TextLength        int
	WordCount         int
	SentenceCount     int
	AvgWordLength     float64
	AvgSentenceLength float64

	Flesch        float64
	FleschKincaid float64
	ColemanLiau   float64
	ARI           float64
	SMOG          float64

	Difficulty      string
	Audience        string
	Recommendations []string
}

// Analyzer computes readability results for texts. The zero value
// auto-detects the language per text; a fixed Mode pins it. Analyzer
// holds no per-call state, so one instance may be shared across
// goroutines.
type Analyzer struct {
	Mode lang.Mode
}

// New returns an Analyzer for the given language mode.
func New(mode lang.Mode) *Analyzer {
	return &Analyzer{Mode: mode}
}

// Analyze scores a single text. It fails with a *ValidationError when
// the text is empty, has fewer than MinWords words, or has no
// sentences; validation happens before any metric is computed, so a
// failed call produces no partial result.
func (a *Analyzer) Analyze(text string) (*Result, error) {
	cleaned := tokenize.Clean(text)
	if cleaned == "" {
		return nil, errEmptyText()
	}

	sentences := tokenize.Sentences(cleaned)
	words := tokenize.Words(cleaned)

	if len(words) < MinWords {
		return nil, errTooFewWords(len(words))
	}
	if len(sentences) < MinSentences {
		return nil, errTooFewSentences()
	}

	mode := a.Mode
	if mode == "" {
		mode = lang.ModeAuto
	}
	count := syllable.CounterFor(mode.Resolve(cleaned))

	c := metrics.Counts{
		Chars:     tokenize.Letters(words),
		Words:     len(words),
		Sentences: len(sentences),
	}
	for _, w := range words {
		n := count(w)
		c.Syllables += n
		if n >= 3 {
			c.Polysyllables++
		}
	}

	avgWordLength := metrics.Round2(float64(c.Chars) / float64(c.Words))
	avgSentenceLength := metrics.Round2(float64(c.Words) / float64(c.Sentences))

	flesch := metrics.FleschReadingEase(c.Words, c.Sentences, c.Syllables)
	difficulty, audience := classify.Flesch(flesch)

	return &Result{
		TextLength:        len([]rune(cleaned)),
		WordCount:         c.Words,
		SentenceCount:     c.Sentences,
		AvgWordLength:     avgWordLength,
		AvgSentenceLength: avgSentenceLength,
		Flesch:            flesch,
		FleschKincaid:     metrics.FleschKincaidGrade(c.Words, c.Sentences, c.Syllables),
		ColemanLiau:       metrics.ColemanLiau(c.Chars, c.Words, c.Sentences),
		ARI:               metrics.ARI(c.Chars, c.Words, c.Sentences),
		SMOG:              metrics.SMOG(c.Polysyllables, c.Sentences),
		Difficulty:        difficulty,
		Audience:          audience,
		Recommendations: recommend.Build(recommend.Stats{
			AvgSentenceLength: avgSentenceLength,
			AvgWordLength:     avgWordLength,
			Flesch:            flesch,
			WordCount:         c.Words,
		}),
	}, nil
}
