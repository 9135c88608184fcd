// Package metrics implements the classical readability formulas over
// aggregate text counts. Every function is pure, guards its
// denominators, and returns values rounded to two decimal places.
//
// The coefficients are the published ones; do not "fix" them.
package metrics

import "math"

// Counts aggregates everything the formulas consume for one text.
type Counts struct {
	// Chars is the total letter count of all words, excluding
	// spaces and punctuation.
	Chars int
	// Words is the total word count.
	Words int
	// Sentences is the total sentence count.
	Sentences int
	// Syllables is the total estimated syllable count.
	Syllables int
	// Polysyllables is the number of words with 3+ syllables.
	Polysyllables int
}

// Round2 rounds to two decimal places, the precision every score
// and average is reported at.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// FleschReadingEase computes the Flesch Reading Ease score:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// Higher is easier. The result is clamped to [0, 100]; zero words or
// sentences yields 0.
func FleschReadingEase(words, sentences, syllables int) float64 {
	if words == 0 || sentences == 0 {
		return 0.0
	}

	score := 206.835 -
		1.015*float64(words)/float64(sentences) -
		84.6*float64(syllables)/float64(words)

	return Round2(math.Max(0, math.Min(100, score)))
}

// FleschKincaidGrade computes the Flesch-Kincaid Grade Level:
//
//	0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
//
// The result approximates a US school grade and is clamped to be
// non-negative; zero words or sentences yields 0.
func FleschKincaidGrade(words, sentences, syllables int) float64 {
	if words == 0 || sentences == 0 {
		return 0.0
	}

	grade := 0.39*float64(words)/float64(sentences) +
		11.8*float64(syllables)/float64(words) -
		15.59

	return Round2(math.Max(0, grade))
}

// ColemanLiau computes the Coleman-Liau Index:
//
//	0.0588*L - 0.296*S - 15.8
//
// where L is letters per 100 words and S is sentences per 100 words.
// It uses letter counts instead of syllables, which makes it robust to
// syllable-estimation error. Clamped to be non-negative; zero words
// yields 0.
func ColemanLiau(chars, words, sentences int) float64 {
	if words == 0 {
		return 0.0
	}

	l := float64(chars) / float64(words) * 100
	s := float64(sentences) / float64(words) * 100
	index := 0.0588*l - 0.296*s - 15.8

	return Round2(math.Max(0, index))
}

// ARI computes the Automated Readability Index:
//
//	4.71*(chars/words) + 0.5*(words/sentences) - 21.43
//
// Clamped to be non-negative; zero words or sentences yields 0.
func ARI(chars, words, sentences int) float64 {
	if words == 0 || sentences == 0 {
		return 0.0
	}

	ari := 4.71*float64(chars)/float64(words) +
		0.5*float64(words)/float64(sentences) -
		21.43

	return Round2(math.Max(0, ari))
}

// SMOG computes the SMOG index from polysyllabic-word and sentence
// counts:
//
//	1.0430*sqrt(polysyllables*30/sentences) + 3.1291
//
// Clamped to be non-negative; zero sentences yields 0.
func SMOG(polysyllables, sentences int) float64 {
	if sentences == 0 {
		return 0.0
	}

	smog := 1.0430*math.Sqrt(float64(polysyllables)*30/float64(sentences)) + 3.1291

	return Round2(math.Max(0, smog))
}
