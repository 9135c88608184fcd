// Package recommend turns aggregate readability statistics into
// actionable suggestions for the author.
package recommend

import "fmt"

// Stats is the input to recommendation generation.
type Stats struct {
	AvgSentenceLength float64
	AvgWordLength     float64
	Flesch            float64
	WordCount         int
}

// Thresholds the rules fire on. Sentence and word lengths each have a
// strong and a soft trigger; the strong one wins.
const (
	longSentence    = 25.0
	slightlyLong    = 20.0
	complexWord     = 7.0
	slightlyComplex = 6.0
	veryHardFlesch  = 30.0
	demandingFlesch = 50.0
	shortTextWords  = 100
)

// Build evaluates the rules in fixed order and returns the triggered
// suggestions. The order of the returned slice is the rule order, not
// severity, so output is reproducible. When nothing fires, a single
// positive message is returned.
func Build(s Stats) []string {
	var recs []string

	switch {
	case s.AvgSentenceLength > longSentence:
		recs = append(recs, fmt.Sprintf(
			"Shorten your sentences: the average length is %.1f words "+
				"(aim for 20-25). Break long sentences into shorter ones.",
			s.AvgSentenceLength))
	case s.AvgSentenceLength > slightlyLong:
		recs = append(recs,
			"Sentences run a little long. Consider simplifying some of them.")
	}

	switch {
	case s.AvgWordLength > complexWord:
		recs = append(recs, fmt.Sprintf(
			"Simplify the vocabulary: the average word length is %.1f letters "+
				"(aim for 5-6). Replace complex terms with plainer synonyms.",
			s.AvgWordLength))
	case s.AvgWordLength > slightlyComplex:
		recs = append(recs,
			"Try using shorter, simpler words.")
	}

	switch {
	case s.Flesch < veryHardFlesch:
		recs = append(recs,
			"The text is very hard for most readers. Add explanations and "+
				"examples, and break complex ideas into smaller pieces.")
	case s.Flesch < demandingFlesch:
		recs = append(recs,
			"The text suits a prepared audience. Simplify it to reach a "+
				"wider readership.")
	}

	if s.WordCount < shortTextWords {
		recs = append(recs,
			"The text is quite short. Readability scores are less reliable "+
				"for short texts.")
	}

	if len(recs) == 0 {
		recs = append(recs,
			"Excellent readability! The text is well balanced and suits a "+
				"broad audience.")
	}

	return recs
}
