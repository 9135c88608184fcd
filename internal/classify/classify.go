// Package classify maps a Flesch Reading Ease score to a difficulty
// label and a target-audience description.
package classify

// Band is one difficulty tier over the Flesch scale. Bands are closed
// intervals; Low is the decision threshold during lookup.
type Band struct {
	Low, High  float64
	Difficulty string
	Audience   string
}

// bands in descending order of reading ease. Lookup scans for the
// first band whose lower bound the score reaches, so boundary scores
// (exactly 90, 70, 50, 30) land in the easier tier and a score such as
// 89.99 lands in the tier below.
var bands = []Band{
	{90, 100, "very easy", "elementary school (grades 1-4)"},
	{70, 89, "easy", "middle school (grades 5-7)"},
	{50, 69, "medium", "high school (grades 8-11)"},
	{30, 49, "hard", "undergraduate students"},
	{0, 29, "very hard", "graduate students and specialists"},
}

// Fallback labels for a score outside the Flesch scale. The formula
// clamps its output to [0, 100], so this is defensive only.
const (
	Undetermined    = "undetermined"
	UnknownAudience = "unknown"
)

// Flesch returns the difficulty and target-audience labels for a
// Flesch Reading Ease score.
func Flesch(score float64) (difficulty, audience string) {
	if score < 0 || score > 100 {
		return Undetermined, UnknownAudience
	}
	for _, b := range bands {
		if score >= b.Low {
			return b.Difficulty, b.Audience
		}
	}
	return Undetermined, UnknownAudience
}

// Bands returns a copy of the difficulty table, easiest first.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}
