package output

import (
	"fmt"
	"io"

	"github.com/eshatrova/textgrade/internal/analyze"
)

// TextFormatter renders results as human-readable terminal text.
// When Color is true, headings are printed in cyan and the difficulty
// label in yellow.
type TextFormatter struct {
	Color bool
}

func (f *TextFormatter) heading(s string) string {
	if f.Color {
		return "\033[36m" + s + "\033[0m"
	}
	return s
}

func (f *TextFormatter) label(s string) string {
	if f.Color {
		return "\033[33m" + s + "\033[0m"
	}
	return s
}

// FormatResult writes one result as aligned key-value lines.
func (f *TextFormatter) FormatResult(w io.Writer, name string, res *analyze.Result) error {
	if name != "" {
		if _, err := fmt.Fprintf(w, "%s\n", f.heading(name)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		"  words: %d  sentences: %d  avg word: %.2f  avg sentence: %.2f\n"+
			"  flesch: %.2f  flesch-kincaid: %.2f  coleman-liau: %.2f  ari: %.2f  smog: %.2f\n"+
			"  difficulty: %s\n"+
			"  audience: %s\n",
		res.WordCount, res.SentenceCount, res.AvgWordLength, res.AvgSentenceLength,
		res.Flesch, res.FleschKincaid, res.ColemanLiau, res.ARI, res.SMOG,
		f.label(res.Difficulty),
		res.Audience,
	)
	if err != nil {
		return err
	}
	for _, rec := range res.Recommendations {
		if _, err := fmt.Fprintf(w, "  - %s\n", rec); err != nil {
			return err
		}
	}
	return nil
}

// FormatComparison writes each item in turn; failed items print their
// error in place of scores.
func (f *TextFormatter) FormatComparison(w io.Writer, items []analyze.Comparison) error {
	for i, item := range items {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if item.Err != nil {
			if _, err := fmt.Fprintf(w, "%s\n  error: %v\n",
				f.heading(item.Name), item.Err); err != nil {
				return err
			}
			continue
		}
		if err := f.FormatResult(w, item.Name, item.Result); err != nil {
			return err
		}
	}
	return nil
}
