// Package report renders analysis results as Markdown documents:
// a metrics table, a conclusion and the recommendation list, plus a
// summary table layout for batch comparisons.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eshatrova/textgrade/internal/analyze"
)

// Result renders a single analysis result under the given title.
func Result(res *analyze.Result, title string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", title)

	b.WriteString("### Text metrics\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Text length | %d characters |\n", res.TextLength)
	fmt.Fprintf(&b, "| Words | %d |\n", res.WordCount)
	fmt.Fprintf(&b, "| Sentences | %d |\n", res.SentenceCount)
	fmt.Fprintf(&b, "| Average word length | %.2f letters |\n", res.AvgWordLength)
	fmt.Fprintf(&b, "| Average sentence length | %.2f words |\n\n", res.AvgSentenceLength)

	b.WriteString("### Readability scores\n\n")
	b.WriteString("| Score | Value |\n")
	b.WriteString("|-------|-------|\n")
	fmt.Fprintf(&b, "| Flesch Reading Ease | %.2f |\n", res.Flesch)
	fmt.Fprintf(&b, "| Flesch-Kincaid Grade | %.2f |\n", res.FleschKincaid)
	fmt.Fprintf(&b, "| Coleman-Liau Index | %.2f |\n", res.ColemanLiau)
	fmt.Fprintf(&b, "| Automated Readability Index | %.2f |\n", res.ARI)
	fmt.Fprintf(&b, "| SMOG | %.2f |\n\n", res.SMOG)

	b.WriteString("### Conclusion\n\n")
	fmt.Fprintf(&b, "**Difficulty:** %s\n\n", res.Difficulty)
	fmt.Fprintf(&b, "**Target audience:** %s\n\n", res.Audience)

	b.WriteString("### Recommendations\n\n")
	for _, rec := range res.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}

// Comparison renders a batch comparison: a summary table with one row
// per input, then a detailed section per successful input. Failed
// inputs keep their row with the error message instead of scores.
func Comparison(items []analyze.Comparison, title string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Name | Words | Sentences | Flesch | Difficulty |\n")
	b.WriteString("|------|-------|-----------|--------|------------|\n")
	if len(items) == 0 {
		b.WriteString("| - | no texts to analyze | - | - | - |\n")
	}
	for _, item := range items {
		if item.Err != nil {
			fmt.Fprintf(&b, "| %s | error | - | - | %s |\n", item.Name, item.Err)
			continue
		}
		r := item.Result
		fmt.Fprintf(&b, "| %s | %d | %d | %.2f | %s |\n",
			item.Name, r.WordCount, r.SentenceCount, r.Flesch, r.Difficulty)
	}

	for _, item := range items {
		if item.Err != nil {
			continue
		}
		b.WriteString("\n---\n\n")
		b.WriteString(Result(item.Result, item.Name))
	}

	return b.String()
}

// Save writes a rendered report to path, creating parent directories
// as needed.
func Save(content, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
