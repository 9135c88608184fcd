package output

import (
	"io"

	"github.com/eshatrova/textgrade/internal/analyze"
	"github.com/eshatrova/textgrade/internal/report"
)

// MarkdownFormatter renders results as a Markdown report.
type MarkdownFormatter struct {
	Title string
}

func (f *MarkdownFormatter) title() string {
	if f.Title == "" {
		return "Readability Report"
	}
	return f.Title
}

// FormatResult writes one result as a Markdown document. The name, if
// any, overrides the configured title.
func (f *MarkdownFormatter) FormatResult(w io.Writer, name string, res *analyze.Result) error {
	title := f.title()
	if name != "" {
		title = name
	}
	_, err := io.WriteString(w, report.Result(res, title))
	return err
}

// FormatComparison writes the batch as a Markdown report with a
// summary table and per-item details.
func (f *MarkdownFormatter) FormatComparison(w io.Writer, items []analyze.Comparison) error {
	_, err := io.WriteString(w, report.Comparison(items, f.title()))
	return err
}
