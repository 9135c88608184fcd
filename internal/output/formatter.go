// Package output renders analysis results for the terminal and for
// machine consumption.
package output

import (
	"fmt"
	"io"

	"github.com/eshatrova/textgrade/internal/analyze"
)

// Formatter defines the interface for rendering results.
type Formatter interface {
	// FormatResult writes a single named result.
	FormatResult(w io.Writer, name string, res *analyze.Result) error
	// FormatComparison writes a batch of per-item outcomes.
	FormatComparison(w io.Writer, items []analyze.Comparison) error
}

// New returns the formatter for a format name: "text", "json" or
// "markdown".
func New(format string, color bool, reportTitle string) (Formatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{Color: color}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "markdown":
		return &MarkdownFormatter{Title: reportTitle}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (supported: text, json, markdown)", format)
	}
}
