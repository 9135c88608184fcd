package analyze

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eshatrova/textgrade/internal/mdtext"
)

// isMarkdown returns true if the file extension is .md or .markdown.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// ReadText reads the text content of a file. Markdown files are
// reduced to their prose first, so code blocks and markup do not skew
// the scores; any other file is treated as plain UTF-8 text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	if isMarkdown(path) {
		return mdtext.DocumentText(data)
	}
	return string(data), nil
}

// AnalyzeFile reads a file and analyzes its content.
func (a *Analyzer) AnalyzeFile(path string) (*Result, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	return a.Analyze(text)
}
