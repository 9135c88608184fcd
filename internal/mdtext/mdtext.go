// Package mdtext extracts prose from Markdown so readability is
// scored on what the reader actually reads: markup is stripped, links
// and images contribute their visible text, and code blocks are
// skipped entirely.
package mdtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractPlainText returns the plain text of a single node. Inline
// markup (emphasis, strong, code spans, links) is flattened to its
// textual content; images contribute their alt text. Soft line breaks
// become spaces.
func ExtractPlainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := node.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// DocumentText parses a Markdown document and returns its prose: the
// plain text of every heading, paragraph and list item, joined with
// blank lines. Fenced and indented code blocks and raw HTML are
// dropped.
func DocumentText(source []byte) (string, error) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var parts []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if s := strings.TrimSpace(ExtractPlainText(n, source)); s != "" {
				parts = append(parts, s)
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	return strings.Join(parts, "\n\n"), nil
}
