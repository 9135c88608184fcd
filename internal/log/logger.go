// Package log provides the verbose diagnostic logger behind the
// --verbose CLI flag. Messages go to the configured writer, typically
// stderr, and are suppressed entirely when verbosity is off.
package log

import (
	"fmt"
	"io"
)

// Logger writes verbose diagnostic messages when Enabled is true.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// New returns a logger writing to w when enabled is true.
func New(enabled bool, w io.Writer) *Logger {
	return &Logger{Enabled: enabled, W: w}
}

// Printf writes a formatted message followed by a newline when the
// logger is enabled; otherwise it is a no-op.
func (l *Logger) Printf(format string, args ...any) {
	if !l.Enabled || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
