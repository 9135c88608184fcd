package log

import (
	"bytes"
	"testing"
)

func TestPrintf_Enabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(true, &buf)

	l.Printf("config: %s", ".textgrade.yml")

	want := "config: .textgrade.yml\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintf_Disabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, &buf)

	l.Printf("config: %s", ".textgrade.yml")

	if got := buf.String(); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestPrintf_NilWriter(t *testing.T) {
	l := &Logger{Enabled: true}
	// Must not panic.
	l.Printf("file: %s", "intro.txt")
}
