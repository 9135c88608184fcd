package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eshatrova/textgrade/internal/config"
	"github.com/eshatrova/textgrade/internal/log"
)

const sampleText = "The cat sat on the mat. The dog ran in the park. " +
	"Birds fly high in the sky. Fish swim in the sea."

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_MixedOutcomes(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", sampleText)
	bad := writeFile(t, dir, "bad.txt", "too short")

	r := &Runner{Config: config.Defaults()}
	out := r.Run([]string{good, bad})
	if len(out) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(out))
	}
	if out[0].Err != nil {
		t.Errorf("good file failed: %v", out[0].Err)
	}
	if out[1].Err == nil {
		t.Error("short file should fail validation")
	}
}

func TestRun_SkipsIgnoredPaths(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", sampleText)
	draft := writeFile(t, dir, "draft.txt", sampleText)

	cfg := config.Defaults()
	cfg.Ignore = []string{"**/draft.txt"}
	r := &Runner{Config: cfg}

	out := r.Run([]string{good, draft})
	if len(out) != 1 {
		t.Fatalf("got %d outcomes %v, want 1", len(out), out)
	}
	if out[0].Name != good {
		t.Errorf("kept %q, want %q", out[0].Name, good)
	}
}

func TestRun_LanguageOverridePerPath(t *testing.T) {
	dir := t.TempDir()
	ru := writeFile(t, dir, "intro.ru.txt", "Это простой текст на русском языке. "+
		"Он содержит несколько коротких предложений.")

	cfg := config.Defaults()
	cfg.Language = "english"
	cfg.Overrides = []config.Override{
		{Files: []string{"**/*.ru.txt"}, Language: "russian"},
	}
	r := &Runner{Config: cfg}

	out := r.Run([]string{ru})
	if len(out) != 1 || out[0].Err != nil {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if out[0].Result.Audience == "unknown" {
		t.Errorf("audience = %q, want a classified audience", out[0].Result.Audience)
	}
}

func TestRun_VerboseLogging(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", sampleText)

	var buf bytes.Buffer
	r := &Runner{Config: config.Defaults(), Log: log.New(true, &buf)}
	r.Run([]string{good})

	if !strings.Contains(buf.String(), "flesch") {
		t.Errorf("verbose log should mention the score, got %q", buf.String())
	}
}

func TestRunSource(t *testing.T) {
	r := &Runner{Config: config.Defaults()}
	res, err := r.RunSource("<stdin>", sampleText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SentenceCount != 4 {
		t.Errorf("sentence count = %d, want 4", res.SentenceCount)
	}
}
