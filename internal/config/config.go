// Package config loads the .textgrade.yml configuration: the default
// language and output format plus per-path overrides.
package config

import (
	"fmt"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/eshatrova/textgrade/internal/lang"
)

// Config is the top-level configuration.
type Config struct {
	// Language is the default language mode: english, russian or auto.
	Language string `yaml:"language"`
	// Format is the default output format: text, json or markdown.
	Format string `yaml:"format"`
	// Ignore lists glob patterns for files skipped in batch commands.
	Ignore []string `yaml:"ignore"`
	// Overrides apply a different language to files matching globs.
	Overrides []Override `yaml:"overrides,omitempty"`
	// ReportTitle is the heading used for rendered Markdown reports.
	ReportTitle string `yaml:"report-title"`
}

// Override pins a language for files matching glob patterns.
type Override struct {
	Files    []string `yaml:"files"`
	Language string   `yaml:"language"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Language:    string(lang.ModeAuto),
		Format:      "text",
		ReportTitle: "Readability Report",
	}
}

// Validate checks that the configured language and format values are
// usable, so bad configs fail on load rather than mid-run.
func (c *Config) Validate() error {
	if _, err := lang.ParseMode(c.Language); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Format {
	case "", "text", "json", "markdown":
	default:
		return fmt.Errorf("config: unknown format %q (supported: text, json, markdown)", c.Format)
	}
	for _, o := range c.Overrides {
		if _, err := lang.ParseMode(o.Language); err != nil {
			return fmt.Errorf("config override: %w", err)
		}
	}
	return nil
}

// Mode returns the parsed default language mode.
func (c *Config) Mode() lang.Mode {
	m, err := lang.ParseMode(c.Language)
	if err != nil {
		return lang.ModeAuto
	}
	return m
}

// EffectiveMode returns the language mode for a given file path. It
// starts from the default and applies each override whose patterns
// match the path, in order; later overrides take precedence.
func (c *Config) EffectiveMode(filePath string) lang.Mode {
	mode := c.Mode()
	for _, o := range c.Overrides {
		if matchesAny(o.Files, filePath) {
			if m, err := lang.ParseMode(o.Language); err == nil {
				mode = m
			}
		}
	}
	return mode
}

// IsIgnored returns true if the path matches any ignore pattern.
func (c *Config) IsIgnored(filePath string) bool {
	return matchesAny(c.Ignore, filePath)
}

// matchesAny returns true if filePath matches any of the glob
// patterns. Invalid patterns are skipped silently.
func matchesAny(patterns []string, filePath string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(filePath) {
			return true
		}
	}
	return false
}

// Dump renders the config as YAML, used by "textgrade init".
func (c *Config) Dump() ([]byte, error) {
	return yaml.Marshal(c)
}
