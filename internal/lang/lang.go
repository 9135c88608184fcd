// Package lang provides a lightweight script-based language guess for
// the two languages the analyzer scores: English and Russian.
package lang

import (
	"fmt"
	"strings"
)

// Lang identifies a resolved analysis language.
type Lang string

const (
	// English selects the English syllable heuristic.
	English Lang = "en"
	// Russian selects the Russian syllable heuristic.
	Russian Lang = "ru"
)

// Mode is the user-facing language setting: a fixed language or
// auto-detection from the text itself.
type Mode string

// Language modes.
const (
	ModeEnglish Mode = "english"
	ModeRussian Mode = "russian"
	ModeAuto    Mode = "auto"
)

// ParseMode parses a user-provided language mode value.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(ModeAuto):
		return ModeAuto, nil
	case string(ModeEnglish), "en":
		return ModeEnglish, nil
	case string(ModeRussian), "ru":
		return ModeRussian, nil
	default:
		return "", fmt.Errorf("unknown language %q (supported: english, russian, auto)", raw)
	}
}

// Resolve maps a mode to a concrete language, running detection on
// text when the mode is auto.
func (m Mode) Resolve(text string) Lang {
	switch m {
	case ModeEnglish:
		return English
	case ModeRussian:
		return Russian
	default:
		return Detect(text)
	}
}

// Detect guesses the language of text by comparing Cyrillic and Latin
// letter counts over the raw text. Russian wins only on a strict
// majority of Cyrillic letters; ties (including text with no letters
// at all) resolve to English.
//
// This is a deliberate heuristic, not a language-ID model: short or
// mixed-script text can be misclassified. It never fails — anything
// that is not predominantly Cyrillic is reported as English.
func Detect(text string) Lang {
	var cyrillic, latin int
	for _, r := range text {
		switch {
		case r >= 'а' && r <= 'я', r >= 'А' && r <= 'Я', r == 'ё', r == 'Ё':
			cyrillic++
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			latin++
		}
	}
	if cyrillic > latin {
		return Russian
	}
	return English
}
