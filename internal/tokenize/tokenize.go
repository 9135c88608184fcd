// Package tokenize splits raw text into sentences and words for
// readability scoring. It understands Latin and Cyrillic scripts and
// masks common abbreviations so their periods do not end sentences.
package tokenize

import (
	"regexp"
	"strings"
)

// abbreviations whose trailing period must not terminate a sentence.
// Longer forms are listed before their prefixes ("т.д." before "д.")
// so masking never leaves a stray period behind.
var abbreviations = []string{
	"Mr.", "Mrs.", "Dr.", "Prof.", "Jr.", "Sr.",
	"vs.", "etc.", "e.g.", "i.e.",
	"т.д.", "т.п.", "др.", "пр.", "гг.", "г.",
}

const dotMask = "\x00"

var (
	sentenceEnd = regexp.MustCompile(`[.!?]+`)
	wordRun     = regexp.MustCompile(`[a-zа-яё]+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Clean collapses runs of whitespace into single spaces and trims
// leading and trailing whitespace.
func Clean(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// Sentences splits text into sentences on runs of '.', '!' and '?'.
// Periods inside known abbreviations are masked first so "Dr. Smith"
// stays one sentence. Empty segments are dropped; the remaining
// segments are trimmed, with abbreviation periods restored.
func Sentences(text string) []string {
	if text == "" {
		return nil
	}

	protected := text
	for _, abbr := range abbreviations {
		masked := strings.ReplaceAll(abbr, ".", dotMask)
		protected = strings.ReplaceAll(protected, abbr, masked)
	}

	var sentences []string
	for _, seg := range sentenceEnd.Split(protected, -1) {
		seg = strings.TrimSpace(strings.ReplaceAll(seg, dotMask, "."))
		if seg != "" {
			sentences = append(sentences, seg)
		}
	}
	return sentences
}

// Words extracts the lowercased words of text in order of appearance,
// duplicates retained. A word is a maximal run of Latin or Cyrillic
// letters; digits and punctuation separate words and are dropped.
func Words(text string) []string {
	if text == "" {
		return nil
	}
	return wordRun.FindAllString(strings.ToLower(text), -1)
}

// Letters returns the total letter count across words. Words carry no
// spaces or punctuation, so this is a plain length sum.
func Letters(words []string) int {
	total := 0
	for _, w := range words {
		total += len([]rune(w))
	}
	return total
}

// Paragraphs counts paragraphs in raw text, where paragraphs are
// separated by blank lines. Text with no blank line is one paragraph.
func Paragraphs(text string) int {
	return strings.Count(text, "\n\n") + 1
}

// UniqueWords returns the number of distinct words in the slice.
func UniqueWords(words []string) int {
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		seen[w] = true
	}
	return len(seen)
}
