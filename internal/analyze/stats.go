package analyze

import (
	"strings"

	"github.com/eshatrova/textgrade/internal/tokenize"
)

// TextStats is a quick structural summary of a text, available even
// for inputs too short for readability scoring.
type TextStats struct {
	Characters         int
	CharactersNoSpaces int
	Words              int
	UniqueWords        int
	Sentences          int
	Paragraphs         int
}

// Stats computes basic counts over raw text without validation.
func Stats(text string) TextStats {
	words := tokenize.Words(text)
	return TextStats{
		Characters:         len([]rune(text)),
		CharactersNoSpaces: len([]rune(strings.ReplaceAll(text, " ", ""))),
		Words:              len(words),
		UniqueWords:        tokenize.UniqueWords(words),
		Sentences:          len(tokenize.Sentences(text)),
		Paragraphs:         tokenize.Paragraphs(text),
	}
}
