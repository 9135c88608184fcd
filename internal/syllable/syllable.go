// Package syllable estimates spoken syllable counts per word. True
// syllabification needs a pronunciation dictionary; these heuristics
// trade accuracy for determinism and zero data dependencies.
package syllable

import (
	"strings"

	"github.com/eshatrova/textgrade/internal/lang"
)

// CountFunc estimates syllables for a single word. Implementations are
// pure: same word in, same count out.
type CountFunc func(word string) int

// CounterFor returns the estimator for the given language.
func CounterFor(l lang.Lang) CountFunc {
	if l == lang.Russian {
		return Russian
	}
	return English
}

const (
	englishVowels = "aeiouy"
	russianVowels = "аеёиоуыэюя"
)

// English estimates syllables in an English word by counting vowel
// runs: each transition from a non-vowel into a vowel starts a new
// syllable, so diphthongs count once. Two endings are corrected after
// the scan: a trailing silent 'e' drops one syllable, and a consonant
// followed by trailing "le" (as in "table") adds one back. Nonempty
// words count at least 1; the empty string counts 0.
func English(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(englishVowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if strings.HasSuffix(word, "le") {
		runes := []rune(word)
		if len(runes) > 2 && !strings.ContainsRune(englishVowels, runes[len(runes)-3]) {
			count++
		}
	}

	if count < 1 {
		return 1
	}
	return count
}

// Russian estimates syllables in a Russian word. Russian syllable
// count equals the vowel count, clamped to 1 for nonempty words.
func Russian(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}

	count := 0
	for _, r := range word {
		if strings.ContainsRune(russianVowels, r) {
			count++
		}
	}

	if count < 1 {
		return 1
	}
	return count
}
