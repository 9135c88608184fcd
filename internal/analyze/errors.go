package analyze

import "fmt"

// ValidationError reports input that cannot be analyzed: empty text,
// too few words, or too few sentences. It is the only error kind the
// pipeline itself produces; everything else bubbles up from
// collaborators such as the file reader.
type ValidationError struct {
	Msg string
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Msg }

func errEmptyText() error {
	return &ValidationError{Msg: "text is empty"}
}

func errTooFewWords(got int) error {
	return &ValidationError{Msg: fmt.Sprintf(
		"text too short: %d words (minimum %d)", got, MinWords)}
}

func errTooFewSentences() error {
	return &ValidationError{Msg: fmt.Sprintf(
		"text needs at least %d sentence", MinSentences)}
}
