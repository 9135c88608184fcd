package tokenize

import (
	"reflect"
	"testing"
)

func TestSentences_Basic(t *testing.T) {
	got := Sentences("Hello world. How are you?")
	want := []string{"Hello world", "How are you"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSentences_AbbreviationsDoNotSplit(t *testing.T) {
	got := Sentences("Mr. Smith met Dr. Jones. They talked.")
	if len(got) != 2 {
		t.Fatalf("got %d sentences %v, want 2", len(got), got)
	}
	if got[0] != "Mr. Smith met Dr. Jones" {
		t.Errorf("first sentence = %q, periods not restored", got[0])
	}
}

func TestSentences_RussianAbbreviations(t *testing.T) {
	// The period that ends "т.д." is part of the abbreviation, so it
	// does not terminate the sentence either.
	got := Sentences("Он изучал физику, химию и т.д. Потом устал.")
	if len(got) != 1 {
		t.Fatalf("got %d sentences %v, want 1", len(got), got)
	}
}

func TestSentences_MultiplePunctuation(t *testing.T) {
	got := Sentences("Wow!!! Really?! Yes.")
	want := []string{"Wow", "Really", "Yes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSentences_Empty(t *testing.T) {
	if got := Sentences(""); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
	if got := Sentences("   "); len(got) != 0 {
		t.Errorf("whitespace-only: got %v, want empty", got)
	}
}

func TestWords_LowercasesAndDropsPunctuation(t *testing.T) {
	got := Words("Hello, World! 123")
	want := []string{"hello", "world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWords_KeepsDuplicatesInOrder(t *testing.T) {
	got := Words("the cat and the dog")
	want := []string{"the", "cat", "and", "the", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWords_Cyrillic(t *testing.T) {
	got := Words("Привет, мир! Ёлка.")
	want := []string{"привет", "мир", "ёлка"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWords_Empty(t *testing.T) {
	if got := Words(""); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"a\n\nb\tc", "a b c"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLetters_CountsRunesNotBytes(t *testing.T) {
	// Cyrillic letters are two bytes each in UTF-8.
	got := Letters([]string{"мир", "ab"})
	if got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestParagraphs(t *testing.T) {
	if got := Paragraphs("one\n\ntwo\n\nthree"); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	if got := Paragraphs("single line"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestUniqueWords(t *testing.T) {
	got := UniqueWords([]string{"the", "cat", "the", "dog"})
	if got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}
