package tokenizer

import (
	"strings"

	"github.com/teatak/charstat/alphabet"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer turns raw corpus text into lowercase word tokens made only of
// permitted characters.
type Tokenizer struct {
	permitted map[rune]struct{}
	lower     cases.Caser
}

// New creates a tokenizer that keeps the given characters and the plain space.
func New(permitted []rune) *Tokenizer {
	t := &Tokenizer{
		permitted: make(map[rune]struct{}, len(permitted)+1),
		lower:     cases.Lower(language.Und),
	}
	for _, r := range permitted {
		t.permitted[r] = struct{}{}
	}
	t.permitted[' '] = struct{}{}
	return t
}

// ForAlphabet creates a tokenizer whose permitted set is the alphabet.
func ForAlphabet(a alphabet.Alphabet) *Tokenizer {
	return New(a.Runes())
}

// Tokenize lowercases text, removes every character outside the permitted set
// and splits the rest on whitespace.
// Only U+0020 survives as a separator: line breaks and tabs are removed like any
// other foreign character, joining the text on both sides.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	folded := t.lower.String(norm.NFC.String(text))
	cleaned := strings.Map(t.keep, folded)
	return strings.Fields(cleaned)
}

func (t *Tokenizer) keep(r rune) rune {
	if _, ok := t.permitted[r]; ok {
		return r
	}
	return -1
}

// CharCount returns the number of characters over all tokens.
func CharCount(tokens []string) int {
	n := 0
	for _, tok := range tokens {
		n += len([]rune(tok))
	}
	return n
}
