package alphabet

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Alphabet is the ordered symbol inventory of a language.
// The order is the order distributions are reported in.
type Alphabet struct {
	chars []rune
	index map[rune]int
}

const latin = "abcdefghijklmnopqrstuvwxyz"

var (
	// English holds the 26 Latin letters.
	English = MustNew(latin)
	// German holds the Latin letters followed by the umlauts and sharp s.
	German = MustNew(latin + "äöüß")
)

// New builds an alphabet from the characters of chars, in order.
func New(chars string) (Alphabet, error) {
	if chars == "" {
		return Alphabet{}, &ConfigurationError{Field: "alphabet", Reason: "empty alphabet"}
	}
	a := Alphabet{index: make(map[rune]int)}
	for _, r := range chars {
		if _, ok := a.index[r]; ok {
			return Alphabet{}, &ConfigurationError{
				Field:  "alphabet",
				Reason: fmt.Sprintf("duplicate character %q", r),
			}
		}
		a.index[r] = len(a.chars)
		a.chars = append(a.chars, r)
	}
	return a, nil
}

// MustNew is like New but panics on an invalid alphabet.
func MustNew(chars string) Alphabet {
	a, err := New(chars)
	if err != nil {
		panic(err)
	}
	return a
}

// ForLanguage returns the predefined alphabet for the base language of tag.
func ForLanguage(tag language.Tag) (Alphabet, bool) {
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English, true
	case "de":
		return German, true
	}
	return Alphabet{}, false
}

// Len returns the number of characters.
func (a Alphabet) Len() int {
	return len(a.chars)
}

// Runes returns a copy of the characters in order.
func (a Alphabet) Runes() []rune {
	out := make([]rune, len(a.chars))
	copy(out, a.chars)
	return out
}

// Contains reports whether r belongs to the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Index returns the position of r, or -1.
func (a Alphabet) Index(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

func (a Alphabet) String() string {
	var b strings.Builder
	for _, r := range a.chars {
		b.WriteRune(r)
	}
	return b.String()
}
