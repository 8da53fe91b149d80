package frequency

import (
	"reflect"
	"testing"
	"unicode/utf8"

	"github.com/teatak/charstat/ngram"
)

func roundTripTable() *Table {
	return Count(ngram.MakeCorpus([]string{"ab", "ab", "ac"}, 2))
}

func TestCount(t *testing.T) {
	table := roundTripTable()

	expected := map[string]int{"a": 3, "b": 2, "c": 1, "ab": 2, "ac": 1}
	if table.Len() != len(expected) {
		t.Errorf("Len() = %d, want %d", table.Len(), len(expected))
	}
	for gram, want := range expected {
		if got := table.Get(gram); got != want {
			t.Errorf("Get(%q) = %d, want %d", gram, got, want)
		}
	}
	if got := table.Get("ba"); got != 0 {
		t.Errorf("Get(%q) = %d, want 0", "ba", got)
	}
	if table.MaxLen() != 2 {
		t.Errorf("MaxLen() = %d, want 2", table.MaxLen())
	}
}

func TestCountOrder(t *testing.T) {
	// Sequence: a ab b a ab b a ac c
	// Counts: a=3, ab=2, b=2, ac=1, c=1. Ties keep first-seen order.
	table := roundTripTable()
	expected := []Entry{
		{"a", 3},
		{"ab", 2},
		{"b", 2},
		{"ac", 1},
		{"c", 1},
	}
	if got := table.Entries(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Entries() = %v, want %v", got, expected)
	}

	table = Count([]string{"x", "y", "z", "y", "x"})
	expected = []Entry{{"x", 2}, {"y", 2}, {"z", 1}}
	if got := table.Entries(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Entries() = %v, want %v", got, expected)
	}
}

func TestTotal(t *testing.T) {
	tokens := []string{"über", "straße", "gun", "un"}
	chars := 0
	for _, tok := range tokens {
		chars += utf8.RuneCountInString(tok)
	}

	table := Count(ngram.MakeCorpus(tokens, 4))
	if got := table.Total(1); got != chars {
		t.Errorf("Total(1) = %d, want %d", got, chars)
	}
	if got := table.Total(9); got != 0 {
		t.Errorf("Total(9) = %d, want 0", got)
	}
	if table.MaxLen() != 4 {
		t.Errorf("MaxLen() = %d, want 4", table.MaxLen())
	}
}

func TestContinuations(t *testing.T) {
	table := Count(ngram.MakeCorpus([]string{"gun", "gun", "guz", "gunst", "un"}, 3))

	got := table.Continuations("gu")
	expected := []Entry{{"gun", 3}, {"guz", 1}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Continuations(%q) = %v, want %v", "gu", got, expected)
	}

	if got := table.Continuations("q"); got != nil {
		t.Errorf("Continuations(%q) = %v, want nil", "q", got)
	}

	for _, e := range table.Continuations("") {
		if utf8.RuneCountInString(e.Gram) != 1 {
			t.Errorf("Continuations(\"\") returned %q", e.Gram)
		}
	}
}

func TestCharacters(t *testing.T) {
	table := Count(ngram.MakeCorpus([]string{"ba", "aß"}, 2))
	expected := []rune{'a', 'b', 'ß'}
	if got := table.Characters(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Characters() = %q, want %q", got, expected)
	}
}

func TestEmptyTable(t *testing.T) {
	table := Count(nil)
	if table.Len() != 0 || table.MaxLen() != 0 {
		t.Errorf("empty table: Len() = %d, MaxLen() = %d", table.Len(), table.MaxLen())
	}
	if got := table.Get("a"); got != 0 {
		t.Errorf("Get(%q) = %d, want 0", "a", got)
	}
	if got := table.TopK(3, 1); len(got) != 0 {
		t.Errorf("TopK() = %v, want empty", got)
	}
}
