package frequency

import (
	"sort"
	"unicode/utf8"

	iradix "github.com/hashicorp/go-immutable-radix"
)

// Entry is one n-gram and its number of occurrences.
type Entry struct {
	Gram  string
	Count int
}

// Table holds n-gram counts in descending count order.
// Entries with equal counts keep the order in which the n-gram was first seen.
// A Table is read-only once built.
type Table struct {
	entries []Entry
	index   *iradix.Tree
	maxLen  int
}

// Count aggregates an n-gram sequence into a frequency table.
func Count(grams []string) *Table {
	pos := make(map[string]int)
	var entries []Entry
	for _, g := range grams {
		if i, ok := pos[g]; ok {
			entries[i].Count++
			continue
		}
		pos[g] = len(entries)
		entries = append(entries, Entry{Gram: g, Count: 1})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return newTable(entries)
}

func newTable(entries []Entry) *Table {
	t := &Table{entries: entries}
	txn := iradix.New().Txn()
	for _, e := range entries {
		txn.Insert([]byte(e.Gram), e.Count)
		if l := utf8.RuneCountInString(e.Gram); l > t.maxLen {
			t.maxLen = l
		}
	}
	t.index = txn.Commit()
	return t
}

// Len returns the number of distinct n-grams.
func (t *Table) Len() int {
	return len(t.entries)
}

// MaxLen returns the length of the longest counted n-gram.
func (t *Table) MaxLen() int {
	return t.maxLen
}

// Entries returns a copy of all entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Get returns the count of gram, or 0 if it was never seen.
func (t *Table) Get(gram string) int {
	v, ok := t.index.Get([]byte(gram))
	if !ok {
		return 0
	}
	return v.(int)
}

// Total returns the summed count of all n-grams with length characters.
func (t *Table) Total(length int) int {
	total := 0
	for _, e := range t.entries {
		if utf8.RuneCountInString(e.Gram) == length {
			total += e.Count
		}
	}
	return total
}

// Continuations returns the entries one character longer than history that
// start with history, in table order.
func (t *Table) Continuations(history string) []Entry {
	want := utf8.RuneCountInString(history) + 1
	found := make(map[string]struct{})
	t.index.Root().WalkPrefix([]byte(history), func(k []byte, _ interface{}) bool {
		if utf8.RuneCount(k) == want {
			found[string(k)] = struct{}{}
		}
		return false
	})
	if len(found) == 0 {
		return nil
	}

	// The walk is lexical; the table scan restores count order.
	out := make([]Entry, 0, len(found))
	for _, e := range t.entries {
		if _, ok := found[e.Gram]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Characters returns the distinct 1-grams in table order.
func (t *Table) Characters() []rune {
	var chars []rune
	for _, e := range t.entries {
		r, size := utf8.DecodeRuneInString(e.Gram)
		if e.Gram != "" && size == len(e.Gram) {
			chars = append(chars, r)
		}
	}
	return chars
}
