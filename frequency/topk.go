package frequency

import "unicode/utf8"

// TopK returns the k most frequent n-grams of exactly length characters.
func (t *Table) TopK(k, length int) []string {
	entries := t.TopKEntries(k, length)
	grams := make([]string, len(entries))
	for i, e := range entries {
		grams[i] = e.Gram
	}
	return grams
}

// TopKEntries is like TopK but keeps the counts.
// It returns fewer than k entries when the table has fewer of that length.
func (t *Table) TopKEntries(k, length int) []Entry {
	if k <= 0 {
		return []Entry{}
	}
	var out []Entry
	for _, e := range t.entries {
		if utf8.RuneCountInString(e.Gram) != length {
			continue
		}
		out = append(out, e)
		if len(out) == k {
			break
		}
	}
	if out == nil {
		return []Entry{}
	}
	return out
}
