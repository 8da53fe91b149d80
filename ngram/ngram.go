package ngram

// Generate returns every contiguous substring of token from length 1 up to maxLen.
// Substrings are emitted per start index in ascending length, so "abc" with
// maxLen 2 yields a, ab, b, bc, c.
// Lengths are counted in characters. The 1-gram at each index is always
// emitted, so a maxLen below 1 behaves like 1.
func Generate(token string, maxLen int) []string {
	runes := []rune(token)
	n := len(runes)
	grams := make([]string, 0, Count(n, maxLen))

	for i := 0; i < n; i++ {
		grams = append(grams, string(runes[i]))
		for k := 2; k <= maxLen && i+k <= n; k++ {
			grams = append(grams, string(runes[i:i+k]))
		}
	}
	return grams
}

// MakeCorpus concatenates Generate over all tokens in order.
// Repeated n-grams are kept; they are what gets counted.
func MakeCorpus(tokens []string, maxLen int) []string {
	size := 0
	for _, tok := range tokens {
		size += Count(len([]rune(tok)), maxLen)
	}

	corpus := make([]string, 0, size)
	for _, tok := range tokens {
		corpus = append(corpus, Generate(tok, maxLen)...)
	}
	return corpus
}

// Count returns how many n-grams Generate emits for a token of tokenLen characters.
func Count(tokenLen, maxLen int) int {
	if maxLen < 1 {
		maxLen = 1
	}
	total := 0
	for k := 1; k <= maxLen && k <= tokenLen; k++ {
		total += tokenLen - k + 1
	}
	return total
}
