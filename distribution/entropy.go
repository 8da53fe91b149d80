package distribution

import "github.com/kzahedi/goent/discrete"

// Entropy returns the Shannon entropy of d in bits. Zero probabilities are skipped.
//
// An empty distribution (see Estimate) also yields 0. That value means
// "no data", not "no uncertainty"; check Empty before reading it.
func Entropy(d Distribution) float64 {
	if d.Empty() {
		return 0
	}
	return discrete.EntropyBase2(d.Values())
}
