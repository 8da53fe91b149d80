package distribution

import (
	"github.com/teatak/charstat/alphabet"
	"github.com/teatak/charstat/frequency"
)

// Prob is the probability of one character following a history.
type Prob struct {
	Char rune
	P    float64
}

// Distribution is P(next character | history) over a whole alphabet, in
// alphabet order. Characters never seen after the history have probability 0.
type Distribution struct {
	History string
	// Total is the number of observed continuations the estimate is based on.
	Total int
	probs []Prob
}

// Estimate computes the conditional distribution of the character following
// history. Each character costs one index lookup of history+c in the table.
//
// If history was never followed by any alphabet character, every probability
// is 0 and the distribution does not sum to 1; Empty reports this case. A
// history of MaxLen characters or more always ends up here.
func Estimate(t *frequency.Table, a alphabet.Alphabet, history string) Distribution {
	chars := a.Runes()
	counts := make([]int, len(chars))
	total := 0
	for i, c := range chars {
		counts[i] = t.Get(history + string(c))
		total += counts[i]
	}

	d := Distribution{History: history, Total: total, probs: make([]Prob, len(chars))}
	for i, c := range chars {
		d.probs[i].Char = c
		if total > 0 {
			d.probs[i].P = float64(counts[i]) / float64(total)
		}
	}
	return d
}

// Empty reports whether the history had no observed continuation.
func (d Distribution) Empty() bool {
	return d.Total == 0
}

// Len returns the number of characters, always the alphabet size.
func (d Distribution) Len() int {
	return len(d.probs)
}

// Get returns P(c | history), 0 for characters outside the alphabet.
func (d Distribution) Get(c rune) float64 {
	for _, p := range d.probs {
		if p.Char == c {
			return p.P
		}
	}
	return 0
}

// Entries returns a copy of the probabilities in alphabet order.
func (d Distribution) Entries() []Prob {
	out := make([]Prob, len(d.probs))
	copy(out, d.probs)
	return out
}

// Values returns the probabilities in alphabet order.
func (d Distribution) Values() []float64 {
	vals := make([]float64, len(d.probs))
	for i, p := range d.probs {
		vals[i] = p.P
	}
	return vals
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	sum := 0.0
	for _, p := range d.probs {
		sum += p.P
	}
	return sum
}

// Mode returns the most probable character. The first one in alphabet order
// wins a tie. It returns false for an empty distribution.
func (d Distribution) Mode() (Prob, bool) {
	if d.Empty() || len(d.probs) == 0 {
		return Prob{}, false
	}
	best := d.probs[0]
	for _, p := range d.probs[1:] {
		if p.P > best.P {
			best = p
		}
	}
	return best, true
}
