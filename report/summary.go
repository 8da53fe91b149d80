package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/teatak/charstat/analysis"
)

// WriteTop prints the top n-grams of every length, one line per length.
func WriteTop(w io.Writer, r *analysis.Report) error {
	for n := 1; n <= len(r.Top); n++ {
		grams := r.TopGrams(n)
		quoted := make([]string, len(grams))
		for i, g := range grams {
			quoted[i] = Quote(g)
		}
		if _, err := fmt.Fprintf(w, "%s top %d-grams: [%s]\n", r.Language, n, strings.Join(quoted, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntropies prints the entropy of each history, or "no data" when the
// history was never observed.
func WriteEntropies(w io.Writer, r *analysis.Report) error {
	for _, h := range r.Histories {
		var err error
		if h.Distribution.Empty() {
			_, err = fmt.Fprintf(w, "%s H(C|h=%s) = no data\n", r.Language, Quote(h.History))
		} else {
			_, err = fmt.Fprintf(w, "%s H(C|h=%s) = %.6f bits\n", r.Language, Quote(h.History), h.Entropy)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderAll sends every distribution of r to the sink.
func RenderAll(s Sink, r *analysis.Report) error {
	for _, h := range r.Histories {
		if err := s.Render(h.Distribution, r.Language, Quote(h.History)); err != nil {
			return err
		}
	}
	return nil
}
