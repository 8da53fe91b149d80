package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/teatak/charstat/distribution"
)

// Sink renders a finished distribution, labelled with its language and history.
type Sink interface {
	Render(d distribution.Distribution, language, history string) error
}

// Title is the chart title shared by all sinks.
func Title(language, history string) string {
	return fmt.Sprintf("Probability distribution over the %s alphabet given the history %s", language, history)
}

// Quote formats a history for display, so the empty history reads as "".
func Quote(history string) string {
	return fmt.Sprintf("%q", history)
}

// TextSink draws horizontal bar charts on a writer.
type TextSink struct {
	W io.Writer
	// Width is the bar length for probability 1. Zero means 50.
	Width int
}

func (s *TextSink) Render(d distribution.Distribution, language, history string) error {
	width := s.Width
	if width <= 0 {
		width = 50
	}

	var b strings.Builder
	fmt.Fprintln(&b, Title(language, history))
	if d.Empty() {
		fmt.Fprintln(&b, "  (no observations)")
	}
	for _, p := range d.Entries() {
		bar := int(math.Round(p.P * float64(width)))
		fmt.Fprintf(&b, "  %c |%-*s %.4f\n", p.Char, width, strings.Repeat("#", bar), p.P)
	}
	_, err := io.WriteString(s.W, b.String())
	return err
}
