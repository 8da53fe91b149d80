package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/teatak/charstat/distribution"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSink saves one PNG bar chart per distribution into Dir.
type PlotSink struct {
	Dir string
}

func (s *PlotSink) Render(d distribution.Distribution, language, history string) error {
	p := plot.New()
	p.Title.Text = Title(language, history)
	p.X.Label.Text = "Alphabet"
	p.Y.Label.Text = "Probability Value"
	p.Y.Min = 0
	p.Y.Max = 1

	bars, err := plotter.NewBarChart(plotter.Values(d.Values()), vg.Points(10))
	if err != nil {
		return errors.Wrap(err, "bar chart")
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	labels := make([]string, 0, d.Len())
	for _, e := range d.Entries() {
		labels = append(labels, string(e.Char))
	}
	p.NominalX(labels...)

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return errors.Wrapf(err, "create plot dir %s", s.Dir)
	}
	path := filepath.Join(s.Dir, FileName(language, history))
	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "save plot %s", path)
	}
	return nil
}

// FileName returns the PNG name used for a language and history label.
// Quotes are dropped from the label; the empty history becomes "empty".
func FileName(language, history string) string {
	label := strings.Trim(history, `"`)
	if label == "" {
		label = "empty"
	}
	return fmt.Sprintf("%s_%s.png", strings.ToLower(language), label)
}
