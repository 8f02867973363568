package render

import (
	"fmt"

	"journalplot/internal/dataset"
	"journalplot/pkg/journal"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// buildWidths renders the same plot at whatever width Params select, so the
// physical effect of a journal's column width can be compared across runs.
func buildWidths(p Params) (*journal.Figure, error) {
	f, err := newFigure(p, journal.FigureConfig{WidthMM: 89, AspectRatio: 0.6})
	if err != nil {
		return nil, err
	}

	xs, clean, noisy := dataset.NoisySine(80, dataset.SeedWidths)

	line, err := plotter.NewLine(xyPoints(xs, clean))
	if err != nil {
		return nil, err
	}
	line.LineStyle = f.Style.LineStyleFor(0)

	sc, err := plotter.NewScatter(xyPoints(xs, noisy))
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle = f.Style.GlyphStyleFor(1)
	sc.GlyphStyle.Radius = vg.Points(0.8)
	sc.GlyphStyle.Color = journal.WithAlpha(sc.GlyphStyle.Color, 128)

	ax := f.At(0, 0)
	mm := float64(f.Width / vg.Millimeter)
	if p.Journal != "" {
		ax.Title.Text = fmt.Sprintf("%s  (%.0f mm)", p.Journal, mm)
	} else {
		ax.Title.Text = fmt.Sprintf("%.0f mm", mm)
	}
	ax.X.Label.Text = "Time (s)"
	ax.Y.Label.Text = "Amplitude"
	ax.Add(line, sc)
	ax.Legend.Add("True signal", line)
	ax.Legend.Add("Noisy data", sc)
	ax.Legend.Top = true
	return f, nil
}
