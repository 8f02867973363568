package render

import (
	"journalplot/internal/dataset"
	"journalplot/pkg/journal"

	"gonum.org/v1/plot/plotter"
)

// buildBasic is the minimal workflow demo: one scatter panel at the
// Nature single-column width.
func buildBasic(p Params) (*journal.Figure, error) {
	f, err := newFigure(p, journal.FigureConfig{WidthMM: 89, AspectRatio: 0.8})
	if err != nil {
		return nil, err
	}

	xs, ys := dataset.LinearScatter(60, dataset.SeedBasic)
	sc, err := plotter.NewScatter(xyPoints(xs, ys))
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle = f.Style.GlyphStyleFor(0)
	sc.GlyphStyle.Color = journal.WithAlpha(journal.PaletteColor(0), 178)

	ax := f.At(0, 0)
	ax.Title.Text = "Basic scatter plot"
	ax.X.Label.Text = "X variable"
	ax.Y.Label.Text = "Y variable"
	ax.Add(sc)
	return f, nil
}
