package render

import (
	"journalplot/internal/dataset"
	"journalplot/pkg/journal"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// buildIris is the full-workflow demo: a 1x4 overview of the iris data
// (two density histograms, a box plot by species, a scatter) at the
// Cell/Elsevier full width.
func buildIris(p Params) (*journal.Figure, error) {
	def := journal.FigureConfig{
		WidthMM:     178,
		AspectRatio: 0.28,
		Rows:        1,
		Cols:        4,
	}
	f, err := newFigure(p, def)
	if err != nil {
		return nil, err
	}

	rows, err := dataset.LoadIris()
	if err != nil {
		return nil, err
	}
	species := dataset.Species(rows)
	groups := dataset.BySpecies(rows)

	ax := f.At(0, 0)
	err = irisDensityPanel(ax, species, groups, func(r dataset.IrisRow) float64 { return r.SepalLength })
	if err != nil {
		return nil, err
	}
	ax.Title.Text = "Sepal length\ndistribution"
	ax.X.Label.Text = "Sepal length (cm)"
	ax.Y.Label.Text = "Density"

	ax = f.At(0, 1)
	err = irisDensityPanel(ax, species, groups, func(r dataset.IrisRow) float64 { return r.SepalWidth })
	if err != nil {
		return nil, err
	}
	ax.Title.Text = "Sepal width\ndistribution"
	ax.X.Label.Text = "Sepal width (cm)"
	ax.Y.Label.Text = "Density"

	if err := irisBoxPanel(f, species, groups); err != nil {
		return nil, err
	}
	if err := irisScatterPanel(f, species, groups); err != nil {
		return nil, err
	}
	return f, nil
}

// irisDensityPanel overlays one normalized histogram per species.
func irisDensityPanel(ax *plot.Plot, species []string, groups map[string][]dataset.IrisRow, value func(dataset.IrisRow) float64) error {
	for i, sp := range species {
		vals := make(plotter.Values, 0, len(groups[sp]))
		for _, r := range groups[sp] {
			vals = append(vals, value(r))
		}
		h, err := plotter.NewHist(vals, 15)
		if err != nil {
			return err
		}
		h.Normalize(1)
		h.FillColor = journal.WithAlpha(journal.PaletteColor(i), 153)
		h.LineStyle.Width = 0
		ax.Add(h)
	}
	return nil
}

// irisBoxPanel draws one sepal-length box per species.
func irisBoxPanel(f *journal.Figure, species []string, groups map[string][]dataset.IrisRow) error {
	ax := f.At(0, 2)
	for i, sp := range species {
		vals := make(plotter.Values, 0, len(groups[sp]))
		for _, r := range groups[sp] {
			vals = append(vals, r.SepalLength)
		}
		b, err := plotter.NewBoxPlot(vg.Points(10), float64(i), vals)
		if err != nil {
			return err
		}
		b.FillColor = journal.PaletteColor(i)
		ax.Add(b)
	}
	ax.NominalX(species...)
	ax.Title.Text = "Sepal length\nby species"
	ax.X.Label.Text = "Species"
	ax.Y.Label.Text = "Sepal length (cm)"
	return nil
}

// irisScatterPanel plots sepal length against width, one series per
// species, and carries the shared legend.
func irisScatterPanel(f *journal.Figure, species []string, groups map[string][]dataset.IrisRow) error {
	ax := f.At(0, 3)
	for i, sp := range species {
		pts := make(plotter.XYs, 0, len(groups[sp]))
		for _, r := range groups[sp] {
			pts = append(pts, plotter.XY{X: r.SepalWidth, Y: r.SepalLength})
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle = f.Style.GlyphStyleFor(i)
		sc.GlyphStyle.Color = journal.WithAlpha(sc.GlyphStyle.Color, 178)
		ax.Add(sc)
		ax.Legend.Add(sp, sc)
	}
	ax.Title.Text = "Sepal length\nby width"
	ax.X.Label.Text = "Sepal width (cm)"
	ax.Y.Label.Text = "Sepal length (cm)"
	ax.Legend.Top = true
	return nil
}
