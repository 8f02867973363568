package render

import (
	"math"

	"journalplot/internal/dataset"
	"journalplot/pkg/journal"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// buildMultiPanel is the 2x2 demo: scatter, sin/cos lines, histogram and
// bar chart, with bold A-D labels in the panel corners.
func buildMultiPanel(p Params) (*journal.Figure, error) {
	def := journal.FigureConfig{
		WidthMM:     178,
		AspectRatio: 0.8,
		Rows:        2,
		Cols:        2,
		PanelLabels: true,
	}
	f, err := newFigure(p, def)
	if err != nil {
		return nil, err
	}

	if err := panelScatter(f); err != nil {
		return nil, err
	}
	if err := panelLines(f); err != nil {
		return nil, err
	}
	if err := panelHistogram(f); err != nil {
		return nil, err
	}
	if err := panelBars(f); err != nil {
		return nil, err
	}
	return f, nil
}

func panelScatter(f *journal.Figure) error {
	xs := dataset.NormalSample(80, 0, 1, dataset.SeedMultiPanel)
	noise := dataset.NormalSample(80, 0, 0.5, dataset.SeedMultiPanel+1)
	ys := make([]float64, len(xs))
	for i := range xs {
		ys[i] = 0.6*xs[i] + noise[i]
	}
	sc, err := plotter.NewScatter(xyPoints(xs, ys))
	if err != nil {
		return err
	}
	sc.GlyphStyle = f.Style.GlyphStyleFor(0)
	sc.GlyphStyle.Color = journal.WithAlpha(sc.GlyphStyle.Color, 153)

	ax := f.At(0, 0)
	ax.Title.Text = "Scatter"
	ax.X.Label.Text = "X"
	ax.Y.Label.Text = "Y"
	ax.Add(sc)
	return nil
}

func panelLines(f *journal.Figure) error {
	ts := dataset.Linspace(0, 4*math.Pi, 200)
	sin := make([]float64, len(ts))
	cos := make([]float64, len(ts))
	for i, t := range ts {
		sin[i] = math.Sin(t)
		cos[i] = math.Cos(t)
	}

	ax := f.At(0, 1)
	for i, series := range []struct {
		name string
		ys   []float64
	}{{"sin", sin}, {"cos", cos}} {
		line, err := plotter.NewLine(xyPoints(ts, series.ys))
		if err != nil {
			return err
		}
		line.LineStyle = f.Style.LineStyleFor(i)
		ax.Add(line)
		ax.Legend.Add(series.name, line)
	}
	ax.Title.Text = "Line plot"
	ax.X.Label.Text = "t"
	ax.Y.Label.Text = "Amplitude"
	ax.Legend.Top = true
	return nil
}

func panelHistogram(f *journal.Figure) error {
	data := dataset.NormalSample(300, 5, 1.5, dataset.SeedMultiPanel+2)
	h, err := plotter.NewHist(plotter.Values(data), 20)
	if err != nil {
		return err
	}
	h.FillColor = journal.WithAlpha(journal.PaletteColor(0), 178)
	h.LineStyle = f.Style.LineStyleFor(0)

	ax := f.At(1, 0)
	ax.Title.Text = "Histogram"
	ax.X.Label.Text = "Value"
	ax.Y.Label.Text = "Count"
	ax.Add(h)
	return nil
}

func panelBars(f *journal.Figure) error {
	categories := []string{"A", "B", "C", "D", "E"}
	values := dataset.IntSample(len(categories), 3, 15, dataset.SeedMultiPanel+3)
	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(12))
	if err != nil {
		return err
	}
	bars.Color = journal.WithAlpha(journal.PaletteColor(0), 178)
	bars.LineStyle = f.Style.LineStyleFor(0)

	ax := f.At(1, 1)
	ax.Title.Text = "Bar chart"
	ax.X.Label.Text = "Category"
	ax.Y.Label.Text = "Value"
	ax.Add(bars)
	ax.NominalX(categories...)
	return nil
}
