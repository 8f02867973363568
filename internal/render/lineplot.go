package render

import (
	"journalplot/internal/dataset"
	"journalplot/pkg/journal"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
)

// buildLinePlot simulates three experimental conditions with 20 replicates
// each and draws the per-condition mean with a +/- one std shaded band.
// The defaults use slightly larger text and thicker lines than the base
// style, as the original demo did.
func buildLinePlot(p Params) (*journal.Figure, error) {
	def := journal.FigureConfig{
		WidthMM:     120,
		AspectRatio: 0.55,
		Style:       &journal.Style{BaseFontSize: 8, LineWidth: 0.7},
	}
	f, err := newFigure(p, def)
	if err != nil {
		return nil, err
	}

	ts := dataset.Linspace(0, 10, 100)
	src := rand.NewSource(dataset.SeedLinePlot)
	ax := f.At(0, 0)

	for i, cond := range dataset.DecayConditions() {
		reps := dataset.Replicates(cond, ts, 20, 0.08, src)

		mean := make([]float64, len(ts))
		std := make([]float64, len(ts))
		col := make([]float64, len(reps))
		for j := range ts {
			for k := range reps {
				col[k] = reps[k][j]
			}
			mean[j] = stat.Mean(col, nil)
			std[j] = stat.StdDev(col, nil)
		}

		// Band boundary: upper edge left to right, lower edge back.
		band := make(plotter.XYs, 0, 2*len(ts))
		for j := range ts {
			band = append(band, plotter.XY{X: ts[j], Y: mean[j] + std[j]})
		}
		for j := len(ts) - 1; j >= 0; j-- {
			band = append(band, plotter.XY{X: ts[j], Y: mean[j] - std[j]})
		}
		poly, err := plotter.NewPolygon(band)
		if err != nil {
			return nil, err
		}
		poly.Color = journal.WithAlpha(f.Style.LineStyleFor(i).Color, 51)
		poly.LineStyle.Width = 0

		line, err := plotter.NewLine(xyPoints(ts, mean))
		if err != nil {
			return nil, err
		}
		line.LineStyle = f.Style.LineStyleFor(i)

		ax.Add(poly, line)
		ax.Legend.Add(cond.Name, line)
	}

	ax.Title.Text = "Simulated experimental time-series"
	ax.X.Label.Text = "Time (s)"
	ax.Y.Label.Text = "Signal intensity (a.u.)"
	ax.Legend.Top = true
	return f, nil
}
