// Package render builds the named demo figures. It is the bridge between
// the dataset package and pkg/journal: each builder assembles plotters for
// one figure of the original demo set.
//
//   - render.go: Params, the builder registry, Build/List and errors.
//   - basic.go: single-panel scatter (nature_single width).
//   - widths.go: sine + noisy scatter for journal width comparison.
//   - lineplot.go: mean +/- std time-series bands.
//   - multipanel.go: 2x2 grid with panel labels.
//   - iris.go: 1x4 iris overview (densities, box plot, scatter).
package render

import (
	"errors"
	"fmt"
	"sort"

	"journalplot/pkg/journal"
	"journalplot/pkg/types"

	"gonum.org/v1/plot/plotter"
)

// Params override a figure's default geometry and style. Zero values keep
// the builder's defaults.
type Params struct {
	// Journal picks a width from the journal width table by name and
	// takes precedence over WidthMM.
	Journal     string
	WidthMM     float64
	AspectRatio float64
	Style       *journal.Style
}

type buildFunc func(p Params) (*journal.Figure, error)

type builder struct {
	info  types.FigureInfo
	build buildFunc
}

var builders = map[string]builder{
	"basic": {
		info: types.FigureInfo{
			Name:        "basic",
			Description: "single-panel scatter at Nature single-column width",
			WidthMM:     89, AspectRatio: 0.8, Rows: 1, Cols: 1,
		},
		build: buildBasic,
	},
	"widths": {
		info: types.FigureInfo{
			Name:        "widths",
			Description: "sine with noisy samples, for comparing journal column widths",
			WidthMM:     89, AspectRatio: 0.6, Rows: 1, Cols: 1,
		},
		build: buildWidths,
	},
	"lineplot": {
		info: types.FigureInfo{
			Name:        "lineplot",
			Description: "time-series conditions with mean and std bands",
			WidthMM:     120, AspectRatio: 0.55, Rows: 1, Cols: 1,
		},
		build: buildLinePlot,
	},
	"multipanel": {
		info: types.FigureInfo{
			Name:        "multipanel",
			Description: "2x2 grid with scatter, lines, histogram and bar chart",
			WidthMM:     178, AspectRatio: 0.8, Rows: 2, Cols: 2,
		},
		build: buildMultiPanel,
	},
	"iris": {
		info: types.FigureInfo{
			Name:        "iris",
			Description: "1x4 iris overview: densities, box plot and scatter",
			WidthMM:     178, AspectRatio: 0.28, Rows: 1, Cols: 4,
		},
		build: buildIris,
	},
}

// List returns the available figures sorted by name.
func List() []types.FigureInfo {
	infos := make([]types.FigureInfo, 0, len(builders))
	for _, b := range builders {
		infos = append(infos, b.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Build renders the named figure with the given overrides.
func Build(name string, p Params) (*journal.Figure, error) {
	b, ok := builders[name]
	if !ok {
		return nil, &unknownFigureError{name: name}
	}
	if p.Journal != "" {
		mm, ok := journal.WidthMM(p.Journal)
		if !ok {
			return nil, &unknownJournalError{name: p.Journal}
		}
		p.WidthMM = mm
	}
	return b.build(p)
}

// CompareWidths is the width subset the widths demo renders side by side.
func CompareWidths() []string {
	return []string{"nature_single", "elsevier_single", "elsevier_full"}
}

type unknownFigureError struct{ name string }

func (e *unknownFigureError) Error() string { return fmt.Sprintf("unknown figure %q", e.name) }

type unknownJournalError struct{ name string }

func (e *unknownJournalError) Error() string {
	return fmt.Sprintf("unknown journal width %q", e.name)
}

// IsUnknownFigure reports whether err names a figure that does not exist.
func IsUnknownFigure(err error) bool {
	var e *unknownFigureError
	return errors.As(err, &e)
}

// IsUnknownJournal reports whether err names a journal width that does not exist.
func IsUnknownJournal(err error) bool {
	var e *unknownJournalError
	return errors.As(err, &e)
}

// newFigure applies Params on top of a builder's default config.
func newFigure(p Params, def journal.FigureConfig) (*journal.Figure, error) {
	if p.WidthMM > 0 {
		def.WidthMM = p.WidthMM
	}
	if p.AspectRatio > 0 {
		def.AspectRatio = p.AspectRatio
	}
	if p.Style != nil {
		def.Style = p.Style
	}
	return journal.NewFigure(def)
}

// xyPoints zips parallel slices into plotter points.
func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
