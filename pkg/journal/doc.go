// Package journal creates publication-ready gonum/plot figures sized for
// specific journals. It is structured into small files by concern:
//
//   - units.go: millimeter/inch conversion helpers.
//   - widths.go: full-page width table for common journals.
//   - palette.go: colorblind-friendly default palette (Wong 2011).
//   - style.go: Style type, publication defaults, per-plot application
//     and the process-wide default used by NewFigure.
//   - figure.go: Figure grid factory at a precise physical size.
//   - save.go: multi-format export (SVG, PNG, PDF, EPS, TIFF, JPEG).
//
// The intended workflow mirrors how figures are prepared for submission:
//
//	journal.SetDefault(journal.DefaultStyle())
//	fig, err := journal.NewFigure(journal.FigureConfig{WidthMM: 178, Cols: 4})
//	// ... add plotters to fig.At(0, i) ...
//	err = fig.Save("figure1.svg")
//
// All sizes are physical: a figure created at 89 mm prints at 89 mm.
package journal
