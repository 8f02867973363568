package journal

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Defaults for FigureConfig zero values: Cell/Elsevier full width, wide
// aspect suited to a 1x4 panel row.
const (
	DefaultWidthMM     = 178.0
	DefaultAspectRatio = 0.25
)

// FigureConfig describes the figure to create. Zero values take defaults.
type FigureConfig struct {
	// WidthMM is the total figure width in millimeters. Use a Widths
	// entry or any custom value.
	WidthMM float64
	// AspectRatio is height/width, e.g. 0.25 for a wide panel row or
	// 1.0 for a square figure.
	AspectRatio float64
	// Rows and Cols give the panel grid shape.
	Rows, Cols int
	// Style overrides the process-wide default installed by SetDefault.
	Style *Style
	// PanelLabels draws bold A, B, C... at each panel's top-left corner
	// on export, in row-major order.
	PanelLabels bool
}

// Figure is a grid of plots that exports at a precise physical size.
type Figure struct {
	Width, Height vg.Length
	Rows, Cols    int
	// Plots is always shaped [Rows][Cols], even for a single panel.
	Plots       [][]*plot.Plot
	Style       Style
	PanelLabels bool
}

// NewFigure creates a figure of Rows x Cols styled panels at the configured
// physical size. Every panel is a ready *plot.Plot with the style applied.
func NewFigure(cfg FigureConfig) (*Figure, error) {
	if cfg.WidthMM == 0 {
		cfg.WidthMM = DefaultWidthMM
	}
	if cfg.AspectRatio == 0 {
		cfg.AspectRatio = DefaultAspectRatio
	}
	if cfg.Rows == 0 {
		cfg.Rows = 1
	}
	if cfg.Cols == 0 {
		cfg.Cols = 1
	}
	if cfg.WidthMM < 0 {
		return nil, fmt.Errorf("figure width must be positive, got %v mm", cfg.WidthMM)
	}
	if cfg.AspectRatio < 0 {
		return nil, fmt.Errorf("aspect ratio must be positive, got %v", cfg.AspectRatio)
	}
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("grid must be at least 1x1, got %dx%d", cfg.Rows, cfg.Cols)
	}

	style := defaultStyle
	if cfg.Style != nil {
		style = cfg.Style.normalized()
	}

	plots := make([][]*plot.Plot, cfg.Rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cfg.Cols)
		for c := range plots[r] {
			p := plot.New()
			style.Apply(p)
			plots[r][c] = p
		}
	}

	return &Figure{
		Width:       MM(cfg.WidthMM),
		Height:      MM(cfg.WidthMM * cfg.AspectRatio),
		Rows:        cfg.Rows,
		Cols:        cfg.Cols,
		Plots:       plots,
		Style:       style,
		PanelLabels: cfg.PanelLabels,
	}, nil
}

// At returns the panel at the given grid position, row-major from top-left.
func (f *Figure) At(row, col int) *plot.Plot { return f.Plots[row][col] }

// panelPad separates panels in multi-panel figures.
const panelPad = 2 * vg.Millimeter

// render draws all panels, aligned to a shared grid, onto dc.
func (f *Figure) render(dc draw.Canvas) {
	tiles := draw.Tiles{Rows: f.Rows, Cols: f.Cols}
	if f.Rows > 1 || f.Cols > 1 {
		tiles.PadX = panelPad
		tiles.PadY = panelPad
	}
	canvases := plot.Align(f.Plots, tiles, dc)
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			f.Plots[r][c].Draw(canvases[r][c])
			if f.PanelLabels {
				f.drawPanelLabel(canvases[r][c], r*f.Cols+c)
			}
		}
	}
}

// drawPanelLabel writes a bold letter in the panel's top-left corner.
func (f *Figure) drawPanelLabel(c draw.Canvas, idx int) {
	sty := text.Style{
		Color:   f.Style.Color,
		Font:    f.Style.boldFont(f.Style.BaseFontSize * panelLabelScale),
		Handler: plot.DefaultTextHandler,
		XAlign:  text.XLeft,
		YAlign:  text.YTop,
	}
	pt := vg.Point{X: c.Rectangle.Min.X, Y: c.Rectangle.Max.Y}
	c.FillText(sty, pt, string(rune('A'+idx)))
}
