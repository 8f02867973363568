package journal

import (
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Scale factors relating secondary elements to the base font and line width.
const (
	tickLabelScale  = 0.9
	legendScale     = 0.9
	gridWidthScale  = 0.75
	plotLineScale   = 1.5
	minorTickScale  = 0.6
	panelLabelScale = 10.0 / 7.0
)

// Style holds publication typography and stroke defaults. All sizes are in
// printer's points. The zero value of any field means "use the default".
type Style struct {
	// BaseFontSize is the size for titles and axis labels. Journals
	// typically want 6-8 pt; tick and legend labels are scaled to 90%.
	BaseFontSize float64
	// LineWidth is the stroke width for axes and ticks. Plotted lines
	// are drawn at 1.5x, grid lines at 0.75x.
	LineWidth float64
	// TickLength is the major tick length; minor ticks are 60%.
	TickLength float64
	// MarkerSize is the scatter marker diameter.
	MarkerSize float64
	// Color is the text, axis and tick color.
	Color color.Color
	// Variant selects the font family: "sans" (default) or "serif".
	Variant string
	// Palette is the color cycle for LineStyleFor/GlyphStyleFor.
	Palette []color.Color
}

// DefaultStyle returns the publication defaults: 7 pt text, 0.5 pt strokes,
// 2.5 pt ticks, black, sans-serif, Wong palette.
func DefaultStyle() Style {
	return Style{
		BaseFontSize: 7,
		LineWidth:    0.5,
		TickLength:   2.5,
		MarkerSize:   2.5,
		Color:        color.Black,
		Variant:      "sans",
		Palette:      Palette(),
	}
}

// normalized fills zero-valued fields from DefaultStyle.
func (s Style) normalized() Style {
	d := DefaultStyle()
	if s.BaseFontSize <= 0 {
		s.BaseFontSize = d.BaseFontSize
	}
	if s.LineWidth <= 0 {
		s.LineWidth = d.LineWidth
	}
	if s.TickLength <= 0 {
		s.TickLength = d.TickLength
	}
	if s.MarkerSize <= 0 {
		s.MarkerSize = d.MarkerSize
	}
	if s.Color == nil {
		s.Color = d.Color
	}
	if s.Variant == "" {
		s.Variant = d.Variant
	}
	if len(s.Palette) == 0 {
		s.Palette = d.Palette
	}
	return s
}

func (s Style) variant() font.Variant {
	if s.Variant == "serif" {
		return "Serif"
	}
	return "Sans"
}

func (s Style) font(size float64) font.Font {
	return font.Font{
		Typeface: "Liberation",
		Variant:  s.variant(),
		Size:     vg.Points(size),
	}
}

// boldFont is used for panel labels.
func (s Style) boldFont(size float64) font.Font {
	f := s.font(size)
	f.Weight = xfont.WeightBold
	return f
}

// Apply styles a single plot: fonts, label sizes, axis and tick strokes.
// NewFigure calls this for every panel; call it directly only on plots
// created outside a Figure.
func (s Style) Apply(p *plot.Plot) {
	s = s.normalized()
	base := s.font(s.BaseFontSize)
	small := s.font(s.BaseFontSize * tickLabelScale)
	stroke := draw.LineStyle{Color: s.Color, Width: vg.Points(s.LineWidth)}

	p.Title.TextStyle.Font = base
	p.Title.TextStyle.Color = s.Color

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font = base
		ax.Label.TextStyle.Color = s.Color
		ax.LineStyle = stroke
		ax.Tick.Label.Font = small
		ax.Tick.Label.Color = s.Color
		ax.Tick.LineStyle = stroke
		ax.Tick.Length = vg.Points(s.TickLength)
	}

	p.Legend.TextStyle.Font = s.font(s.BaseFontSize * legendScale)
	p.Legend.TextStyle.Color = s.Color
	p.Legend.ThumbnailWidth = vg.Points(s.BaseFontSize)
}

// LineStyleFor returns the stroke for the i-th plotted series.
func (s Style) LineStyleFor(i int) draw.LineStyle {
	s = s.normalized()
	return draw.LineStyle{
		Color: s.paletteColor(i),
		Width: vg.Points(s.LineWidth * plotLineScale),
	}
}

// GlyphStyleFor returns the marker style for the i-th scatter series.
func (s Style) GlyphStyleFor(i int) draw.GlyphStyle {
	s = s.normalized()
	return draw.GlyphStyle{
		Color:  s.paletteColor(i),
		Radius: vg.Points(s.MarkerSize / 2),
		Shape:  draw.CircleGlyph{},
	}
}

// GridLineStyle returns the stroke for grid lines.
func (s Style) GridLineStyle() draw.LineStyle {
	s = s.normalized()
	return draw.LineStyle{
		Color: color.Gray{Y: 0xc8},
		Width: vg.Points(s.LineWidth * gridWidthScale),
	}
}

func (s Style) paletteColor(i int) color.Color {
	n := len(s.Palette)
	return s.Palette[((i%n)+n)%n]
}

// defaultStyle is the process-wide style used by NewFigure when the
// FigureConfig does not carry its own.
var defaultStyle = DefaultStyle()

// SetDefault installs s as the process-wide style and pushes it into the
// gonum/plot package defaults so that plots created outside a Figure pick
// up the same look. Call once at startup, before creating figures.
func SetDefault(s Style) {
	s = s.normalized()
	defaultStyle = s
	plot.DefaultFont = s.font(s.BaseFontSize)
	plotter.DefaultLineStyle.Color = s.Color
	plotter.DefaultLineStyle.Width = vg.Points(s.LineWidth * plotLineScale)
	plotter.DefaultGlyphStyle.Color = s.Color
	plotter.DefaultGlyphStyle.Radius = vg.Points(s.MarkerSize / 2)
}

// Default returns the process-wide style installed by SetDefault.
func Default() Style { return defaultStyle }
