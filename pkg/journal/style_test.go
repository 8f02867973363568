package journal

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.BaseFontSize != 7 || s.LineWidth != 0.5 || s.TickLength != 2.5 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.Variant != "sans" || s.Color != color.Black {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if len(s.Palette) != 8 {
		t.Fatalf("default palette has %d colors, want 8", len(s.Palette))
	}
}

func TestNormalizedFillsZeroFields(t *testing.T) {
	s := (Style{BaseFontSize: 9}).normalized()
	if s.BaseFontSize != 9 {
		t.Fatalf("explicit field overwritten: %+v", s)
	}
	if s.LineWidth != 0.5 || s.TickLength != 2.5 || s.Variant != "sans" || len(s.Palette) != 8 {
		t.Fatalf("zero fields not defaulted: %+v", s)
	}
}

func TestApplySetsFontsAndStrokes(t *testing.T) {
	s := Style{BaseFontSize: 8, LineWidth: 0.7}
	p := plot.New()
	s.Apply(p)

	if got := p.Title.TextStyle.Font.Size; got != vg.Points(8) {
		t.Fatalf("title size = %v, want %v", got, vg.Points(8))
	}
	small := vg.Points(8 * tickLabelScale)
	if got := p.X.Tick.Label.Font.Size; got != small {
		t.Fatalf("tick label size = %v, want %v", got, small)
	}
	if got := p.Y.Tick.Label.Font.Size; got != small {
		t.Fatalf("tick label size = %v, want %v", got, small)
	}
	if got := p.X.LineStyle.Width; got != vg.Points(0.7) {
		t.Fatalf("axis width = %v, want %v", got, vg.Points(0.7))
	}
	if got := p.X.Tick.Length; got != vg.Points(2.5) {
		t.Fatalf("tick length = %v, want %v", got, vg.Points(2.5))
	}
	if got := p.Legend.TextStyle.Font.Size; got != vg.Points(8*legendScale) {
		t.Fatalf("legend size = %v, want %v", got, vg.Points(8*legendScale))
	}
}

func TestApplySerifVariant(t *testing.T) {
	s := Style{Variant: "serif"}
	p := plot.New()
	s.Apply(p)
	if got := p.Title.TextStyle.Font.Variant; got != "Serif" {
		t.Fatalf("variant = %q, want Serif", got)
	}
}

func TestSeriesStyles(t *testing.T) {
	s := DefaultStyle()
	ls := s.LineStyleFor(0)
	if ls.Width != vg.Points(0.5*plotLineScale) {
		t.Fatalf("line width = %v, want %v", ls.Width, vg.Points(0.5*plotLineScale))
	}
	if ls.Color != s.Palette[0] {
		t.Fatalf("line color = %v, want palette[0]", ls.Color)
	}
	gs := s.GlyphStyleFor(9)
	if gs.Color != s.Palette[1] {
		t.Fatalf("glyph color should cycle, got %v", gs.Color)
	}
	if gs.Radius != vg.Points(2.5/2) {
		t.Fatalf("glyph radius = %v, want %v", gs.Radius, vg.Points(2.5/2))
	}
}

func TestSetDefault(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	SetDefault(Style{BaseFontSize: 6})
	if Default().BaseFontSize != 6 {
		t.Fatalf("default not installed: %+v", Default())
	}
	if Default().LineWidth != 0.5 {
		t.Fatalf("SetDefault should normalize: %+v", Default())
	}
	if plot.DefaultFont.Size != vg.Points(6) {
		t.Fatalf("plot.DefaultFont.Size = %v, want %v", plot.DefaultFont.Size, vg.Points(6))
	}
}
