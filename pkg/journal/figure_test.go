package journal

import (
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestNewFigureDefaults(t *testing.T) {
	f, err := NewFigure(FigureConfig{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if f.Rows != 1 || f.Cols != 1 {
		t.Fatalf("grid = %dx%d, want 1x1", f.Rows, f.Cols)
	}
	if f.Width != MM(DefaultWidthMM) {
		t.Fatalf("width = %v, want %v", f.Width, MM(DefaultWidthMM))
	}
	if f.Height != MM(DefaultWidthMM*DefaultAspectRatio) {
		t.Fatalf("height = %v, want %v", f.Height, MM(DefaultWidthMM*DefaultAspectRatio))
	}
}

func TestNewFigureGridShape(t *testing.T) {
	f, err := NewFigure(FigureConfig{WidthMM: 178, AspectRatio: 0.8, Rows: 2, Cols: 3})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if len(f.Plots) != 2 {
		t.Fatalf("got %d rows, want 2", len(f.Plots))
	}
	for r := range f.Plots {
		if len(f.Plots[r]) != 3 {
			t.Fatalf("row %d has %d cols, want 3", r, len(f.Plots[r]))
		}
		for c := range f.Plots[r] {
			if f.Plots[r][c] == nil {
				t.Fatalf("panel %d,%d is nil", r, c)
			}
			if f.At(r, c) != f.Plots[r][c] {
				t.Fatalf("At(%d,%d) mismatch", r, c)
			}
		}
	}
}

func TestNewFigurePhysicalSize(t *testing.T) {
	f, err := NewFigure(FigureConfig{WidthMM: 89, AspectRatio: 0.8})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	// 89 mm is the Nature single column; height follows the aspect ratio.
	if f.Width != MM(89) {
		t.Fatalf("width = %v, want %v", f.Width, MM(89))
	}
	if f.Height != MM(89*0.8) {
		t.Fatalf("height = %v, want %v", f.Height, MM(89*0.8))
	}
}

func TestNewFigureStyleApplied(t *testing.T) {
	s := Style{BaseFontSize: 8}
	f, err := NewFigure(FigureConfig{Style: &s})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := f.At(0, 0).Title.TextStyle.Font.Size; got != vg.Points(8) {
		t.Fatalf("panel title size = %v, want %v", got, vg.Points(8))
	}
	if f.Style.BaseFontSize != 8 || f.Style.LineWidth != 0.5 {
		t.Fatalf("figure style not normalized: %+v", f.Style)
	}
}

func TestNewFigureRejectsBadConfig(t *testing.T) {
	cases := []FigureConfig{
		{WidthMM: -10},
		{AspectRatio: -0.5},
		{Rows: -1},
		{Cols: -2},
	}
	for _, cfg := range cases {
		if _, err := NewFigure(cfg); err == nil {
			t.Fatalf("expected error for %+v", cfg)
		}
	}
}
