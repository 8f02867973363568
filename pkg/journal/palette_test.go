package journal

import (
	"image/color"
	"testing"
)

func TestPalette(t *testing.T) {
	p := Palette()
	if len(p) != 8 {
		t.Fatalf("palette has %d colors, want 8", len(p))
	}
	// Wong blue first, black last.
	if p[0] != (color.NRGBA{R: 0x00, G: 0x72, B: 0xB2, A: 0xff}) {
		t.Fatalf("first color = %v, want Wong blue", p[0])
	}
	if p[7] != (color.NRGBA{A: 0xff}) {
		t.Fatalf("last color = %v, want black", p[7])
	}
}

func TestPaletteColorCycles(t *testing.T) {
	p := Palette()
	if PaletteColor(0) != p[0] || PaletteColor(8) != p[0] || PaletteColor(9) != p[1] {
		t.Fatalf("palette cycling broken")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#D55E00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (color.NRGBA{R: 0xD5, G: 0x5E, B: 0x00, A: 0xff}) {
		t.Fatalf("unexpected color: %v", c)
	}
	if _, err := ParseHexColor("c0ffee"); err != nil {
		t.Fatalf("bare hex should parse: %v", err)
	}
	for _, bad := range []string{"", "#fff", "#gggggg", "#0072B2AA"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.NRGBA{R: 0x00, G: 0x72, B: 0xB2, A: 0xff}, 0x66)
	got, ok := c.(color.NRGBA)
	if !ok {
		t.Fatalf("expected NRGBA, got %T", c)
	}
	if got.A != 0x66 || got.R != 0x00 || got.G != 0x72 || got.B != 0xB2 {
		t.Fatalf("unexpected color: %v", got)
	}
}
