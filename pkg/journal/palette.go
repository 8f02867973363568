package journal

import (
	"fmt"
	"image/color"
)

// paletteHex is the Wong (2011, Nature Methods 8, 441) colorblind-friendly
// palette in its published order: blue, vermillion, bluish green, reddish
// purple, orange, sky blue, yellow, black.
var paletteHex = []string{
	"#0072B2",
	"#D55E00",
	"#009E73",
	"#CC79A7",
	"#E69F00",
	"#56B4E9",
	"#F0E442",
	"#000000",
}

// Palette returns the default color cycle as parsed colors.
// The slice is freshly allocated; callers may modify it.
func Palette() []color.Color {
	cs := make([]color.Color, len(paletteHex))
	for i, h := range paletteHex {
		c, err := ParseHexColor(h)
		if err != nil {
			panic(err) // paletteHex entries are constants
		}
		cs[i] = c
	}
	return cs
}

// PaletteColor returns the i-th palette color, cycling past the end.
func PaletteColor(i int) color.Color {
	p := Palette()
	return p[((i%len(p))+len(p))%len(p)]
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque color.
func ParseHexColor(s string) (color.Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return nil, fmt.Errorf("hex color must be 6 digits: %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// WithAlpha returns c with its alpha replaced, for translucent fills.
func WithAlpha(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}
