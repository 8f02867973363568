package journal

import "sort"

// Widths maps journal column names to full-page widths in millimeters.
// Single/full distinguishes single-column from full-width figures.
var Widths = map[string]float64{
	"elsevier_single": 90,
	"elsevier_full":   190,
	"science_single":  57,
	"science_full":    120,
	"cell_single":     85,
	"cell_full":       178,
	"nature_single":   89,
	"nature_full":     183,
}

// WidthMM looks up a journal width by name.
func WidthMM(name string) (float64, bool) {
	w, ok := Widths[name]
	return w, ok
}

// WidthNames returns the known journal width names in sorted order.
func WidthNames() []string {
	names := make([]string, 0, len(Widths))
	for n := range Widths {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
