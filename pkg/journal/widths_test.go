package journal

import (
	"sort"
	"testing"
)

func TestWidths(t *testing.T) {
	want := map[string]float64{
		"elsevier_single": 90,
		"elsevier_full":   190,
		"science_single":  57,
		"science_full":    120,
		"cell_single":     85,
		"cell_full":       178,
		"nature_single":   89,
		"nature_full":     183,
	}
	if len(Widths) != len(want) {
		t.Fatalf("got %d widths, want %d", len(Widths), len(want))
	}
	for name, mm := range want {
		got, ok := WidthMM(name)
		if !ok {
			t.Fatalf("missing width %q", name)
		}
		if got != mm {
			t.Fatalf("%s = %vmm, want %vmm", name, got, mm)
		}
	}
}

func TestWidthMMUnknown(t *testing.T) {
	if _, ok := WidthMM("prl_double"); ok {
		t.Fatalf("expected miss for unknown journal")
	}
}

func TestWidthNamesSorted(t *testing.T) {
	names := WidthNames()
	if len(names) != len(Widths) {
		t.Fatalf("got %d names, want %d", len(names), len(Widths))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
}
