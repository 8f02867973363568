package journal

import (
	"math"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestMMToInches(t *testing.T) {
	if got := MMToInches(25.4); got != 1 {
		t.Fatalf("25.4mm = %v in, want 1", got)
	}
	if got := MMToInches(178); math.Abs(got-7.007874) > 1e-6 {
		t.Fatalf("178mm = %v in, want ~7.007874", got)
	}
}

func TestInchesToMMRoundTrip(t *testing.T) {
	for _, mm := range []float64{0, 57, 89, 90, 120, 178, 183, 190} {
		if got := InchesToMM(MMToInches(mm)); math.Abs(got-mm) > 1e-9 {
			t.Fatalf("round trip %vmm = %vmm", mm, got)
		}
	}
}

func TestMM(t *testing.T) {
	if got := MM(25.4); math.Abs(float64(got-vg.Inch)) > 1e-9 {
		t.Fatalf("MM(25.4) = %v, want %v", got, vg.Inch)
	}
	if got := MM(10); math.Abs(float64(got-10*vg.Millimeter)) > 1e-9 {
		t.Fatalf("MM(10) = %v, want ~%v", got, 10*vg.Millimeter)
	}
}
