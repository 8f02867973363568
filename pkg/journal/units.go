package journal

import "gonum.org/v1/plot/vg"

// MMPerInch is the number of millimeters in one inch.
const MMPerInch = 25.4

// MMToInches converts millimeters to inches.
func MMToInches(mm float64) float64 { return mm / MMPerInch }

// InchesToMM converts inches to millimeters.
func InchesToMM(in float64) float64 { return in * MMPerInch }

// MM returns a vg.Length for the given number of millimeters.
func MM(mm float64) vg.Length { return vg.Length(mm) * vg.Millimeter }
