// Package dataset provides the demo data: the embedded iris measurements
// and seeded synthetic series. Everything here is deterministic so demo
// figures render identically across runs.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
)

//go:embed iris.csv
var irisCSV []byte

// IrisRow is one flower measurement, lengths in centimeters.
type IrisRow struct {
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
	Species     string
}

// LoadIris parses the embedded iris dataset (150 rows, 3 species).
func LoadIris() ([]IrisRow, error) {
	r := csv.NewReader(bytes.NewReader(irisCSV))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("iris csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("iris csv: no data rows")
	}
	rows := make([]IrisRow, 0, len(records)-1)
	for i, rec := range records[1:] { // skip header
		if len(rec) != 5 {
			return nil, fmt.Errorf("iris csv row %d: %d fields", i+2, len(rec))
		}
		var vals [4]float64
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("iris csv row %d: %w", i+2, err)
			}
			vals[j] = v
		}
		rows = append(rows, IrisRow{
			SepalLength: vals[0],
			SepalWidth:  vals[1],
			PetalLength: vals[2],
			PetalWidth:  vals[3],
			Species:     rec[4],
		})
	}
	return rows, nil
}

// Species returns the species names in first-seen order.
func Species(rows []IrisRow) []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range rows {
		if !seen[r.Species] {
			seen[r.Species] = true
			names = append(names, r.Species)
		}
	}
	return names
}

// BySpecies groups rows by species, preserving row order within groups.
func BySpecies(rows []IrisRow) map[string][]IrisRow {
	m := make(map[string][]IrisRow)
	for _, r := range rows {
		m[r.Species] = append(m[r.Species], r)
	}
	return m
}
