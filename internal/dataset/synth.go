package dataset

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Seeds match the original demo scripts so regenerated figures diff cleanly.
const (
	SeedBasic      = 42
	SeedWidths     = 7
	SeedLinePlot   = 99
	SeedMultiPanel = 0
)

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 1 {
		return []float64{start}
	}
	xs := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	return xs
}

// LinearScatter generates n points with x uniform on [0,10) and
// y = 2.5x + N(0,3), the basic-figure demo data.
func LinearScatter(n int, seed uint64) (xs, ys []float64) {
	src := rand.NewSource(seed)
	uni := distuv.Uniform{Min: 0, Max: 10, Src: src}
	noise := distuv.Normal{Mu: 0, Sigma: 3, Src: src}
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = uni.Rand()
		ys[i] = 2.5*xs[i] + noise.Rand()
	}
	return xs, ys
}

// NoisySine generates x on [0,6], the clean sine signal, and a noisy copy
// with N(0,0.15) jitter, the width-comparison demo data.
func NoisySine(n int, seed uint64) (xs, clean, noisy []float64) {
	noise := distuv.Normal{Mu: 0, Sigma: 0.15, Src: rand.NewSource(seed)}
	xs = Linspace(0, 6, n)
	clean = make([]float64, n)
	noisy = make([]float64, n)
	for i, x := range xs {
		clean[i] = math.Sin(x)
		noisy[i] = clean[i] + noise.Rand()
	}
	return xs, clean, noisy
}

// Condition is one experimental condition of the time-series demo.
type Condition struct {
	Name string
	Mean func(t float64) float64
}

// DecayConditions returns the three simulated conditions: exponential decay
// at two rates and a damped oscillation.
func DecayConditions() []Condition {
	return []Condition{
		{Name: "Control", Mean: func(t float64) float64 { return math.Exp(-0.15 * t) }},
		{Name: "Treatment A", Mean: func(t float64) float64 { return math.Exp(-0.30 * t) }},
		{Name: "Treatment B", Mean: func(t float64) float64 { return math.Exp(-0.05*t) * math.Cos(0.8*t) }},
	}
}

// Replicates simulates n noisy replicates of c over ts with N(0,sigma)
// noise drawn from src. The result is indexed [replicate][time].
func Replicates(c Condition, ts []float64, n int, sigma float64, src rand.Source) [][]float64 {
	noise := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
	reps := make([][]float64, n)
	for i := range reps {
		reps[i] = make([]float64, len(ts))
		for j, t := range ts {
			reps[i][j] = c.Mean(t) + noise.Rand()
		}
	}
	return reps
}

// NormalSample draws n values from N(mu, sigma).
func NormalSample(n int, mu, sigma float64, seed uint64) []float64 {
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.NewSource(seed)}
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = d.Rand()
	}
	return vs
}

// IntSample draws n integers uniformly from [lo, hi).
func IntSample(n, lo, hi int, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = float64(lo + rng.Intn(hi-lo))
	}
	return vs
}
