package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Grid is an immutable row-major Width×Height lattice of sampled
// values. Build one with Sample2D; share freely across goroutines.
type Grid struct {
	// Width and Height are the lattice dimensions in cells.
	Width, Height int
	// OriginX, OriginY, Step record the sampling lattice geometry.
	OriginX, OriginY float64
	Step             float64

	values []float64 // row-major, len = Width*Height
}

// Sample2D evaluates s over the lattice described by opts and returns
// the resulting Grid. Cell (x, y) holds
// s.Scaled2D(OriginX + x*Step, OriginY + y*Step).
//
// Returns ErrNilSampler, ErrBadDimensions, or ErrBadStep on invalid
// input. Complexity: O(W×H) evaluations, O(W×H) memory.
func Sample2D(s Sampler2D, opts GridOptions) (*Grid, error) {
	if s == nil {
		return nil, ErrNilSampler
	}
	if opts.Width < 1 || opts.Height < 1 {
		return nil, ErrBadDimensions
	}
	if opts.Step <= 0 || math.IsNaN(opts.Step) || math.IsInf(opts.Step, 0) {
		return nil, ErrBadStep
	}

	values := make([]float64, opts.Width*opts.Height)
	for y := 0; y < opts.Height; y++ {
		wy := opts.OriginY + float64(y)*opts.Step
		row := y * opts.Width
		for x := 0; x < opts.Width; x++ {
			values[row+x] = s.Scaled2D(opts.OriginX+float64(x)*opts.Step, wy)
		}
	}

	g := &Grid{
		Width:   opts.Width,
		Height:  opts.Height,
		OriginX: opts.OriginX,
		OriginY: opts.OriginY,
		Step:    opts.Step,
		values:  values,
	}

	return g, nil
}

// At returns the sampled value at cell (x, y). Panics on out-of-bounds
// indices, mirroring slice semantics.
func (g *Grid) At(x, y int) float64 {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		panic("field: cell index out of range")
	}

	return g.values[y*g.Width+x]
}

// Values returns a copy of the row-major sample buffer, preserving the
// Grid's immutability.
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.values))
	copy(out, g.values)

	return out
}

// Stats computes min, max, mean and standard deviation of the sampled
// values. Complexity: O(W×H).
func (g *Grid) Stats() Stats {
	return Stats{
		Min:    floats.Min(g.values),
		Max:    floats.Max(g.values),
		Mean:   stat.Mean(g.values, nil),
		StdDev: stat.StdDev(g.values, nil),
	}
}

// Normalized returns a new Grid with the values affinely rescaled into
// [0, 1]. A flat grid (max == min) maps every cell to 0.
// Complexity: O(W×H) time and memory.
func (g *Grid) Normalized() *Grid {
	lo, hi := floats.Min(g.values), floats.Max(g.values)
	out := &Grid{
		Width:   g.Width,
		Height:  g.Height,
		OriginX: g.OriginX,
		OriginY: g.OriginY,
		Step:    g.Step,
		values:  make([]float64, len(g.values)),
	}
	copy(out.values, g.values)

	if span := hi - lo; span > 0 {
		floats.AddConst(-lo, out.values)
		floats.Scale(1/span, out.values)
	} else {
		floats.Scale(0, out.values)
	}

	return out
}
