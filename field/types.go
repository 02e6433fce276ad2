// Package field defines core types, options, and sentinel errors
// for the field subpackage of github.com/katalvlaran/simplexfield.
package field

import "errors"

// Sentinel errors for grid sampling.
var (
	// ErrNilSampler indicates Sample2D was called with a nil sampler.
	ErrNilSampler = errors.New("field: sampler must not be nil")
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("field: width and height must be ≥ 1")
	// ErrBadStep indicates a zero, negative, or non-finite step.
	ErrBadStep = errors.New("field: step must be positive and finite")
)

// Sampler2D produces one value per 2D point. *fractal.Combiner
// satisfies it via Scaled2D; any pure function of (x, y) works.
type Sampler2D interface {
	Scaled2D(x, y float64) float64
}

// GridOptions contains tunable parameters for grid sampling.
type GridOptions struct {
	// Width and Height are the lattice dimensions in cells.
	Width, Height int
	// OriginX and OriginY are the world coordinates of cell (0, 0).
	OriginX, OriginY float64
	// Step is the world distance between adjacent cells.
	Step float64
}

// DefaultGridOptions returns GridOptions with default settings:
// a 64×64 lattice anchored at the origin with step 0.1.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Width:  64,
		Height: 64,
		Step:   0.1,
	}
}

// Stats summarizes the value distribution of a Grid.
type Stats struct {
	Min, Max float64
	Mean     float64
	StdDev   float64
}
