// Package simplex defines core types, options, and sentinel errors
// for the simplex subpackage of github.com/katalvlaran/simplexfield.
package simplex

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for generator construction.
var (
	// ErrInvalidConfiguration is the root of every construction failure;
	// errors.Is(err, ErrInvalidConfiguration) matches all of them.
	ErrInvalidConfiguration = errors.New("simplex: invalid configuration")

	// ErrNilSource indicates WithSource was called with a nil Source.
	ErrNilSource = fmt.Errorf("%w: random source must not be nil", ErrInvalidConfiguration)

	// ErrBadSample indicates the random source produced a sample that is
	// NaN or outside [0,1), which would corrupt the permutation shuffle.
	ErrBadSample = fmt.Errorf("%w: random sample outside [0,1)", ErrInvalidConfiguration)
)

// Source supplies uniform random samples in [0,1). It is consumed only
// during construction, one sample per shuffle step, and is not retained
// by the Generator afterwards.
//
// *math/rand.Rand satisfies Source.
type Source interface {
	Float64() float64
}

// Options configures Generator construction.
//
// Source – uniform [0,1) random source driving the permutation shuffle.
type Options struct {
	Source Source
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithSource sets the random source used to shuffle the permutation
// table. Passing nil causes New to fail with ErrNilSource.
func WithSource(src Source) Option {
	return func(o *Options) {
		o.Source = src
	}
}

// DefaultOptions returns Options initialized with a freshly seeded
// platform random source. Constructions using it are randomized; inject
// a deterministic Source for reproducible tables.
func DefaultOptions() Options {
	return Options{
		Source: rand.New(rand.NewSource(rand.Int63())),
	}
}
