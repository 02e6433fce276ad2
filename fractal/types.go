// Package fractal defines core types, options, and sentinel errors
// for the fractal subpackage of github.com/katalvlaran/simplexfield.
package fractal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/simplexfield/simplex"
)

// Sentinel errors for Combiner construction. Every sentinel wraps
// ErrInvalidConfiguration, so callers may match either the root or the
// specific field.
var (
	// ErrInvalidConfiguration is the root of every construction failure.
	ErrInvalidConfiguration = errors.New("fractal: invalid configuration")

	// ErrBadAmplitude indicates a non-positive or non-finite base amplitude.
	// Amplitude must be positive: it is the first octave's weight and the
	// normalization divisor would otherwise start at zero.
	ErrBadAmplitude = fmt.Errorf("%w: amplitude must be positive and finite", ErrInvalidConfiguration)

	// ErrBadFrequency indicates a non-finite base frequency.
	ErrBadFrequency = fmt.Errorf("%w: frequency must be finite", ErrInvalidConfiguration)

	// ErrBadOctaves indicates an octave count below one.
	ErrBadOctaves = fmt.Errorf("%w: octaves must be ≥ 1", ErrInvalidConfiguration)

	// ErrBadPersistence indicates a non-finite persistence factor.
	ErrBadPersistence = fmt.Errorf("%w: persistence must be finite", ErrInvalidConfiguration)

	// ErrBadRange indicates Min is not strictly below Max, or either
	// bound is not finite. The returned error carries both values.
	ErrBadRange = fmt.Errorf("%w: min must be strictly less than max", ErrInvalidConfiguration)
)

// Noise is the raw single-octave noise consumed by the Combiner.
// *simplex.Generator satisfies Noise; any deterministic pure field
// works.
type Noise interface {
	Raw2D(x, y float64) float64
	Raw3D(x, y, z float64) float64
}

// Options configures Combiner construction.
//
// Amplitude   – weight of the first octave (must be positive and finite).
// Frequency   – coordinate scale of the first octave (must be finite).
// Octaves     – number of noise layers to sum (must be ≥ 1).
// Persistence – per-octave amplitude decay factor (must be finite; <1 typical).
// Min, Max    – output range of Scaled2D/Scaled3D (Min < Max strictly).
// Source      – uniform [0,1) random source for the default generator,
// used only at construction and ignored when Noise is set.
// Noise       – optional raw noise source replacing the default simplex.Generator.
type Options struct {
	Amplitude   float64
	Frequency   float64
	Octaves     int
	Persistence float64
	Min, Max    float64
	Source      simplex.Source
	Noise       Noise
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithAmplitude sets the first octave's weight.
func WithAmplitude(a float64) Option {
	return func(o *Options) {
		o.Amplitude = a
	}
}

// WithFrequency sets the first octave's coordinate scale.
func WithFrequency(f float64) Option {
	return func(o *Options) {
		o.Frequency = f
	}
}

// WithOctaves sets how many noise layers are summed. Each successive
// octave doubles the frequency and multiplies the amplitude by the
// persistence factor.
func WithOctaves(n int) Option {
	return func(o *Options) {
		o.Octaves = n
	}
}

// WithPersistence sets the per-octave amplitude decay factor.
func WithPersistence(p float64) Option {
	return func(o *Options) {
		o.Persistence = p
	}
}

// WithRange sets the output interval of Scaled2D/Scaled3D. The exact
// range [-1, 1] bypasses remapping entirely.
func WithRange(min, max float64) Option {
	return func(o *Options) {
		o.Min, o.Max = min, max
	}
}

// WithSource sets the random source seeding the default simplex
// generator. Ignored when WithNoise is also supplied.
func WithSource(src simplex.Source) Option {
	return func(o *Options) {
		o.Source = src
	}
}

// WithNoise injects a custom raw noise source instead of constructing a
// simplex.Generator.
func WithNoise(n Noise) Option {
	return func(o *Options) {
		o.Noise = n
	}
}

// DefaultOptions returns Options initialized with the library defaults:
// amplitude 1, frequency 1, a single octave, persistence 0.5, output
// range [-1, 1], and a freshly seeded platform random source.
func DefaultOptions() Options {
	return Options{
		Amplitude:   1,
		Frequency:   1,
		Octaves:     1,
		Persistence: 0.5,
		Min:         -1,
		Max:         1,
		Source:      nil, // resolved by simplex.DefaultOptions at build time
	}
}
