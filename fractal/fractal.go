package fractal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simplexfield/simplex"
)

// Combiner sums octaves of raw noise and scales the result into the
// configured output range. Immutable after New; safe for unbounded
// concurrent use.
type Combiner struct {
	noise Noise
	opts  Options
}

// New builds a Combiner from the defaults overridden by opts, validating
// the whole configuration before any table is constructed.
//
// Errors: ErrBadAmplitude, ErrBadFrequency, ErrBadOctaves,
// ErrBadPersistence, ErrBadRange (all wrapping ErrInvalidConfiguration),
// plus any simplex construction error when the default generator is used.
func New(opts ...Option) (*Combiner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(&o); err != nil {
		return nil, err
	}

	noise := o.Noise
	if noise == nil {
		var err error
		if o.Source != nil {
			noise, err = simplex.New(simplex.WithSource(o.Source))
		} else {
			noise, err = simplex.New()
		}
		if err != nil {
			return nil, err
		}
	}

	return &Combiner{noise: noise, opts: o}, nil
}

// validate checks every numeric field; the first offending field wins.
func validate(o *Options) error {
	if o.Amplitude <= 0 || !isFinite(o.Amplitude) {
		return fmt.Errorf("%w: got %g", ErrBadAmplitude, o.Amplitude)
	}
	if !isFinite(o.Frequency) {
		return fmt.Errorf("%w: got %g", ErrBadFrequency, o.Frequency)
	}
	if o.Octaves < 1 {
		return fmt.Errorf("%w: got %d", ErrBadOctaves, o.Octaves)
	}
	if !isFinite(o.Persistence) {
		return fmt.Errorf("%w: got %g", ErrBadPersistence, o.Persistence)
	}
	if !isFinite(o.Min) || !isFinite(o.Max) || o.Min >= o.Max {
		return fmt.Errorf("%w: min=%g, max=%g", ErrBadRange, o.Min, o.Max)
	}

	return nil
}

// Raw2D exposes the wrapped single-octave noise at (x, y).
func (c *Combiner) Raw2D(x, y float64) float64 {
	return c.noise.Raw2D(x, y)
}

// Raw3D exposes the wrapped single-octave noise at (x, y, z).
func (c *Combiner) Raw3D(x, y, z float64) float64 {
	return c.noise.Raw3D(x, y, z)
}

// Scaled2D returns fractal noise at (x, y) in [Min, Max].
func (c *Combiner) Scaled2D(x, y float64) float64 {
	var sum, maxAmp float64
	amp, freq := c.opts.Amplitude, c.opts.Frequency
	for o := 0; o < c.opts.Octaves; o++ {
		sum += c.noise.Raw2D(x*freq, y*freq) * amp
		maxAmp += amp
		amp *= c.opts.Persistence
		freq *= 2
	}

	return c.remap(sum / maxAmp)
}

// Scaled3D returns fractal noise at (x, y, z) in [Min, Max].
func (c *Combiner) Scaled3D(x, y, z float64) float64 {
	var sum, maxAmp float64
	amp, freq := c.opts.Amplitude, c.opts.Frequency
	for o := 0; o < c.opts.Octaves; o++ {
		sum += c.noise.Raw3D(x*freq, y*freq, z*freq) * amp
		maxAmp += amp
		amp *= c.opts.Persistence
		freq *= 2
	}

	return c.remap(sum / maxAmp)
}

// remap moves a normalized [-1, 1] value into [Min, Max]. The native
// range passes through untouched so the single-octave identity with raw
// noise holds bit-for-bit.
func (c *Combiner) remap(v float64) float64 {
	if c.opts.Min == -1 && c.opts.Max == 1 {
		return v
	}

	return c.opts.Min + (v+1)/2*(c.opts.Max-c.opts.Min)
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
