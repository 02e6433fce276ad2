// Package fractal combines octaves of raw simplex noise into a single
// value scaled to a configurable output range.
//
// What:
//
//   - Combiner wraps a raw noise source (by default a freshly seeded
//     simplex.Generator) with amplitude, frequency, octave count,
//     persistence and an output range [Min, Max].
//   - Raw2D / Raw3D expose the underlying single-octave noise.
//   - Scaled2D / Scaled3D sum octaves at doubling frequency and decaying
//     amplitude, normalize by the amplitude sum, and remap linearly into
//     [Min, Max].
//
// Why:
//
//   - A single octave is smooth but featureless; summed octaves add
//     fractal detail (mountain ridges over rolling hills over plains).
//   - Consumers usually want domain units (heights, temperatures, tile
//     indices) rather than the algorithm's native [-1, 1].
//
// Octave loop:
//
//	sum, maxAmp = 0, 0
//	amp, freq   = Amplitude, Frequency
//	repeat Octaves times:
//	    sum    += raw(p × freq) × amp
//	    maxAmp += amp
//	    amp    ×= Persistence
//	    freq   ×= 2
//	sum /= maxAmp                         // back to [-1, 1]
//	Min + (sum+1)/2 × (Max-Min)           // skipped when range is [-1, 1]
//
// With the defaults (one octave, amplitude 1, frequency 1, range
// [-1, 1]) Scaled2D is bit-for-bit identical to Raw2D.
//
// Complexity:
//
//   - Scaled2D/Scaled3D: O(Octaves) raw evaluations, no allocation.
//
// Errors (construction only; all wrap ErrInvalidConfiguration):
//
//   - ErrBadAmplitude   — amplitude not positive or not finite.
//   - ErrBadFrequency   — frequency not finite.
//   - ErrBadOctaves     — octave count < 1.
//   - ErrBadPersistence — persistence not finite.
//   - ErrBadRange       — min not strictly below max, or either not finite.
//   - simplex.ErrNilSource / simplex.ErrBadSample — propagated from the
//     default generator's construction.
//
// A Combiner is immutable after New and safe for concurrent use.
package fractal
