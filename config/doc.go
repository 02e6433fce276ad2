// Package config loads noise parameters from YAML files and maps them
// onto fractal options.
//
// What:
//
//   - Params mirrors the fractal configuration (seed, amplitude,
//     frequency, octaves, persistence, min, max) with yaml tags.
//   - Defaults returns the library defaults with seed 1.
//   - Parse / Load overlay a YAML document onto the defaults, so partial
//     files only override what they mention.
//   - Params.Options derives the []fractal.Option for fractal.New,
//     including a deterministic math/rand source seeded with Seed.
//
// Why:
//
//   - Terrain tools tune noise by editing a file, not by recompiling.
//   - A seed in the file makes whole worlds reproducible.
//
// Example file:
//
//	seed: 42
//	octaves: 5
//	persistence: 0.55
//	frequency: 0.01
//	min: 0
//	max: 255
//
// Numeric validation stays in fractal.New — the single source of truth
// for configuration errors — so a bad file fails there with the usual
// fractal.ErrInvalidConfiguration taxonomy.
package config
