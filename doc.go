// Package simplexfield computes deterministic, continuous pseudo-random
// noise fields (Simplex noise) in 2D and 3D, with a fractal multi-octave
// layer scaled into an arbitrary output range.
//
// 🚀 What is simplexfield?
//
//	A small, allocation-free noise library for terrain generators,
//	procedural textures and game worlds:
//		• Raw noise: single-octave 2D & 3D simplex evaluation
//		• Fractal noise: octave summation with persistence & range remap
//		• Fields: sample rectangular grids, normalize, export CSV/PNG
//		• Config: load noise parameters from YAML files
//
// ✨ Why choose simplexfield?
//
//   - Deterministic – identical seeds yield bit-identical fields
//   - Fast – per-call evaluation touches two small immutable tables
//   - Concurrent – generators are read-only after construction; share freely
//   - Pluggable – bring your own uniform random source
//
// Everything is organized under four subpackages:
//
//	simplex/ — permutation tables, gradient tables, raw 2D/3D evaluation
//	fractal/ — octave combination and output-range scaling
//	field/   — grid sampling, statistics, normalization, CSV/PNG export
//	config/  — YAML parameter files mapped onto fractal options
//
// Quick taste:
//
//	n, err := fractal.New(
//	    fractal.WithOctaves(4),
//	    fractal.WithPersistence(0.5),
//	    fractal.WithRange(0, 255),
//	)
//	if err != nil { ... }
//	h := n.Scaled2D(x*0.01, y*0.01) // height in [0, 255]
//
// Dive into each package's doc.go for algorithms, complexity and errors.
//
//	go get github.com/katalvlaran/simplexfield
package simplexfield
