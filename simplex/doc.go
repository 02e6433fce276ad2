// Package simplex evaluates single-octave Simplex noise in 2D and 3D
// over a seeded permutation table.
//
// What:
//
//   - Generator owns two immutable 512-entry lookup tables built once at
//     construction from a caller-supplied uniform random Source.
//   - Raw2D / Raw3D return a deterministic noise value for continuous
//     coordinates, practically bounded to [-1, 1].
//   - A process-wide constant table of 12 gradient vectors serves both
//     dimensions.
//
// Why:
//
//   - Terrain heightmaps, procedural textures, world generation.
//   - Called per point, often millions of times: evaluation performs no
//     allocation and touches only two small tables.
//
// Algorithm (skew-transform simplex method):
//
//  1. Skew the input point onto the simplex lattice to find its cell.
//  2. Unskew the cell origin and rank the in-cell offsets to pick the
//     traversal corners (2 triangles in 2D, 6 tetrahedra in 3D).
//  3. Hash each corner's lattice coordinates through the permutation
//     table into a gradient vector; each corner derives its own index.
//  4. Sum the quartic-falloff gradient contributions and scale by a
//     fixed normalization constant.
//
// Complexity:
//
//   - New:          O(1) — 256-step Fisher–Yates shuffle, 512-entry copy.
//   - Raw2D/Raw3D:  O(1) — 3 (resp. 4) corner contributions, no allocation.
//
// Concurrency:
//
//   - A Generator is immutable after New and safe for unbounded
//     concurrent use without locking. Construction is single-owner.
//
// Errors:
//
//   - ErrNilSource — WithSource(nil) was supplied.
//   - ErrBadSample — the Source produced a NaN or out-of-[0,1) sample.
//
// Both wrap ErrInvalidConfiguration. Once New succeeds, evaluation can
// not fail: non-finite coordinates yield non-finite output (garbage in,
// garbage out), never an error.
package simplex
