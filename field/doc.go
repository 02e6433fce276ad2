// Package field samples a 2D noise function over a rectangular grid and
// post-processes the result: statistics, [0,1] normalization, CSV and
// PNG heightmap export.
//
// What:
//
//   - Sample2D evaluates any Sampler2D (e.g. *fractal.Combiner) over a
//     Width×Height lattice starting at (OriginX, OriginY) with a fixed
//     Step, producing an immutable row-major Grid.
//   - Grid.Stats computes min/max/mean/standard deviation.
//   - Grid.Normalized rescales the values affinely into [0, 1].
//   - Grid.WriteCSV emits one (x, y, value) record per cell.
//   - Grid.WritePNG emits an 8-bit grayscale heightmap.
//
// Why:
//
//   - Terrain pipelines consume whole heightmaps, not single points.
//   - A materialized grid feeds erosion passes, tile classification,
//     image previews, or spreadsheet analysis without re-evaluation.
//
// Complexity:
//
//   - Sample2D:   O(W×H) evaluations, O(W×H) memory.
//   - Stats:      O(W×H).
//   - Normalized: O(W×H) time and memory.
//   - WriteCSV:   O(W×H) records; WritePNG: O(W×H) pixels.
//
// Options:
//
//   - GridOptions.Width, Height: lattice dimensions (≥ 1).
//   - GridOptions.OriginX, OriginY: world coordinates of cell (0, 0).
//   - GridOptions.Step: world distance between adjacent cells (> 0, finite).
//
// Errors:
//
//   - ErrNilSampler:   Sample2D received a nil sampler.
//   - ErrBadDimensions: Width or Height below 1.
//   - ErrBadStep:      Step is zero, negative, or not finite.
package field
