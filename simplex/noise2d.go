package simplex

import "math"

// Skew/unskew factors and output normalization for 2D evaluation.
const (
	f2     = 0.3660254037844386  // (sqrt(3) - 1) / 2
	g2     = 0.21132486540518713 // (3 - sqrt(3)) / 6
	norm2D = 70.14805770653952
)

// Raw2D returns single-octave simplex noise at (x, y).
//
// Deterministic pure function of the coordinates and the generator's
// tables; the result is practically bounded to [-1, 1]. Non-finite
// input yields non-finite output, never an error or a panic.
func (g *Generator) Raw2D(x, y float64) float64 {
	// Skew the input space to find the containing simplex cell.
	s := (x + y) * f2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	// Unskew the cell origin and take in-cell offsets.
	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	// Pick the traversal triangle. A tie x0 == y0 lands on the upper
	// triangle (0,1) — deterministic, not an error.
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i) & (tableSize - 1)
	jj := int(j) & (tableSize - 1)

	// Each corner hashes its own gradient index.
	var n0, n1, n2 float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 >= 0 {
		gi0 := g.permMod12[ii+int(g.perm[jj])]
		t0 *= t0
		n0 = t0 * t0 * dot2(grad3[gi0], x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 >= 0 {
		gi1 := g.permMod12[ii+i1+int(g.perm[jj+j1])]
		t1 *= t1
		n1 = t1 * t1 * dot2(grad3[gi1], x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 >= 0 {
		gi2 := g.permMod12[ii+1+int(g.perm[jj+1])]
		t2 *= t2
		n2 = t2 * t2 * dot2(grad3[gi2], x2, y2)
	}

	return norm2D * (n0 + n1 + n2)
}
