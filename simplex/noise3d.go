package simplex

import "math"

// Skew/unskew factors and output normalization for 3D evaluation.
const (
	f3     = 1.0 / 3.0
	g3     = 1.0 / 6.0
	norm3D = 94.68493150681972
)

// Raw3D returns single-octave simplex noise at (x, y, z).
//
// Same contract as Raw2D: pure, deterministic, practically bounded to
// [-1, 1], garbage in garbage out for non-finite coordinates.
func (g *Generator) Raw3D(x, y, z float64) float64 {
	// Skew the input space to find the containing simplex cell.
	s := (x + y + z) * f3
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	k := math.Floor(z + s)

	t := (i + j + k) * g3
	x0 := x - (i - t)
	y0 := y - (j - t)
	z0 := z - (k - t)

	// Rank x0, y0, z0 to pick which of the six tetrahedra of the unit
	// cube contains the point; (i1,j1,k1) and (i2,j2,k2) are the second
	// and third corner offsets along that traversal.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0: // x ≥ y ≥ z
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0: // x ≥ z > y
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default: // z > x ≥ y
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0: // z > y > x
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0: // y ≥ z > x
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default: // y > x ≥ z
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2*g3
	y2 := y0 - float64(j2) + 2*g3
	z2 := z0 - float64(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := int(i) & (tableSize - 1)
	jj := int(j) & (tableSize - 1)
	kk := int(k) & (tableSize - 1)

	// Four corners, each hashing its own gradient index through the
	// nested perm[... perm[... perm[...]]] lookups.
	var n0, n1, n2, n3 float64
	if t0 := 0.5 - x0*x0 - y0*y0 - z0*z0; t0 >= 0 {
		gi0 := g.permMod12[ii+int(g.perm[jj+int(g.perm[kk])])]
		t0 *= t0
		n0 = t0 * t0 * dot3(grad3[gi0], x0, y0, z0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1 - z1*z1; t1 >= 0 {
		gi1 := g.permMod12[ii+i1+int(g.perm[jj+j1+int(g.perm[kk+k1])])]
		t1 *= t1
		n1 = t1 * t1 * dot3(grad3[gi1], x1, y1, z1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2 - z2*z2; t2 >= 0 {
		gi2 := g.permMod12[ii+i2+int(g.perm[jj+j2+int(g.perm[kk+k2])])]
		t2 *= t2
		n2 = t2 * t2 * dot3(grad3[gi2], x2, y2, z2)
	}
	if t3 := 0.5 - x3*x3 - y3*y3 - z3*z3; t3 >= 0 {
		gi3 := g.permMod12[ii+1+int(g.perm[jj+1+int(g.perm[kk+1])])]
		t3 *= t3
		n3 = t3 * t3 * dot3(grad3[gi3], x3, y3, z3)
	}

	return norm3D * (n0 + n1 + n2 + n3)
}
