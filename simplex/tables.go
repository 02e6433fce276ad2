package simplex

// grad3 holds the 12 gradient vectors shared by 2D and 3D evaluation:
// the midpoints of the edges of a cube, components in {-1, 0, 1}.
// 2D evaluation reads only the first two components. Process-wide
// constant, never mutated.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// dot2 is the gradient dot product restricted to the xy plane.
func dot2(g [3]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

// dot3 is the full 3-component gradient dot product.
func dot3(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}
