package fractal_test

// lcgSource mirrors the deterministic source used across the module's
// tests: a 32-bit linear congruential generator. The golden values in
// this package were frozen from the tables it produces.
type lcgSource struct{ state uint32 }

func (s *lcgSource) Float64() float64 {
	s.state = s.state*1664525 + 1013904223

	return float64(s.state>>8) / (1 << 24)
}

// flatNoise is a stub raw source returning a constant in both
// dimensions; it isolates the octave arithmetic from simplex
// evaluation.
type flatNoise struct{ v float64 }

func (f flatNoise) Raw2D(x, y float64) float64    { return f.v }
func (f flatNoise) Raw3D(x, y, z float64) float64 { return f.v }
