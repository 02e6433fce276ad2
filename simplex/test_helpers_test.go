package simplex_test

// lcgSource is a deterministic uniform [0,1) source for reproducible
// tables: a 32-bit linear congruential generator (Numerical Recipes
// constants). The same constants back the frozen golden values, so the
// seed/value pairs in the tests must not change.
type lcgSource struct{ state uint32 }

func (s *lcgSource) Float64() float64 {
	s.state = s.state*1664525 + 1013904223

	return float64(s.state>>8) / (1 << 24)
}

// constSource always returns the same sample; used to inject invalid
// values into the shuffle.
type constSource struct{ v float64 }

func (s constSource) Float64() float64 { return s.v }
