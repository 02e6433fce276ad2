package simplex

// Generator evaluates raw (single-octave) simplex noise over one seeded
// permutation table. It is immutable after New: any number of
// goroutines may call Raw2D/Raw3D concurrently without locking.
// Callers needing different seeds create separate Generators.
type Generator struct {
	perm      [2 * tableSize]uint8
	permMod12 [2 * tableSize]uint8
}

// New builds a Generator, shuffling the permutation table with the
// configured random source (a freshly seeded platform RNG by default).
//
// Errors: ErrNilSource, ErrBadSample — both wrap ErrInvalidConfiguration.
func New(opts ...Option) (*Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Source == nil {
		return nil, ErrNilSource
	}

	g := &Generator{}
	var err error
	if g.perm, g.permMod12, err = buildTables(o.Source); err != nil {
		return nil, err
	}

	return g, nil
}
