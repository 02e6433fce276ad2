package simplex

// PermTable exposes the doubled permutation table to the external test
// package for invariant checks.
func (g *Generator) PermTable() [2 * tableSize]uint8 {
	return g.perm
}

// PermMod12Table exposes the derived mod-12 table to the external test
// package for invariant checks.
func (g *Generator) PermMod12Table() [2 * tableSize]uint8 {
	return g.permMod12
}
