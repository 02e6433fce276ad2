package simplex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplexfield/simplex"
)

// TestNew_Default verifies that the zero-configuration constructor
// succeeds with the platform random source.
func TestNew_Default(t *testing.T) {
	g, err := simplex.New()
	require.NoError(t, err, "default construction must succeed")
	require.NotNil(t, g)
}

// TestNew_NilSource ensures WithSource(nil) fails with ErrNilSource.
func TestNew_NilSource(t *testing.T) {
	_, err := simplex.New(simplex.WithSource(nil))
	assert.ErrorIs(t, err, simplex.ErrNilSource, "nil source must error ErrNilSource")
	assert.ErrorIs(t, err, simplex.ErrInvalidConfiguration, "ErrNilSource must wrap the root sentinel")
}

// TestNew_BadSample ensures out-of-range and NaN samples fail fast at
// construction instead of silently corrupting the permutation.
func TestNew_BadSample(t *testing.T) {
	for name, src := range map[string]simplex.Source{
		"above one": constSource{v: 1.5},
		"exact one": constSource{v: 1.0},
		"negative":  constSource{v: -0.25},
		"nan":       constSource{v: math.NaN()},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := simplex.New(simplex.WithSource(src))
			assert.ErrorIs(t, err, simplex.ErrBadSample, "invalid sample must error ErrBadSample")
			assert.ErrorIs(t, err, simplex.ErrInvalidConfiguration, "ErrBadSample must wrap the root sentinel")
		})
	}
}

// TestNew_Deterministic verifies that two constructions from identical
// deterministic sources yield identical tables.
func TestNew_Deterministic(t *testing.T) {
	a, err := simplex.New(simplex.WithSource(&lcgSource{state: 1}))
	require.NoError(t, err)
	b, err := simplex.New(simplex.WithSource(&lcgSource{state: 1}))
	require.NoError(t, err)

	assert.Equal(t, a.PermTable(), b.PermTable(), "equal sources must yield equal permutation tables")
	assert.Equal(t, a.PermMod12Table(), b.PermMod12Table(), "equal sources must yield equal mod-12 tables")
}

// TestNew_TableInvariants checks the structural invariants of the
// tables: a true permutation of 0..255, period-256 duplication, and the
// entrywise mod-12 derivation.
func TestNew_TableInvariants(t *testing.T) {
	g, err := simplex.New(simplex.WithSource(&lcgSource{state: 42}))
	require.NoError(t, err)

	perm := g.PermTable()
	mod12 := g.PermMod12Table()

	var seen [256]bool
	for i := 0; i < 256; i++ {
		seen[perm[i]] = true
	}
	for v, ok := range seen {
		assert.True(t, ok, "value %d missing: first 256 entries must be a permutation of 0..255", v)
	}

	for i := 0; i < 256; i++ {
		assert.Equal(t, perm[i], perm[i+256], "permutation table must be periodic with period 256")
	}
	for i := range perm {
		assert.Equal(t, perm[i]%12, mod12[i], "mod-12 table must be derived entrywise")
	}
}
