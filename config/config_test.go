package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplexfield/config"
	"github.com/katalvlaran/simplexfield/fractal"
)

// TestDefaults documents the default parameter set.
func TestDefaults(t *testing.T) {
	p := config.Defaults()

	assert.Equal(t, int64(1), p.Seed)
	assert.Equal(t, 1.0, p.Amplitude)
	assert.Equal(t, 1.0, p.Frequency)
	assert.Equal(t, 1, p.Octaves)
	assert.Equal(t, 0.5, p.Persistence)
	assert.Equal(t, -1.0, p.Min)
	assert.Equal(t, 1.0, p.Max)
}

// TestParse_Overlay verifies that a partial document only overrides the
// fields it mentions.
func TestParse_Overlay(t *testing.T) {
	p, err := config.Parse([]byte("octaves: 5\nseed: 42\n"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), p.Seed)
	assert.Equal(t, 5, p.Octaves)
	assert.Equal(t, 0.5, p.Persistence, "unmentioned fields keep defaults")
	assert.Equal(t, -1.0, p.Min)
}

// TestParse_BadYAML surfaces the yaml error with a package prefix.
func TestParse_BadYAML(t *testing.T) {
	_, err := config.Parse([]byte("octaves: [not a number"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config:")
}

// TestLoad round-trips a parameter file on disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\nmin: 0\nmax: 255\n"), 0o644))

	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.Seed)
	assert.Equal(t, 0.0, p.Min)
	assert.Equal(t, 255.0, p.Max)
}

// TestLoad_MissingFile propagates the filesystem error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// TestParams_Options builds a combiner from parameters and checks that
// equal seeds reproduce identical fields, and that bad numeric fields
// fail through the fractal taxonomy.
func TestParams_Options(t *testing.T) {
	p := config.Defaults()
	p.Seed = 99
	p.Octaves = 3

	a, err := fractal.New(p.Options()...)
	require.NoError(t, err)
	b, err := fractal.New(p.Options()...)
	require.NoError(t, err)
	assert.Equal(t, a.Scaled2D(1.25, -0.75), b.Scaled2D(1.25, -0.75), "equal seeds must reproduce the field")

	p.Min, p.Max = 4, 4
	_, err = fractal.New(p.Options()...)
	assert.ErrorIs(t, err, fractal.ErrBadRange)
}
