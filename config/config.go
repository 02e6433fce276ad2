package config

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simplexfield/fractal"
)

// Params holds all noise configuration parameters.
type Params struct {
	// Seed drives the deterministic random source; equal seeds yield
	// bit-identical noise fields.
	Seed        int64   `yaml:"seed"`
	Amplitude   float64 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
}

// Defaults returns the library defaults: seed 1, amplitude 1,
// frequency 1, one octave, persistence 0.5, output range [-1, 1].
func Defaults() Params {
	return Params{
		Seed:        1,
		Amplitude:   1,
		Frequency:   1,
		Octaves:     1,
		Persistence: 0.5,
		Min:         -1,
		Max:         1,
	}
}

// Parse overlays a YAML document onto Defaults. Fields absent from the
// document keep their default values. Numeric ranges are validated
// later by fractal.New.
func Parse(data []byte) (Params, error) {
	p := Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("config: parsing yaml: %w", err)
	}

	return p, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return Parse(data)
}

// Options derives the fractal options for these parameters, including a
// deterministic random source seeded with Seed.
func (p Params) Options() []fractal.Option {
	return []fractal.Option{
		fractal.WithAmplitude(p.Amplitude),
		fractal.WithFrequency(p.Frequency),
		fractal.WithOctaves(p.Octaves),
		fractal.WithPersistence(p.Persistence),
		fractal.WithRange(p.Min, p.Max),
		fractal.WithSource(rand.New(rand.NewSource(p.Seed))),
	}
}
