// Command noisemap renders a fractal noise heightmap to PNG or CSV.
//
// Usage:
//
//	noisemap -size 256x256 -seed 42 -octaves 5 -format png -out map.png
//	noisemap -config noise.yaml -format csv -out field.csv
//
// Flags override values from the optional -config YAML file, which in
// turn overrides the library defaults.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/simplexfield/config"
	"github.com/katalvlaran/simplexfield/field"
	"github.com/katalvlaran/simplexfield/fractal"
)

func main() {
	cfgPath := flag.String("config", "", "YAML parameter file (optional)")
	size := flag.String("size", "256x256", "grid size as WxH")
	seed := flag.Int64("seed", 0, "random seed (0 = keep config/default)")
	octaves := flag.Int("octaves", 0, "octave count (0 = keep config/default)")
	persistence := flag.Float64("persistence", 0, "per-octave amplitude decay (0 = keep config/default)")
	step := flag.Float64("step", 0.01, "world distance between adjacent cells")
	format := flag.String("format", "png", "output format: png or csv")
	out := flag.String("out", "", "output file (default: stdout for csv, map.png for png)")
	flag.Parse()

	if err := run(*cfgPath, *size, *seed, *octaves, *persistence, *step, *format, *out); err != nil {
		fmt.Fprintln(os.Stderr, "noisemap:", err)
		os.Exit(1)
	}
}

func run(cfgPath, size string, seed int64, octaves int, persistence, step float64, format, out string) error {
	params := config.Defaults()
	if cfgPath != "" {
		var err error
		if params, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	if seed != 0 {
		params.Seed = seed
	}
	if octaves != 0 {
		params.Octaves = octaves
	}
	if persistence != 0 {
		params.Persistence = persistence
	}

	w, h, err := parseSize(size)
	if err != nil {
		return err
	}

	n, err := fractal.New(params.Options()...)
	if err != nil {
		return err
	}

	opts := field.DefaultGridOptions()
	opts.Width, opts.Height, opts.Step = w, h, step
	grid, err := field.Sample2D(n, opts)
	if err != nil {
		return err
	}

	switch format {
	case "png":
		if out == "" {
			out = "map.png"
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		return grid.WritePNG(f)
	case "csv":
		if out == "" {
			return grid.WriteCSV(os.Stdout)
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		return grid.WriteCSV(f)
	default:
		return fmt.Errorf("unknown format %q (want png or csv)", format)
	}
}

// parseSize splits a WxH string like "256x256" into dimensions.
func parseSize(s string) (w, h int, err error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (want WxH)", s)
	}
	if w, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	if h, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}

	return w, h, nil
}
