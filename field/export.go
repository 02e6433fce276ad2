package field

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gocarina/gocsv"
)

// cellRecord is the CSV row shape: one sampled cell per line.
type cellRecord struct {
	X     int     `csv:"x"`
	Y     int     `csv:"y"`
	Value float64 `csv:"value"`
}

// WriteCSV writes the grid as CSV with an "x,y,value" header, cells in
// row-major order. Complexity: O(W×H) records.
func (g *Grid) WriteCSV(w io.Writer) error {
	records := make([]*cellRecord, 0, len(g.values))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			records = append(records, &cellRecord{X: x, Y: y, Value: g.values[y*g.Width+x]})
		}
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("field: writing csv: %w", err)
	}

	return nil
}

// WritePNG writes the grid as an 8-bit grayscale heightmap. Values are
// normalized into [0, 1] first, so the darkest pixel is the grid
// minimum and the brightest the maximum.
func (g *Grid) WritePNG(w io.Writer) error {
	norm := g.Normalized()
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(norm.values[y*g.Width+x]*255 + 0.5)})
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("field: encoding png: %w", err)
	}

	return nil
}
