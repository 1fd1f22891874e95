package colormap

import (
	"fmt"
	"image"
)

// VisualizeDimension renders one dimension as a gradient bar sweeping
// its control-value domain, low to high. Horizontal bars sweep left to
// right; vertical bars sweep bottom to top. It fails if the dimension
// has no control points.
func VisualizeDimension(d *Dimension, width, height int, vertical bool) (image.Image, error) {
	lo, hi, ok := d.Domain()
	if !ok {
		return nil, ErrNoControlPoints
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if vertical {
		step := stepSize(lo, hi, height)
		for y := 0; y < height; y++ {
			c, err := d.Resolve(hi - float64(y)*step)
			if err != nil {
				return nil, err
			}
			for x := 0; x < width; x++ {
				img.Set(x, y, c)
			}
		}
		return img, nil
	}

	step := stepSize(lo, hi, width)
	for x := 0; x < width; x++ {
		c, err := d.Resolve(lo + float64(x)*step)
		if err != nil {
			return nil, err
		}
		for y := 0; y < height; y++ {
			img.Set(x, y, c)
		}
	}
	return img, nil
}

// Visualize2D renders a two-dimension map as a grid: x sweeps the
// first dimension's domain left to right, y sweeps the second
// dimension's domain bottom to top.
func Visualize2D(m *Map, width, height int) (image.Image, error) {
	if m.NumDimensions() != 2 {
		return nil, fmt.Errorf("colormap: 2D visualization needs 2 dimensions, have %d", m.NumDimensions())
	}
	xlo, xhi, ok := m.Dimension(0).Domain()
	if !ok {
		return nil, &DimensionError{Index: 0, Err: ErrNoControlPoints}
	}
	ylo, yhi, ok := m.Dimension(1).Domain()
	if !ok {
		return nil, &DimensionError{Index: 1, Err: ErrNoControlPoints}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	xstep := stepSize(xlo, xhi, width)
	ystep := stepSize(ylo, yhi, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c, err := m.Resolve(xlo+float64(x)*xstep, yhi-float64(y)*ystep)
			if err != nil {
				return nil, err
			}
			img.Set(x, y, c)
		}
	}
	return img, nil
}

// stepSize spreads a domain across n pixels so the first pixel lands
// on one edge and the last on the other. Degenerate domains (single
// control value) and single-pixel spans step by zero.
func stepSize(lo, hi float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return (hi - lo) / float64(n-1)
}
