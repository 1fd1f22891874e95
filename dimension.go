package colormap

import (
	"log/slog"
	"sort"
)

// ControlPoint pins one scalar data value to a color within a
// dimension. Points are immutable; replacing a mapping creates a new
// point rather than mutating one in place.
type ControlPoint struct {
	Value float64
	Color Color
}

// Dimension converts one scalar data input into a color by
// interpolating between its control points. Dimensions are created by
// Map.AddDimension, which fixes their position in the map; control
// points may be added or replaced at any time, interleaved with
// queries.
//
// A Dimension is not safe for concurrent use: guard the owning Map
// externally if mutation and queries can interleave across goroutines.
type Dimension struct {
	linearity float64
	// points is kept sorted by Value, with values unique. Adding a
	// mapping at an existing value replaces the prior point.
	points []ControlPoint
}

// Linearity returns the dimension's blend weight. It scales this
// dimension's contribution when the map blends across dimensions; it
// does not alter the interpolation within the dimension.
func (d *Dimension) Linearity() float64 { return d.linearity }

// Len returns the number of control points.
func (d *Dimension) Len() int { return len(d.points) }

// Domain returns the smallest and largest control values. ok is false
// when the dimension has no control points.
func (d *Dimension) Domain() (lo, hi float64, ok bool) {
	if len(d.points) == 0 {
		return 0, 0, false
	}
	return d.points[0].Value, d.points[len(d.points)-1].Value, true
}

// ControlPoints returns a copy of the control points in ascending
// value order.
func (d *Dimension) ControlPoints() []ControlPoint {
	out := make([]ControlPoint, len(d.points))
	copy(out, d.points)
	return out
}

// AddMapping registers the color for a data value, parsing the color
// specification per ParseColor. A mapping at an already-present value
// replaces the prior color (last write wins). The specification is
// validated here, at configuration time; on error no state changes.
func (d *Dimension) AddMapping(value float64, spec string) error {
	c, err := ParseColor(spec)
	if err != nil {
		return err
	}
	d.AddMappingColor(value, c)
	return nil
}

// AddMappingColor registers an already-constructed color for a data
// value, with the same insert-or-replace semantics as AddMapping.
func (d *Dimension) AddMappingColor(value float64, c Color) {
	idx := sort.Search(len(d.points), func(i int) bool {
		return d.points[i].Value >= value
	})
	pt := ControlPoint{Value: value, Color: c}
	if idx < len(d.points) && d.points[idx].Value == value {
		Logger().Debug("colormap: replacing control point",
			slog.Float64("value", value),
			slog.String("old", d.points[idx].Color.String()),
			slog.String("new", c.String()))
		d.points[idx] = pt
		return
	}
	d.points = append(d.points, ControlPoint{})
	copy(d.points[idx+1:], d.points[idx:])
	d.points[idx] = pt
}

// Resolve interpolates the color for a data input.
//
// With no control points it fails with ErrNoControlPoints. With a
// single point it returns that point's color for any input. Otherwise
// inputs at or beyond the outermost control values clamp to the edge
// colors, and inputs between two adjacent points interpolate linearly,
// channel-wise, between their colors.
func (d *Dimension) Resolve(input float64) (Color, error) {
	if len(d.points) == 0 {
		return Color{}, ErrNoControlPoints
	}
	if len(d.points) == 1 {
		return d.points[0].Color, nil
	}

	// First point at or above the input. Values are unique, so the
	// adjacent pair around the input is always well-defined.
	idx := sort.Search(len(d.points), func(i int) bool {
		return d.points[i].Value >= input
	})
	if idx == 0 {
		return d.points[0].Color, nil
	}
	if idx == len(d.points) {
		return d.points[len(d.points)-1].Color, nil
	}
	if d.points[idx].Value == input {
		return d.points[idx].Color, nil
	}

	lo, hi := d.points[idx-1], d.points[idx]
	t := (input - lo.Value) / (hi.Value - lo.Value)
	return lo.Color.Lerp(hi.Color, t), nil
}
