package colormap

import (
	"fmt"
	"io"
	"log/slog"
)

// Map converts an n-tuple of scalar data inputs into a single blended
// color. Each configured dimension independently interpolates its
// control points, then the per-dimension colors are combined by the
// blend strategy chosen at construction, each weighted by its
// dimension's linearity.
//
// Configuration only accumulates: dimensions are appended, control
// points are added or replaced at a fixed value. Queries never mutate
// state. A Map is not safe for concurrent use; callers that share one
// across goroutines must serialize all access themselves, because
// adding a mapping is not atomic with respect to a concurrent Resolve
// on the same dimension.
type Map struct {
	method  BlendMethod
	blender Blender
	dims    []*Dimension
}

// New creates a map with the given blend method. The method is fixed
// for the life of the map. An unrecognized method falls back to
// BlendLERP.
func New(method BlendMethod) *Map {
	b := method.blender()
	if b == nil {
		method, b = BlendLERP, lerpBlender{}
	}
	return &Map{method: method, blender: b}
}

// NewWithBlender creates a map with a caller-supplied blend strategy,
// for blends beyond the built-in methods. The strategy must fail with
// ErrDegenerateBlend when every weight is zero.
func NewWithBlender(b Blender) *Map {
	if b == nil {
		return New(BlendLERP)
	}
	return &Map{method: -1, blender: b}
}

// AddDimension appends a dimension with the given linearity and
// returns it for control-point registration. The order of calls fixes
// the positional index each dimension reads from in later queries.
func (m *Map) AddDimension(linearity float64) *Dimension {
	d := &Dimension{linearity: linearity}
	m.dims = append(m.dims, d)
	Logger().Debug("colormap: added dimension",
		slog.Int("index", len(m.dims)-1),
		slog.Float64("linearity", linearity))
	return d
}

// NumDimensions returns the number of configured dimensions.
func (m *Map) NumDimensions() int { return len(m.dims) }

// Dimension returns the dimension at positional index i.
func (m *Map) Dimension(i int) *Dimension { return m.dims[i] }

// Ready reports whether the map has enough configuration to resolve:
// at least one dimension, each with at least one control point.
func (m *Map) Ready() bool {
	if len(m.dims) == 0 {
		return false
	}
	for _, d := range m.dims {
		if d.Len() == 0 {
			return false
		}
	}
	return true
}

// Resolve maps one scalar input per dimension to the blended output
// color. It fails with a DimensionCountError when the number of inputs
// does not match the number of configured dimensions, with a
// DimensionError wrapping ErrNoControlPoints when a dimension is
// unconfigured, and with ErrDegenerateBlend when every linearity is
// zero. On failure no partial result is produced.
func (m *Map) Resolve(inputs ...float64) (Color, error) {
	if len(inputs) != len(m.dims) {
		return Color{}, &DimensionCountError{Got: len(inputs), Want: len(m.dims)}
	}
	parts := make([]Weighted, len(m.dims))
	for i, d := range m.dims {
		c, err := d.Resolve(inputs[i])
		if err != nil {
			return Color{}, &DimensionError{Index: i, Err: err}
		}
		parts[i] = Weighted{Color: c, Weight: d.Linearity()}
	}
	return m.blender.Blend(parts)
}

// Dump writes a human-readable description of the map's configuration,
// annotating each control color with its closest palette name.
func (m *Map) Dump(w io.Writer) {
	method := "custom"
	if m.method >= 0 {
		method = m.method.String()
	}
	fmt.Fprintf(w, "Map: ready: %v; dimensions: %d; blend method: %s\n",
		m.Ready(), len(m.dims), method)
	for i, d := range m.dims {
		lo, hi, ok := d.Domain()
		fmt.Fprintf(w, "  Dimension %d: points: %d; linearity: %g", i, d.Len(), d.Linearity())
		if ok {
			fmt.Fprintf(w, "; domain: %g..%g", lo, hi)
		}
		fmt.Fprintln(w)
		for j, pt := range d.ControlPoints() {
			fmt.Fprintf(w, "    ControlPoint %d: %g; %s (%s)\n",
				j, pt.Value, pt.Color, ClosestName(pt.Color))
		}
	}
}
