package colormap

import (
	"errors"
	"strings"
	"testing"
)

func TestMap_Resolve_Blend(t *testing.T) {
	m := New(BlendLERP)
	d1 := m.AddDimension(1)
	d2 := m.AddDimension(0.5)

	c1 := RGB(120, 60, 0)
	c2 := RGB(30, 90, 150)
	d1.AddMappingColor(0, c1)
	d2.AddMappingColor(0, c2)

	got, err := m.Resolve(0, 0)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := RGB(
		(1*c1.R+0.5*c2.R)/1.5,
		(1*c1.G+0.5*c2.G)/1.5,
		(1*c1.B+0.5*c2.B)/1.5,
	)
	if !colorsClose(got, want, colorEpsilon) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestMap_Resolve_ArityMismatch(t *testing.T) {
	m := New(BlendLERP)
	m.AddDimension(1).AddMappingColor(0, RGB(1, 2, 3))
	m.AddDimension(1).AddMappingColor(0, RGB(4, 5, 6))

	for _, inputs := range [][]float64{{1}, {1, 2, 3}, nil} {
		_, err := m.Resolve(inputs...)
		var countErr *DimensionCountError
		if !errors.As(err, &countErr) {
			t.Fatalf("Resolve(%v) error = %v, want DimensionCountError", inputs, err)
		}
		if countErr.Got != len(inputs) || countErr.Want != 2 {
			t.Errorf("Resolve(%v): got/want = %d/%d, expected %d/2",
				inputs, countErr.Got, countErr.Want, len(inputs))
		}
	}
}

func TestMap_Resolve_UnconfiguredDimension(t *testing.T) {
	m := New(BlendLERP)
	m.AddDimension(1).AddMappingColor(0, RGB(1, 2, 3))
	m.AddDimension(1) // no control points

	_, err := m.Resolve(0, 0)
	if !errors.Is(err, ErrNoControlPoints) {
		t.Fatalf("Resolve() error = %v, want ErrNoControlPoints", err)
	}
	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("Resolve() error = %v, want DimensionError", err)
	}
	if dimErr.Index != 1 {
		t.Errorf("DimensionError.Index = %d, want 1", dimErr.Index)
	}
}

func TestMap_Resolve_DegenerateLinearities(t *testing.T) {
	m := New(BlendLERP)
	m.AddDimension(0).AddMappingColor(0, RGB(255, 0, 0))
	m.AddDimension(0).AddMappingColor(0, RGB(0, 0, 255))

	_, err := m.Resolve(0, 0)
	if !errors.Is(err, ErrDegenerateBlend) {
		t.Errorf("Resolve() error = %v, want ErrDegenerateBlend", err)
	}
}

func TestMap_Resolve_InterleavedConfiguration(t *testing.T) {
	m := New(BlendLERP)
	d := m.AddDimension(1)
	d.AddMappingColor(0, RGB(0, 0, 0))
	d.AddMappingColor(10, RGB(100, 100, 100))

	got, err := m.Resolve(5)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsClose(got, RGB(50, 50, 50), colorEpsilon) {
		t.Errorf("Resolve(5) = %v", got)
	}

	// Reconfigure between queries: replacement must be visible.
	d.AddMappingColor(10, RGB(200, 200, 200))
	got, err = m.Resolve(5)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsClose(got, RGB(100, 100, 100), colorEpsilon) {
		t.Errorf("Resolve(5) after replacement = %v", got)
	}
}

func TestMap_Ready(t *testing.T) {
	m := New(BlendLERP)
	if m.Ready() {
		t.Error("empty map should not be ready")
	}
	d1 := m.AddDimension(1)
	if m.Ready() {
		t.Error("map with unconfigured dimension should not be ready")
	}
	d1.AddMappingColor(0, RGB(1, 2, 3))
	if !m.Ready() {
		t.Error("map with one configured dimension should be ready")
	}
	m.AddDimension(1)
	if m.Ready() {
		t.Error("adding an empty dimension should make the map not ready")
	}
}

func TestNew_UnknownMethodFallsBack(t *testing.T) {
	m := New(BlendMethod(99))
	m.AddDimension(1).AddMappingColor(0, RGB(9, 9, 9))
	got, err := m.Resolve(0)
	if err != nil {
		t.Fatal(err)
	}
	if got != RGB(9, 9, 9) {
		t.Errorf("Resolve() = %v", got)
	}
}

// invertBlender inverts the weighted-linear result; exercises the
// pluggable strategy seam.
type invertBlender struct{}

func (invertBlender) Blend(parts []Weighted) (Color, error) {
	c, err := WeightedSum(parts)
	if err != nil {
		return Color{}, err
	}
	return RGB(255-c.R, 255-c.G, 255-c.B), nil
}

func TestNewWithBlender(t *testing.T) {
	m := NewWithBlender(invertBlender{})
	m.AddDimension(1).AddMappingColor(0, RGB(255, 0, 100))
	got, err := m.Resolve(0)
	if err != nil {
		t.Fatal(err)
	}
	if !colorsClose(got, RGB(0, 255, 155), colorEpsilon) {
		t.Errorf("Resolve() = %v", got)
	}
}

func TestNewWithBlender_Nil(t *testing.T) {
	m := NewWithBlender(nil)
	m.AddDimension(1).AddMappingColor(0, RGB(7, 8, 9))
	got, err := m.Resolve(0)
	if err != nil {
		t.Fatal(err)
	}
	if got != RGB(7, 8, 9) {
		t.Errorf("Resolve() = %v", got)
	}
}

func TestMap_Dump(t *testing.T) {
	m := New(BlendLERP)
	d := m.AddDimension(1)
	if err := d.AddMapping(-10, "blue"); err != nil {
		t.Fatal(err)
	}
	if err := d.AddMapping(30, "orange"); err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	m.Dump(&sb)
	out := sb.String()
	for _, want := range []string{
		"blend method: lerp",
		"Dimension 0",
		"domain: -10..30",
		"rgb(0,0,255) (blue)",
		"rgb(255,165,0) (orange)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump output missing %q:\n%s", want, out)
		}
	}
}
