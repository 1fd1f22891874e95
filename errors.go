package colormap

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine. Parameterized failures wrap
// these, so callers can always test with errors.Is.
var (
	// ErrNoControlPoints reports a query against a dimension that has
	// no control points registered yet.
	ErrNoControlPoints = errors.New("colormap: dimension has no control points")

	// ErrDegenerateBlend reports a blend whose weights sum to zero,
	// which has no defined result.
	ErrDegenerateBlend = errors.New("colormap: blend weights sum to zero")

	// ErrInvalidColorSpec reports a color specification that could not
	// be parsed into channel values.
	ErrInvalidColorSpec = errors.New("colormap: invalid color specification")
)

// DimensionCountError reports a query whose number of inputs does not
// match the number of configured dimensions.
type DimensionCountError struct {
	Got, Want int
}

func (e *DimensionCountError) Error() string {
	return fmt.Sprintf("colormap: got %d inputs for %d dimensions", e.Got, e.Want)
}

// DimensionError tags a failure from a single dimension with that
// dimension's index in the map. It unwraps to the underlying error.
type DimensionError struct {
	Index int
	Err   error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("colormap: dimension %d: %v", e.Index, e.Err)
}

func (e *DimensionError) Unwrap() error { return e.Err }
