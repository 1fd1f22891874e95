// Package colormap maps points in an n-dimensional numeric data space
// to colors.
//
// # Overview
//
// A Map owns one Dimension per data axis. Each dimension carries
// control points pairing a data value with a color; resolving an input
// interpolates linearly between the two adjacent control points,
// clamping outside the configured range. With several dimensions, the
// per-dimension colors are combined by a blend strategy, each weighted
// by its dimension's linearity.
//
// # Quick Start
//
//	m := colormap.New(colormap.BlendLERP)
//	temp := m.AddDimension(1)
//	load := m.AddDimension(0.5)
//
//	temp.AddMapping(-10, "blue")
//	temp.AddMapping(0, "beige")
//	temp.AddMapping(30, "orange")
//	load.AddMapping(0, "white")
//	load.AddMapping(100, "rgb(147,10,20)")
//
//	c, err := m.Resolve(12.5, 80)
//	if err != nil {
//		// handle DimensionCountError, ErrNoControlPoints, ...
//	}
//	fmt.Println(c) // "rgb(r,g,b)" form
//
// # Colors
//
// Control colors are given as specifications: an SVG palette name
// ("seagreen"), an explicit triple ("rgb(147,10,20)"), or a hex
// literal ("#930a14"). Specifications are parsed once, when the
// mapping is registered. Resolved colors render back to the
// "rgb(r,g,b)" textual form via Color.String, the single seam
// presentation layers depend on; the CSS helpers and the visualization
// functions are conveniences built on that seam.
//
// # Concurrency
//
// Maps and dimensions are plain single-threaded state. Nothing blocks
// or performs I/O, but adding mappings is not atomic with respect to
// concurrent queries; wrap the whole Map in a mutex if it is shared.
package colormap
