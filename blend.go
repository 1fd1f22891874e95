package colormap

import "math"

// BlendMethod selects how per-dimension colors are combined into one
// output color. The zero value, BlendLERP, is the weighted-linear
// blend.
type BlendMethod int

const (
	// BlendLERP is the weight-normalized channel-wise sum: each
	// output channel is sum(w_i * c_i) / sum(w_i).
	BlendLERP BlendMethod = iota
	// BlendAdditive sums channels, saturating at 255 per fold.
	BlendAdditive
	// BlendSubtractive subtracts channels, flooring at 0 per fold.
	BlendSubtractive
	// BlendDifference takes the absolute channel difference.
	BlendDifference
	// BlendMultiplicative multiplies channels, scaled back to 0–255.
	BlendMultiplicative
	// BlendOverlay doubles contrast around the channel midpoint.
	BlendOverlay
)

// String returns the method name.
func (m BlendMethod) String() string {
	switch m {
	case BlendLERP:
		return "lerp"
	case BlendAdditive:
		return "additive"
	case BlendSubtractive:
		return "subtractive"
	case BlendDifference:
		return "difference"
	case BlendMultiplicative:
		return "multiplicative"
	case BlendOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Blender combines weighted colors into a single output color. All
// implementations fail with ErrDegenerateBlend when every weight is
// zero; no fallback color is invented.
type Blender interface {
	Blend(parts []Weighted) (Color, error)
}

// blender returns the strategy for the method, or nil for an
// unrecognized method.
func (m BlendMethod) blender() Blender {
	switch m {
	case BlendLERP:
		return lerpBlender{}
	case BlendAdditive:
		return foldBlender{op: addChannels}
	case BlendSubtractive:
		return foldBlender{op: subChannels}
	case BlendDifference:
		return foldBlender{op: diffChannels}
	case BlendMultiplicative:
		return foldBlender{op: mulChannels}
	case BlendOverlay:
		return foldBlender{op: overlayChannels}
	default:
		return nil
	}
}

// lerpBlender is the weighted-linear strategy.
type lerpBlender struct{}

func (lerpBlender) Blend(parts []Weighted) (Color, error) {
	return WeightedSum(parts)
}

// foldBlender combines colors pairwise with a channel operator,
// left to right in dimension order. Zero-weight colors do not
// participate; if none remain the blend is degenerate.
type foldBlender struct {
	op func(a, b float64) float64
}

func (f foldBlender) Blend(parts []Weighted) (Color, error) {
	first := true
	var acc Color
	for _, p := range parts {
		if p.Weight == 0 {
			continue
		}
		if first {
			acc = p.Color
			first = false
			continue
		}
		acc = Color{
			R: clamp255(f.op(acc.R, p.Color.R)),
			G: clamp255(f.op(acc.G, p.Color.G)),
			B: clamp255(f.op(acc.B, p.Color.B)),
		}
	}
	if first {
		return Color{}, ErrDegenerateBlend
	}
	return acc, nil
}

func addChannels(a, b float64) float64  { return a + b }
func subChannels(a, b float64) float64  { return a - b }
func diffChannels(a, b float64) float64 { return math.Abs(a - b) }
func mulChannels(a, b float64) float64  { return a * b / 255 }

func overlayChannels(a, b float64) float64 {
	if a <= 127.5 {
		return 2 * a * b / 255
	}
	return 255 - 2*(255-a)*(255-b)/255
}
