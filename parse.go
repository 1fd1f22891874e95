package colormap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// rgbPattern matches an explicit channel triple like "rgb(20, 56, 198)".
var rgbPattern = regexp.MustCompile(`^rgb\s*\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)

// ParseColor resolves a color specification to a Color. A specification
// is one of a closed set of forms:
//
//   - a named-color token from the SVG 1.1 palette, e.g. "seagreen"
//     (case-insensitive, surrounding space ignored);
//   - an explicit channel triple "rgb(r,g,b)" with each channel an
//     integer in 0–255;
//   - a hex literal "#rrggbb" or "#rgb".
//
// Specifications are resolved once, at configuration time; nothing is
// re-parsed on queries. Unrecognized or out-of-range specs fail with
// an error wrapping ErrInvalidColorSpec.
func ParseColor(spec string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	switch {
	case strings.HasPrefix(s, "rgb"):
		return parseRGBLiteral(s)
	case strings.HasPrefix(s, "#"):
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorSpec, spec)
		}
		return Color{R: cf.R * 255, G: cf.G * 255, B: cf.B * 255}, nil
	default:
		if c, ok := colornames.Map[s]; ok {
			return FromColor(c), nil
		}
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColorSpec, spec)
	}
}

// parseRGBLiteral parses an "rgb(r,g,b)" triple. The input is already
// lowercased and trimmed.
func parseRGBLiteral(s string) (Color, error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, fmt.Errorf("%w: malformed triple %q", ErrInvalidColorSpec, s)
	}
	var ch [3]int
	for i, part := range m[1:] {
		v, err := strconv.Atoi(part)
		if err != nil || v > 255 {
			return Color{}, fmt.Errorf("%w: channel %q out of range 0-255", ErrInvalidColorSpec, part)
		}
		ch[i] = v
	}
	return RGB(float64(ch[0]), float64(ch[1]), float64(ch[2])), nil
}
