package colormap

import (
	"fmt"
	"math"

	"golang.org/x/image/colornames"
)

// Closeness thresholds for ClosestName, expressed as a fraction of the
// white-to-black distance (identical = 0, white vs black = 1).
const (
	exactMatchThreshold      = 0.01
	nearlyMatchThreshold     = 0.10
	moderatelyMatchThreshold = 0.20
)

// reverseNames maps canonical palette triples back to their names.
// Where several names share a triple (aqua/cyan, fuchsia/magenta) the
// alphabetically first name wins, since colornames.Names is sorted.
var reverseNames = func() map[Color]string {
	rev := make(map[Color]string, len(colornames.Names))
	for _, name := range colornames.Names {
		c := FromColor(colornames.Map[name])
		if _, ok := rev[c]; !ok {
			rev[c] = name
		}
	}
	return rev
}()

// ClosestName describes a color by its nearest palette name. An exact
// palette triple returns the bare name; anything else returns the
// nearest name qualified by how far off it is, e.g. "nearly seagreen
// (0.031)" or "vaguely orange (0.412)".
func ClosestName(c Color) string {
	if name, ok := reverseNames[c]; ok {
		return name
	}

	closest := ""
	closestDist := math.Inf(1)
	cf := c.Colorful()
	for _, name := range colornames.Names {
		d := cf.DistanceRgb(FromColor(colornames.Map[name]).Colorful())
		if d < closestDist {
			closestDist = d
			closest = name
		}
	}

	// DistanceRgb works on 0–1 channels, so white<->black is sqrt(3).
	closeness := closestDist / math.Sqrt(3)
	switch {
	case closeness <= exactMatchThreshold:
		return fmt.Sprintf("%s (%.3f)", closest, closeness)
	case closeness <= nearlyMatchThreshold:
		return fmt.Sprintf("nearly %s (%.3f)", closest, closeness)
	case closeness <= moderatelyMatchThreshold:
		return fmt.Sprintf("%s(ish) (%.3f)", closest, closeness)
	default:
		return fmt.Sprintf("vaguely %s (%.3f)", closest, closeness)
	}
}
