// Package pick maps window coordinates into normalized device space and
// finds the control point under the cursor.
package pick

import "github.com/chazu/curvekit/pkg/geom"

// NotFound is returned by Nearest when no point lies within the threshold.
const NotFound = -1

// DefaultThreshold is the pick radius in normalized device coordinates.
const DefaultThreshold float32 = 0.2

// Nearest returns the index of the point in pts closest to q whose distance
// is strictly below threshold. On ties the earliest index wins. It returns
// NotFound when pts is empty or every point is at least threshold away.
func Nearest(q geom.Point, pts []geom.Point, threshold float32) int {
	best := NotFound
	minDist := threshold
	for i, p := range pts {
		if d := geom.Distance(q, p); d < minDist {
			minDist = d
			best = i
		}
	}
	return best
}

// PixelToNDC converts a cursor position in window pixels (origin top-left,
// y down) to normalized device coordinates in [-1,1] (y up). The sample is
// taken at the pixel centre.
func PixelToNDC(x, y float64, width, height int) geom.Point {
	if width <= 0 || height <= 0 {
		return geom.Point{}
	}
	u := (x + 0.5) / float64(width)
	v := 1 - (y+0.5)/float64(height)
	return geom.Pt(float32(2*u-1), float32(2*v-1))
}
