// Package curve evaluates Bézier curves and refines control polygons into
// quadratic B-spline approximations.
package curve

import "github.com/chazu/curvekit/pkg/geom"

// DefaultSegments is the number of equal subdivisions of [0,1] used when
// sampling a curve for display.
const DefaultSegments = 100

// MinBezierPoints is the fewest control points for which a Bézier curve is
// drawn.
const MinBezierPoints = 2

// Bezier evaluates the Bézier curve defined by ctrl at parameter u using
// De Casteljau's algorithm. The degree is len(ctrl)-1 and is not capped.
// An empty sequence yields the origin; a single point is returned as is.
// ctrl is never modified.
func Bezier(ctrl []geom.Point, u float32) geom.Point {
	if len(ctrl) == 0 {
		return geom.Point{}
	}
	temp := make([]geom.Point, len(ctrl))
	copy(temp, ctrl)
	for j := 1; j < len(temp); j++ {
		for i := 0; i < len(temp)-j; i++ {
			temp[i] = temp[i].Mul(1 - u).Add(temp[i+1].Mul(u))
		}
	}
	return temp[0]
}

// SampleBezier evaluates the curve at u = i/segments for i = 0..segments,
// returning segments+1 points. Each sample is computed independently.
func SampleBezier(ctrl []geom.Point, segments int) []geom.Point {
	if len(ctrl) == 0 || segments < 1 {
		return nil
	}
	out := make([]geom.Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		out = append(out, Bezier(ctrl, float32(i)/float32(segments)))
	}
	return out
}
