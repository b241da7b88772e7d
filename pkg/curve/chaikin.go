package curve

import "github.com/chazu/curvekit/pkg/geom"

// DefaultIterations is the number of corner-cutting passes applied when the
// caller has no preference.
const DefaultIterations = 4

// MinBSplinePoints is the fewest control points for which a B-spline curve
// is drawn.
const MinBSplinePoints = 3

// Chaikin refines an open control polygon by corner cutting. Every pass
// replaces each edge (p, q) with the points 3/4 p + 1/4 q and 1/4 p + 3/4 q,
// keeping the first and last points of the previous pass. With n >= 2 input
// points a pass produces 2n points, so k passes yield n*2^k.
//
// Fewer than two points cannot be subdivided and are returned unchanged.
// The result never aliases ctrl.
func Chaikin(ctrl []geom.Point, iterations int) []geom.Point {
	points := append([]geom.Point(nil), ctrl...)
	if len(points) < 2 {
		return points
	}
	for iter := 0; iter < iterations; iter++ {
		next := make([]geom.Point, 0, 2*len(points))
		next = append(next, points[0])
		for i := 0; i < len(points)-1; i++ {
			p, q := points[i], points[i+1]
			next = append(next,
				p.Mul(0.75).Add(q.Mul(0.25)),
				p.Mul(0.25).Add(q.Mul(0.75)),
			)
		}
		next = append(next, points[len(points)-1])
		points = next
	}
	return points
}
