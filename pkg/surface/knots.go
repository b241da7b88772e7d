// Package surface evaluates tensor-product B-spline surfaces and sweeps
// profile curves into surfaces of revolution.
package surface

// ClampedKnots returns the open (clamped) uniform knot vector for count
// control points of the given degree. Its length is count+degree+1; the
// first degree+1 knots are 0, the last degree+1 are 1 and the interior knots
// are evenly spaced. It returns nil when count < degree+1 or degree < 0.
func ClampedKnots(count, degree int) []float32 {
	if degree < 0 || count < degree+1 {
		return nil
	}
	m := count + degree + 1
	knots := make([]float32, m)
	spans := count - degree
	for j := 1; j < spans; j++ {
		knots[degree+j] = float32(j) / float32(spans)
	}
	for i := m - degree - 1; i < m; i++ {
		knots[i] = 1
	}
	return knots
}

// Basis evaluates the Cox-de Boor basis function N(i, k, t) of order k
// (degree k-1) over knots.
//
// The order-1 function is the indicator of [knots[i], knots[i+1]). At the
// end of the domain, t == knots[last], the final non-empty span is treated as
// closed so that clamped curves reach their last control point. A recursive
// term whose denominator is exactly zero contributes nothing.
func Basis(i, k int, t float32, knots []float32) float32 {
	if i < 0 || i+k >= len(knots) {
		return 0
	}
	if k <= 1 {
		lo, hi := knots[i], knots[i+1]
		if lo <= t && t < hi {
			return 1
		}
		if t == knots[len(knots)-1] && lo < hi && hi == t {
			return 1
		}
		return 0
	}

	var left, right float32
	if d := knots[i+k-1] - knots[i]; d != 0 {
		left = (t - knots[i]) / d * Basis(i, k-1, t, knots)
	}
	if d := knots[i+k] - knots[i+1]; d != 0 {
		right = (knots[i+k] - t) / d * Basis(i+1, k-1, t, knots)
	}
	return left + right
}
