package scene

import (
	"fmt"

	"github.com/chazu/curvekit/pkg/fractal"
)

// LargeOutputVertices is the estimated vertex count above which a node is
// rejected. Tessellation allocates every vertex up front.
const LargeOutputVertices = 1 << 20

// ---------------------------------------------------------------------------
// Parameter tier (errors + warnings)
// ---------------------------------------------------------------------------

// validateParameters checks generator inputs. Degenerate but harmless input
// (too few points to draw anything) is a warning; values no generator can
// interpret are errors.
func validateParameters(s *Scene) ([]ValidationError, []ValidationWarning) {
	var errs []ValidationError
	var warnings []ValidationWarning

	fail := func(n *Node, format string, args ...any) {
		errs = append(errs, ValidationError{NodeID: n.ID, Message: fmt.Sprintf(format, args...), Severity: SeverityError})
	}
	warn := func(n *Node, format string, args ...any) {
		warnings = append(warnings, ValidationWarning{NodeID: n.ID, Message: fmt.Sprintf(format, args...)})
	}

	for _, n := range s.Nodes {
		switch d := n.Data.(type) {
		case CurveData:
			validateCurve(n, d, fail, warn)
		case SurfaceData:
			validateSurface(n, d, fail, warn)
		case RevolveData:
			if d.Slices < 0 {
				fail(n, "revolve slices %d must be positive", d.Slices)
			}
			if len(d.Profile) < 2 {
				warn(n, "revolve profile has %d points; nothing will be drawn", len(d.Profile))
			}
			if int64(len(d.Profile)-1)*int64(d.Slices)*6 > LargeOutputVertices {
				fail(n, "revolve with %d slices is over the %d vertex limit", d.Slices, LargeOutputVertices)
			}
		case FractalData:
			validateFractal(n, d, fail, warn)
		case PointsData:
			if len(d.Points) == 0 {
				warn(n, "point cloud is empty")
			}
		case TransformData:
			if d.Scale != nil && *d.Scale <= 0 {
				fail(n, "scale %g must be positive", *d.Scale)
			}
			if len(n.Children) == 0 {
				warn(n, "transform places nothing")
			}
		}
	}
	return errs, warnings
}

type reportFunc func(n *Node, format string, args ...any)

func validateCurve(n *Node, d CurveData, fail, warn reportFunc) {
	switch d.Curve {
	case CurveBezier:
		if d.Samples < 0 {
			fail(n, "bezier samples %d must be positive", d.Samples)
		}
		if len(d.Points) < 2 {
			warn(n, "bezier curve has %d control points; at least 2 are needed", len(d.Points))
		}
		if d.Samples+1 > LargeOutputVertices {
			fail(n, "bezier curve samples %d points, over the %d vertex limit", d.Samples+1, LargeOutputVertices)
		}
	case CurveBSpline:
		if d.Iterations < 0 {
			fail(n, "bspline iterations %d must not be negative", d.Iterations)
		}
		if len(d.Points) < 3 {
			warn(n, "bspline curve has %d control points; at least 3 are needed", len(d.Points))
		}
		if d.Iterations > 20 || (d.Iterations > 0 && len(d.Points)<<d.Iterations > LargeOutputVertices) {
			fail(n, "bspline with %d iterations over %d points is over the %d vertex limit",
				d.Iterations, len(d.Points), LargeOutputVertices)
		}
	default:
		fail(n, "unknown curve kind %d", int(d.Curve))
	}
}

func validateSurface(n *Node, d SurfaceData, fail, warn reportFunc) {
	if !d.Grid.IsRectangular() {
		fail(n, "surface control grid must be non-empty and rectangular")
		return
	}
	if d.Grid.Rows() < 2 || d.Grid.Cols() < 2 {
		fail(n, "surface control grid %dx%d must be at least 2x2", d.Grid.Rows(), d.Grid.Cols())
	}
	if d.Degree < 0 {
		fail(n, "surface degree %d must be positive", d.Degree)
	}
	if d.ResU < 0 || d.ResV < 0 {
		fail(n, "surface resolution %dx%d must be positive", d.ResU, d.ResV)
	}
	if d.Degree > 0 && (d.Grid.Rows() < d.Degree+1 || d.Grid.Cols() < d.Degree+1) {
		warn(n, "surface control grid %dx%d is too small for degree %d; degree is reduced",
			d.Grid.Rows(), d.Grid.Cols(), d.Degree)
	}
	if int64(d.ResU)*int64(d.ResV)*6 > LargeOutputVertices {
		fail(n, "surface resolution %dx%d is over the %d vertex limit", d.ResU, d.ResV, LargeOutputVertices)
	}
}

func validateFractal(n *Node, d FractalData, fail, warn reportFunc) {
	if d.Fractal < FractalSierpinski || d.Fractal > FractalDragon {
		fail(n, "unknown fractal kind %d", int(d.Fractal))
		return
	}
	if d.Depth < 0 {
		fail(n, "%s depth %d must not be negative", d.Fractal, d.Depth)
	}
	if d.Depth > fractal.MaxDepth {
		warn(n, "%s depth %d exceeds %d and is clamped", d.Fractal, d.Depth, fractal.MaxDepth)
	}
	if len(d.Anchors) > 0 && len(d.Anchors) != d.Fractal.AnchorCount() {
		fail(n, "%s takes %d anchor points, got %d", d.Fractal, d.Fractal.AnchorCount(), len(d.Anchors))
	}
	if d.Radius < 0 {
		fail(n, "%s radius %g must be positive", d.Fractal, d.Radius)
	}
}
