package scene

import "github.com/chazu/curvekit/pkg/geom"

// Zero-valued counts in the payloads below (samples, iterations,
// resolutions, slices, degree) mean "use the configured default".

// ---------------------------------------------------------------------------
// Curves
// ---------------------------------------------------------------------------

// CurveKind distinguishes the curve evaluators.
type CurveKind int

const (
	CurveBezier  CurveKind = iota // De Casteljau
	CurveBSpline                  // Chaikin corner cutting
)

func (k CurveKind) String() string {
	switch k {
	case CurveBezier:
		return "bezier"
	case CurveBSpline:
		return "bspline"
	default:
		return "unknown"
	}
}

// CurveData is an open curve through control points.
type CurveData struct {
	Curve      CurveKind    `json:"curve"`
	Points     []geom.Point `json:"points"`
	Samples    int          `json:"samples,omitempty"`    // Bézier only
	Iterations int          `json:"iterations,omitempty"` // B-spline only
	Color      *geom.Color  `json:"color,omitempty"`
}

func (CurveData) nodeData() {}

// PointsData is a point cloud, drawn one dot per point.
type PointsData struct {
	Points []geom.Point `json:"points"`
	Color  *geom.Color  `json:"color,omitempty"`
}

func (PointsData) nodeData() {}

// ---------------------------------------------------------------------------
// Surfaces
// ---------------------------------------------------------------------------

// SurfaceData is a tensor-product B-spline surface over a control grid.
type SurfaceData struct {
	Grid   geom.Grid   `json:"grid"`
	Degree int         `json:"degree,omitempty"`
	ResU   int         `json:"res_u,omitempty"`
	ResV   int         `json:"res_v,omitempty"`
	Color  *geom.Color `json:"color,omitempty"`
}

func (SurfaceData) nodeData() {}

// RevolveData sweeps a profile (x = radius, y = height) about +Y.
type RevolveData struct {
	Profile []geom.Point `json:"profile"`
	Slices  int          `json:"slices,omitempty"`
	UV      bool         `json:"uv,omitempty"`
	Color   *geom.Color  `json:"color,omitempty"`
}

func (RevolveData) nodeData() {}

// ---------------------------------------------------------------------------
// Fractals
// ---------------------------------------------------------------------------

// FractalKind enumerates the fractal generators.
type FractalKind int

const (
	FractalSierpinski FractalKind = iota
	FractalKoch
	FractalPythagoras
	FractalDragon
)

func (k FractalKind) String() string {
	switch k {
	case FractalSierpinski:
		return "sierpinski"
	case FractalKoch:
		return "koch"
	case FractalPythagoras:
		return "pythagoras"
	case FractalDragon:
		return "dragon"
	default:
		return "unknown"
	}
}

// FractalData parameterizes one fractal. Anchors overrides the default
// corner points: three for Sierpinski, one centre for Koch, two base points
// for Pythagoras and Dragon.
type FractalData struct {
	Fractal FractalKind  `json:"fractal"`
	Depth   int          `json:"depth"`
	Anchors []geom.Point `json:"anchors,omitempty"`
	Radius  float32      `json:"radius,omitempty"` // Koch snowflake only
	Holes   bool         `json:"holes,omitempty"`  // Sierpinski only
}

func (FractalData) nodeData() {}

// AnchorCount returns how many anchors the fractal kind takes.
func (k FractalKind) AnchorCount() int {
	switch k {
	case FractalSierpinski:
		return 3
	case FractalKoch:
		return 1
	default:
		return 2
	}
}

// ---------------------------------------------------------------------------
// Transform
// ---------------------------------------------------------------------------

// TransformData places its children. It is created by the (place ...)
// form. The local matrix is T·Ry(spin)·Rz(rotate)·S.
type TransformData struct {
	Translation *geom.Point `json:"translation,omitempty"`
	Rotate      float32     `json:"rotate,omitempty"` // degrees about Z
	Spin        float32     `json:"spin,omitempty"`   // degrees about Y
	Scale       *float32    `json:"scale,omitempty"`  // uniform
}

func (TransformData) nodeData() {}

// ---------------------------------------------------------------------------
// Group
// ---------------------------------------------------------------------------

// GroupData represents a logical grouping. Created by the (group ...) form.
type GroupData struct {
	Description string `json:"description,omitempty"`
}

func (GroupData) nodeData() {}
