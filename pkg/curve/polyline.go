package curve

import "github.com/chazu/curvekit/pkg/geom"

// Mesh wraps a point list as a single-colored mesh. Use geom.LineStrip for
// curves and geom.Points for control points.
func Mesh(name string, points []geom.Point, c geom.Color, t geom.Topology) *geom.Mesh {
	b := geom.NewBuilder(t, len(points))
	for _, p := range points {
		b.Vertex(p, c)
	}
	return b.Mesh(name)
}

// Segments converts a polyline into an explicit segment list (stride 2).
func Segments(name string, points []geom.Point, c geom.Color) *geom.Mesh {
	n := 0
	if len(points) > 1 {
		n = 2 * (len(points) - 1)
	}
	b := geom.NewBuilder(geom.Lines, n)
	for i := 0; i+1 < len(points); i++ {
		b.Segment(points[i], points[i+1], c)
	}
	return b.Mesh(name)
}
