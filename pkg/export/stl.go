// Package export writes tessellated meshes to files: STL for printing and
// CAD tools, PNG previews and a JSON vertex dump.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/logging"
)

// ErrNoTriangles is returned when an STL export has nothing to write.
var ErrNoTriangles = errors.New("export: no triangle meshes")

func vec(p geom.Point) v3.Vec {
	return v3.Vec{X: float64(p.X()), Y: float64(p.Y()), Z: float64(p.Z())}
}

// Triangles converts every triangle mesh in meshes to sdfx triangles.
// Line and point meshes are skipped.
func Triangles(meshes []*geom.Mesh) []*sdf.Triangle3 {
	var out []*sdf.Triangle3
	for _, m := range meshes {
		if m.Topology != geom.Triangles {
			continue
		}
		for i := 0; i+2 < len(m.Positions); i += 3 {
			out = append(out, &sdf.Triangle3{
				vec(m.Positions[i]),
				vec(m.Positions[i+1]),
				vec(m.Positions[i+2]),
			})
		}
	}
	return out
}

// WriteSTL saves the triangle meshes as a binary STL file at path.
func WriteSTL(path string, meshes []*geom.Mesh) error {
	tris := Triangles(meshes)
	if len(tris) == 0 {
		return ErrNoTriangles
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("export: write stl %s: %w", path, err)
	}
	logging.With("export").Debug("wrote stl", "path", path, "triangles", len(tris))
	return nil
}

// Bounds returns the bounding box of every vertex in meshes. It returns the
// zero box when there are no vertices.
func Bounds(meshes []*geom.Mesh) sdf.Box3 {
	low := v3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	high := v3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	found := false
	for _, m := range meshes {
		mn, mx, ok := m.Bounds()
		if !ok {
			continue
		}
		found = true
		a, b := vec(mn), vec(mx)
		low = v3.Vec{X: math.Min(low.X, a.X), Y: math.Min(low.Y, a.Y), Z: math.Min(low.Z, a.Z)}
		high = v3.Vec{X: math.Max(high.X, b.X), Y: math.Max(high.Y, b.Y), Z: math.Max(high.Z, b.Z)}
	}
	if !found {
		return sdf.Box3{}
	}
	return sdf.Box3{Min: low, Max: high}
}
