package surface

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/curvekit/pkg/geom"
)

type revolveOptions struct {
	uv    bool
	color *geom.Color
	name  string
}

// RevolveOption customizes Revolve.
type RevolveOption func(*revolveOptions)

// WithUV emits texture coordinates: u advances with the slice index
// (s/slices) and v with the profile index (k/(len-1)).
func WithUV() RevolveOption {
	return func(o *revolveOptions) { o.uv = true }
}

// WithColor fills the color attribute with c.
func WithColor(c geom.Color) RevolveOption {
	return func(o *revolveOptions) { o.color = &c }
}

// WithName sets the mesh name.
func WithName(name string) RevolveOption {
	return func(o *revolveOptions) { o.name = name }
}

// Revolve sweeps profile (x = radius, y = height) a full turn about the +Y
// axis. For every adjacent pair of profile points and every adjacent pair of
// slices two triangles are emitted, slice s being rotated by s·(2π/slices).
// The result has (len(profile)-1)·slices·2 triangles. A profile with fewer
// than two points, or slices < 1, yields an empty mesh.
func Revolve(profile []geom.Point, slices int, opts ...RevolveOption) *geom.Mesh {
	var o revolveOptions
	for _, opt := range opts {
		opt(&o)
	}
	m := &geom.Mesh{Name: o.name, Topology: geom.Triangles}
	if len(profile) < 2 || slices < 1 {
		return m
	}

	// rings[s][k] is profile point k rotated to slice s; the last ring
	// repeats the first so the seam closes exactly.
	rings := make([][]geom.Point, slices+1)
	step := 2 * math32.Pi / float32(slices)
	for s := 0; s < slices; s++ {
		rot := mgl32.Rotate3DY(float32(s) * step)
		ring := make([]geom.Point, len(profile))
		for k, p := range profile {
			ring[k] = rot.Mul3x1(p)
		}
		rings[s] = ring
	}
	rings[slices] = rings[0]

	n := (len(profile) - 1) * slices * 6
	m.Positions = make([]geom.Point, 0, n)
	if o.uv {
		m.TexCoords = make([]geom.TexCoord, 0, n)
	}
	last := float32(len(profile) - 1)
	for k := 0; k+1 < len(profile); k++ {
		for s := 0; s < slices; s++ {
			quad := [4][2]int{{s, k}, {s + 1, k}, {s + 1, k + 1}, {s, k + 1}}
			for _, q := range [6]int{0, 1, 2, 0, 2, 3} {
				ss, kk := quad[q][0], quad[q][1]
				m.Positions = append(m.Positions, rings[ss][kk])
				if o.uv {
					m.TexCoords = append(m.TexCoords, geom.TexCoord{
						float32(ss) / float32(slices),
						float32(kk) / last,
					})
				}
			}
		}
	}
	if o.color != nil {
		m.Fill(*o.color)
	}
	return m
}

// SphereProfile returns a semicircle of the given radius from the south pole
// to the north pole in the XY half-plane x >= 0, with stacks+1 points.
func SphereProfile(radius float32, stacks int) []geom.Point {
	if stacks < 1 {
		return nil
	}
	pts := make([]geom.Point, 0, stacks+1)
	for i := 0; i <= stacks; i++ {
		phi := -math32.Pi/2 + math32.Pi*float32(i)/float32(stacks)
		s, c := math32.Sincos(phi)
		pts = append(pts, geom.Pt(radius*c, radius*s))
	}
	return pts
}

// Sphere revolves SphereProfile into a UV-mapped sphere centred at the origin.
func Sphere(radius float32, stacks, slices int, opts ...RevolveOption) *geom.Mesh {
	return Revolve(SphereProfile(radius, stacks), slices, append([]RevolveOption{WithUV()}, opts...)...)
}
