// Package geom defines the shared value types of curvekit: points, control
// point sequences, grids, flat vertex meshes and color palettes.
package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Point is a 3-component position. 2D work keeps Z at 0.
type Point = mgl32.Vec3

// Color is a linear RGB triple in [0,1].
type Color = mgl32.Vec3

// TexCoord is a (u, v) texture coordinate.
type TexCoord = mgl32.Vec2

// Pt returns the 2D point (x, y, 0).
func Pt(x, y float32) Point {
	return Point{x, y, 0}
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float32) Point {
	return Point{x, y, z}
}

// Lerp returns (1-t)*a + t*b.
func Lerp(a, b Point, t float32) Point {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float32 {
	return b.Sub(a).Len()
}

// Rotate2D rotates p about the origin in the XY plane by angle radians.
// Z is preserved.
func Rotate2D(p Point, angle float32) Point {
	s, c := math32.Sincos(angle)
	return Point{p[0]*c - p[1]*s, p[0]*s + p[1]*c, p[2]}
}

// ApproxEqual reports whether a and b differ by at most eps per component.
func ApproxEqual(a, b Point, eps float32) bool {
	for k := range a {
		if math32.Abs(a[k]-b[k]) > eps {
			return false
		}
	}
	return true
}
