package fractal

import (
	"github.com/chewxy/math32"

	"github.com/chazu/curvekit/pkg/geom"
)

const sixty = math32.Pi / 3

// kochSplit divides a→b into thirds and returns the inner division points
// p1, p2 and the peak of the equilateral bump raised on the right-hand side
// of a→b.
func kochSplit(a, b geom.Point) (p1, peak, p2 geom.Point) {
	d := b.Sub(a)
	p1 = a.Add(d.Mul(1.0 / 3))
	p2 = a.Add(d.Mul(2.0 / 3))
	peak = p1.Add(geom.Rotate2D(p2.Sub(p1), -sixty))
	return p1, peak, p2
}

// KochLine emits the bumps of a Koch curve over a→b: at each level the
// middle third is replaced by the two outer sides of an equilateral
// triangle on the right of a→b, that triangle is emitted in the level
// color and the four sub-segments recurse. Depth 0 emits nothing; the
// straight segment is drawn by whoever owns it.
func KochLine(a, b geom.Point, depth int, opts Options) *geom.Mesh {
	depth = ClampDepth(depth)
	bld := geom.NewBuilder(geom.Triangles, 3*(pow(4, depth)-1)/3)
	kochBumps(bld, opts.palette(), a, b, depth)
	return bld.Mesh("koch")
}

func kochBumps(b *geom.Builder, pal geom.Palette, p0, p4 geom.Point, depth int) {
	if depth == 0 {
		return
	}
	p1, peak, p3 := kochSplit(p0, p4)
	b.Triangle(p1, peak, p3, pal.At(depth))
	kochBumps(b, pal, p0, p1, depth-1)
	kochBumps(b, pal, p1, peak, depth-1)
	kochBumps(b, pal, peak, p3, depth-1)
	kochBumps(b, pal, p3, p4, depth-1)
}

// SnowflakeCorners returns the counter-clockwise equilateral triangle
// inscribed in the circle of the given radius, first corner straight up.
func SnowflakeCorners(center geom.Point, radius float32) [3]geom.Point {
	var out [3]geom.Point
	for i := range out {
		angle := math32.Pi/2 + float32(i)*2*math32.Pi/3
		s, c := math32.Sincos(angle)
		out[i] = center.Add(geom.Point{radius * c, radius * s, 0})
	}
	return out
}

// KochSnowflake emits the solid base triangle followed by the Koch bumps of
// each edge. The base is counter-clockwise so every bump points outward.
// The mesh has 4^depth triangles.
func KochSnowflake(center geom.Point, radius float32, depth int, opts Options) *geom.Mesh {
	depth = ClampDepth(depth)
	pal := opts.palette()
	bld := geom.NewBuilder(geom.Triangles, 3*pow(4, depth))
	v := SnowflakeCorners(center, radius)
	bld.Triangle(v[0], v[1], v[2], pal.At(depth))
	for i := range v {
		kochBumps(bld, pal, v[i], v[(i+1)%3], depth)
	}
	return bld.Mesh("snowflake")
}

// KochCurve returns the Koch outline over a→b as 4^depth line segments,
// each colored by the level that produced it.
func KochCurve(a, b geom.Point, depth int, opts Options) *geom.Mesh {
	depth = ClampDepth(depth)
	bld := geom.NewBuilder(geom.Lines, 2*pow(4, depth))
	kochOutline(bld, opts.palette(), a, b, depth)
	return bld.Mesh("koch-curve")
}

func kochOutline(b *geom.Builder, pal geom.Palette, p0, p4 geom.Point, depth int) {
	if depth == 0 {
		b.Segment(p0, p4, pal.At(0))
		return
	}
	p1, peak, p3 := kochSplit(p0, p4)
	kochOutline(b, pal, p0, p1, depth-1)
	kochOutline(b, pal, p1, peak, depth-1)
	kochOutline(b, pal, peak, p3, depth-1)
	kochOutline(b, pal, p3, p4, depth-1)
}
