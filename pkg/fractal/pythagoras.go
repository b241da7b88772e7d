package fractal

import (
	"github.com/chazu/curvekit/pkg/geom"
)

// left turns d a quarter turn counter-clockwise in the XY plane.
func left(d geom.Point) geom.Point {
	return geom.Point{-d[1], d[0], d[2]}
}

// PythagorasTree grows a Pythagoras tree from base edge a→b. Each level
// emits the square standing on its base edge (to the left of a→b), places
// a right isosceles roof on the far edge and grows one child square from
// each roof leg at depth-1. Roofs are not emitted.
//
// The mesh holds 2^(depth+1)-1 squares, 6 vertices each.
func PythagorasTree(a, b geom.Point, depth int, opts Options) *geom.Mesh {
	depth = ClampDepth(depth)
	bld := geom.NewBuilder(geom.Triangles, 6*(pow(2, depth+1)-1))
	pythagoras(bld, opts.palette(), a, b, depth)
	return bld.Mesh("pythagoras")
}

func pythagoras(bld *geom.Builder, pal geom.Palette, a, b geom.Point, depth int) {
	n := left(b.Sub(a))
	c := b.Add(n)
	d := a.Add(n)
	bld.Quad(a, b, c, d, pal.At(depth))
	if depth == 0 {
		return
	}
	apex := geom.Lerp(d, c, 0.5).Add(n.Mul(0.5))
	pythagoras(bld, pal, d, apex, depth-1)
	pythagoras(bld, pal, apex, c, depth-1)
}
