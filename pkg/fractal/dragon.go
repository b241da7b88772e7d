package fractal

import (
	"github.com/chewxy/math32"

	"github.com/chazu/curvekit/pkg/geom"
)

// Dragon folds segment a→b depth times into a Heighway dragon. Each fold
// replaces a segment by two whose shared corner is a + R(±45°)(b-a)/√2;
// the first half turns with sign +1 and the second with -1. The mesh holds
// 2^depth segments.
func Dragon(a, b geom.Point, depth int, opts Options) *geom.Mesh {
	depth = ClampDepth(depth)
	bld := geom.NewBuilder(geom.Lines, 2*pow(2, depth))
	dragon(bld, opts.palette(), a, b, depth, 1)
	return bld.Mesh("dragon")
}

func dragon(bld *geom.Builder, pal geom.Palette, a, b geom.Point, depth int, sign float32) {
	if depth == 0 {
		bld.Segment(a, b, pal.At(0))
		return
	}
	mid := a.Add(geom.Rotate2D(b.Sub(a), sign*math32.Pi/4).Mul(1 / math32.Sqrt2))
	dragon(bld, pal, a, mid, depth-1, 1)
	dragon(bld, pal, mid, b, depth-1, -1)
}
