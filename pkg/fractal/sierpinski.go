package fractal

import "github.com/chazu/curvekit/pkg/geom"

// Sierpinski subdivides triangle abc depth times. Each level splits the
// triangle at its edge midpoints and recurses into the three corner
// triangles; depth 0 emits the solid triangle. The middle triangle of a
// split is only emitted when opts.FillHoles is set.
//
// Without holes the mesh has exactly 3^(depth+1) vertices.
func Sierpinski(a, b, c geom.Point, depth int, opts Options) *geom.Mesh {
	depth = ClampDepth(depth)
	n := pow(3, depth+1)
	if opts.FillHoles {
		n += 3 * (pow(3, depth) - 1) / 2
	}
	s := sierpinski{b: geom.NewBuilder(geom.Triangles, n), pal: opts.palette(), holes: opts.FillHoles}
	s.split(a, b, c, depth)
	return s.b.Mesh("sierpinski")
}

type sierpinski struct {
	b     *geom.Builder
	pal   geom.Palette
	holes bool
}

func (s *sierpinski) split(a, b, c geom.Point, depth int) {
	if depth == 0 {
		s.b.Triangle(a, b, c, s.pal.At(0))
		return
	}
	ab := geom.Lerp(a, b, 0.5)
	bc := geom.Lerp(b, c, 0.5)
	ca := geom.Lerp(c, a, 0.5)
	if s.holes {
		s.b.Triangle(ab, bc, ca, s.pal.At(depth))
	}
	s.split(a, ab, ca, depth-1)
	s.split(ab, b, bc, depth-1)
	s.split(ca, bc, c, depth-1)
}
