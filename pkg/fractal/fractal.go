// Package fractal generates recursive subdivision fractals as flat
// triangle and line meshes. Every generator is pure: it reads its corner
// points and depth, writes into one shared geom.Builder and returns the
// finished mesh. Primitives are colored by recursion level.
package fractal

import "github.com/chazu/curvekit/pkg/geom"

// MaxDepth bounds recursion. Sierpinski at MaxDepth emits 3^10 triangles.
const MaxDepth = 10

// Options tune a generator call. The zero value is ready to use.
type Options struct {
	// Palette colors primitives by the remaining depth of the call that
	// emits them. Empty means geom.DefaultPalette.
	Palette geom.Palette

	// FillHoles makes Sierpinski emit the middle triangle of every split.
	FillHoles bool
}

func (o Options) palette() geom.Palette {
	if len(o.Palette) == 0 {
		return geom.DefaultPalette
	}
	return o.Palette
}

// ClampDepth limits depth to [0, MaxDepth].
func ClampDepth(depth int) int {
	return max(0, min(depth, MaxDepth))
}

func pow(base, exp int) int {
	n := 1
	for ; exp > 0; exp-- {
		n *= base
	}
	return n
}
