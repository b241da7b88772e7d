package editor

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/chazu/curvekit/pkg/config"
	"github.com/chazu/curvekit/pkg/curve"
	"github.com/chazu/curvekit/pkg/fractal"
	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/logging"
	"github.com/chazu/curvekit/pkg/pick"
	"github.com/chazu/curvekit/pkg/surface"
)

// DefaultDepth is the fractal depth after start and after a reset.
const DefaultDepth = 3

// Colors of the editing overlay.
var (
	PointColor = geom.Red
	CurveColor = geom.Blue
)

// DefaultProfile is revolved in the Revolution scene until the user has
// placed at least two profile points.
var DefaultProfile = []geom.Point{
	geom.Pt(0.15, -0.6),
	geom.Pt(0.35, -0.4),
	geom.Pt(0.2, 0),
	geom.Pt(0.3, 0.5),
}

// Editor is the interactive state machine. It is not safe for concurrent
// use; the window loop owns it.
type Editor struct {
	cfg       config.Config
	pal       geom.Palette
	maxDepth  int
	threshold float32
	log       *slog.Logger

	scene    Scene
	points   *geom.ControlPoints
	selected int
	depth    int
	elapsed  float32

	dirty bool
	cache []*geom.Mesh
}

// New returns an editor showing the Bézier scene with no control points.
func New(cfg config.Config) (*Editor, error) {
	pal, err := geom.ParsePalette(cfg.Geometry.Palette)
	if err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}
	maxDepth := fractal.MaxDepth
	if d := cfg.Geometry.MaxFractalDepth; d > 0 {
		maxDepth = min(maxDepth, d)
	}
	return &Editor{
		cfg:       cfg,
		pal:       pal,
		maxDepth:  maxDepth,
		threshold: lo.Ternary(cfg.Pick.Threshold > 0, cfg.Pick.Threshold, pick.DefaultThreshold),
		log:       logging.With("editor"),
		points:    geom.NewControlPoints(),
		selected:  pick.NotFound,
		depth:     min(DefaultDepth, maxDepth),
		dirty:     true,
	}, nil
}

// Scene returns the current scene.
func (e *Editor) Scene() Scene { return e.scene }

// SetScene switches to s.
func (e *Editor) SetScene(s Scene) {
	if s == e.scene {
		return
	}
	e.log.Debug("scene changed", "from", e.scene, "to", s)
	e.scene = s
	e.selected = pick.NotFound
	e.dirty = true
}

// Depth returns the fractal recursion depth.
func (e *Editor) Depth() int { return e.depth }

// Points returns a copy of the control points.
func (e *Editor) Points() []geom.Point { return e.points.Points() }

// Selected returns the index of the point being dragged, or pick.NotFound.
func (e *Editor) Selected() int { return e.selected }

// Update applies one frame of input and clears its event fields.
func (e *Editor) Update(in *Input) {
	defer in.consume()

	for _, k := range in.Keys {
		e.key(k)
	}

	if e.scene.EditsPoints() {
		e.editPoints(in)
	}

	if e.scene == Solar {
		if t := float32(in.Elapsed); t != e.elapsed {
			e.elapsed = t
			e.dirty = true
		}
	}
}

func (e *Editor) key(k Key) {
	switch k {
	case KeyLeft:
		e.SetScene(e.scene.Prev())
	case KeyRight:
		e.SetScene(e.scene.Next())
	case KeyUp:
		if e.scene.IsFractal() && e.depth < e.maxDepth {
			e.depth++
			e.dirty = true
		}
	case KeyDown:
		if e.scene.IsFractal() && e.depth > 0 {
			e.depth--
			e.dirty = true
		}
	case KeyR:
		e.Reset()
	}
}

// Reset clears the control points and restores the default depth.
func (e *Editor) Reset() {
	e.points.Clear()
	e.selected = pick.NotFound
	e.depth = min(DefaultDepth, e.maxDepth)
	e.dirty = true
}

func (e *Editor) editPoints(in *Input) {
	pts := e.points.Points()

	if in.Clicked {
		if i := pick.Nearest(in.Cursor, pts, e.threshold); i != pick.NotFound {
			e.selected = i
		} else {
			e.points.Append(in.Cursor)
			e.selected = pick.NotFound
			e.dirty = true
		}
	}

	if in.RightClicked {
		if i := pick.Nearest(in.Cursor, pts, e.threshold); i != pick.NotFound {
			e.points.RemoveAt(i)
			e.selected = pick.NotFound
			e.dirty = true
		}
	}

	switch {
	case !in.Dragging:
		if !in.Clicked {
			e.selected = pick.NotFound
		}
	case e.selected != pick.NotFound:
		if p, ok := e.points.At(e.selected); ok && p != in.Cursor {
			e.points.ReplaceAt(e.selected, in.Cursor)
			e.dirty = true
		}
	}
}

// Frame returns the meshes for the current state. They are regenerated only
// after a change; otherwise the previous slice is returned. Callers must
// not modify the result.
func (e *Editor) Frame() []*geom.Mesh {
	if !e.dirty {
		return e.cache
	}
	meshes := lo.Filter(e.generate(), func(m *geom.Mesh, _ int) bool { return !m.IsEmpty() })
	e.cache = meshes
	e.dirty = false
	e.log.Debug("regenerated frame",
		"scene", e.scene,
		"meshes", len(meshes),
		"vertices", lo.SumBy(meshes, func(m *geom.Mesh) int { return m.VertexCount() }))
	return meshes
}

func (e *Editor) generate() []*geom.Mesh {
	g := e.cfg.Geometry
	opts := fractal.Options{Palette: e.pal}
	pts := e.points.Points()
	overlay := curve.Mesh("control-points", pts, PointColor, geom.Points)

	switch e.scene {
	case Bezier:
		if len(pts) < curve.MinBezierPoints {
			return []*geom.Mesh{overlay}
		}
		return []*geom.Mesh{overlay, curve.Mesh("bezier", curve.SampleBezier(pts, g.Segments), CurveColor, geom.LineStrip)}

	case BSpline:
		if len(pts) < curve.MinBSplinePoints {
			return []*geom.Mesh{overlay}
		}
		return []*geom.Mesh{overlay, curve.Mesh("bspline", curve.Chaikin(pts, g.ChaikinIters), CurveColor, geom.LineStrip)}

	case Surface:
		grid := surface.Evaluate(DemoGrid(), g.SurfaceDegree, g.SurfaceResU, g.SurfaceResV)
		return []*geom.Mesh{surface.GridMesh("surface", grid, e.pal.At(3)).Transform(View3D)}

	case Revolution:
		profile := lo.Ternary(len(pts) >= 2, pts, DefaultProfile)
		body := surface.Revolve(profile, g.RevolveSlices,
			surface.WithUV(), surface.WithColor(e.pal.At(5)), surface.WithName("revolution"))
		return []*geom.Mesh{body, overlay}

	case Sierpinski:
		c := fractal.SierpinskiCorners
		return []*geom.Mesh{fractal.Sierpinski(c[0], c[1], c[2], e.depth, opts)}

	case Koch:
		return []*geom.Mesh{fractal.KochSnowflake(fractal.SnowflakeCenter, fractal.SnowflakeRadius, e.depth, opts)}

	case Pythagoras:
		b := fractal.PythagorasBase
		return []*geom.Mesh{fractal.PythagorasTree(b[0], b[1], e.depth, opts)}

	case Dragon:
		d := fractal.DragonEnds
		return []*geom.Mesh{fractal.Dragon(d[0], d[1], e.depth, opts)}

	case Solar:
		return SolarSystem(e.elapsed)
	}
	return nil
}

// DemoGrid is the 4x4 control grid shown in the Surface scene: a saddle
// spanning [-0.6, 0.6] in x and z.
func DemoGrid() geom.Grid {
	g := geom.NewGrid(4, 4)
	for i := range g {
		for j := range g[i] {
			x := -0.6 + 0.4*float32(i)
			z := -0.6 + 0.4*float32(j)
			g[i][j] = geom.Pt3(x, (x*x-z*z)*0.8, z)
		}
	}
	return g
}
