// Package tessellate walks a scene graph and produces flat vertex meshes.
// One mesh is produced per drawable leaf.
package tessellate

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/samber/lo"

	"github.com/chazu/curvekit/pkg/config"
	"github.com/chazu/curvekit/pkg/curve"
	"github.com/chazu/curvekit/pkg/fractal"
	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/logging"
	"github.com/chazu/curvekit/pkg/scene"
	"github.com/chazu/curvekit/pkg/surface"
)

// Default leaf colors, used when a node carries none.
var (
	CurveColor   = geom.Blue
	PointsColor  = geom.Red
	SurfaceColor = geom.Green
	RevolveColor = geom.White
)

// matrixStack accumulates placements during graph traversal. Each entry is
// the composed world matrix parent·local.
type matrixStack struct {
	m []mgl32.Mat4
}

func newMatrixStack() *matrixStack {
	return &matrixStack{m: []mgl32.Mat4{mgl32.Ident4()}}
}

func (ms *matrixStack) top() mgl32.Mat4 {
	return ms.m[len(ms.m)-1]
}

func (ms *matrixStack) push(local mgl32.Mat4) {
	ms.m = append(ms.m, ms.top().Mul4(local))
}

func (ms *matrixStack) pop() {
	if len(ms.m) > 1 {
		ms.m = ms.m[:len(ms.m)-1]
	}
}

// LocalMatrix returns T·Ry(spin)·Rz(rotate)·S for a placement.
func LocalMatrix(td scene.TransformData) mgl32.Mat4 {
	m := mgl32.Ident4()
	if td.Translation != nil {
		t := *td.Translation
		m = m.Mul4(mgl32.Translate3D(t.X(), t.Y(), t.Z()))
	}
	if td.Spin != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(td.Spin)))
	}
	if td.Rotate != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(td.Rotate)))
	}
	if td.Scale != nil {
		s := *td.Scale
		m = m.Mul4(mgl32.Scale3D(s, s, s))
	}
	return m
}

type tessellator struct {
	s   *scene.Scene
	cfg config.Geometry
	pal geom.Palette
	ms  *matrixStack
}

// Tessellate walks the scene depth-first from its roots and produces one
// mesh per drawable leaf, in traversal order. Zero-valued counts in node
// payloads fall back to cfg. Leaves whose input is too small to draw
// anything produce no mesh. The scene is never mutated.
func Tessellate(s *scene.Scene, cfg config.Geometry) ([]*geom.Mesh, error) {
	if s == nil {
		return nil, nil
	}
	start := time.Now()

	pal := geom.DefaultPalette
	if len(cfg.Palette) > 0 {
		p, err := geom.ParsePalette(cfg.Palette)
		if err != nil {
			return nil, fmt.Errorf("tessellate: %w", err)
		}
		pal = p
	}

	t := &tessellator{s: s, cfg: cfg, pal: pal, ms: newMatrixStack()}
	var meshes []*geom.Mesh
	for _, rootID := range s.Roots {
		root := s.Get(rootID)
		if root == nil {
			continue
		}
		collected, err := t.walk(root)
		if err != nil {
			return nil, fmt.Errorf("tessellate: error walking root %s: %w", rootID.Short(), err)
		}
		meshes = append(meshes, collected...)
	}

	meshes = lo.Filter(meshes, func(m *geom.Mesh, _ int) bool { return !m.IsEmpty() })
	logging.With("tessellate").Debug("tessellated scene",
		"nodes", s.NodeCount(),
		"meshes", len(meshes),
		"vertices", lo.SumBy(meshes, func(m *geom.Mesh) int { return m.VertexCount() }),
		"elapsed", time.Since(start))
	return meshes, nil
}

// walk recursively traverses a node and its children, collecting meshes.
func (t *tessellator) walk(n *scene.Node) ([]*geom.Mesh, error) {
	switch n.Kind {
	case scene.NodeCurve, scene.NodeSurface, scene.NodeRevolve, scene.NodeFractal, scene.NodePoints:
		m, err := t.leaf(n)
		if err != nil {
			return nil, err
		}
		m.Name = n.Label()
		if top := t.ms.top(); top != mgl32.Ident4() {
			m = m.Transform(top)
		}
		return []*geom.Mesh{m}, nil

	case scene.NodeTransform:
		td, ok := n.Data.(scene.TransformData)
		if !ok {
			return nil, fmt.Errorf("transform node %s has unexpected data type %T", n.ID.Short(), n.Data)
		}
		t.ms.push(LocalMatrix(td))
		defer t.ms.pop()
		return t.children(n)

	case scene.NodeGroup:
		return t.children(n)

	default:
		return nil, fmt.Errorf("unknown node kind: %v", n.Kind)
	}
}

func (t *tessellator) children(n *scene.Node) ([]*geom.Mesh, error) {
	var meshes []*geom.Mesh
	for _, child := range t.s.Children(n) {
		collected, err := t.walk(child)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, collected...)
	}
	return meshes, nil
}

// leaf runs the generator for a drawable node.
func (t *tessellator) leaf(n *scene.Node) (*geom.Mesh, error) {
	switch d := n.Data.(type) {
	case scene.CurveData:
		return t.curve(d), nil

	case scene.PointsData:
		return curve.Mesh("", d.Points, lo.FromPtrOr(d.Color, PointsColor), geom.Points), nil

	case scene.SurfaceData:
		degree := lo.Ternary(d.Degree > 0, d.Degree, t.cfg.SurfaceDegree)
		resU := lo.Ternary(d.ResU > 0, d.ResU, t.cfg.SurfaceResU)
		resV := lo.Ternary(d.ResV > 0, d.ResV, t.cfg.SurfaceResV)
		g := surface.Evaluate(d.Grid, degree, resU, resV)
		return surface.GridMesh("", g, lo.FromPtrOr(d.Color, SurfaceColor)), nil

	case scene.RevolveData:
		slices := lo.Ternary(d.Slices > 0, d.Slices, t.cfg.RevolveSlices)
		opts := []surface.RevolveOption{surface.WithColor(lo.FromPtrOr(d.Color, RevolveColor))}
		if d.UV {
			opts = append(opts, surface.WithUV())
		}
		return surface.Revolve(d.Profile, slices, opts...), nil

	case scene.FractalData:
		return t.fractal(d), nil

	default:
		return nil, fmt.Errorf("%s node %s has unsupported data type %T", n.Kind, n.ID.Short(), n.Data)
	}
}

func (t *tessellator) curve(d scene.CurveData) *geom.Mesh {
	c := lo.FromPtrOr(d.Color, CurveColor)
	switch d.Curve {
	case scene.CurveBSpline:
		if len(d.Points) < curve.MinBSplinePoints {
			return &geom.Mesh{Topology: geom.LineStrip}
		}
		iters := lo.Ternary(d.Iterations > 0, d.Iterations, t.cfg.ChaikinIters)
		return curve.Mesh("", curve.Chaikin(d.Points, iters), c, geom.LineStrip)
	default:
		if len(d.Points) < curve.MinBezierPoints {
			return &geom.Mesh{Topology: geom.LineStrip}
		}
		samples := lo.Ternary(d.Samples > 0, d.Samples, t.cfg.Segments)
		return curve.Mesh("", curve.SampleBezier(d.Points, samples), c, geom.LineStrip)
	}
}

// fractal applies the configured depth limit and default anchors.
func (t *tessellator) fractal(d scene.FractalData) *geom.Mesh {
	depth := d.Depth
	if t.cfg.MaxFractalDepth > 0 {
		depth = min(depth, t.cfg.MaxFractalDepth)
	}
	opts := fractal.Options{Palette: t.pal, FillHoles: d.Holes}
	useAnchors := len(d.Anchors) == d.Fractal.AnchorCount()

	switch d.Fractal {
	case scene.FractalSierpinski:
		c := fractal.SierpinskiCorners
		if useAnchors {
			c = [3]geom.Point{d.Anchors[0], d.Anchors[1], d.Anchors[2]}
		}
		return fractal.Sierpinski(c[0], c[1], c[2], depth, opts)
	case scene.FractalKoch:
		center := fractal.SnowflakeCenter
		if useAnchors {
			center = d.Anchors[0]
		}
		radius := lo.Ternary(d.Radius > 0, d.Radius, fractal.SnowflakeRadius)
		return fractal.KochSnowflake(center, radius, depth, opts)
	case scene.FractalPythagoras:
		b := fractal.PythagorasBase
		if useAnchors {
			b = [2]geom.Point{d.Anchors[0], d.Anchors[1]}
		}
		return fractal.PythagorasTree(b[0], b[1], depth, opts)
	default:
		e := fractal.DragonEnds
		if useAnchors {
			e = [2]geom.Point{d.Anchors[0], d.Anchors[1]}
		}
		return fractal.Dragon(e[0], e[1], depth, opts)
	}
}
