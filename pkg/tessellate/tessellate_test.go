package tessellate_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/curvekit/pkg/config"
	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/scene"
	"github.com/chazu/curvekit/pkg/tessellate"
)

const tol = 1e-4

func geometry() config.Geometry {
	return config.Default().Geometry
}

// square returns the control polygon used throughout the curve scenes.
func square() []geom.Point {
	return []geom.Point{geom.Pt(-0.5, -0.5), geom.Pt(0.5, -0.5), geom.Pt(0.5, 0.5), geom.Pt(-0.5, 0.5)}
}

// makeCurve creates a curve node with the given name.
func makeCurve(name string, kind scene.CurveKind, pts []geom.Point) *scene.Node {
	return &scene.Node{
		ID:   scene.NewNodeID("curve/" + name),
		Kind: scene.NodeCurve,
		Name: name,
		Data: scene.CurveData{Curve: kind, Points: pts},
	}
}

// makePlace creates a transform node with a translation.
func makePlace(name string, tx, ty, tz float32, children ...scene.NodeID) *scene.Node {
	at := geom.Pt3(tx, ty, tz)
	return &scene.Node{
		ID:       scene.NewNodeID("place/" + name),
		Kind:     scene.NodeTransform,
		Name:     name,
		Children: children,
		Data:     scene.TransformData{Translation: &at},
	}
}

// makeGroup creates a group node with children.
func makeGroup(name string, children ...scene.NodeID) *scene.Node {
	return &scene.Node{
		ID:       scene.NewNodeID("group/" + name),
		Kind:     scene.NodeGroup,
		Name:     name,
		Children: children,
		Data:     scene.GroupData{Description: name},
	}
}

func makeFractal(name string, kind scene.FractalKind, depth int) *scene.Node {
	return &scene.Node{
		ID:   scene.NewNodeID("fractal/" + name),
		Kind: scene.NodeFractal,
		Name: name,
		Data: scene.FractalData{Fractal: kind, Depth: depth},
	}
}

func TestNilScene(t *testing.T) {
	meshes, err := tessellate.Tessellate(nil, geometry())
	if err != nil || meshes != nil {
		t.Fatalf("expected nil, nil; got %v, %v", meshes, err)
	}
}

func TestSingleBezier(t *testing.T) {
	s := scene.New()
	c := makeCurve("arch", scene.CurveBezier, square())
	s.AddNode(c)
	s.AddRoot(c.ID)

	meshes, err := tessellate.Tessellate(s, geometry())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	m := meshes[0]
	if m.Name != "arch" {
		t.Errorf("expected Name %q, got %q", "arch", m.Name)
	}
	if m.Topology != geom.LineStrip {
		t.Errorf("expected line strip, got %s", m.Topology)
	}
	if m.VertexCount() != 101 {
		t.Errorf("expected 101 samples, got %d", m.VertexCount())
	}
	if m.Colors[0] != tessellate.CurveColor {
		t.Errorf("expected curve color, got %v", m.Colors[0])
	}
	mid := m.Positions[50]
	if !geom.ApproxEqual(mid, geom.Pt(0.25, 0), tol) {
		t.Errorf("midpoint = %v, want (0.25, 0)", mid)
	}
}

func TestBSplineUsesConfiguredIterations(t *testing.T) {
	s := scene.New()
	c := makeCurve("smooth", scene.CurveBSpline, square())
	s.AddNode(c)
	s.AddRoot(c.ID)

	cfg := geometry()
	cfg.ChaikinIters = 2
	meshes, err := tessellate.Tessellate(s, cfg)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if got := meshes[0].VertexCount(); got != 16 {
		t.Errorf("expected 16 points after 2 passes, got %d", got)
	}
}

func TestUndersizedCurvesProduceNoMesh(t *testing.T) {
	s := scene.New()
	b := makeCurve("b", scene.CurveBezier, square()[:1])
	bs := makeCurve("bs", scene.CurveBSpline, square()[:2])
	g := makeGroup("g", b.ID, bs.ID)
	s.AddNode(b)
	s.AddNode(bs)
	s.AddNode(g)
	s.AddRoot(g.ID)

	meshes, err := tessellate.Tessellate(s, geometry())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected no meshes, got %d", len(meshes))
	}
}

func TestPlacementTranslates(t *testing.T) {
	s := scene.New()
	c := makeCurve("arch", scene.CurveBezier, square())
	s.AddNode(c)
	p := makePlace("moved", 1, 2, 3, c.ID)
	s.AddNode(p)
	s.AddRoot(p.ID)

	meshes, err := tessellate.Tessellate(s, geometry())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	first := meshes[0].Positions[0]
	if !geom.ApproxEqual(first, geom.Pt3(0.5, 1.5, 3), tol) {
		t.Errorf("first vertex = %v, want (0.5, 1.5, 3)", first)
	}
}

func TestNestedPlacementComposesParentFirst(t *testing.T) {
	s := scene.New()
	pts := scene.PointsData{Points: []geom.Point{geom.Pt(1, 0)}}
	leaf := &scene.Node{ID: scene.NewNodeID("points/moon"), Kind: scene.NodePoints, Name: "moon", Data: pts}
	s.AddNode(leaf)

	// Inner: translate by (1,0,0). Outer: rotate 90° about Z.
	inner := makePlace("inner", 1, 0, 0, leaf.ID)
	s.AddNode(inner)
	outer := &scene.Node{
		ID: scene.NewNodeID("place/outer"), Kind: scene.NodeTransform,
		Children: []scene.NodeID{inner.ID},
		Data:     scene.TransformData{Rotate: 90},
	}
	s.AddNode(outer)
	s.AddRoot(outer.ID)

	meshes, err := tessellate.Tessellate(s, geometry())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	// (1,0) -> inner (2,0) -> outer rotation (0,2).
	got := meshes[0].Positions[0]
	if !geom.ApproxEqual(got, geom.Pt(0, 2), tol) {
		t.Errorf("moon = %v, want (0, 2)", got)
	}
	if meshes[0].Colors[0] != tessellate.PointsColor {
		t.Errorf("expected points color, got %v", meshes[0].Colors[0])
	}
}

func TestLocalMatrixOrder(t *testing.T) {
	at := geom.Pt(1, 0)
	scale := float32(2)
	m := tessellate.LocalMatrix(scene.TransformData{Translation: &at, Rotate: 90, Scale: &scale})
	// Scale first, then rotate, then translate: (1,0) -> (2,0) -> (0,2) -> (1,2).
	got := mgl32.TransformCoordinate(geom.Pt(1, 0), m)
	if !geom.ApproxEqual(got, geom.Pt(1, 2), tol) {
		t.Errorf("got %v, want (1, 2)", got)
	}

	spin := tessellate.LocalMatrix(scene.TransformData{Spin: 90})
	got = mgl32.TransformCoordinate(geom.Pt3(1, 0, 0), spin)
	if math.Abs(float64(got.X())) > tol || math.Abs(math.Abs(float64(got.Z()))-1) > tol {
		t.Errorf("spin moved (1,0,0) to %v, want onto the Z axis", got)
	}
}

func TestGroupOfFractals(t *testing.T) {
	s := scene.New()
	sp := makeFractal("tri", scene.FractalSierpinski, 3)
	ko := makeFractal("flake", scene.FractalKoch, 2)
	py := makeFractal("tree", scene.FractalPythagoras, 2)
	dr := makeFractal("dragon", scene.FractalDragon, 4)
	for _, n := range []*scene.Node{sp, ko, py, dr} {
		s.AddNode(n)
	}
	g := makeGroup("zoo", sp.ID, ko.ID, py.ID, dr.ID)
	s.AddNode(g)
	s.AddRoot(g.ID)

	meshes, err := tessellate.Tessellate(s, geometry())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	want := map[string]int{"tri": 81, "flake": 48, "tree": 42, "dragon": 32}
	if len(meshes) != len(want) {
		t.Fatalf("expected %d meshes, got %d", len(want), len(meshes))
	}
	for _, m := range meshes {
		if got := m.VertexCount(); got != want[m.Name] {
			t.Errorf("%s: %d vertices, want %d", m.Name, got, want[m.Name])
		}
	}
}

func TestFractalDepthCappedByConfig(t *testing.T) {
	s := scene.New()
	sp := makeFractal("tri", scene.FractalSierpinski, 8)
	s.AddNode(sp)
	s.AddRoot(sp.ID)

	cfg := geometry()
	cfg.MaxFractalDepth = 2
	meshes, err := tessellate.Tessellate(s, cfg)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if got := meshes[0].VertexCount(); got != 27 {
		t.Errorf("expected depth capped to 2 (27 vertices), got %d", got)
	}
}

func TestFractalAnchorsAndPalette(t *testing.T) {
	s := scene.New()
	n := &scene.Node{
		ID: scene.NewNodeID("fractal/d"), Kind: scene.NodeFractal, Name: "d",
		Data: scene.FractalData{Fractal: scene.FractalDragon, Depth: 0, Anchors: []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1)}},
	}
	s.AddNode(n)
	s.AddRoot(n.ID)

	cfg := geometry()
	cfg.Palette = []string{"#ff0000"}
	meshes, err := tessellate.Tessellate(s, cfg)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	m := meshes[0]
	if m.Positions[1] != geom.Pt(0, 1) {
		t.Errorf("anchor not honoured: %v", m.Positions)
	}
	if !geom.ApproxEqual(m.Colors[0], geom.Red, tol) {
		t.Errorf("expected configured palette color, got %v", m.Colors[0])
	}
}

func TestBadPalette(t *testing.T) {
	cfg := geometry()
	cfg.Palette = []string{"not-a-color"}
	if _, err := tessellate.Tessellate(scene.New(), cfg); err == nil {
		t.Fatal("expected palette error")
	}
}

func TestSurfaceAndRevolve(t *testing.T) {
	s := scene.New()
	grid := geom.NewGrid(4, 4)
	for i := range grid {
		for j := range grid[i] {
			grid[i][j] = geom.Pt3(float32(i), 0, float32(j))
		}
	}
	surf := &scene.Node{
		ID: scene.NewNodeID("surface/s"), Kind: scene.NodeSurface, Name: "patch",
		Data: scene.SurfaceData{Grid: grid, ResU: 5, ResV: 6},
	}
	rev := &scene.Node{
		ID: scene.NewNodeID("revolve/r"), Kind: scene.NodeRevolve, Name: "vase",
		Data: scene.RevolveData{Profile: []geom.Point{geom.Pt(0.2, 0), geom.Pt(0.4, 0.5), geom.Pt(0.1, 1)}, UV: true},
	}
	g := makeGroup("g", surf.ID, rev.ID)
	for _, n := range []*scene.Node{surf, rev, g} {
		s.AddNode(n)
	}
	s.AddRoot(g.ID)

	meshes, err := tessellate.Tessellate(s, geometry())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}
	if got := meshes[0].PrimitiveCount(); got != 4*5*2 {
		t.Errorf("patch: %d triangles, want 40", got)
	}
	if got := meshes[1].PrimitiveCount(); got != 2*36*2 {
		t.Errorf("vase: %d triangles, want 144", got)
	}
	if len(meshes[1].TexCoords) != meshes[1].VertexCount() {
		t.Error("vase should carry texcoords")
	}
}

func TestUnknownKind(t *testing.T) {
	s := scene.New()
	n := &scene.Node{ID: scene.NewNodeID("bad"), Kind: scene.NodeKind(42)}
	s.AddNode(n)
	s.AddRoot(n.ID)
	if _, err := tessellate.Tessellate(s, geometry()); err == nil {
		t.Fatal("expected error for unknown node kind")
	}
}

func TestMismatchedTransformData(t *testing.T) {
	s := scene.New()
	n := &scene.Node{ID: scene.NewNodeID("bad"), Kind: scene.NodeTransform, Data: scene.GroupData{}}
	s.AddNode(n)
	s.AddRoot(n.ID)
	if _, err := tessellate.Tessellate(s, geometry()); err == nil {
		t.Fatal("expected error for transform with group payload")
	}
}
