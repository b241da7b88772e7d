package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/scene"
)

// ---------------------------------------------------------------------------
// Scene construction
// ---------------------------------------------------------------------------

// sceneBuilder records the nodes created by one evaluation. Anonymous node
// suffixes restart at 1 for every evaluation so IDs are deterministic.
type sceneBuilder struct {
	s       *scene.Scene
	counter int
	order   []scene.NodeID
}

func (b *sceneBuilder) nextNodeSuffix() string {
	b.counter++
	return fmt.Sprintf("_anon_%d", b.counter)
}

// add inserts a node whose ID is derived from prefix and its name (or an
// anonymous suffix) and returns a reference to it.
func (b *sceneBuilder) add(prefix string, kind scene.NodeKind, name string, children []scene.NodeID, data scene.NodeData) (*sexpNodeRef, error) {
	idPath := prefix + "/" + b.nextNodeSuffix()
	if name != "" {
		if _, dup := b.s.NameIndex[name]; dup {
			return nil, fmt.Errorf("duplicate name %q", name)
		}
		idPath = prefix + "/" + name
	}
	id := scene.NewNodeID(idPath)
	b.s.AddNode(&scene.Node{
		ID:       id,
		Kind:     kind,
		Name:     name,
		Children: children,
		Data:     data,
	})
	b.order = append(b.order, id)
	return &sexpNodeRef{id: id, name: name}, nil
}

// promoteOrphans makes every node no other node references a root, in
// creation order. It only runs when the script declared no group, so a
// bare (bezier ...) still draws.
func (b *sceneBuilder) promoteOrphans() {
	if len(b.s.Roots) > 0 {
		return
	}
	referenced := make(map[scene.NodeID]bool)
	for _, n := range b.s.Nodes {
		for _, c := range n.Children {
			referenced[c] = true
		}
	}
	for _, id := range b.order {
		if !referenced[id] {
			b.s.AddRoot(id)
		}
	}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

type builtinFunc = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// registerBuiltins installs all curvekit DSL builtins into a zygomys
// environment. Builtins that create nodes add them to s and return a node
// reference. Keyword arguments arrive as "__kw_name" strings after
// preprocessing.
func registerBuiltins(env *zygo.Zlisp, s *scene.Scene) *sceneBuilder {
	b := &sceneBuilder{s: s}

	// -----------------------------------------------------------------------
	// (pt x y) / (pt x y z)
	// -----------------------------------------------------------------------
	env.AddFunction("pt", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 && len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("pt requires 2 or 3 arguments, got %d", len(args))
		}
		var xyz [3]float32
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("pt: %c: %w", "xyz"[i], err)
			}
			xyz[i] = float32(f)
		}
		return &sexpPoint{p: geom.Pt3(xyz[0], xyz[1], xyz[2])}, nil
	})

	// -----------------------------------------------------------------------
	// (bezier :samples 100 :name "arch" :color "#ff0000" p1 p2 ...)
	// (bspline :iterations 4 p1 p2 ...)
	// -----------------------------------------------------------------------
	curveBuiltin := func(kind scene.CurveKind) builtinFunc {
		fn := kind.String()
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			pts, err := toPoints(pa.positional)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			cd := scene.CurveData{Curve: kind, Points: pts}
			if kind == scene.CurveBezier {
				err = pa.int("samples", &cd.Samples)
			} else {
				err = pa.int("iterations", &cd.Iterations)
			}
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			if cd.Color, err = pa.color(); err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			return b.leaf(fn, scene.NodeCurve, pa, cd)
		}
	}
	env.AddFunction("bezier", curveBuiltin(scene.CurveBezier))
	env.AddFunction("bspline", curveBuiltin(scene.CurveBSpline))

	// -----------------------------------------------------------------------
	// (points p1 p2 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("points", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		pts, err := toPoints(pa.positional)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("points: %w", err)
		}
		pd := scene.PointsData{Points: pts}
		if pd.Color, err = pa.color(); err != nil {
			return zygo.SexpNull, fmt.Errorf("points: %w", err)
		}
		return b.leaf("points", scene.NodePoints, pa, pd)
	})

	// -----------------------------------------------------------------------
	// (row p1 p2 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("row", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pts, err := toPoints(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("row: %w", err)
		}
		return &sexpRow{pts: pts}, nil
	})

	// -----------------------------------------------------------------------
	// (surface :res-u 20 :res-v 20 :degree 3 (row ...) (row ...) ...)
	// -----------------------------------------------------------------------
	env.AddFunction("surface", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		sd := scene.SurfaceData{}
		for i, a := range pa.positional {
			r, ok := a.(*sexpRow)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("surface: argument %d: expected row, got %T (%s)", i+1, a, a.SexpString(nil))
			}
			sd.Grid = append(sd.Grid, r.pts)
		}
		for _, opt := range []struct {
			key string
			dst *int
		}{{"res-u", &sd.ResU}, {"res-v", &sd.ResV}, {"degree", &sd.Degree}} {
			if err := pa.int(opt.key, opt.dst); err != nil {
				return zygo.SexpNull, fmt.Errorf("surface: %w", err)
			}
		}
		var err error
		if sd.Color, err = pa.color(); err != nil {
			return zygo.SexpNull, fmt.Errorf("surface: %w", err)
		}
		return b.leaf("surface", scene.NodeSurface, pa, sd)
	})

	// -----------------------------------------------------------------------
	// (revolve :slices 36 :uv true p1 p2 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("revolve", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		pts, err := toPoints(pa.positional)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("revolve: %w", err)
		}
		rd := scene.RevolveData{Profile: pts}
		if err := pa.int("slices", &rd.Slices); err != nil {
			return zygo.SexpNull, fmt.Errorf("revolve: %w", err)
		}
		if err := pa.bool("uv", &rd.UV); err != nil {
			return zygo.SexpNull, fmt.Errorf("revolve: %w", err)
		}
		if rd.Color, err = pa.color(); err != nil {
			return zygo.SexpNull, fmt.Errorf("revolve: %w", err)
		}
		return b.leaf("revolve", scene.NodeRevolve, pa, rd)
	})

	// -----------------------------------------------------------------------
	// (sierpinski :depth 4 :holes true [a b c])
	// (koch :depth 3 :radius 0.6 [center])
	// (pythagoras :depth 6 [a b])
	// (dragon :depth 10 [a b])
	// -----------------------------------------------------------------------
	fractalBuiltin := func(kind scene.FractalKind) builtinFunc {
		fn := kind.String()
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			fd := scene.FractalData{Fractal: kind}
			if err := pa.int("depth", &fd.Depth); err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			anchors, err := toPoints(pa.positional)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			if len(anchors) > 0 && len(anchors) != kind.AnchorCount() {
				return zygo.SexpNull, fmt.Errorf("%s takes %d anchor points, got %d", fn, kind.AnchorCount(), len(anchors))
			}
			fd.Anchors = anchors
			switch kind {
			case scene.FractalSierpinski:
				err = pa.bool("holes", &fd.Holes)
			case scene.FractalKoch:
				err = pa.float("radius", &fd.Radius)
			}
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			return b.leaf(fn, scene.NodeFractal, pa, fd)
		}
	}
	for _, k := range []scene.FractalKind{
		scene.FractalSierpinski, scene.FractalKoch, scene.FractalPythagoras, scene.FractalDragon,
	} {
		env.AddFunction(k.String(), fractalBuiltin(k))
	}

	// -----------------------------------------------------------------------
	// (place child :at (pt 1 0) :rotate 45 :spin 90 :scale 0.5 :name "moon")
	// -----------------------------------------------------------------------
	env.AddFunction("place", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("place requires a node reference as first argument")
		}
		childID, err := toNodeRef(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("place: child: %w", err)
		}

		td := scene.TransformData{}
		if v, ok := pa.kw["at"]; ok {
			p, err := toPoint(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("place: at: %w", err)
			}
			td.Translation = &p
		}
		if err := pa.float("rotate", &td.Rotate); err != nil {
			return zygo.SexpNull, fmt.Errorf("place: %w", err)
		}
		if err := pa.float("spin", &td.Spin); err != nil {
			return zygo.SexpNull, fmt.Errorf("place: %w", err)
		}
		if _, ok := pa.kw["scale"]; ok {
			var sc float32
			if err := pa.float("scale", &sc); err != nil {
				return zygo.SexpNull, fmt.Errorf("place: %w", err)
			}
			td.Scale = &sc
		}

		nodeName, err := pa.string("name")
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("place: %w", err)
		}
		ref, err := b.add("place", scene.NodeTransform, nodeName, []scene.NodeID{childID}, td)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("place: %w", err)
		}
		return ref, nil
	})

	// -----------------------------------------------------------------------
	// (group "name" child1 child2 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("group", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("group requires a name argument")
		}

		groupName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("group: name: %w", err)
		}

		var children []scene.NodeID
		for i := 1; i < len(args); i++ {
			ref, ok := args[i].(*sexpNodeRef)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("group: child %d: expected node reference, got %T (%s)",
					i, args[i], args[i].SexpString(nil))
			}
			children = append(children, ref.id)
		}

		ref, err := b.add("group", scene.NodeGroup, groupName, children, scene.GroupData{})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("group: %w", err)
		}
		s.AddRoot(ref.id)
		return ref, nil
	})

	// -----------------------------------------------------------------------
	// (ref "name")
	// -----------------------------------------------------------------------
	env.AddFunction("ref", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("ref requires a name argument")
		}
		nodeName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ref: name: %w", err)
		}
		n := s.Lookup(nodeName)
		if n == nil {
			return zygo.SexpNull, fmt.Errorf("ref: no node named %q", nodeName)
		}
		return &sexpNodeRef{id: n.ID, name: nodeName}, nil
	})

	return b
}

// leaf adds a drawable node named by the optional :name keyword.
func (b *sceneBuilder) leaf(fn string, kind scene.NodeKind, pa kwArgs, data scene.NodeData) (zygo.Sexp, error) {
	nodeName, err := pa.string("name")
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
	}
	ref, err := b.add(fn, kind, nodeName, nil, data)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
	}
	return ref, nil
}
