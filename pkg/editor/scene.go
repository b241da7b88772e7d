// Package editor holds the state of the interactive curve and fractal
// editor: the current scene, the control points, the fractal depth and the
// cached meshes of the last frame. A host window loop feeds it one Input
// snapshot per frame and uploads the meshes Frame returns.
package editor

// Scene selects what the editor shows. The set is closed; input handling
// switches on it directly.
type Scene int

const (
	Bezier Scene = iota
	BSpline
	Surface
	Revolution
	Sierpinski
	Koch
	Pythagoras
	Dragon
	Solar

	sceneCount = int(Solar) + 1
)

func (s Scene) String() string {
	switch s {
	case Bezier:
		return "bezier"
	case BSpline:
		return "bspline"
	case Surface:
		return "surface"
	case Revolution:
		return "revolution"
	case Sierpinski:
		return "sierpinski"
	case Koch:
		return "koch"
	case Pythagoras:
		return "pythagoras"
	case Dragon:
		return "dragon"
	case Solar:
		return "solar"
	default:
		return "unknown"
	}
}

// Next returns the following scene, wrapping after Solar.
func (s Scene) Next() Scene {
	return Scene((int(s) + 1) % sceneCount)
}

// Prev returns the preceding scene, wrapping before Bezier.
func (s Scene) Prev() Scene {
	return Scene((int(s) + sceneCount - 1) % sceneCount)
}

// EditsPoints reports whether clicks edit the control points in s.
func (s Scene) EditsPoints() bool {
	return s == Bezier || s == BSpline || s == Revolution
}

// IsFractal reports whether Up/Down change the recursion depth in s.
func (s Scene) IsFractal() bool {
	return s >= Sierpinski && s <= Dragon
}

// ParseScene returns the scene with the given String name.
func ParseScene(name string) (Scene, bool) {
	for i := 0; i < sceneCount; i++ {
		if s := Scene(i); s.String() == name {
			return s, true
		}
	}
	return 0, false
}
