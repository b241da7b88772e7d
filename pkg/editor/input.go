package editor

import "github.com/chazu/curvekit/pkg/geom"

// Key is a key the editor reacts to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyR
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyR:
		return "r"
	default:
		return "unknown"
	}
}

// Input is the state gathered by the window layer during one frame.
// Cursor is in normalized device coordinates (see pick.PixelToNDC).
// Clicked, RightClicked and Keys are events: Editor.Update clears them once
// handled. Dragging and Elapsed are levels and are left alone.
type Input struct {
	Cursor       geom.Point
	Clicked      bool // left button pressed this frame
	RightClicked bool
	Dragging     bool    // left button held
	Keys         []Key   // keys pressed this frame, in order
	Elapsed      float64 // seconds since start, drives animation
}

// Press queues a key event.
func (in *Input) Press(k Key) {
	in.Keys = append(in.Keys, k)
}

func (in *Input) consume() {
	in.Clicked = false
	in.RightClicked = false
	in.Keys = in.Keys[:0]
}
