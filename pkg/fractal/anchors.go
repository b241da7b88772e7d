package fractal

import "github.com/chazu/curvekit/pkg/geom"

// Default anchors framing each fractal inside the [-1,1] view square.
var (
	SierpinskiCorners = [3]geom.Point{geom.Pt(-0.8, -0.7), geom.Pt(0.8, -0.7), geom.Pt(0, 0.7)}
	SnowflakeCenter   = geom.Pt(0, 0)
	PythagorasBase    = [2]geom.Point{geom.Pt(-0.1, -0.9), geom.Pt(0.1, -0.9)}
	DragonEnds        = [2]geom.Point{geom.Pt(-0.5, 0), geom.Pt(0.5, 0)}
)

// SnowflakeRadius is the default circumradius of the Koch snowflake.
const SnowflakeRadius float32 = 0.6
