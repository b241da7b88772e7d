package geom

// ControlPoints is an ordered, user-edited point sequence. Insertion order
// defines curve topology and is never changed implicitly.
type ControlPoints struct {
	pts []Point
}

// NewControlPoints returns a sequence holding a copy of pts.
func NewControlPoints(pts ...Point) *ControlPoints {
	return &ControlPoints{pts: append([]Point(nil), pts...)}
}

// Len returns the number of points.
func (c *ControlPoints) Len() int {
	return len(c.pts)
}

// Points returns a copy of the sequence.
func (c *ControlPoints) Points() []Point {
	return append([]Point(nil), c.pts...)
}

// At returns the i-th point and whether i was in range.
func (c *ControlPoints) At(i int) (Point, bool) {
	if i < 0 || i >= len(c.pts) {
		return Point{}, false
	}
	return c.pts[i], true
}

// Append adds p at the end.
func (c *ControlPoints) Append(p Point) {
	c.pts = append(c.pts, p)
}

// RemoveAt deletes the i-th point. It reports false and leaves the sequence
// untouched when i is out of range.
func (c *ControlPoints) RemoveAt(i int) bool {
	if i < 0 || i >= len(c.pts) {
		return false
	}
	c.pts = append(c.pts[:i], c.pts[i+1:]...)
	return true
}

// ReplaceAt overwrites the i-th point. It reports false when i is out of range.
func (c *ControlPoints) ReplaceAt(i int, p Point) bool {
	if i < 0 || i >= len(c.pts) {
		return false
	}
	c.pts[i] = p
	return true
}

// Clear removes every point.
func (c *ControlPoints) Clear() {
	c.pts = c.pts[:0]
}

// Grid is a rows x cols arrangement of points, row-major.
type Grid [][]Point

// NewGrid allocates a zeroed rows x cols grid. Non-positive sizes give an
// empty grid.
func NewGrid(rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]Point, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the length of the first row, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the point at row i, column j.
func (g Grid) At(i, j int) Point {
	return g[i][j]
}

// IsRectangular reports whether the grid is non-empty and every row has the
// same non-zero length.
func (g Grid) IsRectangular() bool {
	if len(g) == 0 || len(g[0]) == 0 {
		return false
	}
	for _, row := range g[1:] {
		if len(row) != len(g[0]) {
			return false
		}
	}
	return true
}

// Corners returns the four corner points in the order
// (0,0), (0,last), (last,0), (last,last). The grid must be rectangular.
func (g Grid) Corners() [4]Point {
	r, c := g.Rows()-1, g.Cols()-1
	return [4]Point{g[0][0], g[0][c], g[r][0], g[r][c]}
}
