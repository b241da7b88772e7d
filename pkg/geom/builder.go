package geom

// Builder accumulates primitives into one flat vertex buffer. Recursive
// generators share a single Builder so that deep recursion appends in place
// instead of concatenating per-call slices.
type Builder struct {
	mesh Mesh
}

// NewBuilder returns a builder for the given topology with room for
// capacity vertices.
func NewBuilder(t Topology, capacity int) *Builder {
	if capacity < 0 {
		capacity = 0
	}
	return &Builder{mesh: Mesh{
		Topology:  t,
		Positions: make([]Point, 0, capacity),
		Colors:    make([]Color, 0, capacity),
	}}
}

// Triangle appends one flat-colored triangle.
func (b *Builder) Triangle(p0, p1, p2 Point, c Color) {
	b.mesh.Positions = append(b.mesh.Positions, p0, p1, p2)
	b.mesh.Colors = append(b.mesh.Colors, c, c, c)
}

// Quad appends the quad p0-p1-p2-p3 as the triangles (p0,p1,p2) and
// (p0,p2,p3).
func (b *Builder) Quad(p0, p1, p2, p3 Point, c Color) {
	b.Triangle(p0, p1, p2, c)
	b.Triangle(p0, p2, p3, c)
}

// Segment appends one line segment.
func (b *Builder) Segment(p0, p1 Point, c Color) {
	b.mesh.Positions = append(b.mesh.Positions, p0, p1)
	b.mesh.Colors = append(b.mesh.Colors, c, c)
}

// Vertex appends a single vertex, for strips and point clouds.
func (b *Builder) Vertex(p Point, c Color) {
	b.mesh.Positions = append(b.mesh.Positions, p)
	b.mesh.Colors = append(b.mesh.Colors, c)
}

// Len returns the number of vertices written so far.
func (b *Builder) Len() int {
	return len(b.mesh.Positions)
}

// Mesh returns the accumulated mesh. The builder must not be used afterwards.
func (b *Builder) Mesh(name string) *Mesh {
	m := b.mesh
	m.Name = name
	b.mesh = Mesh{}
	return &m
}
