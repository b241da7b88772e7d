package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Topology says how consecutive vertices group into primitives.
type Topology int

const (
	Triangles Topology = iota // stride 3
	Lines                     // stride 2
	LineStrip                 // connected polyline
	Points                    // one primitive per vertex
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case LineStrip:
		return "line-strip"
	case Points:
		return "points"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Mesh is a flat vertex list ready for upload. There is no index buffer:
// shared corners are duplicated. Colors and TexCoords are either empty or
// exactly as long as Positions, matched 1:1.
type Mesh struct {
	Name      string     `json:"name"`
	Topology  Topology   `json:"topology"`
	Positions []Point    `json:"positions"`
	Colors    []Color    `json:"colors,omitempty"`
	TexCoords []TexCoord `json:"texCoords,omitempty"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// PrimitiveCount returns the number of triangles, segments or points the
// vertices form under the mesh topology.
func (m *Mesh) PrimitiveCount() int {
	n := len(m.Positions)
	switch m.Topology {
	case Triangles:
		return n / 3
	case Lines:
		return n / 2
	case LineStrip:
		if n < 2 {
			return 0
		}
		return n - 1
	default:
		return n
	}
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Append concatenates other onto m. Attribute lists stay aligned: if only one
// side carries colors or texcoords the other side is padded with zero values.
func (m *Mesh) Append(other *Mesh) error {
	if other.IsEmpty() {
		return nil
	}
	if !m.IsEmpty() && m.Topology != other.Topology {
		return fmt.Errorf("geom: cannot append %s mesh to %s mesh", other.Topology, m.Topology)
	}
	if m.IsEmpty() {
		m.Topology = other.Topology
	}
	n := len(m.Positions)
	m.Positions = append(m.Positions, other.Positions...)
	if len(m.Colors) > 0 || len(other.Colors) > 0 {
		m.Colors = padColors(m.Colors, n)
		m.Colors = append(m.Colors, padColors(other.Colors, len(other.Positions))...)
	}
	if len(m.TexCoords) > 0 || len(other.TexCoords) > 0 {
		m.TexCoords = padTexCoords(m.TexCoords, n)
		m.TexCoords = append(m.TexCoords, padTexCoords(other.TexCoords, len(other.Positions))...)
	}
	return nil
}

func padColors(c []Color, n int) []Color {
	for len(c) < n {
		c = append(c, Color{})
	}
	return c
}

func padTexCoords(t []TexCoord, n int) []TexCoord {
	for len(t) < n {
		t = append(t, TexCoord{})
	}
	return t
}

// Transform returns a copy of m with every position mapped through the
// homogeneous matrix xf.
func (m *Mesh) Transform(xf mgl32.Mat4) *Mesh {
	out := &Mesh{
		Name:      m.Name,
		Topology:  m.Topology,
		Positions: make([]Point, len(m.Positions)),
		Colors:    append([]Color(nil), m.Colors...),
		TexCoords: append([]TexCoord(nil), m.TexCoords...),
	}
	for i, p := range m.Positions {
		out.Positions[i] = mgl32.TransformCoordinate(p, xf)
	}
	return out
}

// Fill sets every vertex color to c.
func (m *Mesh) Fill(c Color) {
	m.Colors = make([]Color, len(m.Positions))
	for i := range m.Colors {
		m.Colors[i] = c
	}
}

// Flatten returns positions as [x0,y0,z0, x1,y1,z1, ...].
func (m *Mesh) Flatten() []float32 {
	return flatten3(m.Positions)
}

// FlattenColors returns colors as [r0,g0,b0, ...].
func (m *Mesh) FlattenColors() []float32 {
	return flatten3(m.Colors)
}

// FlattenTexCoords returns texcoords as [u0,v0, u1,v1, ...].
func (m *Mesh) FlattenTexCoords() []float32 {
	out := make([]float32, 0, len(m.TexCoords)*2)
	for _, t := range m.TexCoords {
		out = append(out, t[0], t[1])
	}
	return out
}

func flatten3(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the positions. ok is false
// for an empty mesh.
func (m *Mesh) Bounds() (min, max Point, ok bool) {
	if m.IsEmpty() {
		return Point{}, Point{}, false
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}
	return min, max, true
}
