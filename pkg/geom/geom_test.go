package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func TestControlPointsEditing(t *testing.T) {
	cp := NewControlPoints(Pt(0, 0), Pt(1, 0))
	cp.Append(Pt(2, 0))
	require.Equal(t, 3, cp.Len())

	assert.True(t, cp.ReplaceAt(1, Pt(1, 1)))
	p, ok := cp.At(1)
	require.True(t, ok)
	assert.Equal(t, Pt(1, 1), p)

	assert.True(t, cp.RemoveAt(0))
	assert.Equal(t, []Point{Pt(1, 1), Pt(2, 0)}, cp.Points())

	assert.False(t, cp.RemoveAt(5))
	assert.False(t, cp.RemoveAt(-1))
	assert.False(t, cp.ReplaceAt(2, Pt(9, 9)))
	assert.Equal(t, 2, cp.Len())

	cp.Clear()
	assert.Equal(t, 0, cp.Len())
}

func TestControlPointsCopiesAreIndependent(t *testing.T) {
	src := []Point{Pt(0, 0), Pt(1, 1)}
	cp := NewControlPoints(src...)
	src[0] = Pt(5, 5)
	out := cp.Points()
	out[1] = Pt(7, 7)

	assert.Equal(t, []Point{Pt(0, 0), Pt(1, 1)}, cp.Points())
}

func TestGrid(t *testing.T) {
	g := NewGrid(2, 3)
	require.True(t, g.IsRectangular())
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	g[1][2] = Pt(4, 4)
	c := g.Corners()
	assert.Equal(t, Pt(4, 4), c[3])

	assert.Nil(t, NewGrid(0, 3))
	assert.False(t, Grid{}.IsRectangular())
	assert.False(t, Grid{{Pt(0, 0)}, {}}.IsRectangular())
}

func TestLerpAndRotate(t *testing.T) {
	assert.True(t, ApproxEqual(Pt(0.25, 0.5), Lerp(Pt(0, 0), Pt(1, 2), 0.25), eps))
	r := Rotate2D(Pt3(1, 0, 3), mgl32.DegToRad(90))
	assert.True(t, ApproxEqual(Pt3(0, 1, 3), r, eps), "got %v", r)
	assert.InDelta(t, 5, Distance(Pt(0, 0), Pt(3, 4)), eps)
}

func TestApproxEqualIsAbsolute(t *testing.T) {
	assert.True(t, ApproxEqual(Pt(-4.37e-8, 1), Pt(0, 1), 1e-6), "near-zero components")
	assert.True(t, ApproxEqual(Pt3(0, 0, 0), Pt3(1e-3, -1e-3, 0), 1e-3), "the bound is inclusive")
	assert.False(t, ApproxEqual(Pt(1000, 0), Pt(1000.5, 0), 1e-3), "large magnitudes")
	assert.False(t, ApproxEqual(Pt3(0, 0, 0), Pt3(0, 0, 0.1), 1e-3), "z counts")
}

func TestMeshCounts(t *testing.T) {
	tests := []struct {
		topology Topology
		verts    int
		want     int
	}{
		{Triangles, 9, 3},
		{Lines, 8, 4},
		{LineStrip, 5, 4},
		{LineStrip, 1, 0},
		{Points, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.topology.String(), func(t *testing.T) {
			m := &Mesh{Topology: tt.topology, Positions: make([]Point, tt.verts)}
			assert.Equal(t, tt.want, m.PrimitiveCount())
		})
	}
}

func TestMeshAppendPadsAttributes(t *testing.T) {
	a := &Mesh{Topology: Triangles, Positions: []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}}
	b := &Mesh{
		Topology:  Triangles,
		Positions: []Point{Pt(2, 0), Pt(3, 0), Pt(2, 1)},
		Colors:    []Color{Red, Red, Red},
	}
	require.NoError(t, a.Append(b))
	assert.Equal(t, 6, a.VertexCount())
	require.Len(t, a.Colors, 6)
	assert.Equal(t, Color{}, a.Colors[0])
	assert.Equal(t, Red, a.Colors[5])
	assert.Empty(t, a.TexCoords)

	lines := &Mesh{Topology: Lines, Positions: []Point{Pt(0, 0), Pt(1, 1)}}
	assert.Error(t, a.Append(lines))
}

func TestMeshAppendToEmptyAdoptsTopology(t *testing.T) {
	var m Mesh
	require.NoError(t, m.Append(&Mesh{Topology: Lines, Positions: []Point{Pt(0, 0), Pt(1, 1)}}))
	assert.Equal(t, Lines, m.Topology)
}

func TestMeshTransformAndBounds(t *testing.T) {
	m := &Mesh{Topology: Triangles, Positions: []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}}
	moved := m.Transform(mgl32.Translate3D(2, 3, 0))

	lo, hi, ok := moved.Bounds()
	require.True(t, ok)
	assert.True(t, ApproxEqual(Pt(2, 3), lo, eps))
	assert.True(t, ApproxEqual(Pt(3, 4), hi, eps))
	assert.Equal(t, Pt(0, 0), m.Positions[0], "source mesh untouched")

	_, _, ok = (&Mesh{}).Bounds()
	assert.False(t, ok)
}

func TestMeshFlatten(t *testing.T) {
	m := &Mesh{
		Positions: []Point{Pt3(1, 2, 3), Pt3(4, 5, 6)},
		TexCoords: []TexCoord{{0, 1}, {1, 0}},
	}
	m.Fill(Blue)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, m.Flatten())
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1}, m.FlattenColors())
	assert.Equal(t, []float32{0, 1, 1, 0}, m.FlattenTexCoords())
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(Triangles, 0)
	b.Quad(Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1), Green)
	b.Triangle(Pt(0, 0), Pt(1, 0), Pt(0, 1), Red)
	m := b.Mesh("quad")

	assert.Equal(t, "quad", m.Name)
	assert.Equal(t, 9, m.VertexCount())
	assert.Equal(t, 3, m.PrimitiveCount())
	assert.Len(t, m.Colors, 9)
	assert.Equal(t, Red, m.Colors[8])
}

func TestPaletteAt(t *testing.T) {
	p := Palette{Red, Green, Blue}
	assert.Equal(t, Red, p.At(0))
	assert.Equal(t, Blue, p.At(2))
	assert.Equal(t, Red, p.At(3))
	assert.Equal(t, Blue, p.At(-1))
	assert.Equal(t, White, Palette(nil).At(4))
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#ff0000", "#00FF00"})
	require.NoError(t, err)
	assert.True(t, ApproxEqual(Red, p[0], 1e-3))
	assert.True(t, ApproxEqual(Green, p[1], 1e-3))
	assert.Equal(t, "#ff0000", Hex(p[0]))

	_, err = ParsePalette([]string{"nope"})
	assert.Error(t, err)
}

func TestHueRamp(t *testing.T) {
	p := HueRamp(6, 1, 1)
	require.Len(t, p, 6)
	assert.True(t, ApproxEqual(Red, p[0], 1e-3))
	assert.Len(t, DefaultPalette, 8)
}
