package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/curvekit/pkg/fractal"
	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/surface"
)

func triangle(c geom.Color) *geom.Mesh {
	b := geom.NewBuilder(geom.Triangles, 3)
	b.Triangle(geom.Pt(-0.5, -0.5), geom.Pt(0.5, -0.5), geom.Pt(0, 0.5), c)
	return b.Mesh("tri")
}

func line() *geom.Mesh {
	return &geom.Mesh{Name: "line", Topology: geom.LineStrip, Positions: []geom.Point{geom.Pt(-1, -1), geom.Pt(1, 1)}}
}

func TestTrianglesSkipsNonTriangleMeshes(t *testing.T) {
	a, b, c := fractal.SierpinskiCorners[0], fractal.SierpinskiCorners[1], fractal.SierpinskiCorners[2]
	tris := Triangles([]*geom.Mesh{fractal.Sierpinski(a, b, c, 2, fractal.Options{}), line()})
	require.Len(t, tris, 9)
	assert.InDelta(t, float64(a.X()), tris[0][0].X, 1e-6)
}

func TestWriteSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.stl")
	sphere := surface.Sphere(1, 6, 8)
	require.NoError(t, WriteSTL(path, []*geom.Mesh{sphere, line()}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	// Binary STL: 80 byte header, triangle count, 50 bytes per triangle.
	assert.Equal(t, int64(84+50*sphere.PrimitiveCount()), info.Size())
}

func TestWriteSTLNoTriangles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.stl")
	assert.ErrorIs(t, WriteSTL(path, []*geom.Mesh{line()}), ErrNoTriangles)
	assert.ErrorIs(t, WriteSTL(path, nil), ErrNoTriangles)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing should be written")
}

func TestBounds(t *testing.T) {
	box := Bounds([]*geom.Mesh{surface.Sphere(2, 8, 8), line(), {}})
	assert.InDelta(t, -2, box.Min.X, 1e-4)
	assert.InDelta(t, 2, box.Max.Y, 1e-4)
	assert.InDelta(t, 2, box.Max.Z, 1e-4)

	assert.Zero(t, Bounds(nil))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []*geom.Mesh{triangle(geom.Red), line()}))
	assert.NotContains(t, buf.String(), "null")

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Meshes, 2)
	assert.Equal(t, "tri", doc.Meshes[0].Name)
	assert.Equal(t, "triangles", doc.Meshes[0].Topology)
	assert.Len(t, doc.Meshes[0].Positions, 9)
	assert.Equal(t, []float32{1, 0, 0}, doc.Meshes[0].Colors[:3])
	assert.Equal(t, "line-strip", doc.Meshes[1].Topology)
	assert.Empty(t, doc.Meshes[1].Colors)
}

func rgb(c *Canvas, x, y int) (r, g, b uint32) {
	r, g, b, _ = c.Image().At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestCanvasFillsTriangles(t *testing.T) {
	c := Preview([]*geom.Mesh{triangle(geom.Red)}, 64, 64)

	r, g, b := rgb(c, 32, 40)
	assert.Equal(t, [3]uint32{255, 0, 0}, [3]uint32{r, g, b}, "inside the triangle")

	r, g, b = rgb(c, 2, 2)
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b}, "background stays black")
}

func TestCanvasDrawsPoints(t *testing.T) {
	m := &geom.Mesh{Topology: geom.Points, Positions: []geom.Point{geom.Pt(0, 0)}}
	m.Fill(geom.Green)
	c := Preview([]*geom.Mesh{m}, 64, 64)
	_, g, _ := rgb(c, 32, 32)
	assert.Equal(t, uint32(255), g)
}

func TestCanvasPNG(t *testing.T) {
	c := Preview([]*geom.Mesh{triangle(geom.Blue), line()}, 32, 16)
	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "\x89PNG"))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, c.SavePNG(path))
	_, err := os.Stat(path)
	assert.NoError(t, err)

	assert.Equal(t, 32, c.Image().Bounds().Dx())
	assert.Equal(t, 16, c.Image().Bounds().Dy())
}
