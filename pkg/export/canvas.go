package export

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/chazu/curvekit/pkg/editor"
	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/logging"
)

// Canvas rasterizes uploaded vertices into an image. Positions are read as
// normalized device coordinates; z is ignored and primitives are painted in
// draw order.
type Canvas struct {
	dc        *gg.Context
	w, h      int
	positions []geom.Point
	colors    []geom.Color

	LineWidth float64 // pixels
	PointSize float64 // dot radius in pixels
}

var _ editor.VertexBuffer = (*Canvas)(nil)

// NewCanvas returns a width x height canvas cleared to black.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		dc:        gg.NewContext(width, height),
		w:         width,
		h:         height,
		LineWidth: 1.5,
		PointSize: 5,
	}
	c.Clear(geom.Black)
	return c
}

// Clear fills the canvas with bg.
func (c *Canvas) Clear(bg geom.Color) {
	c.setColor(bg)
	c.dc.Clear()
}

// SetPositions implements editor.VertexBuffer.
func (c *Canvas) SetPositions(p []geom.Point) { c.positions = p }

// SetColors implements editor.VertexBuffer.
func (c *Canvas) SetColors(col []geom.Color) { c.colors = col }

// SetTexCoords implements editor.VertexBuffer. The canvas does not texture.
func (c *Canvas) SetTexCoords([]geom.TexCoord) {}

// Draw implements editor.VertexBuffer.
func (c *Canvas) Draw(t geom.Topology) {
	pts := c.positions
	switch t {
	case geom.Triangles:
		for i := 0; i+2 < len(pts); i += 3 {
			c.setColor(c.average(i, 3))
			c.dc.MoveTo(c.pixel(pts[i]))
			c.dc.LineTo(c.pixel(pts[i+1]))
			c.dc.LineTo(c.pixel(pts[i+2]))
			c.dc.ClosePath()
			c.dc.Fill()
		}
	case geom.Lines:
		c.dc.SetLineWidth(c.LineWidth)
		for i := 0; i+1 < len(pts); i += 2 {
			c.segment(i, i+1)
		}
	case geom.LineStrip:
		c.dc.SetLineWidth(c.LineWidth)
		for i := 0; i+1 < len(pts); i++ {
			c.segment(i, i+1)
		}
	case geom.Points:
		for i, p := range pts {
			c.setColor(c.color(i))
			x, y := c.pixel(p)
			c.dc.DrawPoint(x, y, c.PointSize)
			c.dc.Fill()
		}
	}
}

func (c *Canvas) segment(i, j int) {
	c.setColor(c.color(i))
	c.dc.MoveTo(c.pixel(c.positions[i]))
	c.dc.LineTo(c.pixel(c.positions[j]))
	c.dc.Stroke()
}

// pixel maps NDC to pixel coordinates, y down.
func (c *Canvas) pixel(p geom.Point) (float64, float64) {
	x := (float64(p.X()) + 1) / 2 * float64(c.w)
	y := (1 - float64(p.Y())) / 2 * float64(c.h)
	return x, y
}

// color returns vertex i's color, white when colors are missing.
func (c *Canvas) color(i int) geom.Color {
	if i < len(c.colors) {
		return c.colors[i]
	}
	return geom.White
}

func (c *Canvas) average(i, n int) geom.Color {
	var sum geom.Color
	for k := i; k < i+n; k++ {
		sum = sum.Add(c.color(k))
	}
	return sum.Mul(1 / float32(n))
}

func (c *Canvas) setColor(col geom.Color) {
	c.dc.SetRGB(float64(col[0]), float64(col[1]), float64(col[2]))
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("export: save png %s: %w", path, err)
	}
	logging.With("export").Debug("wrote png", "path", path, "width", c.w, "height", c.h)
	return nil
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// Preview renders meshes onto a new width x height canvas.
func Preview(meshes []*geom.Mesh, width, height int) *Canvas {
	c := NewCanvas(width, height)
	editor.Render(c, meshes)
	return c
}
