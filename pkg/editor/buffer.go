package editor

import "github.com/chazu/curvekit/pkg/geom"

// VertexBuffer receives vertex attributes for one draw call. A GPU backed
// implementation copies them into device buffers; export.Canvas rasterizes
// them into an image.
type VertexBuffer interface {
	SetPositions([]geom.Point)
	SetColors([]geom.Color)
	SetTexCoords([]geom.TexCoord)
	// Draw renders the uploaded vertices with the given topology.
	Draw(geom.Topology)
}

// Upload pushes every attribute of m into vb. A mesh without texture
// coordinates uploads nil so no attribute outlives the mesh it came from.
func Upload(vb VertexBuffer, m *geom.Mesh) {
	vb.SetPositions(m.Positions)
	vb.SetColors(m.Colors)
	vb.SetTexCoords(m.TexCoords)
}

// Render uploads and draws every non-empty mesh in order.
func Render(vb VertexBuffer, meshes []*geom.Mesh) {
	for _, m := range meshes {
		if m.IsEmpty() {
			continue
		}
		Upload(vb, m)
		vb.Draw(m.Topology)
	}
}
