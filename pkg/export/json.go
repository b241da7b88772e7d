package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chazu/curvekit/pkg/geom"
)

// Record is the JSON form of one mesh. Attribute arrays are flat.
type Record struct {
	Name      string    `json:"name"`
	Topology  string    `json:"topology"`
	Positions []float32 `json:"positions"`
	Colors    []float32 `json:"colors"`
	TexCoords []float32 `json:"texCoords"`
}

// Document is the top-level JSON export.
type Document struct {
	Meshes []Record `json:"meshes"`
}

// NewDocument flattens meshes into a Document. Arrays are never nil so the
// output always carries [] rather than null.
func NewDocument(meshes []*geom.Mesh) Document {
	doc := Document{Meshes: make([]Record, 0, len(meshes))}
	for _, m := range meshes {
		doc.Meshes = append(doc.Meshes, Record{
			Name:      m.Name,
			Topology:  m.Topology.String(),
			Positions: m.Flatten(),
			Colors:    m.FlattenColors(),
			TexCoords: m.FlattenTexCoords(),
		})
	}
	return doc
}

// WriteJSON encodes meshes as an indented Document.
func WriteJSON(w io.Writer, meshes []*geom.Mesh) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(meshes)); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}
