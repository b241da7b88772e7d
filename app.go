package main

import (
	"context"

	"github.com/chazu/curvekit/pkg/config"
	"github.com/chazu/curvekit/pkg/engine"
	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/logging"
	"github.com/chazu/curvekit/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to meshes.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App runs scripts through the full pipeline: engine, validation and
// tessellation.
type App struct {
	engine *engine.Engine
	cfg    config.Config
}

// MeshData is the JSON-serializable mesh format handed to renderers.
type MeshData struct {
	Positions []float32 `json:"positions"`
	Colors    []float32 `json:"colors"`
	TexCoords []float32 `json:"texCoords"`
	Topology  string    `json:"topology"`
	PartName  string    `json:"partName"`
	Color     string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of evaluating a script.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with an engine configured from cfg.
func NewApp(cfg config.Config) *App {
	return &App{
		engine: engine.NewEngine(engine.WithTimeout(cfg.Engine.Timeout())),
		cfg:    cfg,
	}
}

// Evaluate takes Lisp source and returns mesh data + errors.
func (a *App) Evaluate(source string) EvalResult {
	result, _ := a.evaluate(context.Background(), source)
	return result
}

// evaluate is Evaluate that also returns the tessellated meshes for the
// exporters. The meshes are nil whenever result carries errors.
func (a *App) evaluate(ctx context.Context, source string) (EvalResult, []*geom.Mesh) {
	log := logging.With("app")
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate and validate the Lisp source into a scene.
	checked, err := a.engine.CheckContext(ctx, source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Error("evaluate fatal error", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result, nil
	}

	// Step 2: Convert warnings and errors to the result format.
	for _, w := range checked.Warnings {
		log.Debug("validation warning", "node", w.NodeID.Short(), "message", w.Message)
		result.Warnings = append(result.Warnings, EvalErrorData{
			Line:    w.Line,
			Col:     w.Col,
			Message: w.Message,
		})
	}
	if len(checked.Errors) > 0 {
		for _, e := range checked.Errors {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result, nil
	}

	// Step 3: Tessellate the scene into meshes.
	meshes, err := tessellate.Tessellate(checked.Scene, a.cfg.Geometry)
	if err != nil {
		log.Error("tessellate error", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result, nil
	}

	// Step 4: Convert meshes to the MeshData format.
	for i, m := range meshes {
		color := colorPalette[i%len(colorPalette)]
		result.Meshes = append(result.Meshes, MeshData{
			Positions: m.Flatten(),
			Colors:    m.FlattenColors(),
			TexCoords: m.FlattenTexCoords(),
			Topology:  m.Topology.String(),
			PartName:  m.Name,
			Color:     color,
		})
	}

	return result, meshes
}
