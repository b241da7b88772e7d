// Package scene defines the scene description graph for curvekit.
// A scene is an immutable DAG of curves, surfaces, fractals, transforms
// and groups produced by script evaluation and consumed by the
// tessellator.
package scene
