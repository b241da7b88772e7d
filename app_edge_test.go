package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// 1. Empty editor: empty string -> 0 meshes, 0 errors, non-nil slices.
// ---------------------------------------------------------------------------

func TestE2EEmptySourceExtended(t *testing.T) {
	app := newTestApp()
	result := app.Evaluate("")

	if len(result.Warnings) != 0 {
		t.Errorf("expected 0 warnings for empty source, got %d", len(result.Warnings))
	}
	// Ensure slices are non-nil (JSON should serialize as [] not null).
	if result.Meshes == nil {
		t.Error("Meshes should be non-nil empty slice, got nil")
	}
	if result.Errors == nil {
		t.Error("Errors should be non-nil empty slice, got nil")
	}
	if result.Warnings == nil {
		t.Error("Warnings should be non-nil empty slice, got nil")
	}

	out, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "null") {
		t.Errorf("empty result should not serialize nulls: %s", out)
	}
}

// ---------------------------------------------------------------------------
// 2. Syntax error after valid code: error has a message, no meshes.
// ---------------------------------------------------------------------------

func TestE2ESyntaxErrorWithLineInfo(t *testing.T) {
	app := newTestApp()

	// Put valid code on line 1, broken code on line 2 so line info is meaningful.
	source := "(+ 1 2)\n(bezier :name \"test\""
	result := app.Evaluate(source)

	if len(result.Errors) == 0 {
		t.Fatal("expected at least one eval error for unmatched parens")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes on syntax error, got %d", len(result.Meshes))
	}
	if e := result.Errors[0]; e.Message == "" {
		t.Error("syntax error should have a non-empty message")
	}
}

// ---------------------------------------------------------------------------
// 3. Reference errors: unknown names and functions are eval errors.
// ---------------------------------------------------------------------------

func TestE2EUndefinedRef(t *testing.T) {
	app := newTestApp()
	result := app.Evaluate(`(group "g" (ref "missing"))`)

	if len(result.Errors) == 0 {
		t.Fatal("expected an eval error for an unknown ref")
	}
	if !strings.Contains(result.Errors[0].Message, "missing") {
		t.Errorf("error should name the missing node, got %q", result.Errors[0].Message)
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes, got %d", len(result.Meshes))
	}
}

func TestE2EUndefinedFunction(t *testing.T) {
	app := newTestApp()
	result := app.Evaluate(`(teapot :size 3)`)

	if len(result.Errors) == 0 {
		t.Fatal("expected an eval error for an undefined function")
	}
}

// ---------------------------------------------------------------------------
// 4. Validation: failing parameters block tessellation, advisories do not.
// ---------------------------------------------------------------------------

func TestE2EValidationError(t *testing.T) {
	app := newTestApp()
	source := `
(group "g"
  (koch :name "flake" :depth 2)
  (place (sierpinski :name "tri") :scale -1))
`
	result := app.Evaluate(source)

	if len(result.Errors) == 0 {
		t.Fatal("expected a validation error for a negative scale")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e.Message, "scale") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error about the scale, got %v", result.Errors)
	}
	if len(result.Meshes) != 0 {
		t.Errorf("validation errors must suppress meshes, got %d", len(result.Meshes))
	}
}

func TestE2EWarningsStillRender(t *testing.T) {
	app := newTestApp()
	source := `
(group "g"
  (bezier :name "lonely" (pt 0 0))
  (bspline :name "curve" (pt 0 0) (pt 1 0) (pt 1 1)))
`
	result := evaluateClean(t, app, source)

	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for a one-point bezier")
	}
	if !strings.Contains(result.Warnings[0].Message, "control points") {
		t.Errorf("unexpected warning: %q", result.Warnings[0].Message)
	}
	// The degenerate curve draws nothing; the spline still renders.
	if len(result.Meshes) != 1 || result.Meshes[0].PartName != "curve" {
		t.Errorf("expected only the spline mesh, got %d meshes", len(result.Meshes))
	}
}

func TestE2EOrphanWarning(t *testing.T) {
	app := newTestApp()
	source := `
(koch :name "stray" :depth 1)
(group "g" (dragon :name "d" :depth 2))
`
	result := evaluateClean(t, app, source)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w.Message, "stray") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an orphan warning for \"stray\", got %v", result.Warnings)
	}
	if len(result.Meshes) != 1 {
		t.Errorf("only the grouped node should render, got %d meshes", len(result.Meshes))
	}
}

// ---------------------------------------------------------------------------
// 5. Rapid evaluation (debounce simulation): no panics, engine recovers.
// ---------------------------------------------------------------------------

func TestE2ERapidEvaluationAlternating(t *testing.T) {
	// Alternates between valid and invalid sources rapidly.
	// Ensures the engine recovers cleanly between error and success states.
	//
	// Calls are sequential because zygomys has internal global state that is
	// not safe for concurrent sandbox creation.
	app := newTestApp()

	sources := []string{
		`(koch :name "ok" :depth 2)`,
		`(bezier :name "broken"`,
		``,
		`(ref "missing")`,
		`(dragon :name "also-ok" :depth 3)`,
		`(+ 1 2)`,
		`;; just a comment`,
		`(bspline :name "fine" (pt 0 0) (pt 1 0) (pt 1 1))`,
		`(undefined-func 1 2 3)`,
		`(pythagoras :name "last" :depth 2)`,
	}

	for i, source := range sources {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("iteration %d panicked on source %q: %v", i, source, r)
				}
			}()
			app.Evaluate(source)
		}()
	}

	result := evaluateClean(t, app, `(sierpinski :name "after" :depth 1)`)
	if len(result.Meshes) != 1 {
		t.Errorf("expected 1 mesh after the burst, got %d", len(result.Meshes))
	}
}

// ---------------------------------------------------------------------------
// 6. Comments, arithmetic and the palette.
// ---------------------------------------------------------------------------

func TestE2ECommentsOnly(t *testing.T) {
	app := newTestApp()
	result := evaluateClean(t, app, ";; nothing here\n; or here\n")
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes, got %d", len(result.Meshes))
	}
}

func TestE2EArithmeticParameters(t *testing.T) {
	app := newTestApp()
	source := `
(def base 2)
(def n (* base 3))
(bezier :name "c" :samples (* n 10) (pt 0 0) (pt (/ 1.0 2) 1) (pt 1 0))
`
	result := evaluateClean(t, app, source)
	if len(result.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(result.Meshes))
	}
	if got := len(result.Meshes[0].Positions) / 3; got != 61 {
		t.Errorf("expected 61 samples, got %d", got)
	}
}

func TestE2EColorPaletteWrapping(t *testing.T) {
	app := newTestApp()

	// Create more nodes than the palette has colors to ensure wrapping works.
	var b strings.Builder
	b.WriteString("(group \"many\"\n")
	for i := 0; i < len(colorPalette)+1; i++ {
		fmt.Fprintf(&b, "  (place (koch :name \"k%d\" :depth 1) :at (pt %d 0))\n", i, i)
	}
	b.WriteString(")\n")

	result := evaluateClean(t, app, b.String())
	if len(result.Meshes) != len(colorPalette)+1 {
		t.Fatalf("expected %d meshes, got %d", len(colorPalette)+1, len(result.Meshes))
	}
	for i, m := range result.Meshes {
		if want := colorPalette[i%len(colorPalette)]; m.Color != want {
			t.Errorf("mesh %q: expected color %s, got %s", m.PartName, want, m.Color)
		}
	}
	if result.Meshes[0].Color != result.Meshes[len(colorPalette)].Color {
		t.Error("the palette should wrap around")
	}
}

func TestE2EAnonymousNodesAreLabelled(t *testing.T) {
	app := newTestApp()
	result := evaluateClean(t, app, `(group "g" (koch :depth 1) (dragon :depth 1))`)
	if len(result.Meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(result.Meshes))
	}
	for _, m := range result.Meshes {
		if m.PartName == "" {
			t.Error("anonymous nodes should still carry a label")
		}
	}
	if result.Meshes[0].PartName == result.Meshes[1].PartName {
		t.Errorf("labels should be distinct, both are %q", result.Meshes[0].PartName)
	}
}

// ---------------------------------------------------------------------------
// 7. Output limits: oversized resolutions fail before tessellation.
// ---------------------------------------------------------------------------

func TestE2EOversizedSurfaceRejected(t *testing.T) {
	app := newTestApp()
	source := `
(surface :name "huge" :res-u 100000 :res-v 100000
  (row (pt 0 0 0) (pt 1 0 0))
  (row (pt 0 1 0) (pt 1 1 0)))
`
	result := app.Evaluate(source)

	if len(result.Errors) == 0 {
		t.Fatal("expected a validation error for a 10^10 sample surface")
	}
	if !strings.Contains(result.Errors[0].Message, "vertex limit") {
		t.Errorf("unexpected error: %q", result.Errors[0].Message)
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes, got %d", len(result.Meshes))
	}
}
