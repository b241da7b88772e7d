// Package config holds the tunable parameters of curvekit and loads them
// from TOML files layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every validation failure returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config is the root configuration document.
type Config struct {
	Window   Window   `toml:"window"`
	Geometry Geometry `toml:"geometry"`
	Pick     Pick     `toml:"pick"`
	Engine   Engine   `toml:"engine"`
}

// Window describes the pixel size of the drawing surface. It is used to map
// cursor positions into normalized device coordinates and to size previews.
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Geometry holds generator parameters.
type Geometry struct {
	Segments        int      `toml:"segments"`         // Bézier samples per curve
	ChaikinIters    int      `toml:"chaikin_iters"`    // corner-cutting passes
	SurfaceDegree   int      `toml:"surface_degree"`   // tensor B-spline degree
	SurfaceResU     int      `toml:"surface_res_u"`    // samples along u
	SurfaceResV     int      `toml:"surface_res_v"`    // samples along v
	RevolveSlices   int      `toml:"revolve_slices"`   // angular slices
	MaxFractalDepth int      `toml:"max_fractal_depth"`
	Palette         []string `toml:"palette"` // hex colors, indexed by depth mod len
}

// Pick configures nearest-point queries.
type Pick struct {
	Threshold float32 `toml:"threshold"` // NDC distance
}

// Engine configures the scripting engine.
type Engine struct {
	TimeoutSeconds float64 `toml:"timeout_seconds"`
}

// Timeout returns the evaluation timeout as a duration.
func (e Engine) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds * float64(time.Second))
}

// DefaultPalette is the fractal palette used when none is configured.
var DefaultPalette = []string{
	"#E74C3C", "#E67E22", "#F1C40F", "#2ECC71",
	"#1ABC9C", "#3498DB", "#9B59B6", "#34495E",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 800},
		Geometry: Geometry{
			Segments:        100,
			ChaikinIters:    4,
			SurfaceDegree:   3,
			SurfaceResU:     20,
			SurfaceResV:     20,
			RevolveSlices:   36,
			MaxFractalDepth: 10,
			Palette:         append([]string(nil), DefaultPalette...),
		},
		Pick:   Pick{Threshold: 0.2},
		Engine: Engine{TimeoutSeconds: 5},
	}
}

// Load reads a TOML file and overlays it on Default. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals TOML data into cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return cfg.Validate()
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	g := c.Geometry
	if g.Segments < 1 {
		errs = append(errs, fmt.Errorf("%w: segments %d must be >= 1", ErrInvalid, g.Segments))
	}
	if g.ChaikinIters < 0 {
		errs = append(errs, fmt.Errorf("%w: chaikin_iters %d must be >= 0", ErrInvalid, g.ChaikinIters))
	}
	if g.SurfaceDegree < 1 {
		errs = append(errs, fmt.Errorf("%w: surface_degree %d must be >= 1", ErrInvalid, g.SurfaceDegree))
	}
	if g.SurfaceResU < 1 || g.SurfaceResV < 1 {
		errs = append(errs, fmt.Errorf("%w: surface resolution %dx%d must be positive", ErrInvalid, g.SurfaceResU, g.SurfaceResV))
	}
	if g.RevolveSlices < 1 {
		errs = append(errs, fmt.Errorf("%w: revolve_slices %d must be >= 1", ErrInvalid, g.RevolveSlices))
	}
	if g.MaxFractalDepth < 0 {
		errs = append(errs, fmt.Errorf("%w: max_fractal_depth %d must be >= 0", ErrInvalid, g.MaxFractalDepth))
	}
	if len(g.Palette) == 0 {
		errs = append(errs, fmt.Errorf("%w: palette must not be empty", ErrInvalid))
	}
	if c.Pick.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("%w: pick threshold %g must be positive", ErrInvalid, c.Pick.Threshold))
	}
	if c.Engine.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("%w: engine timeout %gs must be positive", ErrInvalid, c.Engine.TimeoutSeconds))
	}
	return errors.Join(errs...)
}
