package geom

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fixed colors used for control polygons and curves.
var (
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
)

// Palette is a fixed, finite list of colors indexed cyclically.
type Palette []Color

// At returns the color for a recursion level: palette[depth mod len].
// Negative depths wrap as well. An empty palette yields white.
func (p Palette) At(depth int) Color {
	if len(p) == 0 {
		return White
	}
	i := depth % len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// ParsePalette converts hex strings such as "#4A90D9" into a Palette.
func ParsePalette(hexes []string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("geom: palette entry %d: %w", i, err)
		}
		p = append(p, FromColorful(c))
	}
	return p, nil
}

// MustParsePalette is ParsePalette that panics on malformed input. It is
// meant for package-level defaults.
func MustParsePalette(hexes ...string) Palette {
	p, err := ParsePalette(hexes)
	if err != nil {
		panic(err)
	}
	return p
}

// HueRamp returns n colors evenly spaced around the HSV hue circle at the
// given saturation and value.
func HueRamp(n int, s, v float64) Palette {
	p := make(Palette, 0, n)
	for i := 0; i < n; i++ {
		p = append(p, FromColorful(colorful.Hsv(360*float64(i)/float64(n), s, v)))
	}
	return p
}

// FromColorful converts a go-colorful color to a Color, clamping to [0,1].
func FromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{float32(c.R), float32(c.G), float32(c.B)}
}

// Hex formats c as "#rrggbb".
func Hex(c Color) string {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Hex()
}

// DefaultPalette is the level palette used by the fractal generators when
// the caller does not supply one.
var DefaultPalette = MustParsePalette(
	"#E74C3C", "#E67E22", "#F1C40F", "#2ECC71",
	"#1ABC9C", "#3498DB", "#9B59B6", "#34495E",
)
