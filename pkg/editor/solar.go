package editor

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/surface"
)

// Solar system layout in normalized device units.
const (
	SunRadius    float32 = 0.2
	PlanetRadius float32 = 0.08
	MoonRadius   float32 = 0.03
	PlanetOrbit  float32 = 0.6
	MoonOrbit    float32 = 0.15
)

// Angular rates in radians per second.
const (
	sunSpin    float32 = 0.2
	planetYear float32 = 0.5
	planetSpin float32 = 2
	moonMonth  float32 = 3
)

const (
	sphereStacks = 12
	sphereSlices = 18
)

var (
	sunColor    = geom.MustParsePalette("#F1C40F")[0]
	planetColor = geom.MustParsePalette("#3498DB")[0]
	moonColor   = geom.MustParsePalette("#BDC3C7")[0]
)

// View3D tilts the orbital plane toward the viewer so orbits project to
// ellipses in normalized device coordinates.
var View3D = mgl32.HomogRotate3DX(mgl32.DegToRad(25))

// SolarTransforms returns the world matrices of the sun, the planet and the
// moon at time t seconds. Each body composes world = parent · local: the
// planet frame orbits the sun and the moon frame orbits the planet frame.
// Spin and size are applied last and do not propagate to children.
func SolarTransforms(t float32) (sun, planet, moon mgl32.Mat4) {
	sunFrame := mgl32.Ident4()
	sun = sunFrame.Mul4(mgl32.HomogRotate3DY(t * sunSpin))

	planetFrame := sunFrame.
		Mul4(mgl32.HomogRotate3DY(t * planetYear)).
		Mul4(mgl32.Translate3D(PlanetOrbit, 0, 0))
	planet = planetFrame.Mul4(mgl32.HomogRotate3DY(t * planetSpin))

	moonFrame := planetFrame.
		Mul4(mgl32.HomogRotate3DY(t * moonMonth)).
		Mul4(mgl32.Translate3D(MoonOrbit, 0, 0))
	moon = moonFrame
	return sun, planet, moon
}

// SolarSystem returns the three bodies at time t, transformed by View3D.
func SolarSystem(t float32) []*geom.Mesh {
	sun, planet, moon := SolarTransforms(t)
	bodies := []struct {
		name   string
		radius float32
		color  geom.Color
		world  mgl32.Mat4
	}{
		{"sun", SunRadius, sunColor, sun},
		{"planet", PlanetRadius, planetColor, planet},
		{"moon", MoonRadius, moonColor, moon},
	}
	meshes := make([]*geom.Mesh, 0, len(bodies))
	for _, b := range bodies {
		m := surface.Sphere(b.radius, sphereStacks, sphereSlices, surface.WithName(b.name), surface.WithColor(b.color))
		meshes = append(meshes, m.Transform(View3D.Mul4(b.world)))
	}
	return meshes
}
