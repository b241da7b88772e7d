package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chazu/curvekit/pkg/geom"
)

func TestNearest(t *testing.T) {
	pts := []geom.Point{geom.Pt(-0.5, -0.5), geom.Pt(0.5, -0.5), geom.Pt(0.5, 0.5)}

	tests := []struct {
		name string
		q    geom.Point
		want int
	}{
		{"coincident first", pts[0], 0},
		{"coincident last", pts[2], 2},
		{"close to second", geom.Pt(0.45, -0.4), 1},
		{"far from all", geom.Pt(0, 0), NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nearest(tt.q, pts, DefaultThreshold))
		})
	}
}

func TestNearestThresholdIsStrict(t *testing.T) {
	pts := []geom.Point{geom.Pt(0.5, 0.5)}
	assert.Equal(t, NotFound, Nearest(geom.Pt(0.5, 0.75), pts, 0.25))
	assert.Equal(t, 0, Nearest(geom.Pt(0.5, 0.75), pts, 0.2500001))
}

func TestNearestTieKeepsFirst(t *testing.T) {
	pts := []geom.Point{geom.Pt(0.1, 0), geom.Pt(-0.1, 0), geom.Pt(0.1, 0)}
	assert.Equal(t, 0, Nearest(geom.Pt(0, 0), pts, DefaultThreshold))
}

func TestNearestEmpty(t *testing.T) {
	assert.Equal(t, NotFound, Nearest(geom.Pt(0, 0), nil, DefaultThreshold))
	assert.Equal(t, NotFound, Nearest(geom.Pt(0, 0), []geom.Point{geom.Pt(0, 0)}, 0))
}

func TestPixelToNDC(t *testing.T) {
	const eps = 1e-6
	p := PixelToNDC(399.5, 399.5, 800, 800)
	assert.InDelta(t, 0, p.X(), eps)
	assert.InDelta(t, 0, p.Y(), eps)

	tl := PixelToNDC(0, 0, 800, 600)
	assert.InDelta(t, -1+1.0/800, tl.X(), eps)
	assert.InDelta(t, 1-1.0/600, tl.Y(), eps)

	br := PixelToNDC(799, 599, 800, 600)
	assert.InDelta(t, 1-1.0/800, br.X(), eps)
	assert.InDelta(t, -1+1.0/600, br.Y(), eps)

	assert.Equal(t, geom.Point{}, PixelToNDC(10, 10, 0, 600))
}
