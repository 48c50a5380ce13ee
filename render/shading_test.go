package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var headlight = mgl32.Vec3{0, 0, 5}

func TestSchlickEndpoints(t *testing.T) {
	assert.InDelta(t, 0.04, Schlick(1), 1e-6)
	assert.InDelta(t, 1.0, Schlick(0), 1e-6)
	assert.Less(t, Schlick(0.9), Schlick(0.2))
}

func TestAlphaClamp(t *testing.T) {
	assert.InDelta(t, 0.3, Alpha(1, 0), 1e-6)
	assert.InDelta(t, 0.95, Alpha(0, 1), 1e-6)
	// fixed glaze facing the viewer: (1-0.8) + 0.04*0.5
	assert.InDelta(t, 0.3, Alpha(0.8, 0.04), 1e-6)
	// grazing view thickens the edge
	assert.InDelta(t, 0.7, Alpha(0.8, 1), 1e-6)
}

func TestShadeFacingFragment(t *testing.T) {
	f := Fragment{Normal: mgl32.Vec3{0, 0, 1}, FrontFacing: true}
	c := Shade(f, headlight, headlight, AzureGlaze)

	// N·L = N·H = 1, fresnel = F0, spec = 1*0.04*4
	want := func(base float32) float32 {
		v := base*0.55 + base*1.8 + 0.16
		return v / (v + 1)
	}
	assert.InDelta(t, want(0.3), c[0], 1e-5)
	assert.InDelta(t, want(0.72), c[1], 1e-5)
	assert.InDelta(t, want(0.65), c[2], 1e-5)
	assert.InDelta(t, 0.3, c[3], 1e-5)
}

func TestShadeFlipsBackFaces(t *testing.T) {
	front := Shade(Fragment{Normal: mgl32.Vec3{0, 0, 1}, FrontFacing: true}, headlight, headlight, AzureGlaze)
	back := Shade(Fragment{Normal: mgl32.Vec3{0, 0, -1}, FrontFacing: false}, headlight, headlight, AzureGlaze)
	assert.True(t, front.ApproxEqualThreshold(back, 1e-6), "front %v back %v", front, back)
}

func TestShadeUnlitSideKeepsAmbient(t *testing.T) {
	// a front face pointing away from the light gets ambient only
	c := Shade(Fragment{Normal: mgl32.Vec3{0, 0, -1}, FrontFacing: true}, headlight, headlight, AzureGlaze)
	a := float32(0.3 * 0.55)
	assert.InDelta(t, a/(a+1), c[0], 1e-5)
	// N·V floors at 0.001, so fresnel is close to one
	assert.InDelta(t, 0.698, c[3], 1e-3)
}

func TestShadeStaysInGamut(t *testing.T) {
	m := Material{BaseColor: mgl32.Vec3{10, 10, 10}}
	for _, n := range []mgl32.Vec3{{0, 0, 1}, {0, 1, 1}, {1, 0, 0}, {0, -1, 0.2}} {
		c := Shade(Fragment{Position: mgl32.Vec3{0.1, 0.2, 0}, Normal: n, FrontFacing: true}, headlight, headlight, m)
		for i := 0; i < 3; i++ {
			assert.GreaterOrEqual(t, c[i], float32(0))
			assert.Less(t, c[i], float32(1))
		}
		assert.GreaterOrEqual(t, c[3], float32(0.3))
		assert.LessOrEqual(t, c[3], float32(0.95))
	}
}
