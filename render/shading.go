package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"glbviewer/common"
)

const (
	fresnelF0       = 0.04
	fresnelPower    = 4
	maxSpecPower    = 128
	specularGain    = 4
	diffuseGain     = 1.8
	ambientGain     = 0.55
	edgeOpacityGain = 0.5
	minAlpha        = 0.3
	maxAlpha        = 0.95
)

// Fragment is an interpolated surface sample in world space.
type Fragment struct {
	Position    mgl32.Vec3
	Normal      mgl32.Vec3
	FrontFacing bool
}

// Schlick approximates reflectance for the cosine between normal and view.
func Schlick(nDotV float32) float32 {
	return fresnelF0 + (1-fresnelF0)*math32.Pow(1-nDotV, fresnelPower)
}

// Alpha thickens the glaze toward grazing angles.
func Alpha(transmission, fresnel float32) float32 {
	return common.Clamp((1-transmission)+fresnel*edgeOpacityGain, minAlpha, maxAlpha)
}

// Shade evaluates the glaze for one fragment exactly as fragmentShader does
// on the GPU.
func Shade(f Fragment, lightPos, viewPos mgl32.Vec3, m Material) mgl32.Vec4 {
	n := f.Normal.Normalize()
	if !f.FrontFacing {
		n = n.Mul(-1)
	}
	l := lightPos.Sub(f.Position).Normalize()
	v := viewPos.Sub(f.Position).Normalize()
	h := l.Add(v).Normalize()

	nDotV := math32.Max(n.Dot(v), 0.001)
	fresnel := Schlick(nDotV)

	specPower := (1 - m.Roughness) * maxSpecPower
	spec := math32.Pow(math32.Max(n.Dot(h), 0), specPower) * fresnel * specularGain
	specular := mgl32.Vec3{spec, spec, spec}

	diff := math32.Max(n.Dot(l), 0)
	ambient := m.BaseColor.Mul(ambientGain)
	diffuse := m.BaseColor.Mul(diff * diffuseGain)

	c := ambient.Add(diffuse).Add(specular)
	c = mgl32.Vec3{tonemap(c[0]), tonemap(c[1]), tonemap(c[2])}
	return c.Vec4(Alpha(m.Transmission, fresnel))
}

// Reinhard
func tonemap(c float32) float32 {
	return c / (c + 1)
}
