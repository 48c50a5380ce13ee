package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"glbviewer/asset"
	"glbviewer/common"
)

type Material struct {
	BaseColor    mgl32.Vec3
	Roughness    float32
	Metallic     float32
	Transmission float32
}

// AzureGlaze is the translucent celadon glaze every primitive is shaded
// with unless per-primitive materials are enabled.
var AzureGlaze = Material{
	BaseColor:    mgl32.Vec3{0.3, 0.72, 0.65},
	Roughness:    0.15,
	Transmission: 0.8,
}

func materialOf(m asset.Material) Material {
	return Material{
		BaseColor:    common.Vec3(m.BaseColor),
		Roughness:    m.Roughness,
		Metallic:     m.Metallic,
		Transmission: m.Transmission,
	}
}
