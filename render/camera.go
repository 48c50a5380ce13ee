package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"glbviewer/interaction"
)

// Lens is the perspective projection.
type Lens struct {
	Fov    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32
}

var DefaultLens = Lens{Fov: 45, Aspect: 800.0 / 600.0, Near: 0.1, Far: 3000}

func (l Lens) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(l.Fov), l.Aspect, l.Near, l.Far)
}

type Camera struct {
	Eye        mgl32.Vec3
	View       mgl32.Mat4
	Model      mgl32.Mat4
	Projection mgl32.Mat4
}

// NewCamera derives the frame transforms. The eye sits on +Z at the orbit
// distance looking at the origin; the model turns about X by pitch first,
// then about Y by yaw.
func NewCamera(state *interaction.State, lens Lens) Camera {
	eye := mgl32.Vec3{0, 0, state.Distance()}
	model := mgl32.Ident4().
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(state.Pitch()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(state.Yaw())))
	return Camera{
		Eye:        eye,
		View:       mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
		Model:      model,
		Projection: lens.Projection(),
	}
}
