package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"glbviewer/config"
	"glbviewer/interaction"
)

type Face int

const (
	FaceFront Face = iota
	FaceBack
)

func (f Face) String() string {
	if f == FaceFront {
		return "front"
	}
	return "back"
}

// Device is the slice of GPU state the frame touches.
type Device interface {
	Clear(color mgl32.Vec4)
	UseProgram()
	SetTransforms(model, view, projection mgl32.Mat4)
	SetLight(lightPos, viewPos mgl32.Vec3)
	DepthMask(write bool)
	// CullFace discards the given face.
	CullFace(face Face)
	SetMaterial(m Material)
	Draw(p *Primitive)
}

type Options struct {
	Lens       Lens
	Material   Material
	ClearColor mgl32.Vec4
	// PerPrimitive shades each primitive with its own material instead of
	// Material.
	PerPrimitive bool
}

func DefaultOptions() Options {
	return Options{
		Lens:       DefaultLens,
		Material:   AzureGlaze,
		ClearColor: mgl32.Vec4{0.1, 0.1, 0.12, 1},
	}
}

func OptionsFromConfig(cfg *config.Config) Options {
	cam := cfg.Camera
	return Options{
		Lens: Lens{
			Fov:    cam.Fov,
			Aspect: cfg.Aspect(),
			Near:   cam.Near,
			Far:    cam.Far,
		},
		Material: Material{
			BaseColor:    cfg.Material.BaseColor,
			Roughness:    cfg.Material.Roughness,
			Transmission: cfg.Material.Transmission,
		},
		ClearColor:   cfg.ClearColor,
		PerPrimitive: cfg.Material.PerPrimitive,
	}
}

type Renderer struct {
	scene *Scene
	opts  Options
}

func NewRenderer(scene *Scene, opts Options) *Renderer {
	return &Renderer{scene: scene, opts: opts}
}

func (r *Renderer) SetScene(scene *Scene) { r.scene = scene }
func (r *Renderer) Scene() *Scene         { return r.scene }
func (r *Renderer) Lens() Lens            { return r.opts.Lens }

// SetViewportAspect retargets the projection to a framebuffer size. A
// minimised window reports zero and is ignored.
func (r *Renderer) SetViewportAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.opts.Lens.Aspect = float32(width) / float32(height)
}

// DrawFrame renders one frame. Depth writes stay off, back faces go first
// and front faces are blended over them, so the glaze reads as a
// translucent shell.
func (r *Renderer) DrawFrame(dev Device, state *interaction.State) {
	dev.Clear(r.opts.ClearColor)
	dev.UseProgram()

	cam := NewCamera(state, r.opts.Lens)
	dev.SetTransforms(cam.Model, cam.View, cam.Projection)
	// headlight
	dev.SetLight(cam.Eye, cam.Eye)

	dev.DepthMask(false)

	dev.CullFace(FaceFront)
	r.drawPass(dev)

	dev.CullFace(FaceBack)
	r.drawPass(dev)
}

func (r *Renderer) drawPass(dev Device) {
	if r.scene == nil {
		return
	}
	for _, p := range r.scene.Primitives {
		dev.SetMaterial(r.materialFor(p))
		dev.Draw(p)
	}
}

func (r *Renderer) materialFor(p *Primitive) Material {
	if r.opts.PerPrimitive {
		return p.Material
	}
	return r.opts.Material
}
