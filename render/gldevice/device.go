package gldevice

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"glbviewer/render"
)

const GL_FLOAT32_SIZE = 4

var (
	_ render.Device   = (*Device)(nil)
	_ render.Uploader = (*Device)(nil)
)

type uniforms struct {
	model, view, projection int32
	baseColor, roughness    int32
	transmission            int32
	lightPos, viewPos       int32
}

// Device draws through the current OpenGL context. It must be created and
// used on the thread that owns the context.
type Device struct {
	log     *zap.Logger
	program uint32
	loc     uniforms

	vaos    []uint32
	buffers []uint32
}

// New builds the glaze program. A program that fails to compile or link is
// logged and kept; drawing with it produces nothing useful but does not stop
// the viewer.
func New(log *zap.Logger) *Device {
	program, err := NewProgram(render.VertexShader, render.FragmentShader)
	if err != nil {
		log.Error("shader program", zap.Error(err))
	}
	d := &Device{log: log, program: program}
	d.loc = uniforms{
		model:        d.uniform(render.UniformModel),
		view:         d.uniform(render.UniformView),
		projection:   d.uniform(render.UniformProjection),
		baseColor:    d.uniform(render.UniformBaseColor),
		roughness:    d.uniform(render.UniformRoughness),
		transmission: d.uniform(render.UniformTransmission),
		lightPos:     d.uniform(render.UniformLightPos),
		viewPos:      d.uniform(render.UniformViewPos),
	}
	return d
}

func (d *Device) uniform(name string) int32 {
	return gl.GetUniformLocation(d.program, gl.Str(name))
}

// Version reports the context's GL_VERSION string.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Setup enables the fixed pipeline state the glaze relies on: depth test,
// face culling and straight alpha blending.
func (d *Device) Setup() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) Upload(positions, normals [][3]float32, indices []uint32) (render.Buffers, error) {
	if len(positions) == 0 || len(indices) == 0 {
		return render.Buffers{}, fmt.Errorf("empty mesh: %d vertices, %d indices", len(positions), len(indices))
	}
	var b render.Buffers
	gl.GenVertexArrays(1, &b.VertexArray)
	gl.BindVertexArray(b.VertexArray)

	b.Positions = d.attribute(0, positions)
	b.Normals = d.attribute(1, normals)

	gl.GenBuffers(1, &b.Indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.Indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	d.vaos = append(d.vaos, b.VertexArray)
	d.buffers = append(d.buffers, b.Positions, b.Normals, b.Indices)
	return b, nil
}

// attribute uploads a tightly packed vec3 stream to the given location.
func (d *Device) attribute(location uint32, data [][3]float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*3*GL_FLOAT32_SIZE, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(location, 3, gl.FLOAT, false, 3*GL_FLOAT32_SIZE, 0)
	gl.EnableVertexAttribArray(location)
	return vbo
}

func (d *Device) Clear(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) UseProgram() {
	gl.UseProgram(d.program)
}

func (d *Device) SetTransforms(model, view, projection mgl32.Mat4) {
	gl.UniformMatrix4fv(d.loc.model, 1, false, &model[0])
	gl.UniformMatrix4fv(d.loc.view, 1, false, &view[0])
	gl.UniformMatrix4fv(d.loc.projection, 1, false, &projection[0])
}

func (d *Device) SetLight(lightPos, viewPos mgl32.Vec3) {
	gl.Uniform3fv(d.loc.lightPos, 1, &lightPos[0])
	gl.Uniform3fv(d.loc.viewPos, 1, &viewPos[0])
}

func (d *Device) DepthMask(write bool) {
	gl.DepthMask(write)
}

func (d *Device) CullFace(face render.Face) {
	if face == render.FaceFront {
		gl.CullFace(gl.FRONT)
		return
	}
	gl.CullFace(gl.BACK)
}

func (d *Device) SetMaterial(m render.Material) {
	gl.Uniform3fv(d.loc.baseColor, 1, &m.BaseColor[0])
	gl.Uniform1f(d.loc.roughness, m.Roughness)
	gl.Uniform1f(d.loc.transmission, m.Transmission)
}

func (d *Device) Draw(p *render.Primitive) {
	gl.BindVertexArray(p.VertexArray)
	gl.DrawElementsWithOffset(gl.TRIANGLES, p.IndexCount, gl.UNSIGNED_INT, 0)
}

// Close releases every buffer uploaded through d and the program.
func (d *Device) Close() {
	gl.BindVertexArray(0)
	if len(d.buffers) > 0 {
		gl.DeleteBuffers(int32(len(d.buffers)), &d.buffers[0])
	}
	if len(d.vaos) > 0 {
		gl.DeleteVertexArrays(int32(len(d.vaos)), &d.vaos[0])
	}
	gl.DeleteProgram(d.program)
	d.buffers, d.vaos = nil, nil
}
