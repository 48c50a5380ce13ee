package render

import (
	"fmt"

	"glbviewer/asset"
)

// Buffers are the GPU objects backing one primitive.
type Buffers struct {
	VertexArray uint32
	Positions   uint32
	Normals     uint32
	Indices     uint32
}

// Uploader copies mesh data to the GPU.
type Uploader interface {
	Upload(positions, normals [][3]float32, indices []uint32) (Buffers, error)
}

// Primitive is immutable once built.
type Primitive struct {
	Buffers
	IndexCount int32
	Material   Material
	Name       string
}

// Scene keeps primitives in mesh/primitive traversal order, which is also
// the order both passes draw them in.
type Scene struct {
	Primitives []*Primitive
}

func (s *Scene) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Primitives)
}

// BuildScene uploads every primitive that carries normals. The rest are
// dropped silently.
func BuildScene(up Uploader, prims []asset.Primitive) (*Scene, error) {
	scene := &Scene{}
	for i := range prims {
		src := &prims[i]
		if !src.HasNormals() {
			continue
		}
		buf, err := up.Upload(src.Positions, src.Normals, src.Indices)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", src.Name(), err)
		}
		scene.Primitives = append(scene.Primitives, &Primitive{
			Buffers:    buf,
			IndexCount: int32(len(src.Indices)),
			Material:   materialOf(src.Material),
			Name:       src.Name(),
		})
	}
	return scene, nil
}
