package asset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glbviewer/common/rw"
)

var (
	triPositions = [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	triNormals   = [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
)

func saveGLB(t *testing.T, doc *gltf.Document) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "model.glb")
	require.NoError(t, gltf.SaveBinary(doc, p))
	return p
}

// glaze holds two meshes: "shell" with a lit primitive and a normal-less
// one, "base" with a single lit primitive bound to a transmissive material.
func glazeDocument() *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, triPositions)
	nrm := modeler.WriteNormal(doc, triNormals)
	idx := modeler.WriteIndices(doc, []uint32{0, 1, 2})

	doc.ExtensionsUsed = append(doc.ExtensionsUsed, transmissionExtension)
	doc.Materials = []*gltf.Material{{
		Name: "porcelain",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{0.25, 0.5, 0.75, 1},
			RoughnessFactor: gltf.Float(0.3),
			MetallicFactor:  gltf.Float(0.1),
		},
		Extensions: gltf.Extensions{
			transmissionExtension: json.RawMessage(`{"transmissionFactor":0.6}`),
		},
	}}
	doc.Meshes = []*gltf.Mesh{
		{
			Name: "shell",
			Primitives: []*gltf.Primitive{
				{
					Indices:    gltf.Index(idx),
					Attributes: map[string]int{gltf.POSITION: pos, gltf.NORMAL: nrm},
				},
				{
					Indices:    gltf.Index(idx),
					Attributes: map[string]int{gltf.POSITION: pos},
				},
			},
		},
		{
			Name: "base",
			Primitives: []*gltf.Primitive{
				{
					Indices:    gltf.Index(idx),
					Attributes: map[string]int{gltf.POSITION: pos, gltf.NORMAL: nrm},
					Material:   gltf.Index(0),
				},
			},
		},
	}
	return doc
}

func TestLoadKeepsTraversalOrder(t *testing.T) {
	res, err := Load(saveGLB(t, glazeDocument()))
	require.NoError(t, err)
	require.Len(t, res.Primitives, 3)

	names := []string{}
	for i := range res.Primitives {
		names = append(names, res.Primitives[i].Name())
	}
	assert.Equal(t, []string{"shell/0", "shell/1", "base/0"}, names)

	first := res.Primitives[0]
	assert.True(t, first.HasNormals())
	assert.Equal(t, triPositions, first.Positions)
	assert.Equal(t, triNormals, first.Normals)
	assert.Equal(t, []uint32{0, 1, 2}, first.Indices)
	assert.Equal(t, DefaultMaterial, first.Material)

	assert.False(t, res.Primitives[1].HasNormals())
	assert.Empty(t, res.Warnings)
}

func TestLoadReadsMaterial(t *testing.T) {
	res, err := Load(saveGLB(t, glazeDocument()))
	require.NoError(t, err)
	m := res.Primitives[2].Material
	assert.Equal(t, [3]float32{0.25, 0.5, 0.75}, m.BaseColor)
	assert.InDelta(t, 0.3, m.Roughness, 1e-6)
	assert.InDelta(t, 0.1, m.Metallic, 1e-6)
	assert.InDelta(t, 0.6, m.Transmission, 1e-6)
}

func TestLoadWarnsAndSkips(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, triPositions)
	nrm := modeler.WriteNormal(doc, triNormals)
	doc.Meshes = []*gltf.Mesh{{
		Name: "odd",
		Primitives: []*gltf.Primitive{
			{Mode: gltf.PrimitiveLines, Attributes: map[string]int{gltf.POSITION: pos}},
			{Attributes: map[string]int{gltf.NORMAL: nrm}},
			{Attributes: map[string]int{gltf.POSITION: pos, gltf.NORMAL: nrm}},
		},
	}}

	res, err := Load(saveGLB(t, doc))
	require.NoError(t, err)
	require.Len(t, res.Primitives, 1)
	assert.Equal(t, "odd/2", res.Primitives[0].Name())
	assert.Equal(t, []uint32{0, 1, 2}, res.Primitives[0].Indices)
	assert.Len(t, res.Warnings, 3)
}

func TestLoadEmptyDocumentWarns(t *testing.T) {
	res, err := Load(saveGLB(t, gltf.NewDocument()))
	require.NoError(t, err)
	assert.Empty(t, res.Primitives)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "no triangle primitives")
}

func TestLoadRejectsJSONGltf(t *testing.T) {
	p := filepath.Join(t.TempDir(), "model.gltf")
	require.NoError(t, os.WriteFile(p, []byte(`{"asset":{"version":"2.0"}}`), 0o644))
	_, err := Load(p)
	assert.ErrorIs(t, err, ErrNotGLB)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "model.glb"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func glbHeader(magic, version, chunkType uint32) []byte {
	w := rw.NewBinWriter()
	w.WriteUInt32s([]uint32{magic, version, 20, 0, chunkType})
	return w.GetWriteBytes()
}

func TestSniffGLB(t *testing.T) {
	h, err := SniffGLB(bytes.NewReader(glbHeader(GLBMagic, 2, chunkJSON)))
	require.NoError(t, err)
	assert.Equal(t, Header{Magic: GLBMagic, Version: 2, Length: 20}, h)

	_, err = SniffGLB(bytes.NewReader(glbHeader(0xdeadbeef, 2, chunkJSON)))
	assert.ErrorIs(t, err, ErrNotGLB)

	_, err = SniffGLB(bytes.NewReader(glbHeader(GLBMagic, 1, chunkJSON)))
	assert.ErrorIs(t, err, ErrNotGLB)

	_, err = SniffGLB(bytes.NewReader(glbHeader(GLBMagic, 2, 0x004E4942)))
	assert.ErrorIs(t, err, ErrNotGLB)

	_, err = SniffGLB(bytes.NewReader([]byte("glTF")))
	assert.ErrorIs(t, err, ErrNotGLB)
}

func TestLoadSkipsInconsistentGeometry(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, triPositions)
	nrm := modeler.WriteNormal(doc, triNormals)
	short := modeler.WriteNormal(doc, [][3]float32{{0, 0, 1}})
	idx := modeler.WriteIndices(doc, []uint32{0, 1, 2})
	wild := modeler.WriteIndices(doc, []uint32{0, 1, 7})
	doc.Meshes = []*gltf.Mesh{{
		Name: "broken",
		Primitives: []*gltf.Primitive{
			{Indices: gltf.Index(idx), Attributes: map[string]int{gltf.POSITION: pos, gltf.NORMAL: short}},
			{Indices: gltf.Index(wild), Attributes: map[string]int{gltf.POSITION: pos, gltf.NORMAL: nrm}},
			{Indices: gltf.Index(idx), Attributes: map[string]int{gltf.POSITION: pos, gltf.NORMAL: nrm}},
		},
	}}

	res, err := Load(saveGLB(t, doc))
	require.NoError(t, err)
	require.Len(t, res.Primitives, 1)
	assert.Equal(t, "broken/2", res.Primitives[0].Name())
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "1 normals for 3 positions")
	assert.Contains(t, res.Warnings[1], "index 7 out of range")
}

func TestLoadWarnsOnBadTransmission(t *testing.T) {
	doc := glazeDocument()
	doc.Materials[0].Extensions[transmissionExtension] = json.RawMessage(`{"transmissionFactor":"high"}`)

	res, err := Load(saveGLB(t, doc))
	require.NoError(t, err)
	require.Len(t, res.Primitives, 3)
	m := res.Primitives[2].Material
	assert.Zero(t, m.Transmission)
	assert.InDelta(t, 0.3, m.Roughness, 1e-6)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "base/0")
	assert.Contains(t, res.Warnings[0], transmissionExtension)
}

func TestTransmissionFactorShapes(t *testing.T) {
	v, err := transmissionFactor(nil)
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = transmissionFactor(gltf.Extensions{
		transmissionExtension: json.RawMessage(`{"transmissionFactor":0.25}`),
	})
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), v)

	v, err = transmissionFactor(gltf.Extensions{
		transmissionExtension: map[string]any{"transmissionFactor": 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), v)

	_, err = transmissionFactor(gltf.Extensions{transmissionExtension: []byte(`{"transmissionFactor":`)})
	assert.Error(t, err)

	_, err = transmissionFactor(gltf.Extensions{transmissionExtension: 0.5})
	assert.Error(t, err)
}
