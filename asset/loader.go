package asset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

const transmissionExtension = "KHR_materials_transmission"

type Material struct {
	BaseColor    [3]float32
	Roughness    float32
	Metallic     float32
	Transmission float32
}

// DefaultMaterial holds the glTF defaults for a primitive without material.
var DefaultMaterial = Material{
	BaseColor: [3]float32{1, 1, 1},
	Roughness: 1,
	Metallic:  1,
}

// Primitive is one triangle list read from the asset. Normals may be empty.
type Primitive struct {
	Mesh      string
	MeshIndex int
	Index     int
	Positions [][3]float32
	Normals   [][3]float32
	Indices   []uint32
	Material  Material
}

func (p *Primitive) HasNormals() bool {
	return len(p.Normals) > 0
}

func (p *Primitive) Name() string {
	if p.Mesh != "" {
		return fmt.Sprintf("%s/%d", p.Mesh, p.Index)
	}
	return fmt.Sprintf("mesh%d/%d", p.MeshIndex, p.Index)
}

type Result struct {
	Primitives []Primitive
	Warnings   []string
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Load reads a GLB file and returns its primitives in mesh/primitive order.
// Primitives that cannot be drawn as triangles are skipped with a warning.
func Load(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	h, err := SniffGLB(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	res := &Result{}
	if fi, err := os.Stat(path); err == nil && fi.Size() != int64(h.Length) {
		res.warnf("header length %d does not match file size %d", h.Length, fi.Size())
	}
	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			p := Primitive{Mesh: mesh.Name, MeshIndex: mi, Index: pi}
			ok, err := readPrimitive(doc, prim, &p, res)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p.Name(), err)
			}
			if ok {
				res.Primitives = append(res.Primitives, p)
			}
		}
	}
	if len(res.Primitives) == 0 {
		res.warnf("%s has no triangle primitives", path)
	}
	return res, nil
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive, p *Primitive, res *Result) (bool, error) {
	if prim.Mode != gltf.PrimitiveTriangles {
		res.warnf("%s: mode %d is not a triangle list, skipped", p.Name(), prim.Mode)
		return false, nil
	}
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		res.warnf("%s: no POSITION attribute, skipped", p.Name())
		return false, nil
	}
	var err error
	p.Positions, err = modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return false, fmt.Errorf("read positions: %w", err)
	}
	if nrmIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		p.Normals, err = modeler.ReadNormal(doc, doc.Accessors[nrmIdx], nil)
		if err != nil {
			return false, fmt.Errorf("read normals: %w", err)
		}
	}
	if prim.Indices != nil {
		p.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return false, fmt.Errorf("read indices: %w", err)
		}
	} else {
		res.warnf("%s: no indices, drawing vertices in order", p.Name())
		p.Indices = make([]uint32, len(p.Positions))
		for i := range p.Indices {
			p.Indices[i] = uint32(i)
		}
	}
	if p.HasNormals() && len(p.Normals) != len(p.Positions) {
		res.warnf("%s: %d normals for %d positions, skipped", p.Name(), len(p.Normals), len(p.Positions))
		return false, nil
	}
	for _, i := range p.Indices {
		if int(i) >= len(p.Positions) {
			res.warnf("%s: index %d out of range for %d positions, skipped", p.Name(), i, len(p.Positions))
			return false, nil
		}
	}
	if p.Material, err = readMaterial(doc, prim.Material); err != nil {
		res.warnf("%s: %v, transmission ignored", p.Name(), err)
	}
	return true, nil
}

// readMaterial returns the material at idx. A transmission extension that
// does not decode is reported and leaves Transmission at zero.
func readMaterial(doc *gltf.Document, idx *int) (Material, error) {
	m := DefaultMaterial
	if idx == nil || *idx < 0 || *idx >= len(doc.Materials) {
		return m, nil
	}
	src := doc.Materials[*idx]
	if pbr := src.PBRMetallicRoughness; pbr != nil {
		if c := pbr.BaseColorFactor; c != nil {
			m.BaseColor = [3]float32{float32(c[0]), float32(c[1]), float32(c[2])}
		}
		if pbr.RoughnessFactor != nil {
			m.Roughness = float32(*pbr.RoughnessFactor)
		}
		if pbr.MetallicFactor != nil {
			m.Metallic = float32(*pbr.MetallicFactor)
		}
	}
	var err error
	m.Transmission, err = transmissionFactor(src.Extensions)
	return m, err
}

// transmissionFactor reads KHR_materials_transmission. The extension has no
// registered decoder, so it arrives as raw JSON.
func transmissionFactor(ext gltf.Extensions) (float32, error) {
	raw, ok := ext[transmissionExtension]
	if !ok {
		return 0, nil
	}
	var v struct {
		TransmissionFactor float32 `json:"transmissionFactor"`
	}
	var err error
	switch t := raw.(type) {
	case json.RawMessage:
		err = json.Unmarshal(t, &v)
	case []byte:
		err = json.Unmarshal(t, &v)
	case map[string]any:
		if f, ok := t["transmissionFactor"].(float64); ok {
			v.TransmissionFactor = float32(f)
		}
	default:
		err = fmt.Errorf("unexpected payload %T", raw)
	}
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", transmissionExtension, err)
	}
	return v.TransmissionFactor, nil
}
