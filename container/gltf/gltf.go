// Package gltf implements the glTF 2.0 / GLB model decoder (§4.4). Each
// primitive with a POSITION accessor becomes one mesh read as a
// triangle list; index accessors other than unsigned short are
// rejected, while the primitive mode and the component type of
// attribute accessors are not checked (attributes are read as 32-bit
// floats). It is shaped after the pack's two real Go glTF loaders,
// other_examples' g3n-engine gltf.go and gorenderengine
// scene/gltf_loader.go — primitive-to-mesh mapping and PBR
// metallic-roughness factor mapping — adapted to this module's own
// model.Model entities. Buffers come from the GLB binary chunk, base64
// data URIs or the IO capability; images and texture references are
// parsed but not resolved.
//
// JSON parsing is done on stdlib encoding/json plus a hand-rolled
// accessor reader, since the pack's glTF library dependency (cgltf) has
// no Go equivalent in the retrieval set (see DESIGN.md).
package gltf

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math"
	"strings"

	"github.com/rayfork/rayfork-go/iocap"
	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/model"
	"github.com/rayfork/rayfork-go/rferr"
)

const (
	glbMagic       = 0x46546C67 // "glTF"
	chunkTypeJSON  = 0x4E4F534A
	chunkTypeBIN   = 0x004E4942
	compTypeUByte  = 5121
	compTypeUShort = 5123
	compTypeUInt   = 5125
	compTypeFloat  = 5126
)

type document struct {
	Accessors []struct {
		BufferView    *int   `json:"bufferView"`
		ComponentType int    `json:"componentType"`
		Count         int    `json:"count"`
		Type          string `json:"type"`
		ByteOffset    int    `json:"byteOffset"`
	} `json:"accessors"`
	BufferViews []struct {
		Buffer     int `json:"buffer"`
		ByteOffset int `json:"byteOffset"`
		ByteLength int `json:"byteLength"`
		ByteStride int `json:"byteStride"`
	} `json:"bufferViews"`
	Buffers []struct {
		URI        string `json:"uri"`
		ByteLength int    `json:"byteLength"`
	} `json:"buffers"`
	Meshes []struct {
		Primitives []struct {
			Attributes map[string]int `json:"attributes"`
			Indices    *int           `json:"indices"`
			Material   *int           `json:"material"`
		} `json:"primitives"`
	} `json:"meshes"`
	Materials []struct {
		PBRMetallicRoughness *struct {
			BaseColorFactor          []float32 `json:"baseColorFactor"`
			BaseColorTexture         *texRef   `json:"baseColorTexture"`
			MetallicFactor           *float32  `json:"metallicFactor"`
			RoughnessFactor          *float32  `json:"roughnessFactor"`
			MetallicRoughnessTexture *texRef   `json:"metallicRoughnessTexture"`
		} `json:"pbrMetallicRoughness"`
		NormalTexture    *texRef `json:"normalTexture"`
		OcclusionTexture *texRef `json:"occlusionTexture"`
	} `json:"materials"`
	Textures []struct {
		Source *int `json:"source"`
	} `json:"textures"`
	Images []struct {
		URI        string `json:"uri"`
		BufferView *int   `json:"bufferView"`
	} `json:"images"`
}

type texRef struct {
	Index int `json:"index"`
}

// Decode parses a .gltf (JSON) or .glb (binary container) buffer into a
// model.Model. ioc supplies external buffer/image loading for .gltf
// documents that reference sibling files by relative URI; it may be the
// zero value when the document embeds everything inline.
func Decode(b []byte, ioc iocap.IO) model.Model {
	var doc document
	var binChunk []byte

	if len(b) >= 12 && binary.LittleEndian.Uint32(b[0:4]) == glbMagic {
		d, bin, ok := parseGLB(b)
		if !ok {
			rferr.Log(rferr.BadFormat, "gltf: malformed GLB container")
			return model.Model{}
		}
		doc, binChunk = d, bin
	} else {
		if err := json.Unmarshal(b, &doc); err != nil {
			rferr.Log(rferr.BadFormat, "gltf: invalid JSON document", "err", err.Error())
			return model.Model{}
		}
	}

	buffers := make([][]byte, len(doc.Buffers))
	for i, buf := range doc.Buffers {
		switch {
		case buf.URI == "" && i == 0 && binChunk != nil:
			buffers[i] = binChunk
		case strings.HasPrefix(buf.URI, "data:"):
			buffers[i] = decodeDataURI(buf.URI)
		default:
			buffers[i] = loadExternal(ioc, buf.URI)
		}
	}

	meshes := []model.Mesh{}
	meshMaterial := []int{}
	for _, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			mesh, ok := decodePrimitive(doc, buffers, prim.Attributes, prim.Indices)
			if !ok {
				continue
			}
			meshes = append(meshes, mesh)
			matIdx := len(doc.Materials) // default white material appended last
			if prim.Material != nil {
				matIdx = *prim.Material
			}
			meshMaterial = append(meshMaterial, matIdx)
		}
	}
	if len(meshes) == 0 {
		rferr.Log(rferr.BadFormat, "gltf: no decodable triangle-list primitives")
		return model.Model{}
	}

	materials := make([]model.Material, 0, len(doc.Materials)+1)
	for _, gmat := range doc.Materials {
		materials = append(materials, decodeMaterial(gmat))
	}
	materials = append(materials, model.DefaultMaterial())

	return model.Model{
		Meshes:       meshes,
		Materials:    materials,
		MeshMaterial: meshMaterial,
		Transform:    mathx.Identity4(),
		Valid:        true,
	}
}

func parseGLB(b []byte) (document, []byte, bool) {
	if len(b) < 12 {
		return document{}, nil, false
	}
	le := binary.LittleEndian
	totalLen := int(le.Uint32(b[8:12]))
	if totalLen > len(b) {
		return document{}, nil, false
	}

	var doc document
	var bin []byte
	off := 12
	for off+8 <= totalLen {
		chunkLen := int(le.Uint32(b[off : off+4]))
		chunkType := le.Uint32(b[off+4 : off+8])
		start := off + 8
		end := start + chunkLen
		if end > len(b) {
			return document{}, nil, false
		}
		switch chunkType {
		case chunkTypeJSON:
			if err := json.Unmarshal(b[start:end], &doc); err != nil {
				return document{}, nil, false
			}
		case chunkTypeBIN:
			bin = b[start:end]
		}
		off = end
	}
	return doc, bin, true
}

func decodeDataURI(uri string) []byte {
	idx := strings.Index(uri, ",")
	if idx < 0 {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(uri[idx+1:])
	if err != nil {
		rferr.Log(rferr.BadFormat, "gltf: invalid base64 data URI")
		return nil
	}
	return data
}

func loadExternal(ioc iocap.IO, uri string) []byte {
	if ioc.IsNull() || uri == "" {
		return nil
	}
	size := ioc.FileSize(uri)
	if size <= 0 {
		rferr.Log(rferr.BadIO, "gltf: external buffer missing or empty", "uri", uri)
		return nil
	}
	dst := make([]byte, size)
	n, ok := ioc.ReadFile(uri, dst)
	if !ok {
		rferr.Log(rferr.BadIO, "gltf: failed to load external buffer", "uri", uri)
		return nil
	}
	return dst[:n]
}

func decodePrimitive(doc document, buffers [][]byte, attrs map[string]int, indicesAccessor *int) (model.Mesh, bool) {
	posIdx, ok := attrs["POSITION"]
	if !ok {
		return model.Mesh{}, false
	}
	positions := readFloatAccessor(doc, buffers, posIdx, 3)
	n := len(positions) / 3
	if n == 0 {
		return model.Mesh{}, false
	}

	mesh := model.Mesh{VertexCount: n, Vertices: positions, Valid: true}
	if idx, ok := attrs["NORMAL"]; ok {
		mesh.Normals = readFloatAccessor(doc, buffers, idx, 3)
	}
	if idx, ok := attrs["TANGENT"]; ok {
		mesh.Tangents = readFloatAccessor(doc, buffers, idx, 4)
	}
	if idx, ok := attrs["TEXCOORD_0"]; ok {
		mesh.Texcoords = readFloatAccessor(doc, buffers, idx, 2)
	}
	if idx, ok := attrs["TEXCOORD_1"]; ok {
		mesh.Texcoords2 = readFloatAccessor(doc, buffers, idx, 2)
	}

	if indicesAccessor != nil {
		if i := *indicesAccessor; i >= 0 && i < len(doc.Accessors) && doc.Accessors[i].ComponentType != compTypeUShort {
			rferr.Log(rferr.Unsupported, "gltf: index accessor is not unsigned short")
			return model.Mesh{}, false
		}
		mesh.Indices = readIndexAccessor(doc, buffers, *indicesAccessor)
	} else {
		mesh.Indices = make([]uint16, n)
		for i := range mesh.Indices {
			mesh.Indices[i] = uint16(i)
		}
	}
	mesh.TriangleCount = len(mesh.Indices) / 3
	return mesh, true
}

func readFloatAccessor(doc document, buffers [][]byte, accessorIdx int, components int) []float32 {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil
	}
	acc := doc.Accessors[accessorIdx]
	if acc.BufferView == nil {
		return make([]float32, acc.Count*components)
	}
	bv := doc.BufferViews[*acc.BufferView]
	buf := bufferSlice(buffers, bv.Buffer, bv.ByteOffset+acc.ByteOffset, bv.ByteLength)
	stride := bv.ByteStride
	if stride == 0 {
		stride = components * 4
	}
	out := make([]float32, acc.Count*components)
	le := binary.LittleEndian
	for i := 0; i < acc.Count; i++ {
		base := i * stride
		for c := 0; c < components; c++ {
			off := base + c*4
			if off+4 > len(buf) {
				return out[:i*components]
			}
			out[i*components+c] = float32frombits(le.Uint32(buf[off : off+4]))
		}
	}
	return out
}

func readIndexAccessor(doc document, buffers [][]byte, accessorIdx int) []uint16 {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil
	}
	acc := doc.Accessors[accessorIdx]
	if acc.BufferView == nil {
		return nil
	}
	bv := doc.BufferViews[*acc.BufferView]
	buf := bufferSlice(buffers, bv.Buffer, bv.ByteOffset+acc.ByteOffset, bv.ByteLength)
	le := binary.LittleEndian
	out := make([]uint16, acc.Count)
	switch acc.ComponentType {
	case compTypeUShort:
		for i := 0; i < acc.Count && i*2+2 <= len(buf); i++ {
			out[i] = le.Uint16(buf[i*2 : i*2+2])
		}
	case compTypeUInt:
		for i := 0; i < acc.Count && i*4+4 <= len(buf); i++ {
			out[i] = uint16(le.Uint32(buf[i*4 : i*4+4]))
		}
	case compTypeUByte:
		for i := 0; i < acc.Count && i < len(buf); i++ {
			out[i] = uint16(buf[i])
		}
	}
	return out
}

func bufferSlice(buffers [][]byte, bufIdx, offset, length int) []byte {
	if bufIdx < 0 || bufIdx >= len(buffers) || buffers[bufIdx] == nil {
		return nil
	}
	buf := buffers[bufIdx]
	if offset+length > len(buf) {
		return nil
	}
	return buf[offset : offset+length]
}

func float32frombits(bits uint32) float32 {
	return math.Float32frombits(bits)
}

// decodeMaterial maps a glTF PBR metallic-roughness material onto this
// module's material-map slots, per §4.4: base-color factor tints the
// diffuse map and metallic/roughness factors populate their scalar value
// slots directly. Texture references (base-color, metallic-roughness,
// normal, occlusion) are not mapped; those slots keep DefaultMaterial's
// values.
func decodeMaterial(gmat struct {
	PBRMetallicRoughness *struct {
		BaseColorFactor          []float32 `json:"baseColorFactor"`
		BaseColorTexture         *texRef   `json:"baseColorTexture"`
		MetallicFactor           *float32  `json:"metallicFactor"`
		RoughnessFactor          *float32  `json:"roughnessFactor"`
		MetallicRoughnessTexture *texRef   `json:"metallicRoughnessTexture"`
	} `json:"pbrMetallicRoughness"`
	NormalTexture    *texRef `json:"normalTexture"`
	OcclusionTexture *texRef `json:"occlusionTexture"`
}) model.Material {
	m := model.DefaultMaterial()
	if pbr := gmat.PBRMetallicRoughness; pbr != nil {
		if len(pbr.BaseColorFactor) == 4 {
			f := pbr.BaseColorFactor
			m.Maps[model.MapDiffuse].Color = mathx.ColorFromNormalized(f[0], f[1], f[2], f[3])
		}
		if pbr.MetallicFactor != nil {
			m.Maps[model.MapMetalness].Value = *pbr.MetallicFactor
		}
		if pbr.RoughnessFactor != nil {
			m.Maps[model.MapRoughness].Value = *pbr.RoughnessFactor
		}
	}
	return m
}
