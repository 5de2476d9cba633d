// Package obj implements the Wavefront OBJ+MTL model decoder (§4.4): a
// small hand-rolled parser producing flat attribute arrays, since no
// retrieved example repo carries a pure-Go OBJ parsing library — see
// DESIGN.md for the stdlib-only justification. A single merged mesh is
// produced regardless of the number of `o`/`g` groups in the source file,
// a documented limitation carried from spec.md §4.4.
package obj

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/rayfork/rayfork-go/mathx"
	"github.com/rayfork/rayfork-go/model"
	"github.com/rayfork/rayfork-go/rferr"
)

type faceVertex struct {
	posIdx, texIdx, normIdx int // 0-based; -1 if absent
}

// Decode parses an OBJ document (and, if provided, its companion MTL
// text) into a model.Model. Texcoord Y is flipped (1-v), per §4.4.
func Decode(objText, mtlText []byte) model.Model {
	var positions []mathx.Vec3
	var texcoords []mathx.Vec2
	var normals []mathx.Vec3
	var faces []faceVertex
	var currentMaterial string
	faceMaterial := map[int]string{}

	scanner := bufio.NewScanner(bytes.NewReader(objText))
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			positions = append(positions, parseVec3(fields[1:]))
		case "vt":
			v := parseVec3(fields[1:])
			texcoords = append(texcoords, mathx.Vec2{X: v.X, Y: 1 - v.Y})
		case "vn":
			normals = append(normals, parseVec3(fields[1:]))
		case "usemtl":
			if len(fields) > 1 {
				currentMaterial = fields[1]
			}
		case "f":
			start := len(faces)
			for _, tok := range fields[1:] {
				faces = append(faces, parseFaceVertex(tok))
			}
			// Fan-triangulate polygons with more than 3 vertices.
			n := len(faces) - start
			if n >= 3 {
				triFan := []faceVertex{}
				base := faces[start]
				for i := 1; i < n-1; i++ {
					triFan = append(triFan, base, faces[start+i], faces[start+i+1])
				}
				faces = append(faces[:start], triFan...)
			}
			for i := start; i < len(faces); i++ {
				faceMaterial[i] = currentMaterial
			}
		}
	}
	if err := scanner.Err(); err != nil {
		rferr.Log(rferr.BadIO, "obj: scan error", "err", err.Error())
		return model.Model{}
	}
	if len(faces) == 0 || len(faces)%3 != 0 {
		rferr.Log(rferr.BadFormat, "obj: no triangulated faces produced")
		return model.Model{}
	}

	n := len(faces)
	mesh := model.Mesh{
		VertexCount:   n,
		TriangleCount: n / 3,
		Vertices:      make([]float32, n*3),
		Indices:       make([]uint16, n),
		Valid:         true,
	}
	hasTex := len(texcoords) > 0
	hasNorm := len(normals) > 0
	if hasTex {
		mesh.Texcoords = make([]float32, n*2)
	}
	if hasNorm {
		mesh.Normals = make([]float32, n*3)
	}

	for i, fv := range faces {
		if fv.posIdx < 0 || fv.posIdx >= len(positions) {
			rferr.Log(rferr.BadFormat, "obj: face references out-of-range position index")
			return model.Model{}
		}
		p := positions[fv.posIdx]
		mesh.Vertices[i*3+0] = p.X
		mesh.Vertices[i*3+1] = p.Y
		mesh.Vertices[i*3+2] = p.Z
		mesh.Indices[i] = uint16(i)

		if hasTex && fv.texIdx >= 0 && fv.texIdx < len(texcoords) {
			t := texcoords[fv.texIdx]
			mesh.Texcoords[i*2+0] = t.X
			mesh.Texcoords[i*2+1] = t.Y
		}
		if hasNorm && fv.normIdx >= 0 && fv.normIdx < len(normals) {
			nv := normals[fv.normIdx]
			mesh.Normals[i*3+0] = nv.X
			mesh.Normals[i*3+1] = nv.Y
			mesh.Normals[i*3+2] = nv.Z
		}
	}

	materials, meshMaterial := parseMTL(mtlText, faceMaterial, n)

	return model.Model{
		Meshes:       []model.Mesh{mesh},
		Materials:    materials,
		MeshMaterial: meshMaterial,
		Transform:    mathx.Identity4(),
		Valid:        true,
	}
}

func parseVec3(fields []string) mathx.Vec3 {
	var v mathx.Vec3
	if len(fields) > 0 {
		v.X = parseFloat(fields[0])
	}
	if len(fields) > 1 {
		v.Y = parseFloat(fields[1])
	}
	if len(fields) > 2 {
		v.Z = parseFloat(fields[2])
	}
	return v
}

func parseFloat(s string) float32 {
	f, _ := strconv.ParseFloat(s, 32)
	return float32(f)
}

// parseFaceVertex parses one OBJ face token ("v", "v/vt", "v/vt/vn", or
// "v//vn") into indices, converting OBJ's 1-based indexing to 0-based.
// Negative (relative) indices are returned unresolved.
func parseFaceVertex(tok string) faceVertex {
	parts := strings.Split(tok, "/")
	fv := faceVertex{posIdx: -1, texIdx: -1, normIdx: -1}
	if len(parts) > 0 && parts[0] != "" {
		fv.posIdx = parseIndex(parts[0])
	}
	if len(parts) > 1 && parts[1] != "" {
		fv.texIdx = parseIndex(parts[1])
	}
	if len(parts) > 2 && parts[2] != "" {
		fv.normIdx = parseIndex(parts[2])
	}
	return fv
}

func parseIndex(s string) int {
	i, _ := strconv.Atoi(s)
	if i > 0 {
		return i - 1
	}
	return i // negative (relative) indices are not resolved further here
}

// parseMTL parses a minimal MTL document into model.Material slots keyed
// by material name, and builds the per-triangle mesh_material map. If
// mtlText is empty, or no materials are found, a single default white
// material is produced and every triangle points at slot 0, per §4.7.
func parseMTL(mtlText []byte, faceMaterial map[int]string, vertexCount int) ([]model.Material, []int) {
	byName := map[string]int{}
	materials := []model.Material{}

	if len(mtlText) > 0 {
		var current *model.Material
		scanner := bufio.NewScanner(bytes.NewReader(mtlText))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			fields := strings.Fields(line)
			switch fields[0] {
			case "newmtl":
				materials = append(materials, model.DefaultMaterial())
				current = &materials[len(materials)-1]
				name := fields[1]
				byName[name] = len(materials) - 1
			case "Kd":
				if current != nil && len(fields) >= 4 {
					current.Maps[model.MapDiffuse].Color = mathx.ColorFromNormalized(parseFloat(fields[1]), parseFloat(fields[2]), parseFloat(fields[3]), 1)
				}
			case "Ns":
				if current != nil && len(fields) >= 2 {
					current.Maps[model.MapRoughness].Value = parseFloat(fields[1])
				}
			}
		}
	}

	if len(materials) == 0 {
		materials = []model.Material{model.DefaultMaterial()}
	}

	triCount := vertexCount / 3
	meshMaterial := make([]int, triCount)
	for t := 0; t < triCount; t++ {
		name := faceMaterial[t*3]
		if idx, ok := byName[name]; ok {
			meshMaterial[t] = idx
		}
	}
	// Collapse to the single mesh-level index the model.Model entity
	// expects (one merged mesh, §4.4): the first triangle's material
	// stands for the mesh.
	if len(meshMaterial) == 0 {
		return materials, []int{0}
	}
	return materials, []int{meshMaterial[0]}
}
