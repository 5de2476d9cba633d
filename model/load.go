package model

import (
	"github.com/rayfork/rayfork-go/gpusink"
	"github.com/rayfork/rayfork-go/mathx"
)

// LoadMeshesAndMaterials enforces the post-load invariants every model
// loader (container/iqm, container/gltf, container/obj) must satisfy
// before a Model is handed to the batcher (§4.7):
//
//   - If the loader produced zero meshes, install the unitCube fallback
//     mesh (two opposite faces of a unit cube) as mesh 0.
//   - Otherwise, upload every mesh to sink.
//   - If the loader produced zero materials, install a default white
//     material as material 0 and point every mesh at it.
//   - Reset m.Transform to identity.
func LoadMeshesAndMaterials(m *Model, sink gpusink.Sink) {
	if len(m.Meshes) == 0 {
		m.Meshes = []Mesh{unitCube()}
	} else {
		for i := range m.Meshes {
			uploadMesh(&m.Meshes[i], sink)
		}
	}

	if len(m.Materials) == 0 {
		m.Materials = []Material{DefaultMaterial()}
		m.MeshMaterial = make([]int, len(m.Meshes))
	}

	m.Transform = mathx.Identity4()
	m.Valid = true
}

func uploadMesh(mesh *Mesh, sink gpusink.Sink) {
	handle := sink.LoadMesh(mesh.Vertices, mesh.Texcoords, mesh.Normals, mesh.Indices)
	mesh.VAOID = handle.VAOID
	mesh.VBOIDs = handle.VBOIDs
}

// unitCube is the fallback mesh installed when a loader produces no
// meshes at all (§4.7). It holds only the front (z=+0.5) and back
// (z=-0.5) faces of a unit cube: 8 vertices, 4 triangles. The other four
// faces are not generated.
func unitCube() Mesh {
	const h = 0.5
	vertices := []float32{
		-h, -h, h, h, -h, h, h, h, h, -h, h, h, // front
		h, -h, -h, -h, -h, -h, -h, h, -h, h, h, -h, // back
	}
	normals := []float32{
		0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1,
		0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0, -1,
	}
	texcoords := []float32{
		0, 0, 1, 0, 1, 1, 0, 1,
		0, 0, 1, 0, 1, 1, 0, 1,
	}
	indices := []uint16{
		0, 1, 2, 0, 2, 3,
		4, 5, 6, 4, 6, 7,
	}
	return Mesh{
		VertexCount:   8,
		TriangleCount: 4,
		Vertices:      vertices,
		Normals:       normals,
		Texcoords:     texcoords,
		Indices:       indices,
		Valid:         true,
	}
}
