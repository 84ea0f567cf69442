package drawable

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// gpuMesh is a mesh built from Go slices. The slices stay referenced for the life of the
// upload because rl.Mesh points into them.
type gpuMesh struct {
	positions []float32
	uvs       []float32
	normals   []float32
	indices   []uint16
	mesh      rl.Mesh
	uploaded  bool
}

// uploadMesh sends the buffers to the GPU as a static mesh. uvs, normals and indices may
// be nil. Without indices the positions are drawn as a plain triangle list.
func uploadMesh(positions, uvs, normals []float32, indices []uint16) *gpuMesh {
	m := &gpuMesh{positions: positions, uvs: uvs, normals: normals, indices: indices}
	vertexCount := len(positions) / 3
	m.mesh.VertexCount = int32(vertexCount)
	m.mesh.TriangleCount = int32(vertexCount / 3)
	if vertexCount > 0 {
		m.mesh.Vertices = &positions[0]
	}
	if len(uvs) > 0 {
		m.mesh.Texcoords = &uvs[0]
	}
	if len(normals) > 0 {
		m.mesh.Normals = &normals[0]
	}
	if len(indices) > 0 {
		m.mesh.Indices = &indices[0]
		m.mesh.TriangleCount = int32(len(indices) / 3)
	}
	if vertexCount == 0 {
		return m
	}
	rl.UploadMesh(&m.mesh, false)
	m.uploaded = m.mesh.VaoID != 0 || m.mesh.VboID != nil
	return m
}

func (m *gpuMesh) draw(material rl.Material) {
	if m == nil || !m.uploaded {
		return
	}
	rl.DrawMesh(m.mesh, material, rl.MatrixIdentity())
}

func (m *gpuMesh) release() {
	if m == nil || !m.uploaded {
		return
	}
	m.uploaded = false
	rl.UnloadMesh(&m.mesh)
}
