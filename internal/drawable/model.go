package drawable

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"terrain-demo/internal/geometry"
	"terrain-demo/internal/logger"
)

var errNoMeshes = errors.New("no mesh data")

// Submesh is one part of an imported model, kept in the order the file stores it.
// Indices is nil when the vertex count exceeds the 16-bit index range; such a submesh is
// drawn as a plain triangle list.
type Submesh struct {
	Positions []float32
	UVs       []float32
	Indices   []uint16
}

// MeshAsset is an external model split into submeshes and uploaded to the GPU.
type MeshAsset struct {
	Path      string
	Submeshes []Submesh
	meshes    []*gpuMesh
	released  bool
}

// LoadMeshAsset imports the model at path with raylib's importer, copies every submesh
// into Go-owned buffers and uploads them. Submeshes without texture coordinates get zero
// uvs and a warning.
func LoadMeshAsset(path string, log *logger.Logger) (*MeshAsset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &AssetError{Kind: KindMesh, Path: path, Err: err}
	}
	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) || model.MeshCount == 0 {
		rl.UnloadModel(model)
		return nil, &AssetError{Kind: KindMesh, Path: path, Err: errNoMeshes}
	}
	defer rl.UnloadModel(model)

	a := &MeshAsset{Path: path}
	for i, m := range model.GetMeshes() {
		sub, err := extractSubmesh(m)
		if err != nil {
			return nil, &AssetError{Kind: KindMesh, Path: path, Err: fmt.Errorf("submesh %d: %w", i, err)}
		}
		if m.Texcoords == nil {
			log.Warn("mesh %s: submesh %d has no texture coordinates", path, i)
		}
		a.Submeshes = append(a.Submeshes, sub)
	}
	log.Info("mesh %s: %d submeshes", path, len(a.Submeshes))

	for _, sub := range a.Submeshes {
		a.meshes = append(a.meshes, uploadMesh(sub.Positions, sub.UVs, nil, sub.Indices))
	}
	return a, nil
}

func extractSubmesh(m rl.Mesh) (Submesh, error) {
	n := int(m.VertexCount)
	if n == 0 || m.Vertices == nil {
		return Submesh{}, errNoMeshes
	}
	var sub Submesh
	sub.Positions = append([]float32(nil), unsafe.Slice(m.Vertices, n*3)...)
	if m.Texcoords != nil {
		sub.UVs = append([]float32(nil), unsafe.Slice(m.Texcoords, n*2)...)
	} else {
		sub.UVs = make([]float32, n*2)
	}

	if m.Indices != nil {
		src := unsafe.Slice(m.Indices, int(m.TriangleCount)*3)
		for _, idx := range src {
			if int(idx) >= n {
				return Submesh{}, fmt.Errorf("index %d out of range for %d vertices", idx, n)
			}
		}
		sub.Indices = append([]uint16(nil), src...)
		return sub, nil
	}

	// The importer expands faces into a plain vertex stream; every three vertices form
	// one triangle.
	if n%3 != 0 {
		return Submesh{}, fmt.Errorf("%d vertices do not form whole triangles", n)
	}
	if n <= geometry.MaxVertices {
		sub.Indices = make([]uint16, n)
		for i := range sub.Indices {
			sub.Indices[i] = uint16(i)
		}
	}
	return sub, nil
}

func (a *MeshAsset) Release() {
	if a == nil || a.released {
		return
	}
	a.released = true
	for _, m := range a.meshes {
		m.release()
	}
}

// Model draws a MeshAsset with a TextureAsset at the transform set by SetTransform.
type Model struct {
	mesh       *MeshAsset
	texture    *TextureAsset
	modelView  mgl32.Mat4
	projection mgl32.Mat4
	released   bool
}

// NewModel takes ownership of mesh and texture.
func NewModel(mesh *MeshAsset, texture *TextureAsset) *Model {
	return &Model{mesh: mesh, texture: texture, modelView: mgl32.Ident4(), projection: mgl32.Ident4()}
}

func (m *Model) SetTransform(modelView, projection mgl32.Mat4) {
	m.modelView = modelView
	m.projection = projection
}

// Draw binds the texture, sets the matrices and draws every submesh in stored order.
func (m *Model) Draw() {
	if m.released {
		return
	}
	material := m.texture.bind(m.modelView, m.projection)
	for _, g := range m.mesh.meshes {
		g.draw(material)
	}
}

func (m *Model) Release() {
	if m == nil || m.released {
		return
	}
	m.released = true
	m.mesh.Release()
	m.texture.Release()
}
