package drawable

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"terrain-demo/internal/geometry"
)

// Terrain is the height-mapped grid. Positions and uvs are uploaded; the vertex shader
// lifts each vertex by the height map's red channel.
type Terrain struct {
	Columns, Rows int

	mesh     *gpuMesh
	program  *Program
	material rl.Material
	maps     []rl.MaterialMap
	released bool
}

// NewTerrain uploads grid and draws it with program, sampling heightMap. The terrain does
// not own program or heightMap.
func NewTerrain(grid *geometry.Grid, program *Program, heightMap *Texture) *Terrain {
	t := &Terrain{
		Columns: grid.Columns,
		Rows:    grid.Rows,
		mesh:    uploadMesh(grid.Positions, grid.UVs, nil, grid.Indices),
		program: program,
	}
	t.material, t.maps = newMaterial(program.Shader())
	if heightMap != nil {
		t.maps[rl.MapAlbedo].Texture = heightMap.tex
	}
	return t
}

// Draw issues the solid pass with one draw call.
func (t *Terrain) Draw() {
	if t.released {
		return
	}
	t.mesh.draw(t.material)
}

// DrawWireframe issues the same draw call with polygons rasterized as lines.
func (t *Terrain) DrawWireframe() {
	if t.released {
		return
	}
	rl.EnableWireMode()
	t.mesh.draw(t.material)
	rl.DisableWireMode()
}

func (t *Terrain) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	t.mesh.release()
}
