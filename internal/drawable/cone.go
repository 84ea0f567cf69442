package drawable

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"terrain-demo/internal/geometry"
)

// Cone draws the two fans of a geometry.Cone with the lit object program.
type Cone struct {
	Samples int

	base     *gpuMesh
	apex     *gpuMesh
	program  *Program
	material rl.Material
	maps     []rl.MaterialMap
	released bool
}

// NewCone uploads both fans as triangle lists. The cone does not own program.
func NewCone(cone *geometry.Cone, program *Program) *Cone {
	c := &Cone{
		Samples: cone.Samples,
		base:    uploadMesh(cone.Base.Positions, nil, cone.Base.Normals, cone.Base.Triangles()),
		apex:    uploadMesh(cone.Apex.Positions, nil, cone.Apex.Normals, cone.Apex.Triangles()),
		program: program,
	}
	c.material, c.maps = newMaterial(program.Shader())
	return c
}

// Draw renders the base fan culling clockwise faces, then the apex fan culling
// counter-clockwise faces. Culling is left in its default state afterwards.
func (c *Cone) Draw() {
	if c.released {
		return
	}
	rl.EnableBackfaceCulling()
	rl.SetCullFace(cullFaceBack)
	c.base.draw(c.material)

	rl.SetCullFace(cullFaceFront)
	c.apex.draw(c.material)
	rl.SetCullFace(cullFaceBack)
}

func (c *Cone) Release() {
	if c == nil || c.released {
		return
	}
	c.released = true
	c.base.release()
	c.apex.release()
}
