// Package drawable owns every GPU resource the scene draws: shader programs, uploaded meshes
// and textures. Objects are uploaded once at construction and released exactly once;
// Draw on a released object does nothing.
package drawable

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Drawable is implemented by Terrain, Cone and Model.
type Drawable interface {
	Draw()
	Release()
}

// Face culling modes as rlgl numbers them.
const (
	cullFaceFront int32 = 0
	cullFaceBack  int32 = 1
)

// toMatrix converts a column-major mgl32 matrix to raylib's layout.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// newMaterial returns a material with Go-owned maps that draws with shader. Maps are kept
// on the Go side so releasing an object never frees a shader or texture it shares.
func newMaterial(shader rl.Shader) (rl.Material, []rl.MaterialMap) {
	maps := make([]rl.MaterialMap, rl.MaxMaterialMaps)
	return rl.Material{Shader: shader, Maps: &maps[0]}, maps
}
