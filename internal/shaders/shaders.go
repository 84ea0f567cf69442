// Package shaders embeds the GLSL programs the demo draws with. Attribute names follow
// raylib's defaults (vertexPosition, vertexTexCoord, vertexNormal) so rl.DrawMesh binds the
// uploaded buffers without extra setup; uniform names are listed next to each program.
package shaders

import _ "embed"

// Uniform names shared by the programs.
const (
	ModelView        = "model_view_matrix"
	Projection       = "projection_matrix"
	NormalMatrix     = "normal_matrix"
	Sampler          = "sampler"
	MaxHeight        = "max_height"
	LineColor        = "line_color"
	Opacity          = "opacity"
	MaterialColor    = "material_color"
	LightPosition    = "light.position"
	LightColor       = "light.color"
	AmbientIntensity = "ambient_intensity"
	DiffuseIntensity = "diffuse_intensity"
	TexturedSampler  = "sampler2d"
)

//go:embed terrain.vs
var terrainVS string

//go:embed terrain.fs
var terrainFS string

//go:embed object.vs
var objectVS string

//go:embed object.fs
var objectFS string

//go:embed textured.vs
var texturedVS string

//go:embed textured.fs
var texturedFS string

// Source is a vertex/fragment pair plus the uniforms the program declares.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
	Uniforms []string
}

// Terrain displaces the grid by the height map's red channel and shades it by height.
func Terrain() Source {
	return Source{
		Name:     "terrain",
		Vertex:   terrainVS,
		Fragment: terrainFS,
		Uniforms: []string{ModelView, Projection, Sampler, MaxHeight, LineColor},
	}
}

// Object is the ambient + diffuse lit program used for the translucent cone.
func Object() Source {
	return Source{
		Name:     "object",
		Vertex:   objectVS,
		Fragment: objectFS,
		Uniforms: []string{
			ModelView, Projection, NormalMatrix,
			Opacity, MaterialColor,
			LightPosition, LightColor,
			AmbientIntensity, DiffuseIntensity,
		},
	}
}

// Textured samples a diffuse texture with no lighting.
func Textured() Source {
	return Source{
		Name:     "textured",
		Vertex:   texturedVS,
		Fragment: texturedFS,
		Uniforms: []string{ModelView, Projection, TexturedSampler},
	}
}
