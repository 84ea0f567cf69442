package drawable

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"terrain-demo/internal/shaders"
)

// Program is a linked shader with its uniform locations resolved once at link time.
// Setting a uniform the program does not declare is a no-op.
type Program struct {
	name     string
	shader   rl.Shader
	locs     map[string]int32
	released bool
}

// NewProgram compiles and links src. On failure it returns a *ShaderError carrying the
// driver's diagnostics and holds no GPU resources.
func NewProgram(src shaders.Source) (*Program, error) {
	mark := trace.mark()
	shader := rl.LoadShaderFromMemory(src.Vertex, src.Fragment)
	// raylib substitutes its default program when linking fails.
	if !rl.IsShaderValid(shader) || shader.ID == rl.GetShaderIdDefault() {
		return nil, &ShaderError{Program: src.Name, Log: trace.since(mark)}
	}
	p := &Program{
		name:   src.Name,
		shader: shader,
		locs:   make(map[string]int32, len(src.Uniforms)),
	}
	for _, u := range src.Uniforms {
		p.locs[u] = rl.GetShaderLocation(shader, u)
	}
	return p, nil
}

func (p *Program) Name() string {
	return p.name
}

// Location returns the cached location of name, or -1.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	return -1
}

func (p *Program) SetFloat(name string, v float32) {
	p.set(name, []float32{v}, rl.ShaderUniformFloat)
}

func (p *Program) SetVec3(name string, v [3]float32) {
	p.set(name, v[:], rl.ShaderUniformVec3)
}

func (p *Program) SetVec4(name string, v [4]float32) {
	p.set(name, v[:], rl.ShaderUniformVec4)
}

func (p *Program) SetMatrix(name string, m mgl32.Mat4) {
	if loc := p.Location(name); loc >= 0 && !p.released {
		rl.SetShaderValueMatrix(p.shader, loc, toMatrix(m))
	}
}

func (p *Program) set(name string, v []float32, kind rl.ShaderUniformDataType) {
	if loc := p.Location(name); loc >= 0 && !p.released {
		rl.SetShaderValue(p.shader, loc, v, kind)
	}
}

// BindSampler makes name the sampler rl.DrawMesh feeds the material's albedo texture to.
func (p *Program) BindSampler(name string) {
	loc := p.Location(name)
	if loc < 0 || p.shader.Locs == nil {
		return
	}
	locs := unsafe.Slice(p.shader.Locs, rl.MaxShaderLocations)
	locs[rl.ShaderLocMapAlbedo] = loc
}

// Shader returns the underlying raylib shader for building materials.
func (p *Program) Shader() rl.Shader {
	return p.shader
}

// Release unloads the shader. Later calls do nothing.
func (p *Program) Release() {
	if p == nil || p.released {
		return
	}
	p.released = true
	rl.UnloadShader(p.shader)
}
