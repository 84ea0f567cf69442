package drawable

import (
	"errors"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"terrain-demo/internal/heightmap"
	"terrain-demo/internal/shaders"
)

var errTextureUpload = errors.New("texture upload failed")

// Texture is a 2D texture resident on the GPU.
type Texture struct {
	tex      rl.Texture2D
	released bool
}

// NewTexture uploads img with bilinear filtering and clamped edges.
func NewTexture(img image.Image) (*Texture, error) {
	rimg := rl.NewImageFromImage(img)
	defer rl.UnloadImage(rimg)
	tex := rl.LoadTextureFromImage(rimg)
	if !rl.IsTextureValid(tex) {
		return nil, errTextureUpload
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	rl.SetTextureWrap(tex, rl.WrapClamp)
	return &Texture{tex: tex}, nil
}

// LoadHeightMap decodes the image at path to one byte per texel and uploads it.
func LoadHeightMap(path string) (*Texture, error) {
	img, err := heightmap.Load(path)
	if err != nil {
		return nil, &AssetError{Kind: KindHeightMap, Path: path, Err: err}
	}
	t, err := NewTexture(img)
	if err != nil {
		return nil, &AssetError{Kind: KindHeightMap, Path: path, Err: err}
	}
	return t, nil
}

// FlatHeightMap is a single black texel: the terrain samples height 0 everywhere.
func FlatHeightMap() (*Texture, error) {
	return NewTexture(image.NewGray(image.Rect(0, 0, 1, 1)))
}

func (t *Texture) Width() int {
	return int(t.tex.Width)
}

func (t *Texture) Height() int {
	return int(t.tex.Height)
}

func (t *Texture) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	rl.UnloadTexture(t.tex)
}

// TextureAsset is a color texture drawn with the unlit textured program. The asset owns
// the texture but not the program.
type TextureAsset struct {
	Path     string
	program  *Program
	texture  *Texture
	material rl.Material
	maps     []rl.MaterialMap
	released bool
}

// LoadTextureAsset uploads the image at path for drawing with program, which must be
// built from shaders.Textured with its sampler bound. Failures are reported as an
// *AssetError.
func LoadTextureAsset(path string, program *Program) (*TextureAsset, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, &AssetError{Kind: KindTexture, Path: path, Err: err}
	}
	tex, err := NewTexture(img)
	if err != nil {
		return nil, &AssetError{Kind: KindTexture, Path: path, Err: err}
	}
	return newTextureAsset(path, program, tex), nil
}

// WhiteTextureAsset is a single white texel drawn with program. It stands in for a model
// texture that could not be loaded.
func WhiteTextureAsset(program *Program) (*TextureAsset, error) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.Pix[0] = 0xff
	tex, err := NewTexture(img)
	if err != nil {
		return nil, err
	}
	return newTextureAsset("", program, tex), nil
}

func newTextureAsset(path string, program *Program, tex *Texture) *TextureAsset {
	a := &TextureAsset{Path: path, program: program, texture: tex}
	a.material, a.maps = newMaterial(program.Shader())
	a.maps[rl.MapAlbedo].Texture = tex.tex
	return a
}

// bind sets the transform uniforms and returns the material to draw with.
func (a *TextureAsset) bind(modelView, projection mgl32.Mat4) rl.Material {
	a.program.SetMatrix(shaders.ModelView, modelView)
	a.program.SetMatrix(shaders.Projection, projection)
	return a.material
}

func (a *TextureAsset) Release() {
	if a == nil || a.released {
		return
	}
	a.released = true
	a.texture.Release()
}
