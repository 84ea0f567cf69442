package scene

import (
	"errors"
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"terrain-demo/internal/camera"
	"terrain-demo/internal/drawable"
	"terrain-demo/internal/geometry"
	"terrain-demo/internal/logger"
	"terrain-demo/internal/sceneconfig"
	"terrain-demo/internal/shaders"
)

// Scene owns every GPU resource of the demo and draws it in a fixed order: terrain solid
// pass, terrain wireframe pass, lighthouse, translucent cone. Update advances the clock;
// Draw derives every matrix from it.
type Scene struct {
	cfg   sceneconfig.Config
	log   *logger.Logger
	clock *camera.Clock

	rig       camera.Rig
	coneSpin  camera.Spin
	placement camera.Placement

	projection mgl32.Mat4
	frame      camera.Frame
	clearColor color.RGBA

	terrainProgram  *drawable.Program
	objectProgram   *drawable.Program
	texturedProgram *drawable.Program

	heightMap  *drawable.Texture
	terrain    *drawable.Terrain
	cone       *drawable.Cone
	lighthouse *drawable.Model

	closed bool
}

// New compiles the terrain, object and textured programs, builds and uploads the terrain
// and cone, and loads the height map and lighthouse. A shader failure is fatal and returns
// a *drawable.ShaderError with nothing left allocated. Missing assets are logged and the
// scene renders without them.
// width and height are the initial viewport size.
func New(cfg sceneconfig.Config, log *logger.Logger, width, height int) (*Scene, error) {
	s := &Scene{
		cfg:       cfg,
		log:       log,
		clock:     camera.NewClock(cfg.Camera.Step),
		rig:       rigFrom(cfg),
		coneSpin:  spinFrom(cfg),
		placement: placementFrom(cfg),
		clearColor: rl.ColorFromNormalized(rl.NewVector4(
			cfg.Window.ClearColor[0], cfg.Window.ClearColor[1], cfg.Window.ClearColor[2], 1)),
	}
	ok := false
	defer func() {
		if !ok {
			s.Close()
		}
	}()

	if err := s.compilePrograms(); err != nil {
		return nil, err
	}

	grid, err := geometry.BuildGrid(cfg.Terrain.Width, cfg.Terrain.Depth, cfg.Terrain.Columns, cfg.Terrain.Rows)
	if err != nil {
		return nil, fmt.Errorf("scene: terrain: %w", err)
	}
	cone, err := geometry.BuildCone(cfg.Cone.Radius, cfg.Cone.Height, cfg.Cone.Samples)
	if err != nil {
		return nil, fmt.Errorf("scene: cone: %w", err)
	}

	if err := s.loadHeightMap(); err != nil {
		return nil, err
	}
	s.terrain = drawable.NewTerrain(grid, s.terrainProgram, s.heightMap)
	s.cone = drawable.NewCone(cone, s.objectProgram)
	s.loadLighthouse()

	s.Resize(width, height)
	s.frame = camera.Compose(s.rig, s.coneSpin, s.placement, s.clock.Angle(), s.projection)
	log.Info("scene ready: terrain %dx%d cells, cone %d samples", grid.Columns, grid.Rows, cone.Samples)
	ok = true
	return s, nil
}

// programSlots lists every program the scene draws with and where New stores it.
func (s *Scene) programSlots() []programSlot {
	return []programSlot{
		{shaders.Terrain(), shaders.Sampler, &s.terrainProgram},
		{shaders.Object(), "", &s.objectProgram},
		{shaders.Textured(), shaders.TexturedSampler, &s.texturedProgram},
	}
}

type programSlot struct {
	src     shaders.Source
	sampler string
	dst     **drawable.Program
}

// compilePrograms builds every program up front so a shader failure stops construction.
func (s *Scene) compilePrograms() error {
	for _, slot := range s.programSlots() {
		p, err := drawable.NewProgram(slot.src)
		if err != nil {
			return err
		}
		if slot.sampler != "" {
			p.BindSampler(slot.sampler)
		}
		*slot.dst = p
	}
	return nil
}

// loadHeightMap falls back to a flat map when the configured image cannot be used.
func (s *Scene) loadHeightMap() error {
	path := s.cfg.AssetPath(s.cfg.Assets.HeightMap)
	tex, err := drawable.LoadHeightMap(path)
	if err == nil {
		s.heightMap = tex
		s.log.Info("height map %s: %dx%d", path, tex.Width(), tex.Height())
		return nil
	}
	s.warnAsset(err)
	if s.heightMap, err = drawable.FlatHeightMap(); err != nil {
		return fmt.Errorf("scene: flat height map: %w", err)
	}
	return nil
}

// loadLighthouse drops the model when its mesh is unusable. A texture that fails to load
// is replaced by white texels so the geometry still renders.
func (s *Scene) loadLighthouse() {
	mesh, err := drawable.LoadMeshAsset(s.cfg.AssetPath(s.cfg.Assets.ModelMesh), s.log)
	if err != nil {
		s.warnAsset(err)
		return
	}
	path := s.cfg.AssetPath(s.cfg.Assets.ModelTexture)
	tex, err := textureOrWhite(
		func() (*drawable.TextureAsset, error) { return drawable.LoadTextureAsset(path, s.texturedProgram) },
		func() (*drawable.TextureAsset, error) { return drawable.WhiteTextureAsset(s.texturedProgram) },
		s.warnAsset,
	)
	if err != nil {
		s.log.Warn("lighthouse texture fallback: %v", err)
		mesh.Release()
		return
	}
	s.lighthouse = drawable.NewModel(mesh, tex)
}

// textureOrWhite returns what load yields, or reports the load error through warn and
// returns white instead.
func textureOrWhite(load, white func() (*drawable.TextureAsset, error), warn func(error)) (*drawable.TextureAsset, error) {
	tex, err := load()
	if err == nil {
		return tex, nil
	}
	warn(err)
	return white()
}

func (s *Scene) warnAsset(err error) {
	var ae *drawable.AssetError
	if errors.As(err, &ae) {
		s.log.Warn("%s unavailable, continuing without it: %v", ae.Kind, err)
		return
	}
	s.log.Warn("%v", err)
}

// Angle returns the clock angle in radians.
func (s *Scene) Angle() float32 {
	return s.clock.Angle()
}

// Frame returns the matrices used by the last Draw.
func (s *Scene) Frame() camera.Frame {
	return s.frame
}

// HasLighthouse reports whether the lighthouse model loaded.
func (s *Scene) HasLighthouse() bool {
	return s.lighthouse != nil
}

// Update advances the clock by one step.
func (s *Scene) Update() {
	s.clock.Advance()
}

// Resize recomputes the projection for a viewport of width×height pixels.
func (s *Scene) Resize(width, height int) {
	s.projection = s.rig.Projection(width, height)
}

// Draw renders one frame. Call between rl.BeginDrawing and rl.EndDrawing.
func (s *Scene) Draw() {
	if s.closed {
		return
	}
	rl.ClearBackground(s.clearColor)
	rl.EnableDepthTest()
	rl.EnableBackfaceCulling()
	rl.BeginBlendMode(rl.BlendAlpha)
	defer rl.EndBlendMode()

	f := camera.Compose(s.rig, s.coneSpin, s.placement, s.clock.Angle(), s.projection)
	s.frame = f

	s.drawTerrain(f)
	if s.lighthouse != nil {
		s.lighthouse.SetTransform(f.ModelModelView, f.Projection)
		s.lighthouse.Draw()
	}
	s.drawCone(f)
}

func (s *Scene) drawTerrain(f camera.Frame) {
	p := s.terrainProgram
	p.SetMatrix(shaders.ModelView, f.View)
	p.SetMatrix(shaders.Projection, f.Projection)
	p.SetFloat(shaders.MaxHeight, s.cfg.Terrain.MaxHeight)

	p.SetFloat(shaders.LineColor, 1)
	s.terrain.Draw()
	if !s.cfg.Terrain.HideWireframe {
		p.SetFloat(shaders.LineColor, 0)
		s.terrain.DrawWireframe()
	}
}

func (s *Scene) drawCone(f camera.Frame) {
	p := s.objectProgram
	p.SetVec4(shaders.LightPosition, s.cfg.Light.Position)
	p.SetVec3(shaders.LightColor, s.cfg.Light.Color)
	p.SetFloat(shaders.AmbientIntensity, s.cfg.Light.Ambient)
	p.SetFloat(shaders.DiffuseIntensity, s.cfg.Light.Diffuse)
	p.SetFloat(shaders.Opacity, s.cfg.Cone.Opacity)
	p.SetVec3(shaders.MaterialColor, s.cfg.Cone.Color)
	p.SetMatrix(shaders.ModelView, f.ConeModelView)
	p.SetMatrix(shaders.Projection, f.Projection)
	p.SetMatrix(shaders.NormalMatrix, f.ConeNormal)
	s.cone.Draw()
}

// Close releases every owned resource. It is safe to call more than once and on a
// partially constructed scene.
func (s *Scene) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	if s.lighthouse != nil {
		s.lighthouse.Release()
	}
	if s.cone != nil {
		s.cone.Release()
	}
	if s.terrain != nil {
		s.terrain.Release()
	}
	s.heightMap.Release()
	s.texturedProgram.Release()
	s.objectProgram.Release()
	s.terrainProgram.Release()
}
