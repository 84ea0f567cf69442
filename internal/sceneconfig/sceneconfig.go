package sceneconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/terrain-demo.yaml"

// Config holds the fixed constants of the demo scene: window, asset locations, camera,
// light, and object placement. It never lists objects or materials.
type Config struct {
	Window  Window  `yaml:"window"`
	Assets  Assets  `yaml:"assets"`
	Camera  Camera  `yaml:"camera"`
	Terrain Terrain `yaml:"terrain"`
	Cone    Cone    `yaml:"cone"`
	Light   Light   `yaml:"light"`
	Model   Model   `yaml:"model"`
	Debug   Debug   `yaml:"debug"`
}

type Window struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	TargetFPS  int        `yaml:"target_fps"`
	ClearColor [3]float32 `yaml:"clear_color,flow"`
}

// Assets names the files the scene loads. Relative paths are resolved against Dir.
type Assets struct {
	Dir          string `yaml:"dir"`
	HeightMap    string `yaml:"height_map"`
	ModelMesh    string `yaml:"model_mesh"`
	ModelTexture string `yaml:"model_texture"`
}

type Camera struct {
	Offset     [3]float32 `yaml:"offset,flow"`
	FOVDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	// Step is the clock advance per update, in radians.
	Step float32 `yaml:"step"`
}

type Terrain struct {
	Width     float32 `yaml:"width"`
	Depth     float32 `yaml:"depth"`
	Columns   int     `yaml:"columns"`
	Rows      int     `yaml:"rows"`
	MaxHeight float32 `yaml:"max_height"`
	// HideWireframe skips the black line pass drawn over the solid terrain.
	HideWireframe bool `yaml:"hide_wireframe"`
}

type Cone struct {
	Radius      float32    `yaml:"radius"`
	Height      float32    `yaml:"height"`
	Samples     int        `yaml:"samples"`
	Opacity     float32    `yaml:"opacity"`
	Color       [3]float32 `yaml:"color,flow"`
	TiltDegrees float32    `yaml:"tilt_degrees"`
	SpinRate    float32    `yaml:"spin_rate"`
	Offset      [3]float32 `yaml:"offset,flow"`
}

type Light struct {
	Position [4]float32 `yaml:"position,flow"`
	Color    [3]float32 `yaml:"color,flow"`
	Ambient  float32    `yaml:"ambient"`
	Diffuse  float32    `yaml:"diffuse"`
}

type Model struct {
	Offset [3]float32 `yaml:"offset,flow"`
	Scale  float32    `yaml:"scale"`
}

type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowAngle    bool `yaml:"show_angle"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
}

// Default returns the reference scene.
func Default() Config {
	return Config{
		Window: Window{
			Width:      1024,
			Height:     576,
			Title:      "terrain-demo",
			TargetFPS:  60,
			ClearColor: [3]float32{0.1, 0.1, 0.1},
		},
		Assets: Assets{
			Dir:          "assets",
			HeightMap:    "height-map.png",
			ModelMesh:    "lighthouse/lighthouse.obj",
			ModelTexture: "lighthouse/lighthouse.png",
		},
		Camera: Camera{
			Offset:     [3]float32{0, -5, -20},
			FOVDegrees: 45,
			Near:       1,
			Far:        500,
			Step:       0.005,
		},
		Terrain: Terrain{
			Width:     10,
			Depth:     10,
			Columns:   50,
			Rows:      50,
			MaxHeight: 5,
		},
		Cone: Cone{
			Radius:      2.4,
			Height:      5,
			Samples:     10,
			Opacity:     0.2,
			Color:       [3]float32{1, 1, 1},
			TiltDegrees: 90,
			SpinRate:    1,
			Offset:      [3]float32{0, -5, -5},
		},
		Light: Light{
			Position: [4]float32{10, 10, 10, 1},
			Color:    [3]float32{1, 1, 1},
			Ambient:  0.3,
			Diffuse:  0.7,
		},
		Model: Model{
			Offset: [3]float32{3, 0, -2},
			Scale:  1,
		},
	}
}

// Load reads the YAML file at path and merges every non-zero field onto Default(). A
// missing file is not an error. A malformed or invalid file returns Default() together
// with the error so the caller can warn and carry on.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("sceneconfig: read %s: %w", path, err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("sceneconfig: parse %s: %w", path, err)
	}
	merged, err := Merge(cfg, file)
	if err != nil {
		return cfg, err
	}
	if err := merged.Validate(); err != nil {
		return cfg, fmt.Errorf("sceneconfig: %s: %w", path, err)
	}
	return merged, nil
}

// Merge returns base with every non-zero field of override copied over it. Nested
// sections merge field by field; arrays replace as a whole.
func Merge(base, override Config) (Config, error) {
	out := base
	if err := copier.CopyWithOption(&out, &override, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return base, fmt.Errorf("sceneconfig: merge: %w", err)
	}
	return out, nil
}

// Save writes cfg to path as YAML, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AssetPath resolves name against Assets.Dir. Absolute names are returned unchanged.
func (c Config) AssetPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Assets.Dir, name)
}
