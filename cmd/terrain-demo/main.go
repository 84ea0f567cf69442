package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/pflag"

	"terrain-demo/internal/debug"
	"terrain-demo/internal/drawable"
	"terrain-demo/internal/env"
	"terrain-demo/internal/graphics"
	"terrain-demo/internal/logger"
	"terrain-demo/internal/scene"
	"terrain-demo/internal/sceneconfig"
)

func init() {
	// GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	log := logger.New()
	loadDotEnv(log, ".env")

	configPath := pflag.StringP("config", "c", env.String(env.ConfigPath, sceneconfig.DefaultPath), "scene config file (YAML)")
	assetsDir := pflag.StringP("assets", "a", env.String(env.AssetsDir, ""), "asset directory (overrides the config file)")
	showFPS := pflag.Bool("fps", false, "show the FPS overlay")
	showAngle := pflag.Bool("angle", false, "show the clock angle overlay")
	writeConfig := pflag.Bool("write-config", false, "write the effective config to --config and exit")
	pflag.Parse()

	cfg, err := sceneconfig.Load(*configPath)
	if err != nil {
		log.Warn("config: %v; using defaults", err)
	}
	if *assetsDir != "" {
		cfg.Assets.Dir = *assetsDir
	}
	cfg.Debug.ShowFPS = cfg.Debug.ShowFPS || *showFPS
	cfg.Debug.ShowAngle = cfg.Debug.ShowAngle || *showAngle

	if *writeConfig {
		if err := sceneconfig.Save(*configPath, cfg); err != nil {
			log.Error("write config: %v", err)
			os.Exit(1)
		}
		log.Info("wrote %s", *configPath)
		return
	}

	drawable.InstallTraceLog(func(level int, msg string) {
		switch {
		case level >= int(rl.LogError):
			log.Error("raylib: %s", msg)
		case level == int(rl.LogWarning):
			log.Warn("raylib: %s", msg)
		case level == int(rl.LogInfo):
			log.Info("raylib: %s", msg)
		}
	})

	opts := graphics.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
	}
	err = graphics.Run(opts, func(width, height int) (graphics.Renderer, error) {
		scn, err := scene.New(cfg, log, width, height)
		if err != nil {
			return nil, err
		}
		dbg := debug.New()
		dbg.ShowFPS = cfg.Debug.ShowFPS
		dbg.ShowAngle = cfg.Debug.ShowAngle
		dbg.ShowMemAlloc = cfg.Debug.ShowMemAlloc
		return &demo{Scene: scn, debug: dbg}, nil
	})
	if err != nil {
		var se *drawable.ShaderError
		if errors.As(err, &se) {
			log.Error("shader program %q failed to build", se.Program)
			for _, line := range se.Log {
				log.Error("  %s", line)
			}
		} else {
			log.Error("fatal: %v", err)
		}
		fmt.Fprintf(os.Stderr, "see %s for details\n", log.Path())
		os.Exit(1)
	}
}

// loadDotEnv applies path to the environment. A file that cannot be read is logged and
// the process environment is used as is.
func loadDotEnv(log *logger.Logger, path string) {
	if err := env.Load(path); err != nil {
		log.Warn("env: %s: %v; using the process environment", path, err)
	}
}

// demo draws the debug overlay on top of the scene.
type demo struct {
	*scene.Scene
	debug *debug.Debug
}

func (d *demo) Draw() {
	d.Scene.Draw()
	d.debug.Draw(d.Scene.Angle())
}
