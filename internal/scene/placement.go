package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"terrain-demo/internal/camera"
	"terrain-demo/internal/sceneconfig"
)

func rigFrom(cfg sceneconfig.Config) camera.Rig {
	return camera.Rig{
		Offset:     mgl32.Vec3(cfg.Camera.Offset),
		FOVDegrees: cfg.Camera.FOVDegrees,
		Near:       cfg.Camera.Near,
		Far:        cfg.Camera.Far,
	}
}

func spinFrom(cfg sceneconfig.Config) camera.Spin {
	return camera.Spin{
		TiltDegrees: cfg.Cone.TiltDegrees,
		Rate:        cfg.Cone.SpinRate,
		Offset:      mgl32.Vec3(cfg.Cone.Offset),
	}
}

func placementFrom(cfg sceneconfig.Config) camera.Placement {
	return camera.Placement{
		Offset: mgl32.Vec3(cfg.Model.Offset),
		Scale:  cfg.Model.Scale,
	}
}
