package sceneconfig

import (
	"errors"
	"fmt"

	"terrain-demo/internal/geometry"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects values the renderer cannot use. Mesh parameters are checked again by
// the geometry builders; here they are rejected early so a bad file falls back to defaults
// instead of failing scene construction.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180:
		return invalid("camera fov %v", c.Camera.FOVDegrees)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return invalid("camera clip planes %v..%v", c.Camera.Near, c.Camera.Far)
	case c.Camera.Step < 0:
		return invalid("camera step %v", c.Camera.Step)
	case c.Terrain.Width <= 0 || c.Terrain.Depth <= 0:
		return invalid("terrain extent %vx%v", c.Terrain.Width, c.Terrain.Depth)
	case c.Terrain.Columns < 1 || c.Terrain.Rows < 1:
		return invalid("terrain cells %dx%d", c.Terrain.Columns, c.Terrain.Rows)
	case (c.Terrain.Columns+1)*(c.Terrain.Rows+1) > geometry.MaxVertices:
		return invalid("terrain cells %dx%d exceed %d vertices", c.Terrain.Columns, c.Terrain.Rows, geometry.MaxVertices)
	case c.Cone.Radius <= 0 || c.Cone.Samples < 3:
		return invalid("cone radius %v samples %d", c.Cone.Radius, c.Cone.Samples)
	case c.Cone.Samples+2 > geometry.MaxVertices:
		return invalid("cone samples %d exceed %d vertices", c.Cone.Samples, geometry.MaxVertices)
	case c.Cone.Opacity < 0 || c.Cone.Opacity > 1:
		return invalid("cone opacity %v", c.Cone.Opacity)
	case c.Model.Scale <= 0:
		return invalid("model scale %v", c.Model.Scale)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}
