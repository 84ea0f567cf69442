// Package camera holds the demo's only persistent animation state, the rotation clock, and
// derives every per-frame matrix from it. All matrices are column-major mgl32 values built
// the same way the shaders consume them: model_view = view * model.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rig is the fixed camera placement. The view orbits the scene by rotating the world about
// the vertical axis after it has been pushed away by Offset.
type Rig struct {
	Offset     mgl32.Vec3
	FOVDegrees float32
	Near       float32
	Far        float32
}

// DefaultRig matches the reference scene: camera 20 units back and 5 units above the
// terrain, 45° vertical field of view, clip planes at 1 and 500.
func DefaultRig() Rig {
	return Rig{
		Offset:     mgl32.Vec3{0, -5, -20},
		FOVDegrees: 45,
		Near:       1,
		Far:        500,
	}
}

// View returns translate(Offset) * rotateY(angle).
func (r Rig) View(angle float32) mgl32.Mat4 {
	return mgl32.Translate3D(r.Offset[0], r.Offset[1], r.Offset[2]).Mul4(mgl32.HomogRotate3DY(angle))
}

// Projection returns the perspective projection for a viewport of the given pixel size.
// A zero or negative height is treated as 1 so minimized windows do not produce NaNs.
func (r Rig) Projection(width, height int) mgl32.Mat4 {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(r.FOVDegrees), aspect, r.Near, r.Far)
}

// NormalMatrix returns transpose(inverse(modelView)).
func NormalMatrix(modelView mgl32.Mat4) mgl32.Mat4 {
	return modelView.Inv().Transpose()
}

// Spin places an object that tilts once and then turns about its own z axis at Rate times
// the clock angle, in the opposite direction of the camera orbit.
type Spin struct {
	TiltDegrees float32
	Rate        float32
	Offset      mgl32.Vec3
}

// ModelView returns view * rotateX(tilt) * rotateZ(-angle*Rate) * translate(Offset).
func (s Spin) ModelView(view mgl32.Mat4, angle float32) mgl32.Mat4 {
	return view.
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(s.TiltDegrees))).
		Mul4(mgl32.HomogRotate3DZ(-angle * s.Rate)).
		Mul4(mgl32.Translate3D(s.Offset[0], s.Offset[1], s.Offset[2]))
}

// Placement is a static scale + translate applied on top of the shared view.
type Placement struct {
	Offset mgl32.Vec3
	Scale  float32
}

// ModelView returns view * translate(Offset) * scale(Scale).
func (p Placement) ModelView(view mgl32.Mat4) mgl32.Mat4 {
	return view.
		Mul4(mgl32.Translate3D(p.Offset[0], p.Offset[1], p.Offset[2])).
		Mul4(mgl32.Scale3D(p.Scale, p.Scale, p.Scale))
}
