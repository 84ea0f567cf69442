package camera

import "github.com/go-gl/mathgl/mgl32"

// Frame is the set of matrices one rendered frame needs. It is recomputed from the clock
// angle every frame and never stored across frames.
type Frame struct {
	Angle      float32
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Normal     mgl32.Mat4

	ConeModelView mgl32.Mat4
	ConeNormal    mgl32.Mat4

	ModelModelView mgl32.Mat4
}

// Compose builds the frame matrices for the given angle. projection is passed in because
// it only changes on resize.
func Compose(rig Rig, cone Spin, model Placement, angle float32, projection mgl32.Mat4) Frame {
	view := rig.View(angle)
	coneMV := cone.ModelView(view, angle)
	return Frame{
		Angle:          angle,
		View:           view,
		Projection:     projection,
		Normal:         NormalMatrix(view),
		ConeModelView:  coneMV,
		ConeNormal:     NormalMatrix(coneMV),
		ModelModelView: model.ModelView(view),
	}
}
