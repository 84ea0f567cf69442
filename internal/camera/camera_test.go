package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func transform(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func TestClockAdvance(t *testing.T) {
	c := NewClock(DefaultStep)
	assert.Equal(t, float32(0), c.Angle())
	for i := 0; i < 200; i++ {
		c.Advance()
	}
	assert.InDelta(t, 1.0, c.Angle(), 1e-4)
	assert.Equal(t, float32(DefaultStep), c.Step())
}

func TestViewAtRest(t *testing.T) {
	rig := DefaultRig()
	view := rig.View(0)
	assert.True(t, view.ApproxEqualThreshold(mgl32.Translate3D(0, -5, -20), tol))
	assertVec3(t, mgl32.Vec3{0, -5, -20}, transform(view, mgl32.Vec3{}))
}

func TestViewRotatesAboutY(t *testing.T) {
	rig := DefaultRig()
	view := rig.View(math32.Pi / 2)
	// Ry(90°) maps +x onto -z before the camera offset is applied.
	assertVec3(t, mgl32.Vec3{0, -5, -21}, transform(view, mgl32.Vec3{1, 0, 0}))
	// The vertical axis is unaffected by the orbit.
	assertVec3(t, mgl32.Vec3{0, -4, -20}, transform(view, mgl32.Vec3{0, 1, 0}))
}

func TestProjection(t *testing.T) {
	rig := DefaultRig()
	p := rig.Projection(800, 600)
	f := 1 / math32.Tan(mgl32.DegToRad(22.5))
	assert.InDelta(t, f, p[5], tol)
	assert.InDelta(t, f/(800.0/600.0), p[0], tol)
	assert.InDelta(t, -1, p[11], tol)

	// Degenerate sizes are clamped rather than dividing by zero.
	z := rig.Projection(800, 0)
	for _, v := range z {
		assert.False(t, math32.IsNaN(v) || math32.IsInf(v, 0))
	}
	assert.Equal(t, rig.Projection(800, 1), z)
}

func TestNormalMatrixOfRigidTransform(t *testing.T) {
	view := DefaultRig().View(0.7)
	n := NormalMatrix(view)
	// For rotation + translation the normal matrix keeps the rotation part.
	assert.True(t, n.Mat3().ApproxEqualThreshold(view.Mat3(), tol))
}

func TestSpinModelView(t *testing.T) {
	cone := Spin{TiltDegrees: 90, Rate: 1, Offset: mgl32.Vec3{0, -5, -5}}
	mv := cone.ModelView(mgl32.Ident4(), 0)
	// Rx(90°) * (0,-5,-5) = (0,5,-5).
	assertVec3(t, mgl32.Vec3{0, 5, -5}, transform(mv, mgl32.Vec3{}))

	still := Spin{TiltDegrees: 90, Rate: 0, Offset: mgl32.Vec3{0, -5, -5}}
	assert.True(t, still.ModelView(mgl32.Ident4(), 0).ApproxEqualThreshold(still.ModelView(mgl32.Ident4(), 3), tol))

	fast := Spin{TiltDegrees: 90, Rate: 2, Offset: mgl32.Vec3{0, -5, -5}}
	assert.True(t, fast.ModelView(mgl32.Ident4(), 0.5).ApproxEqualThreshold(cone.ModelView(mgl32.Ident4(), 1), tol))
}

func TestPlacementModelView(t *testing.T) {
	p := Placement{Offset: mgl32.Vec3{3, 0, -2}, Scale: 2}
	mv := p.ModelView(mgl32.Ident4())
	assertVec3(t, mgl32.Vec3{5, 2, 0}, transform(mv, mgl32.Vec3{1, 1, 1}))
}

func TestCompose(t *testing.T) {
	rig := DefaultRig()
	cone := Spin{TiltDegrees: 90, Rate: 1, Offset: mgl32.Vec3{0, -5, -5}}
	model := Placement{Scale: 1}
	proj := rig.Projection(640, 480)

	f := Compose(rig, cone, model, 0.25, proj)
	assert.Equal(t, float32(0.25), f.Angle)
	assert.Equal(t, proj, f.Projection)
	assert.True(t, f.View.ApproxEqualThreshold(rig.View(0.25), tol))
	assert.True(t, f.ConeModelView.ApproxEqualThreshold(cone.ModelView(f.View, 0.25), tol))
	assert.True(t, f.ConeNormal.ApproxEqualThreshold(f.ConeModelView.Inv().Transpose(), tol))
	assert.True(t, f.ModelModelView.ApproxEqualThreshold(f.View, tol))
}
