package geometry

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConeFanSizes(t *testing.T) {
	for _, n := range []int{3, 4, 10, 64, 361} {
		cone, err := BuildCone(2.4, 5, n)
		require.NoError(t, err)

		assert.Equal(t, n+2, cone.Base.VertexCount())
		assert.Equal(t, n+2, cone.Apex.VertexCount())
		assert.Len(t, cone.Base.Normals, len(cone.Base.Positions))
		assert.Len(t, cone.Apex.Normals, len(cone.Apex.Positions))

		// Closing repetition of the first rim vertex.
		assert.Equal(t, Vec3(cone.Base.Positions, 1), Vec3(cone.Base.Positions, n+1))
		assert.Equal(t, Vec3(cone.Apex.Positions, 1), Vec3(cone.Apex.Positions, n+1))

		for i := 1; i <= n+1; i++ {
			nrm := Vec3(cone.Base.Normals, i)
			length := math32.Sqrt(nrm[0]*nrm[0] + nrm[1]*nrm[1] + nrm[2]*nrm[2])
			assert.InDelta(t, 1, length, 1e-6, "rim normal %d", i)
			assert.Equal(t, float32(0), nrm[1])
		}
	}
}

func TestBuildConeRimSamples(t *testing.T) {
	const n = 10
	cone, err := BuildCone(2.4, 5, n)
	require.NoError(t, err)

	assert.Equal(t, [3]float32{0, 0, 0}, Vec3(cone.Base.Positions, 0))
	assert.Equal(t, [3]float32{0, 5, 0}, Vec3(cone.Apex.Positions, 0))

	step := 2 * math32.Pi / n
	prev := float32(-1)
	for i := 0; i < n; i++ {
		p := Vec3(cone.Base.Positions, i+1)
		assert.InDelta(t, 2.4*math32.Cos(float32(i)*step), p[0], 1e-6)
		assert.Equal(t, float32(0), p[1])
		assert.InDelta(t, 2.4*math32.Sin(float32(i)*step), p[2], 1e-6)

		angle := math32.Atan2(p[2], p[0])
		if angle < 0 {
			angle += 2 * math32.Pi
		}
		if i == 0 {
			assert.InDelta(t, 0, angle, 1e-6)
		}
		assert.Greater(t, angle, prev)
		assert.Less(t, angle, 2*math32.Pi)
		prev = angle
	}

	// Apex fan walks the same rim as the base fan.
	assert.Equal(t, cone.Base.Positions[3:], cone.Apex.Positions[3:])
}

func TestBuildConeNormalLayout(t *testing.T) {
	cone, err := BuildCone(2.4, 5, 10)
	require.NoError(t, err)

	normals := cone.Base.Normals
	assert.Equal(t, []float32{0, -1, 0}, normals[:3])
	assert.Equal(t, normals[3:6], normals[len(normals)-3:])

	for i := 0; i < cone.Apex.VertexCount(); i++ {
		assert.Equal(t, [3]float32{0, 1, 0}, Vec3(cone.Apex.Normals, i))
	}
}

// faceNormal returns the unnormalized normal of triangle a, b, c under the
// counter-clockwise convention.
func faceNormal(a, b, c [3]float32) [3]float32 {
	u := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	return [3]float32{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

func TestConeFanWinding(t *testing.T) {
	cone, err := BuildCone(2.4, 5, 10)
	require.NoError(t, err)

	// Base triangles are counter-clockwise seen from below: their normal points down, out
	// of the cone.
	tris := cone.Base.Triangles()
	for i := 0; i < len(tris); i += 3 {
		n := faceNormal(Vec3(cone.Base.Positions, int(tris[i])),
			Vec3(cone.Base.Positions, int(tris[i+1])),
			Vec3(cone.Base.Positions, int(tris[i+2])))
		assert.Less(t, n[1], float32(0), "base triangle %d", i/3)
	}

	// Apex triangles wind the other way: clockwise seen from outside, so their
	// counter-clockwise normal points into the cone.
	tris = cone.Apex.Triangles()
	for i := 0; i < len(tris); i += 3 {
		a := Vec3(cone.Apex.Positions, int(tris[i]))
		b := Vec3(cone.Apex.Positions, int(tris[i+1]))
		c := Vec3(cone.Apex.Positions, int(tris[i+2]))
		n := faceNormal(a, b, c)
		outward := [3]float32{b[0] + c[0], 0, b[2] + c[2]}
		dot := n[0]*outward[0] + n[1]*outward[1] + n[2]*outward[2]
		assert.Less(t, dot, float32(0), "apex triangle %d", i/3)
	}
}

func TestFanTriangles(t *testing.T) {
	cone, err := BuildCone(1, 2, 4)
	require.NoError(t, err)

	tris := cone.Base.Triangles()
	assert.Equal(t, []uint16{
		0, 1, 2,
		0, 2, 3,
		0, 3, 4,
		0, 4, 5,
	}, tris)

	var empty Fan
	assert.Nil(t, empty.Triangles())
}

func TestBuildConeRejectsDegenerateInput(t *testing.T) {
	for _, tc := range []struct {
		name    string
		radius  float32
		samples int
	}{
		{"no samples", 2.4, 0},
		{"two samples", 2.4, 2},
		{"negative samples", 2.4, -5},
		{"zero radius", 0, 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cone, err := BuildCone(tc.radius, 5, tc.samples)
			assert.Nil(t, cone)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
		})
	}
}

func TestBuildConeIsDeterministic(t *testing.T) {
	a, err := BuildCone(2.4, 5, 32)
	require.NoError(t, err)
	b, err := BuildCone(2.4, 5, 32)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
