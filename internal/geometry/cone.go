package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Fan is a vertex sequence drawn as a triangle fan: triangle i is built from vertex 0 and
// vertices i, i+1.
type Fan struct {
	Positions []float32
	Normals   []float32
}

// VertexCount returns the number of vertices in the fan.
func (f *Fan) VertexCount() int {
	return len(f.Positions) / 3
}

// Triangles returns the triangle-list indices equivalent to the fan, preserving the fan's
// winding.
func (f *Fan) Triangles() []uint16 {
	n := f.VertexCount()
	if n < 3 {
		return nil
	}
	idx := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		idx = append(idx, 0, uint16(i), uint16(i+1))
	}
	return idx
}

// Cone is a closed-base cone standing on the y=0 plane: a base fan around the center of the
// base circle and an apex fan around the tip.
type Cone struct {
	Radius  float32
	Height  float32
	Samples int

	Base Fan
	Apex Fan
}

// BuildCone samples the base circle at angles i*2π/samples for i in [0, samples), then
// repeats the first rim vertex to close both fans without a gap.
func BuildCone(radius, height float32, samples int) (*Cone, error) {
	if samples < 3 {
		return nil, fmt.Errorf("%w: cone needs at least 3 base samples, got %d", ErrInvalidParameter, samples)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: cone radius must be positive, got %g", ErrInvalidParameter, radius)
	}
	if samples+2 > MaxVertices {
		return nil, fmt.Errorf("%w: %d base samples exceed the index range", ErrInvalidParameter, samples)
	}

	n := samples + 2
	cone := &Cone{
		Radius:  radius,
		Height:  height,
		Samples: samples,
		Base: Fan{
			Positions: make([]float32, 0, n*3),
			Normals:   make([]float32, 0, n*3),
		},
		Apex: Fan{
			Positions: make([]float32, 0, n*3),
			Normals:   make([]float32, 0, n*3),
		},
	}

	cone.Base.Positions = append(cone.Base.Positions, 0, 0, 0)
	cone.Base.Normals = append(cone.Base.Normals, 0, -1, 0)
	cone.Apex.Positions = append(cone.Apex.Positions, 0, height, 0)

	step := 2 * math32.Pi / float32(samples)
	for i := 0; i < samples; i++ {
		cos, sin := math32.Cos(float32(i)*step), math32.Sin(float32(i)*step)
		cone.Base.Positions = append(cone.Base.Positions, cos*radius, 0, sin*radius)
		cone.Base.Normals = append(cone.Base.Normals, cos, 0, sin)
	}
	cone.Base.Positions = append(cone.Base.Positions, cone.Base.Positions[3:6]...)
	cone.Base.Normals = append(cone.Base.Normals, cone.Base.Normals[3:6]...)

	// The apex fan shares the closed rim of the base fan.
	cone.Apex.Positions = append(cone.Apex.Positions, cone.Base.Positions[3:]...)
	for i := 0; i < n; i++ {
		cone.Apex.Normals = append(cone.Apex.Normals, 0, 1, 0)
	}
	return cone, nil
}
