// Package geometry generates the vertex, normal and index buffers for the procedural
// primitives drawn by the demo: the terrain grid and the cone. Buffers are flat float32
// slices (3 components per position/normal, 2 per texture coordinate) so they can be handed
// straight to a GPU mesh. Nothing here touches the GPU or the filesystem.
package geometry

import "errors"

// ErrInvalidParameter is returned (wrapped) when a generator is called with degenerate
// dimensions. No buffer is produced in that case.
var ErrInvalidParameter = errors.New("geometry: invalid parameter")

// MaxVertices is the largest vertex count addressable by 16-bit indices.
const MaxVertices = 1 << 16

// Vec3 returns the i-th xyz triple of a packed buffer.
func Vec3(buf []float32, i int) [3]float32 {
	return [3]float32{buf[i*3], buf[i*3+1], buf[i*3+2]}
}

// Vec2 returns the i-th uv pair of a packed buffer.
func Vec2(buf []float32, i int) [2]float32 {
	return [2]float32{buf[i*2], buf[i*2+1]}
}
