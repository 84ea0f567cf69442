package geometry

import "fmt"

// Grid is a regular lattice in the y=0 plane centered on the origin. Vertices are stored
// column by column: vertex (c, r) lives at index c*(Rows+1) + r.
type Grid struct {
	Width   float32
	Depth   float32
	Columns int
	Rows    int

	Positions []float32 // xyz, y is always 0
	UVs       []float32 // uv in [0,1]²
	Indices   []uint16  // two CCW triangles per cell, seen from +y
}

// VertexCount returns (Columns+1)*(Rows+1).
func (g *Grid) VertexCount() int {
	return len(g.Positions) / 3
}

// Index returns the vertex index of lattice point (c, r).
func (g *Grid) Index(c, r int) int {
	return c*(g.Rows+1) + r
}

// BuildGrid generates a width×depth lattice with the given number of cells along x
// (columns) and z (rows). Each cell produces the triangles (c,r)-(c,r+1)-(c+1,r) and
// (c+1,r)-(c,r+1)-(c+1,r+1), which share the (c,r+1)-(c+1,r) diagonal.
func BuildGrid(width, depth float32, columns, rows int) (*Grid, error) {
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: grid needs at least one column and one row, got %dx%d", ErrInvalidParameter, columns, rows)
	}
	if !(width > 0) || !(depth > 0) {
		return nil, fmt.Errorf("%w: grid extent must be positive, got %gx%g", ErrInvalidParameter, width, depth)
	}
	vertexCount := (columns + 1) * (rows + 1)
	if vertexCount > MaxVertices {
		return nil, fmt.Errorf("%w: %dx%d grid needs %d vertices, limit is %d", ErrInvalidParameter, columns, rows, vertexCount, MaxVertices)
	}

	g := &Grid{
		Width:     width,
		Depth:     depth,
		Columns:   columns,
		Rows:      rows,
		Positions: make([]float32, 0, vertexCount*3),
		UVs:       make([]float32, 0, vertexCount*2),
		Indices:   make([]uint16, 0, columns*rows*6),
	}

	x0 := -width / 2
	z0 := -depth / 2
	for c := 0; c <= columns; c++ {
		u := float32(c) / float32(columns)
		for r := 0; r <= rows; r++ {
			v := float32(r) / float32(rows)
			g.Positions = append(g.Positions, x0+u*width, 0, z0+v*depth)
			g.UVs = append(g.UVs, u, v)
		}
	}

	stride := rows + 1
	for c := 0; c < columns; c++ {
		for r := 0; r < rows; r++ {
			i00 := uint16(c*stride + r)
			i01 := i00 + 1
			i10 := i00 + uint16(stride)
			i11 := i10 + 1
			g.Indices = append(g.Indices,
				i00, i01, i10,
				i10, i01, i11,
			)
		}
	}
	return g, nil
}
