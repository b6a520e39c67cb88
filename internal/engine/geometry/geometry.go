// Package geometry holds static triangle meshes.
package geometry

import "fmt"

// Geometry is an indexed triangle mesh. Geometries are immutable once built
// and identified by ID, which the renderer uses to share uploaded buffers.
type Geometry struct {
	ID       string
	Vertices []float32 // xyz per vertex
	Normals  []float32 // xyz per vertex
	Indices  []uint16
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / 3
}

// IndexCount returns the number of indices.
func (g *Geometry) IndexCount() int {
	return len(g.Indices)
}

// Validate checks that the arrays describe a consistent triangle list.
func (g *Geometry) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("geometry has no id")
	}
	if len(g.Vertices)%3 != 0 {
		return fmt.Errorf("geometry %s: vertex array length %d is not a multiple of 3", g.ID, len(g.Vertices))
	}
	if len(g.Normals) != len(g.Vertices) {
		return fmt.Errorf("geometry %s: %d normals for %d vertex components", g.ID, len(g.Normals), len(g.Vertices))
	}
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("geometry %s: index count %d is not a multiple of 3", g.ID, len(g.Indices))
	}
	n := g.VertexCount()
	for i, idx := range g.Indices {
		if int(idx) >= n {
			return fmt.Errorf("geometry %s: index %d at %d out of range (%d vertices)", g.ID, idx, i, n)
		}
	}
	return nil
}
