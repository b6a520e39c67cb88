// Package renderer defines the drawing capability the scene runtime renders
// through. Backends live in subpackages; this package stays free of cgo.
package renderer

import (
	"errors"

	"github.com/Faultbox/scenekit/internal/engine/geometry"
	"github.com/Faultbox/scenekit/pkg/math"
)

// ErrBufferCreate is returned when a device cannot allocate geometry buffers.
var ErrBufferCreate = errors.New("renderer: buffer creation failed")

// Uniform names bound for every mesh draw.
const (
	UniformWorld      = "u_world"
	UniformView       = "u_view"
	UniformProjection = "u_projection"
	UniformNormal     = "u_normal"
)

// Program is a linked shader program owned by the device.
// Entities reference it; they never free it.
type Program uint32

// Rect is a viewport rectangle in pixels.
type Rect struct {
	X, Y, W, H int32
}

// Buffers holds the device handles of one uploaded geometry.
type Buffers struct {
	Geometry   string
	VAO        uint32
	Vertices   uint32
	Normals    uint32
	Indices    uint32
	IndexCount int32
}

// Device is the graphics backend the scene draws through.
// Matrices are column-major.
type Device interface {
	CreateBuffers(g *geometry.Geometry) (*Buffers, error)
	Clear()
	Viewport(r Rect)
	UseProgram(p Program)
	UniformMatrix4(p Program, name string, m *math.Mat4)
	DrawIndexed(p Program, b *Buffers)
}
