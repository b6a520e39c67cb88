// Package opengl implements the renderer device on OpenGL 4.1 core.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/geometry"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/internal/logger"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Vertex attribute locations used by the object shaders.
const (
	attribPosition = 0
	attribNormal   = 1
)

var _ renderer.Device = (*Device)(nil)

// Device draws through the current OpenGL context.
type Device struct {
	uniforms map[renderer.Program]map[string]int32
	buffers  []*renderer.Buffers
}

// New creates a device.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0, 0, 0, 1)

	return &Device{uniforms: make(map[renderer.Program]map[string]int32)}, nil
}

// Close releases every buffer created by the device.
func (d *Device) Close() {
	logger.Info("closing renderer", zap.Int("geometries", len(d.buffers)))
	for _, b := range d.buffers {
		gl.DeleteVertexArrays(1, &b.VAO)
		ids := []uint32{b.Vertices, b.Normals, b.Indices}
		gl.DeleteBuffers(int32(len(ids)), &ids[0])
	}
	d.buffers = nil
}

// CreateBuffers uploads g into a vertex array with separate position, normal
// and index buffers.
func (d *Device) CreateBuffers(g *geometry.Geometry) (*renderer.Buffers, error) {
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return nil, fmt.Errorf("geometry %s is empty", g.ID)
	}

	b := &renderer.Buffers{Geometry: g.ID, IndexCount: int32(len(g.Indices))}

	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	b.Vertices = arrayBuffer(g.Vertices, attribPosition)
	b.Normals = arrayBuffer(g.Normals, attribNormal)

	gl.GenBuffers(1, &b.Indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.Indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*2, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("geometry %s: GL error 0x%x", g.ID, code)
	}

	d.buffers = append(d.buffers, b)
	logger.Debug("buffers created",
		zap.String("geometry", g.ID),
		zap.Uint32("vao", b.VAO),
	)
	return b, nil
}

func arrayBuffer(data []float32, location uint32) uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(location, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(location)
	return id
}

// Clear clears color and depth.
func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport sets the GL viewport.
func (d *Device) Viewport(r renderer.Rect) {
	gl.Viewport(r.X, r.Y, r.W, r.H)
}

// UseProgram binds a program.
func (d *Device) UseProgram(p renderer.Program) {
	gl.UseProgram(uint32(p))
}

// UniformMatrix4 uploads a column-major matrix. Unknown uniforms are ignored.
func (d *Device) UniformMatrix4(p renderer.Program, name string, m *math.Mat4) {
	loc := d.uniform(p, name)
	if loc < 0 {
		return
	}
	gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
}

func (d *Device) uniform(p renderer.Program, name string) int32 {
	locs, ok := d.uniforms[p]
	if !ok {
		locs = make(map[string]int32)
		d.uniforms[p] = locs
	}
	loc, ok := locs[name]
	if !ok {
		loc = gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
		locs[name] = loc
		if loc < 0 {
			logger.Warn("uniform not found", zap.Uint32("program", uint32(p)), zap.String("name", name))
		}
	}
	return loc
}

// DrawIndexed draws the triangles of b.
func (d *Device) DrawIndexed(_ renderer.Program, b *renderer.Buffers) {
	gl.BindVertexArray(b.VAO)
	gl.DrawElements(gl.TRIANGLES, b.IndexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (d *Device) ReadPixels(w, h int32) []byte {
	pixels := make([]byte, int(w)*int(h)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}
