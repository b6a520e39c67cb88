package object

import (
	"fmt"

	"github.com/Faultbox/scenekit/internal/engine/camera"
	"github.com/Faultbox/scenekit/internal/engine/component"
	"github.com/Faultbox/scenekit/internal/engine/controller"
	"github.com/Faultbox/scenekit/internal/engine/geometry"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
)

// Mesh draws a static geometry with a shader program.
type Mesh struct {
	transform   *component.Transform
	shader      component.Slot[renderer.Program]
	controllers controller.List[*Mesh]

	geometry *geometry.Geometry
	buffers  *renderer.Buffers
}

// New creates a mesh for g at the origin.
func New(g *geometry.Geometry) *Mesh {
	return &Mesh{
		transform: component.NewTransform(),
		geometry:  g,
	}
}

// NewCube creates a unit cube mesh.
func NewCube() *Mesh {
	return New(geometry.Cube())
}

// Transform returns the mesh transform.
func (m *Mesh) Transform() *component.Transform { return m.transform }

// Shader returns the shader slot.
func (m *Mesh) Shader() *component.Slot[renderer.Program] { return &m.shader }

// Controllers returns the mesh controllers.
func (m *Mesh) Controllers() *controller.List[*Mesh] { return &m.controllers }

// Geometry returns the mesh geometry.
func (m *Mesh) Geometry() *geometry.Geometry { return m.geometry }

// Buffers returns the uploaded buffers, or nil before Init.
func (m *Mesh) Buffers() *renderer.Buffers { return m.buffers }

// Init uploads the geometry through cache, so meshes sharing a geometry
// share buffers.
func (m *Mesh) Init(dev renderer.Device, cache *renderer.Cache) error {
	if m.buffers != nil {
		return nil
	}
	b, err := cache.Buffers(dev, m.geometry)
	if err != nil {
		return fmt.Errorf("init mesh: %w", err)
	}
	m.buffers = b
	return nil
}

// Render draws the mesh.
func (m *Mesh) Render(dev renderer.Device, cam *camera.Camera) {
	if m.buffers == nil {
		panic(fmt.Sprintf("object: mesh %q rendered before Init", m.geometry.ID))
	}
	prog, err := m.shader.Get()
	if err != nil {
		panic(fmt.Sprintf("object: mesh %q has no shader: %v", m.geometry.ID, err))
	}
	Draw(dev, prog, m.buffers, m.transform.Matrix(), cam)
}

// UpdateComponents updates the mesh transform.
func (m *Mesh) UpdateComponents(dt float32) {
	m.transform.Update(dt)
}

// UpdateControllers runs the mesh controllers.
func (m *Mesh) UpdateControllers(dt float32, in *input.Input) {
	m.controllers.Update(m, dt, in)
}
