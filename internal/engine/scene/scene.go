// Package scene groups cameras and objects and drives their per-frame
// update and render passes.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/camera"
	"github.com/Faultbox/scenekit/internal/engine/component"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/object"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/internal/logger"
)

// Scene owns a set of cameras and objects. Every camera renders every
// object into its own viewport, in attachment order.
type Scene struct {
	name string

	cameras component.Children[*camera.Camera]
	objects component.Children[object.Model]

	// Geometry buffers shared by this scene's objects.
	cache *renderer.Cache

	initialized bool
}

// New creates an empty scene.
func New(name string) *Scene {
	return &Scene{
		name:  name,
		cache: renderer.NewCache(),
	}
}

// Name returns the scene name.
func (s *Scene) Name() string { return s.name }

// PushCamera adds a camera.
func (s *Scene) PushCamera(c *camera.Camera) { s.cameras.Push(c) }

// PushObject adds an object.
func (s *Scene) PushObject(m object.Model) { s.objects.Push(m) }

// Cameras returns the scene cameras.
func (s *Scene) Cameras() *component.Children[*camera.Camera] { return &s.cameras }

// Objects returns the scene objects.
func (s *Scene) Objects() *component.Children[object.Model] { return &s.objects }

// Cache returns the scene's geometry buffer cache.
func (s *Scene) Cache() *renderer.Cache { return s.cache }

// Init allocates device resources for every object.
func (s *Scene) Init(dev renderer.Device) error {
	for i, m := range s.objects.All() {
		if err := m.Init(dev, s.cache); err != nil {
			return fmt.Errorf("scene %s: object %d: %w", s.name, i, err)
		}
	}
	s.initialized = true

	logger.Info("scene initialized",
		zap.String("scene", s.name),
		zap.Int("cameras", s.cameras.Len()),
		zap.Int("objects", s.objects.Len()),
		zap.Int("geometries", s.cache.Len()),
	)
	return nil
}

// Initialized reports whether Init succeeded.
func (s *Scene) Initialized() bool { return s.initialized }

// UpdateComponents updates cameras, then objects.
func (s *Scene) UpdateComponents(dt float32) {
	s.cameras.UpdateComponents(dt)
	s.objects.UpdateComponents(dt)
}

// UpdateControllers runs camera controllers, then object controllers.
func (s *Scene) UpdateControllers(dt float32, in *input.Input) {
	s.cameras.UpdateControllers(dt, in)
	s.objects.UpdateControllers(dt, in)
}

// SetCanvasSize forwards the canvas size to every camera.
func (s *Scene) SetCanvasSize(w, h int32) {
	for _, c := range s.cameras.All() {
		c.SetCanvasSize(w, h)
	}
}

// Render clears the frame and draws one pass per camera.
func (s *Scene) Render(dev renderer.Device) {
	dev.Clear()
	for _, c := range s.cameras.All() {
		c.Prepare(dev)
		for _, m := range s.objects.All() {
			m.Render(dev, c)
		}
	}
}
