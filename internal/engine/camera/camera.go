// Package camera provides the scene camera: a transform with cached view and
// projection matrices, a viewport and its own controller list.
package camera

import (
	"github.com/Faultbox/scenekit/internal/engine/component"
	"github.com/Faultbox/scenekit/internal/engine/controller"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Defaults for new cameras.
const (
	DefaultFov          = 30
	DefaultNear         = 0.01
	DefaultFar          = 1000
	DefaultCanvasWidth  = 1920
	DefaultCanvasHeight = 1080
)

// Camera renders the scene into a viewport. The view matrix depends only on
// position and rotation, the projection only on fov, near, far, aspect and
// canvas size; each is recomputed lazily when its own inputs change.
type Camera struct {
	transform *component.Transform

	// x, y, w, h; values in (0,1] are canvas fractions, others pixels.
	viewport [4]float32

	fov, near, far, aspect float32
	canvasW, canvasH       int32

	view          math.Mat4
	viewRevision  uint64
	viewValid     bool
	viewRecompute int

	projection          math.Mat4
	projectionDirty     bool
	projectionRecompute int

	controllers controller.List[*Camera]
	input       component.Slot[*input.Input]
}

// New creates a camera at the origin covering the whole canvas.
func New() *Camera {
	return &Camera{
		transform:       component.NewTransform(),
		viewport:        [4]float32{0, 0, 1, 1},
		fov:             DefaultFov,
		near:            DefaultNear,
		far:             DefaultFar,
		canvasW:         DefaultCanvasWidth,
		canvasH:         DefaultCanvasHeight,
		projectionDirty: true,
	}
}

// Transform returns the camera transform.
func (c *Camera) Transform() *component.Transform { return c.transform }

// Controllers returns the camera controllers.
func (c *Camera) Controllers() *controller.List[*Camera] { return &c.controllers }

// Input returns the camera's own input slot.
func (c *Camera) Input() *component.Slot[*input.Input] { return &c.input }

// Fov returns the field of view passed to the projection.
func (c *Camera) Fov() float32 { return c.fov }

// Near returns the near plane distance.
func (c *Camera) Near() float32 { return c.near }

// Far returns the far plane distance.
func (c *Camera) Far() float32 { return c.far }

// Aspect returns the projection aspect ratio.
func (c *Camera) Aspect() float32 { return c.aspect }

// CanvasSize returns the last canvas size the camera was given.
func (c *Camera) CanvasSize() (w, h int32) { return c.canvasW, c.canvasH }

// SetFov sets the field of view. The value is handed to the perspective
// function unchanged.
func (c *Camera) SetFov(v float32) { c.setProjection(&c.fov, v) }

// SetNear sets the near plane.
func (c *Camera) SetNear(v float32) { c.setProjection(&c.near, v) }

// SetFar sets the far plane.
func (c *Camera) SetFar(v float32) { c.setProjection(&c.far, v) }

// SetAspect sets the aspect ratio.
func (c *Camera) SetAspect(v float32) { c.setProjection(&c.aspect, v) }

func (c *Camera) setProjection(field *float32, v float32) {
	if *field == v {
		return
	}
	*field = v
	c.projectionDirty = true
}

// SetCanvasSize updates the canvas dimensions and the aspect ratio derived
// from them.
func (c *Camera) SetCanvasSize(w, h int32) {
	if c.canvasW != w || c.canvasH != h {
		c.canvasW, c.canvasH = w, h
		c.projectionDirty = true
	}
	if h > 0 {
		c.SetAspect(float32(w) / float32(h))
	}
}

// SetViewport sets the viewport as x, y, width, height.
func (c *Camera) SetViewport(v [4]float32) { c.viewport = v }

// ViewportParams returns the viewport as configured.
func (c *Camera) ViewportParams() [4]float32 { return c.viewport }

// Viewport resolves the viewport against a canvas size. Components in (0,1]
// are fractions of the canvas; anything else is taken as pixels.
func (c *Camera) Viewport(canvasW, canvasH int32) renderer.Rect {
	return renderer.Rect{
		X: resolve(c.viewport[0], canvasW),
		Y: resolve(c.viewport[1], canvasH),
		W: resolve(c.viewport[2], canvasW),
		H: resolve(c.viewport[3], canvasH),
	}
}

func resolve(v float32, max int32) int32 {
	if v > 0 && v <= 1 {
		return int32(v * float32(max))
	}
	return int32(v)
}

// ViewMatrix returns the inverse camera transform. Pitch is applied as
// 180 - rotation.x.
func (c *Camera) ViewMatrix() math.Mat4 {
	if rev := c.transform.Revision(); !c.viewValid || c.viewRevision != rev {
		r, p := c.transform.Rotation(), c.transform.Position()
		c.view = math.RotateEuler(math.Radians(180-r.X), math.Radians(r.Y), math.Radians(r.Z)).
			Mul(math.Translate(-p.X, -p.Y, -p.Z))
		c.viewRevision = rev
		c.viewValid = true
		c.viewRecompute++
	}
	return c.view
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	if c.projectionDirty {
		c.projection = math.Perspective(c.fov, c.aspect, c.near, c.far)
		c.projectionDirty = false
		c.projectionRecompute++
	}
	return c.projection
}

// Recomputes reports how often each matrix has been rebuilt.
func (c *Camera) Recomputes() (view, projection int) {
	return c.viewRecompute, c.projectionRecompute
}

// Prepare starts the camera's render pass: matrices are refreshed and the
// viewport is bound.
func (c *Camera) Prepare(dev renderer.Device) {
	c.ViewMatrix()
	c.ProjectionMatrix()
	dev.Viewport(c.Viewport(c.canvasW, c.canvasH))
}

// UpdateComponents updates the camera transform.
func (c *Camera) UpdateComponents(dt float32) {
	c.transform.Update(dt)
}

// UpdateControllers runs the camera controllers. A camera with its own input
// attached ignores the frame input.
func (c *Camera) UpdateControllers(dt float32, in *input.Input) {
	if own, err := c.input.Get(); err == nil {
		in = own
	}
	c.controllers.Update(c, dt, in)
}
