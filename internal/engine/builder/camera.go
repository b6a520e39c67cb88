package builder

import (
	"github.com/Faultbox/scenekit/internal/engine/camera"
	"github.com/Faultbox/scenekit/internal/engine/controller"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/scene"
	"github.com/Faultbox/scenekit/pkg/math"
)

// CameraBuilder builds a Camera.
type CameraBuilder struct {
	base
	c *camera.Camera
}

// NewCamera starts a camera with default projection and a full viewport.
func NewCamera() *CameraBuilder {
	return &CameraBuilder{c: camera.New()}
}

// SetPosition sets the camera position.
func (b *CameraBuilder) SetPosition(v math.Vec3) *CameraBuilder {
	b.c.Transform().SetPosition(v)
	return b
}

// SetRotation sets the camera rotation in degrees.
func (b *CameraBuilder) SetRotation(v math.Vec3) *CameraBuilder {
	b.c.Transform().SetRotation(v)
	return b
}

// SetFov sets the field of view.
func (b *CameraBuilder) SetFov(v float32) *CameraBuilder {
	b.c.SetFov(v)
	return b
}

// SetNear sets the near plane.
func (b *CameraBuilder) SetNear(v float32) *CameraBuilder {
	b.c.SetNear(v)
	return b
}

// SetFar sets the far plane.
func (b *CameraBuilder) SetFar(v float32) *CameraBuilder {
	b.c.SetFar(v)
	return b
}

// SetViewport sets the viewport as x, y, width, height.
func (b *CameraBuilder) SetViewport(v [4]float32) *CameraBuilder {
	b.c.SetViewport(v)
	return b
}

// AttachInput binds the camera to its own input instead of the frame input.
func (b *CameraBuilder) AttachInput(in *input.Input) *CameraBuilder {
	attach(&b.base, b.c.Input().Attach, in)
	return b
}

// AttachComponentBuilder applies a transform built separately.
func (b *CameraBuilder) AttachComponentBuilder(tb *TransformBuilder) *CameraBuilder {
	attachTransform(&b.base, b.c.Transform(), tb)
	return b
}

// AttachController appends a camera controller.
func (b *CameraBuilder) AttachController(c controller.Controller[*camera.Camera]) *CameraBuilder {
	attach(&b.base, func(c controller.Controller[*camera.Camera]) error {
		if c == nil {
			return errNilController
		}
		b.c.Controllers().Attach(c)
		return nil
	}, c)
	return b
}

// Build returns the camera.
func (b *CameraBuilder) Build() (*camera.Camera, error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.c, nil
}

// AttachTo builds the camera and adds it to s.
func (b *CameraBuilder) AttachTo(s *scene.Scene) error {
	c, err := b.Build()
	if err != nil {
		return err
	}
	s.PushCamera(c)
	return nil
}

func (*CameraBuilder) sceneChild() {}
