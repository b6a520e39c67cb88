package builder

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scenekit/internal/engine/controller"
	"github.com/Faultbox/scenekit/internal/engine/object"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/internal/engine/scene"
	"github.com/Faultbox/scenekit/pkg/math"
)

var errNilController = errors.New("builder: nil controller")

// Object is a model that carries controllers for its own type.
type Object[T any] interface {
	object.Model
	controller.Controllable[T]
}

// ObjectBuilder builds a renderable object.
type ObjectBuilder[T Object[T]] struct {
	base
	obj T
}

// NewObject starts a builder around obj.
func NewObject[T Object[T]](obj T) *ObjectBuilder[T] {
	return &ObjectBuilder[T]{obj: obj}
}

// NewCube starts a unit cube builder.
func NewCube() *ObjectBuilder[*object.Mesh] {
	return NewObject(object.NewCube())
}

// SetPosition sets the position.
func (b *ObjectBuilder[T]) SetPosition(v math.Vec3) *ObjectBuilder[T] {
	b.obj.Transform().SetPosition(v)
	return b
}

// SetRotation sets the rotation in degrees.
func (b *ObjectBuilder[T]) SetRotation(v math.Vec3) *ObjectBuilder[T] {
	b.obj.Transform().SetRotation(v)
	return b
}

// SetScale sets the scale.
func (b *ObjectBuilder[T]) SetScale(v math.Vec3) *ObjectBuilder[T] {
	b.obj.Transform().SetScale(v)
	return b
}

// AttachShader sets the shader program. An object takes one shader; a
// second one is a construction error.
func (b *ObjectBuilder[T]) AttachShader(p renderer.Program) *ObjectBuilder[T] {
	attach(&b.base, func(p renderer.Program) error {
		if err := b.obj.Shader().Attach(p); err != nil {
			return fmt.Errorf("attach shader %d: %w", p, err)
		}
		return nil
	}, p)
	return b
}

// AttachComponentBuilder applies a transform built separately.
func (b *ObjectBuilder[T]) AttachComponentBuilder(tb *TransformBuilder) *ObjectBuilder[T] {
	attachTransform(&b.base, b.obj.Transform(), tb)
	return b
}

// AttachController appends a controller.
func (b *ObjectBuilder[T]) AttachController(c controller.Controller[T]) *ObjectBuilder[T] {
	attach(&b.base, func(c controller.Controller[T]) error {
		if c == nil {
			return errNilController
		}
		b.obj.Controllers().Attach(c)
		return nil
	}, c)
	return b
}

// Build returns the object. An object without a shader builds fine but
// panics when rendered.
func (b *ObjectBuilder[T]) Build() (T, error) {
	if b == nil {
		var zero T
		return zero, ErrNilBuilder
	}
	if b.err != nil {
		var zero T
		return zero, b.err
	}
	return b.obj, nil
}

// AttachTo builds the object and adds it to s.
func (b *ObjectBuilder[T]) AttachTo(s *scene.Scene) error {
	obj, err := b.Build()
	if err != nil {
		return err
	}
	s.PushObject(obj)
	return nil
}

func (*ObjectBuilder[T]) sceneChild() {}
