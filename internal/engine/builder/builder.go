// Package builder provides fluent constructors for scene entities.
//
// Setters chain and never fail on their own; the first error raised while
// attaching a component, controller or child is kept and returned by Build.
package builder

import (
	"errors"

	"github.com/Faultbox/scenekit/internal/engine/component"
	"github.com/Faultbox/scenekit/pkg/math"
)

// ErrNilBuilder is recorded when a nil builder is attached.
var ErrNilBuilder = errors.New("builder: nil builder")

type base struct {
	err error
}

func (b *base) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// attach hands c to set unless an earlier step already failed.
func attach[C any](b *base, set func(C) error, c C) {
	if b.err != nil {
		return
	}
	if err := set(c); err != nil {
		b.fail(err)
	}
}

// TransformBuilder builds a Transform.
type TransformBuilder struct {
	base
	t *component.Transform
}

// NewTransform starts a transform at the origin with unit scale.
func NewTransform() *TransformBuilder {
	return &TransformBuilder{t: component.NewTransform()}
}

// SetPosition sets the position.
func (b *TransformBuilder) SetPosition(v math.Vec3) *TransformBuilder {
	b.t.SetPosition(v)
	return b
}

// SetRotation sets the rotation in degrees.
func (b *TransformBuilder) SetRotation(v math.Vec3) *TransformBuilder {
	b.t.SetRotation(v)
	return b
}

// SetScale sets the scale.
func (b *TransformBuilder) SetScale(v math.Vec3) *TransformBuilder {
	b.t.SetScale(v)
	return b
}

// Build returns the transform.
func (b *TransformBuilder) Build() (*component.Transform, error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.t, nil
}

// attachTransform copies the transform built by tb into dst.
func attachTransform(b *base, dst *component.Transform, tb *TransformBuilder) {
	attach(b, func(tb *TransformBuilder) error {
		t, err := tb.Build()
		if err != nil {
			return err
		}
		dst.CopyFrom(t)
		return nil
	}, tb)
}
