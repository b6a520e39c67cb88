// Package component defines the per-entity state protocol of the scene
// runtime: components with a per-frame update hook, attach-once slots,
// ordered child containers and the transform every entity carries.
package component

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
)

var (
	// ErrNotAttached is returned when reading a slot that was never filled.
	ErrNotAttached = errors.New("component not attached")
	// ErrAlreadyAttached is returned when filling a slot a second time.
	ErrAlreadyAttached = errors.New("component already attached")
)

// Component is internal entity state with a per-frame update hook.
type Component interface {
	Update(dt float32)
}

// Entity is anything the scene drives each frame. Components are updated
// before controllers.
type Entity interface {
	UpdateComponents(dt float32)
	UpdateControllers(dt float32, in *input.Input)
}

// HasTransform is implemented by entities placed in the world.
type HasTransform interface {
	Transform() *Transform
}

// HasShader is implemented by entities drawn with a shader program.
type HasShader interface {
	Shader() *Slot[renderer.Program]
}

// HasInput is implemented by entities bound to their own input source.
type HasInput interface {
	Input() *Slot[*input.Input]
}

// Slot holds at most one component of type C.
type Slot[C any] struct {
	value    C
	attached bool
}

// Attach fills the slot. A slot can be filled once.
func (s *Slot[C]) Attach(c C) error {
	if s.attached {
		return fmt.Errorf("%T: %w", c, ErrAlreadyAttached)
	}
	s.value = c
	s.attached = true
	return nil
}

// Get returns the attached component.
func (s *Slot[C]) Get() (C, error) {
	if !s.attached {
		var zero C
		return zero, fmt.Errorf("%T: %w", zero, ErrNotAttached)
	}
	return s.value, nil
}

// MustGet returns the attached component and panics when the slot is empty.
func (s *Slot[C]) MustGet() C {
	c, err := s.Get()
	if err != nil {
		panic(err)
	}
	return c
}

// Attached reports whether the slot is filled.
func (s *Slot[C]) Attached() bool {
	return s.attached
}
