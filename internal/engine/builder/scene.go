package builder

import (
	"fmt"

	"github.com/Faultbox/scenekit/internal/engine"
	"github.com/Faultbox/scenekit/internal/engine/scene"
)

// SceneChild is a builder that can be attached to a scene: a CameraBuilder
// or an ObjectBuilder.
type SceneChild interface {
	AttachTo(s *scene.Scene) error
	sceneChild()
}

// SceneBuilder builds a Scene.
type SceneBuilder struct {
	base
	s *scene.Scene
}

// NewScene starts an empty scene.
func NewScene(name string) *SceneBuilder {
	return &SceneBuilder{s: scene.New(name)}
}

// AttachBuilder builds child and adds it to the scene.
func (b *SceneBuilder) AttachBuilder(child SceneChild) *SceneBuilder {
	attach(&b.base, func(child SceneChild) error {
		if child == nil {
			return ErrNilBuilder
		}
		if err := child.AttachTo(b.s); err != nil {
			return fmt.Errorf("scene %s: %w", b.s.Name(), err)
		}
		return nil
	}, child)
	return b
}

// Build returns the scene.
func (b *SceneBuilder) Build() (*scene.Scene, error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.s, nil
}

// EngineBuilder builds an Engine.
type EngineBuilder struct {
	base
	e *engine.Engine
}

// NewEngine starts an engine without scenes.
func NewEngine() *EngineBuilder {
	return &EngineBuilder{e: engine.New()}
}

// AttachBuilder builds sb and adds the scene to the engine.
func (b *EngineBuilder) AttachBuilder(sb *SceneBuilder) *EngineBuilder {
	attach(&b.base, func(sb *SceneBuilder) error {
		s, err := sb.Build()
		if err != nil {
			return err
		}
		b.e.PushScene(s)
		return nil
	}, sb)
	return b
}

// Build returns the engine.
func (b *EngineBuilder) Build() (*engine.Engine, error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.e, nil
}
