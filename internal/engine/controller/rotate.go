package controller

import (
	"github.com/Faultbox/scenekit/internal/engine/component"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Rotate spins an entity continuously, twice as fast around Y as around X.
type Rotate[T component.HasTransform] struct {
	Speed float32
}

// Update applies one frame of rotation.
func (r *Rotate[T]) Update(parent T, dt float32, _ *input.Input) {
	parent.Transform().DeltaRotation(math.Vec3{X: r.Speed, Y: 2 * r.Speed}, dt)
}
