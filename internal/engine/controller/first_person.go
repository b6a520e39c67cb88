package controller

import (
	"github.com/Faultbox/scenekit/internal/engine/component"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/pkg/math"
)

// FirstPerson is a fly camera: mouse-look while the primary button is held,
// movement keys along the horizontal forward/left vectors, up/down on Y.
type FirstPerson[T component.HasTransform] struct {
	MouseLook bool
}

// NewFirstPerson returns a controller with mouse-look enabled.
func NewFirstPerson[T component.HasTransform]() *FirstPerson[T] {
	return &FirstPerson[T]{MouseLook: true}
}

// Update applies one frame of look and movement. dt must not be zero.
func (f *FirstPerson[T]) Update(parent T, dt float32, in *input.Input) {
	t := parent.Transform()

	mouse := in.Mouse()
	if f.MouseLook && mouse.IsDown(input.MousePrimary) {
		t.DeltaRotation(math.Vec3{X: float32(mouse.DY), Y: float32(mouse.DX)}, dt/2)
	}

	kb := in.Keyboard()
	var move math.Vec3

	switch {
	case kb.IsDown(input.KeyForward):
		move = move.Add(flat(t.Forward()))
	case kb.IsDown(input.KeyBackward):
		move = move.Sub(flat(t.Forward()))
	}

	switch {
	case kb.IsDown(input.KeyUp):
		move.Y++
	case kb.IsDown(input.KeyDown):
		move.Y--
	}

	switch {
	case kb.IsDown(input.KeyLeft):
		move = move.Add(flat(t.Left()))
	case kb.IsDown(input.KeyRight):
		move = move.Sub(flat(t.Left()))
	}

	if move != (math.Vec3{}) {
		t.DeltaPosition(move, dt)
	}
}

func flat(v math.Vec3) math.Vec3 {
	return math.Vec3{X: v.X, Z: v.Z}
}
