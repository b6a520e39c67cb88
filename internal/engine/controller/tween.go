package controller

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/scenekit/internal/engine/component"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/pkg/math"
)

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-out-quad": ease.InOutQuad,
	"in-out-sine": ease.InOutSine,
	"out-bounce":  ease.OutBounce,
}

// Easing looks up an easing function by name: linear, in-out-quad,
// in-out-sine or out-bounce.
func Easing(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// Tween moves an entity between two positions with an easing curve.
// With PingPong set it travels back and forth forever.
type Tween[T component.HasTransform] struct {
	From, To math.Vec3
	PingPong bool

	duration float32
	fn       ease.TweenFunc
	tw       *gween.Tween
	reverse  bool
	done     bool
}

// NewTween creates a tween lasting duration frame-time units (milliseconds
// when driven by the engine).
func NewTween[T component.HasTransform](from, to math.Vec3, duration float32, fn ease.TweenFunc) *Tween[T] {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween[T]{
		From:     from,
		To:       to,
		duration: duration,
		fn:       fn,
		tw:       gween.New(0, 1, duration, fn),
	}
}

// Done reports whether a one-way tween has arrived.
func (tw *Tween[T]) Done() bool {
	return tw.done
}

// Update advances the tween and places the entity.
func (tw *Tween[T]) Update(parent T, dt float32, _ *input.Input) {
	if tw.done {
		return
	}

	progress, finished := tw.tw.Update(dt)
	parent.Transform().SetPosition(tw.From.Lerp(tw.To, progress))

	if !finished {
		return
	}
	if !tw.PingPong {
		tw.done = true
		return
	}

	tw.reverse = !tw.reverse
	if tw.reverse {
		tw.tw = gween.New(1, 0, tw.duration, tw.fn)
	} else {
		tw.tw = gween.New(0, 1, tw.duration, tw.fn)
	}
}
