// Package controller provides behaviors attached to scene entities and run
// once per frame after the entity's components have updated.
package controller

import (
	"fmt"

	"github.com/Faultbox/scenekit/internal/engine/input"
)

// Controller drives an entity of type T from input and elapsed time.
type Controller[T any] interface {
	Update(parent T, dt float32, in *input.Input)
}

// Controllable is implemented by entities carrying a controller list.
type Controllable[T any] interface {
	Controllers() *List[T]
}

// List is an ordered controller list. Controllers run in the order they were
// attached.
type List[T any] struct {
	items []Controller[T]
}

// Attach appends a controller.
func (l *List[T]) Attach(c Controller[T]) {
	l.items = append(l.items, c)
}

// Len returns the number of controllers.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the i-th controller.
func (l *List[T]) At(i int) Controller[T] {
	if i < 0 || i >= len(l.items) {
		panic(fmt.Sprintf("controller: index %d out of range [0,%d)", i, len(l.items)))
	}
	return l.items[i]
}

// Update runs every controller against parent.
func (l *List[T]) Update(parent T, dt float32, in *input.Input) {
	for _, c := range l.items {
		c.Update(parent, dt, in)
	}
}
