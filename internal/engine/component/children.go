package component

import (
	"fmt"
	"iter"

	"github.com/Faultbox/scenekit/internal/engine/input"
)

// Children is an ordered collection of entities. Iteration and update order
// is insertion order. Children is itself an Entity, so collections nest.
type Children[T Entity] struct {
	items []T
}

// Push appends an entity.
func (c *Children[T]) Push(item T) {
	c.items = append(c.items, item)
}

// Get returns the i-th entity. Out of range indices panic.
func (c *Children[T]) Get(i int) T {
	if i < 0 || i >= len(c.items) {
		panic(fmt.Sprintf("component: child index %d out of range [0,%d)", i, len(c.items)))
	}
	return c.items[i]
}

// Len returns the number of entities.
func (c *Children[T]) Len() int {
	return len(c.items)
}

// All iterates the entities in insertion order.
func (c *Children[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range c.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// UpdateComponents updates every entity's components in order.
func (c *Children[T]) UpdateComponents(dt float32) {
	for _, item := range c.items {
		item.UpdateComponents(dt)
	}
}

// UpdateControllers runs every entity's controllers in order.
func (c *Children[T]) UpdateControllers(dt float32, in *input.Input) {
	for _, item := range c.items {
		item.UpdateControllers(dt, in)
	}
}
