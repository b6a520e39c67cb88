package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/geometry"
	"github.com/Faultbox/scenekit/internal/logger"
)

// Cache shares uploaded buffers between meshes with the same geometry.
// It is owned by a scene and keyed by geometry ID.
type Cache struct {
	buffers map[string]*Buffers
}

// NewCache creates an empty buffer cache.
func NewCache() *Cache {
	return &Cache{buffers: make(map[string]*Buffers)}
}

// Buffers returns the buffers for g, uploading them on first use.
func (c *Cache) Buffers(dev Device, g *geometry.Geometry) (*Buffers, error) {
	if b, ok := c.buffers[g.ID]; ok {
		return b, nil
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBufferCreate, err)
	}

	b, err := dev.CreateBuffers(g)
	if err != nil {
		return nil, fmt.Errorf("geometry %s: %w: %w", g.ID, ErrBufferCreate, err)
	}
	c.buffers[g.ID] = b

	logger.Debug("geometry uploaded",
		zap.String("geometry", g.ID),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("indices", g.IndexCount()),
	)
	return b, nil
}

// Len returns the number of cached geometries.
func (c *Cache) Len() int {
	return len(c.buffers)
}
