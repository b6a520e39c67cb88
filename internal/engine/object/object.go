// Package object provides the renderable entities of a scene.
package object

import (
	"github.com/Faultbox/scenekit/internal/engine/camera"
	"github.com/Faultbox/scenekit/internal/engine/component"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Model is an entity the scene can draw.
type Model interface {
	component.Entity
	component.HasTransform
	component.HasShader

	// Init allocates device resources. It is called once per scene init and
	// must be idempotent.
	Init(dev renderer.Device, cache *renderer.Cache) error

	// Render draws the model through cam. It panics when the model was not
	// initialized or has no shader.
	Render(dev renderer.Device, cam *camera.Camera)
}

// Draw uploads the world, view, projection and normal matrices and issues
// one indexed draw.
func Draw(dev renderer.Device, prog renderer.Program, b *renderer.Buffers, world math.Mat4, cam *camera.Camera) {
	view := cam.ViewMatrix()
	projection := cam.ProjectionMatrix()
	normal := world.NormalMatrix()

	dev.UseProgram(prog)
	dev.UniformMatrix4(prog, renderer.UniformWorld, &world)
	dev.UniformMatrix4(prog, renderer.UniformView, &view)
	dev.UniformMatrix4(prog, renderer.UniformProjection, &projection)
	dev.UniformMatrix4(prog, renderer.UniformNormal, &normal)
	dev.DrawIndexed(prog, b)
}
