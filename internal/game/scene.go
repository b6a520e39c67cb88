package game

import (
	"fmt"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/engine/builder"
	"github.com/Faultbox/scenekit/internal/engine/camera"
	"github.com/Faultbox/scenekit/internal/engine/controller"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/object"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/pkg/math"
)

// SceneName is the name of the demo scene.
const SceneName = "demo"

// Demo scene layout.
var (
	floorScale    = math.Vec3{X: 5, Y: 1, Z: 5}
	spinnerPos    = math.Vec3{X: -15, Y: 0, Z: 0}
	spinnerScale  = math.Vec3{X: 4, Y: 4, Z: 4}
	bouncerPos    = math.Vec3{X: 15, Y: 0, Z: 0}
	bouncerScale  = math.Vec3{X: 2, Y: 2, Z: 2}
	overviewRot   = math.Vec3{X: 0, Y: 180, Z: 0}
	leftViewport  = [4]float32{0, 0, 0.5, 1}
	rightViewport = [4]float32{0.5, 0, 0.5, 1}
)

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// DemoScene composes the demo: a first-person camera, a floor, a spinning
// cube and optionally a bouncing cube and a second split-screen camera.
// Every object draws with prog.
func DemoScene(cfg *config.Config, prog renderer.Program) (*builder.SceneBuilder, error) {
	fp := controller.NewFirstPerson[*camera.Camera]()
	fp.MouseLook = cfg.Input.MouseLook

	player := builder.NewCamera().
		SetPosition(vec3(cfg.Camera.Position)).
		SetRotation(vec3(cfg.Camera.Rotation)).
		SetFov(cfg.Camera.Fov).
		SetNear(cfg.Camera.Near).
		SetFar(cfg.Camera.Far).
		AttachController(fp)
	if cfg.Scene.Split {
		player.SetViewport(leftViewport)
	}

	sb := builder.NewScene(SceneName).AttachBuilder(player)

	if cfg.Scene.Split {
		// The overview camera never moves: its own empty input hides the
		// frame input from the controller.
		overview := builder.NewCamera().
			SetPosition(vec3(cfg.Camera.Position)).
			SetRotation(overviewRot).
			SetFov(cfg.Camera.Fov).
			SetNear(cfg.Camera.Near).
			SetFar(cfg.Camera.Far).
			SetViewport(rightViewport).
			AttachInput(&input.Input{}).
			AttachController(controller.NewFirstPerson[*camera.Camera]())
		sb.AttachBuilder(overview)
	}

	floor := builder.NewCube().
		SetScale(floorScale).
		AttachShader(prog)

	spinner := builder.NewCube().
		SetPosition(spinnerPos).
		SetScale(spinnerScale).
		AttachShader(prog).
		AttachController(&controller.Rotate[*object.Mesh]{Speed: cfg.Scene.RotateSpeed})

	sb.AttachBuilder(floor).AttachBuilder(spinner)

	if tc := cfg.Scene.Tween; tc.Enabled {
		fn, err := controller.Easing(tc.Ease)
		if err != nil {
			return nil, fmt.Errorf("tween: %w", err)
		}
		top := bouncerPos
		top.Y += tc.Height

		tw := controller.NewTween[*object.Mesh](bouncerPos, top, tc.DurationMS, fn)
		tw.PingPong = true

		sb.AttachBuilder(builder.NewCube().
			SetPosition(bouncerPos).
			SetScale(bouncerScale).
			AttachShader(prog).
			AttachController(tw))
	}

	return sb, nil
}
