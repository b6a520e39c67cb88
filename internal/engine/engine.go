// Package engine drives the frame loop: it owns the scenes, computes frame
// deltas and runs update then render on the active scene.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/component"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/internal/engine/scene"
	"github.com/Faultbox/scenekit/internal/logger"
)

// ErrNoScene is returned by Init when the engine has no scene.
var ErrNoScene = errors.New("engine: no scene")

// Canvas is the surface the engine renders to.
type Canvas interface {
	// Size returns the drawable size in pixels.
	Size() (w, h int32)
	// Input returns the input snapshot for the current frame.
	Input() *input.Input
}

// Host schedules frames. NextFrame blocks until the next frame is due and
// returns its timestamp in milliseconds, or false when the host is closing.
type Host interface {
	Canvas
	NextFrame() (timestamp float32, ok bool)
	Present()
}

// FPSReporter is implemented by hosts that display the frame rate.
type FPSReporter interface {
	ReportFPS(fps float32)
}

// FirstFrameMS is the delta given to the first frame of Run, so host start-up
// time does not leak into the first update.
const FirstFrameMS = 16

// Engine owns the scenes and the frame state.
type Engine struct {
	scenes component.Children[*scene.Scene]
	active int

	dev    renderer.Device
	canvas Canvas

	initialized bool
	last        float32
	frames      int
	stopped     atomic.Bool

	log *zap.Logger
}

// New creates an engine without scenes.
func New() *Engine {
	return &Engine{log: logger.Named("engine")}
}

// PushScene adds a scene. The first scene is the active one.
func (e *Engine) PushScene(s *scene.Scene) { e.scenes.Push(s) }

// Scenes returns the engine scenes.
func (e *Engine) Scenes() *component.Children[*scene.Scene] { return &e.scenes }

// Active returns the active scene. It panics when there is none.
func (e *Engine) Active() *scene.Scene { return e.scenes.Get(e.active) }

// Frames returns the number of rendered frames.
func (e *Engine) Frames() int { return e.frames }

// Init binds the engine to a device and canvas and initializes the active
// scene. The frame loop must not run when Init fails.
func (e *Engine) Init(dev renderer.Device, canvas Canvas) error {
	if e.scenes.Len() == 0 {
		return ErrNoScene
	}
	if err := e.Active().Init(dev); err != nil {
		return fmt.Errorf("init scene: %w", err)
	}
	e.dev = dev
	e.canvas = canvas
	e.initialized = true
	e.stopped.Store(false)

	w, h := canvas.Size()
	e.log.Info("engine initialized",
		zap.String("scene", e.Active().Name()),
		zap.Int("scenes", e.scenes.Len()),
		zap.Int32("width", w),
		zap.Int32("height", h),
	)
	return nil
}

// Tick runs one frame at timestamp (milliseconds) and reports whether it
// rendered. A tick with the same timestamp as the previous one is skipped.
func (e *Engine) Tick(timestamp float32) bool {
	if !e.initialized {
		panic("engine: Tick before Init")
	}

	dt := timestamp - e.last
	e.last = timestamp
	if dt == 0 {
		return false
	}

	in := e.canvas.Input()
	s := e.Active()

	s.UpdateComponents(dt)
	s.UpdateControllers(dt, in)
	s.SetCanvasSize(e.canvas.Size())
	s.Render(e.dev)

	e.frames++
	return true
}

// Run drives frames from host until the host closes, Stop is called or ctx
// is cancelled. Init must have succeeded. Skipped ticks are not presented.
func (e *Engine) Run(ctx context.Context, host Host) error {
	if !e.initialized {
		return errors.New("engine: Run before Init")
	}
	frameCount := 0
	var fpsTimer float32
	first := true

	e.log.Info("starting frame loop")
	for !e.stopped.Load() {
		select {
		case <-ctx.Done():
			e.log.Info("frame loop cancelled")
			return ctx.Err()
		default:
		}

		ts, ok := host.NextFrame()
		if !ok {
			break
		}
		if first {
			fpsTimer = ts
			if e.frames == 0 {
				e.last = ts - FirstFrameMS
			}
			first = false
		}

		if !e.Tick(ts) {
			continue
		}
		host.Present()

		frameCount++
		if elapsed := ts - fpsTimer; elapsed >= 1000 {
			fps := float32(frameCount) * 1000 / elapsed
			e.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("elapsed_ms", elapsed),
			)
			if r, ok := host.(FPSReporter); ok {
				r.ReportFPS(fps)
			}
			frameCount = 0
			fpsTimer = ts
		}
	}

	e.log.Info("frame loop stopped", zap.Int("frames", e.frames))
	return nil
}

// Stop ends Run after the current frame. A Stop issued before Run makes Run
// return without drawing; Init clears it.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}
