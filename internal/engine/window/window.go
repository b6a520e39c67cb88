// Package window handles the SDL2 window, its OpenGL context and the event
// pump feeding the engine's input state.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	// Bindings maps movement key names to SDL scancode names.
	Bindings map[string]string
}

// Window wraps the SDL2 window and OpenGL context. It implements the
// engine's frame host.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext

	bindings map[sdl.Scancode]input.Key
	state    *input.State
	closed   bool
	capture  bool
}

// New creates a new window with OpenGL context.
func New(cfg Config) (*Window, error) {
	bindings, err := ResolveBindings(cfg.Bindings)
	if err != nil {
		return nil, err
	}

	w := &Window{
		config:   cfg,
		bindings: bindings,
		state:    input.NewState(),
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// Size returns the drawable size in pixels, which differs from the window
// size on high-DPI displays.
func (w *Window) Size() (int32, int32) {
	return w.sdlWindow.GLGetDrawableSize()
}

// Input returns the input snapshot for the current frame.
func (w *Window) Input() *input.Input {
	return w.state.Snapshot()
}

// NextFrame processes pending events and returns the SDL tick count in
// milliseconds. It returns false once the window was asked to close.
func (w *Window) NextFrame() (float32, bool) {
	w.pumpEvents()
	if w.closed {
		return 0, false
	}
	return float32(sdl.GetTicks()), true
}

// CaptureRequested reports whether F12 was pressed since the last call.
func (w *Window) CaptureRequested() bool {
	c := w.capture
	w.capture = false
	return c
}

// Present swaps the buffers and ends the input frame. With VSync enabled
// the swap waits for the display refresh.
func (w *Window) Present() {
	w.sdlWindow.GLSwap()
	w.state.EndFrame()
}

// ReportFPS shows the frame rate in the title bar.
func (w *Window) ReportFPS(fps float32) {
	w.SetTitle(FPSTitle(w.config.Title, fps))
}

// FPSTitle formats a title with the frame rate appended.
func FPSTitle(title string, fps float32) string {
	return fmt.Sprintf("%s - %.0f FPS", title, fps)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
