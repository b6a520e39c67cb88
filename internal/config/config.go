// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"sort"

	"github.com/Faultbox/scenekit/internal/engine/input"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Input   InputConfig   `yaml:"input"`
	Scene   SceneConfig   `yaml:"scene"`
	Run     RunConfig     `yaml:"run"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`

	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures
}

// CameraConfig holds the initial camera state.
type CameraConfig struct {
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position,flow"`
	Rotation [3]float32 `yaml:"rotation,flow"` // degrees
}

// InputConfig holds key bindings.
type InputConfig struct {
	// Bindings maps a movement key (forward, backward, left, right, up,
	// down) to an SDL scancode name such as "W" or "Left Shift".
	Bindings  map[string]string `yaml:"bindings"`
	MouseLook bool              `yaml:"mouse_look"`
}

// SceneConfig holds demo scene settings.
type SceneConfig struct {
	Split       bool        `yaml:"split"` // second camera on the right half
	RotateSpeed float32     `yaml:"rotate_speed"`
	Tween       TweenConfig `yaml:"tween"`
}

// TweenConfig describes the bouncing cube.
type TweenConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Ease       string  `yaml:"ease"`
	DurationMS float32 `yaml:"duration_ms"`
	Height     float32 `yaml:"height"`
}

// RunConfig holds frame loop settings.
type RunConfig struct {
	Headless bool `yaml:"headless"` // no window, recorder device
	Frames   int  `yaml:"frames"`   // 0 runs until closed
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "scenekit",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,

			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			Fov:      30,
			Near:     0.01,
			Far:      1000,
			Position: [3]float32{0, 5, 0},
		},
		Input: InputConfig{
			Bindings:  DefaultBindings(),
			MouseLook: true,
		},
		Scene: SceneConfig{
			RotateSpeed: 2,
			Tween: TweenConfig{
				Enabled:    true,
				Ease:       "in-out-sine",
				DurationMS: 1500,
				Height:     6,
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultBindings returns the WASD layout with Space and Left Shift for
// vertical movement.
func DefaultBindings() map[string]string {
	return map[string]string{
		"forward":  "W",
		"backward": "S",
		"left":     "A",
		"right":    "D",
		"up":       "Space",
		"down":     "Left Shift",
	}
}

// Validate checks values that would make the viewer unusable.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Near <= 0 {
		return fmt.Errorf("camera near plane %v must be positive", c.Camera.Near)
	}
	if c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera far plane %v must be beyond near plane %v", c.Camera.Far, c.Camera.Near)
	}
	if c.Run.Frames < 0 {
		return fmt.Errorf("frame count %d must not be negative", c.Run.Frames)
	}

	names := make([]string, 0, len(c.Input.Bindings))
	for name := range c.Input.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := input.ParseKey(name); !ok {
			return fmt.Errorf("unknown key binding %q", name)
		}
		if c.Input.Bindings[name] == "" {
			return fmt.Errorf("key binding %q has no scancode", name)
		}
	}
	return nil
}
