package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/engine/debug"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/internal/engine/renderer/opengl"
	"github.com/Faultbox/scenekit/internal/engine/window"
	"github.com/Faultbox/scenekit/internal/game"
	"github.com/Faultbox/scenekit/internal/logger"
)

// runWindowed opens an SDL window and renders through OpenGL.
func runWindowed(ctx context.Context, cfg *config.Config) error {
	// Create window (this also creates OpenGL context)
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Bindings:   cfg.Input.Bindings,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	// Create device (AFTER window, since OpenGL context must exist)
	dev, err := opengl.New()
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer dev.Close()

	prog, err := opengl.DefaultProgram()
	if err != nil {
		return err
	}
	defer opengl.DeleteProgram(prog)

	host := &capturingHost{
		Window: win,
		dev:    dev,
		shots:  debug.NewScreenshots(cfg.Window.ScreenshotDir, "scenekit"),
	}
	g, err := game.New(cfg, host, dev, prog)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return g.Run(ctx)
}

// capturingHost saves a screenshot before presenting a frame when F12 was
// pressed.
type capturingHost struct {
	*window.Window
	dev   *opengl.Device
	shots *debug.Screenshots
}

func (h *capturingHost) Present() {
	if h.CaptureRequested() {
		w, ht := h.Size()
		if _, err := h.shots.Capture(h.dev.ReadPixels(w, ht), int(w), int(ht)); err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
		}
	}
	h.Window.Present()
}

// runHeadless runs the demo against the recording device.
func runHeadless(ctx context.Context, cfg *config.Config) error {
	rec := renderer.NewRecorder()
	rec.Record = false

	host := game.NewHeadlessHost(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Run.Frames)
	g, err := game.New(cfg, host, rec, 1)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	if err := g.Run(ctx); err != nil {
		return err
	}

	logger.Info("headless run finished",
		zap.Int("frames", rec.Frames()),
		zap.Int("draws", rec.Draws()),
	)
	return nil
}
