// Package game wires the demo scene to a frame host and a render device.
package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/engine"
	"github.com/Faultbox/scenekit/internal/engine/builder"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/internal/logger"
)

// Game is the demo instance.
type Game struct {
	config *config.Config
	engine *engine.Engine
	host   engine.Host
}

// New builds the demo scene and initializes it on dev. The host provides
// frames, input and the canvas size.
func New(cfg *config.Config, host engine.Host, dev renderer.Device, prog renderer.Program) (*Game, error) {
	logger.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Bool("split", cfg.Scene.Split),
		zap.Bool("tween", cfg.Scene.Tween.Enabled),
	)

	sb, err := DemoScene(cfg, prog)
	if err != nil {
		return nil, fmt.Errorf("demo scene: %w", err)
	}
	e, err := builder.NewEngine().AttachBuilder(sb).Build()
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	if err := e.Init(dev, host); err != nil {
		return nil, err
	}

	return &Game{config: cfg, engine: e, host: host}, nil
}

// Engine returns the running engine.
func (g *Game) Engine() *engine.Engine { return g.engine }

// Run starts the frame loop and blocks until the host closes or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	if err := g.engine.Run(ctx, g.host); err != nil {
		return fmt.Errorf("frame loop: %w", err)
	}
	logger.Info("game stopped", zap.Int("frames", g.engine.Frames()))
	return nil
}

// Stop ends Run after the current frame.
func (g *Game) Stop() { g.engine.Stop() }
