package ebitools

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Context to ebiten.Game. Each tick it steps the attached
// test runner, polls input, then updates screens; each frame it clears to
// the configured color, draws screens, the FPS overlay and any queued
// screenshots.
type Game struct {
	ctx    *Context
	cfg    RunConfig
	fps    fpsOverlay
	runner *TestRunner
	stats  debugStats

	screenshotQueue []string
}

// NewGame creates a game for ctx configured by cfg.
func NewGame(ctx *Context, cfg RunConfig) *Game {
	ctx.SetDebug(cfg.Debug || ctx.Debug)
	return &Game{ctx: ctx, cfg: cfg}
}

// Context returns the game's context.
func (g *Game) Context() *Context {
	return g.ctx
}

// SetTestRunner attaches a scripted runner, stepped before input is polled.
func (g *Game) SetTestRunner(r *TestRunner) {
	g.runner = r
}

// Exit makes the next Update end the game loop.
func (g *Game) Exit() {
	g.ctx.Exit()
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.ctx.Exiting() {
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())
	start := time.Now()
	g.step(dt)
	if g.ctx.Debug {
		g.stats.updateTime += time.Since(start)
		g.debugLog()
	}
	if g.runner != nil && g.runner.Done() && g.cfg.TestScript != "" {
		g.ctx.Exit()
	}
	return nil
}

// step runs one tick with a fixed dt.
func (g *Game) step(dt float64) {
	if g.runner != nil {
		g.runner.step(g)
	}
	g.ctx.Input.Update()
	g.ctx.Screens.Update(dt)
	if g.cfg.ShowFPS {
		g.fps.update(dt)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ctx.Debug {
		start := time.Now()
		defer func() { g.stats.drawTime += time.Since(start) }()
	}
	screen.Fill(g.cfg.ClearColor.RGBA())
	g.ctx.Screens.Draw(screen)
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window described by cfg and runs ctx's screens until the
// window closes. The current screen is unloaded on return.
func Run(ctx *Context, cfg RunConfig) error {
	g := NewGame(ctx, cfg)
	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			return fmt.Errorf("ebitools: read test script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return err
		}
		g.SetTestRunner(runner)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.HideCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	defer ctx.Screens.UnloadContent()
	return ebiten.RunGame(g)
}
