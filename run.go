package flexui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Resizable  bool
	Debug      bool
	ClearColor color.Color
}

// game adapts a Scene to ebiten.Game. The render target is the logical
// window size; a change is delivered to the tree as EventResize.
type game struct {
	scene         *Scene
	width, height int
	resized       bool
}

func (g *game) Update() error {
	if g.resized {
		g.resized = false
		g.scene.HandleEvent(Event{Type: EventResize, Width: g.width, Height: g.height})
	}
	return g.scene.Frame(Vec2{X: float64(g.width), Y: float64(g.height)})
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the window closes or the update
// callback returns an error. ebiten.Termination is treated as a clean exit.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ClearColor != nil {
		scene.ClearColor = cfg.ClearColor
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}

	g := &game{scene: scene, width: cfg.Width, height: cfg.Height}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("flexui: run: %w", err)
	}
	return nil
}
