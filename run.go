package scrollfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// RunConfig holds window and input settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool

	WheelStep      float64
	KeyStep        float64
	ScrollDuration float32

	// Script, when set, drives the viewport instead of the user and Run
	// returns once it is done and its screenshots are written.
	Script *ScrollScript
}

// game implements ebiten.Game for Run.
type game struct {
	page   *Page
	engine *Engine
	cfg    RunConfig
	w, h   int
}

// Run opens a window and drives page and engine until the window closes or
// Escape is pressed. Wheel, arrow, page, Home and End keys scroll the page's
// viewport; window resizes relayout the page. The engine must have been
// created on page.Viewport().
func Run(page *Page, engine *Engine, cfg RunConfig) error {
	if engine.Source() != ScrollSource(page.Viewport()) {
		return fmt.Errorf("scrollfx: engine is not bound to the page viewport")
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	page.Resize(float64(cfg.Width), float64(cfg.Height))
	g := &game{page: page, engine: engine, cfg: cfg, w: cfg.Width, h: cfg.Height}
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if s := g.cfg.Script; s != nil {
		if s.Done() && len(g.page.screenshotQueue) == 0 {
			return ebiten.Termination
		}
		s.step(g.page)
	} else {
		g.handleScroll()
	}

	if g.page.updateFunc != nil {
		if err := g.page.updateFunc(); err != nil {
			return err
		}
	}
	g.engine.Update(float32(1.0 / float64(ebiten.TPS())))
	g.page.Update()
	return nil
}

// handleScroll maps wheel and keyboard input to viewport movement.
func (g *game) handleScroll() {
	vp := g.page.Viewport()
	if _, wy := ebiten.Wheel(); wy != 0 {
		vp.ScrollBy(-wy * g.cfg.WheelStep)
	}

	target := vp.ScrollY
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		target += g.cfg.KeyStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		target -= g.cfg.KeyStep
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		target += vp.Height * 0.9
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		target -= vp.Height * 0.9
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		target = 0
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		target = vp.MaxScroll()
	default:
		return
	}
	vp.ScrollTo(target, g.cfg.ScrollDuration, ease.OutCubic)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.page.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.page.Resize(float64(g.w), float64(g.h))
	}
	return outsideWidth, outsideHeight
}
