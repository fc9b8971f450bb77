package scrollfx

import "testing"

func TestNewPageDefaults(t *testing.T) {
	p := NewPage(800, 600)
	if p.Root() == nil || p.Root().Name != "root" {
		t.Fatal("missing root container")
	}
	if p.Viewport().Width != 800 || p.Viewport().Height != 600 {
		t.Errorf("viewport = %vx%v", p.Viewport().Width, p.Viewport().Height)
	}
	if p.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q", p.ScreenshotDir)
	}
}

func TestPageResizeRelayoutsAndFits(t *testing.T) {
	p := NewPage(800, 600)
	section := NewBox("section", 800, 0, ColorWhite)
	p.Root().AddChild(section)
	p.SetLayoutFunc(func(w, h float64) {
		section.SetSize(w, 3*h)
	})

	p.Resize(400, 500)
	if section.Width != 400 || section.Height != 1500 {
		t.Errorf("section = %vx%v, want 400x1500", section.Width, section.Height)
	}
	if p.Viewport().ContentHeight != 1500 {
		t.Errorf("ContentHeight = %v, want 1500", p.Viewport().ContentHeight)
	}
	if p.Root().Width != 400 {
		t.Errorf("root width = %v, want 400", p.Root().Width)
	}
}

func TestPageResizeKeepsScrollInRange(t *testing.T) {
	p := NewPage(800, 600)
	block := NewBox("block", 800, 2000, ColorWhite)
	p.Root().AddChild(block)
	p.Resize(800, 600)
	p.Viewport().ScrollBy(1400)

	block.SetSize(800, 1000)
	p.Resize(800, 600)
	if p.Viewport().ScrollY != 400 {
		t.Errorf("ScrollY = %v, want 400", p.Viewport().ScrollY)
	}
}

func TestPageUpdateRefreshesWorldTransforms(t *testing.T) {
	p := NewPage(800, 600)
	n := NewBox("n", 10, 10, ColorWhite)
	n.SetPosition(5, 100)
	p.Root().AddChild(n)
	n.SetOffset(0, 40)
	p.Update()
	x, y := n.LocalToWorld(0, 0)
	if x != 5 || y != 140 {
		t.Errorf("world origin = (%v, %v), want (5, 140)", x, y)
	}
}
