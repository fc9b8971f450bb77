package scrollfx

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Page is the top-level object that owns the node tree and the viewport onto
// it. It lays out, renders, and scrolls; scroll effects are bound to its
// nodes through an Engine created on Page.Viewport().
type Page struct {
	root     *Node
	viewport *Viewport

	// ClearColor fills the screen before drawing. A zero alpha skips the fill.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNGs. Default "screenshots".
	ScreenshotDir string

	screenshotQueue []string

	layoutFunc func(w, h float64)
	updateFunc func() error
}

// NewPage creates a page with a root container and a viewport of the given size.
func NewPage(w, h float64) *Page {
	root := NewContainer("root")
	root.SetSize(w, h)
	return &Page{root: root, viewport: NewViewport(w, h), ScreenshotDir: "screenshots"}
}

// Root returns the page's root container node.
func (p *Page) Root() *Node {
	return p.root
}

// Viewport returns the page's viewport.
func (p *Page) Viewport() *Viewport {
	return p.viewport
}

// SetLayoutFunc sets a callback run on every Resize before the content
// height is refit, so the page can lay itself out for the new size.
func (p *Page) SetLayoutFunc(fn func(w, h float64)) {
	p.layoutFunc = fn
}

// SetUpdateFunc sets a callback run once per tick by Run, before effects
// are evaluated.
func (p *Page) SetUpdateFunc(fn func() error) {
	p.updateFunc = fn
}

// Resize lays the page out for a viewport of w x h and refits the scrollable
// content height.
func (p *Page) Resize(w, h float64) {
	p.root.SetSize(w, p.root.Height)
	p.viewport.Resize(w, h)
	if p.layoutFunc != nil {
		p.layoutFunc(w, h)
	}
	p.viewport.Fit(p.root)
}

// Update refreshes world transforms after effects have written to nodes.
func (p *Page) Update() {
	updateWorldTransform(p.root, identityTransform, 1.0, false)
}

// Draw renders every visible node that intersects the viewport.
func (p *Page) Draw(screen *ebiten.Image) {
	if p.ClearColor.A > 0 {
		screen.Fill(p.ClearColor.toRGBA())
	}
	p.draw(screen, p.root, p.viewport.VisibleBounds())
	p.flushScreenshots(screen)
}
