package scrollfx

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds an active scroll-to tween.
type scrollAnim struct {
	tween *gween.Tween
}

// Viewport is the window onto the page: a vertical scroll offset over content
// of a known height. It is the ScrollSource an Engine reads.
type Viewport struct {
	// ScrollY is the page-space Y coordinate shown at the top of the viewport.
	ScrollY float64
	// Width and Height are the viewport size in pixels.
	Width, Height float64
	// ContentHeight is the page height. When positive, ScrollY is clamped to
	// [0, ContentHeight-Height]; when zero, scrolling is unbounded.
	ContentHeight float64

	scrollTween *scrollAnim
}

// NewViewport creates a viewport of the given size scrolled to the top.
func NewViewport(w, h float64) *Viewport {
	return &Viewport{Width: w, Height: h}
}

// ScrollState returns the current scroll snapshot.
func (v *Viewport) ScrollState() ScrollState {
	return ScrollState{ScrollY: v.ScrollY, ViewportWidth: v.Width, ViewportHeight: v.Height}
}

// MaxScroll returns the largest reachable ScrollY, or +Inf when unbounded.
func (v *Viewport) MaxScroll() float64 {
	if v.ContentHeight <= 0 {
		return math.Inf(1)
	}
	return math.Max(0, v.ContentHeight-v.Height)
}

// ScrollBy moves the viewport by dy pixels immediately, cancelling any
// running ScrollTo.
func (v *Viewport) ScrollBy(dy float64) {
	v.scrollTween = nil
	v.ScrollY += dy
	v.clamp()
}

// ScrollTo animates ScrollY to y over duration seconds. A non-positive
// duration jumps immediately.
func (v *Viewport) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	y = v.clampValue(y)
	if duration <= 0 {
		v.scrollTween = nil
		v.ScrollY = y
		return
	}
	v.scrollTween = &scrollAnim{
		tween: gween.New(float32(v.ScrollY), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Resize changes the viewport size and re-clamps the scroll offset.
func (v *Viewport) Resize(w, h float64) {
	v.Width = w
	v.Height = h
	v.clamp()
}

// Fit sets ContentHeight to the bottom of root's layout subtree.
func (v *Viewport) Fit(root *Node) {
	v.ContentHeight = contentBottom(root)
	v.clamp()
}

// ElementRect returns n's layout box relative to the viewport's top-left.
func (v *Viewport) ElementRect(n *Node) Rect {
	r := n.LayoutBounds()
	r.Y -= v.ScrollY
	return r
}

// VisibleBounds returns the page-space rectangle currently on screen.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: 0, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// update advances the scroll animation. Called from Engine.Update.
func (v *Viewport) update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	val, done := v.scrollTween.tween.Update(dt)
	v.ScrollY = float64(val)
	if done {
		v.scrollTween = nil
	}
	v.clamp()
}

func (v *Viewport) clamp() {
	v.ScrollY = v.clampValue(v.ScrollY)
}

func (v *Viewport) clampValue(y float64) float64 {
	if v.ContentHeight <= 0 {
		return y
	}
	return math.Max(0, math.Min(y, v.MaxScroll()))
}

// contentBottom returns the largest layout bottom edge in n's subtree.
func contentBottom(n *Node) float64 {
	bottom := n.LayoutBounds().Bottom()
	for _, c := range n.children {
		bottom = math.Max(bottom, contentBottom(c))
	}
	return bottom
}
