package scrollfx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// whitePixel is a 1x1 white image scaled and tinted to draw boxes.
// Created on first draw.
var whitePixel *ebiten.Image

// draw renders n and its subtree. visible is the viewport in page space.
func (p *Page) draw(dst *ebiten.Image, n *Node, visible Rect) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}
	if n.Type != NodeTypeContainer && !shouldCull(n, visible) {
		view := translateAffine(n.worldTransform, -visible.X, -visible.Y)
		switch n.Type {
		case NodeTypeBox:
			drawBox(dst, n, view)
		case NodeTypeText:
			drawText(dst, n, view)
		}
	}
	for _, c := range n.children {
		p.draw(dst, c, visible)
	}
}

func drawBox(dst *ebiten.Image, n *Node, view [6]float64) {
	if n.Width <= 0 || n.Height <= 0 || n.Color.A <= 0 {
		return
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.Width, n.Height)
	op.GeoM.Concat(geoM(view))
	a := n.Color.A * n.worldAlpha
	op.ColorScale.Scale(float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a))
	dst.DrawImage(whitePixel, op)
}

func drawText(dst *ebiten.Image, n *Node, view [6]float64) {
	tb := n.TextBlock
	if tb == nil || tb.Font == nil {
		return
	}
	a := tb.Color.A * n.worldAlpha
	lh := tb.Font.LineHeight()
	for i, line := range tb.lines {
		var x float64
		if tb.Align != TextAlignLeft {
			lw, _ := tb.Font.MeasureString(line)
			x = n.Width - lw
			if tb.Align == TextAlignCenter {
				x /= 2
			}
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, float64(i)*lh)
		op.GeoM.Concat(geoM(view))
		op.ColorScale.Scale(float32(tb.Color.R*a), float32(tb.Color.G*a), float32(tb.Color.B*a), float32(a))
		op.LineSpacing = lh
		text.Draw(dst, line, tb.Font.face, op)
	}
}

// geoM converts an affine matrix [a, b, c, d, tx, ty] to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// --- Culling ---

// worldAABB computes the axis-aligned bounding box for a rectangle of size (w, h)
// transformed by the given affine matrix.
func worldAABB(transform [6]float64, w, h float64) Rect {
	a, b, cc, d, tx, ty := transform[0], transform[2], transform[1], transform[3], transform[4], transform[5]

	// Transform four corners: (0,0), (w,0), (w,h), (0,h)
	x0, y0 := tx, ty
	x1, y1 := a*w+tx, cc*w+ty
	x2, y2 := a*w+b*h+tx, cc*w+d*h+ty
	x3, y3 := b*h+tx, d*h+ty

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// shouldCull reports whether n's drawn box lies entirely outside visible.
// Nodes without a size are never culled.
func shouldCull(n *Node, visible Rect) bool {
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return !worldAABB(n.worldTransform, n.Width, n.Height).Intersects(visible)
}
