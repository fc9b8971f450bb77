package scrollfx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Node simultaneously and
// marks the node dirty after each step. If the target node is disposed, the
// group stops immediately.
//
// There is no global animation manager: reveals started by a Registry are
// advanced by Registry.Advance, standalone groups by calling Update.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been disposed, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenValues creates a TweenGroup that animates the properties selected by p
// from one set of values to another. The from values are written immediately.
func TweenValues(node *Node, p Property, from, to Values, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	if p.Has(PropertyOffset) {
		node.OffsetY = from.Offset
		g.add(&node.OffsetY, from.Offset, to.Offset, duration, fn)
	}
	if p.Has(PropertyOpacity) {
		node.Alpha = from.Opacity
		g.add(&node.Alpha, from.Opacity, to.Opacity, duration, fn)
	}
	node.MarkDirty()
	return g
}

// TweenOffset creates a TweenGroup that animates node.OffsetY to the target.
func TweenOffset(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.OffsetY, node.OffsetY, to, duration, fn)
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Alpha, node.Alpha, to, duration, fn)
	return g
}

func (g *TweenGroup) add(field *float64, from, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(from), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}
