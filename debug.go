package scrollfx

import (
	"time"
)

// debugStats holds per-frame timing for Engine.Update.
// Only populated when the engine is in debug mode.
type debugStats struct {
	notifyTime  time.Duration
	advanceTime time.Duration
	notified    bool
	triggers    int
	tweens      int
}

// debugLog reports per-frame stats at debug level.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	Logger().Debug("scrollfx frame",
		"notified", stats.notified,
		"notify", stats.notifyTime,
		"advance", stats.advanceTime,
		"triggers", stats.triggers,
		"tweens", stats.tweens,
	)
}

// debugCheckScopes runs the tree checks over every open scope's root.
func (e *Engine) debugCheckScopes() {
	for _, s := range e.scopes {
		if s.root != nil && !s.root.disposed {
			debugCheckTree(s.root)
		}
	}
}

const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// debugCheckTree warns about subtrees deeper than debugMaxTreeDepth (once per
// call) and nodes with more than debugMaxChildCount children.
func debugCheckTree(root *Node) {
	warnedDepth := false
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if depth > debugMaxTreeDepth && !warnedDepth {
			warnedDepth = true
			Logger().Warn("tree depth exceeds threshold",
				"depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
		}
		if len(n.children) > debugMaxChildCount {
			Logger().Warn("child count exceeds threshold",
				"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(root, 1)
}
