package scrollfx

// scrubProgress maps scroll onto [0, 1] across the window [start, end]. It
// clamps outside the window and never extrapolates. A window with end <= start
// snaps from 0 to 1 at start.
func scrubProgress(scroll, start, end float64) float64 {
	if end <= start {
		if scroll >= start {
			return 1
		}
		return 0
	}
	return clamp01((scroll - start) / (end - start))
}

// crossed reports whether scroll has reached boundary.
func crossed(scroll, boundary float64) bool {
	return scroll >= boundary
}

// window resolves the trigger's markers against the current layout of its
// trigger node and the viewport height.
func (t *trigger) window(s ScrollState) (start, end float64) {
	box := t.triggerNode.LayoutBounds()
	start = t.spec.start.Resolve(box, s.ViewportHeight)
	if t.kind == KindScrub {
		end = t.spec.end.Resolve(box, s.ViewportHeight)
	}
	return start, end
}

// evaluate runs the progress calculation for one notification and hands the
// result to the executor.
func (t *trigger) evaluate(s ScrollState) {
	if t.state == StateFired || t.state == StateReverted {
		return
	}
	start, end := t.window(s)

	switch t.kind {
	case KindScrub:
		if t.spec.point {
			// Start and End are the same point: snap once, like a reveal.
			if crossed(s.ScrollY, start) {
				t.applyScrub(1)
				t.state = StateFired
			} else {
				t.applyScrub(0)
			}
			return
		}
		// A window collapsed by the current layout snaps but stays live, so a
		// later relayout restores the linear mapping.
		t.applyScrub(scrubProgress(s.ScrollY, start, end))
		t.state = StateActive
	case KindReveal:
		if crossed(s.ScrollY, start) {
			t.fire(t.spec.duration)
		}
	}
}
