package scrollfx

// readValues captures the current value of every animatable property.
func readValues(n *Node) Values {
	return Values{Offset: n.OffsetY, Opacity: n.Alpha}
}

// writeValues applies the properties selected by p to n.
func writeValues(n *Node, p Property, v Values) {
	if p.Has(PropertyOffset) {
		n.OffsetY = v.Offset
	}
	if p.Has(PropertyOpacity) {
		n.Alpha = v.Opacity
	}
	n.MarkDirty()
}

// applyScrub writes from + (to-from)*progress.
func (t *trigger) applyScrub(progress float64) {
	t.progress = progress
	writeValues(t.target, t.prop, lerpValues(t.from, t.to, progress))
	t.mutated = true
}

// fire starts the play-once transition. Zero-length transitions snap.
func (t *trigger) fire(duration float32) {
	t.state = StateFired
	t.progress = 1
	t.mutated = true
	if duration <= 0 {
		writeValues(t.target, t.prop, t.to)
		return
	}
	t.tween = TweenValues(t.target, t.prop, t.from, t.to, duration, t.spec.easeFn)
}

// revert stops any running transition and restores the baseline recorded at
// registration. Targets that were never touched are left alone.
func (t *trigger) revert() {
	t.tween = nil
	if t.mutated && !t.target.IsDisposed() {
		writeValues(t.target, t.prop, t.baseline)
	}
	t.mutated = false
	t.state = StateReverted
}
