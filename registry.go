package scrollfx

import (
	"context"
	"errors"
	"log/slog"
)

// Handle identifies a registration. The zero Handle means "not registered"
// and is safe to pass to every Registry method.
type Handle uint32

// Valid reports whether h refers to a registration that was accepted.
func (h Handle) Valid() bool {
	return h != 0
}

// ScrollState is a snapshot of the scroll position and viewport geometry.
type ScrollState struct {
	ScrollY        float64
	ViewportWidth  float64
	ViewportHeight float64
}

// ScrollSource provides read access to the current scroll state.
type ScrollSource interface {
	ScrollState() ScrollState
}

// trigger is a registered descriptor and its runtime state.
type trigger struct {
	handle      Handle
	name        string
	kind        Kind
	prop        Property
	spec        compiled
	target      *Node
	triggerNode *Node

	baseline Values
	from, to Values

	state    State
	progress float64
	mutated  bool
	tween    *TweenGroup
}

// Registry holds active triggers in registration order and dispatches
// scroll notifications to them. It is not safe for concurrent use; all calls
// happen on the game loop.
type Registry struct {
	triggers   []*trigger
	nextHandle Handle

	// OnUnregister, if set, is called once for each registration removed by
	// Unregister, after its baseline has been restored.
	OnUnregister func(Handle)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register validates d, records the target's baseline, and adds the trigger
// in the pending state. It never panics: a descriptor whose Target does not
// resolve, or that fails validation, is skipped and the zero Handle returned.
func (r *Registry) Register(d Descriptor) Handle {
	t, err := newTrigger(d)
	if err != nil {
		logRejected(d.Name, err)
		return 0
	}

	r.warnOverlap(d.Name, t.target, t.prop)

	r.nextHandle++
	t.handle = r.nextHandle
	if d.Kind == KindReveal && d.From != nil {
		writeValues(t.target, t.prop, t.from)
		t.mutated = true
	}
	r.triggers = append(r.triggers, t)
	return t.handle
}

// newTrigger resolves d's Refs and records the target's baseline.
func newTrigger(d Descriptor) (*trigger, error) {
	spec, err := d.compile()
	if err != nil {
		return nil, err
	}
	target, ok := d.Target.Resolve()
	if !ok {
		return nil, ErrMissingTarget
	}
	trig := target
	if d.Trigger != nil {
		if trig, ok = d.Trigger.Resolve(); !ok {
			return nil, ErrMissingTarget
		}
	}

	t := &trigger{
		name:        d.Name,
		kind:        d.Kind,
		prop:        d.Property,
		spec:        spec,
		target:      target,
		triggerNode: trig,
		baseline:    readValues(target),
		state:       StatePending,
	}
	t.from, t.to = t.baseline, t.baseline
	if d.From != nil {
		t.from = *d.From
	}
	if d.To != nil {
		t.to = *d.To
	}
	return t, nil
}

// logRejected reports a skipped registration. Missing targets are expected
// while nodes are still being attached and only show at debug level.
func logRejected(name string, err error) {
	level := slog.LevelWarn
	if errors.Is(err, ErrMissingTarget) {
		level = slog.LevelDebug
	}
	Logger().Log(context.Background(), level, "descriptor not registered", "name", name, "err", err)
}

// warnOverlap logs when a new descriptor claims a property another live
// trigger already drives on the same node. The later registration wins
// because it is evaluated later in every notification.
func (r *Registry) warnOverlap(name string, target *Node, p Property) {
	for _, t := range r.triggers {
		if t.target == target && t.prop&p != 0 {
			Logger().Warn("overlapping descriptors on one property",
				"node", target.Name, "existing", t.name, "new", name)
			return
		}
	}
}

// Unregister reverts the trigger's target to its baseline and removes it.
// Unknown and already-removed handles are ignored.
func (r *Registry) Unregister(h Handle) {
	for i, t := range r.triggers {
		if t.handle != h {
			continue
		}
		t.revert()
		copy(r.triggers[i:], r.triggers[i+1:])
		r.triggers[len(r.triggers)-1] = nil
		r.triggers = r.triggers[:len(r.triggers)-1]
		if r.OnUnregister != nil {
			r.OnUnregister(h)
		}
		return
	}
}

// Notify evaluates every trigger, in registration order, against s.
// Triggers whose target or trigger node has since been disposed are skipped.
func (r *Registry) Notify(s ScrollState) {
	for _, t := range r.triggers {
		if t.target.IsDisposed() || t.triggerNode.IsDisposed() {
			continue
		}
		t.evaluate(s)
	}
}

// Advance steps running reveal transitions by dt seconds and returns how many
// are still running.
func (r *Registry) Advance(dt float32) int {
	running := 0
	for _, t := range r.triggers {
		if t.tween == nil {
			continue
		}
		t.tween.Update(dt)
		if t.tween.Done {
			t.tween = nil
			continue
		}
		running++
	}
	return running
}

// Len returns the number of registered triggers.
func (r *Registry) Len() int {
	return len(r.triggers)
}

// State returns the state of a registered trigger. ok is false if h is not
// registered (never accepted, or already unregistered).
func (r *Registry) State(h Handle) (s State, ok bool) {
	if t := r.lookup(h); t != nil {
		return t.state, true
	}
	return StateReverted, false
}

// Progress returns the last computed progress of a registered trigger.
func (r *Registry) Progress(h Handle) (float64, bool) {
	if t := r.lookup(h); t != nil {
		return t.progress, true
	}
	return 0, false
}

func (r *Registry) lookup(h Handle) *trigger {
	if h == 0 {
		return nil
	}
	for _, t := range r.triggers {
		if t.handle == h {
			return t
		}
	}
	return nil
}
