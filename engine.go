package scrollfx

import (
	"time"
)

// Engine ties a ScrollSource to a Registry and owns the scopes opened on it.
// Create one with New before opening any scope; there is no package-level
// state to initialize.
type Engine struct {
	source   ScrollSource
	viewport *Viewport
	registry *Registry
	scopes   []*Scope

	last    ScrollState
	hasLast bool
	refresh bool

	nextScopeID uint32
	debug       bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry makes the engine dispatch through r instead of a fresh one.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithDebug enables debug mode (see SetDebugMode).
func WithDebug(enabled bool) Option {
	return func(e *Engine) {
		e.SetDebugMode(enabled)
	}
}

// New creates an engine reading from src. If src is a *Viewport, the engine
// also advances its ScrollTo animations. Panics if src is nil.
func New(src ScrollSource, opts ...Option) *Engine {
	if src == nil {
		panic("scrollfx: nil scroll source")
	}
	e := &Engine{source: src}
	if v, ok := src.(*Viewport); ok {
		e.viewport = v
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = NewRegistry()
	}
	return e
}

// Registry returns the engine's trigger registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Source returns the engine's scroll source.
func (e *Engine) Source() ScrollSource {
	return e.source
}

// Refresh forces a notification on the next Update even if the scroll state
// has not changed, e.g. after a relayout.
func (e *Engine) Refresh() {
	e.refresh = true
}

// Update runs one frame: it advances the viewport's scroll animation,
// notifies every trigger if the scroll position or viewport size changed (or
// a refresh is pending), then steps running reveal transitions by dt seconds.
func (e *Engine) Update(dt float32) {
	var stats debugStats
	var t0 time.Time

	if e.viewport != nil {
		e.viewport.update(dt)
	}

	s := e.source.ScrollState()
	if e.debug && (e.refresh || !e.hasLast) {
		e.debugCheckScopes()
	}
	if e.refresh || !e.hasLast || s != e.last {
		if e.debug {
			t0 = time.Now()
		}
		e.registry.Notify(s)
		e.last, e.hasLast, e.refresh = s, true, false
		if e.debug {
			stats.notifyTime = time.Since(t0)
			stats.notified = true
		}
	}

	if e.debug {
		t0 = time.Now()
	}
	running := e.registry.Advance(dt)

	if e.debug {
		stats.advanceTime = time.Since(t0)
		stats.triggers = e.registry.Len()
		stats.tweens = running
		e.debugLog(stats)
	}
}

// Open starts a scope rooted at root: the host's "activate" entry point.
// Every call returns a new, independent scope, even for the same root.
func (e *Engine) Open(root *Node) *Scope {
	e.nextScopeID++
	s := &Scope{engine: e, root: root, id: e.nextScopeID}
	e.scopes = append(e.scopes, s)
	name := ""
	if root != nil {
		name = root.Name
	}
	Logger().Info("scope opened", "scope", s.id, "root", name)
	return s
}

// WithScope opens a scope on root and runs setup on it. If setup returns an
// error or panics, the scope is closed before WithScope returns (or the panic
// continues), so a failed setup never leaves registrations behind.
func (e *Engine) WithScope(root *Node, setup func(*Scope) error) (*Scope, error) {
	s := e.Open(root)
	ok := false
	defer func() {
		if !ok {
			s.Close()
		}
	}()
	if err := setup(s); err != nil {
		return nil, err
	}
	ok = true
	return s, nil
}

// NumScopes returns the number of open scopes.
func (e *Engine) NumScopes() int {
	return len(e.scopes)
}

// Close closes every open scope, most recent first.
func (e *Engine) Close() {
	for len(e.scopes) > 0 {
		e.scopes[len(e.scopes)-1].Close()
	}
}

// SetDebugMode enables or disables debug mode for this engine. When enabled,
// the trees under its scopes are checked for excessive depth and child
// counts whenever effects are added or a refresh is requested, and per-frame
// notify stats are logged at debug level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

func (e *Engine) removeScope(s *Scope) {
	for i, c := range e.scopes {
		if c == s {
			e.scopes = append(e.scopes[:i], e.scopes[i+1:]...)
			return
		}
	}
}
