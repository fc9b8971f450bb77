package scrollfx

// Scope records the registrations made during one mount of a subtree and
// tears them all down together. Obtain one from Engine.Open or
// Engine.WithScope.
type Scope struct {
	engine  *Engine
	root    *Node
	id      uint32
	handles []Handle
	closed  bool
}

// Root returns the node the scope was opened on (may be nil).
func (s *Scope) Root() *Node {
	return s.root
}

// Add registers d with the engine's registry and records it in the scope.
// Descriptors that are skipped (missing target, invalid) are not recorded and
// the zero Handle is returned. Adding to a closed scope is a no-op.
func (s *Scope) Add(d Descriptor) Handle {
	if s.closed {
		Logger().Warn("descriptor added to closed scope", "scope", s.id, "name", d.Name)
		return 0
	}
	h := s.engine.registry.Register(d)
	if h.Valid() {
		s.handles = append(s.handles, h)
		s.engine.refresh = true
	}
	return h
}

// Select returns the descendants of the scope's root carrying class.
func (s *Scope) Select(class string) []*Node {
	if s.root == nil || s.root.IsDisposed() {
		return nil
	}
	return s.root.FindAll(class)
}

// Handles returns the scope's live registrations in registration order.
// The returned slice MUST NOT be mutated.
func (s *Scope) Handles() []Handle {
	return s.handles
}

// Closed reports whether Close has run.
func (s *Scope) Closed() bool {
	return s.closed
}

// Close unregisters every descriptor recorded in the scope, newest first, so
// stacked effects on one node unwind back to the original values. Close is
// idempotent and safe on a nil Scope: the host's "deactivate" entry point.
func (s *Scope) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	reg := s.engine.registry
	for i := len(s.handles) - 1; i >= 0; i-- {
		reg.Unregister(s.handles[i])
	}
	n := len(s.handles)
	s.handles = nil
	s.engine.removeScope(s)
	Logger().Info("scope closed", "scope", s.id, "unregistered", n)
}
