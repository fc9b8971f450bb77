package scrollfx

// Ref is an optional, non-owning handle to a Node. A Ref can be created before
// the node it points at exists and attached later; descriptors resolve their
// Refs at registration time and treat an unresolved Ref as "nothing to animate".
//
// The zero value and a nil *Ref are both valid, unattached Refs.
type Ref struct {
	node *Node
}

// NewRef returns an unattached Ref.
func NewRef() *Ref {
	return &Ref{}
}

// RefTo returns a Ref already attached to n.
func RefTo(n *Node) *Ref {
	return &Ref{node: n}
}

// Attach points the Ref at n. Attaching nil detaches.
func (r *Ref) Attach(n *Node) {
	r.node = n
}

// Detach clears the Ref.
func (r *Ref) Detach() {
	r.node = nil
}

// Resolve returns the referenced node, or false if the Ref is nil, unattached,
// or points at a disposed node.
func (r *Ref) Resolve() (*Node, bool) {
	if r == nil || r.node == nil || r.node.disposed {
		return nil, false
	}
	return r.node, true
}
