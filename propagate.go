package formz

// syncParent mirrors this node's channel into the parent field it is bound
// to. It is a no-op for a root or released node.
//
// The parent is never allowed to push the change back down into this node:
// values and errors are written with children disabled, and the state
// fan-out skips this node's key. Without that the two nodes would keep
// handing the same change back and forth.
func (n *Node[S, E]) syncParent(ch Channel) {
	p := n.Parent()
	if p == nil {
		return
	}
	key := n.link.key
	n.form.metrics.OnPropagate(DirectionUp, ch)

	w := write{validate: true, parent: true, any: true}
	switch ch {
	case ChannelValues, ChannelDefaults:
		w.defaults = ch == ChannelDefaults
		dirty := n.Dirty()
		w.dirty = &dirty
		snapshot, _ := copyComposite(n.side(w.defaults)) //nolint:errcheck // node containers are always composites
		p.setValue(key, snapshot, w)
	case ChannelErrors:
		p.setError(key, Nest(n.errors.Clone()), w)
	case ChannelState:
		w.children = true
		w.exclude = true
		w.except = key
		p.setState(n.state, w)
	}
}
