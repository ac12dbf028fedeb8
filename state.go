package formz

// SetState replaces the shared state and fans it out to the whole subtree.
// Every field with a child or a listener is notified, since shared state
// affects the presentation of all of them.
func (n *Node[S, E]) SetState(state S, opts ...WriteOption) {
	w := buildWrite(opts)
	n.form.run(n, ChannelState, func() {
		n.setState(state, w)
	})
}

func (n *Node[S, E]) setState(state S, w write) {
	n.state = n.form.copyState(state)

	if w.children {
		down := w.downward()
		for _, k := range n.Children() {
			if w.exclude && k == w.except {
				continue
			}
			if c := n.ChildAt(k); c != nil {
				n.form.metrics.OnPropagate(DirectionDown, ChannelState)
				c.setState(n.state, down)
			}
		}
	}

	for _, k := range unionKeys(n.Children(), n.Listening()) {
		n.notify(k, false)
	}

	if w.any {
		if w.parent {
			n.syncParent(ChannelState)
		}
		n.notifyAny(false)
	}
}
