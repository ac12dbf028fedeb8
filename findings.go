package formz

// SetError stores issue for key, or removes the entry when issue is empty.
// Storing an issue equal to the current one is a no-op. When the key has a
// child node, the nested findings (or none) replace the child's findings.
func (n *Node[S, E]) SetError(key string, issue Issue[E], opts ...WriteOption) bool {
	w := buildWrite(opts)
	var changed bool
	n.form.run(n, ChannelErrors, func() {
		changed = n.setError(key, issue, w)
	})
	return changed
}

// SetErrors replaces every finding on the node. Keys missing from issues
// are cleared.
func (n *Node[S, E]) SetErrors(issues Issues[E], opts ...WriteOption) {
	w := buildWrite(opts)
	n.form.run(n, ChannelErrors, func() {
		n.setErrors(issues, w)
	})
}

func (n *Node[S, E]) setError(key string, issue Issue[E], w write) bool {
	current, had := n.errors[key]
	switch {
	case had && current.Equal(issue):
		return false
	case !had && issue.Empty():
		return false
	}

	if issue.Empty() {
		delete(n.errors, key)
	} else {
		n.errors[key] = Issue[E]{Leaf: issue.Leaf, Nested: issue.Nested.Clone()}
	}

	if w.children {
		if c := n.ChildAt(key); c != nil {
			n.form.metrics.OnPropagate(DirectionDown, ChannelErrors)
			c.setErrors(issue.Nested.Clone(), w.downward())
		}
	}

	n.notify(key, w.bulk)
	if w.any {
		if w.parent {
			n.syncParent(ChannelErrors)
		}
		n.notifyAny(false)
	}
	return true
}

func (n *Node[S, E]) setErrors(issues Issues[E], w write) {
	per := w
	per.any = false
	per.bulk = true

	for _, k := range unionKeys(n.errors.keys(), issues.keys()) {
		n.setError(k, issues[k], per)
	}

	if w.parent {
		n.syncParent(ChannelErrors)
	}
	n.notifyAny(true)
}
