package formz

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/zoobzio/capitan"
)

// link binds a child node to one field of its parent.
type link struct {
	parent ref
	key    string
}

// Node is one level of a form's value tree. A root node has no parent
// link; a child node is bound to a single field of its parent and mirrors
// every local change into that field.
//
// Accessors expose the node's containers directly. Callers must treat
// them as read-only and mutate only through the Set* methods.
type Node[S any, E comparable] struct {
	form     *Form[S, E]
	id       uint64
	self     ref
	link     *link
	released bool

	values   any
	defaults any
	state    S
	dirty    map[string]bool
	errors   Issues[E]
	children map[string]ref

	listeners    map[string]map[Subscription]Listener
	anyListeners map[Subscription]Listener
	subSeq       uint64

	validator Validator[E]
}

// Validator sets the validator for this node.
func (n *Node[S, E]) Validator(fn Validator[E]) *Node[S, E] {
	n.validator = fn
	return n
}

// ID returns the node's process-unique diagnostic id.
func (n *Node[S, E]) ID() uint64 { return n.id }

// Form returns the form that owns the node.
func (n *Node[S, E]) Form() *Form[S, E] { return n.form }

// Values returns the current values container.
func (n *Node[S, E]) Values() any { return n.values }

// Defaults returns the default values container.
func (n *Node[S, E]) Defaults() any { return n.defaults }

// State returns the shared state.
func (n *Node[S, E]) State() S { return n.state }

// Value returns the current value at key.
func (n *Node[S, E]) Value(key string) (any, bool) { return lookup(n.values, key) }

// Default returns the default value at key.
func (n *Node[S, E]) Default(key string) (any, bool) { return lookup(n.defaults, key) }

// Dirty reports whether any field differs from its default.
func (n *Node[S, E]) Dirty() bool {
	for _, d := range n.dirty {
		if d {
			return true
		}
	}
	return false
}

// IsDirty reports whether the field at key differs from its default.
func (n *Node[S, E]) IsDirty(key string) bool { return n.dirty[key] }

// DirtyMap returns a copy of the per-field dirty flags.
func (n *Node[S, E]) DirtyMap() map[string]bool { return maps.Clone(n.dirty) }

// Error reports whether any field carries a finding.
func (n *Node[S, E]) Error() bool { return n.errors.Any() }

// Issue returns the finding stored for key.
func (n *Node[S, E]) Issue(key string) (Issue[E], bool) {
	i, ok := n.errors[key]
	return i, ok
}

// ErrorMap returns a copy of the per-field findings.
func (n *Node[S, E]) ErrorMap() Issues[E] { return n.errors.Clone() }

// Key returns the parent field this node is bound to, or "" for a root.
func (n *Node[S, E]) Key() string {
	if n.link == nil {
		return ""
	}
	return n.link.key
}

// Parent returns the parent node, or nil for a root or released node.
func (n *Node[S, E]) Parent() *Node[S, E] {
	if n.link == nil {
		return nil
	}
	return n.form.node(n.link.parent)
}

// Root walks up to the topmost node this node is attached to.
func (n *Node[S, E]) Root() *Node[S, E] {
	cur := n
	for p := cur.Parent(); p != nil; p = cur.Parent() {
		cur = p
	}
	return cur
}

// Depth returns the number of ancestors.
func (n *Node[S, E]) Depth() int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// Children returns the keys of the registered child nodes, sorted.
func (n *Node[S, E]) Children() []string {
	return slices.Sorted(maps.Keys(n.children))
}

// ChildAt returns the existing child bound to key, or nil.
func (n *Node[S, E]) ChildAt(key string) *Node[S, E] {
	r, ok := n.children[key]
	if !ok {
		return nil
	}
	return n.form.node(r)
}

// Child returns the child node bound to key, creating it if needed. A new
// child is seeded with copies of this node's value and default at key (an
// empty composite when absent or nil), the current shared state, and the
// nested findings stored at key.
func (n *Node[S, E]) Child(key string) (*Node[S, E], error) {
	if n.released {
		return nil, fmt.Errorf("child %q of node %d: %w", key, n.id, ErrReleased)
	}
	if c := n.ChildAt(key); c != nil {
		return c, nil
	}

	v, err := childSeed(n.values, key, nil)
	if err != nil {
		return nil, fmt.Errorf("child %q values: %w", key, err)
	}
	d, err := childSeed(n.defaults, key, v)
	if err != nil {
		return nil, fmt.Errorf("child %q defaults: %w", key, err)
	}

	c := n.form.attach(v, d, n.form.copyState(n.state), &link{parent: n.self, key: key})
	if nested := n.errors[key].Nested; nested != nil {
		c.errors = nested.Clone()
	}
	n.children[key] = c.self
	return c, nil
}

func childSeed(container any, key string, hint any) (any, error) {
	v, ok := lookup(container, key)
	if !ok || v == nil {
		return emptyLike(hint), nil
	}
	return copyComposite(v)
}

// Release detaches this child and its whole subtree from the parent. The
// released nodes keep their data and listeners but no longer propagate.
func (n *Node[S, E]) Release() error {
	if n.link == nil {
		return fmt.Errorf("release node %d: %w", n.id, ErrNotChild)
	}
	parent := 0
	if p := n.Parent(); p != nil {
		parent = int(p.id)
		if p.children[n.link.key] == n.self {
			delete(p.children, n.link.key)
		}
	}
	n.release()
	capitan.Emit(context.Background(), NodeReleased,
		KeyNode.Field(int(n.id)),
		KeyParent.Field(parent),
	)
	return nil
}

func (n *Node[S, E]) release() {
	for _, k := range n.Children() {
		if c := n.ChildAt(k); c != nil {
			c.release()
		}
	}
	n.children = map[string]ref{}
	n.form.nodes[n.self] = nil
	n.link = nil
	n.released = true
}

// Diagnostics returns the retained misuse diagnostics raised on this node,
// oldest first. History must be enabled with Form.DiagnosticHistorySize.
func (n *Node[S, E]) Diagnostics() []error {
	return n.form.diagnostics.errors(func(node uint64) bool { return node == n.id })
}

// Released reports whether the node was detached by Release.
func (n *Node[S, E]) Released() bool { return n.released }

// side returns the values or defaults container.
func (n *Node[S, E]) side(defaults bool) any {
	if defaults {
		return n.defaults
	}
	return n.values
}

func (n *Node[S, E]) setSide(defaults bool, c any) {
	if defaults {
		n.defaults = c
		return
	}
	n.values = c
}

// computeDirty recomputes the dirty flag for key from the raw containers.
func (n *Node[S, E]) computeDirty(key string) {
	v, vok := lookup(n.values, key)
	d, dok := lookup(n.defaults, key)
	if !vok && !dok {
		delete(n.dirty, key)
		return
	}
	n.dirty[key] = vok != dok || !equalValues(v, d)
}

func unionKeys(a, b []string) []string {
	out := slices.Clone(a)
	for _, k := range b {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
