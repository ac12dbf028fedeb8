package formz

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/zoobzio/capitan"
)

// Listener is called after a mutation touched what it subscribed to. bulk
// is true when the mutation arrived through SetValues or SetErrors, which
// lets a listener skip fine-grained diff work.
type Listener func(bulk bool)

// Subscription identifies one registered listener. Handles are scoped to
// the node that issued them; a handle from another node never matches.
type Subscription struct {
	node uint64
	seq  uint64
}

// Listen registers fn for mutations of the field at key.
func (n *Node[S, E]) Listen(key string, fn Listener) Subscription {
	sub := n.nextSubscription()
	subs, ok := n.listeners[key]
	if !ok {
		subs = map[Subscription]Listener{}
		n.listeners[key] = subs
	}
	subs[sub] = fn
	return sub
}

// Ignore removes a field listener. An unknown handle is a no-op that
// records a diagnostic.
func (n *Node[S, E]) Ignore(key string, sub Subscription) {
	subs := n.listeners[key]
	if _, ok := subs[sub]; !ok {
		err := fmt.Errorf("ignore %q on node %d: %w", key, n.id, ErrUnknownSubscription)
		n.form.diagnose(n.id, err)
		capitan.Emit(context.Background(), SubscriptionUnknown,
			KeyNode.Field(int(n.id)),
			KeyField.Field(key),
			KeyError.Field(err.Error()),
		)
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(n.listeners, key)
	}
}

// ListenAny registers fn for every mutation of the node.
func (n *Node[S, E]) ListenAny(fn Listener) Subscription {
	sub := n.nextSubscription()
	n.anyListeners[sub] = fn
	return sub
}

// IgnoreAny removes an "any" listener. Unknown handles are ignored.
func (n *Node[S, E]) IgnoreAny(sub Subscription) {
	delete(n.anyListeners, sub)
}

// Listening returns the keys that currently have field listeners, sorted.
func (n *Node[S, E]) Listening() []string {
	return slices.Sorted(maps.Keys(n.listeners))
}

func (n *Node[S, E]) nextSubscription() Subscription {
	n.subSeq++
	return Subscription{node: n.id, seq: n.subSeq}
}

func (n *Node[S, E]) notify(key string, bulk bool) {
	subs := n.listeners[key]
	if len(subs) == 0 {
		return
	}
	n.form.metrics.OnNotify(key, bulk)
	fire(subs, bulk)
}

func (n *Node[S, E]) notifyAny(bulk bool) {
	if len(n.anyListeners) == 0 {
		return
	}
	n.form.metrics.OnNotify("", bulk)
	fire(n.anyListeners, bulk)
}

// fire calls listeners in registration order. Listeners removed by an
// earlier callback are skipped; listeners added during the fan-out wait for
// the next mutation.
func fire(subs map[Subscription]Listener, bulk bool) {
	order := slices.SortedFunc(maps.Keys(subs), func(a, b Subscription) int {
		return cmp.Compare(a.seq, b.seq)
	})
	for _, sub := range order {
		if fn, ok := subs[sub]; ok {
			fn(bulk)
		}
	}
}
