package formz

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/zoobzio/capitan"
)

// SetValue writes value at key and propagates the change. Pass Absent to
// remove the key. It reports whether a change was applied: writing a
// scalar equal to the one already stored is a no-op that notifies nobody.
func (n *Node[S, E]) SetValue(key string, value any, opts ...WriteOption) bool {
	w := buildWrite(opts)
	var changed bool
	n.form.run(n, channelFor(w.defaults), func() {
		changed = n.setValue(key, value, w)
	})
	return changed
}

// SetValues replaces the whole values container (or defaults, with
// ToDefaults). Every affected field is notified once; "any" listeners, the
// parent and the validator are each reached once at the end.
func (n *Node[S, E]) SetValues(values any, opts ...WriteOption) error {
	if !isComposite(values) {
		return fmt.Errorf("set values on node %d: %w", n.id, ErrUnsupportedShape)
	}
	w := buildWrite(opts)
	n.form.run(n, channelFor(w.defaults), func() {
		n.setValues(values, w)
	})
	return nil
}

// Reset restores the field at key to its default.
func (n *Node[S, E]) Reset(key string) bool {
	var changed bool
	n.form.run(n, ChannelValues, func() {
		changed = n.setValue(key, n.defaultAt(key), defaultWrite())
	})
	return changed
}

// ResetAll restores every field to its default.
func (n *Node[S, E]) ResetAll() {
	n.form.run(n, ChannelValues, func() {
		n.setValues(n.defaults, defaultWrite())
	})
}

// Validate runs the node's validator over all current values and replaces
// the findings. Without a validator it records a diagnostic and returns
// ErrNoValidator; nothing else happens.
func (n *Node[S, E]) Validate() error {
	var err error
	n.form.run(n, ChannelErrors, func() {
		err = n.validate()
	})
	return err
}

func (n *Node[S, E]) defaultAt(key string) any {
	d, ok := lookup(n.defaults, key)
	if !ok {
		return Absent
	}
	return copyLeafOrComposite(d)
}

func channelFor(defaults bool) Channel {
	if defaults {
		return ChannelDefaults
	}
	return ChannelValues
}

func (n *Node[S, E]) setValue(key string, value any, w write) bool {
	target := n.side(w.defaults)
	if _, seq := target.([]any); seq {
		if _, ok := index(key); !ok {
			return false
		}
	}

	current, had := lookup(target, key)
	removing := isAbsent(value)
	switch {
	case removing && !had:
		return false
	case !removing && had && !isComposite(value) && equalValues(current, value):
		n.form.metrics.OnShortCircuit(key)
		return false
	}

	before := length(target)
	if removing {
		target = remove(target, key)
	} else {
		target = assign(target, key, value)
	}
	n.setSide(w.defaults, target)

	// Removing from a sequence shifts every later element down by one;
	// writing past its end pads the gap with nil.
	touched := []string{key}
	if _, seq := target.([]any); seq {
		i, _ := index(key)
		if removing {
			for j := i + 1; j < before; j++ {
				touched = append(touched, strconv.Itoa(j))
			}
		} else {
			for j := before; j < i; j++ {
				touched = append(touched, strconv.Itoa(j))
			}
		}
	}

	for _, k := range touched {
		n.computeDirty(k)
		if w.children {
			n.pushChild(k, w)
		}
	}
	if w.dirty != nil {
		n.dirty[key] = *w.dirty
	}

	for _, k := range touched {
		n.notify(k, w.bulk)
	}
	if w.any {
		if w.parent {
			n.syncParent(channelFor(w.defaults))
		}
		n.notifyAny(false)
	}
	if w.validate && !w.batched && n.validator != nil {
		_ = n.validate() //nolint:errcheck // validator presence checked above
	}
	return true
}

// pushChild hands the composite stored at key to the child bound there.
// Once a child exists its aggregated dirty flag is authoritative.
func (n *Node[S, E]) pushChild(key string, w write) {
	c := n.ChildAt(key)
	if c == nil {
		return
	}
	v, ok := lookup(n.side(w.defaults), key)
	if !ok || !isComposite(v) {
		return
	}
	n.form.metrics.OnPropagate(DirectionDown, channelFor(w.defaults))
	c.setValues(v, w.downward())
	n.dirty[key] = c.Dirty()
}

func (n *Node[S, E]) setValues(incoming any, w write) {
	incoming, _ = copyComposite(incoming) //nolint:errcheck // shape checked by callers

	per := w
	per.batched = true
	per.any = false
	per.bulk = true
	per.dirty = nil

	if target := n.side(w.defaults); !sameShape(target, incoming) {
		old := keys(target)
		n.setSide(w.defaults, emptyLike(incoming))
		for _, k := range old {
			n.computeDirty(k)
			n.notify(k, true)
		}
	}

	fresh := keys(incoming)
	for _, k := range fresh {
		v, _ := lookup(incoming, k)
		n.setValue(k, v, per)
	}

	stale := slices.DeleteFunc(keys(n.side(w.defaults)), func(k string) bool {
		_, ok := lookup(incoming, k)
		return ok
	})
	// Trailing sequence indices are removed from the end so that no
	// removal shifts another stale index.
	slices.Reverse(stale)
	for _, k := range stale {
		n.setValue(k, Absent, per)
	}

	if w.parent {
		n.syncParent(channelFor(w.defaults))
	}
	n.notifyAny(true)
	if w.validate && n.validator != nil {
		_ = n.validate() //nolint:errcheck // validator presence checked above
	}
}

func (n *Node[S, E]) validate() error {
	if n.validator == nil {
		err := fmt.Errorf("validate node %d: %w", n.id, ErrNoValidator)
		n.form.diagnose(n.id, err)
		capitan.Emit(context.Background(), ValidatorMissing,
			KeyNode.Field(int(n.id)),
			KeyError.Field(err.Error()),
		)
		return err
	}
	start := time.Now()
	snapshot, _ := copyComposite(n.values) //nolint:errcheck // values is always a container
	issues := n.validator(snapshot)
	found := 0
	for _, i := range issues {
		if !i.Empty() {
			found++
		}
	}
	n.form.metrics.OnValidate(time.Since(start), found)
	n.setErrors(issues, defaultWrite())
	return nil
}
