// Package formz provides a hierarchical, observable state container for
// structured form data.
//
// A Form is a tree of nodes. The root holds the whole value tree; a child
// node is bound to one composite field of its parent and holds that
// subtree. Every node keeps current values, default values, per-field dirty
// flags, per-field validation findings, a shared state value and its
// listeners.
//
// # Propagation
//
// A mutation can enter at any node:
//
//	local write → push down into the child at that key → notify listeners → push up into the parent
//
// The parent repeats the same sequence one level up. A change is never
// pushed back into the node it came from, so propagation is a single pass
// per direction and cannot loop.
//
// # Values
//
// Containers are map[string]any (keyed composites) or []any (ordered
// sequences, keyed by decimal index). Writing a scalar equal to the stored
// one is a no-op. Pass Absent to delete a key.
//
//	form, _ := formz.New[UIState, string](values, values, UIState{})
//	root := form.Root()
//	address, _ := root.Child("address")
//	address.SetValue("city", "Paris")
//	root.IsDirty("address") // true
//
// # Findings
//
// Validation findings are data, not errors. A Validator computes Issues for
// the whole value tree; leaves describe scalar fields and nested Issues
// describe composite fields. Package rules builds validators from
// go-playground/validator tags.
//
// # Shared State
//
// SetState replaces an opaque value (e.g. "is submitting") on a node and
// every node below it, and mirrors it into every ancestor.
//
// # Listeners
//
// Listen subscribes to one field, ListenAny to every mutation. The bool
// passed to a listener is true when the mutation came from SetValues or
// SetErrors. A listener that mutates the form has its mutation queued until
// the running one completes.
//
// # Diagnostics
//
// Misuse (Validate with no validator, Ignore with an unknown handle) never
// fails the call. It is emitted as a capitan signal, kept in the diagnostic
// history and reported to the MetricsProvider.
package formz
