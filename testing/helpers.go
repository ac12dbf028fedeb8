// Package testing provides test utilities and helpers for formz trees.
package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zoobzio/formz"
)

// UIState is a standard shared state type for testing forms.
type UIState struct {
	Submitting bool
	Step       int
}

// Recorder counts listener invocations. Use Listener as the callback for
// Listen or ListenAny.
type Recorder struct {
	Calls int
	Bulk  int
}

// Listener returns a callback that records into r.
func (r *Recorder) Listener() formz.Listener {
	return func(bulk bool) {
		r.Calls++
		if bulk {
			r.Bulk++
		}
	}
}

// Reset zeroes the counters.
func (r *Recorder) Reset() {
	r.Calls = 0
	r.Bulk = 0
}

// NewTestForm creates a form with identical values and defaults.
func NewTestForm(t *testing.T, values map[string]any) *formz.Form[UIState, string] {
	t.Helper()
	form, err := formz.New[UIState, string](values, values, UIState{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return form
}

// RequireChild returns the child of n at key or fails the test.
func RequireChild[S any, E comparable](t *testing.T, n *formz.Node[S, E], key string) *formz.Node[S, E] {
	t.Helper()
	c, err := n.Child(key)
	if err != nil {
		t.Fatalf("Child(%q) failed: %v", key, err)
	}
	return c
}

// RequireValue fails the test if the value at key differs from want.
func RequireValue[S any, E comparable](t *testing.T, n *formz.Node[S, E], key string, want any) {
	t.Helper()
	got, ok := n.Value(key)
	if !ok {
		t.Fatalf("expected value at %q, got none", key)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("value at %q mismatch (-want +got):\n%s", key, diff)
	}
}

// RequireCalls fails the test if r did not record exactly want calls.
func RequireCalls(t *testing.T, r *Recorder, want int) {
	t.Helper()
	if r.Calls != want {
		t.Fatalf("expected %d listener calls, got %d", want, r.Calls)
	}
}
