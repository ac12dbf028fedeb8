package formz

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/tiendc/go-deepcopy"
	"github.com/zoobzio/capitan"
)

var (
	// ErrNoValidator is reported when Validate is called on a node that has
	// no validator configured.
	ErrNoValidator = errors.New("no validator configured")

	// ErrUnknownSubscription is reported when Ignore receives a handle the
	// node never issued or already removed.
	ErrUnknownSubscription = errors.New("unknown subscription")

	// ErrReleased is returned when a released node is asked to grow children.
	ErrReleased = errors.New("node released")

	// ErrNotChild is returned when Release is called on a root node.
	ErrNotChild = errors.New("node has no parent")
)

// nodeIDs issues process-unique node ids for diagnostics.
var nodeIDs atomic.Uint64

// Validator computes the full set of findings for a node's values. It
// receives a copy of the node's container and must be a pure function.
type Validator[E comparable] func(values any) Issues[E]

// ref is an arena index into Form.nodes.
type ref int

// Form owns every node of one tree. Parents reference children and
// children reference parents by arena index, never by pointer.
//
// A Form is single-threaded: every call runs to completion, including all
// propagation and listener callbacks, before it returns.
type Form[S any, E comparable] struct {
	nodes            []*Node[S, E]
	validateOnChange bool
	metrics          MetricsProvider
	diagnostics      *diagnosticLog
	lastDiagnostic   error

	// busy is set while a public mutation is running. Mutations issued
	// from listeners in that window are queued in pending.
	busy    bool
	pending []func()
}

// New creates a Form whose root node holds values, defaults and the
// initial shared state. values and defaults must each be a keyed composite
// (map[string]any) or an ordered sequence ([]any); nil means an empty
// composite. Both are deep-copied.
//
// Example:
//
//	form, err := formz.New[UIState, string](
//	    map[string]any{"name": "", "address": map[string]any{"city": ""}},
//	    map[string]any{"name": "", "address": map[string]any{"city": ""}},
//	    UIState{},
//	)
//	form.Validator(func(v any) formz.Issues[string] { ... })
func New[S any, E comparable](values, defaults any, state S) (*Form[S, E], error) {
	v, err := seed(values, nil)
	if err != nil {
		return nil, fmt.Errorf("values: %w", err)
	}
	d, err := seed(defaults, v)
	if err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}
	f := &Form[S, E]{
		metrics: NoOpMetricsProvider{},
	}
	f.attach(v, d, f.copyState(state), nil)
	return f, nil
}

// seed copies a container, substituting an empty one shaped like hint for nil.
func seed(v, hint any) (any, error) {
	if v == nil {
		return emptyLike(hint), nil
	}
	return copyComposite(v)
}

// -----------------------------------------------------------------------------
// Chainable Instance Configuration
// -----------------------------------------------------------------------------

// Validator sets the root node's validator.
func (f *Form[S, E]) Validator(fn Validator[E]) *Form[S, E] {
	f.Root().Validator(fn)
	return f
}

// ValidateOnChange records whether callers intend validation on every
// change. The flag is informational: each write decides for itself via
// SkipValidation.
func (f *Form[S, E]) ValidateOnChange(enabled bool) *Form[S, E] {
	f.validateOnChange = enabled
	return f
}

// Metrics sets a metrics provider for observability integration.
func (f *Form[S, E]) Metrics(provider MetricsProvider) *Form[S, E] {
	if provider == nil {
		provider = NoOpMetricsProvider{}
	}
	f.metrics = provider
	return f
}

// DiagnosticHistorySize sets the number of recent misuse diagnostics to
// retain. Use 0 (default) to only retain the most recent one via
// LastDiagnostic().
func (f *Form[S, E]) DiagnosticHistorySize(n int) *Form[S, E] {
	f.diagnostics = newDiagnosticLog(n)
	return f
}

// ValidatesOnChange returns the flag set by ValidateOnChange.
func (f *Form[S, E]) ValidatesOnChange() bool {
	return f.validateOnChange
}

// Root returns the root node.
func (f *Form[S, E]) Root() *Node[S, E] {
	return f.nodes[0]
}

// Len returns the number of live nodes in the form.
func (f *Form[S, E]) Len() int {
	n := 0
	for _, node := range f.nodes {
		if node != nil {
			n++
		}
	}
	return n
}

// Diagnostics returns the recent misuse diagnostics, oldest first.
// Returns nil if history is not enabled (see DiagnosticHistorySize).
func (f *Form[S, E]) Diagnostics() []error {
	return f.diagnostics.errors(nil)
}

// LastDiagnostic returns the most recent misuse diagnostic, or nil.
func (f *Form[S, E]) LastDiagnostic() error {
	return f.lastDiagnostic
}

// ClearDiagnostics forgets every retained diagnostic.
func (f *Form[S, E]) ClearDiagnostics() {
	f.lastDiagnostic = nil
	f.diagnostics.reset()
}

// node resolves an arena index; released slots resolve to nil.
func (f *Form[S, E]) node(r ref) *Node[S, E] {
	if r < 0 || int(r) >= len(f.nodes) {
		return nil
	}
	return f.nodes[r]
}

// attach allocates a node in the arena.
func (f *Form[S, E]) attach(values, defaults any, state S, l *link) *Node[S, E] {
	n := &Node[S, E]{
		form:         f,
		id:           nodeIDs.Add(1),
		self:         ref(len(f.nodes)),
		link:         l,
		values:       values,
		defaults:     defaults,
		state:        state,
		dirty:        map[string]bool{},
		errors:       Issues[E]{},
		children:     map[string]ref{},
		listeners:    map[string]map[Subscription]Listener{},
		anyListeners: map[Subscription]Listener{},
	}
	for _, k := range unionKeys(keys(values), keys(defaults)) {
		n.computeDirty(k)
	}
	f.nodes = append(f.nodes, n)

	parent := 0
	if l != nil {
		if p := f.node(l.parent); p != nil {
			parent = int(p.id)
		}
	}
	capitan.Emit(context.Background(), NodeCreated,
		KeyNode.Field(int(n.id)),
		KeyParent.Field(parent),
	)
	return n
}

// run executes a public mutation. A mutation issued while another one is
// still running is queued and executed, in order, once the outer mutation
// has finished; run then reports false.
func (f *Form[S, E]) run(n *Node[S, E], ch Channel, op func()) bool {
	if f.busy {
		f.pending = append(f.pending, op)
		capitan.Emit(context.Background(), MutationDeferred,
			KeyNode.Field(int(n.id)),
			KeyChannel.Field(ch.String()),
		)
		return false
	}
	f.busy = true
	defer func() {
		f.busy = false
		f.pending = nil
	}()
	op()
	for len(f.pending) > 0 {
		next := f.pending[0]
		f.pending = f.pending[1:]
		next()
	}
	return true
}

// diagnose records a misuse diagnostic raised on the node with the given id.
func (f *Form[S, E]) diagnose(node uint64, err error) {
	f.lastDiagnostic = err
	f.diagnostics.record(node, err)
	f.metrics.OnDiagnostic(err)
}

// copyState deep-copies the shared state. If the state cannot be copied it
// is shared by assignment.
func (f *Form[S, E]) copyState(s S) S {
	var out S
	if err := deepcopy.Copy(&out, &s); err != nil {
		capitan.Emit(context.Background(), StateCopyFailed,
			KeyError.Field(err.Error()),
		)
		return s
	}
	return out
}
