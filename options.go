package formz

// write carries the propagation flags of one mutation.
type write struct {
	validate bool
	defaults bool
	children bool
	parent   bool
	any      bool

	// bulk is reported to field listeners when the write is one key of a
	// SetValues or SetErrors call.
	bulk bool

	// batched holds this node's own validation until the enclosing
	// SetValues settles. Children reached by the write still validate.
	batched bool

	// dirty, when set, replaces the computed dirty flag for the key. Used
	// when a child reports its aggregated dirty state upward.
	dirty *bool

	// except names a child that must not receive the downward half of a
	// state fan-out because the change originated there.
	except string
	exclude bool
}

func defaultWrite() write {
	return write{validate: true, children: true, parent: true, any: true}
}

// WriteOption adjusts how a mutation is applied and propagated.
type WriteOption func(*write)

// ToDefaults writes to the default values instead of the current values.
func ToDefaults() WriteOption {
	return func(w *write) {
		w.defaults = true
	}
}

// SkipValidation suppresses revalidation after the write.
func SkipValidation() WriteOption {
	return func(w *write) {
		w.validate = false
	}
}

// SkipChildren keeps the write from being pushed down into child nodes.
func SkipChildren() WriteOption {
	return func(w *write) {
		w.children = false
	}
}

// SkipParent keeps the write from being pushed up into the parent node.
func SkipParent() WriteOption {
	return func(w *write) {
		w.parent = false
	}
}

// SkipAny suppresses the "any" listener fan-out and, with it, the upward
// propagation of a single-field write.
func SkipAny() WriteOption {
	return func(w *write) {
		w.any = false
	}
}

func buildWrite(opts []WriteOption) write {
	w := defaultWrite()
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// downward returns the flags used when a node pushes a change into one of
// its children: the child applies it to its own subtree and must not echo
// it back up.
func (w write) downward() write {
	return write{
		validate: w.validate,
		defaults: w.defaults,
		children: true,
		parent:   false,
		any:      true,
	}
}
