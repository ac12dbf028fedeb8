package formz

import "github.com/zoobzio/capitan"

// Node lifecycle signals.
var (
	// NodeCreated is emitted when a root or child node joins a form.
	NodeCreated = capitan.NewSignal(
		"formz.node.created",
		"Form node created",
	)

	// NodeReleased is emitted when a child subtree is detached from its parent.
	NodeReleased = capitan.NewSignal(
		"formz.node.released",
		"Form node released",
	)
)

// Misuse diagnostics. None of these abort the call that triggered them.
var (
	// ValidatorMissing is emitted when Validate is called without a validator.
	ValidatorMissing = capitan.NewSignal(
		"formz.validator.missing",
		"Validate called with no validator configured",
	)

	// SubscriptionUnknown is emitted when Ignore receives a handle the node never issued.
	SubscriptionUnknown = capitan.NewSignal(
		"formz.subscription.unknown",
		"Ignore called with an unknown subscription",
	)

	// MutationDeferred is emitted when a listener mutates the form while a
	// propagation is still unwinding.
	MutationDeferred = capitan.NewSignal(
		"formz.mutation.deferred",
		"Mutation deferred until the current propagation completes",
	)

	// StateCopyFailed is emitted when the shared state cannot be deep-copied
	// and is shared by assignment instead.
	StateCopyFailed = capitan.NewSignal(
		"formz.state.copy.failed",
		"Shared state copy failed",
	)
)
