package formz

import "github.com/zoobzio/capitan"

// Field keys for form events.
var (
	// KeyNode is the diagnostic id of the node an event concerns.
	KeyNode = capitan.NewIntKey("node")

	// KeyParent is the diagnostic id of the node's parent, if any.
	KeyParent = capitan.NewIntKey("parent")

	// KeyField is the field key an event concerns.
	KeyField = capitan.NewStringKey("field")

	// KeyChannel is the propagation channel of a deferred mutation.
	KeyChannel = capitan.NewStringKey("channel")

	// KeyError is the error message of a diagnostic.
	KeyError = capitan.NewStringKey("error")
)
