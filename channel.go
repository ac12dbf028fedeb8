package formz

// Channel identifies which part of a node a propagation carries.
type Channel int32

const (
	// ChannelValues carries current field values.
	ChannelValues Channel = iota

	// ChannelDefaults carries baseline values used for reset.
	ChannelDefaults

	// ChannelErrors carries validation findings.
	ChannelErrors

	// ChannelState carries the shared state replicated across a subtree.
	ChannelState
)

// String returns the string representation of the channel.
func (c Channel) String() string {
	switch c {
	case ChannelValues:
		return "values"
	case ChannelDefaults:
		return "defaults"
	case ChannelErrors:
		return "errors"
	case ChannelState:
		return "state"
	default:
		return "unknown"
	}
}

// Direction is the way a propagation travels through the tree.
type Direction int32

const (
	// DirectionDown pushes a change from a node into one of its children.
	DirectionDown Direction = iota

	// DirectionUp pushes a change from a child into its parent.
	DirectionUp
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	default:
		return "unknown"
	}
}
