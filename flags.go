package tether

// ConnectionFlags is a bitset of behaviors for a connection between a Signal and a
// Callable. Combine flags with bitwise OR (e.g. ConnectOneShot | ConnectDeferred).
type ConnectionFlags uint8

const (
	// ConnectOneShot automatically disconnects the connection after its first delivery.
	ConnectOneShot ConnectionFlags = 1 << iota
	// ConnectDeferred queues deliveries for this connection into the deferred queue
	// rather than running them inside Signal.Emit; the queue runs on the next Flush
	// call (normally once per game frame).
	ConnectDeferred
)

// Has returns true if the ConnectionFlags value contains all of the given flags.
func (cf ConnectionFlags) Has(flags ConnectionFlags) bool {
	return cf&flags == flags
}
