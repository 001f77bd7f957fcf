package tether

import "errors"

var (
	// ErrInvalidSignal is returned when a nil Signal, or a Signal whose owning Object
	// is dead, is passed where a valid one is required.
	ErrInvalidSignal = errors.New("signal is nil or its owning object is not alive")
	// ErrInvalidCallable is returned when an invalid Callable (wrapping no function,
	// or tied to a dead Object) is passed where a valid one is required.
	ErrInvalidCallable = errors.New("callable is invalid")
	// ErrAlreadyConnected is returned by Signal.Connect when the Callable is already
	// connected to the Signal.
	ErrAlreadyConnected = errors.New("callable is already connected to this signal")
)

// Signal is a named event-emission point owned by an Object. Callables connect to a
// Signal, and emitting the Signal calls each connected Callable in connection order.
// A Signal is valid only while its owning Object is alive; emitting an invalid Signal
// does nothing.
type Signal struct {
	owner       IObject
	name        string
	connections []*Connection
}

// NewSignal returns a new Signal with the given name, owned by the given Object.
func NewSignal(owner IObject, name string) *Signal {
	return &Signal{
		owner: owner,
		name:  name,
	}
}

// Name returns the Signal's name.
func (signal *Signal) Name() string {
	return signal.name
}

// Owner returns the Object that owns the Signal.
func (signal *Signal) Owner() IObject {
	return signal.owner
}

// IsValid returns true if the Signal can be emitted and connected to - that is, the
// Signal is non-nil and its owning Object is alive.
func (signal *Signal) IsValid() bool {
	return signal != nil && signal.owner != nil && signal.owner.Alive()
}

// Connect connects the given Callable to the Signal with the given flags (OR'd together
// if multiple are passed). Connect returns ErrInvalidSignal if the Signal is invalid,
// ErrInvalidCallable if the Callable is invalid, and ErrAlreadyConnected if the Callable
// is already connected to the Signal.
func (signal *Signal) Connect(callable Callable, flags ...ConnectionFlags) error {

	if !signal.IsValid() {
		return ErrInvalidSignal
	}
	if !callable.IsValid() {
		return ErrInvalidCallable
	}
	if signal.IsConnected(callable) {
		return ErrAlreadyConnected
	}

	cf := ConnectionFlags(0)
	for _, f := range flags {
		cf |= f
	}

	signal.connections = append(signal.connections, &Connection{
		signal:   signal,
		callable: callable,
		flags:    cf,
	})

	return nil

}

// Disconnect disconnects the given Callable from the Signal. Disconnecting a Callable
// that isn't connected does nothing.
func (signal *Signal) Disconnect(callable Callable) {
	if signal == nil {
		return
	}
	for i, conn := range signal.connections {
		if conn.callable.id == callable.id {
			signal.connections = append(signal.connections[:i], signal.connections[i+1:]...)
			return
		}
	}
}

// DisconnectAll disconnects every Callable from the Signal.
func (signal *Signal) DisconnectAll() {
	if signal == nil {
		return
	}
	signal.connections = nil
}

// IsConnected returns true if the given Callable is currently connected to the Signal.
// Note that this reports on the connection list alone; a Signal whose owner has died
// still reports its (now undeliverable) connections until they're pruned.
func (signal *Signal) IsConnected(callable Callable) bool {
	if signal == nil || callable.id == 0 {
		return false
	}
	for _, conn := range signal.connections {
		if conn.callable.id == callable.id {
			return true
		}
	}
	return false
}

// Emit calls each connected Callable with the given arguments, in connection order.
// Connections flagged ConnectOneShot are disconnected before their Callable runs (so a
// connection check from inside the Callable reports it as gone). Connections flagged
// ConnectDeferred are queued for the next Flush call instead of running here. Connections
// whose Callables have become invalid are skipped and pruned. Emitting an invalid Signal
// does nothing.
func (signal *Signal) Emit(args ...interface{}) {

	if !signal.IsValid() {
		return
	}

	// Callables can connect and disconnect things on this same Signal while it's
	// emitting, so deliveries run over a snapshot, and each connection is re-checked
	// against the live list before delivery.
	snapshot := make([]*Connection, len(signal.connections))
	copy(snapshot, signal.connections)

	for _, conn := range snapshot {

		if !signal.isConnectionLive(conn) {
			continue
		}

		if !conn.callable.IsValid() {
			signal.Disconnect(conn.callable)
			continue
		}

		if conn.flags.Has(ConnectOneShot) {
			signal.Disconnect(conn.callable)
		}

		if conn.flags.Has(ConnectDeferred) {
			deferredCalls = append(deferredCalls, deferredCall{callable: conn.callable, args: args})
			continue
		}

		conn.callable.Call(args...)

	}

}

// Connections returns a ConnectionFilter to filter through the Signal's current
// connections.
func (signal *Signal) Connections() *ConnectionFilter {
	return newConnectionFilter(signal)
}

func (signal *Signal) isConnectionLive(conn *Connection) bool {
	for _, c := range signal.connections {
		if c == conn {
			return true
		}
	}
	return false
}

// Connection represents a single live connection between a Signal and a Callable,
// along with the flags it was connected with.
type Connection struct {
	signal   *Signal
	callable Callable
	flags    ConnectionFlags
}

// Signal returns the Signal side of the Connection.
func (conn *Connection) Signal() *Signal {
	return conn.signal
}

// Callable returns the Callable side of the Connection.
func (conn *Connection) Callable() Callable {
	return conn.callable
}

// Flags returns the ConnectionFlags the Connection was made with.
func (conn *Connection) Flags() ConnectionFlags {
	return conn.flags
}
