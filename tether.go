// Package tether implements a small signal / callable system for game code, in the style
// of object-owned signals found in scene-graph game engines. Objects own Signals, Callables
// wrap functions (optionally bound to an owning Object and pre-bound arguments), and
// DynamicConnections manage a single mutable link between a Signal and a Callable,
// guaranteeing stale links are torn down before new ones are made.
//
// The library is deliberately single-threaded and synchronous, like the game loops it is
// meant to live in - connect, disconnect, and emit from one goroutine (normally, your
// game's update loop).
package tether

// deferredCall represents a signal delivery that was queued by a connection holding the
// ConnectDeferred flag, to be run on the next Flush().
type deferredCall struct {
	callable Callable
	args     []interface{}
}

var deferredCalls []deferredCall

// Flush runs all deferred signal deliveries queued since the previous Flush call, in the
// order they were emitted, and empties the queue. Deliveries whose Callables have become
// invalid in the meantime (e.g. their owning Objects were freed) are dropped silently.
// Call this once per game frame (commonly at the start or end of your update loop) if you
// connect anything with the ConnectDeferred flag; otherwise, it's unnecessary.
func Flush() {

	// A deferred callable can emit signals itself, queueing more deferred calls; those
	// run on the next Flush, not this one.
	queued := deferredCalls
	deferredCalls = nil

	for _, call := range queued {
		if call.callable.IsValid() {
			call.callable.Call(call.args...)
		}
	}

}

// PendingDeferred returns the number of deferred signal deliveries currently queued,
// waiting for the next Flush call.
func PendingDeferred() int {
	return len(deferredCalls)
}
