package tether

// DynamicConnection manages a single mutable link between a Signal and a Callable. It's
// made for game situations where what listens to what changes at runtime - a targeting
// reticle that follows whichever enemy is selected, a UI readout that watches one unit at
// a time, and so on. At most one link managed by the DynamicConnection is live at any
// time: whenever the pair changes, the old link (if actually wired) is torn down before
// the new one is made, so links are never leaked or left orphaned, and an invalid pair is
// never wired at all.
//
// Setters come in two tiers. The OrClear variants never fail - handing them a dead Signal
// or an invalid Callable just clears the link down to an empty state. The strict variants
// (Set, SetSignal, SetCallable, NewLinkedDynamicConnection) return ErrInvalidSignal or
// ErrInvalidCallable instead, leaving the prior state untouched; treat those errors as
// programmer-error assertions rather than conditions to recover from.
type DynamicConnection struct {
	signal   *Signal
	callable Callable
	flags    ConnectionFlags
}

// NewDynamicConnection returns a new, empty DynamicConnection. Any flags passed (OR'd
// together if multiple) apply to links the DynamicConnection makes later.
func NewDynamicConnection(flags ...ConnectionFlags) *DynamicConnection {
	dyn := &DynamicConnection{}
	for _, f := range flags {
		dyn.flags |= f
	}
	dyn.Clear()
	return dyn
}

// NewLinkedDynamicConnection returns a new DynamicConnection immediately linking the
// given Signal to the given Callable, connected with the given flags (OR'd together if
// multiple). If the Signal or the Callable is invalid, NewLinkedDynamicConnection
// returns the error from Set alongside the (empty, usable) DynamicConnection.
func NewLinkedDynamicConnection(signal *Signal, callable Callable, flags ...ConnectionFlags) (*DynamicConnection, error) {
	dyn := NewDynamicConnection(flags...)
	err := dyn.Set(signal, callable)
	return dyn, err
}

// set is the single funnel all mutations go through; it makes rewiring atomic from the
// caller's point of view. The stored link is unwired (only if it is actually wired), the
// new pair is wired (only if it is valid), and the new pair is stored regardless, so an
// invalid pair simply records as empty.
func (dyn *DynamicConnection) set(signal *Signal, callable Callable, flags []ConnectionFlags) {

	if len(flags) > 0 {
		dyn.flags = 0
		for _, f := range flags {
			dyn.flags |= f
		}
	}

	if dyn.IsValid() && dyn.signal.IsConnected(dyn.callable) {
		dyn.signal.Disconnect(dyn.callable)
	}

	if pairValid(signal, callable) {
		signal.Connect(callable, dyn.flags)
	}

	dyn.signal = signal
	dyn.callable = callable

}

// pairValid returns true if the Signal / Callable pair could be wired - the Signal is
// non-nil with a live owning Object, and the Callable is invokable.
func pairValid(signal *Signal, callable Callable) bool {
	return signal.IsValid() && callable.IsValid()
}

// SetOrClear links the given Signal to the given Callable, tearing down whatever link
// the DynamicConnection previously held. If flags are passed, they replace the stored
// flags before wiring; otherwise the stored flags are kept. SetOrClear never fails: if
// the new pair is invalid in any way, it is stored unwired, leaving the DynamicConnection
// in the empty state (this is the null-safe tier of the API - see Set for the strict
// one).
func (dyn *DynamicConnection) SetOrClear(signal *Signal, callable Callable, flags ...ConnectionFlags) {
	dyn.set(signal, callable, flags)
}

// Set links the given Signal to the given Callable, tearing down whatever link the
// DynamicConnection previously held. If flags are passed, they replace the stored flags
// before wiring. Set returns ErrInvalidSignal if the Signal is nil or its owner is dead,
// and ErrInvalidCallable if the Callable isn't invokable; on error, the prior link and
// state are left untouched.
func (dyn *DynamicConnection) Set(signal *Signal, callable Callable, flags ...ConnectionFlags) error {

	if !signal.IsValid() {
		return ErrInvalidSignal
	}
	if !callable.IsValid() {
		return ErrInvalidCallable
	}

	dyn.set(signal, callable, flags)

	return nil

}

// SetSignalOrClear rewires the DynamicConnection to the given Signal, keeping the stored
// Callable. Like SetOrClear, it never fails - an invalid Signal tears down the old link
// and leaves the DynamicConnection unwired.
func (dyn *DynamicConnection) SetSignalOrClear(signal *Signal) {
	dyn.set(signal, dyn.callable, nil)
}

// SetSignal rewires the DynamicConnection to the given Signal, keeping the stored
// Callable. SetSignal returns ErrInvalidSignal if the Signal is nil or its owner is
// dead, leaving the prior state untouched.
func (dyn *DynamicConnection) SetSignal(signal *Signal) error {
	if !signal.IsValid() {
		return ErrInvalidSignal
	}
	dyn.set(signal, dyn.callable, nil)
	return nil
}

// SetCallableOrClear rewires the DynamicConnection to the given Callable, keeping the
// stored Signal. Like SetOrClear, it never fails - an invalid Callable tears down the
// old link and leaves the DynamicConnection unwired.
func (dyn *DynamicConnection) SetCallableOrClear(callable Callable) {
	dyn.set(dyn.signal, callable, nil)
}

// SetCallable rewires the DynamicConnection to the given Callable, keeping the stored
// Signal. SetCallable returns ErrInvalidCallable if the Callable isn't invokable,
// leaving the prior state untouched.
func (dyn *DynamicConnection) SetCallable(callable Callable) error {
	if !callable.IsValid() {
		return ErrInvalidCallable
	}
	dyn.set(dyn.signal, callable, nil)
	return nil
}

// Clear tears down the DynamicConnection's link (if wired) and clears the stored pair,
// returning the DynamicConnection to the empty state. The stored flags are kept. Clear
// is idempotent - clearing an already-empty DynamicConnection does nothing.
func (dyn *DynamicConnection) Clear() {
	dyn.set(nil, Callable{}, nil)
}

// Signal returns the currently stored Signal, which may be nil or invalid.
func (dyn *DynamicConnection) Signal() *Signal {
	return dyn.signal
}

// Callable returns the currently stored Callable, which may be invalid.
func (dyn *DynamicConnection) Callable() Callable {
	return dyn.callable
}

// Flags returns the ConnectionFlags the DynamicConnection wires links with.
func (dyn *DynamicConnection) Flags() ConnectionFlags {
	return dyn.flags
}

// IsValid returns true if the stored Signal / Callable pair is valid (live Signal owner,
// invokable Callable). IsValid does NOT guarantee the link is actually wired - it may
// have been disconnected externally, or fired and auto-removed under ConnectOneShot;
// use IsConnected for the authoritative check.
func (dyn *DynamicConnection) IsValid() bool {
	return pairValid(dyn.signal, dyn.callable)
}

// IsConnected returns true if the stored pair is valid AND the Signal reports the link
// as currently wired. This is the authoritative "is it really connected" check.
func (dyn *DynamicConnection) IsConnected() bool {
	return dyn.IsValid() && dyn.signal.IsConnected(dyn.callable)
}
