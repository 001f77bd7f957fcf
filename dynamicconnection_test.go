package tether

import (
	"errors"
	"testing"
)

// wiredCount returns how many of the given signals currently have the callable wired.
func wiredCount(callable Callable, signals ...*Signal) int {
	count := 0
	for _, s := range signals {
		if s.IsConnected(callable) {
			count++
		}
	}
	return count
}

func TestDynamicConnectionRewire(t *testing.T) {

	alarm := NewObject("Alarm")
	tripwire := NewObject("Tripwire")

	alarmTriggered := NewSignal(alarm, "triggered")
	tripwireCrossed := NewSignal(tripwire, "crossed")

	fired := 0
	onFire := NewCallable(func(args ...interface{}) { fired++ })

	dyn := NewDynamicConnection()

	if err := dyn.Set(alarmTriggered, onFire); err != nil {
		t.Fatal("setting a valid pair errored:", err)
	}
	if !dyn.IsConnected() {
		t.Fatal("link should be live after Set with a valid pair")
	}

	alarmTriggered.Emit()
	if fired != 1 {
		t.Fatal("expected 1 delivery, got", fired)
	}

	// Rewiring to another signal has to tear the old link down first.
	if err := dyn.SetSignal(tripwireCrossed); err != nil {
		t.Fatal("rewiring to a valid signal errored:", err)
	}
	if alarmTriggered.IsConnected(onFire) {
		t.Fatal("old link should be unwired after SetSignal")
	}
	if !tripwireCrossed.IsConnected(onFire) {
		t.Fatal("new link should be wired after SetSignal")
	}

	alarmTriggered.Emit()
	tripwireCrossed.Emit()
	if fired != 2 {
		t.Fatal("expected 2 deliveries after rewiring, got", fired)
	}

	dyn.Clear()
	if dyn.IsValid() {
		t.Fatal("cleared connection should not be valid")
	}
	if wiredCount(onFire, alarmTriggered, tripwireCrossed) != 0 {
		t.Fatal("cleared connection left a link wired")
	}

}

func TestDynamicConnectionSingleLink(t *testing.T) {

	a := NewSignal(NewObject("A"), "sig")
	b := NewSignal(NewObject("B"), "sig")
	c := NewSignal(NewObject("C"), "sig")

	x := NewCallable(func(args ...interface{}) {})
	y := NewCallable(func(args ...interface{}) {})

	dyn := NewDynamicConnection()

	check := func(step string) {
		total := wiredCount(x, a, b, c) + wiredCount(y, a, b, c)
		if total > 1 {
			t.Fatal("more than one link wired after", step)
		}
	}

	dyn.SetOrClear(a, x)
	check("SetOrClear(a, x)")
	dyn.SetSignalOrClear(b)
	check("SetSignalOrClear(b)")
	dyn.SetCallableOrClear(y)
	check("SetCallableOrClear(y)")
	dyn.SetOrClear(c, x)
	check("SetOrClear(c, x)")
	dyn.SetOrClear(nil, Callable{})
	check("SetOrClear(nil, zero)")
	dyn.SetOrClear(a, y)
	check("SetOrClear(a, y)")
	dyn.Clear()
	check("Clear")

	if wiredCount(x, a, b, c)+wiredCount(y, a, b, c) != 0 {
		t.Fatal("links remain wired after final Clear")
	}

}

func TestDynamicConnectionClearIdempotent(t *testing.T) {

	dyn := NewDynamicConnection()
	dyn.Clear()
	dyn.Clear()

	if dyn.IsValid() || dyn.IsConnected() {
		t.Fatal("double-cleared connection should be empty")
	}
	if dyn.Signal() != nil {
		t.Fatal("double-cleared connection should store no signal")
	}

	sig := NewSignal(NewObject("Emitter"), "sig")
	dyn.SetOrClear(sig, NewCallable(func(args ...interface{}) {}))
	dyn.Clear()
	dyn.Clear()

	if dyn.IsValid() || sig.Connections().Count() != 0 {
		t.Fatal("double-clearing a linked connection should leave nothing wired")
	}

}

func TestNewLinkedDynamicConnection(t *testing.T) {

	sig := NewSignal(NewObject("Emitter"), "sig")
	cb := NewCallable(func(args ...interface{}) {})

	dyn, err := NewLinkedDynamicConnection(sig, cb)
	if err != nil {
		t.Fatal("linking a valid pair errored:", err)
	}
	if !dyn.IsConnected() {
		t.Fatal("link should be live immediately after construction")
	}

	dyn2, err := NewLinkedDynamicConnection(nil, cb)
	if !errors.Is(err, ErrInvalidSignal) {
		t.Fatal("expected ErrInvalidSignal, got", err)
	}
	if dyn2 == nil || dyn2.IsValid() {
		t.Fatal("failed construction should still return an empty, usable connection")
	}

}

func TestDynamicConnectionStrictErrors(t *testing.T) {

	sig := NewSignal(NewObject("Emitter"), "sig")
	cb := NewCallable(func(args ...interface{}) {})

	dyn := NewDynamicConnection()
	if err := dyn.Set(sig, cb); err != nil {
		t.Fatal(err)
	}

	// A strict setter that fails must leave the prior link untouched.
	if err := dyn.SetCallable(Callable{}); !errors.Is(err, ErrInvalidCallable) {
		t.Fatal("expected ErrInvalidCallable, got", err)
	}
	if !dyn.IsConnected() || !sig.IsConnected(cb) {
		t.Fatal("failed SetCallable should leave the prior link wired")
	}

	if err := dyn.SetSignal(nil); !errors.Is(err, ErrInvalidSignal) {
		t.Fatal("expected ErrInvalidSignal, got", err)
	}
	if !dyn.IsConnected() {
		t.Fatal("failed SetSignal should leave the prior link wired")
	}

	dead := NewObject("Dead")
	dead.Free()
	if err := dyn.Set(NewSignal(dead, "sig"), cb); !errors.Is(err, ErrInvalidSignal) {
		t.Fatal("expected ErrInvalidSignal for a dead owner, got", err)
	}
	if dyn.Signal() != sig {
		t.Fatal("failed Set should not overwrite the stored signal")
	}

}

func TestDynamicConnectionSetSignalOrClearInvalid(t *testing.T) {

	sig := NewSignal(NewObject("Emitter"), "sig")
	cb := NewCallable(func(args ...interface{}) {})

	dyn := NewDynamicConnection()
	dyn.SetOrClear(sig, cb)
	if !dyn.IsConnected() {
		t.Fatal("link should be live")
	}

	dyn.SetSignalOrClear(nil)

	if sig.IsConnected(cb) {
		t.Fatal("old link should be torn down")
	}
	if dyn.IsValid() {
		t.Fatal("connection should be invalid after clearing the signal half")
	}

}

func TestDynamicConnectionExternalSeverance(t *testing.T) {

	sig := NewSignal(NewObject("Emitter"), "sig")
	cb := NewCallable(func(args ...interface{}) {})

	dyn := NewDynamicConnection()
	dyn.SetOrClear(sig, cb)

	// Something else tears the link down behind the DynamicConnection's back; the
	// stored pair remains valid, but the link is no longer live.
	sig.Disconnect(cb)

	if !dyn.IsValid() {
		t.Fatal("externally severed connection should still hold a valid pair")
	}
	if dyn.IsConnected() {
		t.Fatal("externally severed connection should not report as connected")
	}

}

func TestDynamicConnectionOneShot(t *testing.T) {

	sig := NewSignal(NewObject("Emitter"), "sig")

	fired := 0
	cb := NewCallable(func(args ...interface{}) { fired++ })

	dyn := NewDynamicConnection(ConnectOneShot)
	if err := dyn.Set(sig, cb); err != nil {
		t.Fatal(err)
	}

	sig.Emit()
	sig.Emit()

	if fired != 1 {
		t.Fatal("one-shot link should deliver exactly once, delivered", fired, "times")
	}
	if !dyn.IsValid() {
		t.Fatal("pair should still be valid after the one-shot fired")
	}
	if dyn.IsConnected() {
		t.Fatal("one-shot link should be unwired after firing")
	}

}

func TestDynamicConnectionFlagOverwrite(t *testing.T) {

	sig := NewSignal(NewObject("Emitter"), "sig")

	fired := 0
	cb := NewCallable(func(args ...interface{}) { fired++ })

	dyn := NewDynamicConnection()
	dyn.SetOrClear(sig, cb)

	// Passing flags to a setter overwrites the stored flags before rewiring.
	dyn.SetOrClear(sig, cb, ConnectOneShot)
	if dyn.Flags() != ConnectOneShot {
		t.Fatal("flags passed to SetOrClear should replace the stored flags")
	}

	sig.Emit()
	sig.Emit()
	if fired != 1 {
		t.Fatal("rewired link should honor the new one-shot flag, delivered", fired, "times")
	}

}

func TestDynamicConnectionDeadOwner(t *testing.T) {

	owner := NewObject("Emitter")
	sig := NewSignal(owner, "sig")
	cb := NewCallable(func(args ...interface{}) {})

	dyn := NewDynamicConnection()
	dyn.SetOrClear(sig, cb)

	owner.Free()

	if dyn.IsValid() {
		t.Fatal("connection to a signal with a dead owner should not be valid")
	}
	if dyn.IsConnected() {
		t.Fatal("connection to a signal with a dead owner should not report as connected")
	}

}
