package tether

// Callable IDs start at 1 so that the zero Callable is never mistaken for a real one.
var callableID uint64 = 1

// Callable wraps a function so it can be connected to Signals. Go functions aren't
// comparable, so each Callable carries a unique ID; connecting, disconnecting, and
// connection checks all go by that ID. Callable is a value type - pass it around and
// copy it freely; copies refer to the same underlying connection identity.
//
// The zero Callable is invalid (it wraps no function), which is useful to represent
// "no target".
type Callable struct {
	id    uint64
	fn    func(args ...interface{})
	owner IObject
	bound []interface{}
}

// NewCallable returns a new Callable wrapping the given function. The Callable is valid
// as long as the function is non-nil; it has no owning Object.
func NewCallable(fn func(args ...interface{})) Callable {

	c := Callable{
		id: callableID,
		fn: fn,
	}

	callableID++

	return c
}

// NewMethod returns a new Callable wrapping the given function, tied to the given owning
// Object - conceptually, a method on that Object. The Callable is valid only while the
// owner is alive, so freeing the owner invalidates the Callable (and any connections
// using it get skipped and pruned on the owning Signal's next emission).
func NewMethod(owner IObject, fn func(args ...interface{})) Callable {
	c := NewCallable(fn)
	c.owner = owner
	return c
}

// Bind returns a new Callable (with a new ID - a bound Callable is a different connection
// identity from its base) that, when called, receives the bound arguments appended after
// whatever arguments the call itself provides. Binding an already-bound Callable appends
// to its existing bound arguments.
func (c Callable) Bind(args ...interface{}) Callable {

	bound := make([]interface{}, 0, len(c.bound)+len(args))
	bound = append(bound, c.bound...)
	bound = append(bound, args...)

	nc := c
	nc.id = callableID
	nc.bound = bound

	callableID++

	return nc
}

// ID returns the Callable's unique ID. The zero (invalid) Callable has an ID of 0.
func (c Callable) ID() uint64 {
	return c.id
}

// Owner returns the Object the Callable is tied to, if it was created through NewMethod
// (and nil otherwise).
func (c Callable) Owner() IObject {
	return c.owner
}

// IsValid returns true if the Callable can be called - it wraps a non-nil function, and
// its owning Object (if it has one) is still alive.
func (c Callable) IsValid() bool {
	if c.fn == nil {
		return false
	}
	if c.owner != nil && !c.owner.Alive() {
		return false
	}
	return true
}

// Call invokes the Callable's function with the given arguments, followed by any bound
// arguments. Calling an invalid Callable does nothing.
func (c Callable) Call(args ...interface{}) {

	if !c.IsValid() {
		return
	}

	if len(c.bound) == 0 {
		c.fn(args...)
		return
	}

	full := make([]interface{}, 0, len(args)+len(c.bound))
	full = append(full, args...)
	full = append(full, c.bound...)
	c.fn(full...)

}
