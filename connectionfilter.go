package tether

// ConnectionFilter represents a chain of filters, executed in sequence to collect the
// desired connections out of a Signal's connection list. The filters execute lazily, when
// a result is requested (so chaining filters doesn't allocate intermediate slices).
type ConnectionFilter struct {
	signal  *Signal
	filters []func(*Connection) bool
}

func newConnectionFilter(signal *Signal) *ConnectionFilter {
	return &ConnectionFilter{signal: signal}
}

// By adds a custom filter to the ConnectionFilter, and returns the ConnectionFilter for
// chaining.
func (cf *ConnectionFilter) By(filter func(*Connection) bool) *ConnectionFilter {
	cf.filters = append(cf.filters, filter)
	return cf
}

// ByFlags filters the ConnectionFilter down to connections made with all of the given
// flags set, and returns the ConnectionFilter for chaining.
func (cf *ConnectionFilter) ByFlags(flags ConnectionFlags) *ConnectionFilter {
	return cf.By(func(conn *Connection) bool {
		return conn.flags.Has(flags)
	})
}

// ByOwner filters the ConnectionFilter down to connections whose Callables are tied to
// the given owning Object (see NewMethod), and returns the ConnectionFilter for chaining.
func (cf *ConnectionFilter) ByOwner(owner IObject) *ConnectionFilter {
	return cf.By(func(conn *Connection) bool {
		return conn.callable.owner != nil && owner != nil && conn.callable.owner.ID() == owner.ID()
	})
}

// ByValid filters the ConnectionFilter down to connections whose Callables are still
// invokable, and returns the ConnectionFilter for chaining.
func (cf *ConnectionFilter) ByValid() *ConnectionFilter {
	return cf.By(func(conn *Connection) bool {
		return conn.callable.IsValid()
	})
}

// ForEach executes the ConnectionFilter and calls the given function for each connection
// that passes. If the function returns false, iteration stops early.
func (cf *ConnectionFilter) ForEach(fn func(conn *Connection) bool) {

	if cf.signal == nil {
		return
	}

	for _, conn := range cf.signal.connections {

		passed := true
		for _, filter := range cf.filters {
			if !filter(conn) {
				passed = false
				break
			}
		}

		if passed && !fn(conn) {
			return
		}

	}

}

// Count executes the ConnectionFilter and returns how many connections pass it.
func (cf *ConnectionFilter) Count() int {
	count := 0
	cf.ForEach(func(conn *Connection) bool {
		count++
		return true
	})
	return count
}

// First executes the ConnectionFilter and returns the first connection that passes it,
// or nil if none do.
func (cf *ConnectionFilter) First() *Connection {
	var first *Connection
	cf.ForEach(func(conn *Connection) bool {
		first = conn
		return false
	})
	return first
}

// Connections executes the ConnectionFilter and returns the connections that pass it as
// a slice.
func (cf *ConnectionFilter) Connections() []*Connection {
	out := []*Connection{}
	cf.ForEach(func(conn *Connection) bool {
		out = append(out, conn)
		return true
	})
	return out
}
