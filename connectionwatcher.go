package tether

// ConnectionWatcher is a utility struct used to watch a Signal's connection list for
// changes. This is useful when, for example, game logic should react to listeners being
// added to or dropped from a signal (including connections made or severed by code you
// don't control, like one-shot auto-removal or dead-callable pruning).
type ConnectionWatcher struct {
	signal      *Signal
	current     []uint64
	prevCurrent []uint64
	// WatchFilter is a function that is used to filter down which connections to watch,
	// and is called for each connection on the watched Signal. If the function returns
	// true, the connection is watched.
	WatchFilter func(conn *Connection) bool
	// OnConnect is a function run for each connection that appeared on the watched
	// Signal since the previous Update call.
	OnConnect func(conn *Connection)
	// OnDisconnect is a function run (with the Callable's ID) for each connection that
	// disappeared from the watched Signal since the previous Update call. The
	// Connection itself is gone by then, so only the ID remains to identify it.
	OnDisconnect func(callableID uint64)
}

// NewConnectionWatcher creates a new ConnectionWatcher, a utility that watches the given
// Signal's connection list for changes. onConnect is run for each connection added to
// the Signal; it can be nil if you only care about removals (set OnDisconnect yourself).
func NewConnectionWatcher(signal *Signal, onConnect func(conn *Connection)) *ConnectionWatcher {
	watcher := &ConnectionWatcher{
		signal:    signal,
		OnConnect: onConnect,
	}
	return watcher
}

// Update updates the ConnectionWatcher instance, and should be run once every game frame.
func (watch *ConnectionWatcher) Update() {

	if watch.signal == nil {
		return
	}

	watch.current = make([]uint64, 0, cap(watch.prevCurrent))

	connections := map[uint64]*Connection{}

	watch.signal.Connections().ForEach(func(conn *Connection) bool {
		if watch.WatchFilter == nil || watch.WatchFilter(conn) {
			watch.current = append(watch.current, conn.callable.id)
			connections[conn.callable.id] = conn
		}
		return true
	})

	for _, id := range watch.current {

		existedPreviously := false

		for _, p := range watch.prevCurrent {
			if id == p {
				existedPreviously = true
				break
			}
		}

		if !existedPreviously && watch.OnConnect != nil {
			watch.OnConnect(connections[id])
		}

	}

	for _, p := range watch.prevCurrent {

		stillExists := false

		for _, id := range watch.current {
			if id == p {
				stillExists = true
				break
			}
		}

		if !stillExists && watch.OnDisconnect != nil {
			watch.OnDisconnect(p)
		}

	}

	watch.prevCurrent = watch.current

}

// SetSignal sets the Signal to be watched by the ConnectionWatcher.
func (watch *ConnectionWatcher) SetSignal(signal *Signal) {
	watch.signal = signal
}
