package textbind

// ListenerID identifies a listener registered on an Event. Zero is never
// issued.
type ListenerID uint32

type listenerEntry struct {
	id ListenerID
	fn func()
}

// Event is a multicast change notification. Listeners run in registration
// order. Listeners may be added or removed while the event is being invoked;
// additions take effect on the next Invoke, removals immediately.
type Event struct {
	listeners []listenerEntry
	nextID    ListenerID
	invoking  int
	removed   bool // a listener was nil'd out during Invoke; compact afterwards
}

// AddListener registers fn and returns an ID for RemoveListener.
// A nil fn is ignored and returns 0.
func (e *Event) AddListener(fn func()) ListenerID {
	if fn == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listenerEntry{id: e.nextID, fn: fn})
	return e.nextID
}

// RemoveListener unregisters the listener with the given ID. It reports
// whether a listener was removed.
func (e *Event) RemoveListener(id ListenerID) bool {
	if id == 0 {
		return false
	}
	for i := range e.listeners {
		if e.listeners[i].id != id || e.listeners[i].fn == nil {
			continue
		}
		if e.invoking > 0 {
			e.listeners[i].fn = nil
			e.removed = true
		} else {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
		}
		return true
	}
	return false
}

// RemoveAllListeners clears every listener.
func (e *Event) RemoveAllListeners() {
	if e.invoking > 0 {
		for i := range e.listeners {
			e.listeners[i].fn = nil
		}
		e.removed = true
		return
	}
	e.listeners = e.listeners[:0]
}

// Invoke calls every registered listener.
func (e *Event) Invoke() {
	n := len(e.listeners) // listeners added during Invoke wait for the next one
	e.invoking++
	for i := 0; i < n; i++ {
		if fn := e.listeners[i].fn; fn != nil {
			fn()
		}
	}
	e.invoking--
	if e.invoking == 0 && e.removed {
		e.compact()
	}
}

// ListenerCount returns the number of live listeners.
func (e *Event) ListenerCount() int {
	count := 0
	for i := range e.listeners {
		if e.listeners[i].fn != nil {
			count++
		}
	}
	return count
}

func (e *Event) compact() {
	live := e.listeners[:0]
	for _, l := range e.listeners {
		if l.fn != nil {
			live = append(live, l)
		}
	}
	for i := len(live); i < len(e.listeners); i++ {
		e.listeners[i] = listenerEntry{}
	}
	e.listeners = live
	e.removed = false
}
