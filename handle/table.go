package handle

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Table is a bounded, generational handle table for objects of type T.
// It is the sole owner of the objects it stores: callers only hold
// handles, and every access is mediated by the table.
//
// Not safe for concurrent use; the runtime is single-threaded by contract.
type Table[T any] struct {
	slots     []slot[T]
	free      []uint32
	observers []Observer
	capacity  int
	live      int
}

// NewTable creates a table holding at most capacity live objects.
// Capacities above MaxCapacity are clamped.
func NewTable[T any](capacity int) *Table[T] {
	if capacity < 0 {
		capacity = 0
	}
	if capacity > MaxCapacity {
		capacity = MaxCapacity
	}
	return &Table[T]{
		slots:    make([]slot[T], 0, min(capacity, 64)),
		capacity: capacity,
	}
}

// Insert stores a value and returns its handle, or 0 if the table is at
// capacity. Capacity exhaustion is a soft failure: the compiler ABI has
// no error channel for creation calls.
func (t *Table[T]) Insert(value T) Handle {
	if t.live >= t.capacity {
		t.notify(Event{Type: EventRejected})
		return 0
	}

	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[idx].value = value
		t.slots[idx].live = true
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot[T]{value: value, live: true})
	}

	t.live++
	h := makeHandle(idx, t.slots[idx].gen)
	t.notify(Event{Type: EventCreated, Handle: h})
	return h
}

// Get retrieves a value by handle. The second return distinguishes "no
// such object" from a legitimately zero-valued object.
func (t *Table[T]) Get(h Handle) (T, bool) {
	var zero T
	s := t.lookup(h)
	if s == nil {
		return zero, false
	}
	return s.value, true
}

// GetRef returns a pointer to the stored value for in-place mutation,
// or nil for an invalid handle.
func (t *Table[T]) GetRef(h Handle) *T {
	s := t.lookup(h)
	if s == nil {
		return nil
	}
	return &s.value
}

// Remove drops an object and returns (value, true) if it was live.
// The slot's generation is bumped so the removed handle, and any copies
// of it, can never alias a later occupant of the same slot.
func (t *Table[T]) Remove(h Handle) (T, bool) {
	var zero T
	s := t.lookup(h)
	if s == nil {
		return zero, false
	}

	value := s.value
	s.value = zero
	s.live = false
	s.gen = (s.gen + 1) & genMask
	t.free = append(t.free, h.Index())
	t.live--

	t.notify(Event{Type: EventRemoved, Handle: h})
	return value, true
}

// Len returns the number of live objects.
func (t *Table[T]) Len() int {
	return t.live
}

// Cap returns the table's fixed capacity.
func (t *Table[T]) Cap() int {
	return t.capacity
}

// Each iterates over all live objects in slot order. Returning false from
// fn stops the iteration.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	for i := range t.slots {
		if !t.slots[i].live {
			continue
		}
		if !fn(makeHandle(uint32(i), t.slots[i].gen), t.slots[i].value) {
			return
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.observers = append(t.observers, o)
}

func (t *Table[T]) lookup(h Handle) *slot[T] {
	if h == 0 {
		return nil
	}
	idx := h.Index()
	if int(idx) >= len(t.slots) {
		return nil
	}
	s := &t.slots[idx]
	if !s.live || s.gen != h.Generation() {
		return nil
	}
	return s
}

func (t *Table[T]) notify(e Event) {
	for _, o := range t.observers {
		o.OnTableEvent(e)
	}
}
