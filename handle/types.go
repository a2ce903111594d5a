package handle

// Handle is an opaque reference to an object in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Handle layout: the low bits carry the 1-based slot index, the high bits
// the slot generation at issue time.
const (
	indexBits = 20
	indexMask = (1 << indexBits) - 1
	genBits   = 32 - indexBits
	genMask   = (1 << genBits) - 1

	// MaxCapacity is the largest number of slots a table can address.
	MaxCapacity = indexMask - 1
)

// Index returns the 0-based slot index encoded in the handle.
// Only meaningful for non-zero handles.
func (h Handle) Index() uint32 {
	return uint32(h&indexMask) - 1
}

// Generation returns the slot generation encoded in the handle.
func (h Handle) Generation() uint32 {
	return uint32(h>>indexBits) & genMask
}

func makeHandle(index, gen uint32) Handle {
	return Handle((gen&genMask)<<indexBits | (index + 1))
}

// Event types for object lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventRemoved
	EventRejected // insert refused at capacity
)

// Event describes an object lifecycle event.
type Event struct {
	Handle Handle
	Type   EventType
}

// Observer receives notifications about object lifecycle events.
type Observer interface {
	OnTableEvent(Event)
}
