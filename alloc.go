package aurart

// Allocator supplies raw zero-initialized element buffers to the runtime.
// Both strategies (bump region, heap) satisfy it; callers must not be able
// to tell them apart except by failure behavior under exhaustion.
type Allocator interface {
	// Alloc returns a zero-initialized buffer of count*elemSize bytes,
	// aligned suitably for elements of elemSize bytes.
	Alloc(count, elemSize uint32) ([]byte, error)
}

// AllocatorStats is optionally implemented by allocators that track usage.
type AllocatorStats interface {
	// Used returns the number of bytes handed out so far.
	Used() uint64

	// Cap returns the total capacity in bytes, or 0 if unbounded.
	Cap() uint64
}
