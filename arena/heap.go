package arena

// Heap delegates to the Go allocator. Buffers are zero-initialized by
// construction and individually garbage-collected; there is no explicit
// free path because the runtime relies on whole-process teardown.
type Heap struct {
	used uint64
}

// NewHeap creates a heap-backed allocator.
func NewHeap() *Heap {
	return &Heap{}
}

// Alloc returns a zero-initialized buffer of count*elemSize bytes.
func (h *Heap) Alloc(count, elemSize uint32) ([]byte, error) {
	bytes := uint64(count) * uint64(elemSize)
	h.used += bytes
	return make([]byte, bytes), nil
}

// Used returns the total bytes handed out so far.
func (h *Heap) Used() uint64 {
	return h.used
}

// Cap returns 0: the heap is unbounded.
func (h *Heap) Cap() uint64 {
	return 0
}
