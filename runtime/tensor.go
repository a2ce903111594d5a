package runtime

import "unsafe"

// Tensor is a passive data holder: a fixed element count plus a contiguous
// buffer of unsigned 32-bit elements. All invariants (fixed length,
// bounds) are enforced by the Context, not by the tensor itself; tensors
// have no identity or behavior outside table-mediated access.
type Tensor struct {
	data []uint32
}

// Len returns the element count fixed at creation.
func (t *Tensor) Len() uint32 {
	return uint32(len(t.data))
}

// viewU32 reinterprets an allocator byte buffer as a uint32 slice.
// The allocator contract guarantees the buffer is count*4 bytes and
// aligned for 4-byte elements.
func viewU32(buf []byte, count uint32) []uint32 {
	if count == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&buf[0])), count)
}

// Model is a loaded model reference. The prototype loading path allocates
// only handle identity; the locator is retained for diagnostics but never
// interpreted. Models are never mutated and live until process exit.
type Model struct {
	Locator string
}
