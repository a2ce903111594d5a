package arena

import (
	"github.com/aura-lang/aura-runtime/errors"
)

// DefaultRegionBytes is the default region capacity (16 MiB).
const DefaultRegionBytes = 16 << 20

// Region is a fixed-capacity bump allocator. Each request rounds the
// running offset up to the element's natural alignment and reserves
// count*elemSize bytes from there. The offset is monotonically
// non-decreasing and allocations never overlap. There is no free path.
//
// Not safe for concurrent use; the runtime is single-threaded by contract.
type Region struct {
	buf []byte
	off uint64
}

// NewRegion creates a region with the given capacity in bytes.
// A zero or negative capacity gets the default (16 MiB).
func NewRegion(capacity int) *Region {
	if capacity <= 0 {
		capacity = DefaultRegionBytes
	}
	return &Region{buf: make([]byte, capacity)}
}

// Alloc returns a zero-initialized buffer of count*elemSize bytes from the
// region, aligned to elemSize. Exhaustion returns *errors.Trap: the region
// has no growth policy, so running out is a fatal configuration error, not
// a recoverable one.
func (r *Region) Alloc(count, elemSize uint32) ([]byte, error) {
	bytes := uint64(count) * uint64(elemSize)
	off := alignUp(r.off, uint64(elemSize))

	capacity := uint64(len(r.buf))
	if off > capacity || bytes > capacity-off {
		return nil, errors.ArenaTrap(bytes, capacity)
	}

	// The backing slice is zeroed at creation and this range was never
	// handed out before, so no explicit clear is needed.
	out := r.buf[off : off+bytes : off+bytes]
	r.off = off + bytes
	return out, nil
}

// Used returns the number of bytes reserved so far, including alignment
// padding.
func (r *Region) Used() uint64 {
	return r.off
}

// Cap returns the region's total capacity in bytes.
func (r *Region) Cap() uint64 {
	return uint64(len(r.buf))
}

// Remaining returns the bytes left before exhaustion, ignoring any
// alignment padding a future request may add.
func (r *Region) Remaining() uint64 {
	return uint64(len(r.buf)) - r.off
}

// alignUp rounds v up to the next multiple of align. align of 0 or 1
// leaves v unchanged. Alignment follows the element size, which is not
// guaranteed to be a power of two, so this uses the modulo form rather
// than a mask.
func alignUp(v, align uint64) uint64 {
	if align == 0 {
		return v
	}
	r := v % align
	if r == 0 {
		return v
	}
	return v + (align - r)
}
