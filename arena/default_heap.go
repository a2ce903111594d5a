//go:build !region_alloc

package arena

import aurart "github.com/aura-lang/aura-runtime"

// DefaultAllocator returns the build-selected allocation strategy.
// Without the region_alloc tag this is the heap.
func DefaultAllocator() aurart.Allocator {
	return NewHeap()
}
