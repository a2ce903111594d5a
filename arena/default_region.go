//go:build region_alloc

package arena

import aurart "github.com/aura-lang/aura-runtime"

// DefaultAllocator returns the build-selected allocation strategy.
// With the region_alloc tag this is a fixed 16 MiB bump region.
func DefaultAllocator() aurart.Allocator {
	return NewRegion(DefaultRegionBytes)
}
