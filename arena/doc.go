// Package arena provides the runtime's two allocation strategies.
//
// Region is a fixed-capacity bump allocator: offsets only grow, individual
// allocations are never freed, and memory is reclaimed when the process
// exits. It exists for deterministic performance in short-lived runs.
// Exhaustion is unrecoverable and surfaces as *errors.Trap.
//
// Heap delegates to the Go allocator and never fails in practice.
//
// The strategies are selected at build time, not at runtime: building with
// the region_alloc tag makes DefaultAllocator return a Region, otherwise it
// returns a Heap. Callers cannot distinguish the two through the Allocator
// contract except by behavior under exhaustion.
package arena
