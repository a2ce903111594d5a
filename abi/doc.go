// Package abi is the flat runtime surface consumed by compiler-generated
// code. It preserves the calling convention's failure semantics exactly:
//
// Soft failures (table capacity, invalid handle, out-of-range index)
// resolve silently to the zero sentinel — handle 0, length 0, element 0,
// or a no-op write. No diagnostic is surfaced; callers must check for
// handle 0 after every creation call.
//
// Hard failures (range-check violation, region allocator exhaustion)
// invoke the surface's trap handler. The default handler reports the
// diagnostic and terminates the process, matching the trap-instruction
// semantics the compiler assumes. Embedders can substitute a handler that
// records the trap and returns, in which case the operation yields the
// zero sentinel.
package abi
