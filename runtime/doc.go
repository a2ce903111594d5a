// Package runtime implements the Aura runtime context: the object store
// that owns every tensor and model a compiled program works with.
//
// A Context is an explicit, caller-owned runtime instance. There is no
// package-global state, so tests and embedders can run any number of
// isolated runtimes side by side. All state — handle tables, allocator
// offset — lives in the Context; teardown is whole-process, there is no
// shutdown API.
//
// The Context API is richer than the compiler ABI: lookups return an
// explicit ok bool distinguishing "no such object" from "valid empty
// object", and unrecoverable conditions surface as *errors.Trap values
// instead of aborting. The abi package flattens this back to the sentinel
// convention compiled code expects.
//
// Execution is single-threaded and synchronous by contract. A Context must
// not be shared across goroutines without external locking; none of its
// invariants hold under concurrent mutation.
package runtime
