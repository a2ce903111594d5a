// Package hostmod exposes the Aura runtime ABI to WebAssembly guests.
//
// Programs compiled for the wasm target import the runtime under the
// aura_rt module namespace. Instantiate registers every ABI operation as
// a wazero host function over an abi.Surface, and Runner wraps the full
// load-instantiate-invoke cycle for a guest module.
//
// String arguments cross the boundary as (ptr, len) pairs into guest
// linear memory. A null pointer means "absent", matching the native
// calling convention.
//
// Hard failures (range-check violations, region exhaustion) panic out of
// the host function; wazero converts the panic into an error that aborts
// the guest call, which is the wasm rendering of the native abort.
package hostmod
