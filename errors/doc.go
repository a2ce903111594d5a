// Package errors provides structured error types for the Aura runtime.
//
// Errors carry a Phase (where in the runtime the failure occurred) and a
// Kind (what class of failure it is), so callers and logs can distinguish
// soft table misses from allocator faults without string matching.
//
// The Trap type represents the runtime's unrecoverable failure class:
// arena exhaustion and range-check violations. A Trap is still an ordinary
// Go error value; the host decides whether to translate it into process
// termination or to recover (embedding scenarios).
package errors
