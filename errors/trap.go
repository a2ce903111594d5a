package errors

import "fmt"

// Trap is the runtime's unrecoverable failure class. The compiler treats
// the conditions that produce a Trap (range-check violation, arena
// exhaustion) as contract violations equivalent to a trap instruction:
// continuing would operate on undefined state. The top-level host decides
// whether a Trap terminates the process or is surfaced to an embedder.
type Trap struct {
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (t *Trap) Error() string {
	return fmt.Sprintf("trap: %s: %s", t.Kind, t.Detail)
}

// Is reports whether target matches this trap
func (t *Trap) Is(target error) bool {
	if o, ok := target.(*Trap); ok {
		return t.Kind == o.Kind
	}
	return false
}

// RangeTrap creates the trap raised when a compiler-emitted bounds check
// fails. The diagnostic mirrors what the runtime reports before aborting:
// the violated value and the inclusive bounds.
func RangeTrap(v, lo, hi uint32) *Trap {
	return &Trap{
		Kind:   KindRangeViolation,
		Detail: fmt.Sprintf("%d not in [%d..%d]", v, lo, hi),
	}
}

// ArenaTrap creates the trap raised when the region allocator cannot
// satisfy a request. The arena has no eviction or growth policy, so
// exhaustion is a fatal configuration error.
func ArenaTrap(requested, capacity uint64) *Trap {
	return &Trap{
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("region allocator out of memory: requested %d bytes (arena=%d)", requested, capacity),
	}
}
