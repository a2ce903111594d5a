package abi

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/aura-lang/aura-runtime/errors"
	"github.com/aura-lang/aura-runtime/handle"
	"github.com/aura-lang/aura-runtime/runtime"
)

// TrapHandler decides what happens on an unrecoverable runtime fault.
// The default terminates the process; a handler that returns makes the
// faulting operation yield the zero sentinel instead.
type TrapHandler func(*errors.Trap)

// DefaultTrapHandler reports the trap diagnostic on stderr and terminates
// the process.
func DefaultTrapHandler(t *errors.Trap) {
	fmt.Fprintf(os.Stderr, "Aura %s\n", t.Error())
	os.Exit(1)
}

// Surface exposes a runtime Context through the stable ABI contract.
type Surface struct {
	ctx    *runtime.Context
	onTrap TrapHandler
}

// New wraps a context with the default process-terminating trap handler.
func New(ctx *runtime.Context) *Surface {
	return &Surface{ctx: ctx, onTrap: DefaultTrapHandler}
}

// SetTrapHandler replaces the trap handler. Passing nil restores the
// default.
func (s *Surface) SetTrapHandler(h TrapHandler) {
	if h == nil {
		h = DefaultTrapHandler
	}
	s.onTrap = h
}

// Context returns the wrapped runtime context.
func (s *Surface) Context() *runtime.Context {
	return s.ctx
}

// Println prints a line of text, or the fixed placeholder when the text
// is absent. Never fails.
func (s *Surface) Println(text *string) {
	s.ctx.Println(text)
}

// RangeCheck enforces lo <= v <= hi. On violation the trap handler runs;
// on success there is no observable effect.
func (s *Surface) RangeCheck(v, lo, hi uint32) {
	if trap := s.ctx.RangeCheck(v, lo, hi); trap != nil {
		s.onTrap(trap)
	}
}

// TensorNew creates a tensor of the given length and returns its handle,
// or 0 if the table is at capacity. Region exhaustion traps.
func (s *Surface) TensorNew(length uint32) uint32 {
	h, err := s.ctx.NewTensor(length)
	return s.flatten(h, err)
}

// TensorLen returns a tensor's length, or 0 for an invalid handle.
func (s *Surface) TensorLen(h uint32) uint32 {
	length, _ := s.ctx.TensorLen(handle.Handle(h))
	return length
}

// TensorGet returns an element, or 0 for an invalid handle or
// out-of-range index.
func (s *Surface) TensorGet(h, index uint32) uint32 {
	v, _ := s.ctx.TensorGet(handle.Handle(h), index)
	return v
}

// TensorSet writes an element in place; invalid handles and out-of-range
// indices are silently ignored.
func (s *Surface) TensorSet(h, index, value uint32) {
	s.ctx.TensorSet(handle.Handle(h), index, value)
}

// LoadModel allocates a model handle. The locator is ignored by the
// prototype loading path. Returns 0 at capacity.
func (s *Surface) LoadModel(locator string) uint32 {
	h, err := s.ctx.LoadModel(locator)
	return s.flatten(h, err)
}

// Infer evaluates the placeholder model: the output tensor is an
// element-wise copy of the input. Returns 0 on output allocation failure.
func (s *Surface) Infer(model, input uint32) uint32 {
	h, err := s.ctx.Infer(handle.Handle(model), handle.Handle(input))
	return s.flatten(h, err)
}

// flatten maps the context's explicit results onto the sentinel
// convention: traps run the trap handler, soft errors vanish into the
// zero handle.
func (s *Surface) flatten(h handle.Handle, err error) uint32 {
	if err != nil {
		var trap *errors.Trap
		if stderrors.As(err, &trap) {
			s.onTrap(trap)
			return 0
		}
	}
	return uint32(h)
}
