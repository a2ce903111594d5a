package runtime

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	aurart "github.com/aura-lang/aura-runtime"
	"github.com/aura-lang/aura-runtime/arena"
	"github.com/aura-lang/aura-runtime/errors"
	"github.com/aura-lang/aura-runtime/handle"
)

// Default table capacities.
const (
	DefaultTensorCapacity = 1024
	DefaultModelCapacity  = 256
)

const elemSize = 4 // tensors hold uint32 elements

// Options configures a Context. The zero value selects the build-time
// default allocator, the default capacities and stdout.
type Options struct {
	// Allocator supplies tensor backing storage. Defaults to
	// arena.DefaultAllocator().
	Allocator aurart.Allocator

	// TensorCapacity bounds the number of live tensors (default 1024).
	TensorCapacity int

	// ModelCapacity bounds the number of live models (default 256).
	ModelCapacity int

	// Stdout receives Println output (default os.Stdout).
	Stdout io.Writer
}

// Context is a caller-owned runtime instance. It is the sole owner of the
// tensors and models it stores; callers hold non-owning handles and every
// operation goes through the Context.
type Context struct {
	alloc   aurart.Allocator
	tensors *handle.Table[*Tensor]
	models  *handle.Table[*Model]
	out     io.Writer
}

// NewContext creates an isolated runtime instance.
func NewContext(opts Options) *Context {
	if opts.Allocator == nil {
		opts.Allocator = arena.DefaultAllocator()
	}
	if opts.TensorCapacity <= 0 {
		opts.TensorCapacity = DefaultTensorCapacity
	}
	if opts.ModelCapacity <= 0 {
		opts.ModelCapacity = DefaultModelCapacity
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	return &Context{
		alloc:   opts.Allocator,
		tensors: handle.NewTable[*Tensor](opts.TensorCapacity),
		models:  handle.NewTable[*Model](opts.ModelCapacity),
		out:     opts.Stdout,
	}
}

// NewTensor allocates a tensor of the given length with a zeroed element
// buffer and returns its handle. At table capacity the handle is 0 and the
// error is the soft *errors.Error; an allocator fault propagates as
// *errors.Trap with a 0 handle.
func (c *Context) NewTensor(length uint32) (handle.Handle, error) {
	if c.tensors.Len() >= c.tensors.Cap() {
		return 0, errors.CapacityExhausted(errors.PhaseTable, "tensor_new", c.tensors.Cap())
	}

	buf, err := c.alloc.Alloc(length, elemSize)
	if err != nil {
		Logger().Error("tensor allocation failed",
			zap.Uint32("length", length),
			zap.Error(err))
		return 0, err
	}

	t := &Tensor{data: viewU32(buf, length)}
	h := c.tensors.Insert(t)
	Logger().Debug("tensor created",
		zap.Uint32("handle", uint32(h)),
		zap.Uint32("length", length))
	return h, nil
}

// Tensor resolves a handle to its tensor, distinguishing "no such object"
// from a valid zero-length tensor.
func (c *Context) Tensor(h handle.Handle) (*Tensor, bool) {
	return c.tensors.Get(h)
}

// TensorLen returns a tensor's element count. The ok result is false for
// handle 0 and for any handle that was never issued.
func (c *Context) TensorLen(h handle.Handle) (uint32, bool) {
	t, ok := c.tensors.Get(h)
	if !ok {
		return 0, false
	}
	return t.Len(), true
}

// TensorGet reads an element. The ok result is false for an invalid
// handle or an out-of-range index; this is the soft lookup path and never
// traps, unlike RangeCheck.
func (c *Context) TensorGet(h handle.Handle, index uint32) (uint32, bool) {
	t, ok := c.tensors.Get(h)
	if !ok || index >= t.Len() {
		return 0, false
	}
	return t.data[index], true
}

// TensorSet writes an element in place. Returns false (and writes
// nothing) for an invalid handle or out-of-range index.
func (c *Context) TensorSet(h handle.Handle, index, value uint32) bool {
	t, ok := c.tensors.Get(h)
	if !ok || index >= t.Len() {
		return false
	}
	t.data[index] = value
	return true
}

// LoadModel allocates a model slot. The locator is accepted and retained
// for diagnostics but otherwise unused by the prototype loading path.
// Returns handle 0 with a soft error at table capacity.
func (c *Context) LoadModel(locator string) (handle.Handle, error) {
	if c.models.Len() >= c.models.Cap() {
		return 0, errors.CapacityExhausted(errors.PhaseTable, "load_model", c.models.Cap())
	}
	h := c.models.Insert(&Model{Locator: locator})
	Logger().Debug("model loaded",
		zap.Uint32("handle", uint32(h)),
		zap.String("locator", locator))
	return h, nil
}

// Model resolves a model handle.
func (c *Context) Model(h handle.Handle) (*Model, bool) {
	return c.models.Get(h)
}

// Infer runs the placeholder model evaluation: an identity transform. The
// output tensor has the input's length and element values. An invalid
// input handle behaves as length 0 and yields a zero-length output rather
// than an error, matching the soft-failure contract of the tensor
// accessors. Output-table capacity exhaustion returns handle 0.
func (c *Context) Infer(model, input handle.Handle) (handle.Handle, error) {
	in, ok := c.tensors.Get(input)

	var length uint32
	if ok {
		length = in.Len()
	}

	out, err := c.NewTensor(length)
	if err != nil {
		return 0, err
	}
	if ok {
		dst, _ := c.tensors.Get(out)
		copy(dst.data, in.data)
	}
	return out, nil
}

// RangeCheck enforces the inclusive bounds assertion the compiler emits at
// unsafe access points. It returns nil when lo <= v <= hi and *errors.Trap
// otherwise. A violation means a miscompiled or unsafe program; the host
// is expected to treat the trap as process-terminating.
func (c *Context) RangeCheck(v, lo, hi uint32) *errors.Trap {
	if v < lo || v > hi {
		trap := errors.RangeTrap(v, lo, hi)
		Logger().Error("range check failed",
			zap.Uint32("value", v),
			zap.Uint32("lo", lo),
			zap.Uint32("hi", hi))
		return trap
	}
	return nil
}

// Println writes a line of UTF-8 text. A nil string prints the fixed
// placeholder, matching the calling convention for absent text.
func (c *Context) Println(s *string) {
	if s == nil {
		fmt.Fprintln(c.out, "<null>")
		return
	}
	fmt.Fprintln(c.out, *s)
}

// Stats reports the context's live object counts and allocator usage.
type Stats struct {
	Tensors        int
	TensorCapacity int
	Models         int
	ModelCapacity  int
	AllocUsed      uint64
	AllocCap       uint64 // 0 when unbounded
}

// Stats returns a snapshot of the context's resource usage.
func (c *Context) Stats() Stats {
	s := Stats{
		Tensors:        c.tensors.Len(),
		TensorCapacity: c.tensors.Cap(),
		Models:         c.models.Len(),
		ModelCapacity:  c.models.Cap(),
	}
	if a, ok := c.alloc.(aurart.AllocatorStats); ok {
		s.AllocUsed = a.Used()
		s.AllocCap = a.Cap()
	}
	return s
}

// EachTensor iterates over live tensors in slot order.
func (c *Context) EachTensor(fn func(handle.Handle, *Tensor) bool) {
	c.tensors.Each(fn)
}

// EachModel iterates over live models in slot order.
func (c *Context) EachModel(fn func(handle.Handle, *Model) bool) {
	c.models.Each(fn)
}
