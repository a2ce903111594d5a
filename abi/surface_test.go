package abi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aura-lang/aura-runtime/arena"
	"github.com/aura-lang/aura-runtime/errors"
	"github.com/aura-lang/aura-runtime/runtime"
)

// recordingTrap replaces the process-terminating default in tests.
type recordingTrap struct {
	traps []*errors.Trap
}

func (r *recordingTrap) handle(t *errors.Trap) {
	r.traps = append(r.traps, t)
}

func newTestSurface(opts runtime.Options) (*Surface, *recordingTrap) {
	s := New(runtime.NewContext(opts))
	rec := &recordingTrap{}
	s.SetTrapHandler(rec.handle)
	return s, rec
}

func TestSurface_TensorRoundTrip(t *testing.T) {
	s, rec := newTestSurface(runtime.Options{})

	h := s.TensorNew(4)
	if h == 0 {
		t.Fatal("TensorNew returned 0")
	}
	if got := s.TensorLen(h); got != 4 {
		t.Fatalf("TensorLen = %d, want 4", got)
	}

	s.TensorSet(h, 2, 7)
	if got := s.TensorGet(h, 2); got != 7 {
		t.Fatalf("TensorGet = %d, want 7", got)
	}
	if len(rec.traps) != 0 {
		t.Fatalf("Unexpected traps: %v", rec.traps)
	}
}

func TestSurface_SentinelSemantics(t *testing.T) {
	s, rec := newTestSurface(runtime.Options{})
	h := s.TensorNew(4)

	if got := s.TensorLen(0); got != 0 {
		t.Fatalf("TensorLen(0) = %d, want 0", got)
	}
	if got := s.TensorGet(h, 100); got != 0 {
		t.Fatalf("Out-of-range TensorGet = %d, want 0", got)
	}
	if got := s.TensorGet(h+5, 0); got != 0 {
		t.Fatalf("Never-issued TensorGet = %d, want 0", got)
	}

	// Writes to invalid targets are silent no-ops, never traps.
	s.TensorSet(0, 0, 1)
	s.TensorSet(h, 100, 1)
	if len(rec.traps) != 0 {
		t.Fatalf("Soft failures must not trap: %v", rec.traps)
	}
}

func TestSurface_CapacityReturnsZero(t *testing.T) {
	s, rec := newTestSurface(runtime.Options{TensorCapacity: 1})

	if s.TensorNew(1) == 0 {
		t.Fatal("First TensorNew failed")
	}
	if got := s.TensorNew(1); got != 0 {
		t.Fatalf("TensorNew at capacity = %d, want 0", got)
	}
	if len(rec.traps) != 0 {
		t.Fatal("Capacity exhaustion is a soft failure, not a trap")
	}
}

func TestSurface_RangeCheckTrap(t *testing.T) {
	s, rec := newTestSurface(runtime.Options{})

	s.RangeCheck(5, 0, 9)
	if len(rec.traps) != 0 {
		t.Fatal("In-range check must not trap")
	}

	s.RangeCheck(10, 0, 9)
	if len(rec.traps) != 1 {
		t.Fatalf("Expected 1 trap, got %d", len(rec.traps))
	}
	if rec.traps[0].Kind != errors.KindRangeViolation {
		t.Fatalf("Unexpected trap kind: %s", rec.traps[0].Kind)
	}
}

func TestSurface_RegionExhaustionTrap(t *testing.T) {
	s, rec := newTestSurface(runtime.Options{Allocator: arena.NewRegion(64)})

	if got := s.TensorNew(1000); got != 0 {
		t.Fatalf("Exhausted TensorNew = %d, want 0", got)
	}
	if len(rec.traps) != 1 || rec.traps[0].Kind != errors.KindAllocation {
		t.Fatalf("Expected allocation trap, got %v", rec.traps)
	}
}

func TestSurface_LoadModelInfer(t *testing.T) {
	s, _ := newTestSurface(runtime.Options{})

	m := s.LoadModel("ignored.onnx")
	if m == 0 {
		t.Fatal("LoadModel returned 0")
	}

	in := s.TensorNew(3)
	for i := uint32(0); i < 3; i++ {
		s.TensorSet(in, i, i+10)
	}

	out := s.Infer(m, in)
	if out == 0 {
		t.Fatal("Infer returned 0")
	}
	if got := s.TensorLen(out); got != 3 {
		t.Fatalf("Output length %d, want 3", got)
	}
	for i := uint32(0); i < 3; i++ {
		if got := s.TensorGet(out, i); got != i+10 {
			t.Fatalf("Output element %d = %d, want %d", i, got, i+10)
		}
	}

	// Invalid input yields a zero-length output, not an error.
	out = s.Infer(m, 0)
	if out == 0 {
		t.Fatal("Infer(model, 0) should return a fresh handle")
	}
	if got := s.TensorLen(out); got != 0 {
		t.Fatalf("Infer(model, 0) output length = %d, want 0", got)
	}
}

func TestSurface_Println(t *testing.T) {
	var buf bytes.Buffer
	s := New(runtime.NewContext(runtime.Options{Stdout: &buf}))
	s.SetTrapHandler(func(*errors.Trap) {})

	msg := "from compiled code"
	s.Println(&msg)
	s.Println(nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 || lines[0] != "from compiled code" || lines[1] != "<null>" {
		t.Fatalf("Unexpected output: %q", buf.String())
	}
}

func TestSurface_Builtins(t *testing.T) {
	var buf bytes.Buffer
	s := New(runtime.NewContext(runtime.Options{Stdout: &buf}))
	s.SetTrapHandler(func(*errors.Trap) {})

	h := s.LoadTensorFile("any/path")
	if h == 0 {
		t.Fatal("LoadTensorFile returned 0")
	}
	if got := s.TensorLen(h); got != 16 {
		t.Fatalf("Stub tensor length = %d, want 16", got)
	}

	s.Display(h)
	if !strings.Contains(buf.String(), "Tensor{id=") {
		t.Fatalf("Display output %q missing tensor identity", buf.String())
	}

	if got := s.ComputeGradient(3, 4); got != 7 {
		t.Fatalf("ComputeGradient = %d, want 7", got)
	}
}
