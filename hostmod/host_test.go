package hostmod

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/aura-lang/aura-runtime/abi"
	"github.com/aura-lang/aura-runtime/arena"
	"github.com/aura-lang/aura-runtime/errors"
	"github.com/aura-lang/aura-runtime/runtime"
)

// Host module exports are directly callable on the instantiated module,
// which exercises the full wazero registration path without a guest.
func instantiateForTest(t *testing.T, opts runtime.Options) (*abi.Surface, func(string, ...uint64) ([]uint64, error)) {
	t.Helper()
	ctx := context.Background()

	s := abi.New(runtime.NewContext(opts))
	s.SetTrapHandler(func(tr *errors.Trap) {
		panic(tr)
	})

	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { r.Close(ctx) })

	mod, err := Instantiate(ctx, r, s)
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}

	call := func(name string, args ...uint64) ([]uint64, error) {
		fn := mod.ExportedFunction(name)
		if fn == nil {
			t.Fatalf("Host function %q not exported", name)
		}
		return fn.Call(ctx, args...)
	}
	return s, call
}

func TestHostModule_TensorLifecycle(t *testing.T) {
	_, call := instantiateForTest(t, runtime.Options{})

	res, err := call("aura_tensor_new", 4)
	if err != nil {
		t.Fatalf("aura_tensor_new failed: %v", err)
	}
	h := res[0]
	if h == 0 {
		t.Fatal("aura_tensor_new returned 0")
	}

	if res, _ = call("aura_tensor_len", h); res[0] != 4 {
		t.Fatalf("aura_tensor_len = %d, want 4", res[0])
	}

	if _, err = call("aura_tensor_set", h, 1, 55); err != nil {
		t.Fatalf("aura_tensor_set failed: %v", err)
	}
	if res, _ = call("aura_tensor_get", h, 1); res[0] != 55 {
		t.Fatalf("aura_tensor_get = %d, want 55", res[0])
	}

	// Soft failures flatten to 0 across the wasm boundary too.
	if res, _ = call("aura_tensor_get", h, 99); res[0] != 0 {
		t.Fatalf("Out-of-range get = %d, want 0", res[0])
	}
	if res, _ = call("aura_tensor_len", 0); res[0] != 0 {
		t.Fatalf("aura_tensor_len(0) = %d, want 0", res[0])
	}
}

func TestHostModule_ModelAndInfer(t *testing.T) {
	_, call := instantiateForTest(t, runtime.Options{})

	// Null locator pointer: model loading ignores it anyway.
	res, err := call("aura_ai_load_model", 0, 0)
	if err != nil {
		t.Fatalf("aura_ai_load_model failed: %v", err)
	}
	m := res[0]
	if m == 0 {
		t.Fatal("aura_ai_load_model returned 0")
	}

	res, _ = call("aura_tensor_new", 3)
	in := res[0]
	call("aura_tensor_set", in, 0, 11)
	call("aura_tensor_set", in, 2, 33)

	res, err = call("aura_ai_infer", m, in)
	if err != nil {
		t.Fatalf("aura_ai_infer failed: %v", err)
	}
	out := res[0]
	if out == 0 || out == in {
		t.Fatalf("aura_ai_infer returned bad handle %d", out)
	}

	if res, _ = call("aura_tensor_get", out, 0); res[0] != 11 {
		t.Fatalf("Output element 0 = %d, want 11", res[0])
	}
	if res, _ = call("aura_tensor_get", out, 2); res[0] != 33 {
		t.Fatalf("Output element 2 = %d, want 33", res[0])
	}
}

func TestHostModule_RangeCheckAbortsCall(t *testing.T) {
	_, call := instantiateForTest(t, runtime.Options{})

	if _, err := call("aura_range_check_u32", 5, 0, 9); err != nil {
		t.Fatalf("In-range check failed: %v", err)
	}

	// The trap panics out of the host function; wazero surfaces it as an
	// error on the call, the wasm rendering of the native abort.
	if _, err := call("aura_range_check_u32", 10, 0, 9); err == nil {
		t.Fatal("Expected out-of-range check to abort the call")
	}
}

func TestHostModule_RegionExhaustionAbortsCall(t *testing.T) {
	_, call := instantiateForTest(t, runtime.Options{Allocator: arena.NewRegion(64)})

	if _, err := call("aura_tensor_new", 100000); err == nil {
		t.Fatal("Expected region exhaustion to abort the call")
	}
}

func TestHostModule_PrintlnNullPointer(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()

	s := abi.New(runtime.NewContext(runtime.Options{Stdout: &buf}))
	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { r.Close(ctx) })

	mod, err := Instantiate(ctx, r, s)
	if err != nil {
		t.Fatalf("Instantiate failed: %v", err)
	}

	if _, err := mod.ExportedFunction("aura_io_println").Call(ctx, 0, 0); err != nil {
		t.Fatalf("aura_io_println failed: %v", err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != "<null>" {
		t.Fatalf("Null text printed %q, want <null>", got)
	}
}

func TestHostModule_DemoBuiltins(t *testing.T) {
	_, call := instantiateForTest(t, runtime.Options{})

	res, err := call("io_load_tensor", 0, 0)
	if err != nil {
		t.Fatalf("io_load_tensor failed: %v", err)
	}
	if res[0] == 0 {
		t.Fatal("io_load_tensor returned 0")
	}
	if lenRes, _ := call("aura_tensor_len", res[0]); lenRes[0] != 16 {
		t.Fatalf("Stub tensor length = %d, want 16", lenRes[0])
	}

	if res, _ = call("compute_gradient", 40, 2); res[0] != 42 {
		t.Fatalf("compute_gradient = %d, want 42", res[0])
	}
}
