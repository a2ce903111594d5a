package hostmod

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	"github.com/aura-lang/aura-runtime/abi"
	"github.com/aura-lang/aura-runtime/errors"
	"github.com/aura-lang/aura-runtime/runtime"
)

// DefaultEntry is the entry symbol the Aura wasm backend emits.
const DefaultEntry = "aura_main"

// Runner owns a wazero runtime with the aura_rt host module installed and
// runs guest modules against a single runtime context.
type Runner struct {
	wazero  wazero.Runtime
	surface *abi.Surface
}

// NewRunner creates a runner over the given surface. The surface's trap
// handler is replaced with one that panics; wazero converts the panic
// into an error returned from the guest call, so a hard failure aborts
// the guest instead of the embedding process.
func NewRunner(ctx context.Context, s *abi.Surface) (*Runner, error) {
	s.SetTrapHandler(func(t *errors.Trap) {
		panic(t)
	})

	r := wazero.NewRuntime(ctx)
	if _, err := Instantiate(ctx, r, s); err != nil {
		r.Close(ctx)
		return nil, errors.New(errors.PhaseHost, errors.KindInvalidInput).
			Detail("instantiate host module").Cause(err).Build()
	}
	return &Runner{wazero: r, surface: s}, nil
}

// Surface returns the ABI surface guests call into.
func (r *Runner) Surface() *abi.Surface {
	return r.surface
}

// Run instantiates a guest module and invokes its entry function. An
// empty entry name tries aura_main, then _start. A guest that exits with
// status 0 is a normal return.
func (r *Runner) Run(ctx context.Context, wasmBytes []byte, entry string) error {
	mod, err := r.wazero.Instantiate(ctx, wasmBytes)
	if err != nil {
		return errors.New(errors.PhaseHost, errors.KindInvalidInput).
			Detail("instantiate guest").Cause(err).Build()
	}
	defer mod.Close(ctx)

	names := []string{entry}
	if entry == "" {
		names = []string{DefaultEntry, "_start"}
	}

	for _, name := range names {
		fn := mod.ExportedFunction(name)
		if fn == nil {
			continue
		}
		runtime.Logger().Debug("invoking guest entry", zap.String("entry", name))

		_, err := fn.Call(ctx)
		if exit, ok := err.(*sys.ExitError); ok && exit.ExitCode() == 0 {
			return nil
		}
		if err != nil {
			return errors.New(errors.PhaseHost, errors.KindExecution).
				Op(name).Detail("guest execution failed").Cause(err).Build()
		}
		return nil
	}

	return errors.New(errors.PhaseHost, errors.KindNotFound).
		Detail("no entry function (tried %v)", names).Build()
}

// Close releases the wazero runtime and every guest instantiated on it.
func (r *Runner) Close(ctx context.Context) error {
	return r.wazero.Close(ctx)
}
