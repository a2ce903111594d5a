package hostmod

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/aura-lang/aura-runtime/abi"
	"github.com/aura-lang/aura-runtime/runtime"
)

// ModuleName is the import namespace guests use for the runtime ABI.
const ModuleName = "aura_rt"

var (
	i32    = api.ValueTypeI32
	noVals []api.ValueType
)

// hostFunc pairs an export name with its wazero signature and handler.
type hostFunc struct {
	name    string
	fn      api.GoModuleFunc
	params  []api.ValueType
	results []api.ValueType
}

// Instantiate registers the runtime ABI as the aura_rt host module.
// Every guest instantiated on r afterwards can import it.
func Instantiate(ctx context.Context, r wazero.Runtime, s *abi.Surface) (api.Module, error) {
	builder := r.NewHostModuleBuilder(ModuleName)
	for _, f := range hostFuncs(s) {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(f.fn, f.params, f.results).
			Export(f.name)
	}
	return builder.Instantiate(ctx)
}

func hostFuncs(s *abi.Surface) []hostFunc {
	return []hostFunc{
		{
			// aura_io_println(ptr, len): prints guest text, or the fixed
			// placeholder for a null pointer.
			name: "aura_io_println",
			fn: func(_ context.Context, mod api.Module, stack []uint64) {
				text := readString(mod, api.DecodeU32(stack[0]), api.DecodeU32(stack[1]))
				s.Println(text)
			},
			params: []api.ValueType{i32, i32}, results: noVals,
		},
		{
			name: "aura_range_check_u32",
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				s.RangeCheck(api.DecodeU32(stack[0]), api.DecodeU32(stack[1]), api.DecodeU32(stack[2]))
			},
			params: []api.ValueType{i32, i32, i32}, results: noVals,
		},
		{
			name: "aura_tensor_new",
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				stack[0] = uint64(s.TensorNew(api.DecodeU32(stack[0])))
			},
			params: []api.ValueType{i32}, results: []api.ValueType{i32},
		},
		{
			name: "aura_tensor_len",
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				stack[0] = uint64(s.TensorLen(api.DecodeU32(stack[0])))
			},
			params: []api.ValueType{i32}, results: []api.ValueType{i32},
		},
		{
			name: "aura_tensor_get",
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				stack[0] = uint64(s.TensorGet(api.DecodeU32(stack[0]), api.DecodeU32(stack[1])))
			},
			params: []api.ValueType{i32, i32}, results: []api.ValueType{i32},
		},
		{
			name: "aura_tensor_set",
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				s.TensorSet(api.DecodeU32(stack[0]), api.DecodeU32(stack[1]), api.DecodeU32(stack[2]))
			},
			params: []api.ValueType{i32, i32, i32}, results: noVals,
		},
		{
			name: "aura_ai_load_model",
			fn: func(_ context.Context, mod api.Module, stack []uint64) {
				locator := readString(mod, api.DecodeU32(stack[0]), api.DecodeU32(stack[1]))
				var path string
				if locator != nil {
					path = *locator
				}
				stack[0] = uint64(s.LoadModel(path))
			},
			params: []api.ValueType{i32, i32}, results: []api.ValueType{i32},
		},
		{
			name: "aura_ai_infer",
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				stack[0] = uint64(s.Infer(api.DecodeU32(stack[0]), api.DecodeU32(stack[1])))
			},
			params: []api.ValueType{i32, i32}, results: []api.ValueType{i32},
		},
		{
			name: "io_load_tensor",
			fn: func(_ context.Context, mod api.Module, stack []uint64) {
				path := readString(mod, api.DecodeU32(stack[0]), api.DecodeU32(stack[1]))
				var p string
				if path != nil {
					p = *path
				}
				stack[0] = uint64(s.LoadTensorFile(p))
			},
			params: []api.ValueType{i32, i32}, results: []api.ValueType{i32},
		},
		{
			name: "io_display",
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				s.Display(api.DecodeU32(stack[0]))
			},
			params: []api.ValueType{i32}, results: noVals,
		},
		{
			name: "compute_gradient",
			fn: func(_ context.Context, _ api.Module, stack []uint64) {
				stack[0] = uint64(s.ComputeGradient(api.DecodeU32(stack[0]), api.DecodeU32(stack[1])))
			},
			params: []api.ValueType{i32, i32}, results: []api.ValueType{i32},
		},
	}
}

// readString copies a (ptr, len) string out of guest linear memory.
// A null pointer, or a module without memory, reads as absent (nil).
// An out-of-range read also reads as absent rather than trapping: the
// print path never fails by contract.
func readString(mod api.Module, ptr, length uint32) *string {
	if ptr == 0 {
		return nil
	}
	mem := mod.Memory()
	if mem == nil {
		return nil
	}
	data, ok := mem.Read(ptr, length)
	if !ok {
		runtime.Logger().Warn("guest string out of memory bounds",
			zap.Uint32("ptr", ptr),
			zap.Uint32("len", length))
		return nil
	}
	text := string(data)
	return &text
}
