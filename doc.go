// Package aurart is the runtime object store behind the Aura standard
// library: it manages opaque integer handles to tensors and models so that
// compiler-generated code never touches native pointers.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	aurart/          Root package with the Allocator contract
//	├── runtime/     The runtime Context: tensors, models, inference
//	├── abi/         The flat, sentinel-valued surface compiled code calls
//	├── arena/       Bump-region and heap allocation strategies
//	├── handle/      Generational handle tables
//	├── hostmod/     wazero host module exposing the ABI to wasm guests
//	└── errors/      Structured errors and the unrecoverable Trap type
//
// # Quick Start
//
// Create an isolated runtime instance and work with tensors through it:
//
//	ctx := runtime.NewContext(runtime.Options{})
//
//	h, err := ctx.NewTensor(16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx.TensorSet(h, 0, 42)
//
// Compiled programs do not use the Context directly; they call the abi
// package (natively) or the aura_rt host module (when compiled to wasm),
// both of which preserve the calling convention's sentinel semantics:
// handle 0 always means "no object".
package aurart
