package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	aurart "github.com/aura-lang/aura-runtime"
	"github.com/aura-lang/aura-runtime/abi"
	"github.com/aura-lang/aura-runtime/arena"
	"github.com/aura-lang/aura-runtime/hostmod"
	"github.com/aura-lang/aura-runtime/runtime"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to a compiled guest wasm module")
		entry       = flag.String("entry", "", "Entry function (default: aura_main, then _start)")
		useRegion   = flag.Bool("arena", false, "Use the fixed-capacity region allocator")
		arenaBytes  = flag.Int("arena-bytes", arena.DefaultRegionBytes, "Region allocator capacity in bytes")
		tensorCap   = flag.Int("tensors", runtime.DefaultTensorCapacity, "Maximum live tensors")
		modelCap    = flag.Int("models", runtime.DefaultModelCapacity, "Maximum live models")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive inspector (TUI)")
	)
	flag.Parse()

	if *wasmFile == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: aurart -wasm <file.wasm> [-entry name] [-arena] [-arena-bytes n]")
		fmt.Fprintln(os.Stderr, "       aurart -i  (interactive inspector)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		runtime.SetLogger(logger)
		defer logger.Sync()
	}

	var alloc aurart.Allocator
	if *useRegion {
		alloc = arena.NewRegion(*arenaBytes)
	} else {
		alloc = arena.NewHeap()
	}

	ctx := runtime.NewContext(runtime.Options{
		Allocator:      alloc,
		TensorCapacity: *tensorCap,
		ModelCapacity:  *modelCap,
	})

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, *wasmFile, *entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rctx *runtime.Context, wasmFile, entry string) error {
	ctx := context.Background()

	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	runner, err := hostmod.NewRunner(ctx, abi.New(rctx))
	if err != nil {
		return err
	}
	defer runner.Close(ctx)

	if err := runner.Run(ctx, data, entry); err != nil {
		return err
	}

	stats := rctx.Stats()
	fmt.Printf("Guest finished: %d tensors, %d models live\n", stats.Tensors, stats.Models)
	return nil
}
