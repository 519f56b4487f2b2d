// Package host exposes the entry trampoline to WebAssembly guests through
// wazero.
//
// Instantiate registers a host module named "wasmargv" with one function:
//
//	(import "wasmargv" "main" (func (param $argc i32) (param $argv i32) (result i32)))
//
// A guest calls it from its own entry point with the argc/argv block it
// built (for example from WASI args_get). The host validates the arguments
// in the guest's memory, runs the Go handler and returns its status, or 255
// if an argument is not valid UTF-8.
//
// Runner goes the other way: it loads a guest, lays an argument list out in
// freshly grown guest memory and calls a guest export as main(argc, argv).
//
//	r, err := host.NewRunner(ctx, handler)
//	defer r.Close(ctx)
//	guest, err := r.Load(ctx, wasmBytes)
//	status, err := guest.Run(ctx, "run", args)
package host
