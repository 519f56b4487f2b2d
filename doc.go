// Package wasmargv provides a validated, zero-copy view over C-style process
// arguments (argc plus a table of NUL-terminated strings) living in wasm32
// linear memory.
//
// # Architecture Overview
//
//	wasmargv/            Root package with the Memory interfaces
//	├── argview/         ArgsView: validated/unchecked construction and iteration
//	├── argblock/        Lays an argument list out as an argc/argv block
//	├── entry/           Entry-point trampoline: validate, dispatch, exit status
//	├── host/            wazero host module exposing the trampoline to guests
//	├── memory/          Adapters for wazero memory and flat byte buffers
//	├── errors/          Structured error types
//	└── cmd/wasmargv/    Command-line front end
//
// # Quick Start
//
// Validate arguments a guest passed to its main function:
//
//	view, err := argview.New(memory.Wrap(mod.Memory()), argc, argv)
//	if err != nil {
//	    idx, _ := errors.ArgIndex(err)
//	    log.Fatalf("argument %d is not UTF-8", idx)
//	}
//	for i, arg := range view.All() {
//	    fmt.Println(i, arg)
//	}
//
// Or let the entry trampoline do the validation and call your handler:
//
//	status := entry.Main(ctx, mem, argc, argv, func(ctx context.Context, args argview.View) int32 {
//	    return 0
//	})
//
// # Memory Model
//
// A View never copies or owns argument bytes. Strings it returns alias the
// underlying memory and stay valid while that memory is neither written nor
// reallocated. For wazero memories this means the guest must not grow its
// memory while decoded strings are retained; call View.Strings for copies.
//
// # Thread Safety
//
// A constructed View is immutable and safe for concurrent readers. An Iterator
// holds a single cursor and must not be shared between goroutines.
package wasmargv
