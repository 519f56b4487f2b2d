// Package memory provides wasmargv.Memory implementations.
//
// # Wazero Wrapper
//
// Wraps a wazero api.Memory so argument tables living in a guest can be
// viewed in place:
//
//	mem := memory.Wrap(mod.Memory())
//	view, err := argview.New(mem, argc, argv)
//
// # Buffer
//
// Buffer is a flat, fixed-size byte slice laid out like linear memory. It
// backs argument blocks for native Go processes and tests:
//
//	buf := memory.NewBuffer(4096)
//	argc, argv, err := block.WriteTo(buf, 0)
//
// Reads from both implementations return slices that alias the underlying
// storage; nothing is copied.
package memory
