package wasmargv

// Memory represents a wasm32 linear memory holding process arguments.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU32(offset uint32) (uint32, error)
	WriteU32(offset uint32, value uint32) error
}

// MemorySizer provides the current size of linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}

// SizedMemory is a Memory whose extent is known, so NUL-terminated
// strings can be scanned without running past the end.
type SizedMemory interface {
	Memory
	MemorySizer
}

// PointerSize is the width of one argv table entry in a wasm32 memory.
const PointerSize = 4
