package memory

import (
	"github.com/tetratelabs/wazero/api"

	wasmargv "github.com/wippyai/wasm-argv"
	"github.com/wippyai/wasm-argv/errors"
)

// Wrap wraps a wazero api.Memory to implement wasmargv.SizedMemory.
func Wrap(mem api.Memory) wasmargv.SizedMemory {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

var _ wasmargv.SizedMemory = (*Wrapper)(nil)

// Wrapper adapts wazero api.Memory to the wasmargv.SizedMemory interface.
type Wrapper struct {
	Mem api.Memory
}

// Read returns a view of length bytes at offset. The slice aliases guest memory.
func (m *Wrapper) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, errors.MemoryOutOfBounds(errors.PhaseRead, offset, length)
	}
	return data, nil
}

// Write writes bytes to memory.
func (m *Wrapper) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return errors.MemoryOutOfBounds(errors.PhaseLayout, offset, uint32(len(data)))
	}
	return nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (m *Wrapper) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.Mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.MemoryOutOfBounds(errors.PhaseRead, offset, 4)
	}
	return v, nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (m *Wrapper) WriteU32(offset uint32, value uint32) error {
	if !m.Mem.WriteUint32Le(offset, value) {
		return errors.MemoryOutOfBounds(errors.PhaseLayout, offset, 4)
	}
	return nil
}

// Size returns the current guest memory size in bytes.
func (m *Wrapper) Size() uint32 {
	return m.Mem.Size()
}

// Grow extends guest memory by pages and returns the byte offset where the
// new region starts.
func (m *Wrapper) Grow(pages uint32) (uint32, error) {
	prev, ok := m.Mem.Grow(pages)
	if !ok {
		return 0, errors.New(errors.PhaseLayout, errors.KindOverflow).
			Detail("cannot grow memory by %d pages", pages).
			Build()
	}
	return prev * PageSize, nil
}

// PageSize is the wasm linear memory page size.
const PageSize = 65536
