package memory

import (
	"encoding/binary"

	wasmargv "github.com/wippyai/wasm-argv"
	"github.com/wippyai/wasm-argv/errors"
)

var _ wasmargv.SizedMemory = (*Buffer)(nil)

// Buffer is a fixed-size little-endian memory backed by a Go byte slice.
type Buffer struct {
	data []byte
}

// NewBuffer allocates a zeroed Buffer of size bytes.
func NewBuffer(size uint32) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// FromBytes wraps data without copying it.
func FromBytes(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Size returns the buffer length in bytes.
func (b *Buffer) Size() uint32 {
	return uint32(len(b.data))
}

func (b *Buffer) span(offset, length uint32) bool {
	return uint64(offset)+uint64(length) <= uint64(len(b.data))
}

// Read returns a view of length bytes at offset. The slice aliases the buffer.
func (b *Buffer) Read(offset uint32, length uint32) ([]byte, error) {
	if !b.span(offset, length) {
		return nil, errors.MemoryOutOfBounds(errors.PhaseRead, offset, length)
	}
	return b.data[offset : offset+length : offset+length], nil
}

// Write copies data into the buffer at offset.
func (b *Buffer) Write(offset uint32, data []byte) error {
	if !b.span(offset, uint32(len(data))) {
		return errors.MemoryOutOfBounds(errors.PhaseLayout, offset, uint32(len(data)))
	}
	copy(b.data[offset:], data)
	return nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (b *Buffer) ReadU32(offset uint32) (uint32, error) {
	if !b.span(offset, 4) {
		return 0, errors.MemoryOutOfBounds(errors.PhaseRead, offset, 4)
	}
	return binary.LittleEndian.Uint32(b.data[offset:]), nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (b *Buffer) WriteU32(offset uint32, value uint32) error {
	if !b.span(offset, 4) {
		return errors.MemoryOutOfBounds(errors.PhaseLayout, offset, 4)
	}
	binary.LittleEndian.PutUint32(b.data[offset:], value)
	return nil
}
