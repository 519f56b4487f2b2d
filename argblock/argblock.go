// Package argblock lays an argument list out in linear memory the way a C
// runtime hands it to main: NUL-terminated strings followed by a 4-byte
// aligned table of little-endian uint32 offsets (argv), one per string.
package argblock

import (
	"bytes"
	"math"

	wasmargv "github.com/wippyai/wasm-argv"
	"github.com/wippyai/wasm-argv/errors"
)

// DefaultMaxSize bounds the string bytes of a block, NUL terminators included.
const DefaultMaxSize = 1 << 20

// Block holds NUL-terminated argument strings ready to be written to memory.
type Block struct {
	values  [][]byte
	bufSize uint32
	size    uint32
}

// New builds a Block from raw argument bytes. Arguments are not checked for
// UTF-8; that is argview's job. It fails if there are no arguments, if an
// argument contains a NUL byte, or if the strings exceed maxSize bytes.
func New(maxSize uint32, args ...[]byte) (*Block, error) {
	if len(args) == 0 {
		return nil, errors.InvalidInput(errors.PhaseLayout, "argument list must contain at least the program name")
	}
	values := make([][]byte, 0, len(args))
	total := uint64(0)
	for i, arg := range args {
		if bytes.IndexByte(arg, 0) >= 0 {
			return nil, errors.New(errors.PhaseLayout, errors.KindInvalidInput).
				Path(errors.ArgPath(i)).
				Value(i).
				Detail("argument contains a NUL byte").
				Build()
		}
		total += uint64(len(arg)) + 1 // + 1 for "\x00"
		if total > uint64(maxSize) {
			return nil, errors.Overflow(errors.PhaseLayout, []string{errors.ArgPath(i)}, total, maxSize)
		}
		v := make([]byte, len(arg)+1)
		copy(v, arg)
		values = append(values, v)
	}
	size := blockSize(total, len(values))
	if size > math.MaxUint32 {
		return nil, errors.Overflow(errors.PhaseLayout, nil, size, uint64(math.MaxUint32))
	}
	return &Block{values: values, bufSize: uint32(total), size: uint32(size)}, nil
}

// FromStrings builds a Block from string arguments.
func FromStrings(maxSize uint32, args ...string) (*Block, error) {
	raw := make([][]byte, len(args))
	for i, a := range args {
		raw[i] = []byte(a)
	}
	return New(maxSize, raw...)
}

// Len returns the argument count.
func (b *Block) Len() int {
	return len(b.values)
}

// BufSize returns the total string bytes, NUL terminators included.
func (b *Block) BufSize() uint32 {
	return b.bufSize
}

// Size returns the number of bytes WriteTo may use, including alignment
// padding before the table.
func (b *Block) Size() uint32 {
	return b.size
}

// blockSize is the worst-case footprint of argc strings totalling bufSize
// bytes: the strings, up to 3 bytes of padding and the table.
func blockSize(bufSize uint64, argc int) uint64 {
	return bufSize + (wasmargv.PointerSize - 1) + uint64(argc)*wasmargv.PointerSize
}

// WriteTo writes the strings at base followed by the argv table, and returns
// argc and the table offset. The table never starts at offset 0, so argv is
// never null.
func (b *Block) WriteTo(mem wasmargv.Memory, base uint32) (argc int32, argv uint32, err error) {
	end := uint64(base) + uint64(b.Size())
	if end > 1<<32 {
		return 0, 0, errors.Overflow(errors.PhaseLayout, nil, end, uint64(1<<32))
	}

	offsets := make([]uint32, len(b.values))
	ptr := base
	for i, v := range b.values {
		if err := mem.Write(ptr, v); err != nil {
			return 0, 0, errors.New(errors.PhaseLayout, errors.KindOutOfBounds).
				Path(errors.ArgPath(i)).
				Cause(err).
				Build()
		}
		offsets[i] = ptr
		ptr += uint32(len(v))
	}

	argv = alignUp(ptr, wasmargv.PointerSize)
	for i, off := range offsets {
		if err := mem.WriteU32(argv+uint32(i)*wasmargv.PointerSize, off); err != nil {
			return 0, 0, errors.Wrap(errors.PhaseLayout, errors.KindOutOfBounds, err, "write argv table")
		}
	}
	return int32(len(offsets)), argv, nil
}

func alignUp(v, align uint32) uint32 {
	return (v + align - 1) &^ (align - 1)
}
