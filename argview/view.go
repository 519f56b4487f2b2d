package argview

import (
	"encoding/binary"
	"iter"
	"strings"

	wasmargv "github.com/wippyai/wasm-argv"
	"github.com/wippyai/wasm-argv/errors"
)

// View is a read-only view over argc NUL-terminated strings referenced by
// the argv table. It never copies or owns the argument memory and may be
// passed by value. The zero View has no arguments.
type View struct {
	mem     wasmargv.SizedMemory
	table   []byte
	argv    uint32
	argc    int
	checked bool
}

// New builds a View and verifies that every argument is well-formed UTF-8.
//
// Arguments are checked in ascending index order and the scan stops at the
// first invalid one. The error is an *errors.Error of kind KindInvalidUTF8
// whose Value is the argument index and whose cause is an *errors.UTF8Error.
//
// New panics with a *ContractError if argc <= 0, argv is 0, or the table or
// any argument lies outside mem or lacks a NUL terminator.
func New(mem wasmargv.SizedMemory, argc int32, argv uint32) (View, error) {
	v := newView("New", mem, argc, argv)
	for i := 0; i < v.argc; i++ {
		if uerr := errors.CheckUTF8(v.bytesAt("New", i)); uerr != nil {
			return View{}, errors.InvalidArgument(i, uerr)
		}
	}
	v.checked = true
	return v, nil
}

// NewUnchecked builds a View without scanning the arguments. The caller
// guarantees they are valid UTF-8, typically because an earlier New over
// the same memory succeeded. Decoding invalid bytes through such a view
// yields strings that are not valid UTF-8.
//
// NewUnchecked panics under the same conditions as New, except that it
// does not look at the strings themselves.
func NewUnchecked(mem wasmargv.SizedMemory, argc int32, argv uint32) View {
	return newView("NewUnchecked", mem, argc, argv)
}

func newView(op string, mem wasmargv.SizedMemory, argc int32, argv uint32) View {
	if mem == nil {
		violate(op, nil, "nil memory")
	}
	if argc <= 0 {
		violate(op, nil, "argc must be positive, got %d", argc)
	}
	if argv == 0 {
		violate(op, nil, "argv is null")
	}
	tableLen := uint64(argc) * wasmargv.PointerSize
	if uint64(argv)+tableLen > uint64(mem.Size()) {
		violate(op, errors.MemoryOutOfBounds(errors.PhaseRead, argv, uint32(min(tableLen, 1<<32-1))),
			"argv table of %d entries does not fit in memory", argc)
	}
	table, err := mem.Read(argv, uint32(tableLen))
	if err != nil {
		violate(op, err, "read argv table")
	}
	return View{
		mem:   mem,
		table: table,
		argv:  argv,
		argc:  int(argc),
	}
}

// Len returns the number of arguments.
func (v View) Len() int {
	return v.argc
}

// Checked reports whether the view was built by New and its arguments are
// known to be valid UTF-8.
func (v View) Checked() bool {
	return v.checked
}

// Table returns the raw argv table.
func (v View) Table() Table {
	return Table{raw: v.table, base: v.argv}
}

// Arg returns argument i. The string aliases argument memory and is not
// re-validated. Arg panics with a *ContractError if i is out of range.
func (v View) Arg(i int) string {
	return bytesToString(v.bytesAt("Arg", i))
}

// ArgUnchecked returns the string referenced by table slot i without
// comparing i against Len. Slots past the end read whatever follows the
// table in memory; the call panics only if that lands outside memory.
func (v View) ArgUnchecked(i int) string {
	slot := uint64(v.argv) + uint64(i)*wasmargv.PointerSize
	if i < 0 || slot > 1<<32-1 {
		violate("ArgUnchecked", nil, "slot %d overflows address space", i)
	}
	ptr, err := v.mem.ReadU32(uint32(slot))
	if err != nil {
		violate("ArgUnchecked", err, "read argv[%d]", i)
	}
	return CStringUnchecked(v.mem, ptr)
}

// Bytes returns the raw bytes of argument i without the NUL terminator.
// The slice aliases argument memory and must not be modified.
func (v View) Bytes(i int) []byte {
	return v.bytesAt("Bytes", i)
}

// Strings returns a copy of every argument.
func (v View) Strings() []string {
	out := make([]string, v.argc)
	for i := range out {
		out[i] = strings.Clone(v.Arg(i))
	}
	return out
}

// Iter returns a new cursor positioned before the first argument.
func (v View) Iter() *Iterator {
	return &Iterator{view: v}
}

// All returns an iterator over (index, argument) pairs.
func (v View) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		it := v.Iter()
		for {
			i := it.Pos()
			s, ok := it.Next()
			if !ok || !yield(i, s) {
				return
			}
		}
	}
}

// Values returns an iterator over the arguments.
func (v View) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		it := v.Iter()
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			if !yield(s) {
				return
			}
		}
	}
}

func (v View) bytesAt(op string, i int) []byte {
	if i < 0 || i >= v.argc {
		violate(op, errors.OutOfBounds(errors.PhaseRead, []string{errors.ArgPath(i)}, i, v.argc), "index out of range")
	}
	ptr := binary.LittleEndian.Uint32(v.table[i*wasmargv.PointerSize:])
	b, err := cbytes(v.mem, ptr)
	if err != nil {
		violate(op, err, "%s at offset %d", errors.ArgPath(i), ptr)
	}
	return b
}

// Table is the raw argv table: the offsets the runtime supplied, in order.
type Table struct {
	raw  []byte
	base uint32
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.raw) / wasmargv.PointerSize
}

// At returns entry i. It panics if i is out of range.
func (t Table) At(i int) uint32 {
	if i < 0 || i >= t.Len() {
		violate("Table.At", nil, "index %d out of range (length %d)", i, t.Len())
	}
	return binary.LittleEndian.Uint32(t.raw[i*wasmargv.PointerSize:])
}

// Offset returns the memory offset of the table (argv).
func (t Table) Offset() uint32 {
	return t.base
}

// Bytes returns the table's little-endian encoding. The slice aliases
// argument memory and must not be modified.
func (t Table) Bytes() []byte {
	return t.raw
}

// All returns an iterator over (index, offset) pairs.
func (t Table) All() iter.Seq2[int, uint32] {
	return func(yield func(int, uint32) bool) {
		for i := 0; i < t.Len(); i++ {
			if !yield(i, t.At(i)) {
				return
			}
		}
	}
}
