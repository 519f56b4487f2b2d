// Package argview provides View, an immutable, non-owning view over C-style
// process arguments in linear memory.
//
// The arguments are described by argc and argv: argv is the offset of a
// contiguous table of argc little-endian uint32 offsets, and each offset
// points to a NUL-terminated byte string. This is the layout a WASI guest
// receives from args_get and the layout argblock writes.
//
// # Construction
//
// Two constructors share the same caller contract (argc > 0, argv non-null,
// every entry NUL-terminated inside memory):
//
//	view, err := argview.New(mem, argc, argv)       // verifies UTF-8 once
//	view := argview.NewUnchecked(mem, argc, argv)   // trusts the caller
//
// New scans every argument in index order and stops at the first one that
// is not well-formed UTF-8; the returned error carries its index (see
// errors.ArgIndex) and an errors.UTF8Error describing the bad sequence.
//
// Breaking the contract is a programming error, not bad input: both
// constructors and the accessors panic with a *ContractError.
//
// # Access and Iteration
//
// Arguments decode lazily and without copying. Strings alias the argument
// memory:
//
//	it := view.Iter()
//	for s, ok := it.Next(); ok; s, ok = it.Next() {
//	    fmt.Println(s, it.Remaining())
//	}
//
//	for i, arg := range view.All() {
//	    fmt.Println(i, arg)
//	}
//
// Every call to Iter, All or Values starts a fresh cursor at index 0.
package argview
