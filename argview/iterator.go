package argview

// Iterator is a cursor over a View's arguments. Its position ranges over
// [0, Len]; Len means exhausted. An Iterator is not safe for concurrent use.
type Iterator struct {
	view View
	pos  int
}

// Next decodes the argument at the cursor and advances. It returns false
// once every argument has been produced.
func (it *Iterator) Next() (string, bool) {
	if it.pos >= it.view.argc {
		return "", false
	}
	s := it.view.Arg(it.pos)
	it.pos++
	return s, true
}

// Back steps the cursor back one argument and returns it, so a following
// Next yields the same argument again. It returns false at position 0.
func (it *Iterator) Back() (string, bool) {
	if it.pos == 0 {
		return "", false
	}
	it.pos--
	return it.view.Arg(it.pos), true
}

// Skip advances the cursor by up to n arguments without decoding them and
// returns how many were skipped.
func (it *Iterator) Skip(n int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, it.Remaining())
	it.pos += n
	return n
}

// Remaining returns the exact number of arguments Next has yet to produce.
func (it *Iterator) Remaining() int {
	return it.view.argc - it.pos
}

// Count consumes the iterator and returns how many arguments were left.
// No argument memory is touched.
func (it *Iterator) Count() int {
	n := it.Remaining()
	it.pos = it.view.argc
	return n
}

// Pos returns the index Next will decode.
func (it *Iterator) Pos() int {
	return it.pos
}
