package errors

import (
	"fmt"
	"unicode/utf8"
)

// UTF8Error describes where UTF-8 decoding of a byte string stopped.
type UTF8Error struct {
	// ValidUpTo is the length of the longest valid UTF-8 prefix.
	ValidUpTo int
	// ErrorLen is the length of the invalid sequence at ValidUpTo, between
	// 1 and 3. Zero means the input ended in the middle of a sequence that
	// more bytes could have completed.
	ErrorLen int
}

func (e *UTF8Error) Error() string {
	if e.ErrorLen == 0 {
		return fmt.Sprintf("incomplete utf-8 byte sequence from index %d", e.ValidUpTo)
	}
	return fmt.Sprintf("invalid utf-8 sequence of %d bytes from index %d", e.ErrorLen, e.ValidUpTo)
}

// Incomplete reports whether decoding ran out of input inside a sequence.
func (e *UTF8Error) Incomplete() bool {
	return e.ErrorLen == 0
}

// CheckUTF8 returns nil if data is well-formed UTF-8, otherwise a UTF8Error
// locating the first invalid sequence.
func CheckUTF8(data []byte) *UTF8Error {
	if utf8.Valid(data) {
		return nil
	}
	i := 0
	for i < len(data) {
		if data[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return &UTF8Error{ValidUpTo: i, ErrorLen: invalidSequenceLen(data[i:])}
		}
		i += size
	}
	return nil
}

// invalidSequenceLen returns the length of the maximal prefix of a valid
// sequence at the start of b, or 0 if b ends before that prefix is broken.
func invalidSequenceLen(b []byte) int {
	lead := b[0]
	var width int
	lo, hi := byte(0x80), byte(0xBF)
	switch {
	case lead >= 0xC2 && lead <= 0xDF:
		width = 2
	case lead >= 0xE0 && lead <= 0xEF:
		width = 3
		if lead == 0xE0 {
			lo = 0xA0
		} else if lead == 0xED {
			hi = 0x9F
		}
	case lead >= 0xF0 && lead <= 0xF4:
		width = 4
		if lead == 0xF0 {
			lo = 0x90
		} else if lead == 0xF4 {
			hi = 0x8F
		}
	default:
		return 1
	}

	n := 1
	for i := 1; i < width; i++ {
		if i >= len(b) {
			return 0
		}
		l, h := byte(0x80), byte(0xBF)
		if i == 1 {
			l, h = lo, hi
		}
		if b[i] < l || b[i] > h {
			return n
		}
		n++
	}
	return n
}
