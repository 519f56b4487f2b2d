package argview

import (
	"bytes"
	"unsafe"

	wasmargv "github.com/wippyai/wasm-argv"
	"github.com/wippyai/wasm-argv/errors"
)

// CString decodes the NUL-terminated string at ptr and verifies it is UTF-8.
// The result aliases mem.
func CString(mem wasmargv.SizedMemory, ptr uint32) (string, error) {
	b, err := cbytes(mem, ptr)
	if err != nil {
		return "", err
	}
	if uerr := errors.CheckUTF8(b); uerr != nil {
		return "", errors.New(errors.PhaseValidate, errors.KindInvalidUTF8).
			Value(ptr).
			Detail("string at offset %d is not valid UTF-8", ptr).
			Cause(uerr).
			Build()
	}
	return bytesToString(b), nil
}

// CStringUnchecked decodes the NUL-terminated string at ptr, assuming it is
// valid UTF-8. It panics with a *ContractError if ptr is outside mem or no
// terminator follows it.
func CStringUnchecked(mem wasmargv.SizedMemory, ptr uint32) string {
	b, err := cbytes(mem, ptr)
	if err != nil {
		violate("CStringUnchecked", err, "string at offset %d", ptr)
	}
	return bytesToString(b)
}

// cbytes returns the bytes at ptr up to, not including, the first NUL.
func cbytes(mem wasmargv.SizedMemory, ptr uint32) ([]byte, error) {
	size := mem.Size()
	if ptr >= size {
		return nil, errors.MemoryOutOfBounds(errors.PhaseRead, ptr, 1)
	}
	data, err := mem.Read(ptr, size-ptr)
	if err != nil {
		return nil, err
	}
	n := bytes.IndexByte(data, 0)
	if n < 0 {
		return nil, errors.Unterminated(errors.PhaseRead, nil, ptr)
	}
	return data[:n:n], nil
}

func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
