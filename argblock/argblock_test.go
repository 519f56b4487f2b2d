package argblock

import (
	"errors"
	"math"
	"testing"

	wasmerrors "github.com/wippyai/wasm-argv/errors"
	"github.com/wippyai/wasm-argv/memory"
)

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		max  uint32
		args [][]byte
		kind wasmerrors.Kind
	}{
		{"empty", DefaultMaxSize, nil, wasmerrors.KindInvalidInput},
		{"embedded NUL", DefaultMaxSize, [][]byte{[]byte("prog"), []byte("a\x00b")}, wasmerrors.KindInvalidInput},
		{"too large", 8, [][]byte{[]byte("prog"), []byte("arg1")}, wasmerrors.KindOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.max, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			var e *wasmerrors.Error
			if !errors.As(err, &e) {
				t.Fatalf("expected *errors.Error, got %T", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.kind)
			}
		})
	}
}

func TestNew_ExactFit(t *testing.T) {
	// "prog\0" + "x\0" = 7 bytes
	b, err := FromStrings(7, "prog", "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.BufSize() != 7 {
		t.Errorf("BufSize() = %d, want 7", b.BufSize())
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestWriteTo_Layout(t *testing.T) {
	b, err := FromStrings(DefaultMaxSize, "prog", "ab", "")
	if err != nil {
		t.Fatal(err)
	}
	buf := memory.NewBuffer(b.Size() + 1)

	argc, argv, err := b.WriteTo(buf, 1)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if argc != 3 {
		t.Errorf("argc = %d, want 3", argc)
	}
	// strings occupy [1, 10): "prog\0ab\0\0"
	if argv != 12 {
		t.Errorf("argv = %d, want 12 (aligned after strings)", argv)
	}

	wantOffsets := []uint32{1, 6, 9}
	for i, want := range wantOffsets {
		got, err := buf.ReadU32(argv + uint32(i)*4)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("argv[%d] = %d, want %d", i, got, want)
		}
	}
	if string(buf.Bytes()[1:10]) != "prog\x00ab\x00\x00" {
		t.Errorf("string area = %q", buf.Bytes()[1:10])
	}
}

func TestWriteTo_NeverNullTable(t *testing.T) {
	b, err := FromStrings(DefaultMaxSize, "")
	if err != nil {
		t.Fatal(err)
	}
	buf := memory.NewBuffer(b.Size())
	_, argv, err := b.WriteTo(buf, 0)
	if err != nil {
		t.Fatal(err)
	}
	if argv == 0 {
		t.Error("argv must not be 0")
	}
}

func TestWriteTo_OutOfBounds(t *testing.T) {
	b, err := FromStrings(DefaultMaxSize, "prog", "arg")
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := b.WriteTo(memory.NewBuffer(4), 0); err == nil {
		t.Error("expected error when strings do not fit")
	}
	if _, _, err := b.WriteTo(memory.NewBuffer(10), 0); err == nil {
		t.Error("expected error when table does not fit")
	}
	if _, _, err := b.WriteTo(memory.NewBuffer(16), 0xFFFFFFF0); err == nil {
		t.Error("expected error when block wraps the address space")
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct{ in, want uint32 }{
		{0, 0}, {1, 4}, {4, 4}, {5, 8}, {11, 12},
	}
	for _, tt := range tests {
		if got := alignUp(tt.in, 4); got != tt.want {
			t.Errorf("alignUp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBlockSize(t *testing.T) {
	tests := []struct {
		name    string
		bufSize uint64
		argc    int
		want    uint64
	}{
		{"single empty", 1, 1, 8},
		{"prog x", 7, 2, 18},
		{"near 4GiB", math.MaxUint32 - 2, 1, math.MaxUint32 + 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blockSize(tt.bufSize, tt.argc); got != tt.want {
				t.Errorf("blockSize(%d, %d) = %d, want %d", tt.bufSize, tt.argc, got, tt.want)
			}
		})
	}
}

func TestSize_MatchesBlockSize(t *testing.T) {
	b, err := FromStrings(DefaultMaxSize, "prog", "x")
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != 18 {
		t.Errorf("Size() = %d, want 18", b.Size())
	}
}
