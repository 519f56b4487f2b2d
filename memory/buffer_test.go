package memory

import "testing"

func TestBuffer_ReadWrite(t *testing.T) {
	buf := NewBuffer(32)
	if buf.Size() != 32 {
		t.Fatalf("Size() = %d", buf.Size())
	}

	if err := buf.Write(8, []byte("hi\x00")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := buf.Read(8, 3)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != "hi\x00" {
		t.Errorf("Read = %q", got)
	}
	if cap(got) != 3 {
		t.Errorf("Read should cap the returned slice, cap = %d", cap(got))
	}

	buf.Bytes()[8] = 'H'
	if got[0] != 'H' {
		t.Error("Read should alias the backing slice")
	}
}

func TestBuffer_Integers(t *testing.T) {
	buf := NewBuffer(8)
	if err := buf.WriteU32(4, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	v, err := buf.ReadU32(4)
	if err != nil || v != 0xdeadbeef {
		t.Fatalf("ReadU32 = 0x%x, %v", v, err)
	}
	if buf.Bytes()[4] != 0xef {
		t.Error("expected little-endian layout")
	}
}

func TestBuffer_OutOfBounds(t *testing.T) {
	buf := FromBytes(make([]byte, 4))

	tests := []struct {
		name string
		op   func() error
	}{
		{"read past end", func() error { _, err := buf.Read(2, 3); return err }},
		{"read overflowing offset", func() error { _, err := buf.Read(0xFFFFFFFF, 2); return err }},
		{"write past end", func() error { return buf.Write(3, []byte{1, 2}) }},
		{"u32 read straddling", func() error { _, err := buf.ReadU32(1); return err }},
		{"u32 write straddling", func() error { return buf.WriteU32(2, 1) }},
		{"u32 read at end", func() error { _, err := buf.ReadU32(4); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(); err == nil {
				t.Error("expected out of bounds error")
			}
		})
	}

	if _, err := buf.Read(4, 0); err != nil {
		t.Errorf("zero-length read at end should succeed: %v", err)
	}
}
