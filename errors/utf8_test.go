package errors

import "testing"

func TestCheckUTF8(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		valid     bool
		validUpTo int
		errorLen  int
	}{
		{"empty", []byte{}, true, 0, 0},
		{"ascii", []byte("prog"), true, 0, 0},
		{"multibyte", []byte("héllo, 世界"), true, 0, 0},
		{"replacement char is valid", []byte("\xef\xbf\xbd"), true, 0, 0},
		{"lone continuation", []byte("ab\x80cd"), false, 2, 1},
		{"invalid lead", []byte("\xff"), false, 0, 1},
		{"overlong two byte", []byte("\xc0\xaf"), false, 0, 1},
		{"broken three byte", []byte("a\xe2\x82A"), false, 1, 2},
		{"truncated three byte", []byte("a\xe2\x82"), false, 1, 0},
		{"truncated four byte", []byte("\xf0\x9f\x98"), false, 0, 0},
		{"surrogate", []byte("\xed\xa0\x80"), false, 0, 1},
		{"above max", []byte("\xf4\x90\x80\x80"), false, 0, 1},
		{"broken four byte", []byte("x\xf0\x9f\x98A"), false, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckUTF8(tt.data)
			if tt.valid {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if err.ValidUpTo != tt.validUpTo {
				t.Errorf("ValidUpTo = %d, want %d", err.ValidUpTo, tt.validUpTo)
			}
			if err.ErrorLen != tt.errorLen {
				t.Errorf("ErrorLen = %d, want %d", err.ErrorLen, tt.errorLen)
			}
			if err.Incomplete() != (tt.errorLen == 0) {
				t.Errorf("Incomplete() = %v", err.Incomplete())
			}
		})
	}
}

func TestUTF8Error_Error(t *testing.T) {
	if got := (&UTF8Error{ValidUpTo: 3, ErrorLen: 2}).Error(); got != "invalid utf-8 sequence of 2 bytes from index 3" {
		t.Errorf("got %q", got)
	}
	if got := (&UTF8Error{ValidUpTo: 1}).Error(); got != "incomplete utf-8 byte sequence from index 1" {
		t.Errorf("got %q", got)
	}
}
