package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseValidate,
				Kind:   KindInvalidUTF8,
				Path:   []string{"argv[2]"},
				Detail: "argument is not valid UTF-8",
			},
			contains: []string{"[validate]", "invalid_utf8", "argv[2]", "not valid UTF-8"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRead,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[read]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRuntime,
				Kind:   KindInstantiation,
				Detail: "instantiate module",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[runtime]", "instantiation", "instantiate module", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLayout,
		Kind:  KindOverflow,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseValidate,
		Kind:  KindInvalidUTF8,
		Path:  []string{"argv[0]"},
	}

	if !err.Is(&Error{Phase: PhaseValidate, Kind: KindInvalidUTF8}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseRead, Kind: KindInvalidUTF8}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseValidate, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	wrapped := fmt.Errorf("startup: %w", err)
	if !errors.Is(wrapped, &Error{Phase: PhaseValidate, Kind: KindInvalidUTF8}) {
		t.Error("errors.Is should match through wrapping")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseLayout, KindOverflow).
		Path("argv[3]").
		Value(42).
		Cause(cause).
		Detail("block exceeds %d bytes", 16).
		Build()

	if err.Phase != PhaseLayout {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseLayout)
	}
	if err.Kind != KindOverflow {
		t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
	}
	if len(err.Path) != 1 || err.Path[0] != "argv[3]" {
		t.Errorf("Path = %v, want [argv[3]]", err.Path)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "block exceeds 16 bytes" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("InvalidArgument", func(t *testing.T) {
		cause := &UTF8Error{ValidUpTo: 1, ErrorLen: 1}
		err := InvalidArgument(4, cause)
		if err.Kind != KindInvalidUTF8 || err.Phase != PhaseValidate {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if err.Path[0] != "argv[4]" {
			t.Errorf("Path = %v", err.Path)
		}
		var u *UTF8Error
		if !errors.As(err, &u) || u != cause {
			t.Error("cause should be reachable with errors.As")
		}
	})

	t.Run("Unterminated", func(t *testing.T) {
		err := Unterminated(PhaseRead, []string{"argv[1]"}, 100)
		if err.Kind != KindUnterminated {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnterminated)
		}
		if !strings.Contains(err.Detail, "100") {
			t.Errorf("Detail = %q, should contain offset", err.Detail)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseRead, []string{"argv"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("MemoryOutOfBounds", func(t *testing.T) {
		err := MemoryOutOfBounds(PhaseRead, 65536, 4)
		if !strings.Contains(err.Error(), "offset=65536, length=4") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseLayout, nil, uint64(70000), uint32(65536))
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if err.Value != uint64(70000) {
			t.Errorf("Value = %v", err.Value)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseRuntime, "export", "run")
		if !strings.Contains(err.Detail, `"run"`) {
			t.Errorf("Detail = %q", err.Detail)
		}
	})
}

func TestArgIndex(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   int
		wantOK bool
	}{
		{"direct", InvalidArgument(2, &UTF8Error{}), 2, true},
		{"wrapped", fmt.Errorf("boot: %w", InvalidArgument(7, &UTF8Error{})), 7, true},
		{"other kind", OutOfBounds(PhaseRead, nil, 1, 1), 0, false},
		{"plain error", errors.New("nope"), 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ArgIndex(tt.err)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ArgIndex() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
