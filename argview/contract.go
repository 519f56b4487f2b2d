package argview

import "fmt"

// ContractError is the panic value raised when a caller breaks the argc/argv
// contract: a non-positive count, a null table, a table or string outside
// memory, a missing NUL terminator or an index past the end.
type ContractError struct {
	Cause  error
	Op     string
	Detail string
}

func (e *ContractError) Error() string {
	msg := fmt.Sprintf("argview: %s: contract violation: %s", e.Op, e.Detail)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ContractError) Unwrap() error {
	return e.Cause
}

func violate(op string, cause error, format string, args ...any) {
	panic(&ContractError{
		Op:     op,
		Detail: fmt.Sprintf(format, args...),
		Cause:  cause,
	})
}
