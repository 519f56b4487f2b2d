// Package errors provides structured error types for argument handling.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries a path (for example "argv[2]"), a detail message,
// the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLayout, errors.KindOverflow).
//		Path("argv[3]").
//		Detail("block exceeds %d bytes", max).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseRead, path, 10, 5)
//	err := errors.InvalidArgument(2, utf8Err)
//
// Argument validation failures wrap a UTF8Error describing where decoding
// stopped. ArgIndex recovers the index of the offending argument.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
