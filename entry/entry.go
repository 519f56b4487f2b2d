package entry

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	wasmargv "github.com/wippyai/wasm-argv"
	"github.com/wippyai/wasm-argv/argblock"
	"github.com/wippyai/wasm-argv/argview"
	"github.com/wippyai/wasm-argv/errors"
	"github.com/wippyai/wasm-argv/memory"
)

const (
	// ExitInvalidArgs is returned when an argument is not valid UTF-8.
	ExitInvalidArgs int32 = 255

	// Diagnostic is written when an argument is not valid UTF-8.
	Diagnostic = "Unable to parse C argv as utf-8 string\n"
)

// Handler is the application logic run with validated arguments. Its
// return value becomes the process exit status.
type Handler func(ctx context.Context, args argview.View) int32

// Option configures Main and Process.
type Option func(*config)

type config struct {
	diag   io.Writer
	logger *zap.Logger
}

// WithDiagnostic sets where the invalid-argument diagnostic is written.
// The default is os.Stdout.
func WithDiagnostic(w io.Writer) Option {
	return func(c *config) {
		c.diag = w
	}
}

// WithLogger overrides the package logger for one call.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) *config {
	c := &config{diag: os.Stdout, logger: Logger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Main validates the arguments described by argc and argv and runs h with
// them. If an argument is not valid UTF-8, h is not called; Main writes
// Diagnostic and returns ExitInvalidArgs.
//
// The argc/argv contract of argview.New applies; Main panics with a
// *argview.ContractError when it is broken, and when h is nil.
func Main(ctx context.Context, mem wasmargv.SizedMemory, argc int32, argv uint32, h Handler, opts ...Option) int32 {
	if h == nil {
		panic(&argview.ContractError{Op: "entry.Main", Detail: "nil handler"})
	}
	cfg := newConfig(opts)

	view, err := argview.New(mem, argc, argv)
	if err != nil {
		idx, _ := errors.ArgIndex(err)
		cfg.logger.Warn("rejecting arguments",
			zap.Int("index", idx),
			zap.Int32("argc", argc),
			zap.Error(err))
		_, _ = io.WriteString(cfg.diag, Diagnostic)
		return ExitInvalidArgs
	}

	cfg.logger.Debug("arguments validated", zap.Int("argc", view.Len()))
	status := h(ctx, view)
	cfg.logger.Debug("handler returned", zap.Int32("status", status))
	return status
}

// Process lays args out as an argc/argv block in a private buffer and runs
// Main over it. The error reports a block that could not be laid out
// (no arguments, an embedded NUL, or more than argblock.DefaultMaxSize
// bytes); UTF-8 failures are reported through the status as in Main.
func Process(ctx context.Context, args [][]byte, h Handler, opts ...Option) (int32, error) {
	block, err := argblock.New(argblock.DefaultMaxSize, args...)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseEntry, errors.KindInvalidInput, err, "lay out process arguments")
	}
	buf := memory.NewBuffer(block.Size())
	argc, argv, err := block.WriteTo(buf, 0)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseEntry, errors.KindInvalidInput, err, "write process arguments")
	}
	return Main(ctx, buf, argc, argv, h, opts...), nil
}
