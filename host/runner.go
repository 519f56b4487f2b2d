package host

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-argv/argblock"
	"github.com/wippyai/wasm-argv/entry"
	"github.com/wippyai/wasm-argv/errors"
	"github.com/wippyai/wasm-argv/memory"
)

// Config holds configuration for a Runner.
type Config struct {
	// Stdout and Stderr receive guest WASI output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer

	// MemoryLimitPages sets the maximum memory per guest in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	MemoryLimitPages uint32

	// MaxBlockSize bounds the argument strings Run writes into a guest.
	// 0 means argblock.DefaultMaxSize.
	MaxBlockSize uint32

	// EntryOptions are passed to entry.Main for every guest call.
	EntryOptions []entry.Option
}

// Runner owns a wazero runtime with WASI preview1 and the wasmargv host
// module registered.
type Runner struct {
	runtime wazero.Runtime
	cfg     Config
}

// NewRunner creates a Runner with default configuration.
func NewRunner(ctx context.Context, h entry.Handler) (*Runner, error) {
	return NewRunnerWithConfig(ctx, h, nil)
}

// NewRunnerWithConfig creates a Runner with custom configuration.
func NewRunnerWithConfig(ctx context.Context, h entry.Handler, cfg *Config) (*Runner, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	if c.MaxBlockSize == 0 {
		c.MaxBlockSize = argblock.DefaultMaxSize
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if c.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(c.MemoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		rt.Close(ctx)
		return nil, errors.Registration(errors.PhaseHost, "wasi_snapshot_preview1", "*", err)
	}
	if _, err := Instantiate(ctx, rt, h, c.EntryOptions...); err != nil {
		rt.Close(ctx)
		return nil, err
	}

	return &Runner{runtime: rt, cfg: c}, nil
}

// Close releases the runtime and every guest loaded through it.
func (r *Runner) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}

// Guest is an instantiated guest module. A Guest is not safe for
// concurrent use.
type Guest struct {
	mod    api.Module
	runner *Runner

	// argBase and argCap locate the region grown for argument blocks.
	// Later calls reuse it while their block fits.
	argBase uint32
	argCap  uint32
}

// Load compiles and instantiates a core wasm module. Start functions are
// not run; call Run to enter the guest.
func (r *Runner) Load(ctx context.Context, wasm []byte) (*Guest, error) {
	compiled, err := r.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Load("compile module", err)
	}

	modCfg := wazero.NewModuleConfig().WithStartFunctions()
	if r.cfg.Stdout != nil {
		modCfg = modCfg.WithStdout(r.cfg.Stdout)
	}
	if r.cfg.Stderr != nil {
		modCfg = modCfg.WithStderr(r.cfg.Stderr)
	}

	mod, err := r.runtime.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		return nil, errors.Instantiation(err)
	}
	return &Guest{mod: mod, runner: r}, nil
}

// Module returns the underlying wazero module.
func (g *Guest) Module() api.Module {
	return g.mod
}

// Close closes the guest module.
func (g *Guest) Close(ctx context.Context) error {
	return g.mod.Close(ctx)
}

// argRegion returns the start of a grown region of at least size bytes,
// growing memory only when the current region is too small.
func (g *Guest) argRegion(w *memory.Wrapper, size uint32) (uint32, error) {
	if g.argCap > 0 && size <= g.argCap {
		return g.argBase, nil
	}
	pages := (uint64(size) + memory.PageSize - 1) / memory.PageSize
	base, err := w.Grow(uint32(pages))
	if err != nil {
		return 0, err
	}
	g.argBase = base
	g.argCap = uint32(min(pages*memory.PageSize, 1<<32-1))
	Logger().Debug("grew argument region",
		zap.Uint32("base", base),
		zap.Uint64("pages", pages))
	return base, nil
}

// Run writes args into guest memory and calls the guest export as
// export(argc, argv). The first call grows memory for the block; later
// calls reuse that region unless their block needs more room. It returns
// the export's i32 result, or the exit code if the guest calls proc_exit.
func (g *Guest) Run(ctx context.Context, export string, args [][]byte) (int32, error) {
	fn := g.mod.ExportedFunction(export)
	if fn == nil {
		return 0, errors.NotFound(errors.PhaseRuntime, "export", export)
	}
	mem := g.mod.Memory()
	if mem == nil {
		return 0, errors.NotInitialized(errors.PhaseRuntime, "guest memory")
	}

	block, err := argblock.New(g.runner.cfg.MaxBlockSize, args...)
	if err != nil {
		return 0, err
	}

	w := &memory.Wrapper{Mem: mem}
	base, err := g.argRegion(w, block.Size())
	if err != nil {
		return 0, err
	}
	argc, argv, err := block.WriteTo(w, base)
	if err != nil {
		return 0, err
	}

	Logger().Debug("calling guest",
		zap.String("export", export),
		zap.Int32("argc", argc),
		zap.Uint32("argv", argv))

	results, err := fn.Call(ctx, api.EncodeI32(argc), api.EncodeU32(argv))
	if err != nil {
		var exitErr *sys.ExitError
		if stderrors.As(err, &exitErr) {
			return int32(exitErr.ExitCode()), nil
		}
		return 0, errors.Wrap(errors.PhaseRuntime, errors.KindTrap, err, "call "+export)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return api.DecodeI32(results[0]), nil
}
