package host

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-argv/entry"
	"github.com/wippyai/wasm-argv/errors"
	"github.com/wippyai/wasm-argv/memory"
)

const (
	// ModuleName is the import module guests use.
	ModuleName = "wasmargv"
	// FuncMain is the imported trampoline function.
	FuncMain = "main"
)

// Instantiate registers the wasmargv host module in r. Guests importing
// wasmargv.main must be instantiated after it.
func Instantiate(ctx context.Context, r wazero.Runtime, h entry.Handler, opts ...entry.Option) (api.Module, error) {
	if h == nil {
		return nil, errors.InvalidInput(errors.PhaseHost, "handler cannot be nil")
	}

	builder := r.NewHostModuleBuilder(ModuleName)
	builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			mem := mod.Memory()
			if mem == nil {
				panic(errors.NotInitialized(errors.PhaseEntry, "guest memory"))
			}
			argc := api.DecodeI32(stack[0])
			argv := api.DecodeU32(stack[1])
			Logger().Debug("guest entered main",
				zap.String("module", mod.Name()),
				zap.Int32("argc", argc),
				zap.Uint32("argv", argv))

			status := entry.Main(ctx, memory.Wrap(mem), argc, argv, h, opts...)
			stack[0] = api.EncodeI32(status)
		}), []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, []api.ValueType{api.ValueTypeI32}).
		WithParameterNames("argc", "argv").
		Export(FuncMain)

	mod, err := builder.Instantiate(ctx)
	if err != nil {
		return nil, errors.Registration(errors.PhaseHost, ModuleName, FuncMain, err)
	}
	return mod, nil
}
