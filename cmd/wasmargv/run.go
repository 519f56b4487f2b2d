package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-argv/argview"
	"github.com/wippyai/wasm-argv/entry"
	"github.com/wippyai/wasm-argv/errors"
	"github.com/wippyai/wasm-argv/host"
)

var (
	runExport      string
	runMemoryPages uint32
	runQuiet       bool
)

func init() {
	runCmd.Flags().StringVar(&runExport, "export", "run",
		"guest export called as main(argc, argv)")
	runCmd.Flags().Uint32Var(&runMemoryPages, "memory-limit-pages", 0,
		"maximum guest memory in 64KiB pages (0 = runtime default)")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false,
		"do not print arguments the guest passes to wasmargv.main")
}

var runCmd = &cobra.Command{
	Use:   "run <file.wasm> [-- args...]",
	Short: "Call a guest export as main(argc, argv)",
	Long: `run loads a core WebAssembly module, writes the module path and the
remaining arguments into newly grown guest memory as an argc/argv block,
and calls the chosen export with (argc, argv).

Guests that import wasmargv.main get their arguments validated by the host
and printed; the status the host returns to the guest is 255 for invalid
UTF-8. The exit status of this command is the export's result.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		wasmFile := args[0]

		data, err := os.ReadFile(wasmFile)
		if err != nil {
			return errors.Load("read "+wasmFile, err)
		}

		out := cmd.OutOrStdout()
		handler := func(_ context.Context, view argview.View) int32 {
			if !runQuiet {
				printArgs(out, "Guest arguments", view)
			}
			return 0
		}

		r, err := host.NewRunnerWithConfig(ctx, handler, &host.Config{
			Stdout:           out,
			Stderr:           cmd.ErrOrStderr(),
			MemoryLimitPages: runMemoryPages,
			MaxBlockSize:     viper.GetUint32("max-block-size"),
			EntryOptions:     []entry.Option{entry.WithDiagnostic(out)},
		})
		if err != nil {
			return fmt.Errorf("create runner: %w", err)
		}
		defer r.Close(ctx)

		guest, err := r.Load(ctx, data)
		if err != nil {
			return err
		}

		raw := make([][]byte, len(args))
		for i, a := range args {
			raw[i] = []byte(a)
		}

		status, err := guest.Run(ctx, runExport, raw)
		if err != nil {
			return err
		}
		logger.Info("guest returned", zap.String("export", runExport), zap.Int32("status", status))
		exitStatus = status
		return nil
	},
}
