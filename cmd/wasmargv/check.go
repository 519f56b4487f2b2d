package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-argv/argview"
	"github.com/wippyai/wasm-argv/entry"
)

var checkCmd = &cobra.Command{
	Use:   "check [args...]",
	Short: "Validate the given arguments and print them",
	Long: `check lays the program name and the given arguments out as a C-style
argc/argv block, validates them and prints each one. Bytes are passed
through exactly as the operating system supplied them, so invalid UTF-8
on the command line is reported with exit status 255. Put arguments that
look like flags after "--".`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := programArgs(args)

		out := cmd.OutOrStdout()
		status, err := entry.Process(cmd.Context(), raw, func(_ context.Context, view argview.View) int32 {
			printArgs(out, "Arguments", view)
			return 0
		}, entry.WithDiagnostic(out), entry.WithLogger(logger))
		if err != nil {
			return err
		}
		exitStatus = status
		return nil
	},
}

// programArgs prepends this program's name to args, bytes preserved as the
// operating system supplied them.
func programArgs(args []string) [][]byte {
	raw := make([][]byte, 0, len(args)+1)
	raw = append(raw, []byte(os.Args[0]))
	for _, a := range args {
		raw = append(raw, []byte(a))
	}
	return raw
}
