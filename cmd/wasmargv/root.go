package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/wasm-argv/argblock"
	"github.com/wippyai/wasm-argv/entry"
	"github.com/wippyai/wasm-argv/host"
)

// exitStatus is the process exit status reported by the last command.
var exitStatus int32

// logger is built in PersistentPreRunE from the configured level.
var logger = zap.NewNop()

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "warn",
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Uint32("max-block-size", argblock.DefaultMaxSize,
		"maximum bytes of argument strings written into a guest")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("max-block-size", rootCmd.PersistentFlags().Lookup("max-block-size"))

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(checkCmd, runCmd, inspectCmd)
}

// initConfig wires WASMARGV_* environment variables into viper.
func initConfig() {
	viper.SetEnvPrefix("WASMARGV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("log-level", "warn")
	viper.SetDefault("max-block-size", argblock.DefaultMaxSize)
}

var rootCmd = &cobra.Command{
	Use:   "wasmargv",
	Short: "Validate C-style argc/argv blocks as UTF-8",
	Long: `wasmargv checks that every process argument is well-formed UTF-8
before handing it to application code.

check validates this process's own arguments, run loads a WebAssembly guest
and calls one of its exports as main(argc, argv), and inspect browses the
validated arguments interactively.

An argument that is not valid UTF-8 prints a fixed diagnostic and exits
with status 255.`,
	Example: `  # Validate arguments
  wasmargv check -- one two "three four"

  # Call a guest export with arguments laid out in its memory
  wasmargv run guest.wasm --export run -- --name world

  # Debug logging through the environment
  WASMARGV_LOG_LEVEL=debug wasmargv check a b`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func setupLogging() error {
	level, err := zapcore.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return err
	}

	logger = l
	entry.SetLogger(l)
	host.SetLogger(l)
	return nil
}
