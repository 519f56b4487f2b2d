// Command wasmargv validates C-style process arguments and runs guests that
// receive them through the wasmargv host module.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(int(exitStatus))
}
