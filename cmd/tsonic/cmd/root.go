package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tsonic",
	Short: "Tsonic AOT compiler driver",
	Long: `tsonic translates a strict, statically-typed source subset into
managed-object-language source for native AOT compilation.

This driver exercises the compiler core end to end (resolve, validate,
convert, specialize, soundness-check) and is not itself the project's
package manager or build tool.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colorized diagnostic output")
}
