// Command tsonic is a thin driver exercising pkg/compiler.Compile end to
// end (spec.md §10 NEW). It is not the real Tsonic CLI: it contains no
// project-configuration loading, package management, or native-AOT build
// invocation of its own — those remain external collaborators per
// spec.md §1. Grounded on CWBudde-go-dws's cmd/dwscript/cmd package
// layout (a cobra root command with subcommands in sibling files).
package main

import (
	"fmt"
	"os"

	"github.com/tsoniclang/tsonic/cmd/tsonic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
