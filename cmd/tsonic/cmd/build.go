package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsoniclang/tsonic/internal/ast"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
	"github.com/tsoniclang/tsonic/internal/irdump"
	"github.com/tsoniclang/tsonic/pkg/compiler"
)

var (
	flagProjectRoot   string
	flagSourceRoot    string
	flagRootNamespace string
	flagTypeRoots     []string
)

var buildCmd = &cobra.Command{
	Use:   "build <entry-file>",
	Short: "Compile an entry file and dump its finalized IR",
	Long: `build resolves every module reachable from the entry file, validates
and converts the accepted source subset, runs the Specialization Engine and
the soundness gate, and — only to give the Emitter Contract something
concrete to print in this repo — pipes the finalized IR through a minimal
text dumper. It does not produce target-language source; that printer is
out of scope (spec.md §1).`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&flagProjectRoot, "project-root", "", "project root directory")
	buildCmd.Flags().StringVar(&flagSourceRoot, "source-root", "", "source root directory")
	buildCmd.Flags().StringVar(&flagRootNamespace, "root-namespace", "", "root CLR namespace for source declarations")
	buildCmd.Flags().StringArrayVar(&flagTypeRoots, "type-root", nil, "additional bindings.json search directory (repeatable)")
}

func runBuild(c *cobra.Command, args []string) error {
	entry := args[0]
	noColor, _ := c.Flags().GetBool("no-color")

	result, diags := compiler.Compile(entry, compiler.Options{
		ProjectRoot:   flagProjectRoot,
		SourceRoot:    flagSourceRoot,
		RootNamespace: flagRootNamespace,
		TypeRoots:     flagTypeRoots,
		ParseFile:     parseFileNotWired,
	})

	printDiagnostics(os.Stderr, diags, noColor)

	for _, d := range diags {
		if d.Severity == diagnostics.SeverityError {
			return fmt.Errorf("compilation failed with %d diagnostic(s)", len(diags))
		}
	}

	for _, mod := range result.IR {
		fmt.Println(irdump.New(result.Catalog).Dump(mod))
	}
	return nil
}

// parseFileNotWired stands in for the real parser front-end, which is an
// external collaborator this repo's core never provides (spec.md §1):
// cmd/tsonic exists to exercise compiler.Compile's contract, not to ship a
// parser. A production driver supplies its own compiler.Options.ParseFile.
func parseFileNotWired(path string) (*ast.Program, error) {
	return nil, fmt.Errorf("tsonic: no parser front-end is wired into this driver; supply compiler.Options.ParseFile for %s", path)
}
