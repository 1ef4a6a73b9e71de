// Package compiler is the public entry point wiring every internal phase
// into one Compile call (spec.md §2). Grounded on
// mcgru-funxy/internal/pipeline/pipeline.go's Processor chain and
// cmd/funxy/main.go's module-loading driver loop, generalized from an
// interpreter's read-eval-print step into a single pure compile() call over
// one entry file and the modules it imports (spec.md §5: the compiler is a pure function
// of its inputs, with no ambient state surviving between calls).
package compiler

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tsoniclang/tsonic/internal/ast"
	"github.com/tsoniclang/tsonic/internal/bindings"
	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
	"github.com/tsoniclang/tsonic/internal/ir"
	"github.com/tsoniclang/tsonic/internal/pipeline"
	"github.com/tsoniclang/tsonic/internal/program"
)

// Options configures one Compile call. It is a thin, user-facing wrapper
// around program.CompileOptions (spec.md §4.9's configuration note);
// keeping the two separate lets internal/program stay free of a public API
// stability burden while pkg/compiler's Options is the one callers (and
// cmd/tsonic) depend on.
type Options struct {
	ProjectRoot   string
	SourceRoot    string
	RootNamespace string
	TypeRoots     []string
	Strict        bool

	// Assemblies lists bindings.json manifests to load into the catalog
	// before resolving any source file, keyed by the assembly name the
	// resolver's Classify step recognizes as ForeignCLR (spec.md §4.1).
	Assemblies map[string]string // assembly name -> bindings.json path

	// ParseFile parses one source file into an *ast.Program. Parsing is an
	// external collaborator (spec.md §1); Compile never parses source
	// itself, only accepts an already-wired parser adapter.
	ParseFile func(path string) (*ast.Program, error)
}

// Result is everything a successful (or partially successful) Compile call
// produces: the resolved module set's IR, ready for an emitter, plus the
// RunID that tags every diagnostic/trace for this invocation.
type Result struct {
	RunID   string
	IR      []*ir.Module
	Catalog *catalog.UnifiedTypeCatalog
}

// Compile resolves, validates, converts, specializes, and soundness-checks
// every module reachable from entryPath. It always returns every
// diagnostic accumulated along the way, even when the result is unusable;
// callers check the returned diagnostics for error severity before
// trusting Result.
func Compile(entryPath string, opts Options) (Result, []*diagnostics.Diagnostic) {
	prog := program.New(program.CompileOptions{
		ProjectRoot:   opts.ProjectRoot,
		SourceRoot:    opts.SourceRoot,
		RootNamespace: opts.RootNamespace,
		TypeRoots:     opts.TypeRoots,
		Strict:        opts.Strict,
	})

	for name, path := range opts.Assemblies {
		if err := loadAssembly(prog, name, path); err != nil {
			prog.Collector.Errorf(diagnostics.PhaseBindings, diagnostics.CodeModuleNotFound, diagnostics.Location{File: path}, path)
		}
	}

	knownAssemblies := make(map[string]bool, len(opts.Assemblies))
	for name := range opts.Assemblies {
		knownAssemblies[name] = true
	}

	ctx := pipeline.NewContext(prog, entryPath, opts.ParseFile, knownAssemblies)
	pipeline.Default().Run(ctx)

	return Result{
		RunID:   prog.RunID.String(),
		IR:      ctx.IR,
		Catalog: prog.Catalog,
	}, prog.Collector.All()
}

// loadAssembly reads and registers one bindings.json manifest into prog's
// catalog ahead of module resolution.
func loadAssembly(prog *program.ProgramContext, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("compiler: open assembly %s: %w", name, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("compiler: read assembly %s: %w", name, err)
	}
	m, err := bindings.Decode(r)
	if err != nil {
		return fmt.Errorf("compiler: decode assembly %s: %w", name, err)
	}

	layer := bindings.NewBindingLayer(prog.Catalog, prog.Collector, nil, nil)
	return layer.Load(diagnostics.Location{File: path}, raw, m)
}
