// Package program holds the ProgramContext that replaces process-wide
// mutable state across one compilation (spec.md §9's explicit
// no-package-level-globals design note). Every pipeline stage that used to
// reach for a package var instead receives a *ProgramContext carrying the
// handle registry, the unified catalog, the diagnostics collector, and the
// compile options, so multiple compilations can run concurrently in the
// same process without sharing state (spec.md §5's parallelism note).
// Grounded on mcgru-funxy/internal/pipeline/context.go's PipelineContext
// shape, generalized from one monolithic struct accreted across an
// interpreter's stages into Tsonic's own compile-time data (catalog,
// handles) instead of an interpreter's runtime data (symbol table, operator
// dispatch tables).
package program

import (
	"github.com/google/uuid"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
	"github.com/tsoniclang/tsonic/internal/handles"
)

// CompileOptions is the explicit configuration a single compilation runs
// with, threaded through ProgramContext rather than read from package-level
// vars (spec.md §4.9's ambient-stack configuration note, generalizing the
// teacher's internal/config constants into a value the caller controls).
type CompileOptions struct {
	ProjectRoot   string
	SourceRoot    string
	RootNamespace string
	TypeRoots     []string
	Strict        bool
}

// ProgramContext is the single object threaded through resolver -> bindings
// -> catalog -> validator -> converter -> specialize -> soundness for one
// compilation. It is not safe for concurrent mutation from multiple
// goroutines; spec.md §5 runs modules within one compilation sequentially,
// and a caller running several compilations concurrently constructs one
// ProgramContext per compilation rather than sharing one.
type ProgramContext struct {
	RunID   uuid.UUID
	Options CompileOptions

	Registry  *handles.Registry
	Catalog   *catalog.UnifiedTypeCatalog
	Collector *diagnostics.Collector
}

// New allocates a fresh ProgramContext for one compilation, seeding a random
// RunID used only to correlate diagnostics/traces across parallel
// compilation units — it never participates in TypeId or handle identity,
// which stay content-addressed and deterministic (INV-DETERMINISM).
func New(opts CompileOptions) *ProgramContext {
	reg := handles.NewRegistry()
	return &ProgramContext{
		RunID:     uuid.New(),
		Options:   opts,
		Registry:  reg,
		Catalog:   catalog.New(reg),
		Collector: diagnostics.NewCollector(),
	}
}
