package pipeline

import (
	"github.com/tsoniclang/tsonic/internal/ast"
	"github.com/tsoniclang/tsonic/internal/ir"
	"github.com/tsoniclang/tsonic/internal/program"
	"github.com/tsoniclang/tsonic/internal/resolver"
	"github.com/tsoniclang/tsonic/internal/specialize"
)

// Context holds the data passed between pipeline stages for one
// compilation — the per-run analogue of program.ProgramContext, which holds
// the longer-lived catalog/registry/collector. Grounded on
// mcgru-funxy/internal/pipeline/context.go's PipelineContext, generalized
// from one interpreter-wide struct (symbol table, trait dispatch tables,
// module loader) into the AOT pipeline's own stage-to-stage data: resolved
// modules, per-module IR, and the specialization engine's output.
type Context struct {
	Prog *program.ProgramContext

	EntryPath string
	ProgramOf func(path string) (*ast.Program, error)

	Resolver *resolver.Resolver
	Modules  []*resolver.Module

	IR         []*ir.Module
	Specialize []*specialize.Engine
}

// NewContext seeds a Context for one compilation. knownAssemblies names the
// bindings.json assemblies available to the resolver's ForeignCLR
// classification (spec.md §4.1).
func NewContext(prog *program.ProgramContext, entryPath string, programOf func(string) (*ast.Program, error), knownAssemblies map[string]bool) *Context {
	return &Context{
		Prog:      prog,
		EntryPath: entryPath,
		ProgramOf: programOf,
		Resolver:  resolver.New(knownAssemblies),
	}
}
