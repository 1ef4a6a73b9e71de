package pipeline

import (
	"github.com/tsoniclang/tsonic/internal/convert"
	"github.com/tsoniclang/tsonic/internal/soundness"
	"github.com/tsoniclang/tsonic/internal/specialize"
	"github.com/tsoniclang/tsonic/internal/validate"
)

// ResolveStage resolves the entry module and every module it transitively
// imports, populating ctx.Modules in deterministic path order (spec.md
// §4.1). Grounded on mcgru-funxy/internal/modules/loader.go's own
// Load-everything-reachable-from-an-entry-point step.
type ResolveStage struct{}

func (ResolveStage) Process(ctx *Context) *Context {
	ctx.Resolver.Resolve(ctx.Prog.Collector, ctx.EntryPath, ctx.ProgramOf)
	ctx.Modules = ctx.Resolver.AllModules()
	return ctx
}

// ValidateStage rejects the unsupported-feature forms spec.md §4.5 names
// (forbidden utility types, recursive aliases, dynamic import, promise
// chains) before conversion gets anywhere near them.
type ValidateStage struct{}

func (ValidateStage) Process(ctx *Context) *Context {
	v := validate.New(ctx.Prog.Collector)
	for _, m := range ctx.Modules {
		v.Validate(m.Program)
	}
	return ctx
}

// ConvertStage lowers every resolved module's AST into IR against the
// shared catalog (spec.md §4.4).
type ConvertStage struct{}

func (ConvertStage) Process(ctx *Context) *Context {
	if ctx.Prog.Collector.HasErrors() {
		return ctx
	}
	c := convert.New(ctx.Prog.Catalog, ctx.Prog.Collector)
	for _, m := range ctx.Modules {
		ctx.IR = append(ctx.IR, c.ConvertProgram(m.Program))
	}
	return ctx
}

// SpecializeStage runs the Specialization Engine over each converted
// module's generic declarations (spec.md §4.6). A fresh Engine per module
// is deliberate: call-site collection and monomorphization are scoped to
// the declarations visible within one module's top level, matching the
// Converter's own per-module catalog usage; cross-module generic calls are
// out of scope for this pipeline stage (spec.md §6's accepted subset has no
// cross-module generic instantiation construct).
type SpecializeStage struct{}

func (SpecializeStage) Process(ctx *Context) *Context {
	if ctx.Prog.Collector.HasErrors() {
		return ctx
	}
	for _, mod := range ctx.IR {
		engine := specialize.New(ctx.Prog.Catalog, mod)
		engine.CollectModule(mod)
		mod.Statements = engine.Finalize(mod.Statements)
		ctx.Specialize = append(ctx.Specialize, engine)
	}
	return ctx
}

// SoundnessStage runs the final IR pass rejecting residual `any`,
// unresolved references, and unrepresentable shapes (spec.md §4.7).
type SoundnessStage struct{}

func (SoundnessStage) Process(ctx *Context) *Context {
	if ctx.Prog.Collector.HasErrors() {
		return ctx
	}
	gate := soundness.New(ctx.Prog.Catalog, ctx.Prog.Collector)
	for _, mod := range ctx.IR {
		gate.Check(mod)
	}
	return ctx
}
