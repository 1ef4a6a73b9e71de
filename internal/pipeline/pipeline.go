// Package pipeline wires the compiler's phases into the ordered Processor
// chain spec.md §2 names: resolver -> bindings -> catalog -> validator ->
// IR converter -> specialization -> soundness gate. Grounded on
// mcgru-funxy/internal/pipeline/pipeline.go's Processor-chain Pipeline,
// generalized from an interpreter's lex/parse/analyze/evaluate stages to
// the AOT compiler's own resolve/validate/convert/specialize/check stages.
package pipeline

// Pipeline runs an ordered sequence of Processors over one Context.
type Pipeline struct {
	stages []Processor
}

// New returns a Pipeline running stages in the given order. Default builds
// (pkg/compiler.Compile) always use the full chain in spec.md §2's order;
// New accepts a custom order so tests can run a partial chain (e.g.
// resolve+validate only) without the rest.
func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Default returns the full compilation chain in spec.md §2's dependency
// order.
func Default() *Pipeline {
	return New(
		ResolveStage{},
		ValidateStage{},
		ConvertStage{},
		SpecializeStage{},
		SoundnessStage{},
	)
}

// Run executes every stage in order, always running the full chain: each
// stage decides for itself whether to skip its own work when the collector
// already holds errors (see stages.go), so every independent diagnostic a
// stage can still usefully report gets the chance to (spec.md §7).
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
	}
	return ctx
}
