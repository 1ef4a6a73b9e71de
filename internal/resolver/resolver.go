// Package resolver implements the Module & Import Resolver (spec.md §4.1):
// it classifies every import specifier into one of four kinds and detects
// import cycles before binding ever looks at a declaration. Grounded on
// mcgru-funxy's internal/modules/loader.go Loader — the same
// LoadedModules/Processing cache-plus-cycle-guard shape, generalized from
// loading a single dynamically-typed module graph to classifying a
// statically-typed one.
package resolver

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/tsoniclang/tsonic/internal/ast"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
)

// CoreLanguageModule is the well-known specifier for the privileged marker
// imports (defaultof, istype, asinterface, struct, field, ref, out, in,
// inref, thisarg — spec.md §6).
const CoreLanguageModule = "tsonic:core"

// Module is one resolved source file plus its classified imports.
type Module struct {
	Path     string
	Name     string
	Program  *ast.Program
	Imports  []*ResolvedImport
}

// ResolvedImport pairs an ast.ImportDeclaration with the resolver's
// classification and, for local imports, the absolute path it resolved to.
type ResolvedImport struct {
	Decl         *ast.ImportDeclaration
	Kind         ast.ImportKind
	ResolvedPath string // set only when Kind == ImportLocal
}

// Resolver loads and classifies a module graph rooted at a set of entry
// files, the spec.md §4.1 Module & Import Resolver.
type Resolver struct {
	modules    map[string]*Module
	processing map[string]bool
	assemblies map[string]bool // stable assembly namespace prefixes known from bindings.json
}

// New returns a Resolver that treats any import specifier whose first path
// segment matches a key of knownAssemblies as ImportForeignCLR.
func New(knownAssemblies map[string]bool) *Resolver {
	return &Resolver{
		modules:    make(map[string]*Module),
		processing: make(map[string]bool),
		assemblies: knownAssemblies,
	}
}

// Classify determines a single import specifier's kind without touching
// the module cache; Resolve uses it while walking the graph, but validators
// that only need the classification (not full traversal) can call it
// directly.
func (r *Resolver) Classify(specifier string) ast.ImportKind {
	switch {
	case specifier == CoreLanguageModule:
		return ast.ImportCoreLanguage
	case strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../"):
		return ast.ImportLocal
	case r.assemblies[firstSegment(specifier)]:
		return ast.ImportForeignCLR
	default:
		return ast.ImportUnknown
	}
}

func firstSegment(specifier string) string {
	if i := strings.Index(specifier, "/"); i >= 0 {
		return specifier[:i]
	}
	return specifier
}

// Resolve walks the import graph from entry, loading each reachable local
// module exactly once via load, classifying every import, and reporting any
// cycle found among local imports with the exact path that forms it
// (TSN1002). programOf supplies the parsed ast.Program for a given absolute
// file path — resolution itself never parses (spec.md §1 scopes parsing
// out).
func (r *Resolver) Resolve(col *diagnostics.Collector, entry string, programOf func(path string) (*ast.Program, error)) (*Module, error) {
	return r.load(col, entry, programOf, nil)
}

func (r *Resolver) load(col *diagnostics.Collector, path string, programOf func(string) (*ast.Program, error), stack []string) (*Module, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if r.processing[abs] {
		cyclePath := append(append([]string{}, stack...), abs)
		col.Errorf(diagnostics.PhaseResolver, diagnostics.CodeImportCycle, diagnostics.Location{File: abs}, strings.Join(cyclePath, " -> "))
		return nil, nil
	}
	if mod, ok := r.modules[abs]; ok {
		return mod, nil
	}
	r.processing[abs] = true
	defer delete(r.processing, abs)

	prog, err := programOf(abs)
	if err != nil {
		col.Errorf(diagnostics.PhaseResolver, diagnostics.CodeModuleNotFound, diagnostics.Location{File: abs}, abs)
		return nil, err
	}

	mod := &Module{
		Path:    abs,
		Name:    moduleNameFor(abs),
		Program: prog,
	}
	r.modules[abs] = mod

	nextStack := append(append([]string{}, stack...), abs)
	for _, decl := range prog.Imports {
		kind := r.Classify(decl.Specifier)
		ri := &ResolvedImport{Decl: decl, Kind: kind}
		switch kind {
		case ast.ImportLocal:
			target := filepath.Join(filepath.Dir(abs), decl.Specifier)
			if _, err := r.load(col, target, programOf, nextStack); err != nil {
				return nil, err
			}
			resolvedAbs, _ := filepath.Abs(target)
			ri.ResolvedPath = resolvedAbs
			if isDefaultImport(decl) {
				col.Warnf(diagnostics.PhaseResolver, diagnostics.CodeDefaultImportLocal, decl.Pos(), decl.Specifier)
			}
		case ast.ImportUnknown:
			col.Errorf(diagnostics.PhaseResolver, diagnostics.CodeUnknownImportKind, decl.Pos(), decl.Specifier)
		}
		decl.Kind = kind
		mod.Imports = append(mod.Imports, ri)
	}
	return mod, nil
}

func isDefaultImport(decl *ast.ImportDeclaration) bool {
	for _, s := range decl.Specifiers {
		if s.IsDefault {
			return true
		}
	}
	return false
}

func moduleNameFor(abs string) string {
	base := filepath.Base(abs)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// AllModules returns every resolved module, sorted by path for
// deterministic downstream iteration (INV-DETERMINISM).
func (r *Resolver) AllModules() []*Module {
	out := make([]*Module, 0, len(r.modules))
	for _, m := range r.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
