// Package specialize implements the Specialization Engine (spec.md §4.3):
// it collects every call site of a generic function or class, serializes
// the concrete type-argument list into a stable key, and clones the
// generic declaration once per distinct key, substituting the declaration's
// type parameters for the call site's concrete arguments throughout the
// cloned body. Because a specialization's own body can contain further
// generic calls that only become concrete after substitution, the engine
// re-runs call-site collection against newly emitted clones until a fixed
// point is reached (spec.md §4.3's "fixed-point re-run" requirement).
// Grounded on mcgru-funxy's internal/typesystem Subst/Apply recursive
// rewrite idiom (types.go's ApplyWithCycleCheck) generalized from
// unification substitution to monomorphizing substitution over the IR tree
// instead of the type-inference tree.
package specialize

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/ir"
)

// Key is the stable, structural serialization of one call site's concrete
// type arguments against a generic declaration's name (spec.md §4.3).
// Equal call sites across the whole compilation always serialize to equal
// keys (INV-DETERMINISM), so the Engine never emits two clones for what is
// semantically one specialization.
type Key string

// serialize builds a Key from a declaration name and its concrete type
// argument TypeIds, sorted implicitly by argument position (never by
// value) since argument order is part of a generic's identity.
func serialize(cat *catalog.UnifiedTypeCatalog, declName string, args []catalog.TypeId) Key {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, declName)
	for _, a := range args {
		parts = append(parts, cat.Entry(a).TsName+"#"+strconv.FormatUint(uint64(a), 10))
	}
	return Key(strings.Join(parts, "|"))
}

// Engine drives the collect -> clone+substitute -> re-run loop.
type Engine struct {
	cat *catalog.UnifiedTypeCatalog

	// generics maps a generic declaration's name to its unspecialized
	// FuncDecl/ClassDecl and its own TypeParam TypeIds, in declaration
	// order, so Subst can map position to position.
	funcGenerics  map[string]*ir.FuncDecl
	classGenerics map[string]*ir.ClassDecl

	// done tracks which Keys have already produced a clone, so re-running
	// collection against already-specialized output terminates instead of
	// looping forever on recursive generics.
	done map[Key]bool

	// Specialized accumulates every clone produced, keyed by Key; the maps
	// keep no insertion order (INV-DETERMINISM: stable iteration via Keys(),
	// which sorts).
	specializedFuncs  map[Key]*ir.FuncDecl
	specializedClasses map[Key]*ir.ClassDecl
}

// New returns an Engine seeded with the generic declarations found in a
// converted module's top level.
func New(cat *catalog.UnifiedTypeCatalog, mod *ir.Module) *Engine {
	e := &Engine{
		cat:                cat,
		funcGenerics:       make(map[string]*ir.FuncDecl),
		classGenerics:      make(map[string]*ir.ClassDecl),
		done:               make(map[Key]bool),
		specializedFuncs:   make(map[Key]*ir.FuncDecl),
		specializedClasses: make(map[Key]*ir.ClassDecl),
	}
	for _, s := range mod.Statements {
		switch n := s.(type) {
		case *ir.FuncDecl:
			if len(n.TypeParams) > 0 {
				e.funcGenerics[n.Name] = n
			}
		case *ir.ClassDecl:
			if len(n.TypeParams) > 0 {
				e.classGenerics[n.Name] = n
			}
		}
	}
	return e
}

// subst maps a generic TypeId to the concrete TypeId a call site supplied.
type subst map[catalog.TypeId]catalog.TypeId

// RequestFunc collects one call site against a generic function, cloning
// and substituting on first request and returning the cached clone on
// every subsequent request for the same Key (fixed-point memoization).
func (e *Engine) RequestFunc(name string, typeArgs []catalog.TypeId) *ir.FuncDecl {
	generic, ok := e.funcGenerics[name]
	if !ok {
		return nil
	}
	key := serialize(e.cat, name, typeArgs)
	if clone, ok := e.specializedFuncs[key]; ok {
		return clone
	}
	s := make(subst, len(generic.TypeParams))
	for i, tp := range generic.TypeParams {
		if i < len(typeArgs) {
			s[tp] = typeArgs[i]
		}
	}
	clone := e.cloneFunc(generic, s)
	clone.Name = mangledName(e.cat, name, typeArgs)
	clone.TypeParams = nil
	e.specializedFuncs[key] = clone
	e.done[key] = true

	// A freshly substituted body may itself contain generic calls that are
	// only now concrete (e.g. identity<T>(x) inside map<T,U>'s body, with T
	// now bound); walk it to collect and specialize those in turn.
	e.collectCallsInBlock(clone.Body)
	return clone
}

// RequestClass is RequestFunc's analogue for generic classes.
func (e *Engine) RequestClass(name string, typeArgs []catalog.TypeId) *ir.ClassDecl {
	generic, ok := e.classGenerics[name]
	if !ok {
		return nil
	}
	key := serialize(e.cat, name, typeArgs)
	if clone, ok := e.specializedClasses[key]; ok {
		return clone
	}
	s := make(subst, len(generic.TypeParams))
	for i, tp := range generic.TypeParams {
		if i < len(typeArgs) {
			s[tp] = typeArgs[i]
		}
	}
	clone := &ir.ClassDecl{
		Name:     mangledName(e.cat, name, typeArgs),
		TypeId:   generic.TypeId,
		Heritage: substList(generic.Heritage, s),
	}
	for _, f := range generic.Fields {
		clone.Fields = append(clone.Fields, &ir.Field{Name: f.Name, Type: substOne(f.Type, s), Static: f.Static, Initializer: f.Initializer})
	}
	for _, m := range generic.Methods {
		clone.Methods = append(clone.Methods, e.cloneFunc(m, s))
	}
	e.specializedClasses[key] = clone
	e.done[key] = true
	for _, m := range clone.Methods {
		e.collectCallsInBlock(m.Body)
	}
	return clone
}

// mangledName renders a specialization's emitted name as spec.md §4.3
// requires: `<base>__<arg1>__<arg2>…`, with every type-identifier
// character that isn't a letter, digit, or underscore itself flattened to
// an underscore (array brackets, generic angle brackets, namespace dots).
func mangledName(cat *catalog.UnifiedTypeCatalog, base string, typeArgs []catalog.TypeId) string {
	parts := make([]string, 0, len(typeArgs)+1)
	parts = append(parts, base)
	for _, a := range typeArgs {
		parts = append(parts, sanitizeTypeName(cat.Entry(a).TsName))
	}
	return strings.Join(parts, "__")
}

func sanitizeTypeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func substOne(t catalog.TypeId, s subst) catalog.TypeId {
	if repl, ok := s[t]; ok {
		return repl
	}
	return t
}

func substList(ts []catalog.TypeId, s subst) []catalog.TypeId {
	out := make([]catalog.TypeId, len(ts))
	for i, t := range ts {
		out[i] = substOne(t, s)
	}
	return out
}

func (e *Engine) cloneFunc(fn *ir.FuncDecl, s subst) *ir.FuncDecl {
	clone := &ir.FuncDecl{
		Name:        fn.Name,
		TypeParams:  fn.TypeParams,
		ReturnType:  substOne(fn.ReturnType, s),
		IsAsync:     fn.IsAsync,
		IsGenerator: fn.IsGenerator,
	}
	for _, p := range fn.Params {
		clone.Params = append(clone.Params, &ir.Param{Name: p.Name, Type: substOne(p.Type, s), Rest: p.Rest})
	}
	clone.Body = substBlock(fn.Body, s)
	return clone
}

func substBlock(b *ir.Block, s subst) *ir.Block {
	if b == nil {
		return nil
	}
	out := &ir.Block{}
	for _, st := range b.Statements {
		out.Statements = append(out.Statements, substStatement(st, s))
	}
	return out
}

func substStatement(stmt ir.Statement, s subst) ir.Statement {
	switch n := stmt.(type) {
	case *ir.Block:
		return substBlock(n, s)
	case *ir.ExprStatement:
		return &ir.ExprStatement{Value: substExpr(n.Value, s)}
	case *ir.Return:
		if n.Value == nil {
			return n
		}
		return &ir.Return{Value: substExpr(n.Value, s)}
	case *ir.If:
		out := &ir.If{Test: substExpr(n.Test, s), NarrowedName: n.NarrowedName, NarrowedThen: substOne(n.NarrowedThen, s), NarrowedElse: substOne(n.NarrowedElse, s)}
		out.Then = substStatement(n.Then, s)
		if n.Else != nil {
			out.Else = substStatement(n.Else, s)
		}
		return out
	case *ir.While:
		return &ir.While{Test: substExpr(n.Test, s), Body: substStatement(n.Body, s)}
	case *ir.VarDecl:
		var val ir.Expression
		if n.Value != nil {
			val = substExpr(n.Value, s)
		}
		return &ir.VarDecl{Name: n.Name, DeclaredType: substOne(n.DeclaredType, s), Value: val}
	default:
		return stmt
	}
}

func substExpr(e ir.Expression, s subst) ir.Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *ir.IntLiteral:
		return &ir.IntLiteral{Value: n.Value, Type: substOne(n.Type, s)}
	case *ir.Ident:
		return &ir.Ident{Name: n.Name, Type: substOne(n.Type, s)}
	case *ir.Binary:
		return &ir.Binary{Operator: n.Operator, Left: substExpr(n.Left, s), Right: substExpr(n.Right, s), Type: substOne(n.Type, s)}
	case *ir.Call:
		out := &ir.Call{
			Callee:                 substExpr(n.Callee, s),
			Type:                   substOne(n.Type, s),
			TypeArgs:               substList(n.TypeArgs, s),
			RequiresSpecialization: n.RequiresSpecialization,
		}
		for _, a := range n.Args {
			out.Args = append(out.Args, &ir.Arg{Value: substExpr(a.Value, s), Spread: a.Spread})
		}
		return out
	case *ir.New:
		out := &ir.New{
			ClassName:              n.ClassName,
			ClassType:              substOne(n.ClassType, s),
			Type:                   substOne(n.Type, s),
			TypeArgs:               substList(n.TypeArgs, s),
			RequiresSpecialization: n.RequiresSpecialization,
		}
		for _, a := range n.Args {
			out.Args = append(out.Args, &ir.Arg{Value: substExpr(a.Value, s), Spread: a.Spread})
		}
		return out
	default:
		return e
	}
}

// CollectModule performs the depth-first walk over every statement in a
// converted module spec.md §4.3/§4.6 require: it visits every call and
// `new` expression reachable from the module's top level (including inside
// function and method bodies) and, for each one marked
// requiresSpecialization by the converter, requests the corresponding
// clone. A freshly produced clone's own body is in turn walked by the same
// collection from inside RequestFunc/RequestClass, so indirect generic
// calls surface at the fixed point spec.md §4.3 describes without a second
// top-level pass.
func (e *Engine) CollectModule(mod *ir.Module) {
	for _, s := range mod.Statements {
		e.collectCallsInStatement(s)
	}
}

// collectCallsInBlock walks a statement block — a freshly-cloned body, or a
// top-level function/method body during CollectModule — looking for calls
// and `new`s whose TypeArgs are now fully concrete against another generic
// declaration, recursively triggering RequestFunc/RequestClass for those.
func (e *Engine) collectCallsInBlock(b *ir.Block) {
	if b == nil {
		return
	}
	for _, st := range b.Statements {
		e.collectCallsInStatement(st)
	}
}

func (e *Engine) collectCallsInStatement(stmt ir.Statement) {
	switch n := stmt.(type) {
	case *ir.Block:
		e.collectCallsInBlock(n)
	case *ir.ExprStatement:
		e.collectCallsInExpr(n.Value)
	case *ir.Return:
		if n.Value != nil {
			e.collectCallsInExpr(n.Value)
		}
	case *ir.If:
		e.collectCallsInExpr(n.Test)
		e.collectCallsInStatement(n.Then)
		if n.Else != nil {
			e.collectCallsInStatement(n.Else)
		}
	case *ir.While:
		e.collectCallsInExpr(n.Test)
		e.collectCallsInStatement(n.Body)
	case *ir.For:
		if n.Init != nil {
			e.collectCallsInStatement(n.Init)
		}
		e.collectCallsInExpr(n.Test)
		e.collectCallsInExpr(n.Update)
		e.collectCallsInStatement(n.Body)
	case *ir.ForOf:
		e.collectCallsInExpr(n.Iterable)
		e.collectCallsInStatement(n.Body)
	case *ir.Switch:
		e.collectCallsInExpr(n.Discriminant)
		for _, cs := range n.Cases {
			if cs.Test != nil {
				e.collectCallsInExpr(cs.Test)
			}
			for _, st := range cs.Statements {
				e.collectCallsInStatement(st)
			}
		}
	case *ir.Throw:
		e.collectCallsInExpr(n.Value)
	case *ir.Try:
		e.collectCallsInBlock(n.Block)
		if n.Catch != nil {
			e.collectCallsInBlock(n.Catch.Body)
		}
		if n.Finally != nil {
			e.collectCallsInBlock(n.Finally)
		}
	case *ir.VarDecl:
		if n.Value != nil {
			e.collectCallsInExpr(n.Value)
		}
	case *ir.FuncDecl:
		e.collectCallsInBlock(n.Body)
	case *ir.ClassDecl:
		for _, m := range n.Methods {
			e.collectCallsInBlock(m.Body)
		}
	}
}

// collectCallsInExpr recurses into every sub-expression position an ir.Call
// or ir.New can be nested inside, so a generic call buried in a binary
// operand, an argument list, or an array/object literal still gets found.
func (e *Engine) collectCallsInExpr(expr ir.Expression) {
	switch n := expr.(type) {
	case nil:
		return
	case *ir.Call:
		e.collectCallsInExpr(n.Callee)
		for _, a := range n.Args {
			e.collectCallsInExpr(a.Value)
		}
		if n.RequiresSpecialization {
			if ident, ok := n.Callee.(*ir.Ident); ok {
				e.RequestFunc(ident.Name, n.TypeArgs)
			}
		}
	case *ir.New:
		for _, a := range n.Args {
			e.collectCallsInExpr(a.Value)
		}
		if n.RequiresSpecialization && n.ClassName != "" {
			e.RequestClass(n.ClassName, n.TypeArgs)
		}
	case *ir.Binary:
		e.collectCallsInExpr(n.Left)
		e.collectCallsInExpr(n.Right)
	case *ir.Logical:
		e.collectCallsInExpr(n.Left)
		e.collectCallsInExpr(n.Right)
	case *ir.Unary:
		e.collectCallsInExpr(n.Operand)
	case *ir.Update:
		e.collectCallsInExpr(n.Operand)
	case *ir.Assign:
		e.collectCallsInExpr(n.Target)
		e.collectCallsInExpr(n.Value)
	case *ir.Conditional:
		e.collectCallsInExpr(n.Test)
		e.collectCallsInExpr(n.Consequent)
		e.collectCallsInExpr(n.Alternate)
	case *ir.Member:
		e.collectCallsInExpr(n.Object)
	case *ir.Index:
		e.collectCallsInExpr(n.Object)
		e.collectCallsInExpr(n.Key)
	case *ir.ArrayLit:
		for _, el := range n.Elements {
			e.collectCallsInExpr(el)
		}
	case *ir.ObjectLit:
		for _, f := range n.Fields {
			e.collectCallsInExpr(f.Value)
		}
	case *ir.Lambda:
		e.collectCallsInBlock(n.Body)
	case *ir.TemplateStr:
		for _, ex := range n.Expressions {
			e.collectCallsInExpr(ex)
		}
	case *ir.Await:
		e.collectCallsInExpr(n.Argument)
	case *ir.Yield:
		e.collectCallsInExpr(n.Argument)
	}
}

// Finalize returns stmts with every top-level generic declaration the
// engine indexed (and therefore never emits, spec.md §4.3) removed, and
// every specialization it produced appended in deterministic Key order. The
// original generic declarations remain reachable through the Engine itself
// for signature lookup even though they no longer appear in the returned
// slice.
func (e *Engine) Finalize(stmts []ir.Statement) []ir.Statement {
	out := make([]ir.Statement, 0, len(stmts))
	for _, s := range stmts {
		switch n := s.(type) {
		case *ir.FuncDecl:
			if len(n.TypeParams) > 0 {
				continue
			}
		case *ir.ClassDecl:
			if len(n.TypeParams) > 0 {
				continue
			}
		}
		out = append(out, s)
	}
	for _, k := range e.Keys() {
		if fn, ok := e.specializedFuncs[k]; ok {
			out = append(out, fn)
		}
		if cls, ok := e.specializedClasses[k]; ok {
			out = append(out, cls)
		}
	}
	return out
}

// Keys returns every specialization key produced so far, sorted for
// deterministic emission order (INV-DETERMINISM).
func (e *Engine) Keys() []Key {
	out := make([]Key, 0, len(e.specializedFuncs)+len(e.specializedClasses))
	for k := range e.specializedFuncs {
		out = append(out, k)
	}
	for k := range e.specializedClasses {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
