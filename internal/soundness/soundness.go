// Package soundness implements the Soundness Gate (spec.md §4.3, §7): the
// final pass over specialized IR before it reaches the emitter contract.
// Nothing here is user-facing language restriction (that's
// internal/validate's job before conversion) — the gate exists to catch
// anything that should have been impossible by construction: a residual
// `any` in an expression type (TSN7401), an object literal with no facade
// type (TSN7402), or a generic function declaration that survives
// specialization (TSN7404). Dictionary value types are not checked, and a
// TypeId missing from the catalog is not reported as a diagnostic: looking
// it up raises an ICE. The three checked cases are reported as ordinary
// diagnostics (TSN74xx) rather than as an ICE, since the gate's whole
// purpose is to catch them before they become a crash in the emitter.
package soundness

import (
	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
	"github.com/tsoniclang/tsonic/internal/ir"
)

// Gate walks a specialized ir.Module and reports every soundness
// violation it finds.
type Gate struct {
	cat *catalog.UnifiedTypeCatalog
	col *diagnostics.Collector
}

// New returns a Gate reporting into col.
func New(cat *catalog.UnifiedTypeCatalog, col *diagnostics.Collector) *Gate {
	return &Gate{cat: cat, col: col}
}

// Check walks mod and records every violation; it does not stop at the
// first one, mirroring spec.md §7's preference for reporting as much as
// possible per compilation.
func (g *Gate) Check(mod *ir.Module) {
	for _, s := range mod.Statements {
		g.checkStatement(s)
	}
}

func (g *Gate) checkStatement(s ir.Statement) {
	switch n := s.(type) {
	case *ir.Block:
		for _, st := range n.Statements {
			g.checkStatement(st)
		}
	case *ir.ExprStatement:
		g.checkExpression(n.Value)
	case *ir.Return:
		if n.Value != nil {
			g.checkExpression(n.Value)
		}
	case *ir.If:
		g.checkExpression(n.Test)
		g.checkStatement(n.Then)
		if n.Else != nil {
			g.checkStatement(n.Else)
		}
	case *ir.While:
		g.checkExpression(n.Test)
		g.checkStatement(n.Body)
	case *ir.For:
		if n.Init != nil {
			g.checkStatement(n.Init)
		}
		if n.Test != nil {
			g.checkExpression(n.Test)
		}
		if n.Update != nil {
			g.checkExpression(n.Update)
		}
		g.checkStatement(n.Body)
	case *ir.ForOf:
		g.checkExpression(n.Iterable)
		g.checkStatement(n.Body)
	case *ir.Switch:
		g.checkExpression(n.Discriminant)
		for _, cs := range n.Cases {
			if cs.Test != nil {
				g.checkExpression(cs.Test)
			}
			for _, st := range cs.Statements {
				g.checkStatement(st)
			}
		}
	case *ir.Throw:
		g.checkExpression(n.Value)
	case *ir.Try:
		g.checkStatement(n.Block)
		if n.Catch != nil {
			g.checkStatement(n.Catch.Body)
		}
		if n.Finally != nil {
			g.checkStatement(n.Finally)
		}
	case *ir.VarDecl:
		g.checkType(n.DeclaredType, diagnostics.Location{})
		if n.Value != nil {
			g.checkExpression(n.Value)
		}
	case *ir.FuncDecl:
		if len(n.TypeParams) > 0 {
			g.col.Errorf(diagnostics.PhaseSoundnessGate, diagnostics.CodeEscapingTypeParam, diagnostics.Location{}, n.Name)
		}
		for _, p := range n.Params {
			g.checkType(p.Type, diagnostics.Location{})
		}
		if n.Body != nil {
			g.checkStatement(n.Body)
		}
	case *ir.ClassDecl:
		for _, f := range n.Fields {
			g.checkType(f.Type, diagnostics.Location{})
		}
		for _, m := range n.Methods {
			g.checkStatement(m)
		}
	case *ir.Break, *ir.Continue:
		// nothing to check
	case ir.Expression:
		g.checkExpression(n)
	}
}

func (g *Gate) checkExpression(e ir.Expression) {
	if e == nil {
		return
	}
	g.checkType(e.ExprType(), diagnostics.Location{})
	switch n := e.(type) {
	case *ir.Binary:
		g.checkExpression(n.Left)
		g.checkExpression(n.Right)
	case *ir.Logical:
		g.checkExpression(n.Left)
		g.checkExpression(n.Right)
	case *ir.Unary:
		g.checkExpression(n.Operand)
	case *ir.Update:
		g.checkExpression(n.Operand)
	case *ir.Assign:
		g.checkExpression(n.Target)
		g.checkExpression(n.Value)
	case *ir.Conditional:
		g.checkExpression(n.Test)
		g.checkExpression(n.Consequent)
		g.checkExpression(n.Alternate)
	case *ir.Call:
		g.checkExpression(n.Callee)
		for _, a := range n.Args {
			g.checkExpression(a.Value)
		}
	case *ir.New:
		for _, a := range n.Args {
			g.checkExpression(a.Value)
		}
	case *ir.Member:
		g.checkExpression(n.Object)
	case *ir.Index:
		g.checkExpression(n.Object)
		g.checkExpression(n.Key)
	case *ir.ArrayLit:
		for _, el := range n.Elements {
			g.checkExpression(el)
		}
	case *ir.ObjectLit:
		if n.Type == catalog.NoType {
			g.col.Errorf(diagnostics.PhaseSoundnessGate, diagnostics.CodeUnrepresentableShape, diagnostics.Location{})
		}
		for _, f := range n.Fields {
			g.checkExpression(f.Value)
		}
	case *ir.Lambda:
		if n.Body != nil {
			g.checkStatement(n.Body)
		}
	case *ir.TemplateStr:
		for _, ex := range n.Expressions {
			g.checkExpression(ex)
		}
	case *ir.Await:
		g.checkExpression(n.Argument)
	case *ir.Yield:
		if n.Argument != nil {
			g.checkExpression(n.Argument)
		}
	case *ir.IsType:
		g.checkExpression(n.Argument)
	case *ir.AsInterface:
		g.checkExpression(n.Argument)
	}
}

// checkType rejects a residual `any` (TSN7401); an unregistered TypeId
// makes the catalog lookup raise an ICE. loc is attached when the caller
// has one, and left zero when
// the IR node doesn't carry positional information (a known simplification
// noted in DESIGN.md).
func (g *Gate) checkType(t catalog.TypeId, loc diagnostics.Location) {
	if t == catalog.NoType {
		return
	}
	entry := g.cat.Entry(t)
	if entry.Kind == catalog.KindAny {
		g.col.Errorf(diagnostics.PhaseSoundnessGate, diagnostics.CodeResidualAny, loc)
	}
}
