// Package validate implements the Validator (spec.md §4.3, §7): a pass over
// a bound ast.Program that rejects the syntactic forms the accepted subset
// explicitly forbids — dynamic import(), import.meta,
// promise-chain methods, recursive structural aliases, forbidden utility
// types as generic arguments, duplicate named exports — before conversion
// ever sees them, so the Converter can assume every node it walks is
// already legal. Grounded on mcgru-funxy's internal/analyzer declarations.go
// duplicate-detection pass and exhaustiveness.go's ast.Visitor-based sweep.
package validate

import (
	"github.com/tsoniclang/tsonic/internal/ast"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
)

// forbiddenUtilityTypes are generic utility type names the accepted subset
// does not support as a type argument (spec.md §6's restriction list).
var forbiddenUtilityTypes = map[string]bool{
	"Partial": true, "Required": true, "Readonly": true,
	"Pick": true, "Omit": true, "Record": true,
	"Exclude": true, "Extract": true, "NonNullable": true,
}

// promiseChainMethods are Promise prototype methods the accepted subset
// forbids in favor of `await` (spec.md §6).
var promiseChainMethods = map[string]bool{
	"then": true, "catch": true, "finally": true,
}

// Validator walks a program and appends every violation it finds to a
// shared collector; it never stops at the first error (spec.md §7 wants as
// complete a diagnostic set as possible per compilation).
type Validator struct {
	col *diagnostics.Collector

	// exportedNames tracks named exports already seen in the current
	// package declaration, to catch TSN2011 duplicates.
	exportedNames map[string]bool
	// aliasesByName maps every type alias name seen so far to its aliased
	// type, so checkRecursiveAlias can detect TSN2004 recursive structural
	// aliases.
	aliasesByName map[string]ast.Type
}

// New returns a Validator reporting into col.
func New(col *diagnostics.Collector) *Validator {
	return &Validator{col: col, exportedNames: make(map[string]bool), aliasesByName: make(map[string]ast.Type)}
}

// Validate walks prog and reports every violation found; it is safe to call
// repeatedly across the modules of one compilation with the same Validator
// to accumulate the alias table, since the accepted subset allows type
// aliases to reference aliases declared in other modules.
func (v *Validator) Validate(prog *ast.Program) {
	if prog.Package != nil {
		v.validatePackage(prog.Package)
	}
	for _, s := range prog.Statements {
		if alias, ok := s.(*ast.TypeAliasDeclaration); ok {
			v.aliasesByName[alias.Name] = alias.Value
		}
	}
	for _, s := range prog.Statements {
		v.validateStatement(s)
	}
	for _, alias := range prog.Statements {
		if a, ok := alias.(*ast.TypeAliasDeclaration); ok {
			v.checkRecursiveAlias(a.Name, a.Value, make(map[string]bool))
		}
	}
}

func (v *Validator) validatePackage(p *ast.PackageDeclaration) {
	v.exportedNames = make(map[string]bool)
	for _, exp := range p.Exports {
		if exp.IsReexport() {
			continue
		}
		if v.exportedNames[exp.Symbol] {
			v.col.Errorf(diagnostics.PhaseValidator, diagnostics.CodeDuplicateNamedExport, p.Pos(), exp.Symbol)
			continue
		}
		v.exportedNames[exp.Symbol] = true
	}
}

func (v *Validator) checkRecursiveAlias(name string, t ast.Type, visiting map[string]bool) {
	if t == nil {
		return
	}
	switch n := t.(type) {
	case *ast.NamedType:
		under, ok := v.aliasesByName[n.Name]
		if !ok {
			return
		}
		if visiting[n.Name] {
			v.col.Errorf(diagnostics.PhaseValidator, diagnostics.CodeRecursiveAlias, t.Pos(), name)
			return
		}
		visiting[n.Name] = true
		v.checkRecursiveAlias(n.Name, under, visiting)
		delete(visiting, n.Name)
	case *ast.UnionType:
		for _, m := range n.Members {
			v.checkRecursiveAlias(name, m, visiting)
		}
	case *ast.IntersectionType:
		for _, m := range n.Members {
			v.checkRecursiveAlias(name, m, visiting)
		}
	case *ast.ArrayType:
		v.checkRecursiveAlias(name, n.Element, visiting)
	case *ast.TupleType:
		for _, e := range n.Elements {
			v.checkRecursiveAlias(name, e, visiting)
		}
	}
}

// validateStatement recurses through every statement form looking for the
// forbidden constructs; it is not a full ast.Visitor implementation because
// the restrictions it enforces only ever appear in a handful of positions.
func (v *Validator) validateStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.BlockStatement:
		for _, st := range n.Statements {
			v.validateStatement(st)
		}
	case *ast.ExpressionStatement:
		v.validateExpression(n.Expression)
	case *ast.ReturnStatement:
		if n.Value != nil {
			v.validateExpression(n.Value)
		}
	case *ast.IfStatement:
		v.validateExpression(n.Test)
		v.validateStatement(n.Then)
		if n.Else != nil {
			v.validateStatement(n.Else)
		}
	case *ast.WhileStatement:
		v.validateExpression(n.Test)
		v.validateStatement(n.Body)
	case *ast.ForStatement:
		if n.Test != nil {
			v.validateExpression(n.Test)
		}
		v.validateStatement(n.Body)
	case *ast.ForOfStatement:
		v.validateExpression(n.Iterable)
		v.validateStatement(n.Body)
	case *ast.SwitchStatement:
		v.validateExpression(n.Discriminant)
		for _, cs := range n.Cases {
			for _, st := range cs.Statements {
				v.validateStatement(st)
			}
		}
	case *ast.ThrowStatement:
		v.validateExpression(n.Value)
	case *ast.TryStatement:
		for _, st := range n.Block.Statements {
			v.validateStatement(st)
		}
		if n.Catch != nil {
			for _, st := range n.Catch.Body.Statements {
				v.validateStatement(st)
			}
		}
		if n.Finally != nil {
			for _, st := range n.Finally.Statements {
				v.validateStatement(st)
			}
		}
	case *ast.VariableDeclaration:
		if n.Value != nil {
			v.validateExpression(n.Value)
		}
		v.validateTypeArgs(n.TypeAnnotation)
	case *ast.FunctionDeclaration:
		for _, p := range n.Params {
			v.validateTypeArgs(p.Annotation)
		}
		v.validateTypeArgs(n.ReturnType)
		if n.Body != nil {
			for _, st := range n.Body.Statements {
				v.validateStatement(st)
			}
		}
	case *ast.ClassDeclaration:
		for _, m := range n.Members {
			if m.Body != nil {
				for _, st := range m.Body.Statements {
					v.validateStatement(st)
				}
			}
		}
	}
}

func (v *Validator) validateExpression(e ast.Expression) {
	switch n := e.(type) {
	case *ast.CallExpression:
		if id, ok := n.Callee.(*ast.Identifier); ok && id.Name == "import" {
			v.col.Errorf(diagnostics.PhaseValidator, diagnostics.CodeDynamicImport, n.Pos())
		}
		if mem, ok := n.Callee.(*ast.MemberExpression); ok && !mem.Computed && promiseChainMethods[mem.Property] {
			v.col.Errorf(diagnostics.PhaseValidator, diagnostics.CodePromiseChain, n.Pos(), mem.Property)
		}
		for _, t := range n.TypeArguments {
			v.validateTypeArgs(t)
		}
		v.validateExpression(n.Callee)
		for _, a := range n.Arguments {
			v.validateExpression(a.Value)
		}
	case *ast.MemberExpression:
		if id, ok := n.Object.(*ast.Identifier); ok && id.Name == "import" && n.Property == "meta" {
			v.col.Errorf(diagnostics.PhaseValidator, diagnostics.CodeImportMeta, n.Pos())
		}
		v.validateExpression(n.Object)
	case *ast.BinaryExpression:
		v.validateExpression(n.Left)
		v.validateExpression(n.Right)
	case *ast.LogicalExpression:
		v.validateExpression(n.Left)
		v.validateExpression(n.Right)
	case *ast.UnaryExpression:
		v.validateExpression(n.Operand)
	case *ast.AssignmentExpression:
		v.validateExpression(n.Target)
		v.validateExpression(n.Value)
	case *ast.ConditionalExpression:
		v.validateExpression(n.Test)
		v.validateExpression(n.Consequent)
		v.validateExpression(n.Alternate)
	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			if el.Value != nil {
				v.validateExpression(el.Value)
			}
		}
	case *ast.ObjectLiteral:
		for _, p := range n.Properties {
			if p.Value != nil {
				v.validateExpression(p.Value)
			}
		}
	case *ast.AwaitExpression:
		v.validateExpression(n.Argument)
	}
}

// validateTypeArgs walks a type annotation looking for a forbidden utility
// type used as a generic argument (TSN2010).
func (v *Validator) validateTypeArgs(t ast.Type) {
	named, ok := t.(*ast.NamedType)
	if !ok {
		return
	}
	if forbiddenUtilityTypes[named.Name] {
		v.col.Errorf(diagnostics.PhaseValidator, diagnostics.CodeForbiddenUtilType, named.Pos(), named.Name)
	}
	for _, arg := range named.Arguments {
		v.validateTypeArgs(arg)
	}
}
