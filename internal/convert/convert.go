// Package convert implements the IR Converter (spec.md §4.3): it walks a
// bound ast.Program and produces an ir.Module, threading a contextual
// "expected type" through every expression per the contextual typing
// contract (spec.md §4.3, §9) so an integer literal, an object literal, or
// an array literal converts against the type position it actually appears
// in rather than being inferred bottom-up and checked after the fact.
// Grounded on mcgru-funxy's internal/analyzer inference*.go family — same
// exhaustive type-switch-over-node-kind idiom, same "infer/convert with
// context, thread substitution/expected type through recursive calls"
// shape — adapted from a unifying-inference engine to a single
// expected-type-driven conversion pass, since Tsonic's source is already
// fully annotated and there is no unification to perform.
package convert

import (
	"strconv"

	"github.com/tsoniclang/tsonic/internal/ast"
	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
	"github.com/tsoniclang/tsonic/internal/ir"
)

// Converter threads a single catalog and collector across every file being
// converted in one compilation (spec.md §9's ProgramContext threading
// design note; there is deliberately no package-level mutable state).
type Converter struct {
	cat   *catalog.UnifiedTypeCatalog
	col   *diagnostics.Collector
	scope *scope
	types *typeScope

	// genericNames is the set of top-level function/class names declared
	// with type parameters in the module currently being converted,
	// collected up front so a call or `new` site can tell whether its
	// callee resolves to a same-compilation generic (spec.md §3's
	// requiresSpecialization, §4.4) without a forward-reference problem.
	genericNames map[string]bool
}

// New returns a Converter bound to a catalog and diagnostic collector.
func New(cat *catalog.UnifiedTypeCatalog, col *diagnostics.Collector) *Converter {
	return &Converter{cat: cat, col: col, scope: newScope(nil)}
}

// typeScope is scope's analogue for type-parameter names: a flat chain
// mapping a generic declaration's own parameter names ("T", "U") to the
// fresh TypeId minted for them, so a reference to the parameter inside the
// declaration's signature or body resolves to the exact same TypeId the
// Specialization Engine later substitutes (INV-TYPEPARAM). Kept separate
// from scope since type names and value names are different namespaces.
type typeScope struct {
	outer    *typeScope
	bindings map[string]catalog.TypeId
}

func newTypeScope(outer *typeScope) *typeScope {
	return &typeScope{outer: outer, bindings: make(map[string]catalog.TypeId)}
}

func (s *typeScope) define(name string, t catalog.TypeId) {
	s.bindings[name] = t
}

// lookup is safe to call on a nil *typeScope (the Converter's zero value
// before any generic declaration has been entered): the loop condition
// never dereferences a nil receiver.
func (s *typeScope) lookup(name string) (catalog.TypeId, bool) {
	for cur := s; cur != nil; cur = cur.outer {
		if t, ok := cur.bindings[name]; ok {
			return t, true
		}
	}
	return catalog.NoType, false
}

func (c *Converter) pushType() (restore func()) {
	prev := c.types
	c.types = newTypeScope(prev)
	return func() { c.types = prev }
}

// defineTypeParams seeds one declaration's type parameters into the
// current (already-pushed) type scope and returns their TypeIds in
// declaration order for the caller to attach to the IR node.
func (c *Converter) defineTypeParams(params []*ast.TypeParameter) []catalog.TypeId {
	ids := make([]catalog.TypeId, 0, len(params))
	for _, tp := range params {
		id := c.cat.NewTypeParameter(tp.Name)
		c.types.define(tp.Name, id)
		ids = append(ids, id)
	}
	return ids
}

func (c *Converter) isGenericName(name string) bool {
	return name != "" && c.genericNames[name]
}

func identifierName(e ast.Expression) string {
	if id, ok := e.(*ast.Identifier); ok {
		return id.Name
	}
	return ""
}

// collectGenericNames finds every top-level function/class declaration with
// a non-empty type-parameter list, ahead of the main conversion pass, so a
// call appearing textually before its generic callee's own declaration
// still gets marked requiresSpecialization.
func collectGenericNames(stmts []ast.Statement) map[string]bool {
	names := make(map[string]bool)
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.FunctionDeclaration:
			if len(n.TypeParams) > 0 {
				names[n.Name] = true
			}
		case *ast.ClassDeclaration:
			if len(n.TypeParams) > 0 {
				names[n.Name] = true
			}
		}
	}
	return names
}

// scope is a flat chain of local bindings to their resolved catalog type,
// used to resolve Identifier expressions and to drive type-guard narrowing
// (narrow.go) without needing a full symbol table package of its own.
type scope struct {
	outer    *scope
	bindings map[string]catalog.TypeId
}

func newScope(outer *scope) *scope {
	return &scope{outer: outer, bindings: make(map[string]catalog.TypeId)}
}

func (s *scope) define(name string, t catalog.TypeId) {
	s.bindings[name] = t
}

func (s *scope) lookup(name string) (catalog.TypeId, bool) {
	for cur := s; cur != nil; cur = cur.outer {
		if t, ok := cur.bindings[name]; ok {
			return t, true
		}
	}
	return catalog.NoType, false
}

func (c *Converter) push() (restore func()) {
	prev := c.scope
	c.scope = newScope(prev)
	return func() { c.scope = prev }
}

// ConvertProgram converts one bound program into an ir.Module.
func (c *Converter) ConvertProgram(prog *ast.Program) *ir.Module {
	c.genericNames = collectGenericNames(prog.Statements)
	mod := &ir.Module{Path: prog.File}
	for _, s := range prog.Statements {
		mod.Statements = append(mod.Statements, c.convertStatement(s))
	}
	return mod
}

// ResolveTypeSyntax resolves an ast.Type annotation to a catalog.TypeId.
// Nil (absent annotation) resolves to `any`.
func (c *Converter) ResolveTypeSyntax(t ast.Type) catalog.TypeId {
	if t == nil {
		id, _ := c.cat.ResolveTsName("any")
		return id
	}
	switch n := t.(type) {
	case *ast.NamedType:
		// A reference to the enclosing declaration's own type parameter
		// (INV-TYPEPARAM) always wins over a catalog lookup: "T" inside
		// `identity<T>` must resolve to that declaration's TypeId, never to
		// an unrelated catalog entry that happens to share the name.
		if id, ok := c.types.lookup(n.Name); ok {
			return id
		}
		if id, ok := c.cat.ResolveTsName(n.Name); ok {
			return id
		}
		c.col.Errorf(diagnostics.PhaseConverter, diagnostics.CodeUnresolvedReference, n.Pos(), n.Name)
		id, _ := c.cat.ResolveTsName("any")
		return id
	case *ast.ArrayType:
		// Array element types are not yet interned as distinct TypeIds in
		// this minimal catalog seed; callers that need the element type
		// recurse through ResolveTypeSyntax(n.Element) directly instead.
		return c.ResolveTypeSyntax(n.Element)
	case *ast.UnionType:
		if len(n.Members) > 0 {
			return c.ResolveTypeSyntax(n.Members[0])
		}
	case *ast.MarkerType:
		return c.resolveMarkerType(n)
	}
	id, _ := c.cat.ResolveTsName("any")
	return id
}

func (c *Converter) resolveMarkerType(n *ast.MarkerType) catalog.TypeId {
	switch n.Kind {
	case ast.MarkerTypeRef, ast.MarkerTypeOut, ast.MarkerTypeIn, ast.MarkerTypeInRef, ast.MarkerTypeField, ast.MarkerTypeThisArg:
		if n.Argument != nil {
			return c.ResolveTypeSyntax(n.Argument)
		}
	}
	id, _ := c.cat.ResolveTsName("any")
	return id
}

func (c *Converter) convertStatement(s ast.Statement) ir.Statement {
	switch n := s.(type) {
	case *ast.BlockStatement:
		return c.convertBlock(n)
	case *ast.ExpressionStatement:
		return &ir.ExprStatement{Value: c.convertExpr(n.Expression, catalog.NoType)}
	case *ast.ReturnStatement:
		if n.Value == nil {
			return &ir.Return{}
		}
		return &ir.Return{Value: c.convertExpr(n.Value, catalog.NoType)}
	case *ast.IfStatement:
		return c.convertIf(n)
	case *ast.WhileStatement:
		return &ir.While{Test: c.convertExpr(n.Test, catalog.NoType), Body: c.convertStatement(n.Body)}
	case *ast.ForStatement:
		return c.convertFor(n)
	case *ast.ForOfStatement:
		return c.convertForOf(n)
	case *ast.SwitchStatement:
		return c.convertSwitch(n)
	case *ast.ThrowStatement:
		return &ir.Throw{Value: c.convertExpr(n.Value, catalog.NoType)}
	case *ast.TryStatement:
		return c.convertTry(n)
	case *ast.BreakStatement:
		return &ir.Break{}
	case *ast.ContinueStatement:
		return &ir.Continue{}
	case *ast.VariableDeclaration:
		return c.convertVarDecl(n)
	case *ast.FunctionDeclaration:
		return c.convertFuncDecl(n)
	case *ast.ClassDeclaration:
		return c.convertClassDecl(n)
	default:
		diagnostics.Raise(diagnostics.PhaseConverter, "unhandled statement kind %T", s)
		return nil
	}
}

func (c *Converter) convertBlock(b *ast.BlockStatement) *ir.Block {
	defer c.push()()
	out := &ir.Block{}
	for _, s := range b.Statements {
		out.Statements = append(out.Statements, c.convertStatement(s))
	}
	return out
}

func (c *Converter) convertIf(n *ast.IfStatement) *ir.If {
	test := c.convertExpr(n.Test, catalog.NoType)
	name, thenType, elseType := c.narrowGuard(n.Test)

	out := &ir.If{Test: test, NarrowedName: name, NarrowedThen: thenType, NarrowedElse: elseType}

	func() {
		defer c.push()()
		if name != "" && thenType != catalog.NoType {
			c.scope.define(name, thenType)
		}
		out.Then = c.convertStatement(n.Then)
	}()

	if n.Else != nil {
		defer c.push()()
		if name != "" && elseType != catalog.NoType {
			c.scope.define(name, elseType)
		}
		out.Else = c.convertStatement(n.Else)
	}
	return out
}

func (c *Converter) convertFor(n *ast.ForStatement) *ir.For {
	defer c.push()()
	out := &ir.For{}
	if n.Init != nil {
		out.Init = c.convertStatement(n.Init)
	}
	if n.Test != nil {
		out.Test = c.convertExpr(n.Test, catalog.NoType)
	}
	if n.Update != nil {
		out.Update = c.convertExpr(n.Update, catalog.NoType)
	}
	out.Body = c.convertStatement(n.Body)
	return out
}

func (c *Converter) convertForOf(n *ast.ForOfStatement) *ir.ForOf {
	defer c.push()()
	iterable := c.convertExpr(n.Iterable, catalog.NoType)
	anyId, _ := c.cat.ResolveTsName("any")
	elemType := anyId
	c.scope.define(n.Name, elemType)
	return &ir.ForOf{
		Name:        n.Name,
		ElementType: elemType,
		Iterable:    iterable,
		Body:        c.convertStatement(n.Body),
	}
}

func (c *Converter) convertSwitch(n *ast.SwitchStatement) *ir.Switch {
	disc := c.convertExpr(n.Discriminant, catalog.NoType)
	out := &ir.Switch{Discriminant: disc}
	for _, cs := range n.Cases {
		ic := &ir.SwitchCase{}
		if cs.Test != nil {
			ic.Test = c.convertExpr(cs.Test, disc.ExprType())
		}
		func() {
			defer c.push()()
			for _, s := range cs.Statements {
				ic.Statements = append(ic.Statements, c.convertStatement(s))
			}
		}()
		out.Cases = append(out.Cases, ic)
	}
	return out
}

func (c *Converter) convertTry(n *ast.TryStatement) *ir.Try {
	out := &ir.Try{Block: c.convertBlock(n.Block)}
	if n.Catch != nil {
		excId, ok := c.cat.ResolveClrName("System.Exception")
		if !ok {
			excId, _ = c.cat.ResolveTsName("any")
		}
		defer c.push()()
		c.scope.define(n.Catch.Param, excId)
		out.Catch = &ir.Catch{Param: n.Catch.Param, ExceptionType: excId, Body: c.convertBlock(n.Catch.Body)}
	}
	if n.Finally != nil {
		out.Finally = c.convertBlock(n.Finally)
	}
	return out
}

func (c *Converter) convertVarDecl(n *ast.VariableDeclaration) *ir.VarDecl {
	declType := c.ResolveTypeSyntax(n.TypeAnnotation)
	var val ir.Expression
	if n.Value != nil {
		val = c.convertExpr(n.Value, declType)
	}
	c.scope.define(n.Name, declType)
	return &ir.VarDecl{Name: n.Name, DeclaredType: declType, Value: val}
}

func (c *Converter) convertFuncDecl(n *ast.FunctionDeclaration) *ir.FuncDecl {
	defer c.pushType()()
	typeParams := c.defineTypeParams(n.TypeParams)
	defer c.push()()
	returnType := c.ResolveTypeSyntax(n.ReturnType)
	params := make([]*ir.Param, 0, len(n.Params))
	for _, p := range n.Params {
		pt := c.ResolveTypeSyntax(p.Annotation)
		c.scope.define(p.Name, pt)
		var def ir.Expression
		if p.Default != nil {
			def = c.convertExpr(p.Default, pt)
		}
		params = append(params, &ir.Param{Name: p.Name, Type: pt, Default: def, Rest: p.Rest})
	}
	var body *ir.Block
	if n.Body != nil {
		body = c.convertBlock(n.Body)
	}
	return &ir.FuncDecl{
		Name:        n.Name,
		TypeParams:  typeParams,
		Params:      params,
		ReturnType:  returnType,
		Body:        body,
		IsAsync:     n.IsAsync,
		IsGenerator: n.IsGenerator,
	}
}

func (c *Converter) convertClassDecl(n *ast.ClassDeclaration) *ir.ClassDecl {
	defer c.pushType()()
	typeParams := c.defineTypeParams(n.TypeParams)
	out := &ir.ClassDecl{Name: n.Name, TypeParams: typeParams}
	for _, h := range n.Heritage {
		for _, t := range h.Types {
			out.Heritage = append(out.Heritage, c.ResolveTypeSyntax(t))
		}
	}
	for _, m := range n.Members {
		switch m.Kind {
		case ast.MemberMethod, ast.MemberConstructor:
			fn := c.convertMethod(m)
			out.Methods = append(out.Methods, fn)
		default:
			out.Fields = append(out.Fields, &ir.Field{
				Name:   m.Name,
				Type:   c.ResolveTypeSyntax(m.Annotation),
				Static: m.IsStatic,
			})
		}
	}
	return out
}

func (c *Converter) convertMethod(m *ast.ClassMember) *ir.FuncDecl {
	defer c.pushType()()
	typeParams := c.defineTypeParams(m.TypeParams)
	defer c.push()()
	returnType := c.ResolveTypeSyntax(m.ReturnType)
	params := make([]*ir.Param, 0, len(m.Params))
	for _, p := range m.Params {
		pt := c.ResolveTypeSyntax(p.Annotation)
		c.scope.define(p.Name, pt)
		params = append(params, &ir.Param{Name: p.Name, Type: pt, Rest: p.Rest})
	}
	var body *ir.Block
	if m.Body != nil {
		body = c.convertBlock(m.Body)
	}
	return &ir.FuncDecl{Name: m.Name, TypeParams: typeParams, Params: params, ReturnType: returnType, Body: body}
}

// convertExpr converts an expression against an expected type; NoType means
// no contextual expectation is available and the expression's own literal
// form decides (the INV-NUM default of `int` for integer literals).
func (c *Converter) convertExpr(e ast.Expression, expected catalog.TypeId) ir.Expression {
	switch n := e.(type) {
	case *ast.Identifier:
		t, ok := c.scope.lookup(n.Name)
		if !ok {
			t, _ = c.cat.ResolveTsName("any")
		}
		return &ir.Ident{Name: n.Name, Type: t}
	case *ast.LiteralExpression:
		return c.convertLiteral(n, expected)
	case *ast.BinaryExpression:
		return c.convertBinary(n, expected)
	case *ast.LogicalExpression:
		left := c.convertExpr(n.Left, expected)
		right := c.convertExpr(n.Right, expected)
		boolId, _ := c.cat.ResolveTsName("bool")
		t := right.ExprType()
		if n.Operator == "&&" || n.Operator == "||" {
			t = boolId
		}
		return &ir.Logical{Operator: string(n.Operator), Left: left, Right: right, Type: t}
	case *ast.UnaryExpression:
		operand := c.convertExpr(n.Operand, catalog.NoType)
		t := operand.ExprType()
		if n.Operator == "!" {
			t, _ = c.cat.ResolveTsName("bool")
		}
		return &ir.Unary{Operator: string(n.Operator), Operand: operand, Type: t}
	case *ast.UpdateExpression:
		operand := c.convertExpr(n.Operand, catalog.NoType)
		return &ir.Update{Operator: n.Operator, Operand: operand, Prefix: n.Prefix, Type: operand.ExprType()}
	case *ast.AssignmentExpression:
		target := c.convertExpr(n.Target, catalog.NoType)
		value := c.convertExpr(n.Value, target.ExprType())
		c.checkNumericWidening(n.Pos(), value.ExprType(), target.ExprType())
		return &ir.Assign{Operator: n.Operator, Target: target, Value: value, Type: target.ExprType()}
	case *ast.ConditionalExpression:
		test := c.convertExpr(n.Test, catalog.NoType)
		cons := c.convertExpr(n.Consequent, expected)
		alt := c.convertExpr(n.Alternate, expected)
		return &ir.Conditional{Test: test, Consequent: cons, Alternate: alt, Type: cons.ExprType()}
	case *ast.CallExpression:
		return c.convertCall(n, expected)
	case *ast.NewExpression:
		return c.convertNew(n)
	case *ast.MemberExpression:
		return c.convertMember(n)
	case *ast.ArrayLiteral:
		return c.convertArrayLiteral(n, expected)
	case *ast.ObjectLiteral:
		return c.convertObjectLiteral(n, expected)
	case *ast.ArrowFunctionExpression:
		return c.convertArrow(n)
	case *ast.TemplateLiteral:
		return c.convertTemplate(n)
	case *ast.AwaitExpression:
		arg := c.convertExpr(n.Argument, catalog.NoType)
		return &ir.Await{Argument: arg, Type: arg.ExprType()}
	case *ast.YieldExpression:
		return c.convertYield(n)
	case *ast.MarkerExpression:
		return c.convertMarker(n)
	default:
		diagnostics.Raise(diagnostics.PhaseConverter, "unhandled expression kind %T", e)
		return nil
	}
}

func (c *Converter) convertLiteral(n *ast.LiteralExpression, expected catalog.TypeId) ir.Expression {
	switch n.Kind {
	case ast.LiteralInt:
		t := expected
		if t == catalog.NoType {
			t, _ = c.cat.ResolveTsName("int")
		} else if entry := c.cat.Entry(t); entry.Kind != catalog.KindPrimitive {
			t, _ = c.cat.ResolveTsName("int")
		} else if entry.TsName == "double" || entry.TsName == "float" {
			c.col.Errorf(diagnostics.PhaseConverter, diagnostics.CodeIntLiteralToDouble, n.Pos(), n.Raw)
		}
		v, _ := strconv.ParseInt(n.Raw, 10, 64)
		return &ir.IntLiteral{Value: v, Type: t}
	case ast.LiteralFloat:
		t := expected
		if t == catalog.NoType {
			t, _ = c.cat.ResolveTsName("double")
		}
		v, _ := strconv.ParseFloat(n.Raw, 64)
		return &ir.FloatLiteral{Value: v, Type: t}
	case ast.LiteralString:
		t, _ := c.cat.ResolveTsName("string")
		return &ir.StringLiteral{Value: n.Raw, Type: t}
	case ast.LiteralBool:
		t, _ := c.cat.ResolveTsName("bool")
		return &ir.BoolLiteral{Value: n.Raw == "true", Type: t}
	case ast.LiteralNull:
		t := expected
		if t == catalog.NoType {
			t, _ = c.cat.ResolveTsName("any")
		}
		return &ir.NullLiteral{Type: t}
	}
	diagnostics.Raise(diagnostics.PhaseConverter, "unhandled literal kind %d", int(n.Kind))
	return nil
}

func (c *Converter) convertBinary(n *ast.BinaryExpression, expected catalog.TypeId) ir.Expression {
	left := c.convertExpr(n.Left, catalog.NoType)
	right := c.convertExpr(n.Right, left.ExprType())
	resultType := left.ExprType()
	switch n.Operator {
	case ast.OpEq, ast.OpNotEq, ast.OpLt, ast.OpLtEq, ast.OpGt, ast.OpGtEq, ast.OpInstance:
		resultType, _ = c.cat.ResolveTsName("bool")
	}
	return &ir.Binary{Operator: string(n.Operator), Left: left, Right: right, Type: resultType}
}

func (c *Converter) convertCall(n *ast.CallExpression, expected catalog.TypeId) *ir.Call {
	callee := c.convertExpr(n.Callee, catalog.NoType)
	args := make([]*ir.Arg, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		args = append(args, &ir.Arg{Value: c.convertExpr(a.Value, catalog.NoType), Spread: a.Spread})
	}
	var typeArgs []catalog.TypeId
	for _, t := range n.TypeArguments {
		typeArgs = append(typeArgs, c.ResolveTypeSyntax(t))
	}
	resultType := expected
	if resultType == catalog.NoType {
		resultType, _ = c.cat.ResolveTsName("any")
	}
	return &ir.Call{
		Callee:                 callee,
		TypeArgs:               typeArgs,
		RequiresSpecialization: len(typeArgs) > 0 && c.isGenericName(identifierName(n.Callee)),
		Args:                   args,
		Type:                   resultType,
	}
}

func (c *Converter) convertNew(n *ast.NewExpression) *ir.New {
	name := identifierName(n.Callee)
	classType := c.ResolveTypeSyntax(exprAsNamedType(n.Callee))
	args := make([]*ir.Arg, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		args = append(args, &ir.Arg{Value: c.convertExpr(a.Value, catalog.NoType), Spread: a.Spread})
	}
	var typeArgs []catalog.TypeId
	for _, t := range n.TypeArguments {
		typeArgs = append(typeArgs, c.ResolveTypeSyntax(t))
	}
	return &ir.New{
		ClassName:              name,
		ClassType:              classType,
		TypeArgs:               typeArgs,
		RequiresSpecialization: len(typeArgs) > 0 && c.isGenericName(name),
		Args:                   args,
		Type:                   classType,
	}
}

func exprAsNamedType(e ast.Expression) ast.Type {
	if id, ok := e.(*ast.Identifier); ok {
		return &ast.NamedType{Location: id.Location, Name: id.Name}
	}
	return nil
}

func (c *Converter) convertMember(n *ast.MemberExpression) ir.Expression {
	obj := c.convertExpr(n.Object, catalog.NoType)
	if n.Computed {
		idx := c.convertExpr(n.Index, catalog.NoType)
		anyId, _ := c.cat.ResolveTsName("any")
		return &ir.Index{Object: obj, Key: idx, Type: anyId}
	}
	memberType, _ := c.cat.ResolveTsName("any")
	if m, ok := c.cat.LookupMember(obj.ExprType(), n.Property); ok {
		memberType = m.Type
	}
	return &ir.Member{Object: obj, Property: n.Property, Type: memberType}
}

func (c *Converter) convertArrayLiteral(n *ast.ArrayLiteral, expected catalog.TypeId) *ir.ArrayLit {
	anyId, _ := c.cat.ResolveTsName("any")
	elemExpected := anyId
	if expected != catalog.NoType {
		if e := c.cat.Entry(expected); e.Kind == catalog.KindArray {
			elemExpected = e.Element
		}
	}
	var elems []ir.Expression
	elemType := anyId
	for _, el := range n.Elements {
		if el.Value == nil {
			continue
		}
		ce := c.convertExpr(el.Value, elemExpected)
		elems = append(elems, ce)
		elemType = ce.ExprType()
	}
	return &ir.ArrayLit{Elements: elems, ElementType: elemType, Type: expected}
}

func (c *Converter) convertObjectLiteral(n *ast.ObjectLiteral, expected catalog.TypeId) *ir.ObjectLit {
	var fields []*ir.ObjectField
	for _, p := range n.Properties {
		if p.Spread {
			continue
		}
		memberExpected := catalog.NoType
		if expected != catalog.NoType {
			if m, ok := c.cat.LookupMember(expected, p.Key); ok {
				memberExpected = m.Type
			}
		}
		fields = append(fields, &ir.ObjectField{Name: p.Key, Value: c.convertExpr(p.Value, memberExpected)})
	}
	t := expected
	if t == catalog.NoType {
		c.col.Errorf(diagnostics.PhaseConverter, diagnostics.CodeUnrepresentableShape, n.Pos())
	}
	return &ir.ObjectLit{Fields: fields, Type: t}
}

func (c *Converter) convertArrow(n *ast.ArrowFunctionExpression) *ir.Lambda {
	// An arrow expression's own type parameters (rare, but grammatically
	// legal) only need to resolve within its signature/body — arrow
	// functions aren't independently specializable top-level declarations
	// (spec.md §4.3 only names functions and classes), so nothing beyond
	// INV-TYPEPARAM resolution is threaded onto ir.Lambda.
	defer c.pushType()()
	c.defineTypeParams(n.TypeParams)
	defer c.push()()
	returnType := c.ResolveTypeSyntax(n.ReturnType)
	params := make([]*ir.Param, 0, len(n.Params))
	for _, p := range n.Params {
		pt := c.ResolveTypeSyntax(p.Annotation)
		c.scope.define(p.Name, pt)
		params = append(params, &ir.Param{Name: p.Name, Type: pt, Rest: p.Rest})
	}
	var body *ir.Block
	if n.Body != nil {
		body = c.convertBlock(n.Body)
	} else if n.ExprBody != nil {
		body = &ir.Block{Statements: []ir.Statement{&ir.Return{Value: c.convertExpr(n.ExprBody, returnType)}}}
	}
	fnId, _ := c.cat.ResolveTsName("any")
	return &ir.Lambda{Params: params, ReturnType: returnType, Body: body, Type: fnId}
}

func (c *Converter) convertTemplate(n *ast.TemplateLiteral) *ir.TemplateStr {
	strId, _ := c.cat.ResolveTsName("string")
	exprs := make([]ir.Expression, 0, len(n.Expressions))
	for _, e := range n.Expressions {
		exprs = append(exprs, c.convertExpr(e, catalog.NoType))
	}
	return &ir.TemplateStr{Quasis: n.Quasis, Expressions: exprs, Type: strId}
}

func (c *Converter) convertYield(n *ast.YieldExpression) *ir.Yield {
	anyId, _ := c.cat.ResolveTsName("any")
	var arg ir.Expression
	if n.Argument != nil {
		arg = c.convertExpr(n.Argument, catalog.NoType)
	}
	return &ir.Yield{Argument: arg, Delegate: n.Delegate, Type: anyId}
}

func (c *Converter) convertMarker(n *ast.MarkerExpression) ir.Expression {
	target := c.ResolveTypeSyntax(n.TypeArg)
	switch n.Kind {
	case ast.MarkerDefaultOf:
		return &ir.DefaultOf{Type: target}
	case ast.MarkerIsType:
		boolId, _ := c.cat.ResolveTsName("bool")
		return &ir.IsType{Argument: c.convertExpr(n.Argument, catalog.NoType), Target: target, Type: boolId}
	case ast.MarkerAsInterface:
		return &ir.AsInterface{Argument: c.convertExpr(n.Argument, catalog.NoType), Target: target, Type: target}
	}
	diagnostics.Raise(diagnostics.PhaseConverter, "unhandled marker kind %d", int(n.Kind))
	return nil
}

func (c *Converter) checkNumericWidening(loc diagnostics.Location, from, to catalog.TypeId) {
	if from == catalog.NoType || to == catalog.NoType || from == to {
		return
	}
	fe, te := c.cat.Entry(from), c.cat.Entry(to)
	if fe.Kind != catalog.KindPrimitive || te.Kind != catalog.KindPrimitive {
		return
	}
	if !c.cat.NumericWidens(fe.TsName, te.TsName) && fe.TsName != te.TsName {
		if _, ok := numericNames[fe.TsName]; ok {
			if _, ok2 := numericNames[te.TsName]; ok2 {
				c.col.Errorf(diagnostics.PhaseConverter, diagnostics.CodeNumericWideningLost, loc, fe.TsName, te.TsName)
			}
		}
	}
}

var numericNames = map[string]bool{
	"sbyte": true, "byte": true, "short": true, "ushort": true,
	"int": true, "uint": true, "long": true, "ulong": true,
	"float": true, "double": true,
}
