// Package ir defines the fully-typed intermediate tree the Converter
// produces from a bound ast.Program (spec.md §4.3): every node carries a
// resolved catalog.TypeId instead of unresolved ast.Type syntax, so nothing
// downstream — specializer, soundness gate, the emitter contract — ever
// needs to re-run name resolution. Grounded on the same tagged-interface
// sum-type idiom as internal/catalog and internal/ast (mcgru-funxy's
// typesystem.Type / ast.Node split, applied here to a second, parallel
// tree rather than reused directly, since the IR's nodes are typed where
// the AST's are syntactic).
package ir

import "github.com/tsoniclang/tsonic/internal/catalog"

// Node is the base interface implemented by every IR node.
type Node interface {
	irNode()
}

// Statement is an IR node in statement position.
type Statement interface {
	Node
	irStatementNode()
}

// Expression is an IR node in expression position; every expression node
// carries its resolved Type so the specializer and soundness gate never
// need to re-infer it.
type Expression interface {
	Node
	irStatementNode()
	ExprType() catalog.TypeId
}

// Module is one bound, converted, not-yet-specialized compilation unit.
type Module struct {
	Path       string
	Statements []Statement
}

func (*Module) irNode() {}

// Block is a `{ ... }` sequence.
type Block struct {
	Statements []Statement
}

func (*Block) irNode()          {}
func (*Block) irStatementNode() {}

// ExprStatement wraps an expression evaluated for side effect.
type ExprStatement struct {
	Value Expression
}

func (*ExprStatement) irNode()          {}
func (*ExprStatement) irStatementNode() {}

// Return returns Value (nil for a bare return) from the enclosing function.
type Return struct {
	Value Expression
}

func (*Return) irNode()          {}
func (*Return) irStatementNode() {}

// If is a resolved conditional; NarrowedThen/NarrowedElse record the
// TypeId a discriminated identifier narrows to in each branch, populated by
// internal/convert's type-guard narrowing pass (SPEC_FULL §6.1). The
// soundness gate does not read them; it checks each branch's own
// expression types.
type If struct {
	Test         Expression
	Then         Statement
	Else         Statement
	NarrowedName string
	NarrowedThen catalog.TypeId
	NarrowedElse catalog.TypeId
}

func (*If) irNode()          {}
func (*If) irStatementNode() {}

// While is a resolved while loop.
type While struct {
	Test Expression
	Body Statement
}

func (*While) irNode()          {}
func (*While) irStatementNode() {}

// For is a resolved C-style for loop.
type For struct {
	Init   Statement
	Test   Expression
	Update Expression
	Body   Statement
}

func (*For) irNode()          {}
func (*For) irStatementNode() {}

// ForOf is a resolved for-of loop; ElementType is the catalog type bound to
// Name on each iteration. The converter sets it to `any`; it does not
// derive an element type from the iterable.
type ForOf struct {
	Name        string
	ElementType catalog.TypeId
	Iterable    Expression
	Body        Statement
}

func (*ForOf) irNode()          {}
func (*ForOf) irStatementNode() {}

// SwitchCase is one resolved case/default arm.
type SwitchCase struct {
	Test       Expression // nil for default
	Statements []Statement
}

// Switch is a resolved switch statement.
type Switch struct {
	Discriminant Expression
	Cases        []*SwitchCase
}

func (*Switch) irNode()          {}
func (*Switch) irStatementNode() {}

// Throw throws a resolved exception value.
type Throw struct {
	Value Expression
}

func (*Throw) irNode()          {}
func (*Throw) irStatementNode() {}

// Catch binds the caught exception to Param with catalog type ExceptionType.
type Catch struct {
	Param         string
	ExceptionType catalog.TypeId
	Body          *Block
}

// Try is a resolved try/catch/finally.
type Try struct {
	Block   *Block
	Catch   *Catch
	Finally *Block
}

func (*Try) irNode()          {}
func (*Try) irStatementNode() {}

// Break exits the nearest enclosing loop or switch.
type Break struct{}

func (*Break) irNode()          {}
func (*Break) irStatementNode() {}

// Continue advances the nearest enclosing loop.
type Continue struct{}

func (*Continue) irNode()          {}
func (*Continue) irStatementNode() {}

// VarDecl is a resolved local variable binding; DeclaredType is always
// concrete (never a bare syntax node) once the converter has run.
type VarDecl struct {
	Name         string
	DeclaredType catalog.TypeId
	Value        Expression
}

func (*VarDecl) irNode()          {}
func (*VarDecl) irStatementNode() {}

// Param is a resolved function/method parameter.
type Param struct {
	Name    string
	Type    catalog.TypeId
	Default Expression
	Rest    bool
}

// FuncDecl is a resolved, not-yet-specialized function or method body.
// TypeParams is non-empty only for a generic declaration the specializer
// still needs to monomorphize (spec.md §4.3).
type FuncDecl struct {
	Name       string
	TypeParams []catalog.TypeId
	Params     []*Param
	ReturnType catalog.TypeId
	Body       *Block
	IsAsync    bool
	IsGenerator bool
}

func (*FuncDecl) irNode()          {}
func (*FuncDecl) irStatementNode() {}

// Field is a resolved class/interface field or property.
type Field struct {
	Name     string
	Type     catalog.TypeId
	Static   bool
	Initializer Expression
}

// ClassDecl is a resolved, not-yet-specialized class body.
type ClassDecl struct {
	Name       string
	TypeId     catalog.TypeId
	TypeParams []catalog.TypeId
	Heritage   []catalog.TypeId
	Fields     []*Field
	Methods    []*FuncDecl
}

func (*ClassDecl) irNode()          {}
func (*ClassDecl) irStatementNode() {}
