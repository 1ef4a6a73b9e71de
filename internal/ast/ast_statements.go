package ast

import "github.com/tsoniclang/tsonic/internal/diagnostics"

// BlockStatement is a `{ ... }` sequence; it introduces a scope for the IR
// converter (spec.md §4.4).
type BlockStatement struct {
	Location   diagnostics.Location
	Statements []Statement
}

func (s *BlockStatement) Pos() diagnostics.Location { return s.Location }
func (s *BlockStatement) Accept(v Visitor)          { v.VisitBlockStatement(s) }
func (s *BlockStatement) statementNode()            {}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Location   diagnostics.Location
	Expression Expression
}

func (s *ExpressionStatement) Pos() diagnostics.Location { return s.Location }
func (s *ExpressionStatement) Accept(v Visitor)          { v.VisitExpressionStatement(s) }
func (s *ExpressionStatement) statementNode()            {}

// ReturnStatement is a `return` statement. The converter converts Value
// without an expected type; the enclosing function's declared return type
// is not threaded into it.
type ReturnStatement struct {
	Location diagnostics.Location
	Value    Expression // nil for a bare `return;`
}

func (s *ReturnStatement) Pos() diagnostics.Location { return s.Location }
func (s *ReturnStatement) Accept(v Visitor)          { v.VisitReturnStatement(s) }
func (s *ReturnStatement) statementNode()            {}

// IfStatement is a conditional branch; type-guard narrowing (spec.md §9,
// SPEC_FULL §6.1) applies to the branches when Test recognizes a guard form.
type IfStatement struct {
	Location  diagnostics.Location
	Test      Expression
	Then      Statement
	Else      Statement // nil if there is no else clause
}

func (s *IfStatement) Pos() diagnostics.Location { return s.Location }
func (s *IfStatement) Accept(v Visitor)          { v.VisitIfStatement(s) }
func (s *IfStatement) statementNode()            {}

// WhileStatement is a `while (...) ...` loop.
type WhileStatement struct {
	Location diagnostics.Location
	Test     Expression
	Body     Statement
}

func (s *WhileStatement) Pos() diagnostics.Location { return s.Location }
func (s *WhileStatement) Accept(v Visitor)          { v.VisitWhileStatement(s) }
func (s *WhileStatement) statementNode()            {}

// ForStatement is a classic C-style `for (init; test; update) ...` loop.
type ForStatement struct {
	Location diagnostics.Location
	Init     Statement // nil, ExpressionStatement, or VariableDeclaration wrapped as statement
	Test     Expression
	Update   Expression
	Body     Statement
}

func (s *ForStatement) Pos() diagnostics.Location { return s.Location }
func (s *ForStatement) Accept(v Visitor)          { v.VisitForStatement(s) }
func (s *ForStatement) statementNode()            {}

// ForOfStatement is a `for (const x of iterable) ...` loop. Yield
// expressions may appear inside the header position per SPEC_FULL §6.1.
type ForOfStatement struct {
	Location diagnostics.Location
	Kind     VariableKind
	Name     string
	Pattern  Pattern
	Iterable Expression
	Body     Statement
}

func (s *ForOfStatement) Pos() diagnostics.Location { return s.Location }
func (s *ForOfStatement) Accept(v Visitor)          { v.VisitForOfStatement(s) }
func (s *ForOfStatement) statementNode()            {}

// SwitchCase is one `case`/`default` arm of a switch statement.
type SwitchCase struct {
	Location   diagnostics.Location
	Test       Expression // nil for `default:`
	Statements []Statement
}

// SwitchStatement is a `switch (...) { ... }` statement.
type SwitchStatement struct {
	Location     diagnostics.Location
	Discriminant Expression
	Cases        []*SwitchCase
}

func (s *SwitchStatement) Pos() diagnostics.Location { return s.Location }
func (s *SwitchStatement) Accept(v Visitor)          { v.VisitSwitchStatement(s) }
func (s *SwitchStatement) statementNode()            {}

// ThrowStatement throws an exception value.
type ThrowStatement struct {
	Location diagnostics.Location
	Value    Expression
}

func (s *ThrowStatement) Pos() diagnostics.Location { return s.Location }
func (s *ThrowStatement) Accept(v Visitor)          { v.VisitThrowStatement(s) }
func (s *ThrowStatement) statementNode()            {}

// CatchClause binds the caught exception name to the catalog's foreign
// Exception type (spec.md §4.4), or to `any` when no loaded assembly
// registers System.Exception.
type CatchClause struct {
	Location diagnostics.Location
	Param    string
	Body     *BlockStatement
}

// TryStatement is a `try { } catch (e) { } finally { }` statement.
type TryStatement struct {
	Location diagnostics.Location
	Block    *BlockStatement
	Catch    *CatchClause // nil if there is no catch clause
	Finally  *BlockStatement // nil if there is no finally clause
}

func (s *TryStatement) Pos() diagnostics.Location { return s.Location }
func (s *TryStatement) Accept(v Visitor)          { v.VisitTryStatement(s) }
func (s *TryStatement) statementNode()            {}

// BreakStatement exits the nearest enclosing loop or switch.
type BreakStatement struct {
	Location diagnostics.Location
	Label    string
}

func (s *BreakStatement) Pos() diagnostics.Location { return s.Location }
func (s *BreakStatement) Accept(v Visitor)          { v.VisitBreakStatement(s) }
func (s *BreakStatement) statementNode()            {}

// ContinueStatement advances the nearest enclosing loop.
type ContinueStatement struct {
	Location diagnostics.Location
	Label    string
}

func (s *ContinueStatement) Pos() diagnostics.Location { return s.Location }
func (s *ContinueStatement) Accept(v Visitor)          { v.VisitContinueStatement(s) }
func (s *ContinueStatement) statementNode()            {}

// These assertions check that the declaration forms (FunctionDeclaration,
// ClassDeclaration, etc.) also serve as top-level Statements without
// duplicating their Accept/Pos methods; each already implements Statement.
var (
	_ Statement = (*FunctionDeclaration)(nil)
	_ Statement = (*ClassDeclaration)(nil)
	_ Statement = (*InterfaceDeclaration)(nil)
	_ Statement = (*EnumDeclaration)(nil)
	_ Statement = (*TypeAliasDeclaration)(nil)
	_ Statement = (*VariableDeclaration)(nil)
	_ Statement = (*ImportDeclaration)(nil)
	_ Statement = (*PackageDeclaration)(nil)
)
