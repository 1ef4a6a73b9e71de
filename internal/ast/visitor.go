package ast

// Visitor dispatches exhaustively over every concrete node kind. It mirrors
// the teacher's AST Visitor shape (one VisitX per node type, no default
// case) so adding a node forces every visitor implementation to be updated
// rather than silently falling through.
type Visitor interface {
	VisitProgram(n *Program)
	VisitPackageDeclaration(n *PackageDeclaration)
	VisitImportDeclaration(n *ImportDeclaration)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitInterfaceDeclaration(n *InterfaceDeclaration)
	VisitEnumDeclaration(n *EnumDeclaration)
	VisitTypeAliasDeclaration(n *TypeAliasDeclaration)
	VisitVariableDeclaration(n *VariableDeclaration)

	VisitBlockStatement(n *BlockStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitIfStatement(n *IfStatement)
	VisitWhileStatement(n *WhileStatement)
	VisitForStatement(n *ForStatement)
	VisitForOfStatement(n *ForOfStatement)
	VisitSwitchStatement(n *SwitchStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitTryStatement(n *TryStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)

	VisitIdentifier(n *Identifier)
	VisitLiteralExpression(n *LiteralExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitLogicalExpression(n *LogicalExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitUpdateExpression(n *UpdateExpression)
	VisitAssignmentExpression(n *AssignmentExpression)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitCallExpression(n *CallExpression)
	VisitNewExpression(n *NewExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitArrowFunctionExpression(n *ArrowFunctionExpression)
	VisitTemplateLiteral(n *TemplateLiteral)
	VisitSpreadElement(n *SpreadElement)
	VisitAwaitExpression(n *AwaitExpression)
	VisitYieldExpression(n *YieldExpression)
	VisitMarkerExpression(n *MarkerExpression)

	VisitIdentifierPattern(n *IdentifierPattern)
	VisitArrayPattern(n *ArrayPattern)
	VisitObjectPattern(n *ObjectPattern)

	VisitNamedType(n *NamedType)
	VisitUnionType(n *UnionType)
	VisitIntersectionType(n *IntersectionType)
	VisitTupleType(n *TupleType)
	VisitArrayType(n *ArrayType)
	VisitFunctionType(n *FunctionType)
	VisitObjectType(n *ObjectType)
	VisitLiteralType(n *LiteralType)
	VisitMarkerType(n *MarkerType)
}

// BaseVisitor implements Visitor with no-op bodies so callers that only
// care about a handful of node kinds can embed it and override selectively,
// the same pattern the teacher's own partial visitors use.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(n *Program)                             {}
func (BaseVisitor) VisitPackageDeclaration(n *PackageDeclaration)        {}
func (BaseVisitor) VisitImportDeclaration(n *ImportDeclaration)          {}
func (BaseVisitor) VisitFunctionDeclaration(n *FunctionDeclaration)      {}
func (BaseVisitor) VisitClassDeclaration(n *ClassDeclaration)            {}
func (BaseVisitor) VisitInterfaceDeclaration(n *InterfaceDeclaration)    {}
func (BaseVisitor) VisitEnumDeclaration(n *EnumDeclaration)              {}
func (BaseVisitor) VisitTypeAliasDeclaration(n *TypeAliasDeclaration)    {}
func (BaseVisitor) VisitVariableDeclaration(n *VariableDeclaration)      {}

func (BaseVisitor) VisitBlockStatement(n *BlockStatement)           {}
func (BaseVisitor) VisitExpressionStatement(n *ExpressionStatement) {}
func (BaseVisitor) VisitReturnStatement(n *ReturnStatement)         {}
func (BaseVisitor) VisitIfStatement(n *IfStatement)                 {}
func (BaseVisitor) VisitWhileStatement(n *WhileStatement)           {}
func (BaseVisitor) VisitForStatement(n *ForStatement)               {}
func (BaseVisitor) VisitForOfStatement(n *ForOfStatement)           {}
func (BaseVisitor) VisitSwitchStatement(n *SwitchStatement)         {}
func (BaseVisitor) VisitThrowStatement(n *ThrowStatement)           {}
func (BaseVisitor) VisitTryStatement(n *TryStatement)               {}
func (BaseVisitor) VisitBreakStatement(n *BreakStatement)           {}
func (BaseVisitor) VisitContinueStatement(n *ContinueStatement)     {}

func (BaseVisitor) VisitIdentifier(n *Identifier)                           {}
func (BaseVisitor) VisitLiteralExpression(n *LiteralExpression)             {}
func (BaseVisitor) VisitBinaryExpression(n *BinaryExpression)               {}
func (BaseVisitor) VisitLogicalExpression(n *LogicalExpression)             {}
func (BaseVisitor) VisitUnaryExpression(n *UnaryExpression)                 {}
func (BaseVisitor) VisitUpdateExpression(n *UpdateExpression)               {}
func (BaseVisitor) VisitAssignmentExpression(n *AssignmentExpression)       {}
func (BaseVisitor) VisitConditionalExpression(n *ConditionalExpression)     {}
func (BaseVisitor) VisitCallExpression(n *CallExpression)                   {}
func (BaseVisitor) VisitNewExpression(n *NewExpression)                     {}
func (BaseVisitor) VisitMemberExpression(n *MemberExpression)               {}
func (BaseVisitor) VisitArrayLiteral(n *ArrayLiteral)                       {}
func (BaseVisitor) VisitObjectLiteral(n *ObjectLiteral)                     {}
func (BaseVisitor) VisitArrowFunctionExpression(n *ArrowFunctionExpression) {}
func (BaseVisitor) VisitTemplateLiteral(n *TemplateLiteral)                 {}
func (BaseVisitor) VisitSpreadElement(n *SpreadElement)                     {}
func (BaseVisitor) VisitAwaitExpression(n *AwaitExpression)                 {}
func (BaseVisitor) VisitYieldExpression(n *YieldExpression)                 {}
func (BaseVisitor) VisitMarkerExpression(n *MarkerExpression)               {}

func (BaseVisitor) VisitIdentifierPattern(n *IdentifierPattern) {}
func (BaseVisitor) VisitArrayPattern(n *ArrayPattern)           {}
func (BaseVisitor) VisitObjectPattern(n *ObjectPattern)         {}

func (BaseVisitor) VisitNamedType(n *NamedType)               {}
func (BaseVisitor) VisitUnionType(n *UnionType)               {}
func (BaseVisitor) VisitIntersectionType(n *IntersectionType) {}
func (BaseVisitor) VisitTupleType(n *TupleType)               {}
func (BaseVisitor) VisitArrayType(n *ArrayType)               {}
func (BaseVisitor) VisitFunctionType(n *FunctionType)         {}
func (BaseVisitor) VisitObjectType(n *ObjectType)             {}
func (BaseVisitor) VisitLiteralType(n *LiteralType)           {}
func (BaseVisitor) VisitMarkerType(n *MarkerType)             {}
