package ir

import "github.com/tsoniclang/tsonic/internal/catalog"

// Ident is a resolved reference to a local, parameter, or field.
type Ident struct {
	Name string
	Type catalog.TypeId
}

func (*Ident) irNode()              {}
func (*Ident) irStatementNode()     {}
func (e *Ident) ExprType() catalog.TypeId { return e.Type }

// IntLiteral is a resolved integer literal; Type records which of the
// numeric ladder's concrete types the contextual expected type (or the
// INV-NUM default of `int`) assigned it.
type IntLiteral struct {
	Value int64
	Type  catalog.TypeId
}

func (*IntLiteral) irNode()              {}
func (*IntLiteral) irStatementNode()     {}
func (e *IntLiteral) ExprType() catalog.TypeId { return e.Type }

// FloatLiteral is a resolved floating-point literal.
type FloatLiteral struct {
	Value float64
	Type  catalog.TypeId
}

func (*FloatLiteral) irNode()              {}
func (*FloatLiteral) irStatementNode()     {}
func (e *FloatLiteral) ExprType() catalog.TypeId { return e.Type }

// StringLiteral is a resolved string literal.
type StringLiteral struct {
	Value string
	Type  catalog.TypeId
}

func (*StringLiteral) irNode()              {}
func (*StringLiteral) irStatementNode()     {}
func (e *StringLiteral) ExprType() catalog.TypeId { return e.Type }

// BoolLiteral is a resolved boolean literal.
type BoolLiteral struct {
	Value bool
	Type  catalog.TypeId
}

func (*BoolLiteral) irNode()              {}
func (*BoolLiteral) irStatementNode()     {}
func (e *BoolLiteral) ExprType() catalog.TypeId { return e.Type }

// NullLiteral is a resolved null literal against a nullable catalog type.
type NullLiteral struct {
	Type catalog.TypeId
}

func (*NullLiteral) irNode()              {}
func (*NullLiteral) irStatementNode()     {}
func (e *NullLiteral) ExprType() catalog.TypeId { return e.Type }

// Binary is a resolved binary operation.
type Binary struct {
	Operator string
	Left     Expression
	Right    Expression
	Type     catalog.TypeId
}

func (*Binary) irNode()              {}
func (*Binary) irStatementNode()     {}
func (e *Binary) ExprType() catalog.TypeId { return e.Type }

// Logical is a resolved short-circuiting logical expression.
type Logical struct {
	Operator string
	Left     Expression
	Right    Expression
	Type     catalog.TypeId
}

func (*Logical) irNode()              {}
func (*Logical) irStatementNode()     {}
func (e *Logical) ExprType() catalog.TypeId { return e.Type }

// Unary is a resolved prefix unary operation.
type Unary struct {
	Operator string
	Operand  Expression
	Type     catalog.TypeId
}

func (*Unary) irNode()              {}
func (*Unary) irStatementNode()     {}
func (e *Unary) ExprType() catalog.TypeId { return e.Type }

// Update is a resolved ++/-- expression.
type Update struct {
	Operator string
	Operand  Expression
	Prefix   bool
	Type     catalog.TypeId
}

func (*Update) irNode()              {}
func (*Update) irStatementNode()     {}
func (e *Update) ExprType() catalog.TypeId { return e.Type }

// Assign is a resolved (possibly compound) assignment.
type Assign struct {
	Operator string
	Target   Expression
	Value    Expression
	Type     catalog.TypeId
}

func (*Assign) irNode()              {}
func (*Assign) irStatementNode()     {}
func (e *Assign) ExprType() catalog.TypeId { return e.Type }

// Conditional is a resolved ternary.
type Conditional struct {
	Test       Expression
	Consequent Expression
	Alternate  Expression
	Type       catalog.TypeId
}

func (*Conditional) irNode()              {}
func (*Conditional) irStatementNode()     {}
func (e *Conditional) ExprType() catalog.TypeId { return e.Type }

// Arg is one resolved call argument.
type Arg struct {
	Value  Expression
	Spread bool
}

// Call is a resolved call expression. TypeArgs is the explicit generic
// argument list (type arguments are not inferred) the Specialization Engine keys its monomorphized
// clone on (spec.md §4.3's call-site collection); it is empty for a
// non-generic callee. RequiresSpecialization marks a call against a
// same-compilation generic declaration with concrete type arguments, set by
// the converter (spec.md §3, §4.4) so the specializer's collection pass
// never has to re-derive genericity from the callee itself.
type Call struct {
	Callee                 Expression
	TypeArgs               []catalog.TypeId
	RequiresSpecialization bool
	Args                   []*Arg
	Type                   catalog.TypeId
}

func (*Call) irNode()              {}
func (*Call) irStatementNode()     {}
func (e *Call) ExprType() catalog.TypeId { return e.Type }

// New is a resolved object construction. ClassName carries the
// syntactic callee name (rather than relying on ClassType's catalog entry)
// so the specializer can key a `new` call-site against a same-compilation
// generic class even where the catalog has no independent name lookup for
// it; RequiresSpecialization mirrors Call's flag.
type New struct {
	ClassName              string
	ClassType              catalog.TypeId
	TypeArgs               []catalog.TypeId
	RequiresSpecialization bool
	Args                   []*Arg
	Type                   catalog.TypeId
}

func (*New) irNode()              {}
func (*New) irStatementNode()     {}
func (e *New) ExprType() catalog.TypeId { return e.Type }

// Member is a resolved property/field/method-group access.
type Member struct {
	Object   Expression
	Property string
	Type     catalog.TypeId
}

func (*Member) irNode()              {}
func (*Member) irStatementNode()     {}
func (e *Member) ExprType() catalog.TypeId { return e.Type }

// Index is a resolved computed `[expr]` access.
type Index struct {
	Object Expression
	Key    Expression
	Type   catalog.TypeId
}

func (*Index) irNode()              {}
func (*Index) irStatementNode()     {}
func (e *Index) ExprType() catalog.TypeId { return e.Type }

// ArrayLit is a resolved array literal. Each element is converted against
// the contextual array type's element type; ElementType is the type of the
// last element (`any` for an empty literal), and elements are not unified.
type ArrayLit struct {
	Elements    []Expression
	ElementType catalog.TypeId
	Type        catalog.TypeId
}

func (*ArrayLit) irNode()              {}
func (*ArrayLit) irStatementNode()     {}
func (e *ArrayLit) ExprType() catalog.TypeId { return e.Type }

// ObjectField is one resolved key/value pair of an object literal lowered
// against a generated facade type (spec.md §4.3).
type ObjectField struct {
	Name  string
	Value Expression
}

// ObjectLit is a resolved object literal, always carrying a concrete facade
// Type — the soundness gate rejects any that still reach it untyped
// (TSN7402).
type ObjectLit struct {
	Fields []*ObjectField
	Type   catalog.TypeId
}

func (*ObjectLit) irNode()              {}
func (*ObjectLit) irStatementNode()     {}
func (e *ObjectLit) ExprType() catalog.TypeId { return e.Type }

// Lambda is a resolved arrow function converted to a delegate/closure
// value.
type Lambda struct {
	Params     []*Param
	ReturnType catalog.TypeId
	Body       *Block
	Type       catalog.TypeId
}

func (*Lambda) irNode()              {}
func (*Lambda) irStatementNode()     {}
func (e *Lambda) ExprType() catalog.TypeId { return e.Type }

// TemplateStr is a resolved template-literal interpolation; the converter
// keeps its quasis and interpolated expressions side by side.
type TemplateStr struct {
	Quasis      []string
	Expressions []Expression
	Type        catalog.TypeId
}

func (*TemplateStr) irNode()              {}
func (*TemplateStr) irStatementNode()     {}
func (e *TemplateStr) ExprType() catalog.TypeId { return e.Type }

// Await suspends on a Task-returning expression.
type Await struct {
	Argument Expression
	Type     catalog.TypeId
}

func (*Await) irNode()              {}
func (*Await) irStatementNode()     {}
func (e *Await) ExprType() catalog.TypeId { return e.Type }

// Yield is the lowered form of a generator's yield expression. The
// converter sets Type to `any`, and it does not model the discarded
// argument of a generator's first next() call.
type Yield struct {
	Argument Expression
	Delegate bool
	Type     catalog.TypeId
}

func (*Yield) irNode()              {}
func (*Yield) irStatementNode()     {}
func (e *Yield) ExprType() catalog.TypeId { return e.Type }

// DefaultOf is the lowered form of `defaultof<T>()`.
type DefaultOf struct {
	Type catalog.TypeId
}

func (*DefaultOf) irNode()              {}
func (*DefaultOf) irStatementNode()     {}
func (e *DefaultOf) ExprType() catalog.TypeId { return e.Type }

// IsType is the lowered form of `istype<T>(expr)`; always resolves to the
// boolean primitive.
type IsType struct {
	Argument Expression
	Target   catalog.TypeId
	Type     catalog.TypeId
}

func (*IsType) irNode()              {}
func (*IsType) irStatementNode()     {}
func (e *IsType) ExprType() catalog.TypeId { return e.Type }

// AsInterface is the lowered form of `asinterface<T>(expr)`.
type AsInterface struct {
	Argument Expression
	Target   catalog.TypeId
	Type     catalog.TypeId
}

func (*AsInterface) irNode()              {}
func (*AsInterface) irStatementNode()     {}
func (e *AsInterface) ExprType() catalog.TypeId { return e.Type }
