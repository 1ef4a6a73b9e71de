package ast

import "github.com/tsoniclang/tsonic/internal/diagnostics"

// NamedType references a declared type by name, with optional generic
// arguments: `Foo`, `Array<string>`, `Map<K, V>`.
type NamedType struct {
	Location  diagnostics.Location
	Name      string
	Arguments []Type
}

func (t *NamedType) Pos() diagnostics.Location { return t.Location }
func (t *NamedType) Accept(v Visitor)          { v.VisitNamedType(t) }
func (t *NamedType) typeNode()                 {}

// UnionType is `A | B | ...`.
type UnionType struct {
	Location diagnostics.Location
	Members  []Type
}

func (t *UnionType) Pos() diagnostics.Location { return t.Location }
func (t *UnionType) Accept(v Visitor)          { v.VisitUnionType(t) }
func (t *UnionType) typeNode()                 {}

// IntersectionType is `A & B & ...`.
type IntersectionType struct {
	Location diagnostics.Location
	Members  []Type
}

func (t *IntersectionType) Pos() diagnostics.Location { return t.Location }
func (t *IntersectionType) Accept(v Visitor)          { v.VisitIntersectionType(t) }
func (t *IntersectionType) typeNode()                 {}

// TupleType is a fixed-length, positionally-typed `[A, B, ...]`.
type TupleType struct {
	Location diagnostics.Location
	Elements []Type
}

func (t *TupleType) Pos() diagnostics.Location { return t.Location }
func (t *TupleType) Accept(v Visitor)          { v.VisitTupleType(t) }
func (t *TupleType) typeNode()                 {}

// ArrayType is `T[]`.
type ArrayType struct {
	Location diagnostics.Location
	Element  Type
}

func (t *ArrayType) Pos() diagnostics.Location { return t.Location }
func (t *ArrayType) Accept(v Visitor)          { v.VisitArrayType(t) }
func (t *ArrayType) typeNode()                 {}

// FunctionType is `(params) => ReturnType`.
type FunctionType struct {
	Location   diagnostics.Location
	TypeParams []*TypeParameter
	Params     []*Parameter
	ReturnType Type
}

func (t *FunctionType) Pos() diagnostics.Location { return t.Location }
func (t *FunctionType) Accept(v Visitor)          { v.VisitFunctionType(t) }
func (t *FunctionType) typeNode()                 {}

// ObjectTypeMember is one property or index signature of an anonymous
// object type.
type ObjectTypeMember struct {
	Location diagnostics.Location
	Name     string
	Optional bool
	Annotation Type

	// IsIndexSignature marks a `[key: KeyType]: Annotation` member; Name
	// then holds the index parameter's name rather than a property key.
	IsIndexSignature bool
	KeyType          Type
}

// ObjectType is an anonymous `{ a: T; b?: U }` shape. The soundness gate
// (spec.md §4.3/§7) rejects these once they reach a position requiring a
// concrete, representable emitter target unless the validator already
// resolved them to a generated facade type.
type ObjectType struct {
	Location diagnostics.Location
	Members  []*ObjectTypeMember
}

func (t *ObjectType) Pos() diagnostics.Location { return t.Location }
func (t *ObjectType) Accept(v Visitor)          { v.VisitObjectType(t) }
func (t *ObjectType) typeNode()                 {}

// LiteralType is a single-value type such as `"a"`, `42`, or `true`,
// generalizing LiteralExpression's kinds into type position.
type LiteralType struct {
	Location diagnostics.Location
	Kind     LiteralKind
	Raw      string
}

func (t *LiteralType) Pos() diagnostics.Location { return t.Location }
func (t *LiteralType) Accept(v Visitor)          { v.VisitLiteralType(t) }
func (t *LiteralType) typeNode()                 {}

// MarkerTypeKind identifies one of the privileged core-language marker
// types from spec.md §6 (`struct`, `field<T>`, `thisarg<T>`, `ref<T>`,
// `out<T>`, `in<T>`, `inref<T>`) that annotate CLR-facing value/passing
// semantics rather than naming an ordinary declared type.
type MarkerTypeKind int

const (
	MarkerTypeStruct MarkerTypeKind = iota
	MarkerTypeField
	MarkerTypeThisArg
	MarkerTypeRef
	MarkerTypeOut
	MarkerTypeIn
	MarkerTypeInRef
)

// MarkerType is one of the privileged marker type forms. `struct` takes no
// argument; the others wrap exactly one type argument.
type MarkerType struct {
	Location diagnostics.Location
	Kind     MarkerTypeKind
	Argument Type // nil for MarkerTypeStruct
}

func (t *MarkerType) Pos() diagnostics.Location { return t.Location }
func (t *MarkerType) Accept(v Visitor)          { v.VisitMarkerType(t) }
func (t *MarkerType) typeNode()                 {}
