// Package ast defines the node set for the strict, statically-typed source
// subset Tsonic accepts (spec.md §6). Parsing itself is an external
// collaborator (spec.md §1) — this package is the contract a parser adapter
// must produce and the only thing the Binding layer and IR Converter ever
// see. Node identity for downstream phases flows through handles
// (internal/handles), never through raw pointers into this tree once
// binding setup has registered them.
package ast

import "github.com/tsoniclang/tsonic/internal/diagnostics"

// Node is the base interface for every AST node.
type Node interface {
	Pos() diagnostics.Location
	Accept(v Visitor)
}

// Statement is a Node that appears in statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears in expression position.
type Expression interface {
	Node
	expressionNode()
}

// Type is a Node appearing in type position (the syntax, not the resolved
// catalog TypeId — resolution happens in internal/catalog).
type Type interface {
	Node
	typeNode()
}

// Program is the root of a single source file's AST.
type Program struct {
	File       string
	Location   diagnostics.Location
	Package    *PackageDeclaration
	Imports    []*ImportDeclaration
	Statements []Statement
}

func (p *Program) Pos() diagnostics.Location { return p.Location }
func (p *Program) Accept(v Visitor)          { v.VisitProgram(p) }

// PackageDeclaration names the module and what it exports.
type PackageDeclaration struct {
	Location  diagnostics.Location
	Name      string
	Exports   []*ExportSpec
	ExportAll bool
}

func (d *PackageDeclaration) Pos() diagnostics.Location { return d.Location }
func (d *PackageDeclaration) Accept(v Visitor)          { v.VisitPackageDeclaration(d) }
func (d *PackageDeclaration) statementNode()            {}

// ExportSpec is a single entry in a package's export list: either a local
// symbol or a re-export of (part of) another module.
type ExportSpec struct {
	Location    diagnostics.Location
	Symbol      string
	ModuleName  string
	Symbols     []string
	ReexportAll bool
}

func (e *ExportSpec) IsReexport() bool { return e.ModuleName != "" }

// ImportKind is the classification the Module & Import Resolver assigns to
// every import specifier (spec.md §4.1).
type ImportKind int

const (
	ImportLocal ImportKind = iota
	ImportForeignCLR
	ImportCoreLanguage
	ImportUnknown
)

// ImportSpecifier is one named binding pulled in by an import declaration.
type ImportSpecifier struct {
	Location  diagnostics.Location
	Local     string
	Imported  string
	IsDefault bool
	// IsType records whether the Binding layer classified this specifier as
	// a type-only import; set during resolution, not by the parser adapter.
	IsType bool
}

// ImportDeclaration is a single import statement.
type ImportDeclaration struct {
	Location    diagnostics.Location
	Specifier   string
	Specifiers  []*ImportSpecifier
	NamespaceAs string // non-empty for `import * as ns from "..."`

	// Kind is filled in by the resolver once the specifier has been
	// classified (spec.md §4.1); it is ImportUnknown until then.
	Kind ImportKind
}

func (d *ImportDeclaration) Pos() diagnostics.Location { return d.Location }
func (d *ImportDeclaration) Accept(v Visitor)          { v.VisitImportDeclaration(d) }
func (d *ImportDeclaration) statementNode()            {}

// TypeParameter is a single generic parameter with optional bound and
// variance annotation.
type TypeParameter struct {
	Location   diagnostics.Location
	Name       string
	Constraint Type
	Variance   Variance
}

type Variance int

const (
	VarianceInvariant Variance = iota
	VarianceCovariant
	VarianceContravariant
)

// Parameter is a single function/method parameter.
type Parameter struct {
	Location     diagnostics.Location
	Name         string
	Pattern      Pattern // non-nil for destructuring parameters
	Annotation   Type
	Optional     bool
	Rest         bool
	Default      Expression
	PassingMode  PassingMode
}

// PassingMode mirrors the CLR-facing ref/out/in marker types (spec.md §6).
type PassingMode int

const (
	PassByValue PassingMode = iota
	PassByRef
	PassByOut
	PassByIn
)

// FunctionDeclaration is a top-level or nested named function.
type FunctionDeclaration struct {
	Location      diagnostics.Location
	Name          string
	TypeParams    []*TypeParameter
	Params        []*Parameter
	ReturnType    Type
	Body          *BlockStatement
	IsAsync       bool
	IsGenerator   bool
	Exported      bool
}

func (d *FunctionDeclaration) Pos() diagnostics.Location { return d.Location }
func (d *FunctionDeclaration) Accept(v Visitor)          { v.VisitFunctionDeclaration(d) }
func (d *FunctionDeclaration) statementNode()            {}

// ClassMember is one member of a class or interface body.
type ClassMember struct {
	Location    diagnostics.Location
	Name        string
	Kind        MemberKind
	IsStatic    bool
	Accessibility Accessibility
	Annotation  Type // property/field type, or nil for methods (use Signature)
	Params      []*Parameter
	ReturnType  Type
	Body        *BlockStatement // nil for interface/ambient members
	TypeParams  []*TypeParameter
}

type MemberKind int

const (
	MemberProperty MemberKind = iota
	MemberMethod
	MemberField
	MemberEvent
	MemberIndexer
	MemberConstructor
)

type Accessibility int

const (
	AccessibilityPublic Accessibility = iota
	AccessibilityPrivate
	AccessibilityProtected
)

// HeritageClause records an `extends`/`implements` list.
type HeritageClause struct {
	Location diagnostics.Location
	IsImplements bool
	Types    []Type
}

// ClassDeclaration is a class definition.
type ClassDeclaration struct {
	Location   diagnostics.Location
	Name       string
	TypeParams []*TypeParameter
	Heritage   []*HeritageClause
	Members    []*ClassMember
	IsAbstract bool
	Sealed     bool
	Exported   bool
}

func (d *ClassDeclaration) Pos() diagnostics.Location { return d.Location }
func (d *ClassDeclaration) Accept(v Visitor)          { v.VisitClassDeclaration(d) }
func (d *ClassDeclaration) statementNode()            {}

// InterfaceDeclaration is an interface definition.
type InterfaceDeclaration struct {
	Location   diagnostics.Location
	Name       string
	TypeParams []*TypeParameter
	Heritage   []*HeritageClause
	Members    []*ClassMember
	Exported   bool
}

func (d *InterfaceDeclaration) Pos() diagnostics.Location { return d.Location }
func (d *InterfaceDeclaration) Accept(v Visitor)          { v.VisitInterfaceDeclaration(d) }
func (d *InterfaceDeclaration) statementNode()            {}

// EnumMember is one member of an enum declaration.
type EnumMember struct {
	Location diagnostics.Location
	Name     string
	Value    Expression // nil for auto-numbered members
}

// EnumDeclaration is an enum definition.
type EnumDeclaration struct {
	Location diagnostics.Location
	Name     string
	Members  []*EnumMember
	Exported bool
}

func (d *EnumDeclaration) Pos() diagnostics.Location { return d.Location }
func (d *EnumDeclaration) Accept(v Visitor)          { v.VisitEnumDeclaration(d) }
func (d *EnumDeclaration) statementNode()            {}

// TypeAliasDeclaration is a `type Name<T> = ...` declaration.
type TypeAliasDeclaration struct {
	Location   diagnostics.Location
	Name       string
	TypeParams []*TypeParameter
	Value      Type
	Exported   bool
}

func (d *TypeAliasDeclaration) Pos() diagnostics.Location { return d.Location }
func (d *TypeAliasDeclaration) Accept(v Visitor)          { v.VisitTypeAliasDeclaration(d) }
func (d *TypeAliasDeclaration) statementNode()            {}

// VariableKind distinguishes const/let-style bindings.
type VariableKind int

const (
	VariableConst VariableKind = iota
	VariableLet
)

// VariableDeclaration is a const/let binding, possibly destructuring.
type VariableDeclaration struct {
	Location       diagnostics.Location
	Kind           VariableKind
	Name           string
	Pattern        Pattern // non-nil for destructuring declarations
	TypeAnnotation Type
	Value          Expression
}

func (d *VariableDeclaration) Pos() diagnostics.Location { return d.Location }
func (d *VariableDeclaration) Accept(v Visitor)          { v.VisitVariableDeclaration(d) }
func (d *VariableDeclaration) statementNode()            {}
