package ast

import "github.com/tsoniclang/tsonic/internal/diagnostics"

// Pattern is a destructuring target appearing in a parameter, variable
// declaration, or for-of binding (SPEC_FULL §6.1).
type Pattern interface {
	Node
	patternNode()
}

// IdentifierPattern binds a single name; this is the common case and most
// declarations never allocate one of the composite forms below.
type IdentifierPattern struct {
	Location diagnostics.Location
	Name     string
}

func (p *IdentifierPattern) Pos() diagnostics.Location { return p.Location }
func (p *IdentifierPattern) Accept(v Visitor)          { v.VisitIdentifierPattern(p) }
func (p *IdentifierPattern) patternNode()              {}

// ArrayPatternElement is one slot of an array destructuring pattern.
type ArrayPatternElement struct {
	Location diagnostics.Location
	Target   Pattern // nil for an elided slot, e.g. `const [, b] = ...`
	Default  Expression
	Rest     bool
}

// ArrayPattern destructures a tuple or array value by position.
type ArrayPattern struct {
	Location diagnostics.Location
	Elements []*ArrayPatternElement
}

func (p *ArrayPattern) Pos() diagnostics.Location { return p.Location }
func (p *ArrayPattern) Accept(v Visitor)          { v.VisitArrayPattern(p) }
func (p *ArrayPattern) patternNode()              {}

// ObjectPatternProperty is one bound key of an object destructuring pattern.
type ObjectPatternProperty struct {
	Location diagnostics.Location
	Key      string
	Target   Pattern
	Default  Expression
}

// ObjectPattern destructures an object value by member name, with an
// optional rest binding collecting the remaining members.
type ObjectPattern struct {
	Location   diagnostics.Location
	Properties []*ObjectPatternProperty
	RestName   string // empty if there is no `...rest` binding
}

func (p *ObjectPattern) Pos() diagnostics.Location { return p.Location }
func (p *ObjectPattern) Accept(v Visitor)          { v.VisitObjectPattern(p) }
func (p *ObjectPattern) patternNode()              {}
