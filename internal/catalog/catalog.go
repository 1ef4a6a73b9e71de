// Package catalog implements the UnifiedTypeCatalog: the single lookup
// surface that erases the distinction between a type declared in source and
// one imported from a foreign CLR assembly (spec.md §4.2, INV-CLR). Every
// later phase — validator, converter, specializer, soundness gate — asks
// the catalog "what is this name" and never distinguishes where the answer
// came from.
package catalog

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tsoniclang/tsonic/internal/diagnostics"
	"github.com/tsoniclang/tsonic/internal/handles"
)

// TypeId is an opaque, stable identifier for one resolved type, minted once
// per distinct nominal/structural shape and reused thereafter (INV-DETERMINISM:
// the same shape always gets the same TypeId within a compilation).
type TypeId uint64

// NoType is the zero TypeId; never issued by a catalog.
const NoType TypeId = 0

// Origin records whether a NominalEntry came from source or an assembly,
// which the numeric/nullable contracts (INV-NUM, INV-NULLABLE) and the
// generated-facade machinery both need to know.
type Origin int

const (
	OriginSource Origin = iota
	OriginAssembly
)

// Kind classifies a NominalEntry's declaration form.
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindEnum
	KindAlias
	KindPrimitive
	KindArray
	KindTuple
	KindUnion
	KindIntersection
	KindFunction
	KindObjectFacade
	KindTypeParameter
	KindAny
	KindNullable
)

// MemberEntry is one property/method/field/event/indexer of a NominalEntry.
type MemberEntry struct {
	Name          string
	Kind          handles.MemberId
	Type          TypeId
	Static        bool
	Accessibility string
	Params        []TypeId // for methods/constructors
	Return        TypeId   // for methods; NoType for properties/fields
}

// NominalEntry is one resolved, named type in the unified universe: a
// class, interface, enum, alias, or a structural composite (union,
// intersection, function, tuple, array) that has been assigned a TypeId.
type NominalEntry struct {
	Id       TypeId
	TsName   string // the name as written in source, "" for purely structural entries
	ClrName  string // the fully qualified CLR name, "" for source-only declarations
	StableId string // spec.md §4.2's cross-reference key between bindings.json and source
	Kind     Kind
	Origin   Origin

	// Decl is the entry's type-position declaration. ValueDecl, when
	// present, is a second declaration reachable under the same name in
	// value position — spec.md §9's multi-declaration-merging Open
	// Question (e.g. a class name usable both as a type annotation and,
	// through its static members, as a value). NoDecl means "none
	// recorded"; see ResolveDecl for the lookup rule.
	Decl      handles.DeclId
	ValueDecl handles.DeclId

	// Heritage lists the direct base/implemented types, already resolved to
	// TypeId, in declaration order; MRO walks traverse this list depth-first
	// per spec.md §4.2.
	Heritage []TypeId

	// TypeParams holds the entry's own generic parameters (their bound
	// TypeId, KindTypeParameter) for generics not yet specialized.
	TypeParams []TypeId

	Members []*MemberEntry

	// Structural payload: populated only for the matching Kind.
	Element      TypeId   // KindArray/KindNullable
	Elements     []TypeId // KindTuple
	UnionMembers []TypeId // KindUnion/KindIntersection
	Params       []TypeId // KindFunction
	Return       TypeId   // KindFunction
}

// UnifiedTypeCatalog is the lookup surface combining source declarations and
// the loaded bindings.json assembly universe (spec.md §4.2).
type UnifiedTypeCatalog struct {
	reg *handles.Registry

	byId       map[TypeId]*NominalEntry
	byTsName   map[string]TypeId
	byClrName  map[string]TypeId
	byStableId map[string]TypeId

	nextId TypeId

	collator *collate.Collator

	// numericRank implements INV-NUM's widening order: a numeric type at
	// rank i may only implicitly widen to a numeric type at rank > i, and
	// never narrows implicitly.
	numericRank map[string]int
}

// New returns an empty catalog seeded with the primitive numeric ladder and
// well-known core types (spec.md §4.2, INV-NUM).
func New(reg *handles.Registry) *UnifiedTypeCatalog {
	c := &UnifiedTypeCatalog{
		reg:        reg,
		byId:       make(map[TypeId]*NominalEntry),
		byTsName:   make(map[string]TypeId),
		byClrName:  make(map[string]TypeId),
		byStableId: make(map[string]TypeId),
		collator:   collate.New(language.Und),
	}
	c.numericRank = map[string]int{
		"sbyte": 0, "byte": 0,
		"short": 1, "ushort": 1,
		"int": 2, "uint": 2,
		"long": 3, "ulong": 3,
		"float": 4,
		"double": 5,
	}
	for _, name := range []string{"sbyte", "byte", "short", "ushort", "int", "uint", "long", "ulong", "float", "double", "char", "decimal", "bool", "string", "void", "any"} {
		c.seedPrimitive(name)
	}
	// spec.md §3's source-facing primitive names aren't all spelled the same
	// as their target name: "number" always denotes the target's double
	// (INV-NUM), and "boolean" is source syntax for the target's bool. Both
	// resolve to the exact same TypeId as their target spelling so every
	// later phase (widening checks, soundness) sees one canonical entry.
	c.alias("number", "double")
	c.alias("boolean", "bool")
	return c
}

// alias records an additional source-facing name resolving to an
// already-seeded primitive's TypeId, without minting a second NominalEntry.
func (c *UnifiedTypeCatalog) alias(name, target string) {
	id, ok := c.byTsName[target]
	if !ok {
		diagnostics.Raise(diagnostics.PhaseCatalog, "alias target %q not seeded", target)
	}
	c.byTsName[name] = id
}

func (c *UnifiedTypeCatalog) seedPrimitive(name string) TypeId {
	kind := KindPrimitive
	if name == "any" {
		kind = KindAny
	}
	id := c.allocate(&NominalEntry{TsName: name, ClrName: name, Kind: kind, Origin: OriginAssembly})
	c.byTsName[name] = id
	return id
}

func (c *UnifiedTypeCatalog) allocate(e *NominalEntry) TypeId {
	c.nextId++
	e.Id = c.nextId
	c.byId[e.Id] = e
	return e.Id
}

// DefineSource registers a source-authored declaration. Per INV-CLR, a
// source declaration sharing a stable id with an already-loaded assembly
// type is diagnosed (TSN6001) rather than silently shadowing it; the
// caller supplies the collector so the catalog never owns error state
// itself.
func (c *UnifiedTypeCatalog) DefineSource(col *diagnostics.Collector, loc diagnostics.Location, tsName, stableId string, kind Kind, decl handles.DeclId) TypeId {
	if existing, ok := c.byStableId[stableId]; ok && c.byId[existing].Origin == OriginAssembly {
		col.Errorf(diagnostics.PhaseCatalog, diagnostics.CodeSourceShadowsAssembly, loc, tsName)
	}
	id := c.allocate(&NominalEntry{TsName: tsName, StableId: stableId, Kind: kind, Origin: OriginSource, Decl: decl})
	c.byTsName[tsName] = id
	if stableId != "" {
		c.byStableId[stableId] = id
	}
	return id
}

// DefineAssembly registers a type loaded from a bindings.json manifest. Per
// spec.md §9's Open Question decision, the first-loaded assembly for a
// given stable id wins; a later duplicate load is diagnosed as a warning
// (TSN1050) and discarded rather than rejected outright.
func (c *UnifiedTypeCatalog) DefineAssembly(col *diagnostics.Collector, loc diagnostics.Location, tsName, clrName, stableId string, kind Kind) TypeId {
	if existing, ok := c.byStableId[stableId]; ok {
		col.Warnf(diagnostics.PhaseCatalog, diagnostics.CodeDuplicateAssembly, loc, stableId, clrName)
		return existing
	}
	id := c.allocate(&NominalEntry{TsName: tsName, ClrName: clrName, StableId: stableId, Kind: kind, Origin: OriginAssembly})
	if tsName != "" {
		c.byTsName[tsName] = id
	}
	c.byClrName[clrName] = id
	c.byStableId[stableId] = id
	return id
}

// AttachValueDecl records an additional value-position declaration for an
// already-defined entry (spec.md §9's multi-declaration-merging Open
// Question): a class or enum whose name is also usable as a value (its
// constructor, or its static member bag) gets its value-position DeclId
// recorded here without disturbing the type-position Decl already set by
// DefineSource/DefineAssembly.
func (c *UnifiedTypeCatalog) AttachValueDecl(id TypeId, valueDecl handles.DeclId) {
	c.Entry(id).ValueDecl = valueDecl
}

// ResolveDecl picks which of an entry's declarations to use, per spec.md
// §9's decision to prefer the type declaration in type contexts. In value
// contexts it prefers the value declaration when one was attached, falling
// back to the type declaration (a plain class/function with no separate
// value-position declaration is still callable through its own Decl).
func (c *UnifiedTypeCatalog) ResolveDecl(id TypeId, inTypePosition bool) handles.DeclId {
	e := c.Entry(id)
	if inTypePosition || e.ValueDecl == handles.NoDecl {
		return e.Decl
	}
	return e.ValueDecl
}

// NewTypeParameter allocates a fresh TypeId for one generic declaration's
// own type parameter (INV-TYPEPARAM). Unlike seedPrimitive/DefineSource it
// is never registered in byTsName: the same parameter name ("T") is reused
// across many unrelated declarations, so resolving a reference to it is
// scoped to the declaring Converter's own type-parameter stack rather than
// looked up globally by name.
func (c *UnifiedTypeCatalog) NewTypeParameter(name string) TypeId {
	return c.allocate(&NominalEntry{TsName: name, Kind: KindTypeParameter, Origin: OriginSource})
}

// Entry returns the NominalEntry for a TypeId. Looking up a TypeId this
// catalog never issued is an ICE.
func (c *UnifiedTypeCatalog) Entry(id TypeId) *NominalEntry {
	e, ok := c.byId[id]
	if !ok {
		diagnostics.Raise(diagnostics.PhaseCatalog, "TypeId %d not present in catalog", id)
	}
	return e
}

// ResolveTsName looks up a type by its source-facing name, collation-aware
// so differently-normalized Unicode identifiers referring to the same name
// still resolve (grounded on the shared golang.org/x/text dependency).
func (c *UnifiedTypeCatalog) ResolveTsName(name string) (TypeId, bool) {
	if id, ok := c.byTsName[name]; ok {
		return id, true
	}
	for candidate, id := range c.byTsName {
		if c.collator.CompareString(candidate, name) == 0 {
			return id, true
		}
	}
	return NoType, false
}

// ResolveClrName looks up a type by its fully qualified CLR name.
func (c *UnifiedTypeCatalog) ResolveClrName(name string) (TypeId, bool) {
	id, ok := c.byClrName[name]
	return id, ok
}

// ResolveStableId looks up a type by its cross-reference stable id.
func (c *UnifiedTypeCatalog) ResolveStableId(id string) (TypeId, bool) {
	t, ok := c.byStableId[id]
	return t, ok
}

// LookupMember walks an entry's own members, then its heritage list
// depth-first (the MRO order spec.md §4.2 specifies), returning the first
// match.
func (c *UnifiedTypeCatalog) LookupMember(id TypeId, name string) (*MemberEntry, bool) {
	return c.lookupMember(id, name, make(map[TypeId]bool))
}

func (c *UnifiedTypeCatalog) lookupMember(id TypeId, name string, visited map[TypeId]bool) (*MemberEntry, bool) {
	if visited[id] {
		return nil, false
	}
	visited[id] = true
	e := c.Entry(id)
	for _, m := range e.Members {
		if m.Name == name {
			return m, true
		}
	}
	for _, base := range e.Heritage {
		if m, ok := c.lookupMember(base, name, visited); ok {
			return m, true
		}
	}
	return nil, false
}

// IsAssignable reports whether a value of type `from` may be used where
// `to` is expected, applying INV-NUM's widening-only numeric ladder and
// ordinary heritage-based subtyping for everything else.
func (c *UnifiedTypeCatalog) IsAssignable(from, to TypeId) bool {
	if from == to {
		return true
	}
	fe, te := c.Entry(from), c.Entry(to)
	if fe.Kind == KindPrimitive && te.Kind == KindPrimitive {
		fr, fok := c.numericRank[fe.TsName]
		tr, tok := c.numericRank[te.TsName]
		if fok && tok {
			return fr <= tr
		}
		return false
	}
	if te.Kind == KindAny {
		return true
	}
	return c.isSubtype(from, to, make(map[TypeId]bool))
}

func (c *UnifiedTypeCatalog) isSubtype(from, to TypeId, visited map[TypeId]bool) bool {
	if from == to {
		return true
	}
	if visited[from] {
		return false
	}
	visited[from] = true
	for _, base := range c.Entry(from).Heritage {
		if c.isSubtype(base, to, visited) {
			return true
		}
	}
	return false
}

// NumericWidens reports whether widening from one primitive numeric name to
// another loses no precision, per INV-NUM's ladder; used by the converter to
// decide whether an implicit conversion is permitted or must be diagnosed
// (TSN5111).
func (c *UnifiedTypeCatalog) NumericWidens(from, to string) bool {
	fr, fok := c.numericRank[from]
	tr, tok := c.numericRank[to]
	return fok && tok && fr <= tr
}

// AllStableIds returns every registered stable id in sorted order, used by
// tests asserting deterministic catalog construction (INV-DETERMINISM).
func (c *UnifiedTypeCatalog) AllStableIds() []string {
	ids := make([]string, 0, len(c.byStableId))
	for id := range c.byStableId {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindAlias:
		return "alias"
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindUnion:
		return "union"
	case KindIntersection:
		return "intersection"
	case KindFunction:
		return "function"
	case KindObjectFacade:
		return "objectFacade"
	case KindTypeParameter:
		return "typeParameter"
	case KindAny:
		return "any"
	case KindNullable:
		return "nullable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
