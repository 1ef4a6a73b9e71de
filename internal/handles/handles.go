// Package handles implements the opaque, content-addressed identifiers that
// stand in for raw AST pointers once binding setup has run (spec.md §4.1,
// §9's determinism design note). Only internal/catalog and internal/bindings
// ever dereference a handle back to its underlying ast.Node; every other
// phase — the converter, the specializer, the soundness gate — carries
// handles around as plain comparable values and never walks the source AST
// directly, which is what gives the pipeline tree-shaped data flow instead
// of the free-for-all pointer aliasing a tree-walking interpreter lives
// with (the problem mcgru-funxy's own symbol table -> typesystem.Type
// pointers has, and which this package exists to avoid repeating).
package handles

import (
	"fmt"
	"sort"
	"sync"
)

// DeclId identifies a single top-level or nested declaration (function,
// class, interface, enum, type alias, variable).
type DeclId uint64

// SignatureId identifies one call/construct signature of a function, method,
// or constructor — kept distinct from DeclId because overload-like
// specialization keys off the signature, not the declaring symbol.
type SignatureId uint64

// MemberId identifies one member (property, method, field, event, indexer)
// of a class or interface declaration.
type MemberId uint64

// TypeSyntaxId identifies one ast.Type node appearing in annotation
// position, before it has been resolved to a catalog.TypeId.
type TypeSyntaxId uint64

// NoDecl, NoSignature, NoMember, and NoTypeSyntax are the zero handles; a
// valid registry never hands one out, so callers can use them as explicit
// "absent" sentinels without wrapping every field in a pointer.
const (
	NoDecl       DeclId       = 0
	NoSignature  SignatureId  = 0
	NoMember     MemberId     = 0
	NoTypeSyntax TypeSyntaxId = 0
)

// Registry is the single arena backing every handle kind produced while
// binding one compilation unit. Every method takes the Registry's own
// mutex, so it is safe for concurrent use from multiple goroutines; per
// spec.md §5 modules bind sequentially within a compilation, so internal
// callers never contend on it.
type Registry struct {
	mu sync.Mutex

	decls   []declEntry
	sigs    []sigEntry
	members []memberEntry
	types   []typeEntry
}

type declEntry struct {
	node interface{}
	name string
}

type sigEntry struct {
	node  interface{}
	owner DeclId
}

type memberEntry struct {
	node  interface{}
	owner DeclId
	name  string
}

type typeEntry struct {
	node interface{}
}

// NewRegistry returns an empty arena. The zero value of Registry is not
// usable directly: index 0 is reserved so the zero handle values above
// reliably mean "absent."
func NewRegistry() *Registry {
	r := &Registry{}
	r.decls = append(r.decls, declEntry{})
	r.sigs = append(r.sigs, sigEntry{})
	r.members = append(r.members, memberEntry{})
	r.types = append(r.types, typeEntry{})
	return r
}

// NewDecl registers a declaration node and returns its handle. node is
// typically an *ast.FunctionDeclaration, *ast.ClassDeclaration, etc.; the
// registry stores it opaquely and Decl returns it unchanged for the caller
// to type-assert.
func (r *Registry) NewDecl(node interface{}, name string) DeclId {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := DeclId(len(r.decls))
	r.decls = append(r.decls, declEntry{node: node, name: name})
	return id
}

// Decl dereferences a DeclId back to its registered node. Calling it with a
// handle this registry never issued is a programming error (ICE), not a
// diagnosable one, since handles never cross registries.
func (r *Registry) Decl(id DeclId) interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if int(id) >= len(r.decls) {
		panic(fmt.Sprintf("handles: DeclId %d not registered in this arena", id))
	}
	return r.decls[id].node
}

// DeclName returns the declared name a DeclId was registered under.
func (r *Registry) DeclName(id DeclId) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.decls[id].name
}

// NewSignature registers one call/construct signature under its owning
// declaration.
func (r *Registry) NewSignature(node interface{}, owner DeclId) SignatureId {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := SignatureId(len(r.sigs))
	r.sigs = append(r.sigs, sigEntry{node: node, owner: owner})
	return id
}

func (r *Registry) Signature(id SignatureId) interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sigs[id].node
}

// SignatureOwner returns the declaration a signature belongs to.
func (r *Registry) SignatureOwner(id SignatureId) DeclId {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sigs[id].owner
}

// NewMember registers one class/interface member under its owning
// declaration.
func (r *Registry) NewMember(node interface{}, owner DeclId, name string) MemberId {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := MemberId(len(r.members))
	r.members = append(r.members, memberEntry{node: node, owner: owner, name: name})
	return id
}

func (r *Registry) Member(id MemberId) interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.members[id].node
}

// MemberOwner returns the declaration a member belongs to.
func (r *Registry) MemberOwner(id MemberId) DeclId {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.members[id].owner
}

// MemberName returns the name a MemberId was registered under.
func (r *Registry) MemberName(id MemberId) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.members[id].name
}

// NewTypeSyntax registers an ast.Type node appearing in annotation
// position.
func (r *Registry) NewTypeSyntax(node interface{}) TypeSyntaxId {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := TypeSyntaxId(len(r.types))
	r.types = append(r.types, typeEntry{node: node})
	return id
}

func (r *Registry) TypeSyntax(id TypeSyntaxId) interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.types[id].node
}

// MembersByOwner groups every registered member by its owning
// declaration (spec.md §4.2). The returned map's slices
// are sorted by handle value for deterministic iteration (INV-DETERMINISM).
func (r *Registry) MembersByOwner() map[DeclId][]MemberId {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[DeclId][]MemberId)
	for i, e := range r.members {
		if i == 0 {
			continue
		}
		out[e.owner] = append(out[e.owner], MemberId(i))
	}
	for k := range out {
		sort.Slice(out[k], func(i, j int) bool { return out[k][i] < out[k][j] })
	}
	return out
}
