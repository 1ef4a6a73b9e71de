package catalog

import (
	"testing"

	"github.com/tsoniclang/tsonic/internal/diagnostics"
	"github.com/tsoniclang/tsonic/internal/handles"
)

func TestNumericWideningLadder(t *testing.T) {
	reg := handles.NewRegistry()
	c := New(reg)

	intId, _ := c.ResolveTsName("int")
	doubleId, _ := c.ResolveTsName("double")
	longId, _ := c.ResolveTsName("long")

	if !c.IsAssignable(intId, doubleId) {
		t.Error("int should widen to double")
	}
	if c.IsAssignable(doubleId, intId) {
		t.Error("double must not narrow to int implicitly")
	}
	if !c.NumericWidens("int", "long") {
		t.Error("int should widen to long")
	}
}

func TestSourceFacingAliasesResolveToCanonicalPrimitive(t *testing.T) {
	reg := handles.NewRegistry()
	c := New(reg)

	numberId, ok := c.ResolveTsName("number")
	if !ok {
		t.Fatal("expected 'number' to resolve")
	}
	doubleId, _ := c.ResolveTsName("double")
	if numberId != doubleId {
		t.Fatalf("expected 'number' and 'double' to share one TypeId, got %v and %v", numberId, doubleId)
	}

	booleanId, ok := c.ResolveTsName("boolean")
	if !ok {
		t.Fatal("expected 'boolean' to resolve")
	}
	boolId, _ := c.ResolveTsName("bool")
	if booleanId != boolId {
		t.Fatalf("expected 'boolean' and 'bool' to share one TypeId, got %v and %v", booleanId, boolId)
	}
}

func TestCharAndDecimalSeedAsDistinctNonWideningPrimitives(t *testing.T) {
	reg := handles.NewRegistry()
	c := New(reg)

	charId, ok := c.ResolveTsName("char")
	if !ok {
		t.Fatal("expected 'char' to resolve")
	}
	decimalId, ok := c.ResolveTsName("decimal")
	if !ok {
		t.Fatal("expected 'decimal' to resolve")
	}
	if charId == decimalId {
		t.Fatal("expected 'char' and 'decimal' to be distinct entries")
	}
	if c.NumericWidens("char", "int") || c.NumericWidens("int", "decimal") {
		t.Error("expected 'char'/'decimal' to sit outside the implicit numeric widening ladder")
	}
}

func TestNewTypeParameterIsNotGloballyNameable(t *testing.T) {
	reg := handles.NewRegistry()
	c := New(reg)

	tId := c.NewTypeParameter("T")
	if c.Entry(tId).Kind != KindTypeParameter {
		t.Fatalf("expected KindTypeParameter, got %v", c.Entry(tId).Kind)
	}
	if _, ok := c.ResolveTsName("T"); ok {
		t.Fatal("expected a minted type parameter to not be resolvable by name globally")
	}

	uId := c.NewTypeParameter("T")
	if tId == uId {
		t.Fatal("expected two separate declarations' own 'T' parameters to mint distinct TypeIds")
	}
}

func TestDefineSourceShadowingAssemblyIsDiagnosed(t *testing.T) {
	reg := handles.NewRegistry()
	c := New(reg)
	col := diagnostics.NewCollector()
	loc := diagnostics.Location{File: "a.ts", Line: 1, Column: 1}

	c.DefineAssembly(col, loc, "Widget", "Acme.Widget", "acme::Widget", KindClass)
	if col.HasErrors() {
		t.Fatal("loading an assembly type should not itself error")
	}

	decl := reg.NewDecl(nil, "Widget")
	c.DefineSource(col, loc, "Widget", "acme::Widget", KindClass, decl)
	if !col.HasErrors() {
		t.Fatal("expected a shadowing diagnostic when a source decl reuses an assembly stable id")
	}
}

func TestDuplicateAssemblyLoadKeepsFirst(t *testing.T) {
	reg := handles.NewRegistry()
	c := New(reg)
	col := diagnostics.NewCollector()
	loc := diagnostics.Location{File: "bindings.json"}

	first := c.DefineAssembly(col, loc, "Widget", "Acme.Widget", "acme::Widget", KindClass)
	second := c.DefineAssembly(col, loc, "Widget", "Acme.Widget.V2", "acme::Widget", KindClass)

	if first != second {
		t.Fatal("duplicate stable id load should return the first-loaded TypeId")
	}
	if !col.HasErrors() && col.Len() == 0 {
		t.Fatal("expected a warning diagnostic for the duplicate load")
	}
}

func TestResolveDeclPrefersTypeDeclInTypePositionAndValueDeclOtherwise(t *testing.T) {
	reg := handles.NewRegistry()
	c := New(reg)
	col := diagnostics.NewCollector()
	loc := diagnostics.Location{File: "a.ts"}

	typeDecl := reg.NewDecl(nil, "Widget")
	id := c.DefineSource(col, loc, "Widget", "", KindClass, typeDecl)
	if got := c.ResolveDecl(id, true); got != typeDecl {
		t.Fatalf("expected type-position lookup to return the type decl, got %v want %v", got, typeDecl)
	}
	// With no value decl attached, value position falls back to the type decl.
	if got := c.ResolveDecl(id, false); got != typeDecl {
		t.Fatalf("expected value-position fallback to the type decl, got %v want %v", got, typeDecl)
	}

	valueDecl := reg.NewDecl(nil, "Widget$ctor")
	c.AttachValueDecl(id, valueDecl)
	if got := c.ResolveDecl(id, false); got != valueDecl {
		t.Fatalf("expected value-position lookup to prefer the attached value decl, got %v want %v", got, valueDecl)
	}
	if got := c.ResolveDecl(id, true); got != typeDecl {
		t.Fatalf("expected type-position lookup to still return the type decl, got %v want %v", got, typeDecl)
	}
}

func TestLookupMemberWalksHeritage(t *testing.T) {
	reg := handles.NewRegistry()
	c := New(reg)
	col := diagnostics.NewCollector()
	loc := diagnostics.Location{File: "a.ts"}

	base := c.DefineSource(col, loc, "Base", "", KindClass, reg.NewDecl(nil, "Base"))
	c.Entry(base).Members = append(c.Entry(base).Members, &MemberEntry{Name: "id", Type: base})

	derived := c.DefineSource(col, loc, "Derived", "", KindClass, reg.NewDecl(nil, "Derived"))
	c.Entry(derived).Heritage = []TypeId{base}

	m, ok := c.LookupMember(derived, "id")
	if !ok {
		t.Fatal("expected to find inherited member through heritage")
	}
	if m.Name != "id" {
		t.Errorf("got member %q, want %q", m.Name, "id")
	}
}
