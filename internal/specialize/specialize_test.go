package specialize

import (
	"testing"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/handles"
	"github.com/tsoniclang/tsonic/internal/ir"
)

func TestRequestFuncProducesSingleCloneForSameKey(t *testing.T) {
	reg := handles.NewRegistry()
	cat := catalog.New(reg)
	anyId, _ := cat.ResolveTsName("any")
	intId, _ := cat.ResolveTsName("int")

	generic := &ir.FuncDecl{
		Name:       "identity",
		TypeParams: []catalog.TypeId{anyId},
		Params:     []*ir.Param{{Name: "x", Type: anyId}},
		ReturnType: anyId,
		Body: &ir.Block{Statements: []ir.Statement{
			&ir.Return{Value: &ir.Ident{Name: "x", Type: anyId}},
		}},
	}
	mod := &ir.Module{Statements: []ir.Statement{generic}}
	engine := New(cat, mod)

	first := engine.RequestFunc("identity", []catalog.TypeId{intId})
	second := engine.RequestFunc("identity", []catalog.TypeId{intId})

	if first != second {
		t.Fatal("expected the same clone pointer for an identical call-site key")
	}
	if first.ReturnType != intId {
		t.Errorf("expected substituted return type int, got %v", cat.Entry(first.ReturnType).TsName)
	}
	if len(first.TypeParams) != 0 {
		t.Error("expected the clone to have no residual type parameters")
	}
}

func TestDistinctTypeArgsProduceDistinctClones(t *testing.T) {
	reg := handles.NewRegistry()
	cat := catalog.New(reg)
	anyId, _ := cat.ResolveTsName("any")
	intId, _ := cat.ResolveTsName("int")
	stringId, _ := cat.ResolveTsName("string")

	generic := &ir.FuncDecl{
		Name:       "identity",
		TypeParams: []catalog.TypeId{anyId},
		ReturnType: anyId,
		Body:       &ir.Block{},
	}
	mod := &ir.Module{Statements: []ir.Statement{generic}}
	engine := New(cat, mod)

	intClone := engine.RequestFunc("identity", []catalog.TypeId{intId})
	strClone := engine.RequestFunc("identity", []catalog.TypeId{stringId})

	if intClone.Name == strClone.Name {
		t.Fatal("expected distinct mangled names for distinct specializations")
	}
	if len(engine.Keys()) != 2 {
		t.Fatalf("expected 2 specialization keys, got %d", len(engine.Keys()))
	}
	if intClone.Name != "identity__int" {
		t.Errorf("expected mangled name %q, got %q", "identity__int", intClone.Name)
	}
	if strClone.Name != "identity__string" {
		t.Errorf("expected mangled name %q, got %q", "identity__string", strClone.Name)
	}
}

func TestCollectModuleAppendsSpecializationsAndDropsGeneric(t *testing.T) {
	reg := handles.NewRegistry()
	cat := catalog.New(reg)
	anyId, _ := cat.ResolveTsName("any")
	intId, _ := cat.ResolveTsName("int")

	generic := &ir.FuncDecl{
		Name:       "identity",
		TypeParams: []catalog.TypeId{anyId},
		Params:     []*ir.Param{{Name: "x", Type: anyId}},
		ReturnType: anyId,
		Body: &ir.Block{Statements: []ir.Statement{
			&ir.Return{Value: &ir.Ident{Name: "x", Type: anyId}},
		}},
	}
	caller := &ir.FuncDecl{
		Name:       "main",
		ReturnType: intId,
		Body: &ir.Block{Statements: []ir.Statement{
			&ir.ExprStatement{Value: &ir.Call{
				Callee:                 &ir.Ident{Name: "identity"},
				TypeArgs:               []catalog.TypeId{intId},
				RequiresSpecialization: true,
				Type:                   intId,
			}},
		}},
	}
	mod := &ir.Module{Statements: []ir.Statement{generic, caller}}
	engine := New(cat, mod)

	engine.CollectModule(mod)
	mod.Statements = engine.Finalize(mod.Statements)

	var sawGeneric, sawSpecialized, sawCaller bool
	for _, s := range mod.Statements {
		fn, ok := s.(*ir.FuncDecl)
		if !ok {
			continue
		}
		switch fn.Name {
		case "identity":
			sawGeneric = true
		case "identity__int":
			sawSpecialized = true
		case "main":
			sawCaller = true
		}
	}
	if sawGeneric {
		t.Error("expected the unspecialized generic declaration to be dropped from the emitted statements")
	}
	if !sawSpecialized {
		t.Error("expected the specialized clone to be appended to the module's statements")
	}
	if !sawCaller {
		t.Error("expected the non-generic caller to remain in the emitted statements")
	}
}
