package soundness

import (
	"testing"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
	"github.com/tsoniclang/tsonic/internal/handles"
	"github.com/tsoniclang/tsonic/internal/ir"
)

func newGate() (*Gate, *catalog.UnifiedTypeCatalog, *diagnostics.Collector) {
	reg := handles.NewRegistry()
	cat := catalog.New(reg)
	col := diagnostics.NewCollector()
	return New(cat, col), cat, col
}

func TestResidualAnyIsRejected(t *testing.T) {
	g, cat, col := newGate()
	anyId, _ := cat.ResolveTsName("any")
	mod := &ir.Module{Statements: []ir.Statement{
		&ir.VarDecl{Name: "x", DeclaredType: anyId},
	}}
	g.Check(mod)
	assertHasCode(t, col, diagnostics.CodeResidualAny)
}

func TestConcreteTypeIsAccepted(t *testing.T) {
	g, cat, col := newGate()
	intId, _ := cat.ResolveTsName("int")
	mod := &ir.Module{Statements: []ir.Statement{
		&ir.VarDecl{Name: "x", DeclaredType: intId, Value: &ir.IntLiteral{Value: 1, Type: intId}},
	}}
	g.Check(mod)
	if col.HasErrors() {
		t.Fatalf("did not expect errors for a fully concrete module, got %v", col.All())
	}
}

func TestObjectLiteralWithoutFacadeTypeIsRejected(t *testing.T) {
	g, _, col := newGate()
	mod := &ir.Module{Statements: []ir.Statement{
		&ir.ExprStatement{Value: &ir.ObjectLit{Type: catalog.NoType}},
	}}
	g.Check(mod)
	assertHasCode(t, col, diagnostics.CodeUnrepresentableShape)
}

func TestGenericFunctionDeclEscapesTypeParam(t *testing.T) {
	g, cat, col := newGate()
	intId, _ := cat.ResolveTsName("int")
	tparam, _ := cat.ResolveTsName("int") // stand-in TypeId for a type parameter slot
	mod := &ir.Module{Statements: []ir.Statement{
		&ir.FuncDecl{Name: "identity", TypeParams: []catalog.TypeId{tparam}, ReturnType: intId},
	}}
	g.Check(mod)
	assertHasCode(t, col, diagnostics.CodeEscapingTypeParam)
}

func assertHasCode(t *testing.T, col *diagnostics.Collector, code diagnostics.Code) {
	t.Helper()
	for _, d := range col.All() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("expected diagnostic %s, got %v", code, col.All())
}
