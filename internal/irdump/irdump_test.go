package irdump

import (
	"strings"
	"testing"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/handles"
	"github.com/tsoniclang/tsonic/internal/ir"
)

func TestDumpRendersFuncAndDoesNotPanicOnBareExpressionStatement(t *testing.T) {
	reg := handles.NewRegistry()
	cat := catalog.New(reg)
	intId, _ := cat.ResolveTsName("int")

	mod := &ir.Module{
		Path: "/virtual/main",
		Statements: []ir.Statement{
			&ir.FuncDecl{
				Name:       "run",
				Params:     []*ir.Param{{Name: "x", Type: intId}},
				ReturnType: intId,
				Body: &ir.Block{Statements: []ir.Statement{
					&ir.Ident{Name: "x", Type: intId}, // bare expression as statement
					&ir.Return{Value: &ir.Ident{Name: "x", Type: intId}},
				}},
			},
		},
	}

	out := New(cat).Dump(mod)
	if !strings.Contains(out, "Func run(x: int) -> int") {
		t.Errorf("expected rendered func signature, got:\n%s", out)
	}
	if !strings.Contains(out, "Return") {
		t.Errorf("expected a Return line, got:\n%s", out)
	}
}
