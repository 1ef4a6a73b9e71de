package ir

import (
	"testing"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/handles"
)

func TestExpressionsSatisfyStatementAndExprType(t *testing.T) {
	reg := handles.NewRegistry()
	cat := catalog.New(reg)
	intId, _ := cat.ResolveTsName("int")

	var exprs []Expression
	exprs = append(exprs,
		&IntLiteral{Value: 1, Type: intId},
		&Ident{Name: "x", Type: intId},
		&Binary{Operator: "+", Left: &IntLiteral{Value: 1, Type: intId}, Right: &IntLiteral{Value: 2, Type: intId}, Type: intId},
	)
	for i, e := range exprs {
		if e.ExprType() != intId {
			t.Errorf("expr %d: ExprType() = %v, want %v", i, e.ExprType(), intId)
		}
	}

	var stmts []Statement
	stmts = append(stmts, exprs[0], &Return{Value: exprs[1]}, &Break{})
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(stmts))
	}
}

func TestModuleHoldsStatements(t *testing.T) {
	mod := &Module{
		Path: "a.ts",
		Statements: []Statement{
			&ExprStatement{Value: &BoolLiteral{Value: true}},
			&Break{},
		},
	}
	if len(mod.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(mod.Statements))
	}
}
