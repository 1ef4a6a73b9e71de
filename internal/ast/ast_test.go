package ast

import (
	"testing"

	"github.com/tsoniclang/tsonic/internal/diagnostics"
)

type countingVisitor struct {
	BaseVisitor
	calls []string
}

func (c *countingVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) {
	c.calls = append(c.calls, "FunctionDeclaration:"+n.Name)
}

func (c *countingVisitor) VisitReturnStatement(n *ReturnStatement) {
	c.calls = append(c.calls, "ReturnStatement")
}

func (c *countingVisitor) VisitBinaryExpression(n *BinaryExpression) {
	c.calls = append(c.calls, "BinaryExpression:"+string(n.Operator))
}

func TestAcceptDispatchesToConcreteVisitMethod(t *testing.T) {
	fn := &FunctionDeclaration{
		Name: "add",
		Params: []*Parameter{
			{Name: "a"},
			{Name: "b"},
		},
		Body: &BlockStatement{
			Statements: []Statement{
				&ReturnStatement{
					Value: &BinaryExpression{
						Operator: OpAdd,
						Left:     &Identifier{Name: "a"},
						Right:    &Identifier{Name: "b"},
					},
				},
			},
		},
	}

	v := &countingVisitor{}
	fn.Accept(v)
	fn.Body.Statements[0].Accept(v)
	fn.Body.Statements[0].(*ReturnStatement).Value.Accept(v)

	want := []string{"FunctionDeclaration:add", "ReturnStatement", "BinaryExpression:+"}
	if len(v.calls) != len(want) {
		t.Fatalf("got %d calls, want %d: %v", len(v.calls), len(want), v.calls)
	}
	for i := range want {
		if v.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, v.calls[i], want[i])
		}
	}
}

func TestDeclarationsSatisfyStatement(t *testing.T) {
	var stmts []Statement
	stmts = append(stmts,
		&FunctionDeclaration{Name: "f"},
		&ClassDeclaration{Name: "C"},
		&InterfaceDeclaration{Name: "I"},
		&EnumDeclaration{Name: "E"},
		&TypeAliasDeclaration{Name: "T"},
		&VariableDeclaration{Name: "v"},
	)
	if len(stmts) != 6 {
		t.Fatalf("expected 6 statements, got %d", len(stmts))
	}
}

func TestLocationPropagation(t *testing.T) {
	loc := diagnostics.Location{File: "a.ts", Line: 3, Column: 5}
	id := &Identifier{Location: loc, Name: "x"}
	if id.Pos() != loc {
		t.Errorf("Pos() = %+v, want %+v", id.Pos(), loc)
	}
}

func TestPatternVariants(t *testing.T) {
	var patterns []Pattern
	patterns = append(patterns,
		&IdentifierPattern{Name: "x"},
		&ArrayPattern{Elements: []*ArrayPatternElement{
			{Target: &IdentifierPattern{Name: "a"}},
			{Rest: true, Target: &IdentifierPattern{Name: "rest"}},
		}},
		&ObjectPattern{
			Properties: []*ObjectPatternProperty{
				{Key: "a", Target: &IdentifierPattern{Name: "a"}},
			},
			RestName: "rest",
		},
	)
	if len(patterns) != 3 {
		t.Fatalf("expected 3 patterns, got %d", len(patterns))
	}
}

func TestMarkerExpressionKinds(t *testing.T) {
	defaultOf := &MarkerExpression{Kind: MarkerDefaultOf, TypeArg: &NamedType{Name: "int"}}
	isType := &MarkerExpression{Kind: MarkerIsType, TypeArg: &NamedType{Name: "string"}, Argument: &Identifier{Name: "x"}}
	if defaultOf.Kind == isType.Kind {
		t.Fatal("expected distinct marker kinds")
	}
}
