package compiler

import (
	"fmt"
	"testing"

	"github.com/tsoniclang/tsonic/internal/ast"
)

func TestCompileProducesIRForATrivialModule(t *testing.T) {
	entry := "/virtual/main"
	prog := &ast.Program{
		File: entry,
		Package: &ast.PackageDeclaration{
			Name:    "main",
			Exports: []*ast.ExportSpec{{Symbol: "answer"}},
		},
		Statements: []ast.Statement{
			&ast.FunctionDeclaration{
				Name:       "answer",
				ReturnType: &ast.NamedType{Name: "int"},
				Body: &ast.BlockStatement{Statements: []ast.Statement{
					&ast.ReturnStatement{Value: &ast.LiteralExpression{Kind: ast.LiteralInt, Raw: "42"}},
				}},
			},
		},
	}

	result, diags := Compile(entry, Options{
		ProjectRoot: "/virtual",
		ParseFile: func(path string) (*ast.Program, error) {
			if path == entry {
				return prog, nil
			}
			return nil, fmt.Errorf("no such module: %s", path)
		},
	})

	for _, d := range diags {
		if d.Severity == "error" {
			t.Fatalf("unexpected error diagnostic: %s", d.Error())
		}
	}
	if result.RunID == "" {
		t.Error("expected a non-empty RunID")
	}
	if len(result.IR) != 1 {
		t.Fatalf("expected 1 IR module, got %d", len(result.IR))
	}
}

func TestCompileReportsMissingEntryModule(t *testing.T) {
	_, diags := Compile("/virtual/missing", Options{
		ParseFile: func(path string) (*ast.Program, error) {
			return nil, fmt.Errorf("not found")
		},
	})
	hasError := false
	for _, d := range diags {
		if d.Severity == "error" {
			hasError = true
		}
	}
	if !hasError {
		t.Fatal("expected at least one error diagnostic for a missing entry module")
	}
}
