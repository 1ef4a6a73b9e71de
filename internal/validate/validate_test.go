package validate

import (
	"testing"

	"github.com/tsoniclang/tsonic/internal/ast"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
)

func TestDynamicImportIsDiagnosed(t *testing.T) {
	col := diagnostics.NewCollector()
	v := New(col)
	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.ExpressionStatement{Expression: &ast.CallExpression{
				Callee: &ast.Identifier{Name: "import"},
				Arguments: []*ast.Argument{{Value: &ast.LiteralExpression{Kind: ast.LiteralString, Raw: "./x"}}},
			}},
		},
	}
	v.Validate(prog)
	assertHasCode(t, col, diagnostics.CodeDynamicImport)
}

func TestPromiseChainMethodIsDiagnosed(t *testing.T) {
	col := diagnostics.NewCollector()
	v := New(col)
	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.ExpressionStatement{Expression: &ast.CallExpression{
				Callee: &ast.MemberExpression{Object: &ast.Identifier{Name: "p"}, Property: "then"},
			}},
		},
	}
	v.Validate(prog)
	assertHasCode(t, col, diagnostics.CodePromiseChain)
}

func TestForbiddenUtilityTypeIsDiagnosed(t *testing.T) {
	col := diagnostics.NewCollector()
	v := New(col)
	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.VariableDeclaration{
				Name: "x",
				TypeAnnotation: &ast.NamedType{
					Name:      "Array",
					Arguments: []ast.Type{&ast.NamedType{Name: "Partial", Arguments: []ast.Type{&ast.NamedType{Name: "Widget"}}}},
				},
			},
		},
	}
	v.Validate(prog)
	assertHasCode(t, col, diagnostics.CodeForbiddenUtilType)
}

func TestRecursiveAliasIsDiagnosed(t *testing.T) {
	col := diagnostics.NewCollector()
	v := New(col)
	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.TypeAliasDeclaration{Name: "Tree", Value: &ast.UnionType{Members: []ast.Type{
				&ast.NamedType{Name: "Tree"},
				&ast.NamedType{Name: "string"},
			}}},
		},
	}
	v.Validate(prog)
	assertHasCode(t, col, diagnostics.CodeRecursiveAlias)
}

func TestDuplicateNamedExportIsDiagnosed(t *testing.T) {
	col := diagnostics.NewCollector()
	v := New(col)
	prog := &ast.Program{
		Package: &ast.PackageDeclaration{
			Exports: []*ast.ExportSpec{{Symbol: "foo"}, {Symbol: "foo"}},
		},
	}
	v.Validate(prog)
	assertHasCode(t, col, diagnostics.CodeDuplicateNamedExport)
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
