package pipeline

import (
	"fmt"
	"testing"

	"github.com/tsoniclang/tsonic/internal/ast"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
	"github.com/tsoniclang/tsonic/internal/ir"
	"github.com/tsoniclang/tsonic/internal/program"
)

func TestDefaultPipelineRunsEntryModuleThroughSoundnessGate(t *testing.T) {
	entry := "/virtual/main"
	prog := &ast.Program{
		File: entry,
		Package: &ast.PackageDeclaration{
			Name:    "main",
			Exports: []*ast.ExportSpec{{Symbol: "run"}},
		},
		Statements: []ast.Statement{
			&ast.FunctionDeclaration{
				Name:       "run",
				ReturnType: &ast.NamedType{Name: "int"},
				Body: &ast.BlockStatement{Statements: []ast.Statement{
					&ast.ReturnStatement{Value: &ast.LiteralExpression{Kind: ast.LiteralInt, Raw: "1"}},
				}},
			},
		},
	}
	programOf := func(path string) (*ast.Program, error) {
		if path == entry {
			return prog, nil
		}
		return nil, fmt.Errorf("no such module: %s", path)
	}

	p := program.New(program.CompileOptions{ProjectRoot: "/virtual"})
	ctx := NewContext(p, entry, programOf, nil)

	Default().Run(ctx)

	if p.Collector.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", p.Collector.All())
	}
	if len(ctx.Modules) != 1 {
		t.Fatalf("expected 1 resolved module, got %d", len(ctx.Modules))
	}
	if len(ctx.IR) != 1 {
		t.Fatalf("expected 1 converted IR module, got %d", len(ctx.IR))
	}
	if len(ctx.Specialize) != 1 {
		t.Fatalf("expected 1 specialization engine, got %d", len(ctx.Specialize))
	}
}

func TestDefaultPipelineSpecializesGenericCallSiteIntoModuleStatements(t *testing.T) {
	entry := "/virtual/main"
	prog := &ast.Program{
		File: entry,
		Package: &ast.PackageDeclaration{
			Name:    "main",
			Exports: []*ast.ExportSpec{{Symbol: "run"}},
		},
		Statements: []ast.Statement{
			&ast.FunctionDeclaration{
				Name:       "identity",
				TypeParams: []*ast.TypeParameter{{Name: "T"}},
				Params:     []*ast.Parameter{{Name: "x", Annotation: &ast.NamedType{Name: "T"}}},
				ReturnType: &ast.NamedType{Name: "T"},
				Body: &ast.BlockStatement{Statements: []ast.Statement{
					&ast.ReturnStatement{Value: &ast.Identifier{Name: "x"}},
				}},
			},
			&ast.FunctionDeclaration{
				Name:       "run",
				ReturnType: &ast.NamedType{Name: "int"},
				Body: &ast.BlockStatement{Statements: []ast.Statement{
					&ast.VariableDeclaration{
						Name:           "y",
						TypeAnnotation: &ast.NamedType{Name: "int"},
						Value: &ast.CallExpression{
							Callee:        &ast.Identifier{Name: "identity"},
							TypeArguments: []ast.Type{&ast.NamedType{Name: "int"}},
							Arguments:     []*ast.Argument{{Value: &ast.LiteralExpression{Kind: ast.LiteralInt, Raw: "1"}}},
						},
					},
					&ast.ReturnStatement{Value: &ast.Identifier{Name: "y"}},
				}},
			},
		},
	}
	programOf := func(path string) (*ast.Program, error) {
		if path == entry {
			return prog, nil
		}
		return nil, fmt.Errorf("no such module: %s", path)
	}

	p := program.New(program.CompileOptions{ProjectRoot: "/virtual"})
	ctx := NewContext(p, entry, programOf, nil)

	Default().Run(ctx)

	if p.Collector.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", p.Collector.All())
	}
	if len(ctx.IR) != 1 {
		t.Fatalf("expected 1 converted IR module, got %d", len(ctx.IR))
	}

	var sawGeneric, sawSpecialized bool
	for _, s := range ctx.IR[0].Statements {
		fn, ok := s.(*ir.FuncDecl)
		if !ok {
			continue
		}
		switch fn.Name {
		case "identity":
			sawGeneric = true
		case "identity__int":
			sawSpecialized = true
		}
	}
	if sawGeneric {
		t.Error("expected the unspecialized generic declaration to be dropped from the module's statements")
	}
	if !sawSpecialized {
		t.Error("expected the specialized identity__int clone to be appended to the module's statements")
	}
}

func TestPipelineStopsAtModuleNotFound(t *testing.T) {
	entry := "/virtual/missing"
	programOf := func(path string) (*ast.Program, error) {
		return nil, fmt.Errorf("not found")
	}
	p := program.New(program.CompileOptions{})
	ctx := NewContext(p, entry, programOf, nil)

	Default().Run(ctx)

	if !p.Collector.HasErrors() {
		t.Fatal("expected a module-not-found diagnostic")
	}
	found := false
	for _, d := range p.Collector.All() {
		if d.Code == diagnostics.CodeModuleNotFound {
			found = true
		}
	}
	if !found {
		t.Errorf("expected CodeModuleNotFound, got %v", p.Collector.All())
	}
	if len(ctx.IR) != 0 {
		t.Error("expected conversion to be skipped after a resolution error")
	}
}
