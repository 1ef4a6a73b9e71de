package resolver

import (
	"fmt"
	"testing"

	"github.com/tsoniclang/tsonic/internal/ast"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
)

func TestClassifyImportKinds(t *testing.T) {
	r := New(map[string]bool{"Acme": true})
	cases := map[string]ast.ImportKind{
		"./sibling":    ast.ImportLocal,
		"../parent":    ast.ImportLocal,
		"tsonic:core":  ast.ImportCoreLanguage,
		"Acme/Widgets": ast.ImportForeignCLR,
		"leftpad":      ast.ImportUnknown,
	}
	for spec, want := range cases {
		if got := r.Classify(spec); got != want {
			t.Errorf("Classify(%q) = %v, want %v", spec, got, want)
		}
	}
}

func TestResolveDetectsImportCycle(t *testing.T) {
	programs := map[string]*ast.Program{
		"/root/a": {File: "/root/a", Imports: []*ast.ImportDeclaration{{Specifier: "./b"}}},
		"/root/b": {File: "/root/b", Imports: []*ast.ImportDeclaration{{Specifier: "./a"}}},
	}
	r := New(nil)
	col := diagnostics.NewCollector()
	_, err := r.Resolve(col, "/root/a", func(path string) (*ast.Program, error) {
		if p, ok := programs[path]; ok {
			return p, nil
		}
		return nil, fmt.Errorf("not found: %s", path)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !col.HasErrors() {
		t.Fatal("expected a cycle diagnostic")
	}
	found := false
	for _, d := range col.All() {
		if d.Code == diagnostics.CodeImportCycle {
			found = true
		}
	}
	if !found {
		t.Fatal("expected CodeImportCycle among diagnostics")
	}
}

func TestResolveMissingModule(t *testing.T) {
	r := New(nil)
	col := diagnostics.NewCollector()
	_, err := r.Resolve(col, "/root/missing.ts", func(path string) (*ast.Program, error) {
		return nil, fmt.Errorf("no such file")
	})
	if err == nil {
		t.Fatal("expected an error for a missing module")
	}
	if !col.HasErrors() {
		t.Fatal("expected CodeModuleNotFound diagnostic")
	}
}
