package irdump

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/handles"
	"github.com/tsoniclang/tsonic/internal/ir"
)

// The Emitter Contract requires the same finalized IR to print identically
// on every run (no iteration-order or handle-numbering leakage). A snapshot
// pins that rendering so a future regression in determinism shows up as a
// diff instead of silent drift.
func TestDumpIsDeterministicAcrossRuns(t *testing.T) {
	reg := handles.NewRegistry()
	cat := catalog.New(reg)
	intId, _ := cat.ResolveTsName("int")
	boolId, _ := cat.ResolveTsName("bool")

	build := func() *ir.Module {
		return &ir.Module{
			Path: "/virtual/widgets",
			Statements: []ir.Statement{
				&ir.ClassDecl{
					Name: "Widget",
					Methods: []*ir.FuncDecl{
						{
							Name:       "isReady",
							Params:     []*ir.Param{{Name: "strict", Type: boolId}},
							ReturnType: boolId,
							Body: &ir.Block{Statements: []ir.Statement{
								&ir.Return{Value: &ir.Ident{Name: "strict", Type: boolId}},
							}},
						},
					},
				},
				&ir.FuncDecl{
					Name:       "main",
					ReturnType: intId,
					Body: &ir.Block{Statements: []ir.Statement{
						&ir.Return{Value: &ir.Ident{Name: "x", Type: intId}},
					}},
				},
			},
		}
	}

	first := New(cat).Dump(build())
	second := New(cat).Dump(build())
	if first != second {
		t.Fatalf("expected identical dumps across independent builds:\n--- first ---\n%s\n--- second ---\n%s", first, second)
	}

	snaps.MatchSnapshot(t, first)
}
