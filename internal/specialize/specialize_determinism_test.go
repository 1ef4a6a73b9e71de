package specialize

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/handles"
	"github.com/tsoniclang/tsonic/internal/ir"
)

// INV-DETERMINISM requires that specializing the same module twice, from
// scratch, produces the same emission order regardless of Go's randomized
// map iteration. cmp.Diff gives a readable failure if that ever regresses.
func TestKeysAreDeterministicAcrossIndependentEngines(t *testing.T) {
	build := func() []Key {
		reg := handles.NewRegistry()
		cat := catalog.New(reg)
		anyId, _ := cat.ResolveTsName("any")
		intId, _ := cat.ResolveTsName("int")
		stringId, _ := cat.ResolveTsName("string")
		boolId, _ := cat.ResolveTsName("bool")

		generic := &ir.FuncDecl{
			Name:       "identity",
			TypeParams: []catalog.TypeId{anyId},
			ReturnType: anyId,
			Body:       &ir.Block{},
		}
		mod := &ir.Module{Statements: []ir.Statement{generic}}
		engine := New(cat, mod)

		engine.RequestFunc("identity", []catalog.TypeId{intId})
		engine.RequestFunc("identity", []catalog.TypeId{stringId})
		engine.RequestFunc("identity", []catalog.TypeId{boolId})
		return engine.Keys()
	}

	first := build()
	second := build()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("expected identical specialization key order across independent engines (-first +second):\n%s", diff)
	}
}
