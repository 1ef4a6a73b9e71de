package program

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSeedsDistinctRunIDsAndIndependentCatalogs(t *testing.T) {
	a := New(CompileOptions{ProjectRoot: "/proj/a"})
	b := New(CompileOptions{ProjectRoot: "/proj/b"})

	require.NotEqual(t, a.RunID, b.RunID, "expected distinct RunIDs across independent compilations")
	require.NotSame(t, a.Catalog, b.Catalog, "expected independent catalogs so concurrent compilations don't share state")

	_, ok := a.Catalog.ResolveTsName("int")
	require.True(t, ok, "expected the numeric ladder to be seeded")
	require.Equal(t, "/proj/a", a.Options.ProjectRoot, "expected options to be carried through unmodified")
}
