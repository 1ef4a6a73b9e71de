package convert

import (
	"github.com/tsoniclang/tsonic/internal/ast"
	"github.com/tsoniclang/tsonic/internal/catalog"
)

// narrowGuard recognizes the handful of type-guard forms SPEC_FULL §6.1
// requires the converter to understand — `istype<T>(x)` and
// `x instanceof T` — and returns the narrowed name plus the TypeId it
// narrows to in the then-branch and the else-branch. A guard that isn't
// recognized returns an empty name, and convertIf leaves both branches
// converted against the identifier's ordinary declared type.
func (c *Converter) narrowGuard(test ast.Expression) (name string, thenType, elseType catalog.TypeId) {
	switch n := test.(type) {
	case *ast.MarkerExpression:
		if n.Kind != ast.MarkerIsType {
			return "", catalog.NoType, catalog.NoType
		}
		id, ok := n.Argument.(*ast.Identifier)
		if !ok {
			return "", catalog.NoType, catalog.NoType
		}
		target := c.ResolveTypeSyntax(n.TypeArg)
		declared, _ := c.scope.lookup(id.Name)
		return id.Name, target, declared

	case *ast.BinaryExpression:
		if n.Operator != ast.OpInstance {
			return "", catalog.NoType, catalog.NoType
		}
		id, ok := n.Left.(*ast.Identifier)
		if !ok {
			return "", catalog.NoType, catalog.NoType
		}
		named, ok := n.Right.(*ast.Identifier)
		if !ok {
			return "", catalog.NoType, catalog.NoType
		}
		target, found := c.cat.ResolveTsName(named.Name)
		if !found {
			return "", catalog.NoType, catalog.NoType
		}
		declared, _ := c.scope.lookup(id.Name)
		return id.Name, target, declared

	default:
		return "", catalog.NoType, catalog.NoType
	}
}
