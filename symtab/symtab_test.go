package symtab

import (
	"testing"

	"github.com/bxlang/bx/types"
	"github.com/stretchr/testify/require"
)

func TestDeclareAndResolve(t *testing.T) {
	tab := New()
	require.True(t, tab.Declare(&Symbol{Name: "x", Type: types.Int, Temp: "%0"}))

	sym, ok := tab.Resolve("x")
	require.True(t, ok)
	require.Equal(t, "x", sym.Name)
	require.Equal(t, types.Int, sym.Type)
	require.Equal(t, "%0", sym.Temp)

	_, ok = tab.Resolve("y")
	require.False(t, ok)
}

func TestDuplicateDeclarationKeepsOriginal(t *testing.T) {
	tab := New()
	require.True(t, tab.Declare(&Symbol{Name: "x", Temp: "%0"}))
	require.False(t, tab.Declare(&Symbol{Name: "x", Temp: "%1"}))

	sym, ok := tab.Resolve("x")
	require.True(t, ok)
	require.Equal(t, "%0", sym.Temp)
}

func TestShadowing(t *testing.T) {
	tab := New()
	tab.Declare(&Symbol{Name: "x", Type: types.Int, Temp: "%0"})

	tab.Push()
	// Same name in an inner scope is a new, distinct binding.
	require.True(t, tab.Declare(&Symbol{Name: "x", Type: types.Bool, Temp: "%1"}))

	sym, ok := tab.Resolve("x")
	require.True(t, ok)
	require.Equal(t, "%1", sym.Temp)
	require.Equal(t, types.Bool, sym.Type)

	// Popping the scope uncovers the outer binding again.
	tab.Pop()
	sym, ok = tab.Resolve("x")
	require.True(t, ok)
	require.Equal(t, "%0", sym.Temp)
	require.Equal(t, types.Int, sym.Type)
}

func TestResolveSearchesEnclosingScopes(t *testing.T) {
	tab := New()
	tab.Declare(&Symbol{Name: "outer", Temp: "%0"})
	tab.Push()
	tab.Push()

	sym, ok := tab.Resolve("outer")
	require.True(t, ok)
	require.Equal(t, "%0", sym.Temp)
}

func TestDeclaredInCurrentScope(t *testing.T) {
	tab := New()
	tab.Declare(&Symbol{Name: "x"})
	require.True(t, tab.DeclaredInCurrentScope("x"))

	tab.Push()
	// The enclosing binding is visible to Resolve but is not a
	// same-scope declaration.
	require.False(t, tab.DeclaredInCurrentScope("x"))
	_, ok := tab.Resolve("x")
	require.True(t, ok)
}

func TestDepth(t *testing.T) {
	tab := New()
	require.Equal(t, 1, tab.Depth())
	tab.Push()
	tab.Push()
	require.Equal(t, 3, tab.Depth())
	tab.Pop()
	require.Equal(t, 2, tab.Depth())
}

func TestPopOutermostPanics(t *testing.T) {
	tab := New()
	require.Panics(t, func() { tab.Pop() })
}
