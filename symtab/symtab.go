// Package symtab implements the lexical scope stack shared by the type
// checker and the IR generator.
//
// Scopes follow a strict LIFO discipline: a scope is pushed when a block
// is entered and popped when it exits, and no scope outlives its block.
// Lookup searches from the innermost scope outward, so an inner
// declaration shadows an outer one with the same name.
package symtab

import (
	"github.com/bxlang/bx/diag"
	"github.com/bxlang/bx/types"
)

// Symbol is the record bound to a variable name. The type checker fills
// in Type; the IR generator fills in Temp, the variable's storage
// temporary.
type Symbol struct {
	Name      string
	Type      types.Type
	Temp      string
	DeclRange diag.Range
}

// Table is a stack of scopes mapping variable names to symbols.
type Table struct {
	scopes []map[string]*Symbol
}

// New returns a Table containing only the outermost scope.
func New() *Table {
	return &Table{scopes: []map[string]*Symbol{{}}}
}

// Push enters a new innermost scope.
func (t *Table) Push() {
	t.scopes = append(t.scopes, map[string]*Symbol{})
}

// Pop exits the innermost scope. Popping the outermost scope is a bug in
// the caller and panics.
func (t *Table) Pop() {
	if len(t.scopes) == 1 {
		panic("symtab: pop of outermost scope")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// Depth returns the number of active scopes.
func (t *Table) Depth() int {
	return len(t.scopes)
}

// Declare binds the symbol in the current scope. It returns false, and
// leaves the original binding intact, if the name is already declared in
// the current scope.
func (t *Table) Declare(sym *Symbol) bool {
	scope := t.scopes[len(t.scopes)-1]
	if _, exists := scope[sym.Name]; exists {
		return false
	}
	scope[sym.Name] = sym
	return true
}

// DeclaredInCurrentScope reports whether the name is already bound in
// the innermost scope, without searching enclosing scopes.
func (t *Table) DeclaredInCurrentScope(name string) bool {
	_, exists := t.scopes[len(t.scopes)-1][name]
	return exists
}

// Resolve looks the name up from the innermost scope outward. The first
// match wins.
func (t *Table) Resolve(name string) (*Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}
