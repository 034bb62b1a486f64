package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"def", DEF},
		{"main", MAIN},
		{"var", VAR},
		{"print", PRINT},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"break", BREAK},
		{"continue", CONTINUE},
		{"int", INT},
		{"bool", BOOL},
		{"true", TRUE},
		{"false", FALSE},
		{"x", IDENT},
		{"printer", IDENT},
		{"Break", IDENT},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, LookupIdentifier(tt.input), tt.input)
	}
}

func TestPositionNumbering(t *testing.T) {
	p := Position{Char: 10, Line: 2, Column: 4}
	require.Equal(t, 3, p.LineNumber())
	require.Equal(t, 5, p.ColumnNumber())
	require.Equal(t, "3:5", p.String())
}
