// Package types defines the BX type system: int, bool, and an internal
// error sentinel used to suppress cascading diagnostics.
package types

// Type is the resolved type of an expression or variable.
type Type int

const (
	// Invalid is the zero value, before type checking has run.
	Invalid Type = iota

	// Int is the 64-bit signed integer type.
	Int

	// Bool is the boolean type.
	Bool

	// Error is an internal sentinel assigned to expressions whose type
	// could not be determined. It is compatible with nothing, but an
	// expression containing it does not itself produce additional
	// mismatch diagnostics.
	Error
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Error:
		return "error"
	default:
		return "invalid"
	}
}

// FromName returns the type named by a source-level annotation.
func FromName(name string) (Type, bool) {
	switch name {
	case "int":
		return Int, true
	case "bool":
		return Bool, true
	default:
		return Invalid, false
	}
}
