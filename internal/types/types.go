package types

// Type is the semantic representation of Decaf types.
//
// Design principles:
// - Types are immutable after creation
// - Equality is nominal: primitives match by name, named types by identifier,
//   arrays by element type; a named type never equals a primitive
// - The built-in primitives are process-wide singletons and are never
//   attached to the syntax tree
type Type interface {
	// String returns the type name as it appears in diagnostics
	String() string

	// Equals checks nominal equality with another type
	Equals(other Type) bool

	// isType is a marker method to prevent external implementation
	isType()
}

// Primitive represents the built-in scalar types (int, double, bool, string,
// void) plus the null and error sentinels.
type Primitive struct {
	name string
}

func (p *Primitive) String() string { return p.name }
func (p *Primitive) isType()        {}

func (p *Primitive) Equals(other Type) bool {
	o, ok := other.(*Primitive)
	return ok && p.name == o.name
}

// Named represents a class or interface reference. Equal iff same name.
type Named struct {
	Name string
}

func NewNamed(name string) *Named {
	return &Named{Name: name}
}

func (n *Named) String() string { return n.Name }
func (n *Named) isType()        {}

func (n *Named) Equals(other Type) bool {
	o, ok := other.(*Named)
	return ok && n.Name == o.Name
}

// Array represents an array of any element type. Arrays are invariant:
// equal iff element types are equal.
type Array struct {
	Elem Type
}

func NewArray(elem Type) *Array {
	return &Array{Elem: elem}
}

func (a *Array) String() string { return a.Elem.String() + "[]" }
func (a *Array) isType()        {}

func (a *Array) Equals(other Type) bool {
	o, ok := other.(*Array)
	return ok && a.Elem.Equals(o.Elem)
}

// The shared built-in type singletons. Initialized once, read-only after.
var (
	Int    Type = &Primitive{name: "int"}
	Double Type = &Primitive{name: "double"}
	Bool   Type = &Primitive{name: "bool"}
	String Type = &Primitive{name: "string"}
	Void   Type = &Primitive{name: "void"}
	Null   Type = &Primitive{name: "null"}

	// Error is the absorbing sentinel: an expression whose operands include
	// Error becomes Error and produces no further diagnostics about itself.
	Error Type = &Primitive{name: "error"}
)

// FromName maps a built-in type name to its singleton. Returns nil for names
// that are not built-in primitives.
func FromName(name string) Type {
	switch name {
	case "int":
		return Int
	case "double":
		return Double
	case "bool":
		return Bool
	case "string":
		return String
	case "void":
		return Void
	case "null":
		return Null
	case "error":
		return Error
	default:
		return nil
	}
}

// IsPrimitive checks if a type is one of the built-in scalars (including the
// null and error sentinels). Named and array types are not primitive.
func IsPrimitive(t Type) bool {
	_, ok := t.(*Primitive)
	return ok
}

// IsNumeric checks if a type is int or double
func IsNumeric(t Type) bool {
	return t.Equals(Int) || t.Equals(Double)
}

// IsError checks for the absorbing error sentinel
func IsError(t Type) bool {
	return t != nil && t.Equals(Error)
}
