package ast

import (
	"github.com/alexjlaberge/CompilerP3/internal/source"
	"github.com/alexjlaberge/CompilerP3/internal/types"
)

// BuiltinType is a written occurrence of one of the primitive type names.
type BuiltinType struct {
	base
	T types.Type
}

func NewBuiltinType(loc *source.Location, t types.Type) *BuiltinType {
	b := &BuiltinType{T: t}
	b.location = loc
	return b
}

func (b *BuiltinType) TypeRef()        {}
func (b *BuiltinType) Sem() types.Type { return b.T }

// NamedType is a written reference to a class or interface by name.
type NamedType struct {
	base
	Ident *Identifier
}

func NewNamedType(id *Identifier) *NamedType {
	n := &NamedType{Ident: id}
	n.location = id.Loc()
	attach(n, id)
	return n
}

func (n *NamedType) TypeRef()        {}
func (n *NamedType) Sem() types.Type { return types.NewNamed(n.Ident.Value) }

// ArrayType is a written array type, element type followed by [].
type ArrayType struct {
	base
	Elem TypeRef
}

func NewArrayType(loc *source.Location, elem TypeRef) *ArrayType {
	a := &ArrayType{Elem: elem}
	a.location = loc
	attach(a, elem)
	return a
}

func (a *ArrayType) TypeRef()        {}
func (a *ArrayType) Sem() types.Type { return types.NewArray(a.Elem.Sem()) }
