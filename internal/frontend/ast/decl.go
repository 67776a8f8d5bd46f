package ast

import (
	"github.com/alexjlaberge/CompilerP3/internal/source"
)

// VarDecl declares a variable: a name and its written type. Used for
// globals, class fields, function formals and block-local variables.
type VarDecl struct {
	base
	Ident    *Identifier
	DeclType TypeRef
}

func NewVarDecl(id *Identifier, t TypeRef) *VarDecl {
	d := &VarDecl{Ident: id, DeclType: t}
	d.location = id.Loc()
	attach(d, id, t)
	return d
}

func (d *VarDecl) Decl()             {}
func (d *VarDecl) Name() *Identifier { return d.Ident }

// FnDecl declares a function or method: return type, ordered formals and a
// body. The body is nil exactly when the declaration is an interface member
// prototype; a nil body anywhere else is a structural error.
type FnDecl struct {
	base
	Ident      *Identifier
	ReturnType TypeRef
	Formals    []*VarDecl
	Body       Statement
}

func NewFnDecl(id *Identifier, returnType TypeRef, formals []*VarDecl) *FnDecl {
	d := &FnDecl{Ident: id, ReturnType: returnType, Formals: formals}
	d.location = id.Loc()
	attach(d, id, returnType)
	for _, f := range formals {
		attach(d, f)
	}
	return d
}

// SetBody attaches the function body. The parser calls this after the
// signature node exists so the body's parent chain is complete.
func (d *FnDecl) SetBody(body Statement) {
	d.Body = body
	attach(d, body)
}

func (d *FnDecl) Decl()             {}
func (d *FnDecl) Name() *Identifier { return d.Ident }

// ClassDecl declares a class: optional superclass, implemented interfaces
// and ordered members (fields and methods).
type ClassDecl struct {
	base
	Ident      *Identifier
	Extends    *NamedType // nil when the class has no superclass
	Implements []*NamedType
	Members    []Decl
}

func NewClassDecl(loc *source.Location, id *Identifier, extends *NamedType, implements []*NamedType, members []Decl) *ClassDecl {
	d := &ClassDecl{Ident: id, Extends: extends, Implements: implements, Members: members}
	d.location = loc
	attach(d, id)
	if extends != nil {
		attach(d, extends)
	}
	for _, imp := range implements {
		attach(d, imp)
	}
	for _, m := range members {
		attach(d, m)
	}
	return d
}

func (d *ClassDecl) Decl()             {}
func (d *ClassDecl) Name() *Identifier { return d.Ident }

// InterfaceDecl declares an interface: a list of method prototypes.
type InterfaceDecl struct {
	base
	Ident   *Identifier
	Members []*FnDecl
}

func NewInterfaceDecl(loc *source.Location, id *Identifier, members []*FnDecl) *InterfaceDecl {
	d := &InterfaceDecl{Ident: id, Members: members}
	d.location = loc
	attach(d, id)
	for _, m := range members {
		attach(d, m)
	}
	return d
}

func (d *InterfaceDecl) Decl()             {}
func (d *InterfaceDecl) Name() *Identifier { return d.Ident }
