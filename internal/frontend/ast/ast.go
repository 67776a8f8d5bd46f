package ast

import (
	"github.com/alexjlaberge/CompilerP3/internal/source"
	"github.com/alexjlaberge/CompilerP3/internal/types"
)

// Node is the base interface for all AST nodes. Every node carries an
// optional source location and a back-link to its parent; the parent is nil
// only for the Program root. Parent links are not set during construction
// (the parse builds bottom-up) but by the constructors of the owning nodes,
// so a fully built tree always satisfies: for every non-root node n,
// n.Parent() is the unique node that owns n as a direct child.
type Node interface {
	INode()
	Loc() *source.Location
	Parent() Node
	setParent(Node)
}

// Expression represents any node that produces a value. Its inferred type is
// unset until semantic analysis and is assigned exactly once per check; a
// failed check assigns the absorbing error type. Every expression can also
// stand as a statement.
type Expression interface {
	Node
	Expr()
	Stmt()
	ResultType() types.Type
	SetResultType(types.Type)
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	Stmt()
}

// Decl represents a named declaration (variable, function, class, interface)
type Decl interface {
	Node
	Decl()
	Name() *Identifier
}

// TypeRef represents a type as written in a declaration or new-expression.
// Unlike the shared types.Type singletons, TypeRef nodes live in the tree and
// carry the location of the written type.
type TypeRef interface {
	Node
	TypeRef()
	// Sem returns the semantic type this reference denotes. Resolution of
	// named references to declarations is the checker's job; Sem only maps
	// spelling to type value.
	Sem() types.Type
}

// base carries the pieces every node shares. It is unexported so that only
// this package can implement Node; construction goes through the New*
// functions, which perform the attach phase.
type base struct {
	location *source.Location
	parent   Node
}

func (b *base) INode()                {}
func (b *base) Loc() *source.Location { return b.location }
func (b *base) Parent() Node          { return b.parent }
func (b *base) setParent(p Node)      { b.parent = p }

// exprBase adds the inferred-type slot shared by all expressions.
type exprBase struct {
	base
	typ types.Type // populated during semantic analysis
}

func (e *exprBase) Expr()                     {}
func (e *exprBase) Stmt()                     {}
func (e *exprBase) ResultType() types.Type    { return e.typ }
func (e *exprBase) SetResultType(t types.Type) { e.typ = t }

// attach sets the parent back-link on each non-nil child.
func attach(parent Node, children ...Node) {
	for _, child := range children {
		if child != nil {
			child.setParent(parent)
		}
	}
}

// Identifier is a leaf node holding a name.
type Identifier struct {
	base
	Value string
}

func NewIdentifier(loc *source.Location, name string) *Identifier {
	id := &Identifier{Value: name}
	id.location = loc
	return id
}

// Program is the tree root: an ordered list of top-level declarations.
type Program struct {
	base
	Decls []Decl
}

func NewProgram(decls []Decl) *Program {
	p := &Program{Decls: decls}
	for _, d := range decls {
		attach(p, d)
	}
	return p
}
