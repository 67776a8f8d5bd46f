// Package resolver implements name resolution over the parent-linked tree.
// Scopes are implicit in tree structure: a lookup starts at a node and walks
// the parent chain, and only Program, StmtBlock, FnDecl, ClassDecl and
// InterfaceDecl contribute bindings on the way up. Inner scopes win:
// block-local variables shadow formals, formals shadow class members, class
// members shadow globals, and subclass members shadow superclass members.
package resolver

import (
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
)

// LookupName returns the declaration named name visible at node n, or nil.
// Querying the same node twice without tree mutation returns the same
// declaration.
func LookupName(n ast.Node, name string) ast.Decl {
	for node := n; node != nil; node = node.Parent() {
		switch scope := node.(type) {
		case *ast.Program:
			// top of the chain: the whole decl list is searched, so
			// forward references across top-level decls resolve
			return findDecl(scope.Decls, name)
		case *ast.StmtBlock:
			if d := findVarDecl(scope.Decls, name); d != nil {
				return d
			}
		case *ast.FnDecl:
			if d := findVarDecl(scope.Formals, name); d != nil {
				return d
			}
		case *ast.ClassDecl:
			if d := ClassMember(scope, name); d != nil {
				return d
			}
		case *ast.InterfaceDecl:
			if d := findFnDecl(scope.Members, name); d != nil {
				return d
			}
		}
	}
	return nil
}

// EnclosingClass returns the nearest enclosing class of n, if any.
func EnclosingClass(n ast.Node) *ast.ClassDecl {
	for node := n; node != nil; node = node.Parent() {
		if class, ok := node.(*ast.ClassDecl); ok {
			return class
		}
	}
	return nil
}

// EnclosingFunction returns the nearest enclosing function of n, if any.
func EnclosingFunction(n ast.Node) *ast.FnDecl {
	for node := n; node != nil; node = node.Parent() {
		if fn, ok := node.(*ast.FnDecl); ok {
			return fn
		}
	}
	return nil
}

// InsideBreakable reports whether some ancestor of n is a context that break
// may exit: a while or for loop, or a switch case.
func InsideBreakable(n ast.Node) bool {
	for node := n.Parent(); node != nil; node = node.Parent() {
		switch node.(type) {
		case *ast.WhileStmt, *ast.ForStmt, *ast.SwitchStmt:
			return true
		}
	}
	return false
}

// ClassMember finds a member of class by name, searching the class's own
// members first and then the superclass chain, so subclass members shadow
// inherited ones. A malformed extends graph (unresolvable or cyclic) simply
// ends the walk.
func ClassMember(class *ast.ClassDecl, name string) ast.Decl {
	seen := make(map[*ast.ClassDecl]bool)
	for c := class; c != nil && !seen[c]; c = Superclass(c) {
		seen[c] = true
		if d := findDecl(c.Members, name); d != nil {
			return d
		}
	}
	return nil
}

// InterfaceMember finds a method prototype of iface by name.
func InterfaceMember(iface *ast.InterfaceDecl, name string) *ast.FnDecl {
	return findFnDecl(iface.Members, name)
}

// Superclass resolves the extends reference of class to its ClassDecl, or
// nil when there is none or it does not name a class. Resolution starts at
// the class's parent so a class does not find itself through its own scope.
func Superclass(class *ast.ClassDecl) *ast.ClassDecl {
	if class.Extends == nil || class.Parent() == nil {
		return nil
	}
	d := LookupName(class.Parent(), class.Extends.Ident.Value)
	super, _ := d.(*ast.ClassDecl)
	return super
}

func findDecl(decls []ast.Decl, name string) ast.Decl {
	for _, d := range decls {
		if d.Name().Value == name {
			return d
		}
	}
	return nil
}

func findVarDecl(decls []*ast.VarDecl, name string) ast.Decl {
	for _, d := range decls {
		if d.Ident.Value == name {
			return d
		}
	}
	return nil
}

func findFnDecl(decls []*ast.FnDecl, name string) *ast.FnDecl {
	for _, d := range decls {
		if d.Ident.Value == name {
			return d
		}
	}
	return nil
}
