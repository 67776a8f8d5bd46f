// Package checker performs semantic analysis over the parsed tree: it
// resolves every name to a declaration, infers and checks a type on every
// expression, enforces class and interface conformance, and validates
// statement contexts. It never mutates tree structure; the only writes are
// the inferred types on expression nodes. All user errors flow through the
// diagnostic bag and analysis always continues with the next sibling.
package checker

import (
	"fmt"

	"github.com/alexjlaberge/CompilerP3/internal/diagnostics"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/semantics/resolver"
	"github.com/alexjlaberge/CompilerP3/internal/source"
)

type Checker struct {
	bag *diagnostics.Bag
}

// Check analyzes the whole program and returns the number of errors found.
func Check(program *ast.Program, bag *diagnostics.Bag) int {
	c := &Checker{bag: bag}
	for _, d := range program.Decls {
		c.checkDecl(d)
	}
	return bag.ErrorCount()
}

func (c *Checker) report(loc *source.Location, format string, args ...any) {
	c.bag.Add(diagnostics.Errorf(loc, format, args...))
}

func (c *Checker) checkDecl(d ast.Decl) {
	switch decl := d.(type) {
	case *ast.VarDecl:
		c.checkVarDecl(decl)
	case *ast.FnDecl:
		c.checkFnDecl(decl)
	case *ast.ClassDecl:
		c.checkClassDecl(decl)
	case *ast.InterfaceDecl:
		c.checkInterfaceDecl(decl)
	default:
		panic(fmt.Sprintf("checker: unknown declaration %T", d))
	}
}

// checkConflict enforces one binding per name and scope: the first
// declaration keeps the binding, later ones are reported against it.
// Sibling classes are exempt: a class whose name clashes with an earlier
// class is not reported here, and the parser does not reject it either.
func (c *Checker) checkConflict(d ast.Decl) {
	name := d.Name().Value
	first := resolver.LookupName(d.Parent(), name)
	if first == nil || first == d {
		return
	}
	if _, isClass := d.(*ast.ClassDecl); isClass {
		if _, siblingClass := first.(*ast.ClassDecl); siblingClass {
			return
		}
	}
	line := 0
	if loc := first.Loc(); loc != nil {
		line = loc.Start.Line
	}
	c.report(d.Loc(), diagnostics.DeclConflict, name, line)
}

func (c *Checker) checkVarDecl(d *ast.VarDecl) {
	c.checkConflict(d)
	c.checkTypeRef(d.DeclType)
}

func (c *Checker) checkFnDecl(d *ast.FnDecl) {
	c.checkConflict(d)
	c.checkTypeRef(d.ReturnType)
	for _, formal := range d.Formals {
		c.checkVarDecl(formal)
	}

	if _, inInterface := d.Parent().(*ast.InterfaceDecl); inInterface {
		if d.Body != nil {
			panic("checker: interface prototype with a body")
		}
		return
	}
	if d.Body == nil {
		panic(fmt.Sprintf("checker: function '%s' has no body", d.Ident.Value))
	}
	c.checkStmt(d.Body)
}

func (c *Checker) checkClassDecl(d *ast.ClassDecl) {
	c.checkConflict(d)
	c.checkExtends(d)
	c.checkImplements(d)
	c.checkOverrides(d)
	for _, m := range d.Members {
		c.checkDecl(m)
	}
}

func (c *Checker) checkExtends(d *ast.ClassDecl) {
	if d.Extends == nil {
		return
	}
	name := d.Extends.Ident.Value
	if _, ok := resolver.LookupName(d.Parent(), name).(*ast.ClassDecl); !ok {
		c.report(d.Extends.Loc(), diagnostics.NoDeclFoundClass, name)
	}
}

func (c *Checker) checkImplements(d *ast.ClassDecl) {
	seen := make(map[string]bool)
	for _, ref := range d.Implements {
		name := ref.Ident.Value
		if seen[name] {
			c.report(ref.Loc(), diagnostics.InterfaceRepeated, d.Ident.Value, name)
			continue
		}
		seen[name] = true

		iface, ok := resolver.LookupName(d.Parent(), name).(*ast.InterfaceDecl)
		if !ok {
			c.report(ref.Loc(), diagnostics.NoDeclFoundInterface, name)
			continue
		}
		c.checkConformance(d, ref, iface)
	}
}

// checkConformance verifies that class provides every method the interface
// declares, with matching signatures. A method that is missing, hidden by a
// field, or only inherited with the wrong signature counts as unimplemented;
// a local method with the wrong signature is reported on the method itself.
func (c *Checker) checkConformance(class *ast.ClassDecl, ref *ast.NamedType, iface *ast.InterfaceDecl) {
	missing := false
	for _, proto := range iface.Members {
		impl, ok := resolver.ClassMember(class, proto.Ident.Value).(*ast.FnDecl)
		if !ok {
			missing = true
			continue
		}
		if signatureEqual(impl, proto) {
			continue
		}
		if declaredLocally(class, impl) {
			c.report(impl.Loc(), diagnostics.OverrideMismatch, impl.Ident.Value)
		} else {
			missing = true
		}
	}
	if missing {
		c.report(ref.Loc(), diagnostics.InterfaceNotImpl, class.Ident.Value, iface.Ident.Value)
	}
}

// checkOverrides verifies that every method the class redeclares keeps the
// signature of the method it overrides.
func (c *Checker) checkOverrides(d *ast.ClassDecl) {
	super := resolver.Superclass(d)
	if super == nil {
		return
	}
	for _, m := range d.Members {
		method, ok := m.(*ast.FnDecl)
		if !ok {
			continue
		}
		inherited, ok := resolver.ClassMember(super, method.Ident.Value).(*ast.FnDecl)
		if ok && !signatureEqual(method, inherited) {
			c.report(method.Loc(), diagnostics.OverrideMismatch, method.Ident.Value)
		}
	}
}

func (c *Checker) checkInterfaceDecl(d *ast.InterfaceDecl) {
	c.checkConflict(d)
	for _, m := range d.Members {
		c.checkFnDecl(m)
	}
}

// declaredLocally reports whether method appears in the class's own member
// list, as opposed to being inherited.
func declaredLocally(class *ast.ClassDecl, method *ast.FnDecl) bool {
	for _, m := range class.Members {
		if m == ast.Decl(method) {
			return true
		}
	}
	return false
}

// signatureEqual compares return type and ordered formal types, nominally.
func signatureEqual(a, b *ast.FnDecl) bool {
	if !a.ReturnType.Sem().Equals(b.ReturnType.Sem()) {
		return false
	}
	if len(a.Formals) != len(b.Formals) {
		return false
	}
	for i := range a.Formals {
		if !a.Formals[i].DeclType.Sem().Equals(b.Formals[i].DeclType.Sem()) {
			return false
		}
	}
	return true
}

// checkTypeRef validates that every named type mentioned in a written type
// resolves to a class or interface declaration.
func (c *Checker) checkTypeRef(ref ast.TypeRef) bool {
	switch t := ref.(type) {
	case *ast.ArrayType:
		return c.checkTypeRef(t.Elem)
	case *ast.NamedType:
		switch resolver.LookupName(t, t.Ident.Value).(type) {
		case *ast.ClassDecl, *ast.InterfaceDecl:
			return true
		}
		c.report(t.Loc(), diagnostics.NoDeclFoundType, t.Ident.Value)
		return false
	default:
		return true
	}
}
