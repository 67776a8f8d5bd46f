package checker

import (
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/semantics/resolver"
	"github.com/alexjlaberge/CompilerP3/internal/types"
)

// compatible reports whether a value of type src may appear where dst is
// expected: equal types, src a subtype of dst, or null against any
// non-primitive destination.
func (c *Checker) compatible(src, dst types.Type, at ast.Node) bool {
	if src.Equals(dst) {
		return true
	}
	return c.isSubtype(src, dst, at)
}

// isSubtype implements S <: T. The relation is reflexive; null is a subtype
// of every non-primitive; a named type is a subtype of whatever its class
// extends or implements, transitively. Arrays are invariant, so they relate
// only through equality. Named references are resolved through the scope of
// at; an unresolvable or cyclic inheritance graph just ends the walk.
func (c *Checker) isSubtype(src, dst types.Type, at ast.Node) bool {
	if src == nil || dst == nil {
		return false
	}
	if src.Equals(dst) {
		return true
	}
	if src.Equals(types.Null) {
		return !types.IsPrimitive(dst)
	}

	target, ok := dst.(*types.Named)
	if !ok {
		return false
	}
	start, ok := src.(*types.Named)
	if !ok {
		return false
	}

	seen := make(map[string]bool)
	queue := []string{start.Name}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if seen[name] {
			continue
		}
		seen[name] = true
		if name == target.Name {
			return true
		}
		if class, ok := resolver.LookupName(at, name).(*ast.ClassDecl); ok {
			if class.Extends != nil {
				queue = append(queue, class.Extends.Ident.Value)
			}
			for _, imp := range class.Implements {
				queue = append(queue, imp.Ident.Value)
			}
		}
	}
	return false
}
