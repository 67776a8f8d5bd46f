package checker

import (
	"fmt"

	"github.com/alexjlaberge/CompilerP3/internal/diagnostics"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/semantics/resolver"
	"github.com/alexjlaberge/CompilerP3/internal/types"
)

// checkExpr infers and assigns the type of e, emitting diagnostics for
// incompatibilities. Every expression is typed exactly once; when any
// operand has already failed, the error type absorbs and no diagnostic is
// emitted for e itself.
func (c *Checker) checkExpr(e ast.Expression) types.Type {
	t := c.inferExpr(e)
	e.SetResultType(t)
	return t
}

func (c *Checker) inferExpr(e ast.Expression) types.Type {
	switch expr := e.(type) {
	case *ast.IntConstant:
		return types.Int
	case *ast.DoubleConstant:
		return types.Double
	case *ast.BoolConstant:
		return types.Bool
	case *ast.StringConstant:
		return types.String
	case *ast.NullConstant:
		return types.Null
	case *ast.EmptyExpr:
		// stands for an absent expression: a bare return checks as void
		return types.Void
	case *ast.ReadIntegerExpr:
		return types.Int
	case *ast.ReadLineExpr:
		return types.String
	case *ast.This:
		return c.inferThis(expr)
	case *ast.ArithmeticExpr:
		return c.inferArithmetic(expr)
	case *ast.RelationalExpr:
		return c.inferRelational(expr)
	case *ast.EqualityExpr:
		return c.inferEquality(expr)
	case *ast.LogicalExpr:
		return c.inferLogical(expr)
	case *ast.AssignExpr:
		return c.inferAssign(expr)
	case *ast.ArrayAccess:
		return c.inferArrayAccess(expr)
	case *ast.FieldAccess:
		return c.inferFieldAccess(expr)
	case *ast.Call:
		return c.inferCall(expr)
	case *ast.NewExpr:
		return c.inferNew(expr)
	case *ast.NewArrayExpr:
		return c.inferNewArray(expr)
	case *ast.PostfixExpr:
		return c.inferPostfix(expr)
	default:
		panic(fmt.Sprintf("checker: unknown expression %T", e))
	}
}

func (c *Checker) inferThis(e *ast.This) types.Type {
	class := resolver.EnclosingClass(e)
	if class == nil {
		c.report(e.Loc(), diagnostics.ThisOutsideClass)
		return types.Error
	}
	return types.NewNamed(class.Ident.Value)
}

func (c *Checker) inferArithmetic(e *ast.ArithmeticExpr) types.Type {
	right := c.checkExpr(e.Right)

	if e.Left == nil { // unary minus
		if types.IsError(right) {
			return types.Error
		}
		if types.IsNumeric(right) {
			return right
		}
		c.report(e.Loc(), diagnostics.NumericExpected, right)
		return types.Error
	}

	left := c.checkExpr(e.Left)
	if types.IsError(left) || types.IsError(right) {
		return types.Error
	}
	if left.Equals(right) && types.IsNumeric(left) {
		return left
	}
	c.report(e.Op.Loc(), diagnostics.IncompatibleOperands, left, e.Op.Value, right)
	return types.Error
}

func (c *Checker) inferRelational(e *ast.RelationalExpr) types.Type {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)

	if types.IsError(left) || types.IsError(right) {
		return types.Error
	}
	if left.Equals(right) && types.IsNumeric(left) {
		return types.Bool
	}
	c.report(e.Loc(), diagnostics.IncompatibleOperands, left, e.Op.Value, right)
	return types.Error
}

// inferEquality permits same-type operands, and null against any
// non-primitive on either side.
func (c *Checker) inferEquality(e *ast.EqualityExpr) types.Type {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)

	if types.IsError(left) || types.IsError(right) {
		return types.Error
	}
	if left.Equals(right) || nullComparable(left, right) || nullComparable(right, left) {
		return types.Bool
	}
	c.report(e.Loc(), diagnostics.IncompatibleOperands, left, e.Op.Value, right)
	return types.Error
}

func nullComparable(a, b types.Type) bool {
	return a.Equals(types.Null) && !types.IsPrimitive(b)
}

func (c *Checker) inferLogical(e *ast.LogicalExpr) types.Type {
	right := c.checkExpr(e.Right)

	if e.Left == nil { // unary !
		if types.IsError(right) {
			return types.Error
		}
		if right.Equals(types.Bool) {
			return types.Bool
		}
		c.report(e.Loc(), diagnostics.IncompatibleOperand, e.Op.Value, right)
		return types.Error
	}

	left := c.checkExpr(e.Left)
	if types.IsError(left) || types.IsError(right) {
		return types.Error
	}
	if left.Equals(types.Bool) && right.Equals(types.Bool) {
		return types.Bool
	}
	c.report(e.Loc(), diagnostics.IncompatibleOperands, left, e.Op.Value, right)
	return types.Error
}

func (c *Checker) inferAssign(e *ast.AssignExpr) types.Type {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)

	if types.IsError(left) || types.IsError(right) {
		return types.Error
	}
	if c.compatible(right, left, e) {
		return left
	}
	c.report(e.Op.Loc(), diagnostics.IncompatibleAssign, left, right)
	return types.Error
}

func (c *Checker) inferArrayAccess(e *ast.ArrayAccess) types.Type {
	baseType := c.checkExpr(e.Base)
	subscript := c.checkExpr(e.Subscript)

	if !types.IsError(subscript) && !subscript.Equals(types.Int) {
		c.report(e.Subscript.Loc(), diagnostics.SubscriptNotInteger)
	}

	if types.IsError(baseType) {
		return types.Error
	}
	arr, ok := baseType.(*types.Array)
	if !ok {
		c.report(e.Loc(), diagnostics.BracketsOnNonArray)
		return types.Error
	}
	return arr.Elem
}

func (c *Checker) inferFieldAccess(e *ast.FieldAccess) types.Type {
	name := e.Field.Value

	if e.Base == nil {
		// plain identifier: resolve through the scope chain
		decl, ok := resolver.LookupName(e, name).(*ast.VarDecl)
		if !ok {
			c.report(e.Loc(), diagnostics.NoDeclFoundVariable, name)
			return types.Error
		}
		return decl.DeclType.Sem()
	}

	baseType := c.checkExpr(e.Base)
	if types.IsError(baseType) {
		return types.Error
	}

	named, ok := baseType.(*types.Named)
	if !ok {
		// primitives and arrays have no fields
		c.report(e.Field.Loc(), diagnostics.NoSuchField, baseType, name)
		return types.Error
	}
	var class *ast.ClassDecl
	switch decl := resolver.LookupName(e, named.Name).(type) {
	case *ast.ClassDecl:
		class = decl
	case *ast.InterfaceDecl:
		// interfaces declare methods only
		c.report(e.Field.Loc(), diagnostics.NoSuchField, baseType, name)
		return types.Error
	default:
		// the base's own check already complained about the unknown type
		return types.Error
	}

	field, ok := resolver.ClassMember(class, name).(*ast.VarDecl)
	if !ok {
		c.report(e.Field.Loc(), diagnostics.NoSuchField, baseType, name)
		return types.Error
	}

	// fields are private to the class body (and its subclasses)
	if encl := resolver.EnclosingClass(e); encl == nil || !c.isSubtype(types.NewNamed(encl.Ident.Value), named, e) {
		c.report(e.Loc(), diagnostics.InaccessibleField, baseType, name)
		return types.Error
	}
	return field.DeclType.Sem()
}

func (c *Checker) inferCall(e *ast.Call) types.Type {
	name := e.Field.Value

	if e.Base == nil {
		fn, ok := resolver.LookupName(e, name).(*ast.FnDecl)
		if !ok {
			c.checkActualsOnly(e)
			c.report(e.Field.Loc(), diagnostics.NoDeclFoundFunction, name)
			return types.Error
		}
		c.checkActuals(e, fn)
		return fn.ReturnType.Sem()
	}

	baseType := c.checkExpr(e.Base)
	if types.IsError(baseType) {
		c.checkActualsOnly(e)
		return types.Error
	}

	// arrays carry the one pseudo-member length()
	if _, isArray := baseType.(*types.Array); isArray && name == "length" {
		c.checkActualsOnly(e)
		if len(e.Actuals) != 0 {
			c.report(e.Field.Loc(), diagnostics.NumArgsMismatch, name, 0, len(e.Actuals))
		}
		return types.Int
	}

	named, ok := baseType.(*types.Named)
	if !ok {
		// primitives (string included) have no callable members
		c.checkActualsOnly(e)
		c.report(e.Field.Loc(), diagnostics.NoSuchField, baseType, name)
		return types.Error
	}

	var method *ast.FnDecl
	switch decl := resolver.LookupName(e, named.Name).(type) {
	case *ast.ClassDecl:
		method, _ = resolver.ClassMember(decl, name).(*ast.FnDecl)
	case *ast.InterfaceDecl:
		method = resolver.InterfaceMember(decl, name)
	default:
		// unknown base type was already reported where the base was built
		c.checkActualsOnly(e)
		return types.Error
	}

	if method == nil {
		c.checkActualsOnly(e)
		c.report(e.Field.Loc(), diagnostics.NoSuchField, baseType, name)
		return types.Error
	}
	c.checkActuals(e, method)
	return method.ReturnType.Sem()
}

// checkActuals types every actual and matches them against the formals.
func (c *Checker) checkActuals(e *ast.Call, fn *ast.FnDecl) {
	given := make([]types.Type, len(e.Actuals))
	for i, actual := range e.Actuals {
		given[i] = c.checkExpr(actual)
	}

	if len(e.Actuals) != len(fn.Formals) {
		c.report(e.Field.Loc(), diagnostics.NumArgsMismatch,
			fn.Ident.Value, len(fn.Formals), len(e.Actuals))
		return
	}
	for i, formal := range fn.Formals {
		expected := formal.DeclType.Sem()
		if types.IsError(given[i]) || c.compatible(given[i], expected, e) {
			continue
		}
		c.report(e.Actuals[i].Loc(), diagnostics.IncompatibleArg, i+1, given[i], expected)
	}
}

// checkActualsOnly types the actuals when there is no signature to match
// against, so every expression still ends up typed.
func (c *Checker) checkActualsOnly(e *ast.Call) {
	for _, actual := range e.Actuals {
		c.checkExpr(actual)
	}
}

func (c *Checker) inferNew(e *ast.NewExpr) types.Type {
	name := e.CType.Ident.Value
	if _, ok := resolver.LookupName(e, name).(*ast.ClassDecl); !ok {
		c.report(e.CType.Loc(), diagnostics.NoDeclFoundClass, name)
		return types.Error
	}
	return e.CType.Sem()
}

func (c *Checker) inferNewArray(e *ast.NewArrayExpr) types.Type {
	size := c.checkExpr(e.Size)
	if !types.IsError(size) && !size.Equals(types.Int) {
		c.report(e.Loc(), diagnostics.NewArraySizeNotInt)
	}
	if !c.checkTypeRef(e.ElemType) {
		return types.Error
	}
	return types.NewArray(e.ElemType.Sem())
}

func (c *Checker) inferPostfix(e *ast.PostfixExpr) types.Type {
	lvalue := c.checkExpr(e.LValue)
	if types.IsError(lvalue) {
		return types.Error
	}
	if lvalue.Equals(types.Int) {
		return types.Int
	}
	c.report(e.Loc(), diagnostics.IncompatibleOperand, e.Op.Value, lvalue)
	return types.Error
}
