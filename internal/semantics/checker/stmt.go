package checker

import (
	"fmt"

	"github.com/alexjlaberge/CompilerP3/internal/diagnostics"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/semantics/resolver"
	"github.com/alexjlaberge/CompilerP3/internal/types"
)

func (c *Checker) checkStmt(s ast.Statement) {
	switch stmt := s.(type) {
	case *ast.StmtBlock:
		for _, d := range stmt.Decls {
			c.checkVarDecl(d)
		}
		for _, inner := range stmt.Stmts {
			c.checkStmt(inner)
		}
	case *ast.IfStmt:
		c.checkTest(stmt.Test)
		c.checkStmt(stmt.Then)
		if stmt.Else != nil {
			c.checkStmt(stmt.Else)
		}
	case *ast.WhileStmt:
		c.checkTest(stmt.Test)
		c.checkStmt(stmt.Body)
	case *ast.ForStmt:
		c.checkExpr(stmt.Init)
		c.checkTest(stmt.Test)
		c.checkExpr(stmt.Step)
		c.checkStmt(stmt.Body)
	case *ast.ReturnStmt:
		c.checkReturn(stmt)
	case *ast.BreakStmt:
		if !resolver.InsideBreakable(stmt) {
			c.report(stmt.Loc(), diagnostics.BreakOutsideLoop)
		}
	case *ast.PrintStmt:
		c.checkPrint(stmt)
	case *ast.SwitchStmt:
		c.checkExpr(stmt.Expr)
		for _, arm := range stmt.Cases {
			if arm.Value != nil {
				c.checkExpr(arm.Value)
			}
			for _, inner := range arm.Stmts {
				c.checkStmt(inner)
			}
		}
	case *ast.CaseStmt:
		// cases are only reachable through their switch
		panic("checker: case outside switch")
	default:
		expr, ok := s.(ast.Expression)
		if !ok {
			panic(fmt.Sprintf("checker: unknown statement %T", s))
		}
		c.checkExpr(expr)
	}
}

// checkTest requires a boolean condition. An absent (EmptyExpr) test and an
// already-failed operand are left alone.
func (c *Checker) checkTest(test ast.Expression) {
	if _, absent := test.(*ast.EmptyExpr); absent {
		c.checkExpr(test)
		return
	}
	t := c.checkExpr(test)
	if !types.IsError(t) && !t.Equals(types.Bool) {
		c.report(test.Loc(), diagnostics.TestNotBoolean)
	}
}

// checkReturn compares the returned type (void for a bare return) against
// the enclosing function's declared return type.
func (c *Checker) checkReturn(stmt *ast.ReturnStmt) {
	given := c.checkExpr(stmt.Expr)

	fn := resolver.EnclosingFunction(stmt)
	if fn == nil {
		return
	}
	expected := fn.ReturnType.Sem()

	if types.IsError(given) || c.compatible(given, expected, stmt) {
		return
	}
	loc := stmt.Expr.Loc()
	if loc == nil {
		loc = stmt.Loc()
	}
	c.report(loc, diagnostics.IncompatibleReturn, given, expected)
}

// checkPrint restricts Print arguments to int, bool and string.
func (c *Checker) checkPrint(stmt *ast.PrintStmt) {
	for i, arg := range stmt.Args {
		t := c.checkExpr(arg)
		if types.IsError(t) {
			continue
		}
		if t.Equals(types.Int) || t.Equals(types.Bool) || t.Equals(types.String) {
			continue
		}
		c.report(arg.Loc(), diagnostics.IncompatibleArg, i+1, t, "int/bool/string")
	}
}
