package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjlaberge/CompilerP3/internal/diagnostics"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/lexer"
	"github.com/alexjlaberge/CompilerP3/internal/types"
)

func parse(t *testing.T, code string) *ast.Program {
	t.Helper()
	bag := diagnostics.NewBag()
	program := Parse(lexer.New(code, bag).Tokenize(), bag)
	require.NotNil(t, program, "parse failed:\n%s", bag.Render())
	require.False(t, bag.HasErrors(), "unexpected syntax errors:\n%s", bag.Render())
	return program
}

func TestParseVarDecl(t *testing.T) {
	program := parse(t, "int x;\ndouble[] grid;")
	require.Len(t, program.Decls, 2)

	x, ok := program.Decls[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", x.Ident.Value)
	assert.True(t, x.DeclType.Sem().Equals(types.Int))

	grid, ok := program.Decls[1].(*ast.VarDecl)
	require.True(t, ok)
	assert.True(t, grid.DeclType.Sem().Equals(types.NewArray(types.Double)))
}

func TestParseFunction(t *testing.T) {
	program := parse(t, "int add(int a, int b) { return a + b; }")
	require.Len(t, program.Decls, 1)

	fn, ok := program.Decls[0].(*ast.FnDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Ident.Value)
	require.Len(t, fn.Formals, 2)
	assert.Equal(t, "b", fn.Formals[1].Ident.Value)
	require.NotNil(t, fn.Body)

	block, ok := fn.Body.(*ast.StmtBlock)
	require.True(t, ok)
	require.Len(t, block.Stmts, 1)

	ret, ok := block.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok)
	_, ok = ret.Expr.(*ast.ArithmeticExpr)
	assert.True(t, ok)
}

func TestParseClass(t *testing.T) {
	program := parse(t, `
class Circle extends Shape implements Drawable, Comparable {
	double radius;
	double Area() { return radius; }
}`)
	require.Len(t, program.Decls, 1)

	class, ok := program.Decls[0].(*ast.ClassDecl)
	require.True(t, ok)
	assert.Equal(t, "Circle", class.Ident.Value)
	require.NotNil(t, class.Extends)
	assert.Equal(t, "Shape", class.Extends.Ident.Value)
	require.Len(t, class.Implements, 2)
	assert.Equal(t, "Comparable", class.Implements[1].Ident.Value)
	require.Len(t, class.Members, 2)
}

func TestParseInterface(t *testing.T) {
	program := parse(t, "interface Drawable { void Draw(); int Size(int scale); }")

	iface, ok := program.Decls[0].(*ast.InterfaceDecl)
	require.True(t, ok)
	require.Len(t, iface.Members, 2)
	assert.Nil(t, iface.Members[0].Body, "prototype has no body")
	require.Len(t, iface.Members[1].Formals, 1)
}

func TestParsePrecedence(t *testing.T) {
	program := parse(t, "void f() { b = 1 + 2 * 3 < 4 && !c; }")
	fn := program.Decls[0].(*ast.FnDecl)
	stmt := fn.Body.(*ast.StmtBlock).Stmts[0]

	assign, ok := stmt.(*ast.AssignExpr)
	require.True(t, ok, "= binds loosest")

	and, ok := assign.Right.(*ast.LogicalExpr)
	require.True(t, ok, "&& above =")

	rel, ok := and.Left.(*ast.RelationalExpr)
	require.True(t, ok, "< below &&")

	sum, ok := rel.Left.(*ast.ArithmeticExpr)
	require.True(t, ok, "+ below <")
	assert.Equal(t, "+", sum.Op.Value)

	prod, ok := sum.Right.(*ast.ArithmeticExpr)
	require.True(t, ok, "* binds tighter than +")
	assert.Equal(t, "*", prod.Op.Value)

	not, ok := and.Right.(*ast.LogicalExpr)
	require.True(t, ok)
	assert.Nil(t, not.Left, "! is unary")
}

func TestParsePostfixChain(t *testing.T) {
	program := parse(t, "void f() { a.b.c(1)[2] = x; }")
	fn := program.Decls[0].(*ast.FnDecl)
	assign := fn.Body.(*ast.StmtBlock).Stmts[0].(*ast.AssignExpr)

	access, ok := assign.Left.(*ast.ArrayAccess)
	require.True(t, ok)

	call, ok := access.Base.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "c", call.Field.Value)
	require.Len(t, call.Actuals, 1)

	field, ok := call.Base.(*ast.FieldAccess)
	require.True(t, ok)
	assert.Equal(t, "b", field.Field.Value)
}

func TestParseForSlots(t *testing.T) {
	program := parse(t, "void f() { for (;;) break; }")
	fn := program.Decls[0].(*ast.FnDecl)
	loop := fn.Body.(*ast.StmtBlock).Stmts[0].(*ast.ForStmt)

	_, ok := loop.Init.(*ast.EmptyExpr)
	assert.True(t, ok, "empty init slot")
	_, ok = loop.Test.(*ast.EmptyExpr)
	assert.True(t, ok, "empty test slot")
	_, ok = loop.Step.(*ast.EmptyExpr)
	assert.True(t, ok, "empty step slot")
}

func TestParseSwitch(t *testing.T) {
	program := parse(t, `
void f() {
	switch (x) {
	case 1:
		Print("one");
	default:
		Print("rest");
	}
}`)
	fn := program.Decls[0].(*ast.FnDecl)
	sw := fn.Body.(*ast.StmtBlock).Stmts[0].(*ast.SwitchStmt)

	require.Len(t, sw.Cases, 2)
	require.NotNil(t, sw.Cases[0].Value)
	assert.Equal(t, 1, sw.Cases[0].Value.Value)
	assert.Nil(t, sw.Cases[1].Value, "default arm has no value")
}

func TestParentLinks(t *testing.T) {
	program := parse(t, "class A { int f(int n) { return n; } }")

	class := program.Decls[0].(*ast.ClassDecl)
	assert.Same(t, ast.Node(program), class.Parent())

	fn := class.Members[0].(*ast.FnDecl)
	assert.Same(t, ast.Node(class), fn.Parent())
	assert.Same(t, ast.Node(fn), fn.Formals[0].Parent())

	block := fn.Body.(*ast.StmtBlock)
	assert.Same(t, ast.Node(fn), block.Parent())

	ret := block.Stmts[0].(*ast.ReturnStmt)
	assert.Same(t, ast.Node(block), ret.Parent())
	assert.Same(t, ast.Node(ret), ret.Expr.Parent())

	assert.Nil(t, program.Parent(), "program is the root")
}

func TestSyntaxErrorAborts(t *testing.T) {
	bag := diagnostics.NewBag()
	program := Parse(lexer.New("int int;", bag).Tokenize(), bag)
	assert.Nil(t, program)
	assert.True(t, bag.HasErrors())
}
