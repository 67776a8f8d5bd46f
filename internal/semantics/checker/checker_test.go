package checker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexjlaberge/CompilerP3/internal/diagnostics"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/lexer"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/parser"
	"github.com/alexjlaberge/CompilerP3/internal/types"
)

func analyze(t *testing.T, code string) (*ast.Program, *diagnostics.Bag) {
	t.Helper()
	bag := diagnostics.NewBag()
	program := parser.Parse(lexer.New(code, bag).Tokenize(), bag)
	require.NotNil(t, program, "parse failed:\n%s", bag.Render())
	require.False(t, bag.HasErrors(), "unexpected syntax errors:\n%s", bag.Render())
	Check(program, bag)
	return program, bag
}

func messages(bag *diagnostics.Bag) []string {
	out := make([]string, 0)
	for _, d := range bag.Diagnostics() {
		out = append(out, d.Message)
	}
	return out
}

func assertClean(t *testing.T, code string) {
	t.Helper()
	_, bag := analyze(t, code)
	assert.Zero(t, bag.ErrorCount(), "expected no errors:\n%s", bag.Render())
}

func assertErrors(t *testing.T, code string, want ...string) {
	t.Helper()
	_, bag := analyze(t, code)
	assert.Equal(t, want, messages(bag), "diagnostics:\n%s", bag.Render())
}

func TestCleanProgram(t *testing.T) {
	assertClean(t, `
interface Drawable {
	void Draw(int depth);
}

class Shape implements Drawable {
	int edges;
	void Draw(int depth) { Print("shape ", depth); }
	int Edges() { return edges; }
}

class Square extends Shape {
	void Draw(int depth) { Print("square"); }
}

int total;

void Main() {
	Shape s;
	Drawable d;
	int[] counts;

	s = new Square;
	d = s;
	counts = NewArray(10, int);
	counts[0] = s.Edges() + counts.length();

	for (total = 0; total < 10; total = total + 1) {
		if (counts[total] == 0) break;
	}

	while (total > 0) total = total - 1;
	Print(ReadLine(), ReadInteger());
}`)
}

func TestUndeclaredVariable(t *testing.T) {
	// the assignment itself must not cascade
	_, bag := analyze(t, "void Main() { x = 5; }")
	require.Equal(t, []string{"No declaration found for variable 'x'"}, messages(bag))

	diag := bag.Diagnostics()[0]
	require.NotNil(t, diag.Location)
	assert.Equal(t, 1, diag.Location.Start.Line)
	assert.Equal(t, 15, diag.Location.Start.Column)
}

func TestInterfaceNotImplemented(t *testing.T) {
	assertErrors(t, `
interface I { void f(); }
class C implements I { }`,
		"Class 'C' does not implement entire interface 'I'")
}

func TestInterfaceSignatureMismatch(t *testing.T) {
	assertErrors(t, `
interface I { void f(int n); }
class C implements I { void f(bool b) { } }`,
		"Method 'f' must match inherited type signature")
}

func TestInterfaceInheritedImplementation(t *testing.T) {
	assertClean(t, `
interface I { void f(); }
class Base { void f() { } }
class C extends Base implements I { }`)
}

func TestInterfaceInheritedMismatchCountsAsMissing(t *testing.T) {
	assertErrors(t, `
interface I { void f(); }
class Base { int f() { return 0; } }
class C extends Base implements I { }`,
		"Class 'C' does not implement entire interface 'I'")
}

func TestRepeatedInterface(t *testing.T) {
	assertErrors(t, `
interface I { }
class C implements I, I { }`,
		"Class 'C' repeated interface 'I'")
}

func TestUnknownExtendsAndImplements(t *testing.T) {
	assertErrors(t, `
class C extends Ghost implements Phantom { }`,
		"No declaration found for class 'Ghost'",
		"No declaration found for interface 'Phantom'")
}

func TestOverrideMismatch(t *testing.T) {
	_, bag := analyze(t, `
class A { int f() { return 0; } }
class B extends A { bool f() { return true; } }`)

	require.Equal(t, []string{"Method 'f' must match inherited type signature"}, messages(bag))
	assert.Equal(t, 3, bag.Diagnostics()[0].Location.Start.Line)
}

func TestMatchingOverridesAreClean(t *testing.T) {
	assertClean(t, `
interface I { int f(int n); }
class A implements I { int f(int n) { return n; } }
class B extends A { int f(int n) { return n + 1; } }`)
}

func TestDeclConflict(t *testing.T) {
	_, bag := analyze(t, `
int x;
bool x;`)

	require.Equal(t, []string{"Declaration of 'x' here conflicts with declaration on line 2"}, messages(bag))
	assert.Equal(t, 3, bag.Diagnostics()[0].Location.Start.Line)
}

func TestConflictsInScopes(t *testing.T) {
	assertErrors(t, `
void f(int a, bool a) {
	int b;
	int b;
}`,
		"Declaration of 'a' here conflicts with declaration on line 2",
		"Declaration of 'b' here conflicts with declaration on line 3")
}

func TestShadowingIsLegal(t *testing.T) {
	assertClean(t, `
int x;
class C {
	int x;
	void f(int x) {
		{ double x; }
	}
}`)
}

func TestUnknownDeclaredType(t *testing.T) {
	assertErrors(t, `
void f() {
	Ghost g;
	Ghost[] many;
}`,
		"No declaration found for type 'Ghost'",
		"No declaration found for type 'Ghost'")
}

func TestArraySubscript(t *testing.T) {
	// subscript complaint only; the assignment does not cascade
	assertErrors(t, `
void f() {
	int[] a;
	a = NewArray(3, int);
	a[true] = 1;
}`,
		"Array subscript must be an integer")
}

func TestBracketsOnNonArray(t *testing.T) {
	assertErrors(t, `
void f() {
	int a;
	a[0] = 1;
}`,
		"[] can only be applied to arrays")
}

func TestBreakOutsideLoop(t *testing.T) {
	assertErrors(t, "void f() { break; }",
		"break is only allowed inside a loop")
}

func TestBreakInsideContexts(t *testing.T) {
	assertClean(t, `
void f() {
	while (true) break;
	for (;;) break;
	switch (1) { case 0: break; }
}`)
}

func TestReturnTypeMismatch(t *testing.T) {
	assertErrors(t, `int f() { return "hi"; }`,
		"Incompatible return: string given, int expected")
}

func TestBareReturn(t *testing.T) {
	assertClean(t, "void f() { return; }")
	assertErrors(t, "int f() { return; }",
		"Incompatible return: void given, int expected")
}

func TestReturnSubtype(t *testing.T) {
	assertClean(t, `
class A { }
class B extends A { }
A f() { return new B; }
A g() { return null; }`)
}

func TestArithmetic(t *testing.T) {
	assertErrors(t, `
void f() {
	int i;
	double d;
	bool b;
	i = i + 1;
	d = d * 2.0;
	i = i + d;
	b = b - b;
}`,
		"Incompatible operands: int + double",
		"Incompatible operands: bool - bool")
}

func TestUnaryMinus(t *testing.T) {
	assertErrors(t, `
void f() {
	int i;
	bool b;
	i = -i;
	b = -b;
}`,
		"bool where int/double expected")
}

func TestRelational(t *testing.T) {
	assertErrors(t, `
void f() {
	bool b;
	b = 1 < 2;
	b = 1.0 <= 2.0;
	b = 1 < 2.0;
	b = "a" > "b";
}`,
		"Incompatible operands: int < double",
		"Incompatible operands: string > string")
}

func TestEquality(t *testing.T) {
	assertErrors(t, `
class C { }
void f() {
	bool b;
	C c;
	int[] a;
	b = 1 == 2;
	b = c == null;
	b = null != c;
	b = a == null;
	b = c == 1;
	b = 1 == 1.0;
}`,
		"Incompatible operands: C == int",
		"Incompatible operands: int == double")
}

func TestLogical(t *testing.T) {
	assertErrors(t, `
void f() {
	bool b;
	b = b && !b;
	b = b || true;
	b = b && 1;
	b = !5;
}`,
		"Incompatible operands: bool && int",
		"Incompatible operand: ! int")
}

func TestAssignment(t *testing.T) {
	assertErrors(t, `
class A { }
class B extends A { }
void f() {
	A a;
	B b;
	int i;
	a = b;
	a = null;
	b = a;
	i = "s";
}`,
		"Incompatible operands: B = A",
		"Incompatible operands: int = string")
}

func TestThisOutsideClass(t *testing.T) {
	assertErrors(t, "void f() { this.g(); }",
		"'this' is only valid within class scope")
}

func TestThisInsideClass(t *testing.T) {
	assertClean(t, `
class C {
	int n;
	int Get() { return this.n; }
	C Self() { return this; }
}`)
}

func TestFieldAccess(t *testing.T) {
	assertErrors(t, `
class C {
	int n;
	int Get() { return n; }
}
void f() {
	C c;
	int i;
	c = new C;
	i = c.n;
	i = c.missing;
	i = i.n;
}`,
		"C field 'n' only accessible within class scope",
		"C has no such field 'missing'",
		"int has no such field 'n'")
}

func TestFieldAccessInSubclass(t *testing.T) {
	assertClean(t, `
class A { int n; }
class B extends A {
	int Get() { return this.n; }
}`)
}

func TestCalls(t *testing.T) {
	assertErrors(t, `
int add(int a, int b) { return a + b; }
void f() {
	int i;
	i = add(1, 2);
	i = missing(1);
	i = add(1);
	i = add(1, "two");
}`,
		"No declaration found for function 'missing'",
		"Function 'add' expects 2 arguments but 1 given",
		`Incompatible argument 2: string given, int expected`)
}

func TestMethodCalls(t *testing.T) {
	assertErrors(t, `
class C {
	int Get() { return 0; }
}
void f() {
	C c;
	int i;
	string s;
	c = new C;
	i = c.Get();
	i = c.Gone();
	i = s.length();
}`,
		"C has no such field 'Gone'",
		"string has no such field 'length'")
}

func TestArrayLength(t *testing.T) {
	assertClean(t, `
void f() {
	int[] a;
	int n;
	a = NewArray(4, int);
	n = a.length();
}`)
}

func TestSubtypeArguments(t *testing.T) {
	assertClean(t, `
interface I { }
class A implements I { }
class B extends A { }
void take(I x) { }
void f() {
	take(new B);
	take(null);
}`)
}

func TestNewExpr(t *testing.T) {
	assertErrors(t, `
void f() {
	Ghost g;
	g = new Ghost;
}`,
		"No declaration found for type 'Ghost'",
		"No declaration found for class 'Ghost'")
}

func TestNewArraySize(t *testing.T) {
	assertErrors(t, `
void f() {
	int[] a;
	a = NewArray(true, int);
}`,
		"Size for NewArray must be an integer")
}

func TestPostfix(t *testing.T) {
	assertErrors(t, `
void f() {
	int i;
	bool b;
	i++;
	i--;
	b++;
}`,
		"Incompatible operand: ++ bool")
}

func TestPrintArguments(t *testing.T) {
	assertErrors(t, `
class C { }
void f() {
	C c;
	Print(1, true, "s");
	Print(1.5);
	Print(c);
}`,
		"Incompatible argument 1: double given, int/bool/string expected",
		"Incompatible argument 1: C given, int/bool/string expected")
}

func TestTestExpressions(t *testing.T) {
	assertErrors(t, `
void f() {
	if (1) Print("a");
	while ("s") Print("b");
	for (; 2.5; ) Print("c");
}`,
		"Test expression must have boolean type",
		"Test expression must have boolean type",
		"Test expression must have boolean type")
}

func TestSwitchStatement(t *testing.T) {
	assertClean(t, `
void f() {
	int n;
	switch (n) {
	case 0:
		Print("zero");
		break;
	default:
		n = n - 1;
	}
}`)
}

func TestAbsorbingErrorSuppressesCascades(t *testing.T) {
	// one undefined name, used in arithmetic and assignment:
	// exactly one diagnostic
	assertErrors(t, `
void f() {
	int i;
	i = x + 1 * 2;
}`,
		"No declaration found for variable 'x'")
}

func TestEveryExpressionGetsAType(t *testing.T) {
	program, _ := analyze(t, `
void f() {
	int i;
	i = x + 1;
}`)

	fn := program.Decls[0].(*ast.FnDecl)
	assign := fn.Body.(*ast.StmtBlock).Stmts[0].(*ast.AssignExpr)

	require.NotNil(t, assign.ResultType())
	assert.True(t, types.IsError(assign.ResultType()))

	sum := assign.Right.(*ast.ArithmeticExpr)
	assert.True(t, types.IsError(sum.ResultType()), "error absorbs upward")
	assert.True(t, types.IsError(sum.Left.ResultType()))
	assert.True(t, sum.Right.ResultType().Equals(types.Int), "operand keeps its own type")
	assert.True(t, assign.Left.ResultType().Equals(types.Int))
}

func TestDeterminism(t *testing.T) {
	code := `
class A { int f() { return 0; } }
class B extends A { bool f() { return true; } }
void Main() {
	y = unknown(3);
	break;
}`

	render := func() string {
		bag := diagnostics.NewBag()
		program := parser.Parse(lexer.New(code, bag).Tokenize(), bag)
		require.NotNil(t, program)
		Check(program, bag)
		return bag.Render()
	}

	first := render()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, render(), "run %d differs", i)
	}
}

func TestErrorCountMatchesDiagnostics(t *testing.T) {
	_, bag := analyze(t, `
void f() {
	x = 1;
	y = 2;
	break;
}`)
	assert.Equal(t, 3, bag.ErrorCount())
	assert.Len(t, bag.Diagnostics(), 3)
}

func TestDiagnosticsSortedByLocation(t *testing.T) {
	_, bag := analyze(t, `
void f() {
	break;
	x = 1;
}`)

	diags := bag.Diagnostics()
	require.Len(t, diags, 2)
	for i := 1; i < len(diags); i++ {
		prev, cur := diags[i-1].Location, diags[i].Location
		assert.False(t, cur.Before(prev), "diagnostic %d out of order", i)
	}
}

func ExampleCheck() {
	code := `void Main() { x = 5; }`
	bag := diagnostics.NewBag()
	program := parser.Parse(lexer.New(code, bag).Tokenize(), bag)
	Check(program, bag)
	for _, d := range bag.Diagnostics() {
		fmt.Println(d.Message)
	}
	// Output: No declaration found for variable 'x'
}
