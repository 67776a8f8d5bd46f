package ast

import (
	"github.com/alexjlaberge/CompilerP3/internal/source"
	"github.com/alexjlaberge/CompilerP3/internal/tokens"
)

// IntConstant is an integer literal. Its type is known at construction.
type IntConstant struct {
	exprBase
	Value int
}

func NewIntConstant(loc *source.Location, value int) *IntConstant {
	e := &IntConstant{Value: value}
	e.location = loc
	return e
}

// DoubleConstant is a floating-point literal.
type DoubleConstant struct {
	exprBase
	Value float64
}

func NewDoubleConstant(loc *source.Location, value float64) *DoubleConstant {
	e := &DoubleConstant{Value: value}
	e.location = loc
	return e
}

// BoolConstant is true or false.
type BoolConstant struct {
	exprBase
	Value bool
}

func NewBoolConstant(loc *source.Location, value bool) *BoolConstant {
	e := &BoolConstant{Value: value}
	e.location = loc
	return e
}

// StringConstant is a string literal, quotes stripped.
type StringConstant struct {
	exprBase
	Value string
}

func NewStringConstant(loc *source.Location, value string) *StringConstant {
	e := &StringConstant{Value: value}
	e.location = loc
	return e
}

// NullConstant is the null literal.
type NullConstant struct {
	exprBase
}

func NewNullConstant(loc *source.Location) *NullConstant {
	e := &NullConstant{}
	e.location = loc
	return e
}

// EmptyExpr stands in where an expression is syntactically absent (bare
// return, empty for-loop slots). It acts as absent during checking.
type EmptyExpr struct {
	exprBase
}

func NewEmptyExpr() *EmptyExpr {
	return &EmptyExpr{}
}

// This refers to the receiver inside a class method.
type This struct {
	exprBase
}

func NewThis(loc *source.Location) *This {
	e := &This{}
	e.location = loc
	return e
}

// ReadIntegerExpr is the built-in ReadInteger() call, typed int.
type ReadIntegerExpr struct {
	exprBase
}

func NewReadIntegerExpr(loc *source.Location) *ReadIntegerExpr {
	e := &ReadIntegerExpr{}
	e.location = loc
	return e
}

// ReadLineExpr is the built-in ReadLine() call, typed string.
type ReadLineExpr struct {
	exprBase
}

func NewReadLineExpr(loc *source.Location) *ReadLineExpr {
	e := &ReadLineExpr{}
	e.location = loc
	return e
}

// ArithmeticExpr is + - * / %, binary or unary minus (nil Left).
type ArithmeticExpr struct {
	exprBase
	Left  Expression // nil for unary minus
	Op    tokens.Token
	Right Expression
}

func NewArithmeticExpr(left Expression, op tokens.Token, right Expression) *ArithmeticExpr {
	e := &ArithmeticExpr{Left: left, Op: op, Right: right}
	if left != nil {
		e.location = source.Join(left.Loc(), right.Loc())
	} else {
		e.location = source.Join(op.Loc(), right.Loc())
	}
	attach(e, left, right)
	return e
}

// RelationalExpr is < <= > >=.
type RelationalExpr struct {
	exprBase
	Left  Expression
	Op    tokens.Token
	Right Expression
}

func NewRelationalExpr(left Expression, op tokens.Token, right Expression) *RelationalExpr {
	e := &RelationalExpr{Left: left, Op: op, Right: right}
	e.location = source.Join(left.Loc(), right.Loc())
	attach(e, left, right)
	return e
}

// EqualityExpr is == and !=.
type EqualityExpr struct {
	exprBase
	Left  Expression
	Op    tokens.Token
	Right Expression
}

func NewEqualityExpr(left Expression, op tokens.Token, right Expression) *EqualityExpr {
	e := &EqualityExpr{Left: left, Op: op, Right: right}
	e.location = source.Join(left.Loc(), right.Loc())
	attach(e, left, right)
	return e
}

// LogicalExpr is && and ||, or unary ! (nil Left).
type LogicalExpr struct {
	exprBase
	Left  Expression // nil for !
	Op    tokens.Token
	Right Expression
}

func NewLogicalExpr(left Expression, op tokens.Token, right Expression) *LogicalExpr {
	e := &LogicalExpr{Left: left, Op: op, Right: right}
	if left != nil {
		e.location = source.Join(left.Loc(), right.Loc())
	} else {
		e.location = source.Join(op.Loc(), right.Loc())
	}
	attach(e, left, right)
	return e
}

// AssignExpr is the assignment operator.
type AssignExpr struct {
	exprBase
	Left  Expression
	Op    tokens.Token
	Right Expression
}

func NewAssignExpr(left Expression, op tokens.Token, right Expression) *AssignExpr {
	e := &AssignExpr{Left: left, Op: op, Right: right}
	e.location = source.Join(left.Loc(), right.Loc())
	attach(e, left, right)
	return e
}

// ArrayAccess is base[subscript].
type ArrayAccess struct {
	exprBase
	Base      Expression
	Subscript Expression
}

func NewArrayAccess(loc *source.Location, arr, subscript Expression) *ArrayAccess {
	e := &ArrayAccess{Base: arr, Subscript: subscript}
	e.location = loc
	attach(e, arr, subscript)
	return e
}

// FieldAccess is a variable reference or base.field access. A nil Base means
// a plain identifier resolved through the scope chain.
type FieldAccess struct {
	exprBase
	Base  Expression // nil means no explicit base
	Field *Identifier
}

func NewFieldAccess(b Expression, field *Identifier) *FieldAccess {
	e := &FieldAccess{Base: b, Field: field}
	if b != nil {
		e.location = source.Join(b.Loc(), field.Loc())
	} else {
		e.location = field.Loc()
	}
	attach(e, b, field)
	return e
}

// Call is a function or method call. A nil Base means a top-level function.
type Call struct {
	exprBase
	Base    Expression // nil means no explicit base
	Field   *Identifier
	Actuals []Expression
}

func NewCall(loc *source.Location, b Expression, field *Identifier, actuals []Expression) *Call {
	e := &Call{Base: b, Field: field, Actuals: actuals}
	e.location = loc
	attach(e, b, field)
	for _, a := range actuals {
		attach(e, a)
	}
	return e
}

// NewExpr is object creation: new C.
type NewExpr struct {
	exprBase
	CType *NamedType
}

func NewNewExpr(loc *source.Location, ctype *NamedType) *NewExpr {
	e := &NewExpr{CType: ctype}
	e.location = loc
	attach(e, ctype)
	return e
}

// NewArrayExpr is array creation: NewArray(size, elemType).
type NewArrayExpr struct {
	exprBase
	Size     Expression
	ElemType TypeRef
}

func NewNewArrayExpr(loc *source.Location, size Expression, elem TypeRef) *NewArrayExpr {
	e := &NewArrayExpr{Size: size, ElemType: elem}
	e.location = loc
	attach(e, size, elem)
	return e
}

// PostfixExpr is lvalue++ or lvalue--.
type PostfixExpr struct {
	exprBase
	LValue Expression
	Op     tokens.Token
}

func NewPostfixExpr(lvalue Expression, op tokens.Token) *PostfixExpr {
	e := &PostfixExpr{LValue: lvalue, Op: op}
	e.location = source.Join(lvalue.Loc(), op.Loc())
	attach(e, lvalue)
	return e
}
