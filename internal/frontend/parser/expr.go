package parser

import (
	"strconv"

	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/source"
	"github.com/alexjlaberge/CompilerP3/internal/tokens"
)

// Precedence, loosest first: assignment, ||, &&, equality, relational,
// additive, multiplicative, unary, postfix.

func (p *Parser) parseExpr() ast.Expression {
	return p.parseAssign()
}

// parseAssign is right-associative: a = b = c parses as a = (b = c).
func (p *Parser) parseAssign() ast.Expression {
	left := p.parseLogicalOr()
	if p.match(tokens.ASSIGN_TOKEN) {
		op := p.advance()
		right := p.parseAssign()
		return ast.NewAssignExpr(left, op, right)
	}
	return left
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for p.match(tokens.OR_TOKEN) {
		op := p.advance()
		right := p.parseLogicalAnd()
		left = ast.NewLogicalExpr(left, op, right)
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseEquality()
	for p.match(tokens.AND_TOKEN) {
		op := p.advance()
		right := p.parseEquality()
		left = ast.NewLogicalExpr(left, op, right)
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseRelational()
	for p.match(tokens.EQUALS_TOKEN, tokens.NOT_EQUALS_TOKEN) {
		op := p.advance()
		right := p.parseRelational()
		left = ast.NewEqualityExpr(left, op, right)
	}
	return left
}

func (p *Parser) parseRelational() ast.Expression {
	left := p.parseAdditive()
	for p.match(tokens.LESS_TOKEN, tokens.LESS_EQ_TOKEN, tokens.GREATER_TOKEN, tokens.GREATER_EQ_TOKEN) {
		op := p.advance()
		right := p.parseAdditive()
		left = ast.NewRelationalExpr(left, op, right)
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.match(tokens.PLUS_TOKEN, tokens.MINUS_TOKEN) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = ast.NewArithmeticExpr(left, op, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for p.match(tokens.STAR_TOKEN, tokens.SLASH_TOKEN, tokens.PERCENT_TOKEN) {
		op := p.advance()
		right := p.parseUnary()
		left = ast.NewArithmeticExpr(left, op, right)
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	switch p.peek().Kind {
	case tokens.MINUS_TOKEN:
		op := p.advance()
		return ast.NewArithmeticExpr(nil, op, p.parseUnary())
	case tokens.NOT_TOKEN:
		op := p.advance()
		return ast.NewLogicalExpr(nil, op, p.parseUnary())
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()

	for {
		switch p.peek().Kind {
		case tokens.LBRACKET_TOKEN:
			p.advance()
			subscript := p.parseExpr()
			end := p.expect(tokens.RBRACKET_TOKEN)
			expr = ast.NewArrayAccess(source.Join(expr.Loc(), end.Loc()), expr, subscript)
		case tokens.DOT_TOKEN:
			p.advance()
			field := p.parseIdentifier()
			if p.match(tokens.LPAREN_TOKEN) {
				expr = p.parseCallRest(expr, field)
			} else {
				expr = ast.NewFieldAccess(expr, field)
			}
		case tokens.INCR_TOKEN, tokens.DECR_TOKEN:
			op := p.advance()
			expr = ast.NewPostfixExpr(expr, op)
		default:
			return expr
		}
	}
}

// parseCallRest consumes the actuals of a call whose base and field are
// already parsed. base is nil for plain function calls.
func (p *Parser) parseCallRest(b ast.Expression, field *ast.Identifier) *ast.Call {
	p.expect(tokens.LPAREN_TOKEN)
	actuals := make([]ast.Expression, 0)
	if !p.match(tokens.RPAREN_TOKEN) {
		actuals = append(actuals, p.parseExpr())
		for p.accept(tokens.COMMA_TOKEN) {
			actuals = append(actuals, p.parseExpr())
		}
	}
	end := p.expect(tokens.RPAREN_TOKEN)

	start := field.Loc()
	if b != nil {
		start = b.Loc()
	}
	return ast.NewCall(source.Join(start, end.Loc()), b, field, actuals)
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()

	switch tok.Kind {
	case tokens.INT_LITERAL:
		p.advance()
		return ast.NewIntConstant(tok.Loc(), parseIntValue(tok.Value))
	case tokens.DOUBLE_LITERAL:
		p.advance()
		value, _ := strconv.ParseFloat(tok.Value, 64)
		return ast.NewDoubleConstant(tok.Loc(), value)
	case tokens.BOOL_LITERAL:
		p.advance()
		return ast.NewBoolConstant(tok.Loc(), tok.Value == "true")
	case tokens.STRING_LITERAL:
		p.advance()
		return ast.NewStringConstant(tok.Loc(), tok.Value)
	case tokens.NULL_TOKEN:
		p.advance()
		return ast.NewNullConstant(tok.Loc())
	case tokens.THIS_TOKEN:
		p.advance()
		return ast.NewThis(tok.Loc())
	case tokens.READINT_TOKEN:
		p.advance()
		p.expect(tokens.LPAREN_TOKEN)
		end := p.expect(tokens.RPAREN_TOKEN)
		return ast.NewReadIntegerExpr(source.Join(tok.Loc(), end.Loc()))
	case tokens.READLINE_TOKEN:
		p.advance()
		p.expect(tokens.LPAREN_TOKEN)
		end := p.expect(tokens.RPAREN_TOKEN)
		return ast.NewReadLineExpr(source.Join(tok.Loc(), end.Loc()))
	case tokens.NEW_TOKEN:
		p.advance()
		id := p.parseIdentifier()
		ctype := ast.NewNamedType(id)
		return ast.NewNewExpr(source.Join(tok.Loc(), id.Loc()), ctype)
	case tokens.NEWARRAY_TOKEN:
		p.advance()
		p.expect(tokens.LPAREN_TOKEN)
		size := p.parseExpr()
		p.expect(tokens.COMMA_TOKEN)
		elem := p.parseType()
		end := p.expect(tokens.RPAREN_TOKEN)
		return ast.NewNewArrayExpr(source.Join(tok.Loc(), end.Loc()), size, elem)
	case tokens.LPAREN_TOKEN:
		p.advance()
		expr := p.parseExpr()
		p.expect(tokens.RPAREN_TOKEN)
		return expr
	case tokens.IDENTIFIER_TOKEN:
		id := p.parseIdentifier()
		if p.match(tokens.LPAREN_TOKEN) {
			return p.parseCallRest(nil, id)
		}
		return ast.NewFieldAccess(nil, id)
	default:
		p.error("syntax error: expected an expression, got '" + tok.Value + "'")
		panic(bail{})
	}
}
