package parser

import (
	"strconv"

	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/source"
	"github.com/alexjlaberge/CompilerP3/internal/tokens"
)

func (p *Parser) parseStmtBlock() *ast.StmtBlock {
	start := p.expect(tokens.LBRACE_TOKEN)

	// local declarations come first, then statements
	decls := make([]*ast.VarDecl, 0)
	for p.isLocalDeclStart() {
		decls = append(decls, p.parseVariable())
		p.expect(tokens.SEMI_TOKEN)
	}

	stmts := make([]ast.Statement, 0)
	for !p.match(tokens.RBRACE_TOKEN, tokens.EOF_TOKEN) {
		stmts = append(stmts, p.parseStmt())
	}
	end := p.expect(tokens.RBRACE_TOKEN)

	return ast.NewStmtBlock(source.Join(start.Loc(), end.Loc()), decls, stmts)
}

// isLocalDeclStart distinguishes `Type ident ...` declarations from
// statements that begin with an identifier expression. An identifier opens a
// declaration only when the next token is another identifier or a [] pair.
func (p *Parser) isLocalDeclStart() bool {
	tok := p.peek()
	if !isTypeStart(tok) {
		return false
	}
	if tok.Kind != tokens.IDENTIFIER_TOKEN {
		return true
	}
	next := p.peekAt(1)
	if next.Kind == tokens.IDENTIFIER_TOKEN {
		return true
	}
	return next.Kind == tokens.LBRACKET_TOKEN && p.peekAt(2).Kind == tokens.RBRACKET_TOKEN
}

func (p *Parser) parseStmt() ast.Statement {
	switch p.peek().Kind {
	case tokens.LBRACE_TOKEN:
		return p.parseStmtBlock()
	case tokens.IF_TOKEN:
		return p.parseIfStmt()
	case tokens.WHILE_TOKEN:
		return p.parseWhileStmt()
	case tokens.FOR_TOKEN:
		return p.parseForStmt()
	case tokens.RETURN_TOKEN:
		return p.parseReturnStmt()
	case tokens.BREAK_TOKEN:
		tok := p.advance()
		p.expect(tokens.SEMI_TOKEN)
		return ast.NewBreakStmt(tok.Loc())
	case tokens.PRINT_TOKEN:
		return p.parsePrintStmt()
	case tokens.SWITCH_TOKEN:
		return p.parseSwitchStmt()
	case tokens.SEMI_TOKEN:
		p.advance()
		return ast.NewEmptyExpr()
	default:
		expr := p.parseExpr()
		p.expect(tokens.SEMI_TOKEN)
		return expr
	}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.expect(tokens.IF_TOKEN)
	p.expect(tokens.LPAREN_TOKEN)
	test := p.parseExpr()
	p.expect(tokens.RPAREN_TOKEN)
	then := p.parseStmt()

	var els ast.Statement
	if p.accept(tokens.ELSE_TOKEN) {
		els = p.parseStmt()
	}
	return ast.NewIfStmt(start.Loc(), test, then, els)
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.expect(tokens.WHILE_TOKEN)
	p.expect(tokens.LPAREN_TOKEN)
	test := p.parseExpr()
	p.expect(tokens.RPAREN_TOKEN)
	body := p.parseStmt()
	return ast.NewWhileStmt(start.Loc(), test, body)
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	start := p.expect(tokens.FOR_TOKEN)
	p.expect(tokens.LPAREN_TOKEN)

	init := p.parseOptExpr(tokens.SEMI_TOKEN)
	p.expect(tokens.SEMI_TOKEN)
	test := p.parseOptExpr(tokens.SEMI_TOKEN)
	p.expect(tokens.SEMI_TOKEN)
	step := p.parseOptExpr(tokens.RPAREN_TOKEN)
	p.expect(tokens.RPAREN_TOKEN)

	body := p.parseStmt()
	return ast.NewForStmt(start.Loc(), init, test, step, body)
}

// parseOptExpr parses an expression unless the closing token is already
// next, in which case the slot is empty.
func (p *Parser) parseOptExpr(closer tokens.TOKEN) ast.Expression {
	if p.match(closer) {
		return ast.NewEmptyExpr()
	}
	return p.parseExpr()
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.expect(tokens.RETURN_TOKEN)
	expr := p.parseOptExpr(tokens.SEMI_TOKEN)
	p.expect(tokens.SEMI_TOKEN)
	return ast.NewReturnStmt(start.Loc(), expr)
}

func (p *Parser) parsePrintStmt() *ast.PrintStmt {
	start := p.expect(tokens.PRINT_TOKEN)
	p.expect(tokens.LPAREN_TOKEN)

	args := []ast.Expression{p.parseExpr()}
	for p.accept(tokens.COMMA_TOKEN) {
		args = append(args, p.parseExpr())
	}
	p.expect(tokens.RPAREN_TOKEN)
	p.expect(tokens.SEMI_TOKEN)

	return ast.NewPrintStmt(start.Loc(), args)
}

func (p *Parser) parseSwitchStmt() *ast.SwitchStmt {
	start := p.expect(tokens.SWITCH_TOKEN)
	p.expect(tokens.LPAREN_TOKEN)
	expr := p.parseExpr()
	p.expect(tokens.RPAREN_TOKEN)
	p.expect(tokens.LBRACE_TOKEN)

	cases := make([]*ast.CaseStmt, 0)
	for p.match(tokens.CASE_TOKEN, tokens.DEFAULT_TOKEN) {
		cases = append(cases, p.parseCase())
	}
	p.expect(tokens.RBRACE_TOKEN)

	return ast.NewSwitchStmt(start.Loc(), expr, cases)
}

func (p *Parser) parseCase() *ast.CaseStmt {
	var value *ast.IntConstant

	start := p.peek()
	if p.accept(tokens.CASE_TOKEN) {
		tok := p.expect(tokens.INT_LITERAL)
		value = ast.NewIntConstant(tok.Loc(), parseIntValue(tok.Value))
	} else {
		p.expect(tokens.DEFAULT_TOKEN)
	}
	p.expect(tokens.COLON_TOKEN)

	stmts := make([]ast.Statement, 0)
	for !p.match(tokens.CASE_TOKEN, tokens.DEFAULT_TOKEN, tokens.RBRACE_TOKEN, tokens.EOF_TOKEN) {
		stmts = append(stmts, p.parseStmt())
	}
	return ast.NewCaseStmt(start.Loc(), value, stmts)
}

func parseIntValue(text string) int {
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return 0
	}
	return int(v)
}
