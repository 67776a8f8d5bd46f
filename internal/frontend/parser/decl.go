package parser

import (
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/source"
	"github.com/alexjlaberge/CompilerP3/internal/tokens"
)

// parseDecl parses one top-level declaration.
func (p *Parser) parseDecl() ast.Decl {
	switch p.peek().Kind {
	case tokens.CLASS_TOKEN:
		return p.parseClassDecl()
	case tokens.INTERFACE_TOKEN:
		return p.parseInterfaceDecl()
	default:
		return p.parseVarOrFnDecl(true)
	}
}

// parseVarOrFnDecl parses `Type ident ;` or `Type ident ( Formals ) Block`.
// The two productions share their prefix, so the decision happens after the
// identifier. withBody selects a function body (class/global context) over a
// prototype (interface context).
func (p *Parser) parseVarOrFnDecl(withBody bool) ast.Decl {
	returnType := p.parseReturnType()
	id := p.parseIdentifier()

	if p.match(tokens.LPAREN_TOKEN) {
		return p.parseFnRest(returnType, id, withBody)
	}

	p.expect(tokens.SEMI_TOKEN)
	return ast.NewVarDecl(id, returnType)
}

// parseVariable parses `Type ident` without the trailing semicolon (formals).
func (p *Parser) parseVariable() *ast.VarDecl {
	t := p.parseType()
	id := p.parseIdentifier()
	return ast.NewVarDecl(id, t)
}

func (p *Parser) parseFnRest(returnType ast.TypeRef, id *ast.Identifier, withBody bool) *ast.FnDecl {
	p.expect(tokens.LPAREN_TOKEN)

	formals := make([]*ast.VarDecl, 0)
	if !p.match(tokens.RPAREN_TOKEN) {
		formals = append(formals, p.parseVariable())
		for p.accept(tokens.COMMA_TOKEN) {
			formals = append(formals, p.parseVariable())
		}
	}
	p.expect(tokens.RPAREN_TOKEN)

	fn := ast.NewFnDecl(id, returnType, formals)
	if withBody {
		fn.SetBody(p.parseStmtBlock())
	} else {
		p.expect(tokens.SEMI_TOKEN)
	}
	return fn
}

func (p *Parser) parseClassDecl() *ast.ClassDecl {
	start := p.expect(tokens.CLASS_TOKEN)
	id := p.parseIdentifier()

	var extends *ast.NamedType
	if p.accept(tokens.EXTENDS_TOKEN) {
		extends = ast.NewNamedType(p.parseIdentifier())
	}

	implements := make([]*ast.NamedType, 0)
	if p.accept(tokens.IMPLEMENTS_TOKEN) {
		implements = append(implements, ast.NewNamedType(p.parseIdentifier()))
		for p.accept(tokens.COMMA_TOKEN) {
			implements = append(implements, ast.NewNamedType(p.parseIdentifier()))
		}
	}

	p.expect(tokens.LBRACE_TOKEN)
	members := make([]ast.Decl, 0)
	for !p.match(tokens.RBRACE_TOKEN, tokens.EOF_TOKEN) {
		members = append(members, p.parseVarOrFnDecl(true))
	}
	end := p.expect(tokens.RBRACE_TOKEN)

	loc := source.Join(start.Loc(), end.Loc())
	return ast.NewClassDecl(loc, id, extends, implements, members)
}

func (p *Parser) parseInterfaceDecl() *ast.InterfaceDecl {
	start := p.expect(tokens.INTERFACE_TOKEN)
	id := p.parseIdentifier()

	p.expect(tokens.LBRACE_TOKEN)
	members := make([]*ast.FnDecl, 0)
	for !p.match(tokens.RBRACE_TOKEN, tokens.EOF_TOKEN) {
		returnType := p.parseReturnType()
		name := p.parseIdentifier()
		members = append(members, p.parseFnRest(returnType, name, false))
	}
	end := p.expect(tokens.RBRACE_TOKEN)

	loc := source.Join(start.Loc(), end.Loc())
	return ast.NewInterfaceDecl(loc, id, members)
}
