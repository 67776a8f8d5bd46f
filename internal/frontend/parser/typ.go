package parser

import (
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/source"
	"github.com/alexjlaberge/CompilerP3/internal/tokens"
	"github.com/alexjlaberge/CompilerP3/internal/types"
)

// isTypeStart reports whether tok can begin a type.
func isTypeStart(tok tokens.Token) bool {
	switch tok.Kind {
	case tokens.INT_TOKEN, tokens.DOUBLE_TOKEN, tokens.BOOL_TOKEN,
		tokens.STRING_TOKEN, tokens.IDENTIFIER_TOKEN:
		return true
	}
	return false
}

// parseType parses a base type followed by any number of [] suffixes.
func (p *Parser) parseType() ast.TypeRef {
	var ref ast.TypeRef

	tok := p.peek()
	switch tok.Kind {
	case tokens.INT_TOKEN:
		p.advance()
		ref = ast.NewBuiltinType(tok.Loc(), types.Int)
	case tokens.DOUBLE_TOKEN:
		p.advance()
		ref = ast.NewBuiltinType(tok.Loc(), types.Double)
	case tokens.BOOL_TOKEN:
		p.advance()
		ref = ast.NewBuiltinType(tok.Loc(), types.Bool)
	case tokens.STRING_TOKEN:
		p.advance()
		ref = ast.NewBuiltinType(tok.Loc(), types.String)
	case tokens.IDENTIFIER_TOKEN:
		ref = ast.NewNamedType(p.parseIdentifier())
	default:
		p.error("syntax error: expected a type")
		panic(bail{})
	}

	return p.parseArraySuffix(ref)
}

// parseReturnType is parseType plus void.
func (p *Parser) parseReturnType() ast.TypeRef {
	if tok := p.peek(); tok.Kind == tokens.VOID_TOKEN {
		p.advance()
		return ast.NewBuiltinType(tok.Loc(), types.Void)
	}
	return p.parseType()
}

func (p *Parser) parseArraySuffix(ref ast.TypeRef) ast.TypeRef {
	for p.match(tokens.LBRACKET_TOKEN) && p.peekAt(1).Kind == tokens.RBRACKET_TOKEN {
		p.advance()
		end := p.advance()
		ref = ast.NewArrayType(source.Join(ref.Loc(), end.Loc()), ref)
	}
	return ref
}
