package parser

import (
	"fmt"

	"github.com/alexjlaberge/CompilerP3/internal/diagnostics"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/tokens"
)

// The Parser builds an AST from a token stream. Constructors in the ast
// package set parent back-links as each node takes ownership of its
// children, so the tree that comes out of Parse is fully attached.

// Parser holds temporary state during parsing of a single program.
type Parser struct {
	tokens      []tokens.Token
	current     int
	diagnostics *diagnostics.Bag
}

// bail aborts the parse after a syntax diagnostic has been reported.
// Semantic analysis never runs over a partial tree.
type bail struct{}

// Parse builds the program tree. On a syntax error it reports one
// diagnostic through the bag and returns nil.
func Parse(toks []tokens.Token, diag *diagnostics.Bag) (program *ast.Program) {
	p := &Parser{tokens: toks, diagnostics: diag}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bail); !ok {
				panic(r)
			}
			program = nil
		}
	}()

	decls := make([]ast.Decl, 0)
	for !p.isAtEnd() {
		decls = append(decls, p.parseDecl())
	}
	return ast.NewProgram(decls)
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == tokens.EOF_TOKEN
}

func (p *Parser) peek() tokens.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) peekAt(offset int) tokens.Token {
	idx := p.current + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) previous() tokens.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() tokens.Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

func (p *Parser) match(kinds ...tokens.TOKEN) bool {
	for _, kind := range kinds {
		if p.peek().Kind == kind {
			return true
		}
	}
	return false
}

// accept consumes the next token when it has the given kind.
func (p *Parser) accept(kind tokens.TOKEN) bool {
	if p.match(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind tokens.TOKEN) tokens.Token {
	if p.match(kind) {
		return p.advance()
	}
	p.error(fmt.Sprintf("syntax error: unexpected token '%s', expected '%s'", p.peek().Value, kind))
	panic(bail{})
}

// error reports a parsing error to the diagnostics
func (p *Parser) error(msg string) {
	tok := p.peek()
	p.diagnostics.Add(diagnostics.Errorf(tok.Loc(), "%s", msg))
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	tok := p.expect(tokens.IDENTIFIER_TOKEN)
	return ast.NewIdentifier(tok.Loc(), tok.Value)
}
