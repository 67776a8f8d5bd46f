package lexer

import (
	"regexp"

	"github.com/alexjlaberge/CompilerP3/internal/diagnostics"
	"github.com/alexjlaberge/CompilerP3/internal/source"
	"github.com/alexjlaberge/CompilerP3/internal/tokens"
)

type regexHandler func(lex *Lexer, regex *regexp.Regexp)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

type Lexer struct {
	diagnostics *diagnostics.Bag
	Tokens      []tokens.Token
	Position    source.Position
	sourceCode  string
	patterns    []regexPattern
}

func (lex *Lexer) advance(match string) {
	lex.Position.Advance(match)
}

func (lex *Lexer) push(token tokens.Token) {
	lex.Tokens = append(lex.Tokens, token)
}

func (lex *Lexer) remainder() string {
	return lex.sourceCode[lex.Position.Index:]
}

func (lex *Lexer) atEOF() bool {
	return lex.Position.Index >= len(lex.sourceCode)
}

func New(content string, diag *diagnostics.Bag) *Lexer {
	lex := &Lexer{
		sourceCode:  content,
		Tokens:      make([]tokens.Token, 0),
		Position:    source.Position{Line: 1, Column: 1, Index: 0},
		diagnostics: diag,
		patterns: []regexPattern{
			{regexp.MustCompile(`\s+`), skipHandler},              // whitespace
			{regexp.MustCompile(`//.*`), skipHandler},             // single line comments
			{regexp.MustCompile(`/\*[\s\S]*?\*/`), skipHandler},   // multi line comments
			{regexp.MustCompile(`"[^"\n]*"`), stringHandler},      // string literals
			{regexp.MustCompile(`0[xX][0-9a-fA-F]+`), intHandler}, // hex int literals
			{regexp.MustCompile(`\d+\.\d*([Ee][+-]?\d+)?`), doubleHandler},
			{regexp.MustCompile(`\d+`), intHandler},
			{regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9_]*`), identifierHandler},
			{regexp.MustCompile(`\+\+`), defaultHandler(tokens.INCR_TOKEN)},
			{regexp.MustCompile(`--`), defaultHandler(tokens.DECR_TOKEN)},
			{regexp.MustCompile(`<=`), defaultHandler(tokens.LESS_EQ_TOKEN)},
			{regexp.MustCompile(`>=`), defaultHandler(tokens.GREATER_EQ_TOKEN)},
			{regexp.MustCompile(`==`), defaultHandler(tokens.EQUALS_TOKEN)},
			{regexp.MustCompile(`!=`), defaultHandler(tokens.NOT_EQUALS_TOKEN)},
			{regexp.MustCompile(`&&`), defaultHandler(tokens.AND_TOKEN)},
			{regexp.MustCompile(`\|\|`), defaultHandler(tokens.OR_TOKEN)},
			{regexp.MustCompile(`!`), defaultHandler(tokens.NOT_TOKEN)},
			{regexp.MustCompile(`\+`), defaultHandler(tokens.PLUS_TOKEN)},
			{regexp.MustCompile(`-`), defaultHandler(tokens.MINUS_TOKEN)},
			{regexp.MustCompile(`\*`), defaultHandler(tokens.STAR_TOKEN)},
			{regexp.MustCompile(`/`), defaultHandler(tokens.SLASH_TOKEN)},
			{regexp.MustCompile(`%`), defaultHandler(tokens.PERCENT_TOKEN)},
			{regexp.MustCompile(`<`), defaultHandler(tokens.LESS_TOKEN)},
			{regexp.MustCompile(`>`), defaultHandler(tokens.GREATER_TOKEN)},
			{regexp.MustCompile(`=`), defaultHandler(tokens.ASSIGN_TOKEN)},
			{regexp.MustCompile(`;`), defaultHandler(tokens.SEMI_TOKEN)},
			{regexp.MustCompile(`:`), defaultHandler(tokens.COLON_TOKEN)},
			{regexp.MustCompile(`,`), defaultHandler(tokens.COMMA_TOKEN)},
			{regexp.MustCompile(`\.`), defaultHandler(tokens.DOT_TOKEN)},
			{regexp.MustCompile(`\[`), defaultHandler(tokens.LBRACKET_TOKEN)},
			{regexp.MustCompile(`\]`), defaultHandler(tokens.RBRACKET_TOKEN)},
			{regexp.MustCompile(`\(`), defaultHandler(tokens.LPAREN_TOKEN)},
			{regexp.MustCompile(`\)`), defaultHandler(tokens.RPAREN_TOKEN)},
			{regexp.MustCompile(`\{`), defaultHandler(tokens.LBRACE_TOKEN)},
			{regexp.MustCompile(`\}`), defaultHandler(tokens.RBRACE_TOKEN)},
		},
	}
	return lex
}

func defaultHandler(token tokens.TOKEN) regexHandler {
	return func(lex *Lexer, _ *regexp.Regexp) {
		start := lex.Position
		lex.advance(string(token))
		end := lex.Position
		lex.push(tokens.New(token, string(token), start, end))
	}
}

func identifierHandler(lex *Lexer, regex *regexp.Regexp) {
	identifier := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(identifier)
	end := lex.Position
	lex.push(tokens.New(tokens.LookupIdent(identifier), identifier, start, end))
}

func intHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	lex.push(tokens.New(tokens.INT_LITERAL, match, start, end))
}

func doubleHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	lex.push(tokens.New(tokens.DOUBLE_LITERAL, match, start, end))
}

func stringHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.Position
	lex.advance(match)
	end := lex.Position
	// exclude the quotes
	lex.push(tokens.New(tokens.STRING_LITERAL, match[1:len(match)-1], start, end))
}

// skipHandler processes a token that should be skipped by the lexer.
func skipHandler(lex *Lexer, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	lex.advance(match)
}

// Tokenize splits the source into tokens, reporting unrecognized characters
// through the diagnostic bag and skipping past them.
func (lex *Lexer) Tokenize() []tokens.Token {
	for !lex.atEOF() {
		matched := false

		for _, pattern := range lex.patterns {
			loc := pattern.regex.FindStringIndex(lex.remainder())
			if loc != nil && loc[0] == 0 {
				pattern.handler(lex, pattern.regex)
				matched = true
				break
			}
		}

		if !matched {
			bad := lex.remainder()[0]
			start := lex.Position
			lex.advance(string(bad))
			lex.diagnostics.Add(diagnostics.Errorf(
				source.NewLocation(start, lex.Position),
				"Unrecognized char: '%c'", bad))
		}
	}

	lex.push(tokens.New(tokens.EOF_TOKEN, "", lex.Position, lex.Position))
	return lex.Tokens
}
