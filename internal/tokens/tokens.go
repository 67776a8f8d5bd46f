package tokens

import (
	"fmt"

	"github.com/alexjlaberge/CompilerP3/internal/source"
)

type TOKEN string

const (
	// keywords
	VOID_TOKEN       TOKEN = "void"
	INT_TOKEN        TOKEN = "int"
	DOUBLE_TOKEN     TOKEN = "double"
	BOOL_TOKEN       TOKEN = "bool"
	STRING_TOKEN     TOKEN = "string"
	CLASS_TOKEN      TOKEN = "class"
	INTERFACE_TOKEN  TOKEN = "interface"
	NULL_TOKEN       TOKEN = "null"
	THIS_TOKEN       TOKEN = "this"
	EXTENDS_TOKEN    TOKEN = "extends"
	IMPLEMENTS_TOKEN TOKEN = "implements"
	FOR_TOKEN        TOKEN = "for"
	WHILE_TOKEN      TOKEN = "while"
	IF_TOKEN         TOKEN = "if"
	ELSE_TOKEN       TOKEN = "else"
	RETURN_TOKEN     TOKEN = "return"
	BREAK_TOKEN      TOKEN = "break"
	NEW_TOKEN        TOKEN = "new"
	NEWARRAY_TOKEN   TOKEN = "NewArray"
	PRINT_TOKEN      TOKEN = "Print"
	READINT_TOKEN    TOKEN = "ReadInteger"
	READLINE_TOKEN   TOKEN = "ReadLine"
	SWITCH_TOKEN     TOKEN = "switch"
	CASE_TOKEN       TOKEN = "case"
	DEFAULT_TOKEN    TOKEN = "default"

	// literals and identifiers
	IDENTIFIER_TOKEN TOKEN = "identifier"
	INT_LITERAL      TOKEN = "int literal"
	DOUBLE_LITERAL   TOKEN = "double literal"
	STRING_LITERAL   TOKEN = "string literal"
	BOOL_LITERAL     TOKEN = "bool literal"

	// operators and punctuation
	PLUS_TOKEN       TOKEN = "+"
	MINUS_TOKEN      TOKEN = "-"
	STAR_TOKEN       TOKEN = "*"
	SLASH_TOKEN      TOKEN = "/"
	PERCENT_TOKEN    TOKEN = "%"
	LESS_TOKEN       TOKEN = "<"
	LESS_EQ_TOKEN    TOKEN = "<="
	GREATER_TOKEN    TOKEN = ">"
	GREATER_EQ_TOKEN TOKEN = ">="
	ASSIGN_TOKEN     TOKEN = "="
	EQUALS_TOKEN     TOKEN = "=="
	NOT_EQUALS_TOKEN TOKEN = "!="
	AND_TOKEN        TOKEN = "&&"
	OR_TOKEN         TOKEN = "||"
	NOT_TOKEN        TOKEN = "!"
	INCR_TOKEN       TOKEN = "++"
	DECR_TOKEN       TOKEN = "--"
	SEMI_TOKEN       TOKEN = ";"
	COLON_TOKEN      TOKEN = ":"
	COMMA_TOKEN      TOKEN = ","
	DOT_TOKEN        TOKEN = "."
	LBRACKET_TOKEN   TOKEN = "["
	RBRACKET_TOKEN   TOKEN = "]"
	LPAREN_TOKEN     TOKEN = "("
	RPAREN_TOKEN     TOKEN = ")"
	LBRACE_TOKEN     TOKEN = "{"
	RBRACE_TOKEN     TOKEN = "}"

	EOF_TOKEN TOKEN = "eof"
)

// Token is one lexeme with its source span.
type Token struct {
	Kind  TOKEN
	Value string
	Start source.Position
	End   source.Position
}

func New(kind TOKEN, value string, start, end source.Position) Token {
	return Token{Kind: kind, Value: value, Start: start, End: end}
}

// Loc returns the token's span as a Location.
func (t Token) Loc() *source.Location {
	return source.NewLocation(t.Start, t.End)
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", string(t.Kind), t.Value)
}

var keywords = map[string]TOKEN{
	"void":        VOID_TOKEN,
	"int":         INT_TOKEN,
	"double":      DOUBLE_TOKEN,
	"bool":        BOOL_TOKEN,
	"string":      STRING_TOKEN,
	"class":       CLASS_TOKEN,
	"interface":   INTERFACE_TOKEN,
	"null":        NULL_TOKEN,
	"this":        THIS_TOKEN,
	"extends":     EXTENDS_TOKEN,
	"implements":  IMPLEMENTS_TOKEN,
	"for":         FOR_TOKEN,
	"while":       WHILE_TOKEN,
	"if":          IF_TOKEN,
	"else":        ELSE_TOKEN,
	"return":      RETURN_TOKEN,
	"break":       BREAK_TOKEN,
	"new":         NEW_TOKEN,
	"NewArray":    NEWARRAY_TOKEN,
	"Print":       PRINT_TOKEN,
	"ReadInteger": READINT_TOKEN,
	"ReadLine":    READLINE_TOKEN,
	"switch":      SWITCH_TOKEN,
	"case":        CASE_TOKEN,
	"default":     DEFAULT_TOKEN,
}

// LookupIdent maps an identifier spelling to its keyword token, or to
// IDENTIFIER_TOKEN when it is not a reserved word. true and false lex as
// bool literals.
func LookupIdent(ident string) TOKEN {
	if ident == "true" || ident == "false" {
		return BOOL_LITERAL
	}
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENTIFIER_TOKEN
}
