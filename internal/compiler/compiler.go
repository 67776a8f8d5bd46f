// Package compiler wires the phases together: lex, parse, then semantic
// analysis. Lexing and parsing exist to produce the attached tree; the
// analyzer is the product.
package compiler

import (
	"io"

	"github.com/alexjlaberge/CompilerP3/internal/diagnostics"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/ast"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/lexer"
	"github.com/alexjlaberge/CompilerP3/internal/frontend/parser"
	"github.com/alexjlaberge/CompilerP3/internal/semantics/checker"
)

// Options for analysis
type Options struct {
	// Decaf source text
	Code string
	// Dump the parsed tree before analysis
	PrintAST bool
	// Where the AST dump goes (defaults to nothing when PrintAST is off)
	ASTOut io.Writer
}

// Result of analysis
type Result struct {
	Success bool
	Errors  int
	Program *ast.Program
	Bag     *diagnostics.Bag
}

// Analyze runs the full pipeline over one program. Diagnostics end up in
// the returned bag; the caller decides how to emit them.
func Analyze(opts Options) Result {
	bag := diagnostics.NewBag()

	toks := lexer.New(opts.Code, bag).Tokenize()
	if bag.HasErrors() {
		return Result{Bag: bag, Errors: bag.ErrorCount()}
	}

	program := parser.Parse(toks, bag)
	if program == nil || bag.HasErrors() {
		return Result{Bag: bag, Errors: bag.ErrorCount()}
	}

	if opts.PrintAST && opts.ASTOut != nil {
		ast.Fprint(opts.ASTOut, program)
	}

	errs := checker.Check(program, bag)
	return Result{
		Success: errs == 0,
		Errors:  errs,
		Program: program,
		Bag:     bag,
	}
}
