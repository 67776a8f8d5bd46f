package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/alexjlaberge/CompilerP3/internal/compiler"
	"github.com/alexjlaberge/CompilerP3/internal/repl"
)

const version = "3.0.0"

func main() {
	app := &cli.App{
		Name:    "decaf",
		Usage:   "static semantic analyzer for the Decaf language",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "print-ast",
				Aliases: []string{"a"},
				Usage:   "dump the parsed tree before analysis",
			},
		},
		ArgsUsage: "[file.decaf]",
		Action:    check,
		Commands: []*cli.Command{
			{
				Name:  "repl",
				Usage: "analyze declarations interactively",
				Action: func(ctx *cli.Context) error {
					if code := repl.Run(); code != 0 {
						return cli.Exit("", code)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// check reads the program from the named file, or standard input when no
// path is given, and runs the analyzer over it.
func check(ctx *cli.Context) error {
	var (
		code []byte
		err  error
	)

	if path := ctx.Args().First(); path != "" {
		code, err = os.ReadFile(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("decaf: %v", err), 1)
		}
	} else {
		code, err = io.ReadAll(os.Stdin)
		if err != nil {
			return cli.Exit(fmt.Sprintf("decaf: reading stdin: %v", err), 1)
		}
	}

	result := compiler.Analyze(compiler.Options{
		Code:     string(code),
		PrintAST: ctx.Bool("print-ast"),
		ASTOut:   os.Stdout,
	})

	result.Bag.EmitAll()
	if !result.Success {
		return cli.Exit("", 1)
	}
	return nil
}
