// Package repl is an interactive front door to the analyzer: declarations
// are accumulated line by line and the whole buffer is re-analyzed on each
// blank line, so diagnostics always reflect the full program so far.
package repl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/alexjlaberge/CompilerP3/colors"
	"github.com/alexjlaberge/CompilerP3/internal/compiler"
)

const (
	historyFile = ".decaf_history"
	promptMain  = ">>> "
	promptCont  = "... "
)

const banner = `Decaf semantic analyzer REPL
Enter declarations; a blank line re-analyzes the program so far.
Commands: :show  :reset  :quit  (Ctrl+C aborts input, Ctrl+D exits)`

// Run drives the interactive loop until EOF or :quit.
func Run() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	var program []string
	pending := false

	for {
		prompt := promptMain
		if pending {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			pending = false
			continue
		}
		if err != nil { // io.EOF on Ctrl+D
			fmt.Println()
			return 0
		}

		switch strings.TrimSpace(line) {
		case ":quit":
			return 0
		case ":reset":
			program = nil
			pending = false
			colors.GREY.Println("program cleared")
			continue
		case ":show":
			fmt.Println(strings.Join(program, "\n"))
			continue
		case "":
			if pending {
				analyze(program)
				pending = false
			}
			continue
		}

		ln.AppendHistory(line)
		program = append(program, line)
		pending = true
	}
}

func analyze(program []string) {
	result := compiler.Analyze(compiler.Options{Code: strings.Join(program, "\n")})
	if result.Success {
		colors.GREEN.Println("no errors")
		return
	}
	result.Bag.Emit(os.Stdout)
}
