package diagnostics

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alexjlaberge/CompilerP3/colors"
)

// Bag collects diagnostics during a compilation. It is the only channel for
// user-program errors: checkers add to it and never abort. Analysis is
// single-threaded, so the bag needs no locking; it keeps insertion order and
// sorts stably by source location when emitting.
type Bag struct {
	diagnostics []*Diagnostic
	errorCount  int
}

// NewBag creates an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{diagnostics: make([]*Diagnostic, 0)}
}

// Add records a diagnostic.
func (b *Bag) Add(diag *Diagnostic) {
	b.diagnostics = append(b.diagnostics, diag)
	if diag.Severity == Error {
		b.errorCount++
	}
}

// HasErrors returns true if there are any errors
func (b *Bag) HasErrors() bool {
	return b.errorCount > 0
}

// ErrorCount returns the number of errors
func (b *Bag) ErrorCount() int {
	return b.errorCount
}

// Diagnostics returns the collected diagnostics sorted by location.
// Diagnostics at the same position keep their insertion order.
func (b *Bag) Diagnostics() []*Diagnostic {
	sorted := make([]*Diagnostic, len(b.diagnostics))
	copy(sorted, b.diagnostics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Location.Before(sorted[j].Location)
	})
	return sorted
}

// EmitAll writes every diagnostic to stderr, followed by a summary line when
// there are errors.
func (b *Bag) EmitAll() {
	b.Emit(os.Stderr)
}

// Emit writes every diagnostic to w in location order.
func (b *Bag) Emit(w io.Writer) {
	for _, diag := range b.Diagnostics() {
		if diag.Severity == Error {
			colors.RED.Fprintf(w, "%s\n", diag.String())
		} else {
			colors.ORANGE.Fprintf(w, "%s\n", diag.String())
		}
	}
	b.printSummary(w)
}

func (b *Bag) printSummary(w io.Writer) {
	if b.errorCount > 0 {
		colors.RED.Fprintf(w, "\n%d error(s) reported\n", b.errorCount)
	}
}

// Clear removes all diagnostics
func (b *Bag) Clear() {
	b.diagnostics = make([]*Diagnostic, 0)
	b.errorCount = 0
}

// Render returns the plain-text form of all diagnostics, without colors and
// without the summary. Used by tests.
func (b *Bag) Render() string {
	out := ""
	for _, diag := range b.Diagnostics() {
		out += fmt.Sprintf("%s\n", diag.String())
	}
	return out
}
