package diagnostics

import (
	"fmt"

	"github.com/alexjlaberge/CompilerP3/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported problem in the analyzed program. The message is
// fully formatted at construction; the location may be nil for problems that
// have no source position (e.g. a whole-program complaint).
type Diagnostic struct {
	Severity Severity
	Message  string
	Location *source.Location
}

// Errorf builds an error diagnostic from one of the catalog templates.
func Errorf(loc *source.Location, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	}
}

func (d *Diagnostic) String() string {
	if d.Location == nil {
		return fmt.Sprintf("*** %s", d.Message)
	}
	return fmt.Sprintf("*** Error line %d.\n*** %s", d.Location.Start.Line, d.Message)
}
