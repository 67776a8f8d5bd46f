package source

import "fmt"

// Location is a span of source code with start and end positions.
// Nodes that have no meaningful source position carry a nil *Location.
type Location struct {
	Start Position
	End   Position
}

// NewLocation creates a Location covering [start, end].
func NewLocation(start, end Position) *Location {
	return &Location{Start: start, End: end}
}

// Join returns the smallest location covering both a and b.
// Either argument may be nil, in which case the other is returned.
func Join(a, b *Location) *Location {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	loc := &Location{Start: a.Start, End: b.End}
	if before(b.Start, a.Start) {
		loc.Start = b.Start
	}
	if before(loc.End, a.End) {
		loc.End = a.End
	}
	return loc
}

// Before reports whether l starts strictly before other. A nil location
// sorts after every real one so located diagnostics come out first.
func (l *Location) Before(other *Location) bool {
	if l == nil {
		return false
	}
	if other == nil {
		return true
	}
	return before(l.Start, other.Start)
}

func before(a, b Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

func (l *Location) String() string {
	if l == nil {
		return "location(unknown)"
	}
	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}
