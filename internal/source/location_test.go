package source

import "testing"

func TestAdvance(t *testing.T) {
	pos := Position{Line: 1, Column: 1}
	pos.Advance("ab\ncd")

	if pos.Line != 2 || pos.Column != 3 || pos.Index != 5 {
		t.Errorf("got %d:%d index %d, want 2:3 index 5", pos.Line, pos.Column, pos.Index)
	}
}

func TestJoin(t *testing.T) {
	a := NewLocation(Position{Line: 1, Column: 3}, Position{Line: 1, Column: 7})
	b := NewLocation(Position{Line: 2, Column: 1}, Position{Line: 2, Column: 5})

	joined := Join(a, b)
	if joined.Start != a.Start || joined.End != b.End {
		t.Errorf("Join(a, b) = %s", joined)
	}

	// order of arguments does not matter
	swapped := Join(b, a)
	if swapped.Start != a.Start || swapped.End != b.End {
		t.Errorf("Join(b, a) = %s", swapped)
	}

	if Join(nil, a) != a || Join(a, nil) != a {
		t.Error("Join with nil returns the other location")
	}
}

func TestBefore(t *testing.T) {
	early := NewLocation(Position{Line: 1, Column: 5}, Position{Line: 1, Column: 6})
	late := NewLocation(Position{Line: 3, Column: 1}, Position{Line: 3, Column: 2})
	sameLine := NewLocation(Position{Line: 1, Column: 9}, Position{Line: 1, Column: 9})

	if !early.Before(late) || late.Before(early) {
		t.Error("line ordering broken")
	}
	if !early.Before(sameLine) {
		t.Error("column breaks ties within a line")
	}
	if early.Before(early) {
		t.Error("Before is strict")
	}

	// nil locations sort last
	var unknown *Location
	if unknown.Before(early) {
		t.Error("nil location must not sort first")
	}
	if !early.Before(unknown) {
		t.Error("real locations sort before nil")
	}
}
