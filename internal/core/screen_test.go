package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', "#28a745")
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if c := s.GetCell(5, 5); c.Color != "#28a745" {
		t.Errorf("GetCell(5, 5).Color = %q, expected #28a745", c.Color)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.FillRect(s.Bounds(), '#', "#ff0000")
	s.Clear()

	if s.String() != "    \n    " {
		t.Errorf("String() after Clear = %q", s.String())
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(2, 0, "Héllo", ColorDefault)
	s.DrawText(7, 1, "clipped", ColorDefault)

	if got := s.Row(0); got != "  Héllo   " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "       cli" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(NewRect(2, 1, 10, 10), '█', "#000000")

	expected := "    \n  ██\n  ██"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%s should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionSnapshot, ActionHelp, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%s should not be a direction", a)
		}
	}
}
