package core

import (
	"strings"
	"testing"
)

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
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetColored(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColored(3, 4, '@', ColorPlayer)

	cell := s.GetCell(3, 4)
	if cell.Rune != '@' || cell.Color != ColorPlayer {
		t.Errorf("GetCell(3, 4) = %+v, expected '@' in player color", cell)
	}

	// Out of bounds is ignored on write and blank on read
	s.Set(-1, 0, 'X')
	s.Set(10, 10, 'X')
	if s.Get(-1, 0) != ' ' || s.Get(10, 10) != ' ' {
		t.Error("Out-of-bounds reads should return space")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello")

	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredUnicode(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "◆◆", ColorShard)

	x := (20 - 2) / 2
	if s.Get(x, 1) != '◆' || s.Get(x+1, 1) != '◆' {
		t.Errorf("DrawTextCentered placed runes incorrectly: %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorHUD)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(2, 2, '#', ColorBarrier)
	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("Resize() dims = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if cell := s.GetCell(2, 2); cell.Rune != '#' || cell.Color != ColorBarrier {
		t.Errorf("Resize() lost content: %+v", cell)
	}

	s.Resize(2, 2)
	if s.Get(1, 1) != ' ' {
		t.Errorf("Shrunk screen should keep only in-range content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || lines[0] != "abc" || lines[1] != "de " {
		t.Errorf("String() = %q", s.String())
	}
	if s.Row(5) != "   " {
		t.Errorf("Row() out of range should be blank, got %q", s.Row(5))
	}
}
