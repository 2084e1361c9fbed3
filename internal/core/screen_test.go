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

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen String() = %q", s.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#')
	s.Clear()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("After Clear, expected blank screen, got %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Score: 3", ColorYellow)

	if got := s.Row(1)[2:10]; got != "Score: 3" {
		t.Errorf("DrawText row = %q, expected %q", got, "Score: 3")
	}
	if s.GetCell(2, 1).Color != ColorYellow {
		t.Error("DrawTextColored should color the text")
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

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
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 5))
	if s.Get(0, 0) != ' ' {
		t.Error("1-wide box should not be drawn")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("After resize, dimensions should be 3x2, got %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); got != "   \n   " {
		t.Errorf("Resize should clear content, got %q", got)
	}
	if got := s.Row(-1); got != "   " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
