package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@', ColorBrightGreen)
	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell = %+v", cell)
	}

	// Out of bounds is silently ignored on write and blank on read.
	s.Set(-1, 0, 'x', ColorRed)
	s.Set(10, 0, 'x', ColorRed)
	s.Set(0, 5, 'x', ColorRed)
	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("out-of-bounds read should be blank, got %q", c.Rune)
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(4, 3)
	s.Fill('*', ColorYellow)
	if c := s.GetCell(3, 2); c.Rune != '*' || c.Color != ColorYellow {
		t.Errorf("Fill did not cover the screen, got %+v", c)
	}

	s.Clear()
	if c := s.GetCell(3, 2); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear should reset to blank, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(2, 1, "hi", ColorCyan)
	if got := s.Row(1); got != "  hi      " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge, no panic.
	s.DrawText(8, 0, "long", ColorCyan)
	if got := s.Row(0); got != "        lo" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorWhite)
	if got := strings.TrimRight(s.Row(0), " "); got != "    abc" {
		t.Errorf("centered row = %q", got)
	}
}

func TestScreenFillRectClipped(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(3, 3, 10, 10, '#', ColorRed)
	if s.GetCell(4, 4).Rune != '#' {
		t.Error("FillRect should cover in-bounds cells")
	}
	if s.GetCell(2, 2).Rune != ' ' {
		t.Error("FillRect should not spill outside its rectangle")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'A', ColorGreen)
	s.Set(5, 3, 'B', ColorGreen)

	s.Resize(4, 3)
	if s.GetCell(1, 1).Rune != 'A' {
		t.Error("resize should preserve surviving content")
	}
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("resize dimensions = %dx%d", s.Width(), s.Height())
	}

	s.Resize(8, 5)
	if s.GetCell(1, 1).Rune != 'A' {
		t.Error("growing should preserve content")
	}
	if s.GetCell(7, 4).Rune != ' ' {
		t.Error("new cells should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a', ColorDefault)
	s.Set(2, 1, 'b', ColorDefault)
	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String = %q", got)
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("bright-magenta"); !ok || c != ColorBrightMagenta {
		t.Errorf("ParseColor(bright-magenta) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("mauve"); ok {
		t.Error("unknown color names should not parse")
	}
}
