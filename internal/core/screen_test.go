package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x')
	if got := s.Get(3, 2); got != 'x' {
		t.Errorf("Get(3, 2) = %q, expected 'x'", got)
	}

	s.SetCell(4, 2, 'y', ColorBrightGreen)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'y' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(4, 2) = %+v, expected 'y' in bright green", cell)
	}

	// Out-of-bounds writes are ignored, reads return blanks
	s.Set(-1, 0, 'z')
	s.Set(10, 0, 'z')
	s.Set(0, 5, 'z')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, '#', ColorRed)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell = %+v, expected blank default cell", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'a')
	s.Set(9, 4, 'b')

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Errorf("Resize to 5x3 gave %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'a' {
		t.Errorf("content inside new bounds lost: Get(2, 2) = %q", got)
	}

	s.Resize(12, 6)
	if got := s.Get(2, 2); got != 'a' {
		t.Errorf("content lost after growing: Get(2, 2) = %q", got)
	}
	if got := s.Get(9, 4); got != ' ' {
		t.Errorf("clipped content should not reappear: Get(9, 4) = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 1, "hello", ColorCyan)

	// Clipped at the right edge
	if got := s.Row(1); got != "       hel" {
		t.Errorf("Row(1) = %q, expected %q", got, "       hel")
	}
	if cell := s.GetCell(8, 1); cell.Color != ColorCyan {
		t.Errorf("DrawText color = %v, expected cyan", cell.Color)
	}
}

func TestScreenDrawTextMultiByte(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(0, 1, "a—b●c", ColorDefault)

	// One column per rune regardless of encoded width
	if got := s.Row(1); got != "a—b●c     " {
		t.Errorf("Row(1) = %q, expected %q", got, "a—b●c     ")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", ColorDefault)
	if got := s.Get(4, 1); got != 'a' {
		t.Errorf("centered text starts at %q, expected 'a' at x=4", got)
	}
}

func TestScreenDrawTextCenteredWiderThanScreen(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "Window too small", ColorDefault)

	// Left-aligned so the start of the message survives clipping
	if got := s.Row(1); got != "Window too" {
		t.Errorf("Row(1) = %q, expected %q", got, "Window too")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorDefault)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("box corners missing")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges missing")
	}
	if s.Get(2, 2) != ' ' {
		t.Error("box interior should be untouched")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 2, 2), '#', ColorOrange)

	for y := 1; y <= 2; y++ {
		for x := 1; x <= 2; x++ {
			if cell := s.GetCell(x, y); cell.Rune != '#' || cell.Color != ColorOrange {
				t.Errorf("DrawRect missed (%d, %d): %+v", x, y, cell)
			}
		}
	}
	if s.Get(3, 3) != ' ' {
		t.Error("DrawRect overflowed its bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	expected := "a  \n  b"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() has %d newlines, expected 1", strings.Count(got, "\n"))
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("bright-green"); !ok || c != ColorBrightGreen {
		t.Errorf("ParseColor(bright-green) = %v, %v", c, ok)
	}
	if c, ok := ParseColor("  Red "); !ok || c != ColorRed {
		t.Errorf("ParseColor should trim and lowercase, got %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}
