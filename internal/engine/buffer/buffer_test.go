package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if b.CurrentLine() != "" {
		t.Errorf("expected empty line, got %q", b.CurrentLine())
	}
	if b.Cursor() != NewPosition(0, 0) {
		t.Errorf("expected cursor at origin, got %v", b.Cursor())
	}
}

func TestNewBufferFromString(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"only newline", "\n", []string{""}},
		{"single line", "Hello World", []string{"Hello World"}},
		{"multiline", "Line 1\nLine 2\nLine 3", []string{"Line 1", "Line 2", "Line 3"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.text)
			if diff := cmp.Diff(tt.want, b.Lines()); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
			if b.Cursor() != NewPosition(0, 0) {
				t.Errorf("expected cursor at origin, got %v", b.Cursor())
			}
		})
	}
}

func TestNewBufferFromLines(t *testing.T) {
	b := NewBufferFromLines(nil)
	if b.LineCount() != 1 || b.CurrentLine() != "" {
		t.Errorf("empty input should yield one empty line, got %q", b.Lines())
	}

	b = NewBufferFromLines([]string{"one", "two"})
	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}
	if b.LastLine() != 1 {
		t.Errorf("expected last line 1, got %d", b.LastLine())
	}
}

func TestBufferLineAccess(t *testing.T) {
	b := NewBufferFromString("héllo\nworld")

	line, ok := b.Line(0)
	if !ok || line != "héllo" {
		t.Errorf("Line(0) = %q, %v", line, ok)
	}
	if _, ok := b.Line(2); ok {
		t.Error("Line(2) should be out of range")
	}

	// Lengths are counted in runes, not bytes.
	if n := b.LineLen(0); n != 5 {
		t.Errorf("expected rune length 5, got %d", n)
	}
	if n := b.LineLen(9); n != 0 {
		t.Errorf("out-of-range line length should be 0, got %d", n)
	}

	runes := b.LineRunes(0)
	runes[0] = 'X'
	if line, _ := b.Line(0); line != "héllo" {
		t.Errorf("LineRunes must return a copy, buffer now holds %q", line)
	}
}

func TestBufferCursor(t *testing.T) {
	b := NewBufferFromString("abc\ndefgh")
	b.SetCursor(NewPosition(1, 3))

	if b.Cursor() != NewPosition(1, 3) {
		t.Errorf("cursor = %v", b.Cursor())
	}
	if b.CurrentLine() != "defgh" {
		t.Errorf("current line = %q", b.CurrentLine())
	}
	if b.CurrentLineLen() != 5 {
		t.Errorf("current line len = %d", b.CurrentLineLen())
	}

	// SetCursor does not validate.
	b.SetCursor(NewPosition(7, 7))
	if b.CurrentLine() != "" {
		t.Errorf("cursor outside buffer should read empty line, got %q", b.CurrentLine())
	}
}

func TestBufferClone(t *testing.T) {
	b := NewBufferFromString("one\ntwo")
	b.SetCursor(NewPosition(1, 2))

	c := b.Clone()
	c.SetCursor(NewPosition(0, 0))

	if b.Cursor() != NewPosition(1, 2) {
		t.Errorf("clone shares cursor with original: %v", b.Cursor())
	}
	if c.Text() != b.Text() {
		t.Errorf("clone text %q != %q", c.Text(), b.Text())
	}
}

func TestBufferContains(t *testing.T) {
	b := NewBufferFromString("abc\n\nxy")

	tests := []struct {
		pos  Position
		want bool
	}{
		{NewPosition(0, 0), true},
		{NewPosition(0, 2), true},
		{NewPosition(0, 3), false},
		{NewPosition(1, 0), true},
		{NewPosition(1, 1), false},
		{NewPosition(2, 1), true},
		{NewPosition(3, 0), false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestPositionCompare(t *testing.T) {
	a := NewPosition(1, 5)
	b := NewPosition(2, 0)

	if !a.Before(b) || a.After(b) {
		t.Errorf("expected %v before %v", a, b)
	}
	if a.Compare(a) != 0 {
		t.Error("position should compare equal to itself")
	}
	if !NewPosition(0, 0).IsZero() {
		t.Error("origin should be zero")
	}
	if got := NewPosition(0, 3).String(); got != "(0, 3)" {
		t.Errorf("String() = %q", got)
	}
}
