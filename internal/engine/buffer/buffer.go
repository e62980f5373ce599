package buffer

import "strings"

// Buffer holds immutable line-structured text and a cursor.
type Buffer struct {
	lines  [][]rune
	cursor Position
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewBufferFromString creates a buffer by splitting text into lines.
//
// Lines are separated by "\n"; a trailing "\r" on a line is dropped and a
// single trailing newline does not produce an extra empty line. Text with
// no lines at all yields one empty line.
func NewBufferFromString(text string) *Buffer {
	return NewBufferFromLines(splitLines(text))
}

// NewBufferFromLines creates a buffer from an explicit list of lines.
// An empty list yields one empty line. The cursor starts at (0, 0).
func NewBufferFromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return NewBuffer()
	}

	b := &Buffer{lines: make([][]rune, len(lines))}
	for i, line := range lines {
		b.lines[i] = []rune(line)
	}
	return b
}

// splitLines splits text on newlines the way a line iterator would.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// SetCursor moves the cursor without validation.
func (b *Buffer) SetCursor(p Position) {
	b.cursor = p
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() uint32 {
	return uint32(len(b.lines))
}

// LastLine returns the index of the last line.
func (b *Buffer) LastLine() uint32 {
	return uint32(len(b.lines) - 1)
}

// Line returns the text of the line at index, or false if out of range.
func (b *Buffer) Line(index uint32) (string, bool) {
	if int(index) >= len(b.lines) {
		return "", false
	}
	return string(b.lines[index]), true
}

// LineRunes returns a copy of the runes of the line at index.
// Out-of-range indexes return nil.
func (b *Buffer) LineRunes(index uint32) []rune {
	if int(index) >= len(b.lines) {
		return nil
	}
	out := make([]rune, len(b.lines[index]))
	copy(out, b.lines[index])
	return out
}

// LineLen returns the length in runes of the line at index.
// Out-of-range indexes have length 0.
func (b *Buffer) LineLen(index uint32) uint32 {
	if int(index) >= len(b.lines) {
		return 0
	}
	return uint32(len(b.lines[index]))
}

// CurrentLine returns the text of the line under the cursor.
// A cursor line outside the buffer yields an empty string.
func (b *Buffer) CurrentLine() string {
	line, _ := b.Line(b.cursor.Line)
	return line
}

// CurrentLineLen returns the rune length of the line under the cursor.
func (b *Buffer) CurrentLineLen() uint32 {
	return b.LineLen(b.cursor.Line)
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

// Text returns the buffer contents joined with "\n".
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// Clone returns an independent copy with the same text and cursor.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		lines:  make([][]rune, len(b.lines)),
		cursor: b.cursor,
	}
	for i, line := range b.lines {
		c.lines[i] = append([]rune(nil), line...)
	}
	return c
}

// Contains reports whether p addresses a valid resting place for the
// cursor: an existing line and either column 0 on an empty line or a
// column on an existing rune.
func (b *Buffer) Contains(p Position) bool {
	if p.Line >= b.LineCount() {
		return false
	}
	n := b.LineLen(p.Line)
	if n == 0 {
		return p.Column == 0
	}
	return p.Column < n
}
