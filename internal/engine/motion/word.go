package motion

import (
	"unicode"

	"github.com/dshills/vex/internal/engine/buffer"
)

// charClass partitions runes for word motions.
type charClass uint8

const (
	classWhitespace charClass = iota
	classWord
	classPunctuation
)

// classify is the single rune classifier shared by all word searches.
func classify(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classWhitespace
	case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_':
		return classWord
	default:
		return classPunctuation
	}
}

// skipWhitespace returns the first index at or after col that is not
// whitespace, or len(line).
func skipWhitespace(line []rune, col int) int {
	for col < len(line) && classify(line[col]) == classWhitespace {
		col++
	}
	return col
}

// tokenStart walks back from col to the first rune of its token.
func tokenStart(line []rune, col int) int {
	cls := classify(line[col])
	for col > 0 && classify(line[col-1]) == cls {
		col--
	}
	return col
}

// tokenEnd walks forward from col to the last rune of its token.
func tokenEnd(line []rune, col int) int {
	cls := classify(line[col])
	for col+1 < len(line) && classify(line[col+1]) == cls {
		col++
	}
	return col
}

// endOfBuffer is where forward searches stop when no token remains.
func endOfBuffer(buf *buffer.Buffer) buffer.Position {
	last := buf.LastLine()
	return buffer.NewPosition(last, lastColumn(buf.LineLen(last)))
}

// findNextWordStart finds the start of the next token (w).
func findNextWordStart(buf *buffer.Buffer, cur buffer.Position) buffer.Position {
	line := buf.LineRunes(cur.Line)
	col := int(cur.Column)

	if col >= len(line) {
		return nextLineFirstToken(buf, cur.Line)
	}

	// Skip the rest of the current token, if any, then whitespace.
	if cls := classify(line[col]); cls != classWhitespace {
		for col < len(line) && classify(line[col]) == cls {
			col++
		}
	}
	col = skipWhitespace(line, col)

	if col >= len(line) {
		return nextLineFirstToken(buf, cur.Line)
	}
	return buffer.NewPosition(cur.Line, uint32(col))
}

// nextLineFirstToken returns the first non-whitespace rune on any line
// after from.
func nextLineFirstToken(buf *buffer.Buffer, from uint32) buffer.Position {
	for l := from + 1; l < buf.LineCount(); l++ {
		line := buf.LineRunes(l)
		if col := skipWhitespace(line, 0); col < len(line) {
			return buffer.NewPosition(l, uint32(col))
		}
	}
	return endOfBuffer(buf)
}

// findPrevWordStart finds the start of the current or previous token (b).
func findPrevWordStart(buf *buffer.Buffer, cur buffer.Position) buffer.Position {
	line := buf.LineRunes(cur.Line)
	col := min(int(cur.Column), len(line))

	if col == 0 {
		return prevLineLastToken(buf, cur.Line)
	}

	col--
	for col > 0 && classify(line[col]) == classWhitespace {
		col--
	}
	if col == 0 && classify(line[0]) == classWhitespace {
		return prevLineLastToken(buf, cur.Line)
	}

	return buffer.NewPosition(cur.Line, uint32(tokenStart(line, col)))
}

// prevLineLastToken returns the start of the last token on the nearest
// line above from that has one.
func prevLineLastToken(buf *buffer.Buffer, from uint32) buffer.Position {
	for l := int(from) - 1; l >= 0; l-- {
		line := buf.LineRunes(uint32(l))
		col := len(line) - 1
		for col >= 0 && classify(line[col]) == classWhitespace {
			col--
		}
		if col >= 0 {
			return buffer.NewPosition(uint32(l), uint32(tokenStart(line, col)))
		}
	}
	return buffer.NewPosition(0, 0)
}

// findWordEnd finds the end of the current or next token (e).
func findWordEnd(buf *buffer.Buffer, cur buffer.Position) buffer.Position {
	line := buf.LineRunes(cur.Line)
	col := int(cur.Column)

	if col >= len(line) {
		return nextLineTokenEnd(buf, cur.Line)
	}

	col = skipWhitespace(line, col+1)
	if col >= len(line) {
		return nextLineTokenEnd(buf, cur.Line)
	}
	return buffer.NewPosition(cur.Line, uint32(tokenEnd(line, col)))
}

// nextLineTokenEnd returns the end of the first token on any line after
// from.
func nextLineTokenEnd(buf *buffer.Buffer, from uint32) buffer.Position {
	for l := from + 1; l < buf.LineCount(); l++ {
		line := buf.LineRunes(l)
		if col := skipWhitespace(line, 0); col < len(line) {
			return buffer.NewPosition(l, uint32(tokenEnd(line, col)))
		}
	}
	return endOfBuffer(buf)
}
