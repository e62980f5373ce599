package motion

import (
	"github.com/dshills/vex/internal/engine/buffer"
	"github.com/dshills/vex/internal/input/vim"
)

// Execute applies cmd to buf, moving the cursor on success.
// On error the cursor is left unchanged.
func Execute(buf *buffer.Buffer, cmd vim.Command) error {
	m, ok := cmd.AsMotion()
	if !ok {
		return &Error{Motion: vim.MotionNone, Err: ErrUnknownCommand}
	}

	pos, err := Resolve(buf, m)
	if err != nil {
		return err
	}

	buf.SetCursor(pos)
	return nil
}

// Resolve returns the position m would move the cursor of buf to.
func Resolve(buf *buffer.Buffer, m vim.Motion) (buffer.Position, error) {
	if buf == nil {
		return buffer.Position{}, &Error{Motion: m, Err: ErrNilBuffer}
	}
	cur := buf.Cursor()
	if cur.Line >= buf.LineCount() {
		return cur, &Error{Motion: m, Err: ErrCursorOutOfRange}
	}

	switch m {
	// Character motions
	case vim.MotionLeft:
		return moveLeft(cur), nil
	case vim.MotionRight:
		return moveRight(buf, cur), nil
	case vim.MotionUp:
		return moveUp(buf, cur), nil
	case vim.MotionDown:
		return moveDown(buf, cur), nil

	// Word motions
	case vim.MotionWordForward:
		return findNextWordStart(buf, cur), nil
	case vim.MotionWordBackward:
		return findPrevWordStart(buf, cur), nil
	case vim.MotionWordEnd:
		return findWordEnd(buf, cur), nil

	// Line motions
	case vim.MotionLineStart:
		return buffer.NewPosition(cur.Line, 0), nil
	case vim.MotionLineEnd:
		return buffer.NewPosition(cur.Line, lastColumn(buf.LineLen(cur.Line))), nil

	// Document motions
	case vim.MotionDocumentStart:
		return buffer.NewPosition(0, 0), nil
	case vim.MotionDocumentEnd:
		return buffer.NewPosition(buf.LastLine(), 0), nil

	default:
		return cur, &Error{Motion: m, Err: ErrUnknownCommand}
	}
}

// lastColumn returns the last valid cursor column on a line of length n.
func lastColumn(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return n - 1
}

// moveLeft steps one column left without wrapping to the previous line.
func moveLeft(cur buffer.Position) buffer.Position {
	if cur.Column > 0 {
		cur.Column--
	}
	return cur
}

// moveRight steps one column right without wrapping to the next line.
func moveRight(buf *buffer.Buffer, cur buffer.Position) buffer.Position {
	n := buf.LineLen(cur.Line)
	if n > 0 && cur.Column < n-1 {
		cur.Column++
	}
	return cur
}

// moveUp moves to the previous line, clamping the column to its length.
func moveUp(buf *buffer.Buffer, cur buffer.Position) buffer.Position {
	if cur.Line == 0 {
		return cur
	}
	return clampToLine(buf, cur.Line-1, cur.Column)
}

// moveDown moves to the next line, clamping the column to its length.
func moveDown(buf *buffer.Buffer, cur buffer.Position) buffer.Position {
	if cur.Line+1 >= buf.LineCount() {
		return cur
	}
	return clampToLine(buf, cur.Line+1, cur.Column)
}

func clampToLine(buf *buffer.Buffer, line, column uint32) buffer.Position {
	return buffer.NewPosition(line, min(column, lastColumn(buf.LineLen(line))))
}
