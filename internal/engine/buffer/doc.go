// Package buffer provides the line-structured text buffer and cursor model
// used by the motion engine.
//
// A Buffer is read/navigate-only: it owns an ordered list of lines and a
// single cursor Position. Text is fixed at construction; only the cursor
// moves. The buffer always holds at least one line, so an empty input is
// represented as a single empty line.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("one\ntwo three")
//	buf.SetCursor(buffer.NewPosition(1, 4))
//	line := buf.CurrentLine()      // "two three"
//	n := buf.CurrentLineLen()      // 9
//
// Columns:
//
// Columns are measured in runes (Unicode code points), never bytes. Every
// consumer that indexes into a line, including the word searches in the
// motion package, uses the same unit, so forward and backward scans agree.
//
// Ownership:
//
// A Buffer is not safe for concurrent use. It is owned by a single exercise
// session, created fresh from a task's initial text, and discarded when the
// task resets. SetCursor performs no validation; keeping the cursor inside
// the text is the motion engine's responsibility.
package buffer
