package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cellWidth is the number of screen columns r occupies. Control and
// zero-width runes are drawn as a single blank cell.
func cellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// printable maps runes without a glyph to a blank.
func printable(r rune) rune {
	if runewidth.RuneWidth(r) == 0 {
		return ' '
	}
	return r
}

// drawText draws text from (x, y), clipped at the right edge, and
// returns the column after the last drawn cell.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	width, _ := s.Size()
	for _, r := range text {
		w := cellWidth(r)
		if x+w > width {
			break
		}
		s.SetContent(x, y, printable(r), nil, style)
		x += w
	}
	return x
}

// fillRow paints the rest of row y from x with style.
func fillRow(s tcell.Screen, x, y int, style tcell.Style) {
	width, _ := s.Size()
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// screenColumn returns the screen offset of rune column col in line.
func screenColumn(line []rune, col int) int {
	x := 0
	for i := 0; i < col && i < len(line); i++ {
		x += cellWidth(line[i])
	}
	return x
}
