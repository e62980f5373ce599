package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vex/internal/engine/buffer"
	"github.com/dshills/vex/internal/session"
)

const (
	appTitle   = "VEX - Vim Trainer"
	menuFooter = "[1-9] Select Lesson  |  [q] Quit"
	taskFooter = "[r] Reset Task  |  [?] Hint  |  [ESC] Menu  |  [Ctrl+Q] Quit"
)

// Renderer draws session views onto a screen.
type Renderer struct {
	screen      tcell.Screen
	theme       Theme
	showPending bool
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen, theme Theme, showPending bool) *Renderer {
	return &Renderer{screen: screen, theme: theme, showPending: showPending}
}

// Draw replaces the screen contents with v.
func (r *Renderer) Draw(v session.View) {
	s := r.screen
	s.SetStyle(r.theme.Normal)
	s.Clear()
	s.HideCursor()

	_, height := s.Size()
	y := r.drawHeader(v)

	if v.Mode == session.ModeLesson && v.Lesson != nil {
		r.drawLesson(v, y)
	} else {
		r.drawMenu(v, y)
	}

	footer := menuFooter
	if v.Mode == session.ModeLesson {
		footer = taskFooter
	}
	if height > 0 {
		x := drawText(s, 0, height-1, footer, r.theme.Dim)
		fillRow(s, x, height-1, r.theme.Dim)
	}

	s.Show()
}

func (r *Renderer) drawHeader(v session.View) int {
	header := appTitle
	if v.Mode == session.ModeLesson && v.Lesson != nil {
		header = fmt.Sprintf("%s  |  Lesson %d: %s", appTitle, v.Lesson.ID, v.Lesson.Title)
	}
	drawText(r.screen, 0, 0, header, r.theme.Title)

	width, _ := r.screen.Size()
	drawText(r.screen, 0, 1, strings.Repeat("─", width), r.theme.Dim)
	return 3
}

func (r *Renderer) drawMenu(v session.View, y int) int {
	s := r.screen
	drawText(s, 0, y, "Welcome to VEX - Vim Movement Trainer", r.theme.Title)
	y += 2
	drawText(s, 0, y, "Select a lesson to begin:", r.theme.Normal)
	y += 2

	for _, l := range v.Lessons {
		drawText(s, 2, y, fmt.Sprintf("%d. %s", l.ID, l.Title), r.theme.Normal)
		y++
	}
	y++
	drawText(s, 0, y, "Press a lesson number to start, or 'q' to quit.", r.theme.Normal)
	y += 2

	if v.Feedback != "" {
		drawText(s, 0, y, v.Feedback, r.theme.Notice)
		y++
	}
	return y
}

func (r *Renderer) drawLesson(v session.View, y int) int {
	s := r.screen

	for _, line := range v.Lesson.Explanation {
		drawText(s, 0, y, line, r.theme.Normal)
		y++
	}
	y++

	desc := fmt.Sprintf("Task %d/%d: %s", v.TaskIndex+1, v.Lesson.TaskCount(), v.Task.Description)
	drawText(s, 0, y, desc, r.theme.Task)
	y += 2

	y = r.drawBuffer(v, y)
	y++

	if r.showPending {
		x := drawText(s, 0, y, "Input: ", r.theme.Dim)
		drawText(s, x, y, v.Typed, r.theme.Normal)
		y += 2
	}

	if v.Feedback != "" {
		drawText(s, 0, y, v.Feedback, r.feedbackStyle(v))
		y++
	}
	if v.Hint != "" {
		y++
		drawText(s, 0, y, "Hint: "+v.Hint, r.theme.Hint)
		y++
	}
	return y
}

// drawBuffer draws the task text with the cursor and target cells
// highlighted. Multi-line text gets a line number gutter.
func (r *Renderer) drawBuffer(v session.View, y int) int {
	s := r.screen
	gutter := len(v.Lines) > 1

	for i, text := range v.Lines {
		x := 0
		if gutter {
			x = drawText(s, 0, y, fmt.Sprintf("%2d │ ", i+1), r.theme.Dim)
		}

		line := []rune(text)
		for col, ch := range line {
			s.SetContent(x+screenColumn(line, col), y, printable(ch), nil, r.cellStyle(v, i, col))
		}

		// The cursor or target may sit on an empty line.
		if len(line) == 0 {
			if style, marked := r.markerStyle(v, i, 0); marked {
				s.SetContent(x, y, ' ', nil, style)
			}
		}
		y++
	}
	return y
}

func (r *Renderer) cellStyle(v session.View, line, col int) tcell.Style {
	if style, marked := r.markerStyle(v, line, col); marked {
		return style
	}
	return r.theme.Normal
}

// markerStyle reports the highlight for a cursor or target cell.
func (r *Renderer) markerStyle(v session.View, line, col int) (tcell.Style, bool) {
	p := buffer.NewPosition(uint32(line), uint32(col))
	switch p {
	case v.Cursor:
		return r.theme.Cursor, true
	case v.Target:
		return r.theme.Target, true
	}
	return tcell.Style{}, false
}

func (r *Renderer) feedbackStyle(v session.View) tcell.Style {
	if v.WaitingForNext || v.Completed {
		return r.theme.Success
	}

	f := v.Feedback
	switch {
	case strings.HasPrefix(f, "Invalid command"),
		strings.HasPrefix(f, "Error:"),
		strings.HasPrefix(f, "Wrong number"),
		strings.Contains(f, "was incorrect"),
		strings.Contains(f, "but cursor is at"):
		return r.theme.Failure
	}
	return r.theme.Notice
}
