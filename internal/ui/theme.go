package ui

import (
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the styles used when drawing.
type Theme struct {
	Normal  tcell.Style
	Title   tcell.Style
	Dim     tcell.Style
	Task    tcell.Style
	Cursor  tcell.Style
	Target  tcell.Style
	Success tcell.Style
	Failure tcell.Style
	Notice  tcell.Style
	Hint    tcell.Style
}

var themes = map[string]Theme{
	"dark": {
		Normal:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		Title:   tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack).Bold(true),
		Dim:     tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
		Task:    tcell.StyleDefault.Foreground(tcell.ColorLime).Background(tcell.ColorBlack).Bold(true),
		Cursor:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLime).Bold(true),
		Target:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
		Success: tcell.StyleDefault.Foreground(tcell.ColorLime).Background(tcell.ColorBlack).Bold(true),
		Failure: tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true),
		Notice:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
		Hint:    tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack),
	},
	"light": {
		Normal:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		Title:   tcell.StyleDefault.Foreground(tcell.ColorNavy).Background(tcell.ColorWhite).Bold(true),
		Dim:     tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorWhite),
		Task:    tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorWhite).Bold(true),
		Cursor:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true),
		Target:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOrange),
		Success: tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorWhite).Bold(true),
		Failure: tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(tcell.ColorWhite).Bold(true),
		Notice:  tcell.StyleDefault.Foreground(tcell.ColorOlive).Background(tcell.ColorWhite),
		Hint:    tcell.StyleDefault.Foreground(tcell.ColorTeal).Background(tcell.ColorWhite),
	},
}

// ThemeByName returns the named theme (case-insensitive).
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[strings.ToLower(name)]
	return t, ok
}

// ThemeNames lists the available themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
