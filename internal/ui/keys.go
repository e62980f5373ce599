package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vex/internal/input/key"
)

// convertKey translates a tcell key press. Keys the trainer has no use
// for report false.
func convertKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), true
	case k == tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, without(mods, key.ModCtrl)), true
	case k == tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, without(mods, key.ModCtrl)), true
	case k == tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, without(mods, key.ModCtrl)), true
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, without(mods, key.ModCtrl)), true
	case k == tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case k == tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case k == tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case k == tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

// without clears mod from m. Terminals report Ctrl on keys such as
// Escape that share a control code.
func without(m, mod key.Modifier) key.Modifier {
	return m &^ mod
}

func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	return result
}
