package key

import (
	"errors"
	"fmt"
	"strings"
)

// Notation errors.
var (
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// ParseNotation parses a key sequence in Vim notation. Plain characters
// stand for themselves; bracketed names such as <Esc>, <Space>, <BS>,
// <lt>, and <C-c> stand for special keys and modified characters.
func ParseNotation(s string) ([]Event, error) {
	var events []Event

	for len(s) > 0 {
		if s[0] != '<' {
			r := []rune(s)[0]
			events = append(events, NewRuneEvent(r, ModNone))
			s = s[len(string(r)):]
			continue
		}

		end := strings.IndexByte(s, '>')
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnmatchedBracket, s)
		}

		ev, err := parseBracketed(s[1:end])
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
		s = s[end+1:]
	}
	return events, nil
}

// parseBracketed parses the inside of a <...> spec like "C-c" or "Esc".
func parseBracketed(inner string) (Event, error) {
	parts := strings.Split(inner, "-")
	name := parts[len(parts)-1]
	if name == "" {
		return Event{}, fmt.Errorf("%w: <%s>", ErrInvalidSpec, inner)
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a", "m":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	switch strings.ToLower(name) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	}
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(name)
	if len(runes) == 1 && mods != ModNone {
		return NewRuneEvent(runes[0], mods), nil
	}
	return Event{}, fmt.Errorf("%w: <%s>", ErrInvalidSpec, inner)
}

// MustParseNotation is like ParseNotation but panics on error.
func MustParseNotation(s string) []Event {
	events, err := ParseNotation(s)
	if err != nil {
		panic("invalid key notation: " + s + ": " + err.Error())
	}
	return events
}
