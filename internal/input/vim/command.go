package vim

import "strings"

// CommandKind discriminates the variants of Command.
type CommandKind uint8

const (
	// KindNone is the zero value and not a valid command.
	KindNone CommandKind = iota

	// KindMotion wraps a cursor motion.
	KindMotion
)

// Command is the unit produced by the Parser and consumed by the motion
// engine. Commands are comparable; two commands are equal iff their kind
// and wrapped motion are equal.
type Command struct {
	Kind   CommandKind
	Motion Motion
}

// MotionCommand wraps m in a Command.
func MotionCommand(m Motion) Command {
	return Command{Kind: KindMotion, Motion: m}
}

// AsMotion returns the wrapped motion, if the command is a motion.
func (c Command) AsMotion() (Motion, bool) {
	if c.Kind != KindMotion {
		return MotionNone, false
	}
	return c.Motion, true
}

// Keys returns the keystroke label of the command.
func (c Command) Keys() string {
	if m, ok := c.AsMotion(); ok {
		return m.Keys()
	}
	return ""
}

// String returns a representation suitable for logs.
func (c Command) String() string {
	if m, ok := c.AsMotion(); ok {
		return "motion:" + m.String()
	}
	return "none"
}

// Equal reports whether c and other are the same command.
func (c Command) Equal(other Command) bool {
	return c == other
}

// CommandKeys renders a command sequence as the keys that produce it,
// e.g. "wwgg".
func CommandKeys(cmds []Command) string {
	var sb strings.Builder
	for _, c := range cmds {
		sb.WriteString(c.Keys())
	}
	return sb.String()
}
