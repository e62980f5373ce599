// Package key defines the terminal-independent key events the trainer
// consumes.
//
// A key press is either a character (KeyRune with Event.Rune set) or one
// of a small set of special keys. Terminal backends translate their own
// events into Event values so the session logic never depends on a
// particular terminal library.
//
// Key sequences can be written in Vim notation for scripting and tests:
//
//	events, err := key.ParseNotation("gg<Esc><Space>")
package key
