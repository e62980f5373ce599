// Package vim provides Vim-style keystroke parsing for cursor motions.
//
// The package defines the closed set of motions the trainer teaches, the
// Command value that wraps them, and a Parser that turns a stream of
// keystrokes into commands one key at a time.
//
// # Motions
//
//	h j k l    step left, down, up, right
//	w b e      word forward, word backward, word end
//	0 $        line start, line end
//	gg G       document start, document end
//
// # Parser States
//
// The parser is a two-state machine driven by a transition table:
//
//  1. Initial: every single-key motion completes immediately; 'g' moves to
//     AwaitingSecondG; anything else is invalid.
//  2. AwaitingSecondG: 'g' completes gg; anything else is invalid.
//
// Every invalid key returns the parser to Initial, so it can never get
// stuck. Reset discards a pending prefix explicitly.
//
// # Usage
//
//	parser := vim.NewParser()
//	result := parser.Parse(r)
//	switch result.Status {
//	case vim.StatusComplete:
//	    // Execute result.Command
//	case vim.StatusIncomplete:
//	    // Wait for more input
//	case vim.StatusInvalid:
//	    // Show result.Message; the parser has already reset
//	}
package vim
