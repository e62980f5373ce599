package vim

import (
	"errors"
	"fmt"
)

// Errors returned by ParseSequence.
var (
	// ErrInvalidSequence indicates a key that no transition accepts.
	ErrInvalidSequence = errors.New("invalid key sequence")

	// ErrIncompleteSequence indicates input ended inside a multi-key motion.
	ErrIncompleteSequence = errors.New("incomplete key sequence")
)

// ParseStatus indicates the result of parsing a keystroke.
type ParseStatus uint8

const (
	// StatusIncomplete indicates more input is needed.
	StatusIncomplete ParseStatus = iota

	// StatusComplete indicates a complete command was parsed.
	StatusComplete

	// StatusInvalid indicates the sequence is invalid.
	StatusInvalid
)

// String returns a string representation of the status.
func (s ParseStatus) String() string {
	switch s {
	case StatusIncomplete:
		return "incomplete"
	case StatusComplete:
		return "complete"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ParseState represents the current state of the parser.
type ParseState uint8

const (
	// StateInitial is waiting for initial input.
	StateInitial ParseState = iota

	// StateAwaitingSecondG has received 'g', waiting for the second 'g'.
	StateAwaitingSecondG
)

// String returns a string representation of the state.
func (s ParseState) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateAwaitingSecondG:
		return "awaitingSecondG"
	default:
		return "unknown"
	}
}

// ParseResult contains the result of parsing a keystroke.
type ParseResult struct {
	// Status indicates the parse result.
	Status ParseStatus

	// Command is the parsed command (if Status == StatusComplete).
	Command Command

	// Message explains the rejection (if Status == StatusInvalid).
	Message string

	// PendingDisplay is a string showing pending keys (for status line).
	PendingDisplay string
}

// transition is one edge of the parser state machine. A transition with
// MotionNone leaves a prefix pending in state next.
type transition struct {
	next   ParseState
	motion Motion
}

// transitions maps each state and key to its edge. Keys absent from a
// state's table are invalid in that state.
var transitions = map[ParseState]map[rune]transition{
	StateInitial: {
		'h': {StateInitial, MotionLeft},
		'j': {StateInitial, MotionDown},
		'k': {StateInitial, MotionUp},
		'l': {StateInitial, MotionRight},
		'w': {StateInitial, MotionWordForward},
		'b': {StateInitial, MotionWordBackward},
		'e': {StateInitial, MotionWordEnd},
		'0': {StateInitial, MotionLineStart},
		'$': {StateInitial, MotionLineEnd},
		'G': {StateInitial, MotionDocumentEnd},
		'g': {StateAwaitingSecondG, MotionNone},
	},
	StateAwaitingSecondG: {
		'g': {StateInitial, MotionDocumentStart},
	},
}

// Parser parses Vim-style keystrokes into commands.
type Parser struct {
	// Current parser state
	state ParseState

	// Key accumulator for display
	pendingKeys []rune
}

// NewParser creates a new parser in the initial state.
func NewParser() *Parser {
	return &Parser{
		state:       StateInitial,
		pendingKeys: make([]rune, 0, 2),
	}
}

// Reset discards any pending prefix and returns to the initial state.
func (p *Parser) Reset() {
	p.state = StateInitial
	p.pendingKeys = p.pendingKeys[:0]
}

// State returns the current parser state.
func (p *Parser) State() ParseState {
	return p.state
}

// IsIncomplete returns true if a multi-key prefix is pending.
func (p *Parser) IsIncomplete() bool {
	return p.state != StateInitial
}

// PendingKeys returns the pending key display string.
func (p *Parser) PendingKeys() string {
	return string(p.pendingKeys)
}

// Parse processes one keystroke and returns the result.
func (p *Parser) Parse(r rune) ParseResult {
	edge, ok := transitions[p.state][r]
	if !ok {
		msg := p.rejection(r)
		p.Reset()
		return ParseResult{Status: StatusInvalid, Message: msg}
	}

	if edge.motion == MotionNone {
		p.state = edge.next
		p.pendingKeys = append(p.pendingKeys, r)
		return ParseResult{
			Status:         StatusIncomplete,
			PendingDisplay: p.PendingKeys(),
		}
	}

	p.Reset()
	return ParseResult{
		Status:  StatusComplete,
		Command: MotionCommand(edge.motion),
	}
}

// rejection describes why r is not accepted in the current state.
func (p *Parser) rejection(r rune) string {
	switch p.state {
	case StateAwaitingSecondG:
		return fmt.Sprintf("expected 'g' after 'g', got '%c'", r)
	default:
		return fmt.Sprintf("unknown key: '%c'", r)
	}
}

// ParseSequence parses a complete key string, such as "wwgg", into
// commands using a fresh parser.
func ParseSequence(keys string) ([]Command, error) {
	p := NewParser()
	var cmds []Command

	for i, r := range keys {
		result := p.Parse(r)
		switch result.Status {
		case StatusComplete:
			cmds = append(cmds, result.Command)
		case StatusInvalid:
			return nil, fmt.Errorf("%w at offset %d in %q: %s", ErrInvalidSequence, i, keys, result.Message)
		}
	}

	if p.IsIncomplete() {
		return nil, fmt.Errorf("%w: %q ends with %q", ErrIncompleteSequence, keys, p.PendingKeys())
	}
	return cmds, nil
}
