package motion

import (
	"errors"
	"fmt"

	"github.com/dshills/vex/internal/input/vim"
)

// Errors returned by motion operations.
var (
	// ErrNilBuffer indicates a motion was applied without a buffer.
	ErrNilBuffer = errors.New("nil buffer")

	// ErrCursorOutOfRange indicates the cursor line lies outside the buffer.
	ErrCursorOutOfRange = errors.New("cursor line out of range")

	// ErrUnknownCommand indicates a command that is not a valid motion.
	ErrUnknownCommand = errors.New("unknown command")
)

// Error records a failed motion and the reason.
type Error struct {
	Motion vim.Motion
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("motion %s: %v", e.Motion, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
