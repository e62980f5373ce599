package learning

import (
	"fmt"

	"github.com/dshills/vex/internal/engine/buffer"
	"github.com/dshills/vex/internal/input/vim"
)

// Verdict classifies a validation outcome.
type Verdict uint8

const (
	// VerdictCorrect means the commands and final cursor both match.
	VerdictCorrect Verdict = iota

	// VerdictIncorrect means the command count or a command differs.
	VerdictIncorrect

	// VerdictWrongPosition means the commands match but the cursor does not.
	VerdictWrongPosition
)

// String returns a string representation of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	case VerdictWrongPosition:
		return "wrongPosition"
	default:
		return "unknown"
	}
}

// Result is the outcome of Validate. Message explains a failure and is
// empty for VerdictCorrect.
type Result struct {
	Verdict Verdict
	Message string
}

// IsCorrect returns true if the submission was accepted.
func (r Result) IsCorrect() bool {
	return r.Verdict == VerdictCorrect
}

// Validate compares the learner's commands and final cursor with the
// expected solution. The command sequence must match exactly; an
// equivalent solution of a different length is not accepted.
func Validate(expected, actual []vim.Command, final, target buffer.Position) Result {
	if len(expected) != len(actual) {
		return Result{
			Verdict: VerdictIncorrect,
			Message: fmt.Sprintf(
				"Wrong number of commands: expected %d, got %d. Try using only the commands taught in this lesson.",
				len(expected), len(actual)),
		}
	}

	for i := range expected {
		if expected[i] != actual[i] {
			return Result{
				Verdict: VerdictIncorrect,
				Message: fmt.Sprintf("Command %d was incorrect: expected '%s', got '%s'.",
					i+1, expected[i].Keys(), actual[i].Keys()),
			}
		}
	}

	if final != target {
		return Result{
			Verdict: VerdictWrongPosition,
			Message: fmt.Sprintf("Commands were correct, but cursor is at position %s. Target is %s.",
				final, target),
		}
	}

	return Result{Verdict: VerdictCorrect}
}
