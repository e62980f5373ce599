package session

import (
	"github.com/dshills/vex/internal/engine/buffer"
	"github.com/dshills/vex/internal/learning"
)

// View is a snapshot of everything the front end draws.
type View struct {
	Mode     Mode
	Lessons  []*learning.Lesson
	Feedback string

	// Lesson fields are zero on the menu.
	Lesson    *learning.Lesson
	TaskIndex int
	Task      *learning.Task
	Lines     []string
	Cursor    buffer.Position
	Target    buffer.Position

	// Typed holds the keys entered for the current task. Pending holds
	// the keys of an unfinished sequence.
	Typed   string
	Pending string

	// Hint is the revealed hint, empty when hidden.
	Hint      string
	HintIndex int

	WaitingForNext bool
	Completed      bool
}

// View returns a snapshot of the session state.
func (s *Session) View() View {
	v := View{
		Mode:     s.mode,
		Lessons:  s.catalog.Lessons(),
		Feedback: s.feedback,
	}

	task := s.currentTask()
	if s.mode != ModeLesson || task == nil {
		return v
	}

	v.Lesson = s.lesson
	v.TaskIndex = s.taskIndex
	v.Task = task
	v.Lines = s.buf.Lines()
	v.Cursor = s.buf.Cursor()
	v.Target = task.Target
	v.Typed = string(s.typed)
	v.Pending = s.parser.PendingKeys()
	v.WaitingForNext = s.waiting
	v.Completed = s.completed

	if s.showHint && s.hintIndex < len(task.Hints) {
		v.Hint = task.Hints[s.hintIndex]
		v.HintIndex = s.hintIndex
	}
	return v
}
