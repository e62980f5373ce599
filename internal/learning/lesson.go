package learning

import (
	"github.com/dshills/vex/internal/engine/buffer"
	"github.com/dshills/vex/internal/input/vim"
)

// Lesson is a titled group of tasks that teaches a set of commands.
type Lesson struct {
	ID          int
	Title       string
	Explanation []string
	Commands    []vim.Command
	Tasks       []Task
}

// Task is a single exercise: move the cursor from Start to Target in
// Text using exactly the Expected commands.
type Task struct {
	Description string
	Text        string
	Start       buffer.Position
	Target      buffer.Position
	Expected    []vim.Command
	Hints       []string
}

// NewBuffer returns a fresh buffer holding the task text with the cursor
// at the start position.
func (t *Task) NewBuffer() *buffer.Buffer {
	b := buffer.NewBufferFromString(t.Text)
	b.SetCursor(t.Start)
	return b
}

// Answer returns the expected commands as keys, e.g. "Gkww".
func (t *Task) Answer() string {
	return vim.CommandKeys(t.Expected)
}

// Task returns the task at index i.
func (l *Lesson) Task(i int) (*Task, bool) {
	if i < 0 || i >= len(l.Tasks) {
		return nil, false
	}
	return &l.Tasks[i], true
}

// TaskCount returns the number of tasks in the lesson.
func (l *Lesson) TaskCount() int {
	return len(l.Tasks)
}
