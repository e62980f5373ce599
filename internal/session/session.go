package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/vex/internal/engine/buffer"
	"github.com/dshills/vex/internal/engine/motion"
	"github.com/dshills/vex/internal/input/key"
	"github.com/dshills/vex/internal/input/vim"
	"github.com/dshills/vex/internal/learning"
	"github.com/dshills/vex/internal/logging"
)

// Mode is the top-level screen the session is on.
type Mode uint8

const (
	// ModeMenu lists the lessons.
	ModeMenu Mode = iota
	// ModeLesson runs the tasks of one lesson.
	ModeLesson
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeLesson:
		return "lesson"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Session holds the state of one trainer run.
type Session struct {
	id      string
	log     *logging.Logger
	catalog *learning.Catalog

	mode      Mode
	lesson    *learning.Lesson
	taskIndex int

	buf      *buffer.Buffer
	parser   *vim.Parser
	executed []vim.Command
	typed    []rune

	feedback  string
	showHint  bool
	hintIndex int
	waiting   bool
	completed bool
	running   bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// New creates a session on the menu screen.
func New(catalog *learning.Catalog, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		log:     logging.Nop(),
		catalog: catalog,
		buf:     buffer.NewBuffer(),
		parser:  vim.NewParser(),
		running: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithComponent("session").WithField("session", s.id)
	return s
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// Mode returns the current screen.
func (s *Session) Mode() Mode {
	return s.mode
}

// Running reports whether the session still wants input.
func (s *Session) Running() bool {
	return s.running
}

// Quit stops the session.
func (s *Session) Quit() {
	s.running = false
}

// Catalog returns the lessons the session offers.
func (s *Session) Catalog() *learning.Catalog {
	return s.catalog
}

// currentTask returns the active task, or nil on the menu.
func (s *Session) currentTask() *learning.Task {
	if s.lesson == nil {
		return nil
	}
	t, _ := s.lesson.Task(s.taskIndex)
	return t
}

// HandleKey applies one key press.
func (s *Session) HandleKey(ev key.Event) {
	if ev.IsCtrl('c') || ev.IsCtrl('q') {
		s.Quit()
		return
	}

	switch {
	case ev.IsRune() && !ev.IsModified():
		if s.mode == ModeMenu {
			s.handleMenuKey(ev.Rune)
		} else {
			s.handleLessonKey(ev.Rune)
		}
	case ev.Is(key.KeyEscape):
		if s.mode == ModeLesson {
			s.returnToMenu()
		}
	case ev.Is(key.KeyBackspace):
		if s.mode == ModeLesson && s.parser.IsIncomplete() {
			s.parser.Reset()
			s.typed = s.typed[:0]
			s.feedback = msgCancelled
		}
	}
}

func (s *Session) handleMenuKey(r rune) {
	switch {
	case r >= '1' && r <= '9':
		s.StartLesson(int(r - '0'))
	case r == 'q':
		s.Quit()
	}
}

func (s *Session) handleLessonKey(r rune) {
	switch {
	case r == ' ' && s.waiting:
		s.advance()
	case r == '?' && !s.parser.IsIncomplete():
		s.nextHint()
	case r == 'r' && !s.parser.IsIncomplete():
		s.resetTaskState()
		s.feedback = msgTaskReset
	default:
		s.processKey(r)
	}
}

// StartLesson opens the lesson with the given ID. Unknown IDs are
// ignored and reported as false.
func (s *Session) StartLesson(id int) bool {
	l, ok := s.catalog.Lesson(id)
	if !ok {
		return false
	}

	s.lesson = l
	s.taskIndex = 0
	s.mode = ModeLesson
	s.resetTaskState()
	s.feedback = msgLessonStarted
	s.log.Info("lesson %d started", id)
	return true
}

// processKey feeds r to the parser and runs any completed command.
func (s *Session) processKey(r rune) {
	s.typed = append(s.typed, r)

	result := s.parser.Parse(r)
	switch result.Status {
	case vim.StatusComplete:
		if err := motion.Execute(s.buf, result.Command); err != nil {
			s.feedback = fmt.Sprintf("Error: %v", err)
			s.log.Warn("executing %s: %v", result.Command, err)
			return
		}
		s.executed = append(s.executed, result.Command)
		s.checkTask()
	case vim.StatusIncomplete:
		s.feedback = msgIncomplete
	case vim.StatusInvalid:
		s.feedback = "Invalid command: " + result.Message
		s.parser.Reset()
		s.typed = s.typed[:0]
	}
}

// checkTask validates the commands executed so far.
func (s *Session) checkTask() {
	task := s.currentTask()
	if task == nil {
		return
	}

	result := learning.Validate(task.Expected, s.executed, s.buf.Cursor(), task.Target)
	if !result.IsCorrect() {
		s.completed = false
		s.feedback = result.Message
		s.log.Debug("lesson %d task %d: %s", s.lesson.ID, s.taskIndex+1, result.Verdict)
		return
	}

	s.showHint = false
	s.hintIndex = 0
	if s.taskIndex+1 < s.lesson.TaskCount() {
		s.feedback = msgCorrect
		s.waiting = true
	} else {
		s.feedback = msgLessonCompleted
		s.completed = true
	}
	s.log.Info("lesson %d task %d solved with %q", s.lesson.ID, s.taskIndex+1, vim.CommandKeys(s.executed))
}

func (s *Session) advance() {
	s.taskIndex++
	s.resetTaskState()
	s.feedback = msgNextTask
}

// nextHint reveals the first hint, then each following one.
func (s *Session) nextHint() {
	task := s.currentTask()
	if task == nil || len(task.Hints) == 0 {
		s.feedback = msgNoHints
		return
	}

	if !s.showHint {
		s.showHint = true
		s.hintIndex = 0
	} else if s.hintIndex < len(task.Hints)-1 {
		s.hintIndex++
	}
}

func (s *Session) returnToMenu() {
	s.mode = ModeMenu
	s.lesson = nil
	s.taskIndex = 0
	s.resetTaskState()
	s.feedback = ""
}

// resetTaskState restores the active task to its starting buffer.
func (s *Session) resetTaskState() {
	if task := s.currentTask(); task != nil {
		s.buf = task.NewBuffer()
	} else {
		s.buf = buffer.NewBuffer()
	}

	s.executed = s.executed[:0]
	s.typed = s.typed[:0]
	s.parser.Reset()
	s.showHint = false
	s.hintIndex = 0
	s.waiting = false
	s.completed = false
}

// ReplaceCatalog swaps in a reloaded catalog. An active lesson continues
// from a reset task when it still exists with that task; otherwise the
// session returns to the menu.
func (s *Session) ReplaceCatalog(c *learning.Catalog) {
	s.catalog = c
	s.log.Info("catalog replaced with %d lessons", c.Len())

	if s.mode == ModeMenu {
		s.feedback = msgReloaded
		return
	}

	l, ok := c.Lesson(s.lesson.ID)
	if !ok || s.taskIndex >= l.TaskCount() {
		s.returnToMenu()
		s.feedback = msgLessonRemoved
		return
	}

	s.lesson = l
	s.resetTaskState()
	s.feedback = msgReloadedReset
}
