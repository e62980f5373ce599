package session

import (
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/vex/internal/engine/buffer"
	"github.com/dshills/vex/internal/input/key"
	"github.com/dshills/vex/internal/input/vim"
	"github.com/dshills/vex/internal/learning"
)

func mustKeys(t *testing.T, keys string) []vim.Command {
	t.Helper()
	cmds, err := vim.ParseSequence(keys)
	if err != nil {
		t.Fatalf("ParseSequence(%q): %v", keys, err)
	}
	return cmds
}

// testCatalog returns lesson 1 with two tasks and lesson 3 with one.
func testCatalog(t *testing.T) *learning.Catalog {
	t.Helper()

	one := &learning.Lesson{
		ID:       1,
		Title:    "Basics",
		Commands: mustKeys(t, "lG"),
		Tasks: []learning.Task{
			{
				Description: "Move right",
				Text:        "abc def\nghi",
				Target:      buffer.NewPosition(0, 1),
				Expected:    mustKeys(t, "l"),
				Hints:       []string{"first", "second"},
			},
			{
				Description: "Go to the end",
				Text:        "abc def\nghi",
				Target:      buffer.NewPosition(1, 0),
				Expected:    mustKeys(t, "G"),
			},
		},
	}
	three := &learning.Lesson{
		ID:    3,
		Title: "Words",
		Tasks: []learning.Task{{
			Text:     "one two",
			Target:   buffer.NewPosition(0, 4),
			Expected: mustKeys(t, "w"),
		}},
	}

	c, err := learning.NewCatalog(one, three)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

// feed sends keys written in Vim notation to the session.
func feed(s *Session, notation string) {
	for _, ev := range key.MustParseNotation(notation) {
		s.HandleKey(ev)
	}
}

func TestNewSession(t *testing.T) {
	s := New(testCatalog(t))

	if s.Mode() != ModeMenu {
		t.Errorf("new session mode = %v, want menu", s.Mode())
	}
	if !s.Running() {
		t.Error("new session should be running")
	}
	if _, err := uuid.Parse(s.ID()); err != nil {
		t.Errorf("session id %q is not a uuid: %v", s.ID(), err)
	}

	v := s.View()
	if len(v.Lessons) != 2 || v.Lesson != nil {
		t.Errorf("unexpected menu view %+v", v)
	}
}

func TestMenuKeys(t *testing.T) {
	tests := []struct {
		name     string
		keys     string
		wantMode Mode
		running  bool
	}{
		{"missing lesson", "7", ModeMenu, true},
		{"non digit", "x", ModeMenu, true},
		{"start lesson", "3", ModeLesson, true},
		{"quit", "q", ModeMenu, false},
		{"ctrl-c", "<C-c>", ModeMenu, false},
		{"escape ignored", "<Esc>", ModeMenu, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testCatalog(t))
			feed(s, tt.keys)

			if s.Mode() != tt.wantMode {
				t.Errorf("mode = %v, want %v", s.Mode(), tt.wantMode)
			}
			if s.Running() != tt.running {
				t.Errorf("running = %v, want %v", s.Running(), tt.running)
			}
		})
	}
}

func TestStartLesson(t *testing.T) {
	s := New(testCatalog(t))
	feed(s, "1")

	v := s.View()
	if v.Feedback != msgLessonStarted {
		t.Errorf("feedback = %q", v.Feedback)
	}
	if v.Lesson == nil || v.Lesson.ID != 1 || v.TaskIndex != 0 {
		t.Fatalf("unexpected lesson view %+v", v)
	}
	if v.Cursor != buffer.NewPosition(0, 0) || v.Target != buffer.NewPosition(0, 1) {
		t.Errorf("cursor %v target %v", v.Cursor, v.Target)
	}
	if len(v.Lines) != 2 || v.Lines[1] != "ghi" {
		t.Errorf("lines = %q", v.Lines)
	}
	if s.StartLesson(9) {
		t.Error("StartLesson(9) should fail")
	}
}

func TestCompleteLesson(t *testing.T) {
	s := New(testCatalog(t))
	feed(s, "1l")

	v := s.View()
	if v.Feedback != msgCorrect || !v.WaitingForNext {
		t.Fatalf("after l: feedback %q waiting %v", v.Feedback, v.WaitingForNext)
	}
	if v.Typed != "l" {
		t.Errorf("typed = %q", v.Typed)
	}

	feed(s, "<Space>")
	v = s.View()
	if v.TaskIndex != 1 || v.Feedback != msgNextTask || v.WaitingForNext {
		t.Fatalf("after space: %+v", v)
	}
	if v.Cursor != buffer.NewPosition(0, 0) || v.Typed != "" {
		t.Errorf("task state not reset: cursor %v typed %q", v.Cursor, v.Typed)
	}

	feed(s, "G")
	v = s.View()
	if v.Feedback != msgLessonCompleted || !v.Completed || v.WaitingForNext {
		t.Errorf("after G: %+v", v)
	}

	feed(s, "<Esc>")
	v = s.View()
	if v.Mode != ModeMenu || v.Lesson != nil || v.Feedback != "" {
		t.Errorf("escape should return to menu: %+v", v)
	}
}

func TestValidationFeedback(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{"wrong command", "h", "Command 1 was incorrect: expected 'l', got 'h'."},
		{"too many", "ll", "Wrong number of commands: expected 1, got 2. Try using only the commands taught in this lesson."},
		{"space before solved", "<Space>", "Invalid command: unknown key: ' '"},
		{"unknown key", "x", "Invalid command: unknown key: 'x'"},
		{"bad second key", "gx", "Invalid command: expected 'g' after 'g', got 'x'"},
		{"hint key inside sequence", "g?", "Invalid command: expected 'g' after 'g', got '?'"},
		{"pending", "g", msgIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testCatalog(t))
			feed(s, "1"+tt.keys)

			if got := s.View().Feedback; got != tt.want {
				t.Errorf("feedback = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPendingAndCancel(t *testing.T) {
	s := New(testCatalog(t))
	feed(s, "1lg")

	v := s.View()
	if v.Pending != "g" || v.Typed != "lg" {
		t.Fatalf("pending %q typed %q", v.Pending, v.Typed)
	}

	feed(s, "<BS>")
	v = s.View()
	if v.Feedback != msgCancelled || v.Pending != "" || v.Typed != "" {
		t.Errorf("after backspace: %+v", v)
	}

	feed(s, "<BS>")
	if s.View().Feedback != msgCancelled {
		t.Error("backspace without a pending sequence should do nothing")
	}

	feed(s, "gx")
	v = s.View()
	if v.Pending != "" || v.Typed != "" {
		t.Errorf("invalid sequence should clear input: pending %q typed %q", v.Pending, v.Typed)
	}
}

func TestHints(t *testing.T) {
	s := New(testCatalog(t))
	feed(s, "1")

	if s.View().Hint != "" {
		t.Fatal("hint should start hidden")
	}

	want := []string{"first", "second", "second"}
	for i, w := range want {
		feed(s, "?")
		if got := s.View().Hint; got != w {
			t.Errorf("hint after %d presses = %q, want %q", i+1, got, w)
		}
	}

	feed(s, "l")
	if s.View().Hint != "" {
		t.Error("solving the task should hide the hint")
	}

	feed(s, "<Space>?")
	if got := s.View().Feedback; got != msgNoHints {
		t.Errorf("feedback = %q, want %q", got, msgNoHints)
	}
}

func TestResetTask(t *testing.T) {
	s := New(testCatalog(t))
	feed(s, "1hj?r")

	v := s.View()
	if v.Feedback != msgTaskReset {
		t.Errorf("feedback = %q", v.Feedback)
	}
	if v.Cursor != buffer.NewPosition(0, 0) || v.Typed != "" || v.Hint != "" {
		t.Errorf("task not reset: %+v", v)
	}

	// A fresh attempt is validated from scratch.
	feed(s, "l")
	if s.View().Feedback != msgCorrect {
		t.Errorf("feedback after reset = %q", s.View().Feedback)
	}
}

func TestCtrlQuitInLesson(t *testing.T) {
	s := New(testCatalog(t))
	feed(s, "1<C-q>")

	if s.Running() {
		t.Error("Ctrl-Q should stop the session")
	}
}

func TestReplaceCatalog(t *testing.T) {
	t.Run("menu", func(t *testing.T) {
		s := New(testCatalog(t))
		s.ReplaceCatalog(testCatalog(t))
		if s.View().Feedback != msgReloaded {
			t.Errorf("feedback = %q", s.View().Feedback)
		}
	})

	t.Run("lesson kept", func(t *testing.T) {
		s := New(testCatalog(t))
		feed(s, "1l<Space>j")

		s.ReplaceCatalog(testCatalog(t))
		v := s.View()
		if v.Mode != ModeLesson || v.TaskIndex != 1 || v.Feedback != msgReloadedReset {
			t.Errorf("unexpected view %+v", v)
		}
		if v.Cursor != buffer.NewPosition(0, 0) {
			t.Errorf("task should be reset, cursor %v", v.Cursor)
		}
	})

	t.Run("lesson removed", func(t *testing.T) {
		s := New(testCatalog(t))
		feed(s, "1")

		other, err := learning.NewCatalog(&learning.Lesson{ID: 2, Title: "Other"})
		if err != nil {
			t.Fatal(err)
		}
		s.ReplaceCatalog(other)

		v := s.View()
		if v.Mode != ModeMenu || v.Feedback != msgLessonRemoved {
			t.Errorf("unexpected view %+v", v)
		}
		if len(v.Lessons) != 1 {
			t.Errorf("menu should list the new catalog, got %d lessons", len(v.Lessons))
		}
	})

	t.Run("task removed", func(t *testing.T) {
		s := New(testCatalog(t))
		feed(s, "1l<Space>")

		short, err := learning.NewCatalog(&learning.Lesson{
			ID:    1,
			Title: "Short",
			Tasks: []learning.Task{{Text: "x", Expected: mustKeys(t, "0")}},
		})
		if err != nil {
			t.Fatal(err)
		}
		s.ReplaceCatalog(short)

		if s.Mode() != ModeMenu {
			t.Errorf("mode = %v, want menu", s.Mode())
		}
	})
}

func TestBuiltinLessonWalkthrough(t *testing.T) {
	c, err := learning.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}

	s := New(c)
	feed(s, "5G<Space>gg<Space>Ggg")

	v := s.View()
	if !v.Completed || v.Feedback != msgLessonCompleted {
		t.Errorf("lesson 5 not completed: %+v", v)
	}
	if v.Cursor != buffer.NewPosition(0, 0) {
		t.Errorf("cursor = %v", v.Cursor)
	}
}

func TestModeString(t *testing.T) {
	if ModeMenu.String() != "menu" || ModeLesson.String() != "lesson" || Mode(9).String() != "Mode(9)" {
		t.Error("unexpected mode names")
	}
}
