package learning

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/vex/internal/engine/buffer"
	"github.com/dshills/vex/internal/engine/motion"
	"github.com/dshills/vex/internal/input/vim"
)

//go:embed lessons/*.toml
var builtinLessons embed.FS

// Lesson IDs are selected from the menu with a single digit.
const (
	minLessonID = 1
	maxLessonID = 9
)

// DefaultCatalog returns the built-in curriculum.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(builtinLessons, "lessons")
}

// positionFile is a cursor position as written in lesson files.
type positionFile struct {
	Line   uint32 `toml:"line" yaml:"line"`
	Column uint32 `toml:"column" yaml:"column"`
}

// taskFile is the on-disk form of a Task.
type taskFile struct {
	Description string       `toml:"description" yaml:"description"`
	Text        string       `toml:"text" yaml:"text"`
	Start       positionFile `toml:"start" yaml:"start"`
	Target      positionFile `toml:"target" yaml:"target"`
	Keys        string       `toml:"keys" yaml:"keys"`
	Hints       []string     `toml:"hints" yaml:"hints"`
}

// lessonFile is the on-disk form of a Lesson. Text is the default buffer
// text for tasks that do not set their own.
type lessonFile struct {
	ID          int        `toml:"id" yaml:"id"`
	Title       string     `toml:"title" yaml:"title"`
	Explanation []string   `toml:"explanation" yaml:"explanation"`
	Commands    string     `toml:"commands" yaml:"commands"`
	Text        string     `toml:"text" yaml:"text"`
	Tasks       []taskFile `toml:"tasks" yaml:"tasks"`
}

// LoadCatalog loads every .toml, .yaml, and .yml file in dir.
func LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading lesson directory %s: %w", dir, err)
	}

	var lessons []*Lesson
	for _, entry := range entries {
		if entry.IsDir() || !isLessonFile(entry.Name()) {
			continue
		}

		l, err := LoadLessonFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}

	if len(lessons) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLessons, dir)
	}
	return NewCatalog(lessons...)
}

// LoadLessonFile reads and validates a single lesson file.
func LoadLessonFile(fsys fs.FS, name string) (*Lesson, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}

	lf, err := decodeLesson(name, data)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}

	l, err := lf.build()
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return l, nil
}

func isLessonFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

// decodeLesson parses data according to the file extension.
func decodeLesson(name string, data []byte) (*lessonFile, error) {
	var lf lessonFile

	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&lf); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&lf); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path.Ext(name))
	}

	return &lf, nil
}

// build converts the file form into a validated Lesson.
func (lf *lessonFile) build() (*Lesson, error) {
	if lf.ID < minLessonID || lf.ID > maxLessonID {
		return nil, fmt.Errorf("%w: id %d must be between %d and %d", ErrInvalidLesson, lf.ID, minLessonID, maxLessonID)
	}
	if strings.TrimSpace(lf.Title) == "" {
		return nil, fmt.Errorf("%w: lesson %d has no title", ErrInvalidLesson, lf.ID)
	}
	if len(lf.Tasks) == 0 {
		return nil, fmt.Errorf("%w: lesson %d has no tasks", ErrInvalidLesson, lf.ID)
	}

	commands, err := vim.ParseSequence(lf.Commands)
	if err != nil {
		return nil, fmt.Errorf("%w: lesson %d commands: %w", ErrInvalidLesson, lf.ID, err)
	}

	l := &Lesson{
		ID:          lf.ID,
		Title:       lf.Title,
		Explanation: lf.Explanation,
		Commands:    commands,
		Tasks:       make([]Task, 0, len(lf.Tasks)),
	}

	for i, tf := range lf.Tasks {
		t, err := tf.build(lf.Text)
		if err != nil {
			return nil, fmt.Errorf("%w: lesson %d task %d: %w", ErrInvalidLesson, lf.ID, i+1, err)
		}
		l.Tasks = append(l.Tasks, t)
	}
	return l, nil
}

func (tf *taskFile) build(defaultText string) (Task, error) {
	text := tf.Text
	if text == "" {
		text = defaultText
	}

	expected, err := vim.ParseSequence(tf.Keys)
	if err != nil {
		return Task{}, err
	}
	if len(expected) == 0 {
		return Task{}, errors.New("no expected keys")
	}

	t := Task{
		Description: tf.Description,
		Text:        text,
		Start:       buffer.NewPosition(tf.Start.Line, tf.Start.Column),
		Target:      buffer.NewPosition(tf.Target.Line, tf.Target.Column),
		Expected:    expected,
		Hints:       tf.Hints,
	}
	if err := verifyTask(&t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// verifyTask checks that start and target are valid cursor positions and
// that replaying the expected commands from start reaches target.
func verifyTask(t *Task) error {
	b := t.NewBuffer()
	if !b.Contains(t.Start) {
		return fmt.Errorf("start %s is outside the text", t.Start)
	}
	if !b.Contains(t.Target) {
		return fmt.Errorf("target %s is outside the text", t.Target)
	}

	for _, cmd := range t.Expected {
		if err := motion.Execute(b, cmd); err != nil {
			return err
		}
	}
	if b.Cursor() != t.Target {
		return fmt.Errorf("keys %q end at %s, not target %s", t.Answer(), b.Cursor(), t.Target)
	}
	return nil
}
