package learning

import (
	"errors"
	"fmt"
)

// Errors returned while loading lessons.
var (
	// ErrDuplicateLesson indicates two lessons share an ID.
	ErrDuplicateLesson = errors.New("duplicate lesson id")

	// ErrInvalidLesson indicates a lesson or task that fails validation.
	ErrInvalidLesson = errors.New("invalid lesson")

	// ErrUnsupportedFormat indicates a lesson file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported lesson format")

	// ErrNoLessons indicates a directory without any lesson files.
	ErrNoLessons = errors.New("no lessons found")
)

// LoadError records the lesson file that failed to load.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading lesson %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
