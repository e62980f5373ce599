package learning

import (
	"fmt"
	"sort"
)

// Catalog is an immutable, ID-ordered set of lessons.
type Catalog struct {
	lessons []*Lesson
	byID    map[int]*Lesson
}

// NewCatalog builds a catalog, rejecting duplicate lesson IDs.
func NewCatalog(lessons ...*Lesson) (*Catalog, error) {
	c := &Catalog{
		lessons: make([]*Lesson, 0, len(lessons)),
		byID:    make(map[int]*Lesson, len(lessons)),
	}

	for _, l := range lessons {
		if _, exists := c.byID[l.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateLesson, l.ID)
		}
		c.byID[l.ID] = l
		c.lessons = append(c.lessons, l)
	}

	sort.Slice(c.lessons, func(i, j int) bool {
		return c.lessons[i].ID < c.lessons[j].ID
	})
	return c, nil
}

// Lessons returns the lessons ordered by ID.
func (c *Catalog) Lessons() []*Lesson {
	out := make([]*Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// Lesson returns the lesson with the given ID.
func (c *Catalog) Lesson(id int) (*Lesson, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}
