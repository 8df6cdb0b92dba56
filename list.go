package tasks

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is returned by Remove when the task number does not name a task in the list.
var ErrOutOfRange = errors.New("task number out of range")

// List is an ordered list of tasks. A task is just its text; duplicates and empty strings are fine.
// Task numbers are 1-based and refer to the current position in the list, so they shift when a task
// before them is removed.
type List struct {
	contents []string
}

// Add appends a task at the end of the list.
func (l *List) Add(content string) {
	l.contents = append(l.contents, content)
}

// All yields each task's number and content in list order. The list must not be modified while iterating.
func (l *List) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, content := range l.contents {
			if !yield(i+1, content) {
				return
			}
		}
	}
}

// Remove deletes the task with the given 1-based number and returns its content. If the number is not
// in [1, Len()], the list is left alone and the error wraps ErrOutOfRange.
func (l *List) Remove(n int) (string, error) {
	if n < 1 || n > len(l.contents) {
		return "", fmt.Errorf("remove %d of %d: %w", n, len(l.contents), ErrOutOfRange)
	}
	i := n - 1
	content := l.contents[i]
	l.contents = append(l.contents[:i], l.contents[i+1:]...)
	return content, nil
}

func (l *List) Len() int {
	return len(l.contents)
}
