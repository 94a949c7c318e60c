package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/clwei/studyflow/internal/model"
)

// deadlineLayouts are the accepted timezone-naive deadline formats.
var deadlineLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Upcoming filters a task list down to incomplete tasks whose deadline is
// strictly after now. Tasks with unparsable deadlines are left out of the
// result and reported through the returned error, which names each offending
// task; the well-formed tasks are still returned alongside it.
func Upcoming(tasks map[string]model.Task, now time.Time) (map[string]model.Task, error) {
	upcoming := map[string]model.Task{}
	var errs []error
	for name, task := range tasks {
		if task.Completed {
			continue
		}
		deadline, err := ParseDeadline(task.Deadline)
		if err != nil {
			errs = append(errs, fmt.Errorf("task %q: %w", name, err))
			continue
		}
		if deadline.After(now) {
			upcoming[name] = task
		}
	}
	return upcoming, errors.Join(errs...)
}

// ParseDeadline parses a task deadline in any of the accepted layouts.
func ParseDeadline(s string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid deadline %q", s)
}
