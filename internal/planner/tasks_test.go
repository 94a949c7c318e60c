package planner

import (
	"strings"
	"testing"

	"github.com/clwei/studyflow/internal/model"
)

func TestUpcomingFiltersByDeadlineAndCompletion(t *testing.T) {
	tasks := map[string]model.Task{
		"future":        {Deadline: "2099-01-01T00:00:00"},
		"past":          {Deadline: "2000-01-01T00:00:00"},
		"done":          {Deadline: "2099-01-01T00:00:00", Completed: true},
		"date-only":     {Deadline: "2099-06-15"},
		"minute-format": {Deadline: "2099-06-15T09:30"},
	}

	got, err := Upcoming(tasks, now)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	for _, want := range []string{"future", "date-only", "minute-format"} {
		if _, ok := got[want]; !ok {
			t.Errorf("expected %q in upcoming tasks", want)
		}
	}
	if len(got) != 3 {
		t.Errorf("expected 3 upcoming tasks, got %d: %v", len(got), got)
	}
}

func TestUpcomingDeadlineStrictlyAfter(t *testing.T) {
	tasks := map[string]model.Task{
		"at-now": {Deadline: now.Format("2006-01-02T15:04:05")},
	}
	got, err := Upcoming(tasks, now)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("deadline equal to now must be excluded, got %v", got)
	}
}

func TestUpcomingReportsMalformedDeadlines(t *testing.T) {
	tasks := map[string]model.Task{
		"ok":     {Deadline: "2099-01-01"},
		"broken": {Deadline: "next tuesday"},
	}

	got, err := Upcoming(tasks, now)
	if err == nil {
		t.Fatal("expected error for malformed deadline")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error %q should name the offending task", err)
	}
	// The well-formed task is still returned.
	if _, ok := got["ok"]; !ok {
		t.Errorf("valid task missing from result: %v", got)
	}
	if _, ok := got["broken"]; ok {
		t.Error("malformed task must not appear in the result")
	}
}

func TestUpcomingCompletedSkipsParsing(t *testing.T) {
	tasks := map[string]model.Task{
		"done-broken": {Deadline: "not a date", Completed: true},
	}
	if _, err := Upcoming(tasks, now); err != nil {
		t.Errorf("completed tasks should not be parsed: %v", err)
	}
}
