package model

import (
	"testing"
	"time"
)

func TestAddNoteKeepsOrder(t *testing.T) {
	l := NewLearner("s1", "Ming")
	t0 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	l.AddNote("Math", "first", t0)
	l.AddNote("Math", "second", t0.Add(time.Hour))

	notes := l.NotesBySubject("Math")
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Content != "first" || notes[1].Content != "second" {
		t.Errorf("notes out of order: %v", notes)
	}

	latest, ok := l.LatestNote("Math")
	if !ok || latest.Content != "second" {
		t.Errorf("LatestNote = %+v, %v", latest, ok)
	}
	if _, ok := l.LatestNote("Physics"); ok {
		t.Error("LatestNote for unknown subject should report false")
	}
}

func TestCompleteTaskOneWay(t *testing.T) {
	l := NewLearner("s1", "Ming")
	l.AddTask("homework", "2099-01-01", "")

	if !l.CompleteTask("homework") {
		t.Fatal("completing an existing task should succeed")
	}
	if !l.Tasks["homework"].Completed {
		t.Error("task not marked completed")
	}
	if l.CompleteTask("missing") {
		t.Error("completing an unknown task should report false")
	}
}

func TestMutatorsOnZeroValueLearner(t *testing.T) {
	// A record decoded from JSON may have nil maps.
	var l Learner
	l.SetHabit("preferred_study_time", "morning")
	l.SetPreference("focus", "algebra")
	l.AddNote("Math", "x", time.Now())
	l.AddTask("t", "2099-01-01", "")

	if l.Habits["preferred_study_time"] != "morning" {
		t.Error("habit not set")
	}
	if len(l.Notes["Math"]) != 1 {
		t.Error("note not added")
	}
	if _, ok := l.Tasks["t"]; !ok {
		t.Error("task not added")
	}
}

func TestScheduleCloneIsIndependent(t *testing.T) {
	s := Schedule{
		Days: []DayPlan{
			{Day: "Mon", Slots: []Allocation{{Subject: "Math", Hours: 2}}},
		},
		Review: &ReviewMarker{StartDay: "14 days before exam"},
	}

	c := s.Clone()
	c.Days[0].Slots[0].Subject = "changed"
	c.Review.StartDay = "changed"

	if s.Days[0].Slots[0].Subject != "Math" {
		t.Error("clone shares slot memory with the original")
	}
	if s.Review.StartDay != "14 days before exam" {
		t.Error("clone shares the review marker with the original")
	}
}
