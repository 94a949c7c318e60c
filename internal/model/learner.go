// Package model defines the learner record and schedule data types.
package model

import "time"

// Habit keys that drive behavior elsewhere in the system. Anything else in
// the Habits/Preferences maps is carried as-is for forward compatibility.
const (
	HabitPreferredStudyTime = "preferred_study_time"
	StudyTimeMorning        = "morning"
)

// Note formats understood by the organizer's Reformat.
const (
	FormatBulletPoints    = "bullet_points"
	FormatMindMapKeywords = "mind_map_keywords"
)

// Note is a single timestamped note entry. Entries are appended and never
// reordered, so timestamps within a subject are non-decreasing.
type Note struct {
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
}

// Task is a study task with a deadline. The deadline is kept as the caller's
// string and parsed only when filtering; Completed transitions false→true
// and never reverses.
type Task struct {
	Deadline  string `json:"deadline"`
	Details   string `json:"details,omitempty"`
	Completed bool   `json:"completed"`
}

// Learner is the per-user aggregate: habits, preferences, notes, tasks and
// the current study schedule.
type Learner struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Habits      map[string]string `json:"habits,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty"`
	Notes       map[string][]Note `json:"notes,omitempty"`
	Schedule    *Schedule         `json:"schedule,omitempty"`
	Tasks       map[string]Task   `json:"tasks,omitempty"`
}

// Collection is the whole persisted record set, keyed by learner id.
type Collection map[string]*Learner

// NewLearner creates an empty learner record.
func NewLearner(id, name string) *Learner {
	return &Learner{
		ID:          id,
		Name:        name,
		Habits:      map[string]string{},
		Preferences: map[string]string{},
		Notes:       map[string][]Note{},
		Tasks:       map[string]Task{},
	}
}

// SetHabit records a learning habit.
func (l *Learner) SetHabit(habit, value string) {
	if l.Habits == nil {
		l.Habits = map[string]string{}
	}
	l.Habits[habit] = value
}

// SetPreference records a study preference.
func (l *Learner) SetPreference(pref, value string) {
	if l.Preferences == nil {
		l.Preferences = map[string]string{}
	}
	l.Preferences[pref] = value
}

// AddNote appends a note for the subject, stamped with now.
func (l *Learner) AddNote(subject, content string, now time.Time) {
	if l.Notes == nil {
		l.Notes = map[string][]Note{}
	}
	l.Notes[subject] = append(l.Notes[subject], Note{Timestamp: now, Content: content})
}

// NotesBySubject returns the subject's notes in insertion order.
func (l *Learner) NotesBySubject(subject string) []Note {
	return l.Notes[subject]
}

// LatestNote returns the most recently added note for the subject.
func (l *Learner) LatestNote(subject string) (Note, bool) {
	notes := l.Notes[subject]
	if len(notes) == 0 {
		return Note{}, false
	}
	return notes[len(notes)-1], true
}

// AddTask registers a task. The deadline string is not validated here; the
// task tracker reports unparsable deadlines when filtering.
func (l *Learner) AddTask(name, deadline, details string) {
	if l.Tasks == nil {
		l.Tasks = map[string]Task{}
	}
	l.Tasks[name] = Task{Deadline: deadline, Details: details}
}

// CompleteTask marks a task completed. Returns false if the task does not
// exist. Completion is one-way.
func (l *Learner) CompleteTask(name string) bool {
	t, ok := l.Tasks[name]
	if !ok {
		return false
	}
	t.Completed = true
	l.Tasks[name] = t
	return true
}
