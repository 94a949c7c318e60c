// Package app coordinates learner records against a repository. It is the
// only component that performs persistence; the planner and organizer stay
// pure.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/clwei/studyflow/internal/model"
	"github.com/clwei/studyflow/internal/organizer"
	"github.com/clwei/studyflow/internal/planner"
	"github.com/clwei/studyflow/internal/store"
)

var (
	// ErrLearnerNotFound is returned for operations on an unregistered id.
	ErrLearnerNotFound = errors.New("learner not found")
	// ErrNoNotes is returned when an operation needs at least one note for
	// the subject and none exist.
	ErrNoNotes = errors.New("no notes for subject")
)

// App holds the loaded collection and writes it back after every mutation,
// so the store always reflects the last operation.
type App struct {
	repo     store.Repository
	learners model.Collection
	entropy  *rand.Rand
	now      func() time.Time
}

// New creates an App over the given repository with an empty collection;
// call Load to populate it.
func New(repo store.Repository) *App {
	return &App{
		repo:     repo,
		learners: model.Collection{},
		entropy:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// Load reads the collection from the repository. The returned status tells
// the caller whether the store was found, absent, or unreadable.
func (a *App) Load(ctx context.Context) (store.Status, error) {
	c, status, err := a.repo.Load(ctx)
	if err != nil {
		return status, err
	}
	a.learners = c
	return status, nil
}

func (a *App) save(ctx context.Context) error {
	return a.repo.Save(ctx, a.learners)
}

func (a *App) newID() string {
	return ulid.MustNew(ulid.Timestamp(a.now()), a.entropy).String()
}

// Register creates a learner record, or returns the existing one unchanged
// when the id is already registered. An empty id gets a generated ULID.
func (a *App) Register(ctx context.Context, id, name string) (*model.Learner, error) {
	if id == "" {
		id = a.newID()
	}
	if l, ok := a.learners[id]; ok {
		return l, nil
	}
	l := model.NewLearner(id, name)
	a.learners[id] = l
	if err := a.save(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

// Learner looks up a record by id.
func (a *App) Learner(id string) (*model.Learner, bool) {
	l, ok := a.learners[id]
	return l, ok
}

// Collection returns the in-memory record set, for export.
func (a *App) Collection() model.Collection {
	return a.learners
}

// Import merges records into the collection, overwriting existing ids, and
// saves.
func (a *App) Import(ctx context.Context, c model.Collection) (int, error) {
	for id, l := range c {
		a.learners[id] = l
	}
	if err := a.save(ctx); err != nil {
		return 0, err
	}
	return len(c), nil
}

// AddNote appends a note for the learner's subject and saves.
func (a *App) AddNote(ctx context.Context, id, subject, content string) error {
	l, ok := a.learners[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	l.AddNote(subject, content, a.now())
	return a.save(ctx)
}

// Notes returns the learner's notes for the subject.
func (a *App) Notes(id, subject string) ([]model.Note, error) {
	l, ok := a.learners[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	return l.NotesBySubject(subject), nil
}

// SetHabit records a learning habit and saves.
func (a *App) SetHabit(ctx context.Context, id, habit, value string) error {
	l, ok := a.learners[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	l.SetHabit(habit, value)
	return a.save(ctx)
}

// SetPreference records a study preference and saves.
func (a *App) SetPreference(ctx context.Context, id, pref, value string) error {
	l, ok := a.learners[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	l.SetPreference(pref, value)
	return a.save(ctx)
}

// AddTask registers a study task and saves.
func (a *App) AddTask(ctx context.Context, id, name, deadline, details string) error {
	l, ok := a.learners[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	l.AddTask(name, deadline, details)
	return a.save(ctx)
}

// CompleteTask marks a task done and saves.
func (a *App) CompleteTask(ctx context.Context, id, name string) error {
	l, ok := a.learners[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	if !l.CompleteTask(name) {
		return fmt.Errorf("task not found: %s", name)
	}
	return a.save(ctx)
}

// UpcomingTasks returns the learner's incomplete, future-deadline tasks.
// Tasks with unparsable deadlines are reported through the error alongside
// the valid results.
func (a *App) UpcomingTasks(id string) (map[string]model.Task, error) {
	l, ok := a.learners[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	return planner.Upcoming(l.Tasks, a.now())
}

// PlanSchedule derives a schedule for the learner, stores it on the record
// and saves. Warnings from degenerate input pass through to the caller.
func (a *App) PlanSchedule(ctx context.Context, id string, p planner.PlanParams) (model.Schedule, []string, error) {
	l, ok := a.learners[id]
	if !ok {
		return model.Schedule{}, nil, fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	if p.Now.IsZero() {
		p.Now = a.now()
	}
	sched, warnings, err := planner.Plan(p)
	if err != nil {
		return model.Schedule{}, warnings, err
	}
	l.Schedule = &sched
	if err := a.save(ctx); err != nil {
		return model.Schedule{}, warnings, err
	}
	return sched, warnings, nil
}

// AdjustSchedule personalizes the learner's stored schedule from their
// habits, stores the result and saves.
func (a *App) AdjustSchedule(ctx context.Context, id string) (model.Schedule, error) {
	l, ok := a.learners[id]
	if !ok {
		return model.Schedule{}, fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	if l.Schedule == nil {
		return model.Schedule{}, nil
	}
	adjusted := planner.Personalize(*l.Schedule, l.Habits)
	l.Schedule = &adjusted
	if err := a.save(ctx); err != nil {
		return model.Schedule{}, err
	}
	return adjusted, nil
}

// ScheduleFor returns the learner's stored schedule.
func (a *App) ScheduleFor(id string) (model.Schedule, error) {
	l, ok := a.learners[id]
	if !ok {
		return model.Schedule{}, fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	if l.Schedule == nil {
		return model.Schedule{}, nil
	}
	return *l.Schedule, nil
}

// ReviewSuggestions recommends which subjects to revisit based on the
// learner's note history.
func (a *App) ReviewSuggestions(id string) (map[string]string, error) {
	l, ok := a.learners[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	return planner.Suggestions(l.Notes), nil
}

// SummarizeLatest summarizes the learner's most recent note for the subject.
func (a *App) SummarizeLatest(id, subject string) (string, error) {
	note, err := a.latestNote(id, subject)
	if err != nil {
		return "", err
	}
	return organizer.Summarize(note.Content), nil
}

// StructureLatest extracts an outline from the learner's most recent note
// for the subject.
func (a *App) StructureLatest(id, subject string) (organizer.Structured, error) {
	note, err := a.latestNote(id, subject)
	if err != nil {
		return organizer.Structured{}, err
	}
	return organizer.Structure(note.Content), nil
}

// ReformatLatest rewrites the learner's most recent note for the subject in
// the given format, stores the new content and saves.
func (a *App) ReformatLatest(ctx context.Context, id, subject, format string) (string, error) {
	l, ok := a.learners[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	notes := l.Notes[subject]
	if len(notes) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoNotes, subject)
	}
	formatted := organizer.Reformat(notes[len(notes)-1].Content, format)
	notes[len(notes)-1].Content = formatted
	if err := a.save(ctx); err != nil {
		return "", err
	}
	return formatted, nil
}

func (a *App) latestNote(id, subject string) (model.Note, error) {
	l, ok := a.learners[id]
	if !ok {
		return model.Note{}, fmt.Errorf("%w: %s", ErrLearnerNotFound, id)
	}
	note, ok := l.LatestNote(subject)
	if !ok {
		return model.Note{}, fmt.Errorf("%w: %s", ErrNoNotes, subject)
	}
	return note, nil
}
