// Package planner derives daily study schedules from a weekly time budget
// and a priority list of subjects, and applies stored habits to them. All
// functions are pure; warnings and parse failures are returned, never logged.
package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/clwei/studyflow/internal/model"
)

// DefaultSubjectsPerDay is the number of distinct subjects scheduled per day
// when the caller does not say otherwise.
const DefaultSubjectsPerDay = 2

// ExamDateLayout is the accepted exam date format.
const ExamDateLayout = "2006-01-02"

// Warnings returned by Plan for degenerate but non-fatal input.
const (
	WarnNoAvailableTime = "no available study time"
	WarnNoSubjects      = "no priority subjects"
)

// DayHours is one day of the weekly time budget. The slice order given to
// Plan is the day order of the resulting schedule.
type DayHours struct {
	Day   string
	Hours float64
}

// PlanParams are the inputs to Plan.
type PlanParams struct {
	Week           []DayHours
	Subjects       []string // priority order, highest first
	ExamDate       string   // optional, ExamDateLayout
	SubjectsPerDay int
	Now            time.Time
}

// Plan turns a weekly time budget and a subject priority list into a daily
// allocation, optionally augmented with an exam review marker.
//
// Each day's hours are split evenly across SubjectsPerDay slots; the subject
// for slot j on the day at index i is Subjects[(i+j) % len(Subjects)], a
// rotating round-robin so the first slot cycles through the priority list
// across days. Days with zero hours get a single rest slot. SubjectsPerDay
// is clamped down to the subject count when it exceeds it; values below one
// yield days with no slots at all.
//
// An empty week or an empty subject list yields an empty schedule plus a
// warning. A malformed ExamDate fails the call.
func Plan(p PlanParams) (model.Schedule, []string, error) {
	var warnings []string
	if len(p.Week) == 0 {
		return model.Schedule{}, append(warnings, WarnNoAvailableTime), nil
	}
	if len(p.Subjects) == 0 {
		return model.Schedule{}, append(warnings, WarnNoSubjects), nil
	}

	perDay := p.SubjectsPerDay
	if perDay > len(p.Subjects) {
		perDay = len(p.Subjects)
	}

	sched := model.Schedule{Days: make([]model.DayPlan, 0, len(p.Week))}
	for i, dh := range p.Week {
		day := model.DayPlan{Day: dh.Day}
		switch {
		case dh.Hours > 0 && perDay > 0:
			slot := dh.Hours / float64(perDay)
			for j := 0; j < perDay; j++ {
				subject := p.Subjects[(i+j)%len(p.Subjects)]
				day.Slots = append(day.Slots, model.Allocation{Subject: subject, Hours: slot})
			}
		case dh.Hours <= 0:
			day.Slots = []model.Allocation{{Subject: model.RestSubject, Hours: 0}}
		}
		sched.Days = append(sched.Days, day)
	}

	if p.ExamDate != "" {
		exam, err := time.Parse(ExamDateLayout, p.ExamDate)
		if err != nil {
			return model.Schedule{}, warnings, fmt.Errorf("parse exam date %q: %w", p.ExamDate, err)
		}
		days := daysUntil(p.Now, exam)
		sched.Review = &model.ReviewMarker{StartDay: fmt.Sprintf("%d days before exam", days)}
	}

	return sched, warnings, nil
}

// daysUntil counts whole days from now until then, flooring toward minus
// infinity so a partially elapsed day counts as already gone and past dates
// come out negative.
func daysUntil(now, then time.Time) int {
	return int(math.Floor(then.Sub(now).Hours() / 24))
}
