package planner

import "github.com/clwei/studyflow/internal/model"

// MorningPrefix marks allocations moved to the morning.
const MorningPrefix = "[morning] "

// Personalize applies stored habits to a schedule, returning a deep copy;
// the input is never mutated. The only habit interpreted today is
// preferred_study_time=morning, which prefixes every day slot's subject and
// the review marker text with MorningPrefix. Any other habit value returns
// a structurally identical copy.
//
// Not idempotent: personalizing an already personalized schedule prefixes
// the marker again.
func Personalize(s model.Schedule, habits map[string]string) model.Schedule {
	out := s.Clone()
	if habits[model.HabitPreferredStudyTime] != model.StudyTimeMorning {
		return out
	}
	for i := range out.Days {
		for j := range out.Days[i].Slots {
			out.Days[i].Slots[j].Subject = MorningPrefix + out.Days[i].Slots[j].Subject
		}
	}
	if out.Review != nil {
		out.Review.StartDay = MorningPrefix + out.Review.StartDay
	}
	return out
}
