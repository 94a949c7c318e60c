package model

// RestSubject is the sentinel subject emitted for days with no study hours.
const RestSubject = "rest"

// Allocation assigns hours to a single subject within a day.
type Allocation struct {
	Subject string  `json:"subject"`
	Hours   float64 `json:"hours"`
}

// DayPlan is one day's ordered slot list. Days keep the order the available
// time was given in, so allocation stays deterministic.
type DayPlan struct {
	Day   string       `json:"day"`
	Slots []Allocation `json:"slots"`
}

// ReviewMarker describes when exam review should start, e.g.
// "14 days before exam".
type ReviewMarker struct {
	StartDay string `json:"start_day"`
}

// Schedule is a derived study plan: one entry per available day plus an
// optional exam review marker.
type Schedule struct {
	Days   []DayPlan     `json:"days,omitempty"`
	Review *ReviewMarker `json:"review,omitempty"`
}

// IsEmpty reports whether the schedule allocates nothing.
func (s Schedule) IsEmpty() bool {
	return len(s.Days) == 0 && s.Review == nil
}

// Day returns the plan for the given day label.
func (s Schedule) Day(label string) (DayPlan, bool) {
	for _, d := range s.Days {
		if d.Day == label {
			return d, true
		}
	}
	return DayPlan{}, false
}

// Clone returns a deep copy sharing no memory with the receiver.
func (s Schedule) Clone() Schedule {
	out := Schedule{}
	if s.Days != nil {
		out.Days = make([]DayPlan, len(s.Days))
		for i, d := range s.Days {
			cp := DayPlan{Day: d.Day}
			if d.Slots != nil {
				cp.Slots = make([]Allocation, len(d.Slots))
				copy(cp.Slots, d.Slots)
			}
			out.Days[i] = cp
		}
	}
	if s.Review != nil {
		r := *s.Review
		out.Review = &r
	}
	return out
}
