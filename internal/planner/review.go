package planner

import (
	"fmt"

	"github.com/clwei/studyflow/internal/model"
)

// Suggestions recommends, for every subject that has notes, revisiting the
// most recently written note. Subjects without notes produce no entry.
func Suggestions(notes map[string][]model.Note) map[string]string {
	out := map[string]string{}
	for subject, list := range notes {
		if len(list) == 0 {
			continue
		}
		latest := list[0].Timestamp
		for _, n := range list[1:] {
			if n.Timestamp.After(latest) {
				latest = n.Timestamp
			}
		}
		out[subject] = fmt.Sprintf("review the notes from %s", latest.Format("2006-01-02"))
	}
	return out
}
