package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clwei/studyflow/internal/planner"
)

func init() {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Derive a study schedule",
		Long:  "Derive a daily study schedule from a weekly time budget and a subject priority list, store it on the learner record and print it.",
		Run:   runPlan,
	}

	cmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	cmd.Flags().StringP("week", "w", "", `Available hours per day, in order: "Mon=4,Tue=0,Wed=2" (required)`)
	cmd.Flags().StringP("subjects", "s", "", "Priority subjects, highest first: \"Math,English\" (required)")
	cmd.Flags().String("exam", "", "Exam date (2006-01-02); adds a review marker")
	cmd.Flags().Int("per-day", planner.DefaultSubjectsPerDay, "Subjects per day")

	cmd.MarkFlagRequired("learner")
	cmd.MarkFlagRequired("week")
	cmd.MarkFlagRequired("subjects")

	RootCmd.AddCommand(cmd)
}

func runPlan(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")
	weekStr, _ := cmd.Flags().GetString("week")
	subjectsStr, _ := cmd.Flags().GetString("subjects")
	exam, _ := cmd.Flags().GetString("exam")
	perDay, _ := cmd.Flags().GetInt("per-day")

	week, err := parseWeek(weekStr)
	if err != nil {
		exitErr("plan", err)
	}

	var subjects []string
	for _, s := range strings.Split(subjectsStr, ",") {
		if s = strings.TrimSpace(s); s != "" {
			subjects = append(subjects, s)
		}
	}

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	sched, warnings, err := a.PlanSchedule(cmd.Context(), learner, planner.PlanParams{
		Week:           week,
		Subjects:       subjects,
		ExamDate:       exam,
		SubjectsPerDay: perDay,
	})
	if err != nil {
		exitErr("plan", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	b, _ := json.MarshalIndent(sched, "", "  ")
	fmt.Println(string(b))
}

// parseWeek parses "Mon=4,Tue=0" preserving day order.
func parseWeek(s string) ([]planner.DayHours, error) {
	var week []planner.DayHours
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, hoursStr, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid week entry %q (want day=hours)", part)
		}
		hours, err := strconv.ParseFloat(strings.TrimSpace(hoursStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid hours in %q: %w", part, err)
		}
		if hours < 0 {
			return nil, fmt.Errorf("negative hours in %q", part)
		}
		week = append(week, planner.DayHours{Day: strings.TrimSpace(day), Hours: hours})
	}
	return week, nil
}
