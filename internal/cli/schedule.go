package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the stored schedule",
		Run:   runSchedule,
	}

	cmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	cmd.MarkFlagRequired("learner")

	RootCmd.AddCommand(cmd)
}

func runSchedule(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	sched, err := a.ScheduleFor(learner)
	if err != nil {
		exitErr("schedule", err)
	}

	b, _ := json.MarshalIndent(sched, "", "  ")
	fmt.Println(string(b))
}
