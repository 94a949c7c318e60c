package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Personalize the stored schedule",
		Long:  "Re-shape the learner's stored schedule according to their habits (currently preferred_study_time=morning) and store the result.",
		Run:   runAdjust,
	}

	cmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	cmd.MarkFlagRequired("learner")

	RootCmd.AddCommand(cmd)
}

func runAdjust(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	sched, err := a.AdjustSchedule(cmd.Context(), learner)
	if err != nil {
		exitErr("adjust", err)
	}

	b, _ := json.MarshalIndent(sched, "", "  ")
	fmt.Println(string(b))
}
