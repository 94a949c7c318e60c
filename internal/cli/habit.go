package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	habitCmd := &cobra.Command{
		Use:   "habit",
		Short: "Learning habit management",
	}

	setCmd := &cobra.Command{
		Use:   "set <habit> <value>",
		Short: "Set a learning habit",
		Long:  "Set a learning habit, e.g. preferred_study_time morning. Unrecognized habits are stored but not interpreted.",
		Args:  cobra.ExactArgs(2),
		Run:   runHabitSet,
	}
	setCmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	setCmd.MarkFlagRequired("learner")

	habitCmd.AddCommand(setCmd)
	RootCmd.AddCommand(habitCmd)
}

func runHabitSet(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	if err := a.SetHabit(cmd.Context(), learner, args[0], args[1]); err != nil {
		exitErr("habit set", err)
	}

	fmt.Printf(`{"ok":true,"habit":%q,"value":%q}`+"\n", args[0], args[1])
}
