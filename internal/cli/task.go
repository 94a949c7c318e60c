package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Study task management",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a study task",
		Args:  cobra.ExactArgs(1),
		Run:   runTaskAdd,
	}
	addCmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	addCmd.Flags().String("deadline", "", "Deadline, e.g. 2025-06-15T09:00:00 or 2025-06-15 (required)")
	addCmd.Flags().String("details", "", "Free-form details")
	addCmd.MarkFlagRequired("learner")
	addCmd.MarkFlagRequired("deadline")

	doneCmd := &cobra.Command{
		Use:   "done <name>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		Run:   runTaskDone,
	}
	doneCmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	doneCmd.MarkFlagRequired("learner")

	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List incomplete tasks with future deadlines",
		Run:   runTaskUpcoming,
	}
	upcomingCmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	upcomingCmd.MarkFlagRequired("learner")

	taskCmd.AddCommand(addCmd, doneCmd, upcomingCmd)
	RootCmd.AddCommand(taskCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")
	deadline, _ := cmd.Flags().GetString("deadline")
	details, _ := cmd.Flags().GetString("details")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	if err := a.AddTask(cmd.Context(), learner, args[0], deadline, details); err != nil {
		exitErr("task add", err)
	}

	fmt.Printf(`{"ok":true,"task":%q}`+"\n", args[0])
}

func runTaskDone(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	if err := a.CompleteTask(cmd.Context(), learner, args[0]); err != nil {
		exitErr("task done", err)
	}

	fmt.Printf(`{"ok":true,"task":%q}`+"\n", args[0])
}

func runTaskUpcoming(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	upcoming, err := a.UpcomingTasks(learner)
	if err != nil {
		// Malformed deadlines are reported but do not hide the valid tasks.
		if upcoming == nil {
			exitErr("task upcoming", err)
		}
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	b, _ := json.MarshalIndent(upcoming, "", "  ")
	fmt.Println(string(b))
}
