package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	prefCmd := &cobra.Command{
		Use:   "pref",
		Short: "Study preference management",
	}

	setCmd := &cobra.Command{
		Use:   "set <preference> <value>",
		Short: "Set a study preference",
		Args:  cobra.ExactArgs(2),
		Run:   runPrefSet,
	}
	setCmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	setCmd.MarkFlagRequired("learner")

	prefCmd.AddCommand(setCmd)
	RootCmd.AddCommand(prefCmd)
}

func runPrefSet(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	if err := a.SetPreference(cmd.Context(), learner, args[0], args[1]); err != nil {
		exitErr("pref set", err)
	}

	fmt.Printf(`{"ok":true,"preference":%q,"value":%q}`+"\n", args[0], args[1])
}
