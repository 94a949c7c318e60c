package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Suggest notes to review",
		Long:  "For each subject with notes, suggest revisiting the most recently written note.",
		Run:   runReview,
	}

	cmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	cmd.MarkFlagRequired("learner")

	RootCmd.AddCommand(cmd)
}

func runReview(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	suggestions, err := a.ReviewSuggestions(learner)
	if err != nil {
		exitErr("review", err)
	}

	b, _ := json.MarshalIndent(suggestions, "", "  ")
	fmt.Println(string(b))
}
