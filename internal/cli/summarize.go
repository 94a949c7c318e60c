package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize the latest note",
		Long:  "Summarize the latest note for a subject. With --structured, print the extracted outline instead.",
		Run:   runSummarize,
	}

	cmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	cmd.Flags().StringP("subject", "s", "", "Subject (required)")
	cmd.Flags().Bool("structured", false, "Print main points and keywords instead of a summary")

	cmd.MarkFlagRequired("learner")
	cmd.MarkFlagRequired("subject")

	RootCmd.AddCommand(cmd)
}

func runSummarize(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")
	subject, _ := cmd.Flags().GetString("subject")
	structured, _ := cmd.Flags().GetBool("structured")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	if structured {
		st, err := a.StructureLatest(learner, subject)
		if err != nil {
			exitErr("summarize", err)
		}
		b, _ := json.MarshalIndent(st, "", "  ")
		fmt.Println(string(b))
		return
	}

	summary, err := a.SummarizeLatest(learner, subject)
	if err != nil {
		exitErr("summarize", err)
	}
	fmt.Println(summary)
}
