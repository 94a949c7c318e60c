package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	noteCmd := &cobra.Command{
		Use:   "note",
		Short: "Note management",
	}

	addCmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Add a note",
		Long:  "Add a note for a subject. Content can be a positional arg or piped via stdin.",
		Run:   runNoteAdd,
	}
	addCmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	addCmd.Flags().StringP("subject", "s", "", "Subject (required)")
	addCmd.MarkFlagRequired("learner")
	addCmd.MarkFlagRequired("subject")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a subject's notes",
		Run:   runNoteList,
	}
	listCmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	listCmd.Flags().StringP("subject", "s", "", "Subject (required)")
	listCmd.MarkFlagRequired("learner")
	listCmd.MarkFlagRequired("subject")

	formatCmd := &cobra.Command{
		Use:   "format",
		Short: "Reformat the latest note",
		Long:  "Rewrite the latest note for a subject in a preferred format: bullet_points or mind_map_keywords.",
		Run:   runNoteFormat,
	}
	formatCmd.Flags().StringP("learner", "l", "", "Learner id (required)")
	formatCmd.Flags().StringP("subject", "s", "", "Subject (required)")
	formatCmd.Flags().String("style", "", "Note format (required)")
	formatCmd.MarkFlagRequired("learner")
	formatCmd.MarkFlagRequired("subject")
	formatCmd.MarkFlagRequired("style")

	noteCmd.AddCommand(addCmd, listCmd, formatCmd)
	RootCmd.AddCommand(noteCmd)
}

func runNoteAdd(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")
	subject, _ := cmd.Flags().GetString("subject")

	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			content = string(b)
		}
	}

	if strings.TrimSpace(content) == "" {
		exitErr("note add", fmt.Errorf("content is required (positional arg or stdin)"))
	}

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	if err := a.AddNote(cmd.Context(), learner, subject, strings.TrimSpace(content)); err != nil {
		exitErr("note add", err)
	}

	fmt.Printf(`{"ok":true,"subject":%q}`+"\n", subject)
}

func runNoteList(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")
	subject, _ := cmd.Flags().GetString("subject")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	notes, err := a.Notes(learner, subject)
	if err != nil {
		exitErr("note list", err)
	}

	b, _ := json.MarshalIndent(notes, "", "  ")
	fmt.Println(string(b))
}

func runNoteFormat(cmd *cobra.Command, args []string) {
	learner, _ := cmd.Flags().GetString("learner")
	subject, _ := cmd.Flags().GetString("subject")
	style, _ := cmd.Flags().GetString("style")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	formatted, err := a.ReformatLatest(cmd.Context(), learner, subject, style)
	if err != nil {
		exitErr("note format", err)
	}

	fmt.Println(formatted)
}
