package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a learner",
		Long:  "Register a learner record. Registering an existing id returns the existing record unchanged. Without --id a new id is generated.",
		Run:   runRegister,
	}

	cmd.Flags().StringP("id", "i", "", "Learner id (generated when empty)")
	cmd.Flags().StringP("name", "n", "", "Display name (required)")

	cmd.MarkFlagRequired("name")

	RootCmd.AddCommand(cmd)
}

func runRegister(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	l, err := a.Register(cmd.Context(), id, name)
	if err != nil {
		exitErr("register", err)
	}

	b, _ := json.MarshalIndent(l, "", "  ")
	fmt.Println(string(b))
}
