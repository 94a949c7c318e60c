package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the record collection as JSON",
		Long:  "Export every learner record as one JSON document, in the same shape the JSON store uses. Useful for backups and for moving between store backends.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	b, _ := json.MarshalIndent(a.Collection(), "", "  ")
	fmt.Println(string(b))
}
