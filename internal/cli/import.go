package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/clwei/studyflow/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import learner records from JSON",
		Long:  "Import learner records from stdin. Expects the format produced by export; existing ids are overwritten.",
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var c model.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		exitErr("parse json", err)
	}

	a, repo, err := openApp(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer repo.Close()

	imported, err := a.Import(cmd.Context(), c)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"imported":%d}`+"\n", imported)
}
