// Package cli implements the studyflow CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clwei/studyflow/internal/app"
	"github.com/clwei/studyflow/internal/store"
)

var (
	storePath    string
	storeBackend string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "studyflow",
	Short: "Personal study planning assistant",
	Long:  "Tracks a learner's notes, habits and tasks, and derives daily study schedules from a weekly time budget and a subject priority list.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&storePath, "store", "d", "", "Store path (default: $STUDYFLOW_STORE or ~/.studyflow/learners.json; .db opens a SQLite store)")
	RootCmd.PersistentFlags().StringVarP(&storeBackend, "backend", "b", "auto", "Store backend: auto, json or sqlite")
}

func getStorePath() string {
	if storePath != "" {
		return storePath
	}
	if env := os.Getenv("STUDYFLOW_STORE"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".studyflow", "learners.json")
}

// openApp opens the store, loads the collection and reports a degraded load
// on stderr. The caller must Close the returned repository.
func openApp(cmd *cobra.Command) (*app.App, store.Repository, error) {
	repo, err := store.Open(getStorePath(), storeBackend)
	if err != nil {
		return nil, nil, err
	}

	a := app.New(repo)
	status, err := a.Load(cmd.Context())
	if err != nil {
		repo.Close()
		return nil, nil, err
	}
	switch status {
	case store.StatusMissing:
		fmt.Fprintln(os.Stderr, "warning: store not found, starting with an empty collection")
	case store.StatusCorrupt:
		fmt.Fprintln(os.Stderr, "warning: store is corrupt, starting with an empty collection")
	}
	return a, repo, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
