package commands

import (
	"fmt"

	"github.com/loomkit/loom/internal/config"
	"github.com/loomkit/loom/internal/storage"
	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently scaffolded projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		term := newTerminal()

		records, err := storage.NewHistoryStore(cfg.LoomRoot).Recent(10)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			term.Info("Nothing scaffolded yet. Run `loom new` to get started.")
			return nil
		}

		term.Header("Recent projects")
		for _, rec := range records {
			term.Detail(rec.Project, fmt.Sprintf("%s, %d files, %s (%s)",
				rec.Blueprint, rec.Files, rec.Path, rec.CreatedAt.Format("2006-01-02")))
		}
		return nil
	},
}
