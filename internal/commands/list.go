package commands

import (
	"github.com/loomkit/loom/internal/blueprint"
	"github.com/loomkit/loom/internal/config"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available blueprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		term := newTerminal()

		available, err := blueprint.List(cfg.BlueprintDir)
		if err != nil {
			return err
		}

		term.Header("Blueprints")
		for _, s := range available {
			desc := s.Description
			if !s.BuiltIn {
				desc += " (user)"
			}
			term.Detail(s.Name, desc)
		}
		return nil
	},
}
