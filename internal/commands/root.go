package commands

import (
	"os"

	"github.com/loomkit/loom/internal/terminal"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "loom",
	Short:   "Scaffold projects from blueprints",
	Long:    "Loom interviews you about a new project and writes its layout from a blueprint's templates.",
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew(cmd, nil)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// plainFlag holds the --plain flag value.
var plainFlag bool

// newTerminal builds the process terminal, honoring --plain.
func newTerminal() *terminal.Terminal {
	t := terminal.New()
	if plainFlag || os.Getenv("NO_COLOR") != "" {
		t.ForcePlain()
	}
	return t
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Disable colors and the arrow-key menu")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(recentCmd)
}
