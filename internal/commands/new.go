package commands

import (
	"fmt"

	"github.com/loomkit/loom/internal/blueprint"
	"github.com/loomkit/loom/internal/config"
	"github.com/loomkit/loom/internal/storage"
	"github.com/loomkit/loom/internal/terminal"
	"github.com/loomkit/loom/internal/update"
	"github.com/spf13/cobra"
)

var (
	dirFlag      string
	forceFlag    bool
	defaultsFlag bool
)

var newCmd = &cobra.Command{
	Use:   "new [blueprint]",
	Short: "Scaffold a new project",
	Long:  "Pick a blueprint, answer its questions, and write the project layout.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&dirFlag, "dir", "", "Target directory (defaults to ./<project>)")
	newCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite existing files")
	newCmd.Flags().BoolVar(&defaultsFlag, "defaults", false, "Skip the interview and use default answers")
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	term := newTerminal()

	name, err := pickBlueprint(term, cfg, args)
	if err != nil {
		return err
	}

	bp, err := blueprint.Load(name, cfg.BlueprintDir)
	if err != nil {
		return err
	}

	term.Header(fmt.Sprintf("New %s project", bp.Name))

	project, err := projectName(term, bp.Name, defaultsFlag)
	if err != nil {
		return err
	}

	answers, err := bp.Interview(term, defaultsFlag)
	if err != nil {
		return err
	}

	data := blueprint.TemplateData(project, answers)
	plan, err := bp.Plan(data, answers)
	if err != nil {
		return err
	}

	target, err := config.TargetDir(dirFlag, project)
	if err != nil {
		return err
	}

	result, err := bp.Render(target, plan, data, forceFlag)
	if err != nil {
		return err
	}

	history := storage.NewHistoryStore(cfg.LoomRoot)
	if err := history.Append(storage.Record{
		Blueprint: bp.Name,
		Project:   project,
		Path:      target,
		Files:     len(result.Written),
	}); err != nil {
		term.Warning(fmt.Sprintf("Could not record history: %v", err))
	}

	term.Success(fmt.Sprintf("Created %s: %d files in %s", project, len(result.Written), target))
	for _, skipped := range result.Skipped {
		term.Warning(fmt.Sprintf("Skipped existing %s (use --force to overwrite)", skipped))
	}

	if rel := update.Latest(); rel.NewerThan(Version) {
		term.Info(fmt.Sprintf("loom %s is available: %s", rel.Version, rel.URL))
	}
	return nil
}

// projectName asks for the project name, or takes the derived default
// without prompting when the interview runs with --defaults.
func projectName(term *terminal.Terminal, blueprintName string, useDefaults bool) (string, error) {
	def := "my-" + blueprintName
	if useDefaults {
		return def, nil
	}
	return term.ReadAnswer("Project name", def)
}

// pickBlueprint resolves the blueprint name from the argument, or asks via
// the selection menu when none was given.
func pickBlueprint(term *terminal.Terminal, cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	available, err := blueprint.List(cfg.BlueprintDir)
	if err != nil {
		return "", err
	}
	if len(available) == 0 {
		return "", fmt.Errorf("no blueprints available")
	}

	opts := make([]terminal.Option, len(available))
	for i, s := range available {
		label := s.Name
		if s.Description != "" {
			label = fmt.Sprintf("%s - %s", s.Name, s.Description)
		}
		opts[i] = terminal.Option{Key: s.Name, Label: label}
	}
	return term.SelectOption("Blueprint", opts)
}
