package cmd

import (
	"fmt"

	"github.com/wcvb13/claude-code-costs/internal/cli"
	"github.com/wcvb13/claude-code-costs/internal/config"
	"github.com/wcvb13/claude-code-costs/internal/source"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	dataDir := cfg.General.DataDir
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}
	topSessions := cfg.General.TopSessions
	if topSessions <= 0 {
		topSessions = 20
	}
	autoOpen := cfg.General.AutoOpen

	files, _ := source.ScanDir(dataDir)
	if len(files) > 0 {
		fmt.Printf("\n  Found %s sessions in %s (%d projects)\n\n",
			cli.FormatNumber(int64(len(files))), dataDir, source.CountProjects(files))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Claude data directory").
				Description("Directory containing the projects/ log tree").
				Value(&dataDir),
			huh.NewSelect[int]().
				Title("Ranking length").
				Description("Conversations shown by the sessions command").
				Options(
					huh.NewOption("10", 10),
					huh.NewOption("20", 20),
					huh.NewOption("50", 50),
				).
				Value(&topSessions),
			huh.NewConfirm().
				Title("Open the HTML report in a browser automatically?").
				Value(&autoOpen),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	cfg.General.DataDir = dataDir
	cfg.General.TopSessions = topSessions
	cfg.General.AutoOpen = autoOpen

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\n  Saved to %s\n\n", config.ConfigPath())
	return nil
}
