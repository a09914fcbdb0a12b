package cmd

import (
	"fmt"

	"github.com/wcvb13/claude-code-costs/internal/cli"
	"github.com/wcvb13/claude-code-costs/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Printf("  Config file: %s\n\n", config.ConfigPath())

	rows := [][]string{
		{"Data directory", flagDataDir},
		{"Ranking length", cli.FormatNumber(int64(cfg.General.TopSessions))},
		{"Auto-open report", fmt.Sprintf("%v", cfg.General.AutoOpen)},
	}

	if len(cfg.Pricing.Overrides) > 0 {
		rows = append(rows, []string{"---"})
		for model := range cfg.Pricing.Overrides {
			rows = append(rows, []string{"Pricing override", model})
		}
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Setting", "Value"},
		Rows:    rows,
	}))

	return nil
}
