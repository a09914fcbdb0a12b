package cmd

import (
	"fmt"
	"time"

	"github.com/wcvb13/claude-code-costs/internal/cli"
	"github.com/wcvb13/claude-code-costs/internal/pipeline"
	"github.com/wcvb13/claude-code-costs/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the HTML report and open it in a browser",
	RunE:  runReport,
}

var flagNoOpen bool

func init() {
	reportCmd.Flags().BoolVar(&flagNoOpen, "no-open", false, "Write the report without opening a browser")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	sessions := applyFilters(result.Sessions)
	data := report.Build(sessions, time.Now())

	path, err := report.Write(data)
	if err != nil {
		return err
	}

	stats := pipeline.Overview(sessions)
	fmt.Printf("\n  Report: %s\n", path)
	fmt.Printf("  Total cost %s across %s sessions\n\n",
		cli.FormatUSD(stats.TotalCost, 4),
		cli.FormatNumber(int64(stats.TotalSessions)),
	)

	if !flagNoOpen && cfg.General.AutoOpen {
		report.OpenBrowser(path)
	}

	return nil
}
