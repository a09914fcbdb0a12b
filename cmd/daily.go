package cmd

import (
	"fmt"
	"time"

	"github.com/wcvb13/claude-code-costs/internal/cli"
	"github.com/wcvb13/claude-code-costs/internal/pipeline"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily cost table for the last 30 days",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	if len(result.Sessions) == 0 {
		fmt.Println("\n  No sessions found.")
		return nil
	}

	sessions := applyFilters(result.Sessions)
	series := pipeline.DailySeries(sessions, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle("DAILY COSTS  Last 30d"))
	fmt.Println()

	costs := make([]float64, len(series))
	rows := make([][]string, 0, len(series))
	for i, d := range series {
		costs[i] = d.Cost
		rows = append(rows, []string{
			d.DateKey(),
			cli.FormatNumber(int64(d.Count)),
			cli.FormatUSD(d.Cost, 4),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Sessions", "Cost"},
		Rows:    rows,
	}))

	fmt.Printf("\n  %s\n\n", cli.RenderSparkline(costs))

	return nil
}
