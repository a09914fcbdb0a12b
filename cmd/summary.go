package cmd

import (
	"fmt"

	"github.com/wcvb13/claude-code-costs/internal/cli"
	"github.com/wcvb13/claude-code-costs/internal/pipeline"

	"github.com/spf13/cobra"
)

// consoleTopN is the ranking length for the console summary.
const consoleTopN = 5

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Console cost summary with the top conversations",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	if len(result.Sessions) == 0 {
		fmt.Println("\n  No Claude Code sessions found.")
		return nil
	}

	sessions := applyFilters(result.Sessions)
	stats := pipeline.Overview(sessions)

	fmt.Println()
	fmt.Println(cli.RenderTitle("CLAUDE CODE COSTS"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total cost", cli.FormatUSD(stats.TotalCost, 4)},
			{"Sessions", cli.FormatNumber(int64(stats.TotalSessions))},
			{"With cost data", cli.FormatNumber(int64(stats.CostBearing))},
			{"Avg cost/conversation", cli.FormatUSD(stats.AvgCostPerConvo, 4)},
		},
	}))

	ranked := pipeline.Rank(sessions)
	if len(ranked) == 0 {
		fmt.Println("\n  No conversations with cost data.")
		return nil
	}
	if len(ranked) > consoleTopN {
		ranked = ranked[:consoleTopN]
	}

	rows := make([][]string, 0, len(ranked))
	for _, s := range ranked {
		rows = append(rows, []string{
			cli.Truncate(s.Title, 48),
			cli.Truncate(s.Project, 20),
			cli.FormatUSD(s.TotalCost, 6),
			cli.FormatDate(s.StartTime),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Most Expensive Conversations",
		Headers: []string{"Conversation", "Project", "Cost", "Date"},
		Rows:    rows,
	}))

	return nil
}
