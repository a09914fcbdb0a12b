package cmd

import (
	"fmt"

	"github.com/wcvb13/claude-code-costs/internal/cli"
	"github.com/wcvb13/claude-code-costs/internal/pipeline"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Conversation ranking by cost",
	RunE:  runSessions,
}

var sessionsLimit int

func init() {
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "l", 0, "Number of conversations to show (default from config)")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	if len(result.Sessions) == 0 {
		fmt.Println("\n  No sessions found.")
		return nil
	}

	ranked := pipeline.Rank(applyFilters(result.Sessions))
	if len(ranked) == 0 {
		fmt.Println("\n  No conversations with cost data.")
		return nil
	}

	limit := sessionsLimit
	if limit <= 0 {
		limit = cfg.General.TopSessions
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TOP CONVERSATIONS  (showing %d)", len(ranked))))
	fmt.Println()

	rows := make([][]string, 0, len(ranked))
	for i, s := range ranked {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			cli.Truncate(s.Title, 44),
			cli.Truncate(s.Project, 18),
			fmt.Sprintf("%d", s.Turns),
			cli.FormatMinutes(s.DurationMinutes()),
			cli.FormatUSD(s.TotalCost, 6),
			cli.FormatDate(s.StartTime),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Conversation", "Project", "Turns", "Duration", "Cost", "Date"},
		Rows:    rows,
	}))

	return nil
}
