package cmd

import (
	"fmt"

	"github.com/wcvb13/claude-code-costs/internal/cli"
	"github.com/wcvb13/claude-code-costs/internal/pipeline"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Cost rollup by project",
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	if len(result.Sessions) == 0 {
		fmt.Println("\n  No sessions found.")
		return nil
	}

	projects := pipeline.AggregateProjects(applyFilters(result.Sessions))
	if len(projects) == 0 {
		fmt.Println("\n  No projects with cost data.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECTS"))
	fmt.Println()

	rows := make([][]string, 0, len(projects))
	var total float64
	for _, p := range projects {
		total += p.Cost
		rows = append(rows, []string{
			cli.Truncate(p.Project, 32),
			cli.FormatNumber(int64(p.Sessions)),
			cli.FormatUSD(p.Cost, 4),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", cli.FormatUSD(total, 4)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Project", "Sessions", "Cost"},
		Rows:    rows,
	}))

	return nil
}
