// Package cmd wires the CLI command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/wcvb13/claude-code-costs/internal/cli"
	"github.com/wcvb13/claude-code-costs/internal/config"
	"github.com/wcvb13/claude-code-costs/internal/model"
	"github.com/wcvb13/claude-code-costs/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagProject string
	flagQuiet   bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "claude-code-costs",
	Short: "Claude Code conversation cost analysis",
	Long:  "Analyze the cost of your Claude Code conversations from local session logs.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		var err error
		cfg, err = config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
		}
		if flagDataDir == "" {
			flagDataDir = cfg.General.DataDir
		}
		if flagDataDir == "" {
			flagDataDir = config.DefaultDataDir()
		}
	})

	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Claude data directory (default ~/.claude)")
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "", "Filter to project (substring match)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadData is the shared data loading path used by all commands.
func loadData() (*pipeline.LoadResult, error) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Scanning sessions...\n")
	}

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%100 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Parsing [%d/%d]", current, total)
		}
	}

	result, err := pipeline.Load(flagDataDir, progressFn)
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		if result.TotalFiles == 0 {
			fmt.Fprintf(os.Stderr, "  No session logs found under %s\n", flagDataDir)
		} else {
			fmt.Fprintf(os.Stderr, "\r  Parsed %s sessions across %d projects    \n",
				cli.FormatNumber(int64(result.ParsedFiles)),
				result.ProjectCount,
			)
		}
		if result.FileErrors > 0 {
			fmt.Fprintf(os.Stderr, "  %d files could not be read and were skipped\n", result.FileErrors)
		}
	}

	return result, nil
}

// applyFilters narrows the corpus per the shared flags.
func applyFilters(sessions []model.SessionSummary) []model.SessionSummary {
	if flagProject != "" {
		return pipeline.FilterByProject(sessions, flagProject)
	}
	return sessions
}
