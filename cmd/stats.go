package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/stats"
)

// statsCmd shows summary statistics for the whole collection.
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"stat", "summary"},
	Short:   "Show task statistics",
	Long: `Show summary statistics for the whole collection: totals, priority
and category breakdowns, due-date status, average completion time,
most productive day, and most used tags. View filters do not affect
statistics.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	collection := ctx.Tasks.Load()
	summary := stats.Compute(collection, time.Now())

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStats(summary)
	}
	ctx.CLIFormatter().PrintStats(summary)
	return nil
}
