package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// scheduleCmd shows the computed review schedule.
var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"due", "next"},
	Short:   "Show the review schedule",
	Long: `Show every topic with its predicted review date, soonest first.
This is also what plain 'fibstudy' prints.

Examples:
  fibstudy schedule
  fibstudy schedule --format json`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	now := time.Now().UTC()

	entries, err := ctx.Planner.Schedule(now)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSchedule(entries, now)
	}

	ctx.CLIFormatter().PrintSchedule(entries, now)
	return nil
}
