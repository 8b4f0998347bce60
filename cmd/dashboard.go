package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tmkelleher/fibstudy/internal/config"
	"github.com/tmkelleher/fibstudy/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d", "tui"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open an interactive terminal dashboard showing the review schedule.

Keyboard Controls:
  type    - Filter topics (fuzzy match on subject/topic)
  up/down - Move the cursor
  enter   - Complete the selected topic
  esc     - Clear the filter
  q       - Quit dashboard

Examples:
  fibstudy dashboard
  fibstudy dash
  fibstudy tui`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	// Configure the dashboard
	cfg := tui.DashboardConfig{
		Planner:         ctx.Planner,
		RefreshInterval: config.Global.Dashboard.RefreshInterval,
		MaxVisible:      config.Global.Dashboard.MaxVisibleTopics,
	}

	// Run the TUI dashboard
	return tui.Run(cfg)
}
