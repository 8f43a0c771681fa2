package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/tui"
)

// dashboardCmd runs the interactive full-screen task view.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui", "board"},
	Short:   "Open the interactive dashboard",
	Long: `Open a full-screen interactive view of the collection. Move with
j/k, toggle the selected task with space, cycle the status filter with
tab, change the sort field with s, and quit with q.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	m := tui.NewDashboardModel(tui.DashboardConfig{
		Tasks:  ctx.Tasks,
		Engine: ctx.Engine,
		Styles: tui.NewStyles(ctx.Themes.Get()),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
