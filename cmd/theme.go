package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/theme"
	"github.com/taskdeck/taskdeck/internal/validate"
)

// themeCmd shows or sets the color scheme.
var themeCmd = &cobra.Command{
	Use:   "theme [NAME]",
	Short: "Show or set the color scheme",
	Long: `Show the active color scheme, or switch to another one.
Available schemes: sunset, ocean, forest, lavender.

Examples:
  taskdeck theme
  taskdeck theme forest`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		current := ctx.Themes.Get()
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(struct {
				Scheme  theme.Scheme   `json:"scheme"`
				Schemes []theme.Scheme `json:"available"`
			}{Scheme: current, Schemes: theme.Schemes()})
		}
		cli := ctx.CLIFormatter()
		for _, s := range theme.Schemes() {
			marker := "  "
			if s == current {
				marker = "* "
			}
			cli.Println(marker + string(s))
		}
		return nil
	}

	scheme, err := validate.Scheme(args[0])
	if err != nil {
		return err
	}
	if err := ctx.Themes.Set(scheme); err != nil {
		return err
	}
	return printSaved("theme", "Switched to "+string(scheme))
}
