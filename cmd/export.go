package cmd

import (
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/bundle"
)

// Export command flags.
var (
	exportFlagOutput    string
	exportFlagClipboard bool
)

// exportCmd serializes the collection to a versioned bundle.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"ex", "dump"},
	Short:   "Export tasks",
	Long: `Export the whole collection as a versioned JSON bundle. The file,
stdout, and clipboard forms carry byte-identical content.

Examples:
  taskdeck export
  taskdeck export -o tasks.json
  taskdeck export --clipboard`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")
	exportCmd.Flags().BoolVar(&exportFlagClipboard, "clipboard", false, "Copy the bundle to the clipboard")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	collection := ctx.Tasks.Load()
	data, err := bundle.Export(collection, time.Now())
	if err != nil {
		return err
	}

	if exportFlagClipboard {
		if err := clipboard.WriteAll(string(data)); err != nil {
			return err
		}
		if !ctx.IsJSON() {
			ctx.CLIFormatter().Success("Copied export to clipboard")
		}
		if exportFlagOutput == "" {
			return nil
		}
	}

	if exportFlagOutput != "" {
		if err := os.WriteFile(exportFlagOutput, data, 0644); err != nil {
			return err
		}
		if !ctx.IsJSON() {
			ctx.CLIFormatter().Success("Exported to " + exportFlagOutput)
		}
		return nil
	}

	ctx.Formatter.Print(string(data))
	ctx.Formatter.Println()
	return nil
}
