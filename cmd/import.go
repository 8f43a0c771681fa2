package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/bundle"
)

// importCmd reads a bundle and appends its tasks.
var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import tasks from an export bundle",
	Long: `Import tasks from a bundle produced by 'taskdeck export'. Imported
tasks are appended to the existing collection; nothing is overwritten
or merged. Use '-' to read from stdin.

Examples:
  taskdeck import tasks.json
  cat tasks.json | taskdeck import -`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	// Validate before touching state: a malformed bundle leaves the
	// collection alone.
	imported, err := bundle.Import(data)
	if err != nil {
		return err
	}

	collection := ctx.Tasks.Load()
	collection = append(collection.Clone(), imported...)
	saveCollection(collection)

	return printSaved("imported", fmt.Sprintf("Imported %d task(s)", len(imported)))
}
