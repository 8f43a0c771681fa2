package cmd

import (
	"github.com/spf13/cobra"
)

// deleteCmd removes a task.
var deleteCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a task",
	Long: `Delete a task. Its subtasks and tags are removed with it.

Examples:
  taskdeck rm 3f2a`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	collection := ctx.Tasks.Load()
	id, err := resolveTaskID(collection, args[0])
	if err != nil {
		return err
	}

	title := collection[collection.Find(id)].Title
	collection = ctx.Engine.DeleteTask(collection, id)
	saveCollection(collection)

	return printSaved("deleted", "Deleted: "+title)
}
