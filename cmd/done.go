package cmd

import (
	"github.com/spf13/cobra"
)

// doneCmd toggles a task's completion flag.
var doneCmd = &cobra.Command{
	Use:     "done ID",
	Aliases: []string{"toggle", "check"},
	Short:   "Toggle a task's completion",
	Long: `Toggle the completion flag of a task. Running it twice puts the task
back where it started.

Examples:
  taskdeck done 3f2a
  taskdeck done 3f2a9c81-77e0`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	collection := ctx.Tasks.Load()
	id, err := resolveTaskID(collection, args[0])
	if err != nil {
		return err
	}

	collection = ctx.Engine.ToggleTask(collection, id)
	saveCollection(collection)

	task := collection[collection.Find(id)]
	if task.Done {
		return printSaved("completed", "Completed: "+task.Title)
	}
	return printSaved("reopened", "Reopened: "+task.Title)
}
