package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// subtaskCmd groups subtask operations.
var subtaskCmd = &cobra.Command{
	Use:     "subtask",
	Aliases: []string{"sub", "st"},
	Short:   "Manage a task's subtasks",
	Long: `Add, edit, toggle, or remove subtasks. Completing subtasks drives the
parent task's progress.

Examples:
  taskdeck subtask add 3f2a "Find a recipe"
  taskdeck subtask toggle 3f2a 91bc
  taskdeck subtask edit 3f2a 91bc "Find a vegan recipe"
  taskdeck subtask rm 3f2a 91bc`,
}

// subtaskAddCmd appends a subtask.
var subtaskAddCmd = &cobra.Command{
	Use:   "add TASK_ID [TEXT...]",
	Short: "Add a subtask",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSubtaskAdd,
}

// subtaskEditCmd replaces a subtask's text.
var subtaskEditCmd = &cobra.Command{
	Use:   "edit TASK_ID SUBTASK_ID TEXT...",
	Short: "Edit a subtask's text",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runSubtaskEdit,
}

// subtaskToggleCmd flips a subtask's completion flag.
var subtaskToggleCmd = &cobra.Command{
	Use:     "toggle TASK_ID SUBTASK_ID",
	Aliases: []string{"done"},
	Short:   "Toggle a subtask's completion",
	Args:    cobra.ExactArgs(2),
	RunE:    runSubtaskToggle,
}

// subtaskDeleteCmd removes a subtask.
var subtaskDeleteCmd = &cobra.Command{
	Use:     "rm TASK_ID SUBTASK_ID",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a subtask",
	Args:    cobra.ExactArgs(2),
	RunE:    runSubtaskDelete,
}

func init() {
	subtaskCmd.AddCommand(subtaskAddCmd)
	subtaskCmd.AddCommand(subtaskEditCmd)
	subtaskCmd.AddCommand(subtaskToggleCmd)
	subtaskCmd.AddCommand(subtaskDeleteCmd)
	rootCmd.AddCommand(subtaskCmd)
}

func runSubtaskAdd(cmd *cobra.Command, args []string) error {
	collection := ctx.Tasks.Load()
	taskID, err := resolveTaskID(collection, args[0])
	if err != nil {
		return err
	}

	// Blank text is allowed: subtasks can be created empty and edited
	// in place.
	text := strings.Join(args[1:], " ")
	collection = ctx.Engine.AddSubtask(collection, taskID, text)
	saveCollection(collection)

	return printSaved("added", "Added subtask to: "+collection[collection.Find(taskID)].Title)
}

func runSubtaskEdit(cmd *cobra.Command, args []string) error {
	collection := ctx.Tasks.Load()
	taskID, err := resolveTaskID(collection, args[0])
	if err != nil {
		return err
	}
	task := collection[collection.Find(taskID)]
	subtaskID, err := resolveSubtaskID(&task, args[1])
	if err != nil {
		return err
	}

	text := strings.Join(args[2:], " ")
	collection = ctx.Engine.EditSubtaskText(collection, taskID, subtaskID, text)
	saveCollection(collection)

	return printSaved("updated", "Updated subtask")
}

func runSubtaskToggle(cmd *cobra.Command, args []string) error {
	collection := ctx.Tasks.Load()
	taskID, err := resolveTaskID(collection, args[0])
	if err != nil {
		return err
	}
	task := collection[collection.Find(taskID)]
	subtaskID, err := resolveSubtaskID(&task, args[1])
	if err != nil {
		return err
	}

	collection = ctx.Engine.ToggleSubtask(collection, taskID, subtaskID)
	saveCollection(collection)

	updated := collection[collection.Find(taskID)]
	return printSaved("toggled",
		"Toggled subtask; progress now "+progressLabel(updated.ComputeProgress()))
}

func runSubtaskDelete(cmd *cobra.Command, args []string) error {
	collection := ctx.Tasks.Load()
	taskID, err := resolveTaskID(collection, args[0])
	if err != nil {
		return err
	}
	task := collection[collection.Find(taskID)]
	subtaskID, err := resolveSubtaskID(&task, args[1])
	if err != nil {
		return err
	}

	collection = ctx.Engine.DeleteSubtask(collection, taskID, subtaskID)
	saveCollection(collection)

	return printSaved("deleted", "Deleted subtask")
}

func progressLabel(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
