package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/validate"
)

// tagCmd groups tag operations.
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage a task's tags",
	Long: `Attach and detach tags. A tag's color is derived from its name, so
the same tag always looks the same.

Examples:
  taskdeck tag add 3f2a urgent
  taskdeck tag rm 3f2a urgent`,
}

// tagAddCmd attaches a tag.
var tagAddCmd = &cobra.Command{
	Use:   "add TASK_ID NAME",
	Short: "Attach a tag to a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagAdd,
}

// tagRemoveCmd detaches a tag by id or name.
var tagRemoveCmd = &cobra.Command{
	Use:     "rm TASK_ID TAG",
	Aliases: []string{"delete", "del", "remove"},
	Short:   "Detach a tag by id or name",
	Args:    cobra.ExactArgs(2),
	RunE:    runTagRemove,
}

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	rootCmd.AddCommand(tagCmd)
}

func runTagAdd(cmd *cobra.Command, args []string) error {
	if err := validate.TagName(args[1]); err != nil {
		return err
	}

	collection := ctx.Tasks.Load()
	taskID, err := resolveTaskID(collection, args[0])
	if err != nil {
		return err
	}

	collection = ctx.Engine.AddTag(collection, taskID, args[1])
	saveCollection(collection)

	return printSaved("tagged", "Tagged: "+collection[collection.Find(taskID)].Title)
}

func runTagRemove(cmd *cobra.Command, args []string) error {
	collection := ctx.Tasks.Load()
	taskID, err := resolveTaskID(collection, args[0])
	if err != nil {
		return err
	}

	task := collection[collection.Find(taskID)]
	ref := strings.TrimSpace(args[1])

	// Try the tag id first, then fall back to the name.
	if task.FindTag(ref) >= 0 {
		collection = ctx.Engine.RemoveTag(collection, taskID, ref)
	} else if task.HasTag(ref) {
		collection = ctx.Engine.RemoveTagByName(collection, taskID, ref)
	} else {
		return errors.ErrTagNotFound
	}
	saveCollection(collection)

	return printSaved("untagged", "Removed tag from: "+task.Title)
}
