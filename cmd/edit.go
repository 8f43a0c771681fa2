package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/parser"
	"github.com/taskdeck/taskdeck/internal/validate"
)

// Edit command flags.
var (
	editFlagTitle       string
	editFlagDescription string
	editFlagPriority    string
	editFlagCategory    string
	editFlagDue         string
	editFlagClearDue    bool
)

// editCmd edits a task's fields.
var editCmd = &cobra.Command{
	Use:     "edit ID",
	Aliases: []string{"e", "set"},
	Short:   "Edit a task",
	Long: `Edit a task's title, description, priority, category, or due date.
Only the fields given as flags change.

Examples:
  taskdeck edit 3f2a --title "Buy oat milk"
  taskdeck edit 3f2a --priority high --due "next monday"
  taskdeck edit 3f2a --clear-due`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editFlagTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editFlagDescription, "desc", "d", "", "New description")
	editCmd.Flags().StringVarP(&editFlagPriority, "priority", "p", "", "New priority: low, medium, high")
	editCmd.Flags().StringVarP(&editFlagCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVar(&editFlagDue, "due", "", "New due date (natural language accepted)")
	editCmd.Flags().BoolVar(&editFlagClearDue, "clear-due", false, "Remove the due date")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	collection := ctx.Tasks.Load()
	id, err := resolveTaskID(collection, args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("title") || cmd.Flags().Changed("desc") {
		title := editFlagTitle
		description := editFlagDescription
		if !cmd.Flags().Changed("title") {
			title = collection[collection.Find(id)].Title
		}
		if !cmd.Flags().Changed("desc") {
			description = collection[collection.Find(id)].Description
		}
		if cmd.Flags().Changed("title") {
			if err := validate.Title(title); err != nil {
				return err
			}
		}
		if err := validate.Description(description); err != nil {
			return err
		}
		collection = ctx.Engine.EditTask(collection, id, title, description)
	}

	if editFlagPriority != "" {
		p, err := validate.Priority(editFlagPriority)
		if err != nil {
			return err
		}
		collection = ctx.Engine.SetPriority(collection, id, p)
	}

	if editFlagCategory != "" {
		cat, err := validate.Category(editFlagCategory)
		if err != nil {
			return err
		}
		collection = ctx.Engine.SetCategory(collection, id, cat)
	}

	if editFlagClearDue {
		collection = ctx.Engine.SetDueDate(collection, id, nil)
	} else if editFlagDue != "" {
		due, err := parser.ParseDueDate(editFlagDue, time.Now())
		if err != nil {
			return err
		}
		collection = ctx.Engine.SetDueDate(collection, id, &due)
	}

	saveCollection(collection)

	task := collection[collection.Find(id)]
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask(&task)
	}
	ctx.CLIFormatter().Success("Updated: " + task.Title)
	return nil
}
