package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/parser"
	"github.com/taskdeck/taskdeck/internal/validate"
)

// Add command flags.
var (
	addFlagDescription string
	addFlagPriority    string
	addFlagCategory    string
	addFlagDue         string
	addFlagTags        []string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add TITLE...",
	Aliases: []string{"a", "new"},
	Short:   "Add a new task",
	Long: `Add a new task. The title is required; everything else is optional.

Examples:
  taskdeck add "Buy milk"
  taskdeck add Call the dentist --category health --priority high
  taskdeck add "Quarterly report" --due "next friday" --tag work --tag q3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlagDescription, "desc", "d", "", "Task description")
	addCmd.Flags().StringVarP(&addFlagPriority, "priority", "p", "medium", "Priority: low, medium, high")
	addCmd.Flags().StringVarP(&addFlagCategory, "category", "c", string(model.DefaultCategory), "Category: work, personal, shopping, health, other")
	addCmd.Flags().StringVar(&addFlagDue, "due", "", "Due date (natural language accepted)")
	addCmd.Flags().StringArrayVarP(&addFlagTags, "tag", "t", nil, "Attach a tag (repeatable)")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	if err := validate.Title(title); err != nil {
		return err
	}
	if err := validate.Description(addFlagDescription); err != nil {
		return err
	}

	priority, err := validate.Priority(addFlagPriority)
	if err != nil {
		return err
	}
	category, err := validate.Category(addFlagCategory)
	if err != nil {
		return err
	}

	var due *time.Time
	if addFlagDue != "" {
		d, err := parser.ParseDueDate(addFlagDue, time.Now())
		if err != nil {
			return err
		}
		due = &d
	}

	for _, tag := range addFlagTags {
		if err := validate.TagName(tag); err != nil {
			return err
		}
	}

	draft := model.Draft{
		Title:       title,
		Description: addFlagDescription,
		Priority:    priority,
		Category:    category,
		DueDate:     due,
		Tags:        addFlagTags,
	}

	collection := ctx.Tasks.Load()
	collection = ctx.Engine.AddTask(collection, draft)
	saveCollection(collection)

	added := collection[len(collection)-1]
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask(&added)
	}
	ctx.CLIFormatter().Success("Added: " + added.Title)
	return nil
}
