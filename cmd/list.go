package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/validate"
)

// List command flags.
var (
	listFlagSearch   string
	listFlagCategory string
	listFlagStatus   string
	listFlagPriority string
	listFlagTags     []string
	listFlagSort     string
	listFlagOrder    string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List tasks",
	Long: `List tasks, filtered and sorted. All filters are combined; a task
must match every active filter to be shown.

Examples:
  taskdeck list
  taskdeck list --status active --category work
  taskdeck list --search report --sort dueDate
  taskdeck list --tag urgent --tag q3 --sort priority --order desc`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFlagSearch, "search", "s", "", "Case-insensitive search over title and description")
	listCmd.Flags().StringVarP(&listFlagCategory, "category", "c", query.All, "Category filter, or 'all'")
	listCmd.Flags().StringVar(&listFlagStatus, "status", string(query.StatusAll), "Completion filter: all, active, completed")
	listCmd.Flags().StringVarP(&listFlagPriority, "priority", "p", query.All, "Priority filter, or 'all'")
	listCmd.Flags().StringArrayVarP(&listFlagTags, "tag", "t", nil, "Require a tag (repeatable, all must match)")
	listCmd.Flags().StringVar(&listFlagSort, "sort", string(query.SortByCreatedAt), "Sort field: title, priority, dueDate, createdAt, updatedAt")
	listCmd.Flags().StringVar(&listFlagOrder, "order", "", "Sort order: asc, desc (default depends on field)")

	rootCmd.AddCommand(listCmd)
}

// buildFilter assembles the filter state from the list flags.
func buildFilter() (query.Filter, error) {
	f := query.Default()

	f.Search = listFlagSearch
	f.Tags = listFlagTags

	if listFlagCategory != "" && listFlagCategory != query.All {
		cat, err := validate.Category(listFlagCategory)
		if err != nil {
			return f, err
		}
		f.Category = string(cat)
	}

	if listFlagStatus != "" {
		status, err := validate.Status(listFlagStatus)
		if err != nil {
			return f, err
		}
		f.Status = status
	}

	if listFlagPriority != "" && listFlagPriority != query.All {
		p, err := validate.Priority(listFlagPriority)
		if err != nil {
			return f, err
		}
		f.Priority = string(p)
	}

	if listFlagSort != "" {
		field, err := validate.SortField(listFlagSort)
		if err != nil {
			return f, err
		}
		f.Sort.Field = field
		// Choosing a field starts ascending; the default view stays
		// newest-first. An explicit --order wins either way.
		if field == query.SortByCreatedAt {
			f.Sort.Order = query.Descending
		} else {
			f.Sort.Order = query.Ascending
		}
	}
	switch listFlagOrder {
	case "asc":
		f.Sort.Order = query.Ascending
	case "desc":
		f.Sort.Order = query.Descending
	}

	return f, nil
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := buildFilter()
	if err != nil {
		return err
	}

	collection := ctx.Tasks.Load()
	view := filter.Apply(collection)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTasks(view)
	}
	ctx.CLIFormatter().PrintTasks(view)
	return nil
}
