// Package query implements the filter/sort pipeline over a task
// collection. Applying a filter is a pure projection: the input
// collection is never modified.
package query

import (
	"strings"

	"github.com/taskdeck/taskdeck/internal/model"
)

// Status selects tasks by completion state.
type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Valid returns true if s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusAll, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// All is the wildcard value for the category and priority filters.
const All = "all"

// Filter holds the active view filters and sort configuration.
type Filter struct {
	Search   string
	Category string // a model.Category, or "all"
	Status   Status
	Priority string // a model.Priority, or "all"
	Tags     []string
	Sort     SortState
}

// Default returns the filter state a fresh view starts with: everything
// visible, newest first.
func Default() Filter {
	return Filter{
		Category: All,
		Status:   StatusAll,
		Priority: All,
		Sort: SortState{
			Field: SortByCreatedAt,
			Order: Descending,
		},
	}
}

// Apply filters and sorts the collection, returning a new ordered
// sequence. The active predicates are a conjunction.
func (f Filter) Apply(c model.Collection) model.Collection {
	out := make(model.Collection, 0, len(c))
	for i := range c {
		if f.matches(&c[i]) {
			out = append(out, c[i])
		}
	}
	f.Sort.sort(out)
	return out
}

func (f Filter) matches(t *model.Task) bool {
	switch f.Status {
	case StatusActive:
		if t.Done {
			return false
		}
	case StatusCompleted:
		if !t.Done {
			return false
		}
	}

	if f.Category != "" && f.Category != All && string(t.Category) != f.Category {
		return false
	}

	if f.Priority != "" && f.Priority != All && string(t.Priority) != f.Priority {
		return false
	}

	if f.Search != "" {
		q := strings.ToLower(f.Search)
		title := strings.ToLower(t.Title)
		desc := strings.ToLower(t.Description)
		if !strings.Contains(title, q) && !strings.Contains(desc, q) {
			return false
		}
	}

	// Every selected tag must be present.
	for _, tag := range f.Tags {
		if !t.HasTag(tag) {
			return false
		}
	}

	return true
}
