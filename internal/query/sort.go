package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/taskdeck/taskdeck/internal/model"
)

// SortField selects the comparison key.
type SortField string

const (
	SortByTitle     SortField = "title"
	SortByPriority  SortField = "priority"
	SortByDueDate   SortField = "dueDate"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
)

// Valid returns true if f is a known sort field.
func (f SortField) Valid() bool {
	switch f {
	case SortByTitle, SortByPriority, SortByDueDate, SortByCreatedAt, SortByUpdatedAt:
		return true
	}
	return false
}

// SortOrder is the sort direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// SortState is the current sort configuration. Select implements the
// view contract: re-selecting the active field flips the direction,
// selecting a different field resets to ascending.
type SortState struct {
	Field SortField
	Order SortOrder
}

// Select switches the sort to the given field.
func (s *SortState) Select(field SortField) {
	if s.Field == field {
		if s.Order == Ascending {
			s.Order = Descending
		} else {
			s.Order = Ascending
		}
		return
	}
	s.Field = field
	s.Order = Ascending
}

// titleCollator compares titles with locale rules, ignoring case.
var titleCollator = collate.New(language.Und, collate.Loose)

// sort orders the slice in place with a stable sort. Ties on the chosen
// key keep their prior relative order; there is no secondary key.
func (s SortState) sort(c model.Collection) {
	sort.SliceStable(c, func(i, j int) bool {
		a, b := &c[i], &c[j]

		// Missing due dates sort last regardless of direction.
		if s.Field == SortByDueDate {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return false
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			}
		}

		cmp := compare(a, b, s.Field)
		if s.Order == Descending {
			cmp = -cmp
		}
		return cmp < 0
	})
}

func compare(a, b *model.Task, field SortField) int {
	switch field {
	case SortByTitle:
		return titleCollator.CompareString(a.Title, b.Title)
	case SortByPriority:
		return a.Priority.Ordinal() - b.Priority.Ordinal()
	case SortByDueDate:
		return a.DueDate.Compare(*b.DueDate)
	case SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default: // createdAt
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}
