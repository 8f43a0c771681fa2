// Package stats derives summary statistics from a task collection.
// Compute is a pure read-only projection over the full collection;
// view filters are ignored.
package stats

import (
	"sort"
	"time"

	"github.com/taskdeck/taskdeck/internal/model"
)

// DueBuckets counts tasks by due-date status relative to a reference day.
type DueBuckets struct {
	Overdue     int `json:"overdue"`
	DueToday    int `json:"dueToday"`
	DueThisWeek int `json:"dueThisWeek"`
	DueLater    int `json:"dueLater"`
}

// Summary holds the derived statistics for a collection.
type Summary struct {
	TotalTasks     int                    `json:"totalTasks"`
	CompletedTasks int                    `json:"completedTasks"`
	PendingTasks   int                    `json:"pendingTasks"`
	ByPriority     map[model.Priority]int `json:"tasksByPriority"`
	ByCategory     map[model.Category]int `json:"tasksByCategory"`
	ByDueDate      DueBuckets             `json:"tasksByDueDate"`

	// AverageCompletionMs is the mean of updatedAt-createdAt in
	// milliseconds over completed tasks, 0 when none are completed.
	AverageCompletionMs float64 `json:"averageCompletionTime"`

	// MostProductiveDay is the calendar day with the most completed-task
	// updates, empty when no task is completed.
	MostProductiveDay string `json:"mostProductiveDay"`

	// MostUsedTags is the top 5 tag names by frequency, ties kept in
	// first-encountered order.
	MostUsedTags []string `json:"mostUsedTags"`
}

// CompletionRate returns the completed fraction as a percentage,
// 0 for an empty collection.
func (s Summary) CompletionRate() float64 {
	if s.TotalTasks == 0 {
		return 0
	}
	return float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
}

// dayOf truncates a time to its calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Compute builds a Summary for the collection as of now.
func Compute(c model.Collection, now time.Time) Summary {
	today := dayOf(now)
	// Week starts on Sunday; the dueThisWeek window is week-to-date
	// (weekStart through yesterday), matching the shipped behavior.
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	s := Summary{
		ByPriority: make(map[model.Priority]int, 3),
		ByCategory: make(map[model.Category]int, len(model.Categories())),
	}
	for _, p := range model.Priorities() {
		s.ByPriority[p] = 0
	}
	for _, cat := range model.Categories() {
		s.ByCategory[cat] = 0
	}

	var totalCompletion time.Duration
	dayCounts := map[string]int{}
	dayOrder := []string{}
	tagCounts := map[string]int{}
	tagOrder := []string{}

	for i := range c {
		t := &c[i]
		s.TotalTasks++
		if t.Done {
			s.CompletedTasks++
			totalCompletion += t.UpdatedAt.Sub(t.CreatedAt)

			day := t.UpdatedAt.Format("2006-01-02")
			if _, seen := dayCounts[day]; !seen {
				dayOrder = append(dayOrder, day)
			}
			dayCounts[day]++
		} else {
			s.PendingTasks++
		}

		s.ByPriority[t.Priority]++
		s.ByCategory[t.Category]++

		if t.DueDate != nil {
			due := dayOf(*t.DueDate)
			switch {
			case due.Equal(today):
				s.ByDueDate.DueToday++
			case due.After(today):
				s.ByDueDate.DueLater++
			}
			if due.Before(today) && !t.Done {
				s.ByDueDate.Overdue++
			}
			if !due.Before(weekStart) && due.Before(today) {
				s.ByDueDate.DueThisWeek++
			}
		}

		for _, tag := range t.Tags {
			if _, seen := tagCounts[tag.Name]; !seen {
				tagOrder = append(tagOrder, tag.Name)
			}
			tagCounts[tag.Name]++
		}
	}

	if s.CompletedTasks > 0 {
		s.AverageCompletionMs = float64(totalCompletion.Milliseconds()) / float64(s.CompletedTasks)
	}

	s.MostProductiveDay = topDay(dayOrder, dayCounts)
	s.MostUsedTags = topTags(tagOrder, tagCounts, 5)

	return s
}

// topDay picks the day with the highest count, first-encountered
// winning ties.
func topDay(order []string, counts map[string]int) string {
	best := ""
	bestCount := 0
	for _, day := range order {
		if counts[day] > bestCount {
			best = day
			bestCount = counts[day]
		}
	}
	return best
}

// topTags returns up to n tag names by descending frequency. The stable
// sort keeps ties in first-encountered order.
func topTags(order []string, counts map[string]int, n int) []string {
	names := make([]string, len(order))
	copy(names, order)
	sort.SliceStable(names, func(i, j int) bool {
		return counts[names[i]] > counts[names[j]]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}
