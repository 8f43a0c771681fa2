package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/stats"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	priorityColors = map[model.Priority]lipgloss.Color{
		model.PriorityLow:    lipgloss.Color("#4ECDC4"),
		model.PriorityMedium: lipgloss.Color("#FFD166"),
		model.PriorityHigh:   lipgloss.Color("#FF6B6B"),
	}

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDone = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints subdued text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// shortID returns the display form of an id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// PrintTask prints a single task line with its badges.
func (c *CLIFormatter) PrintTask(t *model.Task) {
	checkbox := "[ ]"
	if t.Done {
		checkbox = "[x]"
	}

	title := t.Title
	if t.Done && c.IsColorEnabled() {
		title = styleDone.Render(title)
	}

	badges := []string{string(t.Priority), string(t.Category)}
	if t.DueDate != nil {
		badges = append(badges, "due "+FormatDate(*t.DueDate))
	}
	for _, tag := range t.Tags {
		badges = append(badges, "#"+tag.Name)
	}

	line := fmt.Sprintf("%s %s %s", checkbox, shortID(t.ID), title)
	if c.IsColorEnabled() {
		if style, ok := priorityColors[t.Priority]; ok {
			badges[0] = lipgloss.NewStyle().Foreground(style).Render(badges[0])
		}
	}
	c.Printf("%s  (%s)\n", line, strings.Join(badges, ", "))

	if t.Description != "" {
		c.Muted("    " + t.Description)
	}
	if len(t.Subtasks) > 0 {
		done := 0
		for _, st := range t.Subtasks {
			if st.Completed {
				done++
			}
		}
		c.Printf("    %s %d/%d subtasks\n", ProgressBar(t.ComputeProgress(), 10), done, len(t.Subtasks))
		for _, st := range t.Subtasks {
			mark := "[ ]"
			if st.Completed {
				mark = "[x]"
			}
			c.Printf("      %s %s %s\n", mark, shortID(st.ID), st.Text)
		}
	}
}

// PrintTasks prints a filtered task listing.
func (c *CLIFormatter) PrintTasks(tasks model.Collection) {
	if len(tasks) == 0 {
		c.Muted("No tasks match.")
		return
	}
	for i := range tasks {
		c.PrintTask(&tasks[i])
	}
}

// PrintStats prints a statistics summary.
func (c *CLIFormatter) PrintStats(s stats.Summary) {
	c.Title("Task Statistics")
	c.Println("")

	c.Printf("  Total: %d   Completed: %d   Pending: %d\n",
		s.TotalTasks, s.CompletedTasks, s.PendingTasks)
	if s.TotalTasks > 0 {
		rate := s.CompletionRate()
		c.Printf("  %s %.0f%%\n", ProgressBar(rate, 20), rate)
	}
	c.Println("")

	c.Println("By Priority:")
	for _, p := range model.Priorities() {
		c.Printf("  %-8s %d\n", p, s.ByPriority[p])
	}
	c.Println("")

	c.Println("By Category:")
	for _, cat := range model.Categories() {
		c.Printf("  %-9s %d\n", cat, s.ByCategory[cat])
	}
	c.Println("")

	c.Println("Due Dates:")
	c.Printf("  overdue %d   today %d   this week %d   later %d\n",
		s.ByDueDate.Overdue, s.ByDueDate.DueToday, s.ByDueDate.DueThisWeek, s.ByDueDate.DueLater)
	c.Println("")

	if s.AverageCompletionMs > 0 {
		avg := time.Duration(s.AverageCompletionMs) * time.Millisecond
		c.Printf("Average completion time: %s\n", FormatDuration(avg))
	}
	if s.MostProductiveDay != "" {
		c.Printf("Most productive day: %s\n", s.MostProductiveDay)
	}
	if len(s.MostUsedTags) > 0 {
		c.Printf("Most used tags: %s\n", strings.Join(s.MostUsedTags, ", "))
	}
}
