package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/engine"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/stats"
	"github.com/taskdeck/taskdeck/internal/storage"
)

// statuses cycled by the tab key.
var statuses = []query.Status{query.StatusAll, query.StatusActive, query.StatusCompleted}

// sortFields cycled by the s key.
var sortFields = []query.SortField{
	query.SortByCreatedAt,
	query.SortByTitle,
	query.SortByPriority,
	query.SortByDueDate,
	query.SortByUpdatedAt,
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Tasks  *storage.TaskStore
	Engine *engine.Engine
	Styles Styles
}

// DashboardModel is the bubbletea model for the live task view.
type DashboardModel struct {
	tasks  *storage.TaskStore
	engine *engine.Engine
	styles Styles

	// Data
	collection model.Collection
	view       model.Collection
	summary    stats.Summary

	// UI state
	filter query.Filter
	cursor int
	width  int
	height int
	err    error
}

// NewDashboardModel creates a dashboard model.
func NewDashboardModel(cfg DashboardConfig) *DashboardModel {
	m := &DashboardModel{
		tasks:  cfg.Tasks,
		engine: cfg.Engine,
		styles: cfg.Styles,
		filter: query.Default(),
	}
	m.reload()
	return m
}

// reload re-reads the collection and recomputes the projection. The
// whole pipeline is re-run on every change; there is no incremental
// diffing.
func (m *DashboardModel) reload() {
	m.collection = m.tasks.Load()
	m.view = m.filter.Apply(m.collection)
	m.summary = stats.Compute(m.collection, time.Now())
	if m.cursor >= len(m.view) {
		m.cursor = len(m.view) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case " ", "enter":
		if m.cursor < len(m.view) {
			id := m.view[m.cursor].ID
			m.collection = m.engine.ToggleTask(m.collection, id)
			if err := m.tasks.Save(m.collection); err != nil {
				m.err = err
			}
			m.reload()
		}

	case "tab":
		m.filter.Status = nextStatus(m.filter.Status)
		m.reload()

	case "s":
		m.filter.Sort.Select(nextSortField(m.filter.Sort.Field))
		m.reload()

	case "o":
		// Re-selecting the active field flips the direction.
		m.filter.Sort.Select(m.filter.Sort.Field)
		m.reload()

	case "r":
		m.reload()
	}

	return m, nil
}

func nextStatus(s query.Status) query.Status {
	for i, candidate := range statuses {
		if candidate == s {
			return statuses[(i+1)%len(statuses)]
		}
	}
	return query.StatusAll
}

func nextSortField(f query.SortField) query.SortField {
	for i, candidate := range sortFields {
		if candidate == f {
			return sortFields[(i+1)%len(sortFields)]
		}
	}
	return query.SortByCreatedAt
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Taskdeck"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf(
		"%d total, %d done, %d pending  ·  status: %s  ·  sort: %s %s",
		m.summary.TotalTasks, m.summary.CompletedTasks, m.summary.PendingTasks,
		m.filter.Status, m.filter.Sort.Field, m.filter.Sort.Order)))
	b.WriteString("\n\n")

	if len(m.view) == 0 {
		b.WriteString(m.styles.Subtitle.Render("No tasks match."))
		b.WriteString("\n")
	}

	for i := range m.view {
		t := &m.view[i]

		mark := "[ ]"
		if t.Done {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s %s", mark, t.Title)
		switch {
		case i == m.cursor:
			line = m.styles.Selected.Render("> " + line)
		case t.Done:
			line = "  " + m.styles.Done.Render(line)
		default:
			line = "  " + line
		}
		b.WriteString(line)

		badges := []string{string(t.Priority)}
		if t.DueDate != nil {
			badges = append(badges, "due "+t.DueDate.Format("2006-01-02"))
		}
		if len(t.Subtasks) > 0 {
			badges = append(badges, fmt.Sprintf("%.0f%%", t.ComputeProgress()))
		}
		b.WriteString("  " + m.styles.Badge.Render(strings.Join(badges, " · ")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("save failed: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(
		"j/k move · space toggle · tab status · s sort field · o direction · r reload · q quit"))
	b.WriteString("\n")

	return b.String()
}
