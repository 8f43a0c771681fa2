package model

import (
	"strings"
	"time"
)

// Task is a user-created unit of work.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" validate:"required,max=256"`
	Description string     `json:"description,omitempty"`
	Done        bool       `json:"isDone"`
	Priority    Priority   `json:"priority"`
	Category    Category   `json:"category"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Subtasks    []Subtask  `json:"subtasks"`
	Tags        []Tag      `json:"tags"`
	Progress    float64    `json:"progress"`
}

// Subtask is a nested checklist item belonging to exactly one task.
type Subtask struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ComputeProgress derives the completion percentage from subtask state.
// A task without subtasks has progress 0.
func (t *Task) ComputeProgress() float64 {
	if len(t.Subtasks) == 0 {
		return 0
	}
	done := 0
	for _, st := range t.Subtasks {
		if st.Completed {
			done++
		}
	}
	return float64(done) / float64(len(t.Subtasks)) * 100
}

// HasTag reports whether the task carries a tag with the given name.
// Matching is case-insensitive.
func (t *Task) HasTag(name string) bool {
	if name == "" {
		return false
	}
	for _, tag := range t.Tags {
		if strings.EqualFold(tag.Name, name) {
			return true
		}
	}
	return false
}

// FindSubtask returns the index of the subtask with the given id, or -1.
func (t *Task) FindSubtask(id string) int {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == id {
			return i
		}
	}
	return -1
}

// FindTag returns the index of the tag with the given id, or -1.
func (t *Task) FindTag(id string) int {
	for i := range t.Tags {
		if t.Tags[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the task. The copy shares no slices or
// pointers with the original.
func (t Task) Clone() Task {
	out := t
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	if t.Subtasks != nil {
		out.Subtasks = make([]Subtask, len(t.Subtasks))
		copy(out.Subtasks, t.Subtasks)
	}
	if t.Tags != nil {
		out.Tags = make([]Tag, len(t.Tags))
		copy(out.Tags, t.Tags)
	}
	return out
}

// Collection is the full ordered set of tasks held in memory.
// Insertion order is significant for the default sort.
type Collection []Task

// Find returns the index of the task with the given id, or -1.
func (c Collection) Find(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for i := range c {
		out[i] = c[i].Clone()
	}
	return out
}

// Counts returns the total and completed task counts.
func (c Collection) Counts() (total, completed int) {
	total = len(c)
	for i := range c {
		if c[i].Done {
			completed++
		}
	}
	return total, completed
}

// Draft is the not-yet-committed input for a new task.
type Draft struct {
	Title       string
	Description string
	Priority    Priority
	Category    Category
	DueDate     *time.Time
	Tags        []string
}

// NewDraft returns a draft with the default priority and category.
func NewDraft() Draft {
	return Draft{
		Priority: PriorityMedium,
		Category: DefaultCategory,
	}
}
