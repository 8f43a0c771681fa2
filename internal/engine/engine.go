// Package engine implements the mutation operations over a task collection.
//
// Every operation takes the current collection and returns a new one,
// never modifying its input. Unknown ids degrade to no-ops that return
// the input collection unchanged. Each applied mutation stamps the
// affected task's UpdatedAt with the engine clock.
package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/model"
)

// Engine applies mutations to a task collection.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the engine clock. Tests use this to supply
// deterministic timestamps.
func WithClock(fn func() time.Time) Option {
	return func(e *Engine) { e.now = fn }
}

// WithIDs replaces the id generator.
func WithIDs(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// New creates an engine with the real clock and UUID ids.
func New(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// update applies fn to the task with the given id on a cloned collection.
// If the task is missing, or fn reports that nothing changed, the input
// collection is returned unchanged.
func (e *Engine) update(c model.Collection, id string, fn func(t *model.Task) bool) model.Collection {
	i := c.Find(id)
	if i < 0 {
		return c
	}
	out := c.Clone()
	if !fn(&out[i]) {
		return c
	}
	out[i].UpdatedAt = e.now()
	return out
}

// AddTask appends a new task built from the draft. A draft whose title
// is empty after trimming is a silent no-op.
func (e *Engine) AddTask(c model.Collection, d model.Draft) model.Collection {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return c
	}

	priority := d.Priority
	if !priority.Valid() {
		priority = model.PriorityMedium
	}
	category := d.Category
	if !category.Valid() {
		category = model.DefaultCategory
	}

	now := e.now()
	task := model.Task{
		ID:          e.newID(),
		Title:       title,
		Description: strings.TrimSpace(d.Description),
		Done:        false,
		Priority:    priority,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
		Subtasks:    []model.Subtask{},
		Tags:        []model.Tag{},
	}
	if d.DueDate != nil {
		due := *d.DueDate
		task.DueDate = &due
	}
	for _, name := range d.Tags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		task.Tags = append(task.Tags, model.Tag{
			ID:    e.newID(),
			Name:  name,
			Color: model.TagColor(name),
		})
	}

	out := c.Clone()
	return append(out, task)
}

// ToggleTask flips the completion flag of the task with the given id.
func (e *Engine) ToggleTask(c model.Collection, id string) model.Collection {
	return e.update(c, id, func(t *model.Task) bool {
		t.Done = !t.Done
		return true
	})
}

// DeleteTask removes the task with the given id. Its subtasks and tags
// go with it.
func (e *Engine) DeleteTask(c model.Collection, id string) model.Collection {
	i := c.Find(id)
	if i < 0 {
		return c
	}
	out := make(model.Collection, 0, len(c)-1)
	for j := range c {
		if j == i {
			continue
		}
		out = append(out, c[j].Clone())
	}
	return out
}

// EditTask replaces the task's title and description. A title that is
// empty after trimming leaves the existing title in place; the
// description is always replaced.
func (e *Engine) EditTask(c model.Collection, id, title, description string) model.Collection {
	return e.update(c, id, func(t *model.Task) bool {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			t.Title = trimmed
		}
		t.Description = strings.TrimSpace(description)
		return true
	})
}

// SetPriority replaces the task's priority.
func (e *Engine) SetPriority(c model.Collection, id string, p model.Priority) model.Collection {
	if !p.Valid() {
		return c
	}
	return e.update(c, id, func(t *model.Task) bool {
		t.Priority = p
		return true
	})
}

// SetCategory replaces the task's category.
func (e *Engine) SetCategory(c model.Collection, id string, cat model.Category) model.Collection {
	if !cat.Valid() {
		return c
	}
	return e.update(c, id, func(t *model.Task) bool {
		t.Category = cat
		return true
	})
}

// SetDueDate replaces the task's due date. A nil due date clears it.
func (e *Engine) SetDueDate(c model.Collection, id string, due *time.Time) model.Collection {
	return e.update(c, id, func(t *model.Task) bool {
		if due == nil {
			t.DueDate = nil
			return true
		}
		d := *due
		t.DueDate = &d
		return true
	})
}
