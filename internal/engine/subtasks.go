package engine

import (
	"github.com/taskdeck/taskdeck/internal/model"
)

// AddSubtask appends a new subtask to the task with the given id.
// Empty text is allowed: the UI creates blank subtasks that are edited
// in place.
func (e *Engine) AddSubtask(c model.Collection, taskID, text string) model.Collection {
	return e.update(c, taskID, func(t *model.Task) bool {
		now := e.now()
		t.Subtasks = append(t.Subtasks, model.Subtask{
			ID:        e.newID(),
			Text:      text,
			Completed: false,
			CreatedAt: now,
			UpdatedAt: now,
		})
		t.Progress = t.ComputeProgress()
		return true
	})
}

// EditSubtaskText replaces a subtask's text, stamping both the subtask
// and its parent task.
func (e *Engine) EditSubtaskText(c model.Collection, taskID, subtaskID, text string) model.Collection {
	return e.update(c, taskID, func(t *model.Task) bool {
		i := t.FindSubtask(subtaskID)
		if i < 0 {
			return false
		}
		t.Subtasks[i].Text = text
		t.Subtasks[i].UpdatedAt = e.now()
		return true
	})
}

// ToggleSubtask flips a subtask's completion flag and re-derives the
// parent's progress.
func (e *Engine) ToggleSubtask(c model.Collection, taskID, subtaskID string) model.Collection {
	return e.update(c, taskID, func(t *model.Task) bool {
		i := t.FindSubtask(subtaskID)
		if i < 0 {
			return false
		}
		t.Subtasks[i].Completed = !t.Subtasks[i].Completed
		t.Subtasks[i].UpdatedAt = e.now()
		t.Progress = t.ComputeProgress()
		return true
	})
}

// DeleteSubtask removes a subtask and re-derives the parent's progress.
func (e *Engine) DeleteSubtask(c model.Collection, taskID, subtaskID string) model.Collection {
	return e.update(c, taskID, func(t *model.Task) bool {
		i := t.FindSubtask(subtaskID)
		if i < 0 {
			return false
		}
		t.Subtasks = append(t.Subtasks[:i], t.Subtasks[i+1:]...)
		t.Progress = t.ComputeProgress()
		return true
	})
}
