package engine

import (
	"strings"

	"github.com/taskdeck/taskdeck/internal/model"
)

// AddTag attaches a tag to the task. A name that is empty after
// trimming is a silent no-op. Duplicate names on the same task are
// permitted; each gets its own id.
func (e *Engine) AddTag(c model.Collection, taskID, name string) model.Collection {
	name = strings.TrimSpace(name)
	if name == "" {
		return c
	}
	return e.update(c, taskID, func(t *model.Task) bool {
		t.Tags = append(t.Tags, model.Tag{
			ID:    e.newID(),
			Name:  name,
			Color: model.TagColor(name),
		})
		return true
	})
}

// RemoveTag detaches the tag with the given id from the task.
func (e *Engine) RemoveTag(c model.Collection, taskID, tagID string) model.Collection {
	return e.update(c, taskID, func(t *model.Task) bool {
		i := t.FindTag(tagID)
		if i < 0 {
			return false
		}
		t.Tags = append(t.Tags[:i], t.Tags[i+1:]...)
		return true
	})
}

// RemoveTagByName detaches the first tag whose name matches
// (case-insensitive).
func (e *Engine) RemoveTagByName(c model.Collection, taskID, name string) model.Collection {
	return e.update(c, taskID, func(t *model.Task) bool {
		for i := range t.Tags {
			if strings.EqualFold(t.Tags[i].Name, name) {
				t.Tags = append(t.Tags[:i], t.Tags[i+1:]...)
				return true
			}
		}
		return false
	})
}
