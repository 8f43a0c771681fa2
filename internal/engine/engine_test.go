package engine_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/engine"
	"github.com/taskdeck/taskdeck/internal/model"
)

var baseTime = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

// newTestEngine returns an engine with a frozen clock and sequential ids
// (id-1, id-2, ...).
func newTestEngine(now time.Time) *engine.Engine {
	n := 0
	return engine.New(
		engine.WithClock(func() time.Time { return now }),
		engine.WithIDs(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
}

func TestEngine_AddTask(t *testing.T) {
	t.Run("creates a task with defaults and stamps", func(t *testing.T) {
		e := newTestEngine(baseTime)
		d := model.NewDraft()
		d.Title = "  Buy milk  "

		out := e.AddTask(model.Collection{}, d)
		require.Len(t, out, 1)

		task := out[0]
		assert.Equal(t, "id-1", task.ID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.False(t, task.Done)
		assert.Equal(t, model.PriorityMedium, task.Priority)
		assert.Equal(t, model.CategoryOther, task.Category)
		assert.Equal(t, baseTime, task.CreatedAt)
		assert.Equal(t, baseTime, task.UpdatedAt)
		assert.NotNil(t, task.Subtasks)
		assert.NotNil(t, task.Tags)
	})

	t.Run("blank title is a no-op", func(t *testing.T) {
		e := newTestEngine(baseTime)
		d := model.NewDraft()
		d.Title = "   "

		in := model.Collection{{ID: "existing"}}
		out := e.AddTask(in, d)
		assert.Equal(t, in, out)
	})

	t.Run("invalid priority and category fall back to defaults", func(t *testing.T) {
		e := newTestEngine(baseTime)
		d := model.Draft{Title: "x", Priority: "urgent", Category: "misc"}

		out := e.AddTask(model.Collection{}, d)
		require.Len(t, out, 1)
		assert.Equal(t, model.PriorityMedium, out[0].Priority)
		assert.Equal(t, model.CategoryOther, out[0].Category)
	})

	t.Run("builds tags from draft names with deterministic colors", func(t *testing.T) {
		e := newTestEngine(baseTime)
		d := model.NewDraft()
		d.Title = "tagged"
		d.Tags = []string{"work", " urgent ", "  "}

		out := e.AddTask(model.Collection{}, d)
		require.Len(t, out, 1)
		require.Len(t, out[0].Tags, 2)
		assert.Equal(t, "work", out[0].Tags[0].Name)
		assert.Equal(t, "urgent", out[0].Tags[1].Name)
		assert.Equal(t, model.TagColor("work"), out[0].Tags[0].Color)
	})

	t.Run("does not mutate the input collection", func(t *testing.T) {
		e := newTestEngine(baseTime)
		in := model.Collection{{ID: "a", Title: "before"}}
		d := model.NewDraft()
		d.Title = "new"

		_ = e.AddTask(in, d)
		assert.Len(t, in, 1)
		assert.Equal(t, "before", in[0].Title)
	})
}

func TestEngine_ToggleTask(t *testing.T) {
	e := newTestEngine(baseTime)
	in := model.Collection{{ID: "a", CreatedAt: baseTime.Add(-time.Hour)}}

	t.Run("flips completion and stamps updatedAt", func(t *testing.T) {
		out := e.ToggleTask(in, "a")
		require.Len(t, out, 1)
		assert.True(t, out[0].Done)
		assert.Equal(t, baseTime, out[0].UpdatedAt)
		assert.False(t, in[0].Done)
	})

	t.Run("double toggle restores completion state", func(t *testing.T) {
		out := e.ToggleTask(e.ToggleTask(in, "a"), "a")
		assert.Equal(t, in[0].Done, out[0].Done)
	})

	t.Run("unknown id returns the input unchanged", func(t *testing.T) {
		out := e.ToggleTask(in, "nope")
		assert.Equal(t, in, out)
	})
}

func TestEngine_DeleteTask(t *testing.T) {
	e := newTestEngine(baseTime)
	in := model.Collection{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	t.Run("removes only the named task", func(t *testing.T) {
		out := e.DeleteTask(in, "b")
		require.Len(t, out, 2)
		assert.Equal(t, "a", out[0].ID)
		assert.Equal(t, "c", out[1].ID)
		assert.Len(t, in, 3)
	})

	t.Run("unknown id returns the input unchanged", func(t *testing.T) {
		out := e.DeleteTask(in, "nope")
		assert.Equal(t, in, out)
	})
}

func TestEngine_EditTask(t *testing.T) {
	e := newTestEngine(baseTime)
	in := model.Collection{{ID: "a", Title: "old title", Description: "old desc"}}

	t.Run("replaces title and description", func(t *testing.T) {
		out := e.EditTask(in, "a", " new title ", " new desc ")
		assert.Equal(t, "new title", out[0].Title)
		assert.Equal(t, "new desc", out[0].Description)
		assert.Equal(t, baseTime, out[0].UpdatedAt)
	})

	t.Run("blank title keeps the old title", func(t *testing.T) {
		out := e.EditTask(in, "a", "   ", "still replaced")
		assert.Equal(t, "old title", out[0].Title)
		assert.Equal(t, "still replaced", out[0].Description)
	})
}

func TestEngine_SetPriority(t *testing.T) {
	e := newTestEngine(baseTime)
	in := model.Collection{{ID: "a", Priority: model.PriorityLow}}

	t.Run("sets a valid priority", func(t *testing.T) {
		out := e.SetPriority(in, "a", model.PriorityHigh)
		assert.Equal(t, model.PriorityHigh, out[0].Priority)
	})

	t.Run("invalid priority is a no-op", func(t *testing.T) {
		out := e.SetPriority(in, "a", "urgent")
		assert.Equal(t, in, out)
	})
}

func TestEngine_SetDueDate(t *testing.T) {
	e := newTestEngine(baseTime)
	due := time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC)
	in := model.Collection{{ID: "a"}}

	t.Run("sets a due date", func(t *testing.T) {
		out := e.SetDueDate(in, "a", &due)
		require.NotNil(t, out[0].DueDate)
		assert.Equal(t, due, *out[0].DueDate)
	})

	t.Run("nil clears the due date", func(t *testing.T) {
		withDue := e.SetDueDate(in, "a", &due)
		out := e.SetDueDate(withDue, "a", nil)
		assert.Nil(t, out[0].DueDate)
	})
}

func TestEngine_Subtasks(t *testing.T) {
	t.Run("add refreshes progress", func(t *testing.T) {
		e := newTestEngine(baseTime)
		in := model.Collection{{ID: "a"}}

		out := e.AddSubtask(in, "a", "step one")
		require.Len(t, out[0].Subtasks, 1)
		assert.Equal(t, "step one", out[0].Subtasks[0].Text)
		assert.False(t, out[0].Subtasks[0].Completed)
		assert.Equal(t, 0.0, out[0].Progress)
	})

	t.Run("empty text is allowed", func(t *testing.T) {
		e := newTestEngine(baseTime)
		out := e.AddSubtask(model.Collection{{ID: "a"}}, "a", "")
		require.Len(t, out[0].Subtasks, 1)
	})

	t.Run("toggle updates progress and stamps both records", func(t *testing.T) {
		e := newTestEngine(baseTime)
		c := model.Collection{{ID: "a"}}
		c = e.AddSubtask(c, "a", "one")
		c = e.AddSubtask(c, "a", "two")

		out := e.ToggleSubtask(c, "a", c[0].Subtasks[0].ID)
		assert.True(t, out[0].Subtasks[0].Completed)
		assert.Equal(t, 50.0, out[0].Progress)
		assert.Equal(t, baseTime, out[0].Subtasks[0].UpdatedAt)
		assert.Equal(t, baseTime, out[0].UpdatedAt)
	})

	t.Run("delete re-derives progress", func(t *testing.T) {
		e := newTestEngine(baseTime)
		c := model.Collection{{ID: "a"}}
		c = e.AddSubtask(c, "a", "one")
		c = e.AddSubtask(c, "a", "two")
		c = e.ToggleSubtask(c, "a", c[0].Subtasks[0].ID)
		require.Equal(t, 50.0, c[0].Progress)

		out := e.DeleteSubtask(c, "a", c[0].Subtasks[1].ID)
		require.Len(t, out[0].Subtasks, 1)
		assert.Equal(t, 100.0, out[0].Progress)
	})

	t.Run("edit replaces text", func(t *testing.T) {
		e := newTestEngine(baseTime)
		c := e.AddSubtask(model.Collection{{ID: "a"}}, "a", "draft")
		out := e.EditSubtaskText(c, "a", c[0].Subtasks[0].ID, "final")
		assert.Equal(t, "final", out[0].Subtasks[0].Text)
	})

	t.Run("unknown subtask id returns the input unchanged", func(t *testing.T) {
		e := newTestEngine(baseTime)
		in := e.AddSubtask(model.Collection{{ID: "a"}}, "a", "one")
		out := e.ToggleSubtask(in, "a", "nope")
		assert.Equal(t, in, out)
	})
}

func TestEngine_Tags(t *testing.T) {
	t.Run("add trims and assigns id and color", func(t *testing.T) {
		e := newTestEngine(baseTime)
		out := e.AddTag(model.Collection{{ID: "a"}}, "a", " work ")
		require.Len(t, out[0].Tags, 1)
		assert.Equal(t, "work", out[0].Tags[0].Name)
		assert.NotEmpty(t, out[0].Tags[0].ID)
		assert.Equal(t, model.TagColor("work"), out[0].Tags[0].Color)
	})

	t.Run("blank name is a no-op", func(t *testing.T) {
		e := newTestEngine(baseTime)
		in := model.Collection{{ID: "a"}}
		out := e.AddTag(in, "a", "   ")
		assert.Equal(t, in, out)
	})

	t.Run("duplicate names each get their own id", func(t *testing.T) {
		e := newTestEngine(baseTime)
		c := e.AddTag(model.Collection{{ID: "a"}}, "a", "work")
		c = e.AddTag(c, "a", "work")
		require.Len(t, c[0].Tags, 2)
		assert.NotEqual(t, c[0].Tags[0].ID, c[0].Tags[1].ID)
	})

	t.Run("remove by id", func(t *testing.T) {
		e := newTestEngine(baseTime)
		c := e.AddTag(model.Collection{{ID: "a"}}, "a", "work")
		out := e.RemoveTag(c, "a", c[0].Tags[0].ID)
		assert.Empty(t, out[0].Tags)
	})

	t.Run("remove by name matches case-insensitively", func(t *testing.T) {
		e := newTestEngine(baseTime)
		c := e.AddTag(model.Collection{{ID: "a"}}, "a", "Work")
		out := e.RemoveTagByName(c, "a", "WORK")
		assert.Empty(t, out[0].Tags)
	})

	t.Run("removing an absent tag returns the input unchanged", func(t *testing.T) {
		e := newTestEngine(baseTime)
		in := e.AddTag(model.Collection{{ID: "a"}}, "a", "work")
		out := e.RemoveTag(in, "a", "nope")
		assert.Equal(t, in, out)
	})
}
