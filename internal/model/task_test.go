package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskdeck/taskdeck/internal/model"
)

func TestTask_ComputeProgress(t *testing.T) {
	t.Run("no subtasks means zero progress", func(t *testing.T) {
		task := model.Task{}
		assert.Equal(t, 0.0, task.ComputeProgress())
	})

	t.Run("half completed", func(t *testing.T) {
		task := model.Task{Subtasks: []model.Subtask{
			{ID: "a", Completed: true},
			{ID: "b", Completed: false},
		}}
		assert.Equal(t, 50.0, task.ComputeProgress())
	})

	t.Run("all completed", func(t *testing.T) {
		task := model.Task{Subtasks: []model.Subtask{
			{ID: "a", Completed: true},
			{ID: "b", Completed: true},
			{ID: "c", Completed: true},
		}}
		assert.Equal(t, 100.0, task.ComputeProgress())
	})

	t.Run("fractional thirds", func(t *testing.T) {
		task := model.Task{Subtasks: []model.Subtask{
			{ID: "a", Completed: true},
			{ID: "b"},
			{ID: "c"},
		}}
		assert.InDelta(t, 33.33, task.ComputeProgress(), 0.01)
	})
}

func TestTask_HasTag(t *testing.T) {
	task := model.Task{Tags: []model.Tag{
		{ID: "1", Name: "Work"},
		{ID: "2", Name: "urgent"},
	}}

	t.Run("matches case-insensitively", func(t *testing.T) {
		assert.True(t, task.HasTag("work"))
		assert.True(t, task.HasTag("WORK"))
		assert.True(t, task.HasTag("urgent"))
	})

	t.Run("misses absent names", func(t *testing.T) {
		assert.False(t, task.HasTag("home"))
	})

	t.Run("empty name never matches", func(t *testing.T) {
		assert.False(t, task.HasTag(""))
	})
}

func TestTask_Clone(t *testing.T) {
	due := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	original := model.Task{
		ID:      "t1",
		Title:   "original",
		DueDate: &due,
		Subtasks: []model.Subtask{
			{ID: "s1", Text: "step one"},
		},
		Tags: []model.Tag{
			{ID: "g1", Name: "work"},
		},
	}

	clone := original.Clone()
	clone.Title = "changed"
	clone.Subtasks[0].Text = "mutated"
	clone.Tags[0].Name = "mutated"
	*clone.DueDate = clone.DueDate.AddDate(0, 0, 7)

	assert.Equal(t, "original", original.Title)
	assert.Equal(t, "step one", original.Subtasks[0].Text)
	assert.Equal(t, "work", original.Tags[0].Name)
	assert.Equal(t, due, *original.DueDate)
}

func TestCollection(t *testing.T) {
	c := model.Collection{
		{ID: "a", Done: true},
		{ID: "b"},
		{ID: "c", Done: true},
	}

	t.Run("find by id", func(t *testing.T) {
		assert.Equal(t, 1, c.Find("b"))
		assert.Equal(t, -1, c.Find("missing"))
	})

	t.Run("counts totals and completed", func(t *testing.T) {
		total, completed := c.Counts()
		assert.Equal(t, 3, total)
		assert.Equal(t, 2, completed)
	})

	t.Run("clone is independent", func(t *testing.T) {
		clone := c.Clone()
		clone[0].ID = "mutated"
		assert.Equal(t, "a", c[0].ID)
	})
}

func TestTagColor(t *testing.T) {
	t.Run("same name always maps to the same color", func(t *testing.T) {
		assert.Equal(t, model.TagColor("work"), model.TagColor("work"))
		assert.Equal(t, model.TagColor("urgent"), model.TagColor("urgent"))
	})

	t.Run("color is a hex code", func(t *testing.T) {
		color := model.TagColor("anything")
		assert.Len(t, color, 7)
		assert.Equal(t, byte('#'), color[0])
	})
}

func TestPriority(t *testing.T) {
	t.Run("ordinals order low to high", func(t *testing.T) {
		assert.Less(t, model.PriorityLow.Ordinal(), model.PriorityMedium.Ordinal())
		assert.Less(t, model.PriorityMedium.Ordinal(), model.PriorityHigh.Ordinal())
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, model.PriorityHigh.Valid())
		assert.False(t, model.Priority("urgent").Valid())
	})
}

func TestCategory(t *testing.T) {
	assert.True(t, model.CategoryWork.Valid())
	assert.False(t, model.Category("misc").Valid())
	assert.Equal(t, model.CategoryOther, model.DefaultCategory)
}

func TestNewDraft(t *testing.T) {
	d := model.NewDraft()
	assert.Equal(t, model.PriorityMedium, d.Priority)
	assert.Equal(t, model.DefaultCategory, d.Category)
}
