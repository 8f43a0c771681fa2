package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/errors"
)

func TestUserError(t *testing.T) {
	t.Run("message without field context", func(t *testing.T) {
		err := errors.NewUserError("Title too long", "Shorten the title")
		assert.Equal(t, "Title too long", err.Error())
	})

	t.Run("message with field context includes the value", func(t *testing.T) {
		err := errors.NewUserErrorWithField("priority", "urgent", "Invalid priority", "Use low, medium or high")
		assert.Equal(t, "Invalid priority: 'urgent'", err.Error())
	})

	t.Run("detected through a wrap", func(t *testing.T) {
		err := fmt.Errorf("validating input: %w", errors.NewUserError("bad", "fix it"))
		assert.True(t, errors.IsUserError(err))

		ue, ok := errors.AsUserError(err)
		require.True(t, ok)
		assert.Equal(t, "bad", ue.Message)
	})
}

func TestSystemError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := errors.NewSystemError("failed to save tasks", cause)

	assert.Equal(t, "failed to save tasks", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.IsUserError(err))
}

func TestGetSuggestion(t *testing.T) {
	t.Run("known sentinel", func(t *testing.T) {
		assert.NotEmpty(t, errors.GetSuggestion(errors.ErrTaskNotFound))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := fmt.Errorf("resolving id: %w", errors.ErrAmbiguousID)
		assert.Equal(t, errors.Suggestions[errors.ErrAmbiguousID], errors.GetSuggestion(err))
	})

	t.Run("user error carries its own suggestion", func(t *testing.T) {
		err := errors.NewUserError("bad input", "try again")
		assert.Equal(t, "try again", errors.GetSuggestion(err))
	})

	t.Run("unknown errors yield nothing", func(t *testing.T) {
		assert.Empty(t, errors.GetSuggestion(fmt.Errorf("mystery")))
		assert.Empty(t, errors.GetSuggestion(nil))
	})
}

func TestFormat(t *testing.T) {
	t.Run("appends the suggestion on its own line", func(t *testing.T) {
		out := errors.Format(errors.ErrEmptyTitle)
		assert.Contains(t, out, errors.ErrEmptyTitle.Error())
		assert.Contains(t, out, errors.Suggestions[errors.ErrEmptyTitle])
	})

	t.Run("plain message when no suggestion exists", func(t *testing.T) {
		assert.Equal(t, "mystery", errors.Format(fmt.Errorf("mystery")))
	})

	t.Run("nil is empty", func(t *testing.T) {
		assert.Empty(t, errors.Format(nil))
	})
}
