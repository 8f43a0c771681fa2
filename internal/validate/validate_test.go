package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/theme"
	"github.com/taskdeck/taskdeck/internal/validate"
)

func TestTitle(t *testing.T) {
	assert.NoError(t, validate.Title("Buy milk"))
	assert.ErrorIs(t, validate.Title("   "), errors.ErrEmptyTitle)
	assert.Error(t, validate.Title(strings.Repeat("x", validate.MaxTitleLength+1)))
	assert.NoError(t, validate.Title(strings.Repeat("x", validate.MaxTitleLength)))
}

func TestDescription(t *testing.T) {
	assert.NoError(t, validate.Description(""))
	assert.Error(t, validate.Description(strings.Repeat("x", validate.MaxDescriptionLength+1)))
}

func TestTagName(t *testing.T) {
	assert.NoError(t, validate.TagName("work"))
	assert.ErrorIs(t, validate.TagName(""), errors.ErrEmptyTagName)
	assert.Error(t, validate.TagName(strings.Repeat("x", validate.MaxTagNameLength+1)))
}

func TestPriority(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		p, err := validate.Priority(" HIGH ")
		require.NoError(t, err)
		assert.Equal(t, model.PriorityHigh, p)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := validate.Priority("urgent")
		assert.ErrorIs(t, err, errors.ErrInvalidPriority)
	})
}

func TestCategory(t *testing.T) {
	c, err := validate.Category("Work")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryWork, c)

	_, err = validate.Category("misc")
	assert.ErrorIs(t, err, errors.ErrInvalidCategory)
}

func TestStatus(t *testing.T) {
	s, err := validate.Status("Active")
	require.NoError(t, err)
	assert.Equal(t, query.StatusActive, s)

	_, err = validate.Status("done")
	assert.ErrorIs(t, err, errors.ErrInvalidStatus)
}

func TestSortField(t *testing.T) {
	f, err := validate.SortField("dueDate")
	require.NoError(t, err)
	assert.Equal(t, query.SortByDueDate, f)

	_, err = validate.SortField("deadline")
	assert.ErrorIs(t, err, errors.ErrInvalidSort)
}

func TestEmail(t *testing.T) {
	assert.NoError(t, validate.Email("user@example.com"))
	assert.NoError(t, validate.Email("first.last+tag@sub.example.org"))

	for _, addr := range []string{"", "plain", "user@", "@example.com", "a b@example.com", "user@example"} {
		assert.ErrorIs(t, validate.Email(addr), errors.ErrInvalidEmail, addr)
	}
}

func TestScheme(t *testing.T) {
	s, err := validate.Scheme("Forest")
	require.NoError(t, err)
	assert.Equal(t, theme.Forest, s)

	_, err = validate.Scheme("neon")
	assert.ErrorIs(t, err, errors.ErrInvalidTheme)
}

func TestHexColor(t *testing.T) {
	assert.NoError(t, validate.HexColor(""))
	assert.NoError(t, validate.HexColor("#FF5733"))
	assert.NoError(t, validate.HexColor("#a1b2c3"))
	assert.Error(t, validate.HexColor("FF5733"))
	assert.Error(t, validate.HexColor("#FFF"))
	assert.Error(t, validate.HexColor("#GG5733"))
}
