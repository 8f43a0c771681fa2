// Package validate provides input validation helpers for the Taskdeck
// CLI. Validation failures are UserErrors: reported inline, never
// fatal, and the corresponding operation is simply not applied.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/query"
	"github.com/taskdeck/taskdeck/internal/theme"
)

const (
	// MaxTitleLength is the maximum length for a task title.
	MaxTitleLength = 256
	// MaxDescriptionLength is the maximum length for a description.
	MaxDescriptionLength = 4096
	// MaxTagNameLength is the maximum length for a tag name.
	MaxTagNameLength = 64
)

// emailRegex matches the same loose shape the share dialog accepts.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Title validates a task title.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserErrorWithField("title", title,
			"Title too long",
			"Titles must be 256 characters or fewer")
	}
	return nil
}

// Description validates a task description.
func Description(desc string) error {
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return errors.NewUserError(
			"Description too long",
			"Descriptions must be 4096 characters or fewer")
	}
	return nil
}

// TagName validates a tag name.
func TagName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ErrEmptyTagName
	}
	if utf8.RuneCountInString(name) > MaxTagNameLength {
		return errors.NewUserErrorWithField("tag", name,
			"Tag name too long",
			"Tag names must be 64 characters or fewer")
	}
	return nil
}

// Priority validates a priority value.
func Priority(value string) (model.Priority, error) {
	p := model.Priority(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", errors.ErrInvalidPriority
	}
	return p, nil
}

// Category validates a category value.
func Category(value string) (model.Category, error) {
	c := model.Category(strings.ToLower(strings.TrimSpace(value)))
	if !c.Valid() {
		return "", errors.ErrInvalidCategory
	}
	return c, nil
}

// Status validates a completion-visibility filter value.
func Status(value string) (query.Status, error) {
	s := query.Status(strings.ToLower(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", errors.ErrInvalidStatus
	}
	return s, nil
}

// SortField validates a sort field name.
func SortField(value string) (query.SortField, error) {
	f := query.SortField(strings.TrimSpace(value))
	if !f.Valid() {
		return "", errors.ErrInvalidSort
	}
	return f, nil
}

// Email validates a share recipient address.
func Email(addr string) error {
	if !emailRegex.MatchString(addr) {
		return errors.ErrInvalidEmail
	}
	return nil
}

// Scheme validates a color scheme name.
func Scheme(value string) (theme.Scheme, error) {
	s := theme.Scheme(strings.ToLower(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", errors.ErrInvalidTheme
	}
	return s, nil
}

// HexColor validates a hex color code.
func HexColor(color string) error {
	if color == "" {
		return nil // Empty is allowed (no color)
	}
	if !strings.HasPrefix(color, "#") || len(color) != 7 {
		return errors.NewUserErrorWithField("color", color,
			"Invalid color format",
			"Use 6-digit hex format like '#FF5733'")
	}
	for _, c := range color[1:] {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return errors.NewUserErrorWithField("color", color,
				"Invalid hex character in color",
				"Use only hex digits (0-9, A-F)")
		}
	}
	return nil
}
