// Package errors provides consistent error types for the Taskdeck CLI.
// It defines two categories: UserError (fixable by the user) and
// SystemError (environment or storage issues). Validation failures are
// UserErrors reported inline; persistence failures are SystemErrors
// surfaced as warnings but never fatal.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrTagNotFound     = errors.New("tag not found")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrEmptyTagName    = errors.New("tag name cannot be empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDueDate  = errors.New("invalid due date")
	ErrInvalidStatus   = errors.New("invalid status filter")
	ErrInvalidSort     = errors.New("invalid sort field")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidTheme    = errors.New("invalid color scheme")
	ErrInvalidImport   = errors.New("invalid import data format")
	ErrInvalidShare    = errors.New("invalid share payload")
	ErrAmbiguousID     = errors.New("id prefix matches more than one item")
)

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrTaskNotFound:    "Use 'taskdeck list' to see task ids. A unique id prefix is enough.",
	ErrSubtaskNotFound: "Expand the task with 'taskdeck list --search ...' to see subtask ids.",
	ErrTagNotFound:     "Tags can be removed by id or by name.",
	ErrEmptyTitle:      "Provide a non-empty title, e.g. 'taskdeck add \"Buy milk\"'.",
	ErrEmptyTagName:    "Provide a non-empty tag name.",
	ErrInvalidPriority: "Use one of: low, medium, high.",
	ErrInvalidCategory: "Use one of: work, personal, shopping, health, other.",
	ErrInvalidDueDate:  "Try formats like 'tomorrow', 'next friday', or '2026-01-15'.",
	ErrInvalidStatus:   "Use one of: all, active, completed.",
	ErrInvalidSort:     "Use one of: title, priority, dueDate, createdAt, updatedAt.",
	ErrInvalidEmail:    "Provide an address like 'name@example.com'.",
	ErrInvalidTheme:    "Use one of: sunset, ocean, forest, lavender.",
	ErrInvalidImport:   "Import data must be a JSON object with a 'tasks' array, as produced by 'taskdeck export'.",
	ErrInvalidShare:    "Pass a link produced by 'taskdeck share', or just its encoded payload.",
	ErrAmbiguousID:     "Give more characters of the id to disambiguate.",
}

// UserError represents an error that the user can fix.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// SystemError represents a system-level error that the user cannot
// directly fix, such as a failed database write.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{Message: message, Cause: cause}
}

// AsUserError returns the UserError in err's chain, if any.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// IsUserError returns true if err is or wraps a UserError.
func IsUserError(err error) bool {
	_, ok := AsUserError(err)
	return ok
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}
	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}
	return ""
}

// Format renders an error with its suggestion, if one exists.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if s := GetSuggestion(err); s != "" {
		return msg + "\n  " + s
	}
	return msg
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
