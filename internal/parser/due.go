// Package parser turns natural-language date input into due dates.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/taskdeck/taskdeck/internal/errors"
)

// ParseDueDate parses a due date expression relative to now.
// Supports natural language ("tomorrow", "next friday", "in 3 days")
// as well as explicit dates ("2026-01-15"). Due dates carry no time of
// day; the result is truncated to midnight in now's location.
func ParseDueDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, errors.ErrInvalidDueDate
	}

	switch strings.ToLower(input) {
	case "today":
		return dayOf(now), nil
	case "tomorrow":
		return dayOf(now).AddDate(0, 0, 1), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.ErrInvalidDueDate
	}

	return dayOf(result.Time.In(now.Location())), nil
}

// dayOf truncates a time to its calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
