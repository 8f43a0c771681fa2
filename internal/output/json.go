package output

import (
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/stats"
)

// JSONFormatter provides JSON output.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// TasksResponse is the JSON shape for task listings.
type TasksResponse struct {
	Tasks model.Collection `json:"tasks"`
	Count int              `json:"count"`
}

// PrintTasks outputs a task listing as JSON.
func (j *JSONFormatter) PrintTasks(tasks model.Collection) error {
	return j.JSON(TasksResponse{Tasks: tasks, Count: len(tasks)})
}

// PrintTask outputs a single task as JSON.
func (j *JSONFormatter) PrintTask(t *model.Task) error {
	return j.JSON(t)
}

// PrintStats outputs a statistics summary as JSON.
func (j *JSONFormatter) PrintStats(s stats.Summary) error {
	return j.JSON(s)
}

// MessageResponse is the JSON shape for status messages.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PrintMessage outputs a status message as JSON.
func (j *JSONFormatter) PrintMessage(status, message string) error {
	return j.JSON(MessageResponse{Status: status, Message: message})
}

// ErrorResponse is the JSON shape for errors.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError outputs an error as JSON.
func (j *JSONFormatter) PrintError(message, suggestion string) error {
	return j.JSON(ErrorResponse{Status: "error", Error: message, Suggestion: suggestion})
}
