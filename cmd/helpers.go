package cmd

import (
	"strings"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/model"
)

// resolveTaskID resolves a full id or a unique id prefix to a task id.
// The engine itself only accepts exact ids; prefix convenience lives
// here in the CLI layer.
func resolveTaskID(c model.Collection, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.ErrTaskNotFound
	}
	if c.Find(ref) >= 0 {
		return ref, nil
	}

	match := ""
	for i := range c {
		if strings.HasPrefix(c[i].ID, ref) {
			if match != "" {
				return "", errors.ErrAmbiguousID
			}
			match = c[i].ID
		}
	}
	if match == "" {
		return "", errors.ErrTaskNotFound
	}
	return match, nil
}

// resolveSubtaskID resolves a full id or unique prefix within a task.
func resolveSubtaskID(t *model.Task, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.ErrSubtaskNotFound
	}
	if t.FindSubtask(ref) >= 0 {
		return ref, nil
	}

	match := ""
	for i := range t.Subtasks {
		if strings.HasPrefix(t.Subtasks[i].ID, ref) {
			if match != "" {
				return "", errors.ErrAmbiguousID
			}
			match = t.Subtasks[i].ID
		}
	}
	if match == "" {
		return "", errors.ErrSubtaskNotFound
	}
	return match, nil
}

// saveCollection writes the collection through to the store. A failed
// write is a warning, not a rollback: the in-memory state stays
// authoritative for the session.
func saveCollection(c model.Collection) {
	if err := ctx.Tasks.Save(c); err != nil {
		if ctx.IsJSON() {
			return
		}
		ctx.CLIFormatter().Warning("could not persist changes: " + err.Error())
	}
}

// printSaved reports a mutation result in the active format.
func printSaved(status, message string) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintMessage(status, message)
	}
	ctx.CLIFormatter().Success(message)
	return nil
}
