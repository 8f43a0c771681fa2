package storage

import (
	"encoding/json"

	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/model"
)

// KeyTasks is the fixed key the whole collection is stored under.
const KeyTasks = "tasks"

// TaskStore persists the task collection as a single JSON blob.
// There is no partial or incremental persistence: Save overwrites the
// whole value on every call.
type TaskStore struct {
	db *DB
}

// NewTaskStore creates a task store over the given database.
func NewTaskStore(db *DB) *TaskStore {
	return &TaskStore{db: db}
}

// Load returns the previously saved collection. A missing key or an
// unreadable blob yields an empty collection; a corrupt store must
// never take the application down.
func (s *TaskStore) Load() model.Collection {
	data, err := s.db.GetBytes(KeyTasks)
	if err != nil {
		if !IsErrKeyNotFound(err) {
			logging.Warn("failed to read stored tasks, starting empty", "error", err)
		}
		return model.Collection{}
	}

	var c model.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		logging.Warn("stored tasks are unreadable, starting empty", "error", err)
		return model.Collection{}
	}
	return c
}

// Save serializes the full collection and overwrites the stored value.
func (s *TaskStore) Save(c model.Collection) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.db.SetBytes(KeyTasks, data)
}
