package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/storage"
	"github.com/taskdeck/taskdeck/internal/theme"
)

func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestDB_Bytes(t *testing.T) {
	db := setupTestDB(t)

	t.Run("set then get round trip", func(t *testing.T) {
		require.NoError(t, db.SetBytes("key", []byte("value")))
		got, err := db.GetBytes("key")
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), got)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := db.GetBytes("absent")
		assert.True(t, storage.IsErrKeyNotFound(err))
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, db.SetBytes("key", []byte("first")))
		require.NoError(t, db.SetBytes("key", []byte("second")))
		got, err := db.GetBytes("key")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), got)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		require.NoError(t, db.SetBytes("gone", []byte("x")))
		require.NoError(t, db.Delete("gone"))
		_, err := db.GetBytes("gone")
		assert.True(t, storage.IsErrKeyNotFound(err))
	})
}

func TestTaskStore(t *testing.T) {
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("save then load round trip", func(t *testing.T) {
		store := storage.NewTaskStore(setupTestDB(t))

		c := model.Collection{
			{
				ID: "t1", Title: "persisted", Priority: model.PriorityHigh,
				Category: model.CategoryWork, DueDate: &due,
				CreatedAt: due.Add(-48 * time.Hour), UpdatedAt: due.Add(-24 * time.Hour),
				Subtasks: []model.Subtask{{ID: "s1", Text: "step", Completed: true}},
				Tags:     []model.Tag{{ID: "g1", Name: "work", Color: "#4ECDC4"}},
			},
		}
		require.NoError(t, store.Save(c))

		loaded := store.Load()
		require.Len(t, loaded, 1)
		assert.Equal(t, "t1", loaded[0].ID)
		assert.Equal(t, "persisted", loaded[0].Title)
		require.NotNil(t, loaded[0].DueDate)
		assert.True(t, due.Equal(*loaded[0].DueDate))
		assert.Equal(t, "step", loaded[0].Subtasks[0].Text)
		assert.Equal(t, "work", loaded[0].Tags[0].Name)
	})

	t.Run("missing key loads an empty collection", func(t *testing.T) {
		store := storage.NewTaskStore(setupTestDB(t))
		assert.Empty(t, store.Load())
	})

	t.Run("corrupt blob loads an empty collection", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.SetBytes(storage.KeyTasks, []byte("{not json")))
		store := storage.NewTaskStore(db)
		assert.Empty(t, store.Load())
	})

	t.Run("save overwrites the whole value", func(t *testing.T) {
		store := storage.NewTaskStore(setupTestDB(t))
		require.NoError(t, store.Save(model.Collection{{ID: "a"}, {ID: "b"}}))
		require.NoError(t, store.Save(model.Collection{{ID: "c"}}))

		loaded := store.Load()
		require.Len(t, loaded, 1)
		assert.Equal(t, "c", loaded[0].ID)
	})
}

func TestThemeStore(t *testing.T) {
	t.Run("defaults when nothing is stored", func(t *testing.T) {
		store := storage.NewThemeStore(setupTestDB(t))
		assert.Equal(t, theme.Default, store.Get())
	})

	t.Run("set then get round trip", func(t *testing.T) {
		store := storage.NewThemeStore(setupTestDB(t))
		require.NoError(t, store.Set(theme.Forest))
		assert.Equal(t, theme.Forest, store.Get())
	})

	t.Run("unknown stored value falls back to default", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.SetBytes(storage.KeyColorScheme, []byte("neon")))
		store := storage.NewThemeStore(db)
		assert.Equal(t, theme.Default, store.Get())
	})
}
