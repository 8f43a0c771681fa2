// Package bundle implements the export/import serialization format.
//
// An export bundle is a versioned JSON document wrapping the full task
// collection. Import validates the document shape before anything else
// touches state: a malformed document is a reported format error and
// the existing collection is left alone.
package bundle

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/model"
)

// Version is the bundle schema tag. Bump on breaking format changes.
const Version = "1.0"

// Bundle is the serialized export document.
type Bundle struct {
	Tasks      model.Collection `json:"tasks"`
	ExportDate string           `json:"exportDate"`
	Version    string           `json:"version"`
}

// Export serializes the collection into a bundle document. The same
// bytes back every surface: file download, stdout, and clipboard.
func Export(c model.Collection, now time.Time) ([]byte, error) {
	b := Bundle{
		Tasks:      c,
		ExportDate: now.UTC().Format(time.RFC3339),
		Version:    Version,
	}
	return json.MarshalIndent(b, "", "  ")
}

// Import parses and validates a bundle document, returning the tasks it
// carries. The document must be a JSON object with a 'tasks' array;
// any other shape is ErrInvalidImport. Imported tasks keep their ids
// verbatim; the caller appends them to the existing collection.
func Import(data []byte) (model.Collection, error) {
	var probe struct {
		Tasks json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.ErrInvalidImport
	}
	if len(probe.Tasks) == 0 {
		return nil, errors.ErrInvalidImport
	}
	if trimmed := bytes.TrimSpace(probe.Tasks); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.ErrInvalidImport
	}

	var tasks model.Collection
	if err := json.Unmarshal(probe.Tasks, &tasks); err != nil {
		return nil, errors.ErrInvalidImport
	}
	return tasks, nil
}
