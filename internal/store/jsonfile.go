package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/clwei/studyflow/internal/model"
)

// JSONRepository stores the whole collection as one indented JSON document,
// keyed by learner id.
type JSONRepository struct {
	path string
}

// NewJSONRepository creates a repository backed by the file at path. The
// file is created on first Save.
func NewJSONRepository(path string) *JSONRepository {
	return &JSONRepository{path: path}
}

// Load reads the collection. A missing file yields an empty collection with
// StatusMissing; a file that fails to decode yields an empty collection with
// StatusCorrupt. Neither is an error. Any other read failure is returned as
// an error, and the status carries no meaning alongside it.
func (r *JSONRepository) Load(ctx context.Context) (model.Collection, Status, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return model.Collection{}, StatusMissing, nil
	}
	if err != nil {
		return nil, StatusOK, fmt.Errorf("read store: %w", err)
	}

	var c model.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return model.Collection{}, StatusCorrupt, nil
	}
	if c == nil {
		c = model.Collection{}
	}
	return c, StatusOK, nil
}

// Save writes the whole collection, 4-space indented for hand editing. The
// write goes through a temp file and rename so a crash never leaves a
// half-written store.
func (r *JSONRepository) Save(ctx context.Context, c model.Collection) error {
	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".studyflow-*")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// Close is a no-op; the file is not held open between calls.
func (r *JSONRepository) Close() error { return nil }
