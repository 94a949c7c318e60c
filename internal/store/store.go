// Package store persists the learner record collection. Two backends are
// provided: a human-readable JSON document and a SQLite database.
package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/clwei/studyflow/internal/model"
)

// Status tells the caller what state the store was found in on load.
type Status int

const (
	// StatusOK means the collection was read from an existing store.
	StatusOK Status = iota
	// StatusMissing means no store existed; an empty collection was returned.
	StatusMissing
	// StatusCorrupt means the store could not be decoded; an empty
	// collection was returned.
	StatusCorrupt
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusCorrupt:
		return "corrupt"
	}
	return "unknown"
}

// Repository loads and saves the whole record collection. Loads degrade: a
// missing store yields an empty collection with StatusMissing rather than an
// error, so a first run starts clean. The returned Status is meaningful only
// when the error is nil.
type Repository interface {
	Load(ctx context.Context) (model.Collection, Status, error)
	Save(ctx context.Context, c model.Collection) error
	Close() error
}

// Open opens the repository at path. Backend "json" or "sqlite" forces that
// backend; "auto" (or empty) selects from the path: .db/.sqlite/.sqlite3
// open a SQLite repository, anything else the JSON document repository.
func Open(path, backend string) (Repository, error) {
	switch backend {
	case "", "auto":
	case "json":
		return NewJSONRepository(path), nil
	case "sqlite":
		return NewSQLiteRepository(path)
	default:
		return nil, fmt.Errorf("unknown backend %q (want auto, json or sqlite)", backend)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteRepository(path)
	}
	return NewJSONRepository(path), nil
}
