package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/clwei/studyflow/internal/model"
)

// ErrNotDatabase is returned when the store path exists but is not a SQLite
// database. Unlike the JSON backend this does not degrade to an empty
// collection: saving over a damaged database would destroy whatever is
// still recoverable.
var ErrNotDatabase = errors.New("store file is not a database")

// SQLiteRepository stores learner records as rows, one per learner, with
// the nested record fields as JSON columns.
type SQLiteRepository struct {
	db      *sql.DB
	created bool // db file did not exist before open
}

// NewSQLiteRepository opens or creates a SQLite database at the given path.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	_, statErr := os.Stat(path)

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	r := &SQLiteRepository{db: db, created: os.IsNotExist(statErr)}
	if err := r.migrate(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "not a database") {
			return nil, fmt.Errorf("%w: %s", ErrNotDatabase, path)
		}
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	_, err := r.db.Exec(`
	CREATE TABLE IF NOT EXISTS learners (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		habits      TEXT,
		preferences TEXT,
		notes       TEXT,
		schedule    TEXT,
		tasks       TEXT,
		updated_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_learners_updated ON learners(updated_at DESC);
	`)
	return err
}

// Load reads every learner row into a collection. The first Load after the
// database file was created reports StatusMissing, matching the JSON
// backend's first-run signal.
func (r *SQLiteRepository) Load(ctx context.Context) (model.Collection, Status, error) {
	status := StatusOK
	if r.created {
		status = StatusMissing
		r.created = false
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, habits, preferences, notes, schedule, tasks FROM learners`)
	if err != nil {
		return nil, status, fmt.Errorf("load learners: %w", err)
	}
	defer rows.Close()

	c := model.Collection{}
	for rows.Next() {
		l, err := scanLearner(rows)
		if err != nil {
			return nil, status, fmt.Errorf("load learners: %w", err)
		}
		c[l.ID] = l
	}
	if err := rows.Err(); err != nil {
		return nil, status, fmt.Errorf("load learners: %w", err)
	}
	return c, status, nil
}

// Save replaces the stored collection with c in one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, c model.Collection) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save learners: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM learners`); err != nil {
		return fmt.Errorf("save learners: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for id, l := range c {
		habits, err := encodeColumn(l.Habits)
		if err != nil {
			return fmt.Errorf("encode learner %s: %w", id, err)
		}
		prefs, err := encodeColumn(l.Preferences)
		if err != nil {
			return fmt.Errorf("encode learner %s: %w", id, err)
		}
		notes, err := encodeColumn(l.Notes)
		if err != nil {
			return fmt.Errorf("encode learner %s: %w", id, err)
		}
		schedule, err := encodeColumn(l.Schedule)
		if err != nil {
			return fmt.Errorf("encode learner %s: %w", id, err)
		}
		tasks, err := encodeColumn(l.Tasks)
		if err != nil {
			return fmt.Errorf("encode learner %s: %w", id, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO learners (id, name, habits, preferences, notes, schedule, tasks, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			id, l.Name, habits, prefs, notes, schedule, tasks, now)
		if err != nil {
			return fmt.Errorf("save learner %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// Close closes the database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func encodeColumn(v any) (*string, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *model.Schedule:
		if x == nil {
			return nil, nil
		}
	case map[string]string:
		if len(x) == 0 {
			return nil, nil
		}
	case map[string][]model.Note:
		if len(x) == 0 {
			return nil, nil
		}
	case map[string]model.Task:
		if len(x) == 0 {
			return nil, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func scanLearner(rows *sql.Rows) (*model.Learner, error) {
	var l model.Learner
	var habits, prefs, notes, schedule, tasks sql.NullString

	if err := rows.Scan(&l.ID, &l.Name, &habits, &prefs, &notes, &schedule, &tasks); err != nil {
		return nil, err
	}

	if err := decodeColumn(habits, &l.Habits); err != nil {
		return nil, fmt.Errorf("learner %s habits: %w", l.ID, err)
	}
	if err := decodeColumn(prefs, &l.Preferences); err != nil {
		return nil, fmt.Errorf("learner %s preferences: %w", l.ID, err)
	}
	if err := decodeColumn(notes, &l.Notes); err != nil {
		return nil, fmt.Errorf("learner %s notes: %w", l.ID, err)
	}
	if err := decodeColumn(schedule, &l.Schedule); err != nil {
		return nil, fmt.Errorf("learner %s schedule: %w", l.ID, err)
	}
	if err := decodeColumn(tasks, &l.Tasks); err != nil {
		return nil, fmt.Errorf("learner %s tasks: %w", l.ID, err)
	}
	return &l, nil
}

func decodeColumn(col sql.NullString, dst any) error {
	if !col.Valid {
		return nil
	}
	return json.Unmarshal([]byte(col.String), dst)
}
