package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/clwei/studyflow/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteRepository {
	t.Helper()
	r, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "learners.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteFirstLoadMissing(t *testing.T) {
	r := newTestSQLite(t)

	c, status, err := r.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if status != StatusMissing {
		t.Errorf("status = %v, want missing on first load", status)
	}
	if len(c) != 0 {
		t.Errorf("expected empty collection, got %v", c)
	}

	// Second load of the same (now existing) database reports ok.
	_, status, err = r.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if status != StatusOK {
		t.Errorf("status = %v, want ok on second load", status)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newTestSQLite(t)

	if err := r.Save(ctx, sampleCollection()); err != nil {
		t.Fatalf("save: %v", err)
	}

	c, _, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	l, ok := c["student123"]
	if !ok {
		t.Fatal("learner missing after round trip")
	}
	if l.Name != "Ming" {
		t.Errorf("name = %q", l.Name)
	}
	if l.Tasks["mock exam"].Details != "past papers" {
		t.Errorf("tasks = %v", l.Tasks)
	}
	if l.Schedule == nil || len(l.Schedule.Days) != 1 || l.Schedule.Days[0].Day != "Mon" {
		t.Errorf("schedule = %+v", l.Schedule)
	}
}

func TestSQLiteSaveReplacesCollection(t *testing.T) {
	ctx := context.Background()
	r := newTestSQLite(t)

	if err := r.Save(ctx, sampleCollection()); err != nil {
		t.Fatalf("save: %v", err)
	}
	replacement := model.Collection{"other": model.NewLearner("other", "Lin")}
	if err := r.Save(ctx, replacement); err != nil {
		t.Fatalf("save: %v", err)
	}

	c, _, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c) != 1 {
		t.Fatalf("expected 1 learner, got %d", len(c))
	}
	if _, ok := c["other"]; !ok {
		t.Error("replacement collection not stored")
	}
}

func TestSQLiteNotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learners.db")
	if err := os.WriteFile(path, []byte("this is not sqlite"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewSQLiteRepository(path)
	if !errors.Is(err, ErrNotDatabase) {
		t.Errorf("err = %v, want ErrNotDatabase", err)
	}
}
