package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/fitfocus/fitfocus/internal/model"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx := context.Background()
	state := model.DefaultState()
	state.Language = model.LanguageEN
	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("save after roundtrip failed: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load after roundtrip failed: %v", err)
	}
	if got.Language != model.LanguageEN {
		t.Fatalf("unexpected language after roundtrip: %q", got.Language)
	}
}
