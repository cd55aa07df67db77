package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fitfocus/fitfocus/internal/model"
)

// SQLiteStore keeps the single state blob in a key-value table. One fixed
// key, one row, whole-blob replace on every save.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the blob under the fixed key. A missing row or a payload that
// fails to decode yields the default state with a nil error; schema-level
// query failures still surface.
func (s *SQLiteStore) Load(ctx context.Context) (model.AppState, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM app_state WHERE key = ?`, StateKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultState(), nil
	}
	if err != nil {
		return model.DefaultState(), fmt.Errorf("storage: load state: %w", err)
	}
	state, err := decodeState([]byte(payload))
	if err != nil {
		return model.DefaultState(), nil
	}
	return state, nil
}

// Save serializes the full state and replaces the stored blob.
func (s *SQLiteStore) Save(ctx context.Context, state model.AppState) error {
	payload, err := encodeState(state)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		StateKey, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storage: save state: %w", err)
	}
	return nil
}
