package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tartapies/tartapies-server-go/internal/game"
)

// ErrNotFound is returned when no snapshot exists for a session.
var ErrNotFound = errors.New("snapshot not found")

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS session_snapshots (
	session_id TEXT PRIMARY KEY,
	state      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// SnapshotStore persists the latest full-state snapshot per session.
type SnapshotStore struct {
	db *DB
}

// NewSnapshotStore creates the store and ensures its schema.
func NewSnapshotStore(ctx context.Context, db *DB) (*SnapshotStore, error) {
	if _, err := db.pool.Exec(ctx, snapshotSchema); err != nil {
		return nil, fmt.Errorf("ensure snapshot schema: %w", err)
	}
	return &SnapshotStore{db: db}, nil
}

// Save upserts the snapshot for a session.
func (st *SnapshotStore) Save(ctx context.Context, sessionID string, view *game.SessionView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = st.db.pool.Exec(ctx, `
		INSERT INTO session_snapshots (session_id, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (session_id) DO UPDATE
		SET state = EXCLUDED.state, updated_at = now()`,
		sessionID, data,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the latest snapshot for a session.
func (st *SnapshotStore) Load(ctx context.Context, sessionID string) (*game.SessionView, error) {
	var data []byte
	err := st.db.pool.QueryRow(ctx,
		`SELECT state FROM session_snapshots WHERE session_id = $1`,
		sessionID,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var view game.SessionView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &view, nil
}

// Delete removes a session's snapshot.
func (st *SnapshotStore) Delete(ctx context.Context, sessionID string) error {
	_, err := st.db.pool.Exec(ctx,
		`DELETE FROM session_snapshots WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
