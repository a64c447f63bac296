package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kaidian/internal/game"
)

// Repository persists full game snapshots as JSON payloads in one table,
// portable across sqlite and postgres. The payload is the source of
// truth; the extracted columns exist for ad-hoc querying only.
type Repository struct {
	dialect string
	db      *sql.DB
}

func New(ctx context.Context, dialect string, conn *sql.DB) (*Repository, error) {
	r := &Repository{dialect: dialect, db: conn}
	if err := r.migrate(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) migrate(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			month INTEGER NOT NULL,
			game_over INTEGER NOT NULL,
			payload TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create games table: %w", err)
	}
	return nil
}

func (r *Repository) bind(pos int) string {
	if r.dialect == "postgres" {
		return fmt.Sprintf("$%d", pos)
	}
	return "?"
}

func (r *Repository) SaveGame(ctx context.Context, s *game.State) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", s.ID, err)
	}
	now := time.Now().UTC()
	gameOver := 0
	if s.GameOver {
		gameOver = 1
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	del := fmt.Sprintf("DELETE FROM games WHERE id = %s", r.bind(1))
	if _, err := tx.ExecContext(ctx, del, s.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear game %s: %w", s.ID, err)
	}
	ins := fmt.Sprintf(
		"INSERT INTO games (id, month, game_over, payload, created_at, updated_at) VALUES (%s, %s, %s, %s, %s, %s)",
		r.bind(1), r.bind(2), r.bind(3), r.bind(4), r.bind(5), r.bind(6),
	)
	if _, err := tx.ExecContext(ctx, ins, s.ID, s.Month, gameOver, string(payload), now, now); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert game %s: %w", s.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save tx: %w", err)
	}
	return nil
}

func (r *Repository) LoadGame(ctx context.Context, id string) (*game.State, error) {
	q := fmt.Sprintf("SELECT payload FROM games WHERE id = %s", r.bind(1))
	var payload string
	err := r.db.QueryRowContext(ctx, q, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, game.ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}
	var s game.State
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", id, err)
	}
	return &s, nil
}

// ListGames returns ids of stored games, newest first.
func (r *Repository) ListGames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM games ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan game id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repository) DeleteGame(ctx context.Context, id string) error {
	q := fmt.Sprintf("DELETE FROM games WHERE id = %s", r.bind(1))
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return game.ErrStoreNotFound
	}
	return nil
}
