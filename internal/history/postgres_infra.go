package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresStore — одна строка истории на чат.
//
//	CREATE TABLE affirmation_history (
//	    chat_id    TEXT PRIMARY KEY,
//	    entries    TEXT[] NOT NULL DEFAULT '{}',
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresStore struct {
	db     *sql.DB
	chatID string
}

func NewPostgresStore(db *sql.DB, chatID string) *PostgresStore {
	return &PostgresStore{db: db, chatID: chatID}
}

func (r *PostgresStore) Load(ctx context.Context) ([]string, error) {
	var entries []string
	err := r.db.QueryRowContext(ctx, `
		SELECT entries
		FROM affirmation_history
		WHERE chat_id = $1
	`, r.chatID).Scan(pq.Array(&entries))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	if entries == nil {
		entries = []string{}
	}
	return entries, nil
}

func (r *PostgresStore) Save(ctx context.Context, entries []string) error {
	if entries == nil {
		entries = []string{}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO affirmation_history (chat_id, entries, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (chat_id) DO UPDATE
		SET entries = EXCLUDED.entries, updated_at = now()
	`, r.chatID, pq.Array(entries))
	if err != nil {
		return fmt.Errorf("upsert history: %w", err)
	}
	return nil
}
