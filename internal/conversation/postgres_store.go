package conversation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore persists conversations in Postgres, preserving the exact
// entity shape of the in-memory backend: one row per conversation with its
// preference model, one row per message in append order.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// EnsureSchema creates the tables if they do not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS conversations (
    id          TEXT PRIMARY KEY,
    preferences JSONB NOT NULL DEFAULT '{}',
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS messages (
    seq             BIGSERIAL PRIMARY KEY,
    conversation_id TEXT NOT NULL REFERENCES conversations(id),
    role            TEXT NOT NULL,
    content         TEXT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS messages_conversation_idx ON messages (conversation_id, seq);
`)
	return err
}

func (s *PostgresStore) Close() error { return s.db.Close() }

func (s *PostgresStore) Get(ctx context.Context, id string) (Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Conversation{}, fmt.Errorf("conversation id is required")
	}

	var (
		conv     Conversation
		prefsRaw []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, preferences, created_at, updated_at FROM conversations WHERE id = $1`, id).
		Scan(&conv.ID, &prefsRaw, &conv.CreatedAt, &conv.UpdatedAt)
	if err == sql.ErrNoRows {
		return Conversation{}, ErrNotFound
	}
	if err != nil {
		return Conversation{}, err
	}
	if err := json.Unmarshal(prefsRaw, &conv.Preferences); err != nil {
		return Conversation{}, fmt.Errorf("decode preferences: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT role, content, created_at FROM messages WHERE conversation_id = $1 ORDER BY seq ASC`, id)
	if err != nil {
		return Conversation{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.Role, &m.Content, &m.Timestamp); err != nil {
			return Conversation{}, err
		}
		conv.Messages = append(conv.Messages, m)
	}
	return conv, rows.Err()
}

func (s *PostgresStore) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT c.id, c.created_at, c.updated_at, COUNT(m.seq)
FROM conversations c
LEFT JOIN messages m ON m.conversation_id = c.id
GROUP BY c.id, c.created_at, c.updated_at
ORDER BY c.created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Summary, 0, 16)
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.ID, &sm.CreatedAt, &sm.UpdatedAt, &sm.MessageCount); err != nil {
			return nil, err
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

// ApplyTurn commits the whole turn in one transaction: the row lock taken by
// the conversation upsert serializes concurrent turns on the same id.
func (s *PostgresStore) ApplyTurn(ctx context.Context, id string, turn Turn) (Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Conversation{}, fmt.Errorf("conversation id is required")
	}

	prefsRaw, err := json.Marshal(turn.Preferences)
	if err != nil {
		return Conversation{}, fmt.Errorf("encode preferences: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Conversation{}, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `
INSERT INTO conversations (id, preferences, created_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (id) DO UPDATE SET preferences = EXCLUDED.preferences, updated_at = EXCLUDED.updated_at`,
		id, prefsRaw, now); err != nil {
		return Conversation{}, err
	}
	for _, m := range []Message{turn.UserMessage, turn.AssistantMessage} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO messages (conversation_id, role, content, created_at) VALUES ($1, $2, $3, $4)`,
			id, m.Role, m.Content, m.Timestamp); err != nil {
			return Conversation{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return Conversation{}, err
	}
	return s.Get(ctx, id)
}

var (
	_ Store = (*PostgresStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
