// Package messagesrepo persists inbound chat messages keyed by the
// sender's WhatsApp identity.
package messagesrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/clientline/whatsapp-messages-api/internal/db"
)

const tableName = db.SchemaName + ".client_messages"

// ClientMessage is one stored inbound message. ID and CreatedAt are
// assigned by the database on insert; rows are never updated afterwards.
type ClientMessage struct {
	ID        int64
	WaID      string
	Name      string
	Message   string
	CreatedAt time.Time
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Record inserts a new message row for the sender. Command keywords are
// recorded like any other message so history stays complete.
func (r *Repository) Record(ctx context.Context, waID, name, text string) (*ClientMessage, error) {
	if waID == "" {
		return nil, fmt.Errorf("%w: wa_id is required", ValidationError)
	}

	var m ClientMessage
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO `+tableName+` (wa_id, name, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, wa_id, name, message, created_at`,
		waID, name, text,
	).Scan(&m.ID, &m.WaID, &m.Name, &m.Message, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert message: %w", StorageError, err)
	}
	return &m, nil
}

// RecentByWaID returns the sender's newest messages, newest first, capped
// at limit. No rows is an empty slice, not an error. Equal timestamps are
// tie-broken by id so the order stays insertion-descending.
func (r *Repository) RecentByWaID(ctx context.Context, waID string, limit int) ([]ClientMessage, error) {
	if waID == "" {
		return nil, fmt.Errorf("%w: wa_id is required", ValidationError)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, wa_id, name, message, created_at
		 FROM `+tableName+`
		 WHERE wa_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		waID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query messages: %w", StorageError, err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]ClientMessage, 0, limit)
	for rows.Next() {
		var m ClientMessage
		if err := rows.Scan(&m.ID, &m.WaID, &m.Name, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan message row: %w", StorageError, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read message rows: %w", StorageError, err)
	}
	return out, nil
}

// DeleteAllByWaID removes every row for the sender and reports how many
// went away. Deleting a sender with no rows succeeds with count zero.
func (r *Repository) DeleteAllByWaID(ctx context.Context, waID string) (int64, error) {
	if waID == "" {
		return 0, fmt.Errorf("%w: wa_id is required", ValidationError)
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM `+tableName+` WHERE wa_id = $1`, waID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to delete messages: %w", StorageError, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count deleted messages: %w", StorageError, err)
	}
	return count, nil
}
