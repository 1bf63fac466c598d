package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries holds the prepared query methods.
type Queries struct {
	db DBTX
}

// New creates a Queries instance.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// LoadKeywords returns all keywords in insertion order.
func (q *Queries) LoadKeywords(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT keyword FROM keywords ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query keywords: %w", err)
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, fmt.Errorf("scan keyword: %w", err)
		}
		keywords = append(keywords, kw)
	}
	return keywords, rows.Err()
}

// Channel is a managed channel record.
type Channel struct {
	ID      string
	Title   string
	AddedAt time.Time
}

// AddAdmin inserts a user into the admin list. Returns false if already present.
func (q *Queries) AddAdmin(ctx context.Context, userID int64) (bool, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO admins (user_id) VALUES (?)", userID)
	if err != nil {
		return false, fmt.Errorf("insert admin: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// RemoveAdmin deletes a user from the admin list. Returns false if absent.
func (q *Queries) RemoveAdmin(ctx context.Context, userID int64) (bool, error) {
	res, err := q.db.ExecContext(ctx, "DELETE FROM admins WHERE user_id = ?", userID)
	if err != nil {
		return false, fmt.Errorf("delete admin: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// IsAdmin reports whether the user is on the admin list.
func (q *Queries) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	var one int
	err := q.db.QueryRowContext(ctx,
		"SELECT 1 FROM admins WHERE user_id = ?", userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query admin: %w", err)
	}
	return true, nil
}

// ListAdmins returns all admin user IDs in insertion order.
func (q *Queries) ListAdmins(ctx context.Context) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT user_id FROM admins ORDER BY added_at, user_id")
	if err != nil {
		return nil, fmt.Errorf("query admins: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddChannel inserts a managed channel. Returns false if already present.
func (q *Queries) AddChannel(ctx context.Context, channelID, title string) (bool, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO channels (channel_id, title) VALUES (?, ?)", channelID, title)
	if err != nil {
		return false, fmt.Errorf("insert channel: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// RemoveChannel deletes a managed channel. Returns false if absent.
func (q *Queries) RemoveChannel(ctx context.Context, channelID string) (bool, error) {
	res, err := q.db.ExecContext(ctx, "DELETE FROM channels WHERE channel_id = ?", channelID)
	if err != nil {
		return false, fmt.Errorf("delete channel: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// ListChannels returns all managed channels.
func (q *Queries) ListChannels(ctx context.Context) ([]Channel, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT channel_id, title, added_at FROM channels ORDER BY added_at, channel_id")
	if err != nil {
		return nil, fmt.Errorf("query channels: %w", err)
	}
	defer rows.Close()

	var channels []Channel
	for rows.Next() {
		var ch Channel
		if err := rows.Scan(&ch.ID, &ch.Title, &ch.AddedAt); err != nil {
			return nil, fmt.Errorf("scan channel: %w", err)
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}
