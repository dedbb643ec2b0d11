package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
)

// SQLURLStore is the sqlx-backed implementation of URLStore.
type SQLURLStore struct {
	db *sqlx.DB
}

func NewSQLURLStore(db *sqlx.DB) *SQLURLStore {
	return &SQLURLStore{db: db}
}

// Create inserts a new mapping. The primary key on urls.short is the
// arbiter under concurrency: whichever insert commits first wins, every
// other one surfaces as ErrShortTaken.
func (s *SQLURLStore) Create(ctx context.Context, u URL) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO urls (short, target_url) VALUES (?, ?)
	`), u.Short, u.TargetURL)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrShortTaken
		}
		return err
	}
	return nil
}

// Delete removes the mapping for short, or returns ErrNotFound when zero
// rows were affected.
func (s *SQLURLStore) Delete(ctx context.Context, short string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM urls WHERE short = ?`), short)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByShort returns the mapping for short, or ErrNotFound.
func (s *SQLURLStore) GetByShort(ctx context.Context, short string) (*URL, error) {
	var u URL
	err := s.db.GetContext(ctx, &u, s.db.Rebind(`
		SELECT short, target_url FROM urls WHERE short = ?
	`), short)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns up to limit mappings ordered by short id.
func (s *SQLURLStore) List(ctx context.Context, limit uint32) ([]URL, error) {
	urls := make([]URL, 0, min(limit, 64))
	err := s.db.SelectContext(ctx, &urls, s.db.Rebind(`
		SELECT short, target_url FROM urls ORDER BY short ASC LIMIT ?
	`), int64(limit))
	if err != nil {
		return nil, err
	}
	return urls, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
