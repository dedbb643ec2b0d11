package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no mapping exists for a short id.
	ErrNotFound = errors.New("short id does not exist")

	// ErrShortTaken is returned when creating a mapping whose short id
	// already exists.
	ErrShortTaken = errors.New("short id is already taken")
)

// URL is a persisted redirect mapping from a short id to a target URL.
type URL struct {
	Short     string `db:"short" json:"short"`
	TargetURL string `db:"target_url" json:"target_url"`
}

// URLStore exposes all mapping data operations. Handlers never query the
// database directly; all access goes through this interface, so tests can
// substitute a fake and the driver stays swappable.
type URLStore interface {
	// Create persists a new mapping. Returns ErrShortTaken when the short
	// id already exists. Concurrent creates of the same short id admit
	// exactly one winner.
	Create(ctx context.Context, u URL) error

	// Delete removes the mapping for short. Returns ErrNotFound when no
	// such mapping exists.
	Delete(ctx context.Context, short string) error

	// GetByShort returns the mapping for short, or ErrNotFound.
	GetByShort(ctx context.Context, short string) (*URL, error)

	// List returns up to limit mappings ordered by short id. A limit of
	// zero yields an empty slice, never nil.
	List(ctx context.Context, limit uint32) ([]URL, error)
}
