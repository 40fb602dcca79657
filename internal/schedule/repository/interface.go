package repository

import (
	"context"

	"guild-planning/internal/model"
)

// Repository is the durable, authoritative store of schedule rows.
type Repository interface {
	// Initialize ensures the backing table exists. Safe to call on every startup.
	Initialize(ctx context.Context) error
	// LoadAll returns every row ordered by insertion.
	LoadAll(ctx context.Context) ([]model.Row, error)
	// Append inserts one row; it never merges with existing rows.
	Append(ctx context.Context, opt AppendOptions) error
	// DeleteAll removes every row of a community and returns the number removed.
	DeleteAll(ctx context.Context, community int64) (int64, error)
	// DeleteDate removes the rows of one (community, date) pair. Zero rows is not an error.
	DeleteDate(ctx context.Context, opt DeleteDateOptions) (int64, error)
	// CountAll returns the number of stored rows for a community.
	CountAll(ctx context.Context, community int64) (int, error)
}
