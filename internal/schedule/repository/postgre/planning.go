package postgre

import (
	"context"
	"database/sql"

	"guild-planning/internal/model"
	repo "guild-planning/internal/schedule/repository"
	"guild-planning/pkg/weekcal"
)

// Initialize creates the plannings table and its lookup index in one transaction.
func (r *implRepository) Initialize(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Initialize"), err)
		return repo.ErrFailedToInit
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, q := range []string{createTableQuery, createIndexQuery} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("Initialize"), err)
			return repo.ErrFailedToInit
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Initialize"), err)
		return repo.ErrFailedToInit
	}
	return nil
}

// LoadAll returns every stored row ordered by id, which is insertion order.
func (r *implRepository) LoadAll(ctx context.Context) ([]model.Row, error) {
	rows, err := r.db.QueryContext(ctx, loadAllQuery)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadAll"), err)
		return nil, repo.ErrFailedToLoad
	}
	defer rows.Close()

	var result []model.Row
	for rows.Next() {
		var row model.Row
		if err := rows.Scan(&row.ID, &row.Community, &row.Date, &row.Text); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("LoadAll"), err)
			return nil, repo.ErrFailedToLoad
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("LoadAll"), err)
		return nil, repo.ErrFailedToLoad
	}
	return result, nil
}

// Append inserts a single row.
func (r *implRepository) Append(ctx context.Context, opt repo.AppendOptions) error {
	if err := weekcal.ValidateDate(opt.Date); err != nil {
		return repo.ErrInvalidDate
	}

	if _, err := r.db.ExecContext(ctx, insertQuery, opt.Community, opt.Date, opt.Text); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Append"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// DeleteAll removes every row of a community.
func (r *implRepository) DeleteAll(ctx context.Context, community int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteAllQuery, community)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAll"), err)
		return 0, repo.ErrFailedToDelete
	}
	return rowsAffected(res), nil
}

// DeleteDate removes the rows of one day of a community.
func (r *implRepository) DeleteDate(ctx context.Context, opt repo.DeleteDateOptions) (int64, error) {
	if err := weekcal.ValidateDate(opt.Date); err != nil {
		return 0, repo.ErrInvalidDate
	}

	res, err := r.db.ExecContext(ctx, deleteDateQuery, opt.Community, opt.Date)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteDate"), err)
		return 0, repo.ErrFailedToDelete
	}
	return rowsAffected(res), nil
}

// CountAll counts the stored rows of a community.
func (r *implRepository) CountAll(ctx context.Context, community int64) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, countAllQuery, community).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountAll"), err)
		return 0, repo.ErrFailedToCount
	}
	return total, nil
}

// rowsAffected returns 0 when the driver cannot report it.
func rowsAffected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}
