package postgre

import (
	"database/sql"
	"fmt"

	"guild-planning/internal/schedule/repository"
	"guild-planning/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed schedule Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("schedule/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("schedule/repository/postgre.%s", method)
}
