package schedule

import (
	"errors"

	"guild-planning/internal/schedule/repository"
	"guild-planning/pkg/weekcal"
)

// Domain-specific errors for the schedule package.
var (
	ErrInvalidDayName = weekcal.ErrInvalidDayName
	ErrEmptyEvent     = errors.New("event text is empty")
	ErrStorage        = repository.ErrStorage
	ErrStartupLoad    = errors.New("failed to load schedule at startup")
)
