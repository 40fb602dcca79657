package usecase

import (
	"guild-planning/internal/schedule"
	"guild-planning/internal/schedule/cache"
	"guild-planning/internal/schedule/repository"
	pkgLog "guild-planning/pkg/log"
	"guild-planning/pkg/weekcal"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	cache    *cache.EventCache
	calendar *weekcal.Calendar
	mirror   schedule.Mirror
	locks    *communityLocks
}

// New creates a new schedule UseCase instance. mirror may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	eventCache *cache.EventCache,
	calendar *weekcal.Calendar,
	mirror schedule.Mirror,
) schedule.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		cache:    eventCache,
		calendar: calendar,
		mirror:   mirror,
		locks:    newCommunityLocks(),
	}
}
