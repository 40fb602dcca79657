package usecase

import (
	"context"

	"guild-planning/internal/model"
	"guild-planning/internal/schedule"
)

// Status compares the cached event count with the stored one.
func (uc *implUseCase) Status(ctx context.Context, sc model.Scope) (schedule.StatusOutput, error) {
	out := schedule.StatusOutput{Cached: uc.cache.CountAll(sc.Community)}

	stored, err := uc.repo.CountAll(ctx, sc.Community)
	if err != nil {
		uc.l.Warnf(ctx, "schedule.usecase.Status: community=%d: store count unavailable: %v", sc.Community, err)
		return out, nil
	}
	out.Stored = stored
	out.StoredKnown = true

	if stored != out.Cached {
		uc.l.Warnf(ctx, "schedule.usecase.Status: community=%d cache=%d store=%d diverged", sc.Community, out.Cached, stored)
	}
	return out, nil
}
