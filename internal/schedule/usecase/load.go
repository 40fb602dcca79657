package usecase

import (
	"context"
	"fmt"

	"guild-planning/internal/schedule"
)

// Load ensures the table exists and rebuilds the cache from every stored row.
// The cache is only replaced after a complete, successful load.
func (uc *implUseCase) Load(ctx context.Context) (schedule.LoadOutput, error) {
	if err := uc.repo.Initialize(ctx); err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Load: initialize store: %v", err)
		return schedule.LoadOutput{}, fmt.Errorf("%w: %w", schedule.ErrStartupLoad, err)
	}

	rows, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Load: load rows: %v", err)
		return schedule.LoadOutput{}, fmt.Errorf("%w: %w", schedule.ErrStartupLoad, err)
	}

	uc.cache.Rebuild(rows)

	out := schedule.LoadOutput{
		Rows:        uc.cache.Total(),
		Communities: uc.cache.Communities(),
	}
	uc.l.Infof(ctx, "%d événements ont été chargés depuis la base (%d communautés)", out.Rows, out.Communities)
	return out, nil
}
