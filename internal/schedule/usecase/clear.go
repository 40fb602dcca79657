package usecase

import (
	"context"
	"strings"

	"guild-planning/internal/model"
	"guild-planning/internal/schedule"
	"guild-planning/internal/schedule/repository"
)

// Clear deletes from the store first and mirrors the deletion into the cache on success.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope, input schedule.ClearInput) (schedule.ClearOutput, error) {
	if strings.TrimSpace(input.Day) == "" {
		return uc.clearAll(ctx, sc)
	}
	return uc.clearDay(ctx, sc, input.Day)
}

func (uc *implUseCase) clearAll(ctx context.Context, sc model.Scope) (schedule.ClearOutput, error) {
	unlock := uc.locks.lock(sc.Community)
	if _, err := uc.repo.DeleteAll(ctx, sc.Community); err != nil {
		unlock()
		uc.l.Errorf(ctx, "schedule.usecase.Clear: community=%d all: %v", sc.Community, err)
		return schedule.ClearOutput{}, storageError(err)
	}
	removed := uc.cache.ClearAll(sc.Community)
	unlock()

	uc.l.Infof(ctx, "schedule: user %d cleared %d event(s) for community %d", sc.UserID, removed, sc.Community)
	uc.mirrorClear(ctx, schedule.MirrorClearInput{Community: sc.Community})

	return schedule.ClearOutput{All: true, Removed: removed}, nil
}

func (uc *implUseCase) clearDay(ctx context.Context, sc model.Scope, dayName string) (schedule.ClearOutput, error) {
	day, err := uc.calendar.Resolve(dayName)
	if err != nil {
		return schedule.ClearOutput{}, schedule.ErrInvalidDayName
	}

	unlock := uc.locks.lock(sc.Community)
	_, err = uc.repo.DeleteDate(ctx, repository.DeleteDateOptions{
		Community: sc.Community,
		Date:      day.Date,
	})
	if err != nil {
		unlock()
		uc.l.Errorf(ctx, "schedule.usecase.Clear: community=%d date=%s: %v", sc.Community, day.Date, err)
		return schedule.ClearOutput{}, storageError(err)
	}
	removed := uc.cache.ClearDate(sc.Community, day.Date)
	unlock()

	if removed > 0 {
		uc.l.Infof(ctx, "schedule: user %d cleared %s for community %d", sc.UserID, day.Date, sc.Community)
		uc.mirrorClear(ctx, schedule.MirrorClearInput{Community: sc.Community, Dates: []string{day.Date}})
	}

	return schedule.ClearOutput{Day: day, Removed: removed}, nil
}

func (uc *implUseCase) mirrorClear(ctx context.Context, input schedule.MirrorClearInput) {
	if uc.mirror == nil {
		return
	}
	if err := uc.mirror.MirrorClear(ctx, input); err != nil {
		uc.l.Warnf(ctx, "schedule.usecase.Clear: mirror failed (ignored): %v", err)
	}
}
