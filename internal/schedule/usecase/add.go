package usecase

import (
	"context"
	"strings"

	"guild-planning/internal/model"
	"guild-planning/internal/schedule"
	"guild-planning/internal/schedule/repository"
)

// Add writes the event to the store and, only once that succeeded, to the cache.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input schedule.AddInput) (schedule.AddOutput, error) {
	day, err := uc.calendar.Resolve(input.Day)
	if err != nil {
		return schedule.AddOutput{}, schedule.ErrInvalidDayName
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return schedule.AddOutput{}, schedule.ErrEmptyEvent
	}

	unlock := uc.locks.lock(sc.Community)
	err = uc.repo.Append(ctx, repository.AppendOptions{
		Community: sc.Community,
		Date:      day.Date,
		Text:      text,
	})
	if err != nil {
		unlock()
		uc.l.Errorf(ctx, "schedule.usecase.Add: community=%d date=%s: %v", sc.Community, day.Date, err)
		return schedule.AddOutput{}, storageError(err)
	}
	uc.cache.Append(sc.Community, day.Date, text)
	count := len(uc.cache.Get(sc.Community, day.Date))
	unlock()

	uc.l.Infof(ctx, "schedule: user %d added an event to %s for community %d", sc.UserID, day.Date, sc.Community)

	if uc.mirror != nil {
		if err := uc.mirror.MirrorAdd(ctx, schedule.MirrorAddInput{
			Community: sc.Community,
			Day:       day,
			Text:      text,
		}); err != nil {
			uc.l.Warnf(ctx, "schedule.usecase.Add: mirror failed (ignored): %v", err)
		}
	}

	return schedule.AddOutput{Day: day, EventCount: count}, nil
}
