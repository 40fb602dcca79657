package usecase

import (
	"context"

	"guild-planning/internal/model"
	"guild-planning/internal/schedule"
)

// View builds the current week from the cache only.
func (uc *implUseCase) View(ctx context.Context, sc model.Scope) (schedule.ViewOutput, error) {
	week := uc.calendar.Week()

	out := schedule.ViewOutput{Week: week}
	for i, day := range week.Days {
		out.Days[i] = schedule.DaySchedule{
			Day:    day,
			Events: uc.cache.Get(sc.Community, day.Date),
		}
	}
	return out, nil
}
