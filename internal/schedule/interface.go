package schedule

import (
	"context"

	"guild-planning/internal/model"
)

// UseCase is the schedule service used by every front end.
type UseCase interface {
	// Load initializes the store and rebuilds the in-memory cache from it. Called once at startup.
	Load(ctx context.Context) (LoadOutput, error)

	// View returns the current week with each day's events. It never touches the store.
	View(ctx context.Context, sc model.Scope) (ViewOutput, error)

	// Add appends an event to a day of the current week, store first then cache.
	Add(ctx context.Context, sc model.Scope, input AddInput) (AddOutput, error)

	// Clear removes one day's events, or every event of the community when input.Day is empty.
	Clear(ctx context.Context, sc model.Scope, input ClearInput) (ClearOutput, error)

	// Status reports how many events the community has in cache and in store.
	Status(ctx context.Context, sc model.Scope) (StatusOutput, error)
}

// Mirror receives successful schedule changes on a best-effort basis.
type Mirror interface {
	MirrorAdd(ctx context.Context, input MirrorAddInput) error
	MirrorClear(ctx context.Context, input MirrorClearInput) error
}
