package mirror

import (
	"context"

	"guild-planning/internal/schedule"
	"guild-planning/pkg/gcalendar"
	pkgLog "guild-planning/pkg/log"
)

// Private extended property keys stamped on every mirrored event.
const (
	propCommunity = "guild_id"
	propDate      = "schedule_date"
)

// CalendarClient is the subset of the Google Calendar client the mirror needs.
type CalendarClient interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.CreateAllDayEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type implMirror struct {
	l          pkgLog.Logger
	client     CalendarClient
	calendarID string
}

// New returns a schedule.Mirror that copies changes into a Google Calendar.
func New(l pkgLog.Logger, client CalendarClient, calendarID string) schedule.Mirror {
	return &implMirror{
		l:          l,
		client:     client,
		calendarID: calendarID,
	}
}
