package mirror

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"guild-planning/internal/schedule"
	"guild-planning/pkg/gcalendar"
)

// MirrorAdd creates one all-day event tagged with its community and date.
func (m *implMirror) MirrorAdd(ctx context.Context, input schedule.MirrorAddInput) error {
	_, err := m.client.CreateAllDayEvent(ctx, gcalendar.CreateAllDayEventRequest{
		CalendarID:  m.calendarID,
		Summary:     input.Text,
		Description: input.Day.Label(),
		Date:        input.Day.Date,
		Private:     m.props(input.Community, input.Day.Date),
	})
	if err != nil {
		return fmt.Errorf("mirror add: %w", err)
	}

	m.l.Debugf(ctx, "mirror: added event on %s for community %d", input.Day.Date, input.Community)
	return nil
}

// MirrorClear deletes the tagged events of the given dates, or of every date when Dates is nil.
// It keeps going after a failed delete and reports every error at the end.
func (m *implMirror) MirrorClear(ctx context.Context, input schedule.MirrorClearInput) error {
	filters := []map[string]string{m.props(input.Community, "")}
	if input.Dates != nil {
		filters = filters[:0]
		for _, date := range input.Dates {
			filters = append(filters, m.props(input.Community, date))
		}
	}

	var errs []error
	deleted := 0
	for _, filter := range filters {
		events, err := m.client.ListEvents(ctx, gcalendar.ListEventsRequest{
			CalendarID: m.calendarID,
			Private:    filter,
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, e := range events {
			if err := m.client.DeleteEvent(ctx, m.calendarID, e.ID); err != nil {
				errs = append(errs, err)
				continue
			}
			deleted++
		}
	}

	m.l.Debugf(ctx, "mirror: deleted %d event(s) for community %d", deleted, input.Community)
	if len(errs) > 0 {
		return fmt.Errorf("mirror clear: %w", errors.Join(errs...))
	}
	return nil
}

func (m *implMirror) props(community int64, date string) map[string]string {
	p := map[string]string{propCommunity: strconv.FormatInt(community, 10)}
	if date != "" {
		p[propDate] = date
	}
	return p
}
