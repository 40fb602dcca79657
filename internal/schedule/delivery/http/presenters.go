package http

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"guild-planning/internal/schedule"
	pkgResponse "guild-planning/pkg/response"
)

const icsProductID = "-//guild-planning//weekly schedule//FR"

// --- Response DTOs ---

type dayResp struct {
	Date   pkgResponse.Date `json:"date"`
	Name   string           `json:"name"`
	Label  string           `json:"label"`
	Events []string         `json:"events"`
}

type weekResp struct {
	Community int64     `json:"community"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Days      []dayResp `json:"days"`
}

func (h *handler) newWeekResp(community int64, out schedule.ViewOutput) weekResp {
	resp := weekResp{
		Community: community,
		From:      out.Week.First().Date,
		To:        out.Week.Last().Date,
		Days:      make([]dayResp, 0, len(out.Days)),
	}
	for _, d := range out.Days {
		t, _ := d.Day.Time(h.loc)
		events := d.Events
		if events == nil {
			events = []string{}
		}
		resp.Days = append(resp.Days, dayResp{
			Date:   pkgResponse.Date(t),
			Name:   d.Day.Name,
			Label:  d.Day.Label(),
			Events: events,
		})
	}
	return resp
}

// newWeekCalendar renders every event of the week as an all-day VEVENT.
// UIDs are stable for a given community, date and position so repeated downloads update in place.
func (h *handler) newWeekCalendar(community int64, out schedule.ViewOutput, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName(h.title)

	for _, d := range out.Days {
		start, err := d.Day.Time(time.UTC)
		if err != nil {
			continue
		}
		for i, text := range d.Events {
			uid := fmt.Sprintf("%d-%s-%d@guild-planning", community, strings.ReplaceAll(d.Day.Date, "-", ""), i)
			ev := cal.AddEvent(uid)
			ev.SetDtStampTime(now)
			ev.SetAllDayStartAt(start)
			ev.SetAllDayEndAt(start.AddDate(0, 0, 1))
			ev.SetSummary(text)
			ev.SetDescription(d.Day.Label())
		}
	}
	return cal
}
