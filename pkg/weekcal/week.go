package weekcal

import (
	"fmt"
	"time"
)

// Weekday returns the Monday-based offset of t.
func Weekday(t time.Time) Day {
	return Day((int(t.Weekday()) + 6) % 7)
}

// CurrentWeek returns the seven days of the week containing now, Monday first.
func CurrentWeek(now time.Time) WeekView {
	offset := int(Weekday(now))
	var view WeekView
	for i := 0; i < DaysInWeek; i++ {
		// time.Date normalizes day overflow across month and year boundaries.
		day := time.Date(now.Year(), now.Month(), now.Day()-offset+i, 0, 0, 0, 0, now.Location())
		view.Days[i] = DayDescriptor{
			Day:        Day(i),
			Name:       dayLabels[i],
			DayOfMonth: day.Day(),
			Month:      monthLabels[day.Month()-1],
			Date:       day.Format(DateLayout),
		}
	}
	return view
}

// Day returns the descriptor for d.
func (w WeekView) Day(d Day) DayDescriptor {
	return w.Days[d]
}

// First returns Monday's descriptor.
func (w WeekView) First() DayDescriptor {
	return w.Days[Monday]
}

// Last returns Sunday's descriptor.
func (w WeekView) Last() DayDescriptor {
	return w.Days[Sunday]
}

// Dates returns the canonical keys of the week in order.
func (w WeekView) Dates() []string {
	dates := make([]string, 0, DaysInWeek)
	for _, d := range w.Days {
		dates = append(dates, d.Date)
	}
	return dates
}

// Label renders the descriptor as "Mardi 14 janvier".
func (d DayDescriptor) Label() string {
	return fmt.Sprintf("%s %d %s", d.Name, d.DayOfMonth, d.Month)
}

// Time parses the canonical date back into a midnight time in loc.
func (d DayDescriptor) Time(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, d.Date, loc)
}

// ValidateDate reports ErrInvalidDate unless date is a canonical YYYY-MM-DD key.
func ValidateDate(date string) error {
	t, err := time.Parse(DateLayout, date)
	if err != nil || t.Format(DateLayout) != date {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}
