package weekcal

import (
	"fmt"
	"time"
)

// Calendar anchors weeks to a fixed location and clock.
type Calendar struct {
	location *time.Location
	clock    func() time.Time
}

// NewCalendar creates a Calendar for the given IANA timezone.
// An empty timezone or "Local" uses the process-local zone.
func NewCalendar(timezone string) (*Calendar, error) {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
	}
	return &Calendar{location: loc, clock: time.Now}, nil
}

// SetClock overrides the time source for testing purposes.
func (c *Calendar) SetClock(clock func() time.Time) {
	c.clock = clock
}

// Location returns the fixed location weeks are computed in.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// Now returns the current instant in the calendar's location.
func (c *Calendar) Now() time.Time {
	return c.clock().In(c.location)
}

// Week returns the current week.
func (c *Calendar) Week() WeekView {
	return CurrentWeek(c.Now())
}

// Resolve maps a user-supplied day name to its descriptor in the current week.
func (c *Calendar) Resolve(name string) (DayDescriptor, error) {
	d, err := DayIndex(name)
	if err != nil {
		return DayDescriptor{}, err
	}
	return c.Week().Day(d), nil
}
