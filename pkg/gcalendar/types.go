package gcalendar

import "time"

const dateLayout = "2006-01-02"

// CreateAllDayEventRequest is the input for creating an all-day Google Calendar event.
type CreateAllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        string            // YYYY-MM-DD
	Private     map[string]string // private extended properties, used to find the event again
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Date        string // set for all-day events
	Private     map[string]string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	Private    map[string]string // every pair must match
}
