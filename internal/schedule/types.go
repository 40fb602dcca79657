package schedule

import "guild-planning/pkg/weekcal"

// --- UseCase Inputs ---

type AddInput struct {
	Day  string // user-supplied day name, e.g. "mardi"
	Text string
}

type ClearInput struct {
	Day string // empty clears every day
}

// --- UseCase Outputs ---

type LoadOutput struct {
	Rows        int
	Communities int
}

// DaySchedule is one day of the week with its events in insertion order.
type DaySchedule struct {
	Day    weekcal.DayDescriptor
	Events []string
}

type ViewOutput struct {
	Week weekcal.WeekView
	Days [weekcal.DaysInWeek]DaySchedule
}

type AddOutput struct {
	Day        weekcal.DayDescriptor
	EventCount int // events on that day after the add
}

type ClearOutput struct {
	All     bool
	Day     weekcal.DayDescriptor // zero when All
	Removed int
}

type StatusOutput struct {
	Cached      int
	Stored      int
	StoredKnown bool // false when the store could not be queried
}

// --- Mirror Inputs ---

type MirrorAddInput struct {
	Community int64
	Day       weekcal.DayDescriptor
	Text      string
}

type MirrorClearInput struct {
	Community int64
	Dates     []string // nil means every date
}
