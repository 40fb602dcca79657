package weekcal

// Day is a position within a Monday-anchored week: Monday is 0, Sunday is 6.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysInWeek is the number of descriptors in a WeekView.
const DaysInWeek = 7

// DateLayout is the canonical schedule date key format.
const DateLayout = "2006-01-02"

// DayDescriptor describes one calendar day of the current week.
type DayDescriptor struct {
	Day        Day
	Name       string // localized day-of-week name, e.g. "Mardi"
	DayOfMonth int
	Month      string // localized month name, e.g. "janvier"
	Date       string // canonical YYYY-MM-DD key
}

// WeekView is the Monday..Sunday snapshot of the current week.
type WeekView struct {
	Days [DaysInWeek]DayDescriptor
}
