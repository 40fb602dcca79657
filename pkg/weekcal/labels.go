package weekcal

import "strings"

// Label tables are indexed by Day and by month-1. Any locale swap must keep
// the same length and order.
var (
	dayLabels = [DaysInWeek]string{
		"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche",
	}
	monthLabels = [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin", "juillet",
		"août", "septembre", "octobre", "novembre", "décembre",
	}
)

// Name returns the localized name of d.
func (d Day) Name() string {
	if !d.Valid() {
		return ""
	}
	return dayLabels[d]
}

// Valid reports whether d is one of the seven days.
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// DayIndex maps a day name (French or English, any case) to its offset in the week.
func DayIndex(name string) (Day, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lundi", "monday":
		return Monday, nil
	case "mardi", "tuesday":
		return Tuesday, nil
	case "mercredi", "wednesday":
		return Wednesday, nil
	case "jeudi", "thursday":
		return Thursday, nil
	case "vendredi", "friday":
		return Friday, nil
	case "samedi", "saturday":
		return Saturday, nil
	case "dimanche", "sunday":
		return Sunday, nil
	}
	return 0, ErrInvalidDayName
}

// ValidDayNames lists the accepted French day names in week order, for user-facing hints.
func ValidDayNames() []string {
	names := make([]string, 0, DaysInWeek)
	for _, l := range dayLabels {
		names = append(names, strings.ToLower(l))
	}
	return names
}
