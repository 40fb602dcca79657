package weekcal

import "errors"

var (
	ErrInvalidDayName = errors.New("invalid day name")
	ErrInvalidDate    = errors.New("date is not a canonical YYYY-MM-DD value")
)
