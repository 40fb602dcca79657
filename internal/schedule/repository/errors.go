package repository

import (
	"errors"
	"fmt"
)

// ErrStorage is wrapped by every failure of the backing store.
var ErrStorage = errors.New("schedule storage unavailable")

var (
	ErrFailedToInit   = fmt.Errorf("%w: failed to initialize schedule table", ErrStorage)
	ErrFailedToLoad   = fmt.Errorf("%w: failed to load schedule rows", ErrStorage)
	ErrFailedToInsert = fmt.Errorf("%w: failed to insert schedule row", ErrStorage)
	ErrFailedToDelete = fmt.Errorf("%w: failed to delete schedule rows", ErrStorage)
	ErrFailedToCount  = fmt.Errorf("%w: failed to count schedule rows", ErrStorage)
	ErrInvalidDate    = errors.New("schedule date is not canonical")
)
