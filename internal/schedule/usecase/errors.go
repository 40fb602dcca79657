package usecase

import (
	"errors"
	"fmt"

	"guild-planning/internal/schedule"
)

// storageError tags a store failure with schedule.ErrStorage unless the store already did.
func storageError(err error) error {
	if errors.Is(err, schedule.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %w", schedule.ErrStorage, err)
}
