package telegram

import (
	"errors"

	"guild-planning/internal/schedule"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, schedule.ErrInvalidDayName):
		return invalidDayMessage()
	case errors.Is(err, schedule.ErrEmptyEvent):
		return "❌ Le texte de l'événement est vide."
	case errors.Is(err, schedule.ErrStorage):
		return "❌ Le planning n'a pas pu être enregistré, réessayez plus tard."
	default:
		return "❌ Une erreur est survenue."
	}
}
