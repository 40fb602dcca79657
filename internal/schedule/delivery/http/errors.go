package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"guild-planning/internal/schedule"
	"guild-planning/pkg/response"
)

var errInvalidCommunity = errors.New("community must be an integer chat id")

// mapError writes the status for err; anything unknown is a 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidCommunity),
		errors.Is(err, schedule.ErrInvalidDayName):
		response.Error(c, http.StatusBadRequest, err)
	default:
		h.l.Errorf(c.Request.Context(), "schedule http: %v", err)
		response.InternalError(c, err)
	}
}
