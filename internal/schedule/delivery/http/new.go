package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"guild-planning/internal/schedule"
	pkgLog "guild-planning/pkg/log"
)

// Handler is the read-only HTTP surface of the schedule.
type Handler interface {
	Week(c *gin.Context)
	WeekICS(c *gin.Context)
}

type handler struct {
	l     pkgLog.Logger
	uc    schedule.UseCase
	title string
	loc   *time.Location
}

// New creates a new HTTP handler for the schedule domain.
// Dates are rendered in loc, the zone weeks are computed in; nil means UTC.
func New(l pkgLog.Logger, uc schedule.UseCase, title string, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:     l,
		uc:    uc,
		title: title,
		loc:   loc,
	}
}
